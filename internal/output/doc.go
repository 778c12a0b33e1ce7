// Package output formats gist listings for display or machine consumption.
//
// Two formats are supported:
//   - text — a "----" separator followed by every non-empty gist description
//   - json — the gist array as received from the API, indented
//
// Use [GetWriter] to obtain a [Writer] for a given format string, or
// [WriteGists] to also handle destination selection.
package output
