// Package redact masks credentials in HTTP metadata before it is logged.
//
// Header values are replaced wholesale when the header name is known to
// carry credentials (Authorization, Cookie, ...). All other values, and URL
// query parameters, are scanned with regex heuristics for token shapes:
// bearer tokens, JWTs and GitHub tokens.
package redact
