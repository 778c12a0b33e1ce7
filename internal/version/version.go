// Package version holds the release version of ghgists.
package version

// Version is reported by the version command and sent in the User-Agent
// header.
const Version = "0.1.0"
