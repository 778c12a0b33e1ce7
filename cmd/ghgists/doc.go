// Ghgists is a small CLI that lists the public gists of a GitHub user.
//
// It prints a "----" separator followed by the description of every gist
// that has one. A user that does not exist is reported as
// `User "<name>" not found` with exit code 1.
//
// Usage:
//
//	ghgists gists                     # list gists of the default user
//	ghgists gists octocat             # list gists of octocat
//	ghgists gists octocat --debug     # log every request and response
//	ghgists gists octocat --format json
//	ghgists config show               # print the effective configuration
package main
