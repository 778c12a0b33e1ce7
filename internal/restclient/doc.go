// Package restclient is a small generic REST client that more specific API
// clients embed.
//
// A [Client] is built once from a resolved [Config] (base URL, default
// headers, tags, timeout, debug flag) and is immutable afterwards. Requests
// take a path template such as "/users/{username}/gists" whose placeholders
// are filled from [RequestOptions.Path].
//
// Non-2xx responses are returned together with an [*Error] so callers can
// inspect the status code and rewrite the message for their own domain.
// When Config.Debug is set, every request and response is logged through
// zerolog at debug level.
package restclient
