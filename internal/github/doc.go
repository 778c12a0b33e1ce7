// Package github provides a minimal GitHub REST API client that lists a
// user's gists.
//
// [Client] embeds a [restclient.Client] configured with GitHub defaults:
// the public API base URL, the v3 JSON media type, a fixed user agent, a
// "github" tag and a 60 second timeout. [NewConfig] applies those defaults
// to a partial configuration without overwriting anything the caller set.
//
// A 404 from [Client.Gists] is reported as `User "<name>" not found`; all
// other failures are returned as received from the transport.
package github
