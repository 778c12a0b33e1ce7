// Package config loads and merges ghgists configuration from multiple sources.
//
// Precedence (highest to lowest):
//  1. CLI flags
//  2. Environment variables (GHGISTS_BASE_URL, GHGISTS_TAGS, GHGISTS_DEBUG, etc.),
//     optionally seeded from a .env file
//  3. Config file ($XDG_CONFIG_HOME/ghgists/config.yaml)
//  4. Built-in defaults
//
// Use [Load] to obtain a merged [Config] and [ClientConfig] to turn it into
// the partial client configuration accepted by github.New.
package config
