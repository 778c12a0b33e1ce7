package redact

import (
	"net/http"
	"net/url"
	"regexp"
	"strings"
)

const placeholder = "[REDACTED]"

// sensitiveHeaders always have their whole value replaced.
var sensitiveHeaders = map[string]bool{
	"Authorization":       true,
	"Proxy-Authorization": true,
	"Cookie":              true,
	"Set-Cookie":          true,
	"X-Api-Key":           true,
	"X-Github-Token":      true,
}

// sensitiveParams are query parameter names whose values are replaced.
var sensitiveParams = []string{"token", "secret", "password", "key", "signature"}

// tokenPatterns are regex heuristics for credentials embedded in values.
var tokenPatterns = []*regexp.Regexp{
	// Bearer and basic credentials
	regexp.MustCompile(`(?i)(Bearer|Basic|token)\s+[A-Za-z0-9._~+/=-]{16,}`),
	// JWTs (three base64 segments separated by dots)
	regexp.MustCompile(`eyJ[A-Za-z0-9_-]{10,}\.eyJ[A-Za-z0-9_-]{10,}\.[A-Za-z0-9_-]{10,}`),
	// GitHub tokens
	regexp.MustCompile(`gh[pousr]_[A-Za-z0-9_]{36,}`),
	regexp.MustCompile(`github_pat_[A-Za-z0-9_]{22,}`),
}

// Secrets replaces detected tokens in text with [REDACTED].
func Secrets(text string) string {
	result := text
	for _, pat := range tokenPatterns {
		result = pat.ReplaceAllString(result, placeholder)
	}
	return result
}

// Headers returns a flattened copy of h that is safe to log. Multiple values
// of one header are joined with ", ".
func Headers(h http.Header) map[string]string {
	out := make(map[string]string, len(h))
	for name, values := range h {
		canonical := http.CanonicalHeaderKey(name)
		if sensitiveHeaders[canonical] {
			out[canonical] = placeholder
			continue
		}
		out[canonical] = Secrets(strings.Join(values, ", "))
	}
	return out
}

// URL returns u as a string with user info and sensitive query values masked.
func URL(u *url.URL) string {
	if u == nil {
		return ""
	}
	cp := *u
	if cp.User != nil {
		cp.User = url.User(placeholder)
	}
	if cp.RawQuery != "" {
		q := cp.Query()
		for name := range q {
			if isSensitiveParam(name) {
				q.Set(name, placeholder)
			}
		}
		cp.RawQuery = q.Encode()
	}
	return cp.String()
}

func isSensitiveParam(name string) bool {
	lower := strings.ToLower(name)
	for _, s := range sensitiveParams {
		if strings.Contains(lower, s) {
			return true
		}
	}
	return false
}
