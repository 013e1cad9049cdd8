package domain

import "strings"

// NormalizeDomain lower-cases a host and strips one leading "www.". It is
// idempotent, so re-normalizing an already normalized domain is harmless.
func NormalizeDomain(host string) string {
	host = strings.ToLower(strings.TrimSpace(host))
	host = strings.TrimPrefix(host, "www.")
	return host
}
