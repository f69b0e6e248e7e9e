// internal/ratelimit/identity.go
package ratelimit

import (
	"net/http"
	"strings"
)

// ClientIP extracts a best-effort client identity from proxy headers:
// the first X-Forwarded-For entry, then X-Real-IP, then Client-IP.
// Unattributable clients all share the "unknown" bucket.
func ClientIP(r *http.Request) string {
	if forwarded := r.Header.Get("X-Forwarded-For"); forwarded != "" {
		if ip := strings.TrimSpace(strings.Split(forwarded, ",")[0]); ip != "" {
			return ip
		}
	}
	if ip := strings.TrimSpace(r.Header.Get("X-Real-IP")); ip != "" {
		return ip
	}
	if ip := strings.TrimSpace(r.Header.Get("Client-IP")); ip != "" {
		return ip
	}
	return "unknown"
}
