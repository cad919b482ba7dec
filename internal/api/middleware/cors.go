package middleware

import (
	"net/http"
	"net/url"
	"strings"

	"github.com/go-chi/cors"
)

// CORS returns a cross-origin middleware restricted to the configured
// trusted origins. Entries are matched exactly, except entries whose
// host part starts with "*." which match any single-or-deeper subdomain
// of that suffix (e.g. "https://*.taskflow.app" admits
// "https://admin.taskflow.app").
func CORS(allowedOrigins []string) func(http.Handler) http.Handler {
	return cors.Handler(cors.Options{
		AllowOriginFunc: func(r *http.Request, origin string) bool {
			return OriginAllowed(allowedOrigins, origin)
		},
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowedHeaders:   []string{"Accept", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           300,
	})
}

// OriginAllowed reports whether the given origin matches any entry of
// the allow-list.
func OriginAllowed(patterns []string, origin string) bool {
	if origin == "" {
		return false
	}

	originURL, err := url.Parse(origin)
	if err != nil || originURL.Host == "" {
		return false
	}

	for _, pattern := range patterns {
		if pattern == origin {
			return true
		}

		scheme, host, ok := splitPattern(pattern)
		if !ok || !strings.HasPrefix(host, "*.") {
			continue
		}
		if scheme != "" && scheme != originURL.Scheme {
			continue
		}
		if strings.HasSuffix(originURL.Host, host[1:]) { // host[1:] keeps the leading dot
			return true
		}
	}
	return false
}

// splitPattern separates an allow-list entry into scheme and host.
// Entries without a scheme ("*.taskflow.app") match any scheme.
func splitPattern(pattern string) (scheme, host string, ok bool) {
	if pattern == "" {
		return "", "", false
	}
	if idx := strings.Index(pattern, "://"); idx >= 0 {
		return pattern[:idx], pattern[idx+3:], pattern[idx+3:] != ""
	}
	return "", pattern, true
}
