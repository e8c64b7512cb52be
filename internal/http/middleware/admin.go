package middleware

import (
	"crypto/subtle"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/davidbz/feequote/internal/config"
	"github.com/davidbz/feequote/internal/observability"
)

const bearerPrefix = "Bearer "

// AdminAuth only lets through requests carrying the configured operator token as a bearer
// credential. With no token configured every request is refused.
func AdminAuth(cfg *config.AdminConfig) Middleware {
	var token []byte
	if cfg != nil {
		token = []byte(cfg.Token)
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			presented := []byte(strings.TrimPrefix(header, bearerPrefix))

			if len(token) == 0 || !strings.HasPrefix(header, bearerPrefix) ||
				subtle.ConstantTimeCompare(presented, token) != 1 {
				observability.FromContext(r.Context()).Warn("operator request rejected",
					observability.String("path", r.URL.Path),
					observability.Bool("credential_present", header != ""))

				w.Header().Set("Content-Type", "application/json")
				w.Header().Set("WWW-Authenticate", `Bearer realm="operator"`)
				w.WriteHeader(http.StatusUnauthorized)
				_ = json.NewEncoder(w).Encode(map[string]string{"error": "operator credential required"})
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
