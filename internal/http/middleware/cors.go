package middleware

import (
	"net/http"

	"github.com/rs/cors"

	"github.com/davidbz/feequote/internal/config"
)

// exposedHeaders lets browser clients read the correlation IDs set by Trace.
var exposedHeaders = []string{"X-Trace-Id", "X-Request-Id"} //nolint:gochecknoglobals // read-only

// CORS applies the configured cross-origin policy for the sponsor portal.
func CORS(cfg *config.CORSConfig) Middleware {
	if cfg == nil {
		return func(next http.Handler) http.Handler {
			return next
		}
	}

	c := cors.New(cors.Options{
		AllowedOrigins:   cfg.AllowedOrigins,
		AllowedMethods:   cfg.AllowedMethods,
		AllowedHeaders:   cfg.AllowedHeaders,
		ExposedHeaders:   exposedHeaders,
		AllowCredentials: cfg.AllowCredentials,
		MaxAge:           cfg.MaxAge,
	})

	return c.Handler
}
