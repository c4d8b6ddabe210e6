package permission

import (
	"net/http"

	"github.com/rs/zerolog/log"

	"github.com/majlis/majlis-api/internal/middleware"
	"github.com/majlis/majlis-api/internal/pkg/response"
)

// Require gates a route behind an enabled grant for kind. A resolver
// error denies the request rather than letting it through.
func Require(resolver *Resolver, kind Kind) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			userID := middleware.GetUserID(r.Context())

			allowed, err := resolver.Can(r.Context(), userID, kind)
			if err != nil {
				log.Warn().Err(err).Str("kind", string(kind)).Msg("permission check failed, denying")
				response.Forbidden(w, "Permission denied")
				return
			}
			if !allowed {
				response.Forbidden(w, "Permission denied")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
