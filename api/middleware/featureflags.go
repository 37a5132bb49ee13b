// ABOUTME: Middleware that injects the feature flag manager into request contexts
// ABOUTME: Lets downstream services consult flags without a package-level global

package middleware

import (
	"net/http"

	"chapterone-api/pkg/featureflags"
)

// FeatureFlagMiddleware makes the flag manager reachable through
// featureflags.FromContext for every request.
func FeatureFlagMiddleware(manager featureflags.Manager) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := featureflags.WithManager(r.Context(), manager)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
