package middleware

import "net/http"

type featureChecker interface {
	IsEnabled(name string) bool
}

// RequireFeature answers 503 feature_disabled, before any handler runs,
// when the named feature is off in the current environment.
func RequireFeature(flags featureChecker, name string) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !flags.IsEnabled(name) {
				writeError(w, http.StatusServiceUnavailable, "feature_disabled", "feature "+name+" is disabled")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
