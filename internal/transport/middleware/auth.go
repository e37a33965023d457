package middleware

import (
	"net/http"
	"strings"

	"github.com/heartmarshall/tenxcards-backend/internal/auth"
)

type tokenVerifier interface {
	Verify(token string) (auth.Identity, error)
}

// AuthOptions configures where the access token is read from.
type AuthOptions struct {
	// CookieName is consulted when no Authorization header is sent.
	CookieName string
	// DevUser, when set, is attached to requests that carry no token.
	// Config validation allows it only in the local environment.
	DevUser *auth.Identity
}

// Auth attaches the verified identity to the request context. Requests
// without a token pass through anonymously and are rejected by the service
// layer; a token that fails verification is answered with 401 here.
func Auth(verifier tokenVerifier, opts AuthOptions) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := extractToken(r, opts.CookieName)
			if token == "" {
				if opts.DevUser != nil {
					noteUser(r.Context(), opts.DevUser.ID)
					next.ServeHTTP(w, r.WithContext(auth.WithIdentity(r.Context(), *opts.DevUser)))
					return
				}
				next.ServeHTTP(w, r)
				return
			}

			id, err := verifier.Verify(token)
			if err != nil {
				writeError(w, http.StatusUnauthorized, "unauthorized", "invalid or expired token")
				return
			}

			noteUser(r.Context(), id.ID)
			next.ServeHTTP(w, r.WithContext(auth.WithIdentity(r.Context(), id)))
		})
	}
}

func extractToken(r *http.Request, cookieName string) string {
	if h := r.Header.Get("Authorization"); h != "" {
		scheme, token, ok := strings.Cut(h, " ")
		if ok && strings.EqualFold(scheme, "Bearer") {
			return strings.TrimSpace(token)
		}
		return ""
	}
	if cookieName == "" {
		return ""
	}
	if c, err := r.Cookie(cookieName); err == nil {
		return c.Value
	}
	return ""
}

// RequireIdentity answers 401 when no identity is attached to the request.
func RequireIdentity() Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if _, ok := auth.IdentityFromCtx(r.Context()); !ok {
				writeError(w, http.StatusUnauthorized, "unauthorized", "authentication required")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
