package rest

import (
	"log/slog"
	"net/http"
)

// AuthHandler serves the session endpoints owned by this API. Sign-in is
// handled by the external auth provider.
type AuthHandler struct {
	cookieName     string
	logoutRedirect string
	secureCookies  bool
	log            *slog.Logger
}

// NewAuthHandler creates an AuthHandler.
func NewAuthHandler(cookieName, logoutRedirect string, secureCookies bool, logger *slog.Logger) *AuthHandler {
	return &AuthHandler{
		cookieName:     cookieName,
		logoutRedirect: logoutRedirect,
		secureCookies:  secureCookies,
		log:            logger.With("handler", "auth"),
	}
}

// Logout handles POST /api/auth/logout. The expired cookie travels in the
// same 303 response as the redirect, so it is cleared before the browser
// navigates.
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	http.SetCookie(w, &http.Cookie{
		Name:     h.cookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   h.secureCookies,
		SameSite: http.SameSiteLaxMode,
	})
	w.Header().Set("Cache-Control", "no-store")

	h.log.InfoContext(r.Context(), "logout")
	http.Redirect(w, r, h.logoutRedirect, http.StatusSeeOther)
}
