package server

import (
	"errors"
	"net/http"
	"net/url"
	"strconv"

	"github.com/charmbracelet/log"
	"github.com/desertthunder/spotirelay/internal/services"
	"github.com/desertthunder/spotirelay/internal/shared"
)

// AuthHandler serves the OAuth2 authorization flow: login redirect, callback
// exchange, refresh, and logout. Implements [Handler] for registration with
// a [Router].
//
// Tokens are handed to the client application via redirect query parameters
// or JSON; the relay keeps nothing.
type AuthHandler struct {
	auth         services.Authenticator
	clientOrigin string
	logger       *log.Logger
}

// NewAuthHandler creates an auth handler redirecting back to clientOrigin
// after the handshake completes.
func NewAuthHandler(auth services.Authenticator, clientOrigin string, logger *log.Logger) *AuthHandler {
	if logger == nil {
		logger = shared.NewLogger(nil)
	}

	return &AuthHandler{
		auth:         auth,
		clientOrigin: clientOrigin,
		logger:       shared.WithLogger(logger, "handler", "auth"),
	}
}

// Routes returns the patterns this handler serves.
func (h *AuthHandler) Routes() []string {
	return []string{
		"GET /auth/login",
		"GET /auth/callback",
		"GET /auth/refresh_token",
		"GET /auth/logout",
	}
}

func (h *AuthHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	switch r.URL.Path {
	case "/auth/login":
		h.login(w, r)
	case "/auth/callback":
		h.callback(w, r)
	case "/auth/refresh_token":
		h.refresh(w, r)
	case "/auth/logout":
		h.logout(w, r)
	default:
		http.NotFound(w, r)
	}
}

// login redirects the user to the provider's consent screen.
func (h *AuthHandler) login(w http.ResponseWriter, r *http.Request) {
	state := shared.GenerateState()
	http.Redirect(w, r, h.auth.AuthCodeURL(state), http.StatusFound)
}

// callback exchanges the authorization code for tokens and hands them to the
// client application as query parameters.
//
// An absent code means the user backed out of the consent screen; they are
// returned to the client root with no tokens and no error.
func (h *AuthHandler) callback(w http.ResponseWriter, r *http.Request) {
	code := r.URL.Query().Get("code")
	if code == "" {
		http.Redirect(w, r, h.clientOrigin+"/", http.StatusFound)
		return
	}

	set, err := h.auth.Exchange(r.Context(), code)
	if err != nil {
		if errors.Is(err, shared.ErrTokenRejected) {
			h.logger.Warn("provider rejected token exchange", "error", err)
			http.Redirect(w, r, h.clientOrigin+"/?error=invalid_token", http.StatusFound)
			return
		}

		h.logger.Error("token exchange failed", "error", err)
		http.Error(w, "authentication failed", http.StatusInternalServerError)
		return
	}

	params := url.Values{}
	params.Set("access_token", set.AccessToken)
	params.Set("refresh_token", set.RefreshToken)
	params.Set("expires_in", strconv.FormatInt(set.ExpiresIn, 10))

	http.Redirect(w, r, h.clientOrigin+"/?"+params.Encode(), http.StatusFound)
}

// refresh exchanges a refresh token for a new access token, returned as JSON.
func (h *AuthHandler) refresh(w http.ResponseWriter, r *http.Request) {
	refreshToken := r.URL.Query().Get("refresh_token")
	if refreshToken == "" {
		http.Error(w, "missing refresh_token parameter", http.StatusBadRequest)
		return
	}

	set, err := h.auth.Refresh(r.Context(), refreshToken)
	if err != nil {
		h.logger.Error("token refresh failed", "error", err)
		http.Error(w, "failed to refresh token", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"access_token": set.AccessToken,
		"expires_in":   set.ExpiresIn,
	})
}

// logout returns the user to the client root. Tokens live client-side, so
// there is nothing to revoke here.
func (h *AuthHandler) logout(w http.ResponseWriter, r *http.Request) {
	http.Redirect(w, r, h.clientOrigin+"/", http.StatusFound)
}
