package handler

import (
	"encoding/json"
	"net/http"

	"blog-be/internal/container"
	"blog-be/internal/domain"
	"blog-be/internal/middleware"
	"blog-be/pkg/apperr"
)

// SessionCookieName is the cookie carrying the session token
const SessionCookieName = "token"

// SessionCookieMaxAge is the cookie lifetime in seconds, matching the token TTL
const SessionCookieMaxAge = 7 * 24 * 60 * 60

// AuthHandler handles signup, signin and session introspection
type AuthHandler struct {
	container *container.Container
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(container *container.Container) *AuthHandler {
	return &AuthHandler{container: container}
}

// Signup handles POST /api/auth/signup
func (h *AuthHandler) Signup(w http.ResponseWriter, r *http.Request) {
	logger := h.container.GetLogger()

	var req domain.SignupRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, apperr.NewValidation("Invalid request body"), logger)
		return
	}

	token, _, err := h.container.GetAuthService().Signup(r.Context(), req.Email, req.Password)
	if err != nil {
		writeError(w, err, logger)
		return
	}

	h.setSessionCookie(w, token)
	writeJSON(w, http.StatusCreated, map[string]string{"message": "Signup successful"}, logger)
}

// Signin handles POST /api/auth/signin
func (h *AuthHandler) Signin(w http.ResponseWriter, r *http.Request) {
	logger := h.container.GetLogger()

	var req domain.SigninRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, apperr.NewValidation("Invalid request body"), logger)
		return
	}

	token, user, err := h.container.GetAuthService().Signin(r.Context(), req.Email, req.Password)
	if err != nil {
		writeError(w, err, logger)
		return
	}

	h.setSessionCookie(w, token)
	writeJSON(w, http.StatusOK, domain.SigninResponse{
		Success: true,
		Message: "Login successful",
		User:    *user,
		Token:   token,
	}, logger)
}

// Me handles GET /api/auth/me
func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request) {
	logger := h.container.GetLogger()

	principal, ok := middleware.PrincipalFromContext(r.Context())
	if !ok {
		writeError(w, apperr.NewUnauthorized("Unauthorized: Missing token"), logger)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{"user": principal}, logger)
}

// Profile handles POST /api/auth/profile
func (h *AuthHandler) Profile(w http.ResponseWriter, r *http.Request) {
	logger := h.container.GetLogger()

	principal, ok := middleware.PrincipalFromContext(r.Context())
	if !ok {
		writeError(w, apperr.NewUnauthorized("Unauthorized: Missing token"), logger)
		return
	}

	profile, err := h.container.GetAuthService().Profile(r.Context(), principal.ID)
	if err != nil {
		writeError(w, err, logger)
		return
	}

	writeJSON(w, http.StatusOK, profile, logger)
}

// setSessionCookie hands the token to the browser. HttpOnly keeps scripts
// away from it; Secure is only dropped outside production so local
// development over plain HTTP still works.
func (h *AuthHandler) setSessionCookie(w http.ResponseWriter, token string) {
	http.SetCookie(w, &http.Cookie{
		Name:     SessionCookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   SessionCookieMaxAge,
		HttpOnly: true,
		Secure:   h.container.GetConfig().IsProduction(),
		SameSite: http.SameSiteLaxMode,
	})
}
