package middleware

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"blog-be/internal/domain"
	"blog-be/internal/service"
	"blog-be/pkg/apperr"
	"blog-be/pkg/logger"
)

// ContextKey represents keys used in request context
type ContextKey string

const (
	// PrincipalContextKey is the key for the authenticated principal in context
	PrincipalContextKey ContextKey = "principal"
	// RequestIDContextKey is the key for request ID in context
	RequestIDContextKey ContextKey = "request_id"
)

// Auth creates the authentication middleware gating protected routes.
// A missing header, a malformed header and a token that fails validation all
// end the request with the same 401.
func Auth(tokens service.TokenService, logger *logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
				writeAuthError(w, apperr.NewUnauthorized("Unauthorized: Missing token"), logger)
				return
			}

			tokenString := strings.TrimPrefix(authHeader, "Bearer ")
			if tokenString == "" {
				writeAuthError(w, apperr.NewUnauthorized("Unauthorized: Missing token"), logger)
				return
			}

			claims, err := tokens.Validate(tokenString)
			if err != nil {
				logger.WithError(err).Debug("Token rejected")
				writeAuthError(w, apperr.NewUnauthorized("Unauthorized: Invalid token"), logger)
				return
			}

			ctx := context.WithValue(r.Context(), PrincipalContextKey, claims)
			r = r.WithContext(ctx)

			logger.WithField("user_id", claims.ID).Debug("User authenticated")

			next.ServeHTTP(w, r)
		})
	}
}

// RequireRole creates a middleware enforcing a minimum role on the principal.
// It must be mounted after Auth. No route currently populates roles; the
// constraint exists so a role-gated admin surface can be added without
// touching the authorizer.
func RequireRole(role string, logger *logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			principal, ok := PrincipalFromContext(r.Context())
			if !ok {
				writeAuthError(w, apperr.NewUnauthorized("Unauthorized: Missing token"), logger)
				return
			}

			if role != "" && principal.Role != role {
				logger.WithFields(map[string]interface{}{
					"user_id":       principal.ID,
					"required_role": role,
				}).Warn("Role check failed")
				writeAuthError(w, apperr.NewForbidden("Forbidden"), logger)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// PrincipalFromContext extracts the authenticated principal set by Auth
func PrincipalFromContext(ctx context.Context) (*domain.TokenClaims, bool) {
	principal, ok := ctx.Value(PrincipalContextKey).(*domain.TokenClaims)
	return principal, ok
}

// RequestID creates a middleware that adds a unique request ID to each request
func RequestID(logger *logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			requestID := generateRequestID()

			ctx := context.WithValue(r.Context(), RequestIDContextKey, requestID)
			r = r.WithContext(ctx)

			w.Header().Set("X-Request-ID", requestID)

			next.ServeHTTP(w, r)
		})
	}
}

// generateRequestID generates a simple request ID
func generateRequestID() string {
	return fmt.Sprintf("%d-%d", time.Now().Unix(), time.Now().Nanosecond())
}

// writeAuthError writes a rejection response and stops request processing
func writeAuthError(w http.ResponseWriter, appErr *apperr.Error, logger *logger.Logger) {
	logger.WithError(appErr).Debug("Request rejected")

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(appErr.StatusCode)

	if err := json.NewEncoder(w).Encode(map[string]string{"error": appErr.Message}); err != nil {
		logger.WithError(err).Error("Failed to encode error response")
	}
}
