package token

import (
	"errors"
	"fmt"
	"time"

	"blog-be/internal/domain"
	"blog-be/pkg/logger"

	"github.com/golang-jwt/jwt/v5"
)

// ErrInvalidToken is returned for any token Validate rejects: malformed,
// bad signature, or expired. Callers must not distinguish between them.
var ErrInvalidToken = errors.New("invalid token")

// DefaultTTL is the session token lifetime
const DefaultTTL = 7 * 24 * time.Hour

// sessionClaims is the wire form of a session token payload
type sessionClaims struct {
	UserID string `json:"id"`
	Email  string `json:"email"`
	Role   string `json:"role,omitempty"`
	jwt.RegisteredClaims
}

// Service mints and validates HS256-signed session tokens
type Service struct {
	secret []byte
	ttl    time.Duration
	logger *logger.Logger
}

// NewService creates a token service. An empty secret is a fatal
// misconfiguration: the process cannot issue or verify sessions without it.
func NewService(secret string, log *logger.Logger) (*Service, error) {
	if secret == "" {
		return nil, fmt.Errorf("token signing secret is not configured")
	}

	return &Service{
		secret: []byte(secret),
		ttl:    DefaultTTL,
		logger: log,
	}, nil
}

// Mint serializes claims into a signed token expiring after the session TTL
func (s *Service) Mint(claims *domain.TokenClaims) (string, error) {
	now := time.Now()

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, sessionClaims{
		UserID: claims.ID,
		Email:  claims.Email,
		Role:   claims.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
		},
	})

	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}

	return signed, nil
}

// Validate verifies signature and expiry and returns the decoded claims.
// Every failure collapses into ErrInvalidToken so the response shape never
// leaks which check rejected the token.
func (s *Service) Validate(tokenString string) (*domain.TokenClaims, error) {
	var claims sessionClaims

	token, err := jwt.ParseWithClaims(tokenString, &claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.secret, nil
	})

	if err != nil {
		s.logger.WithError(err).Debug("Token validation failed")
		return nil, ErrInvalidToken
	}

	if !token.Valid {
		return nil, ErrInvalidToken
	}

	return &domain.TokenClaims{
		ID:    claims.UserID,
		Email: claims.Email,
		Role:  claims.Role,
	}, nil
}
