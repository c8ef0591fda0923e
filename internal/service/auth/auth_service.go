package auth

import (
	"context"

	"blog-be/internal/domain"
	"blog-be/internal/repository"
	"blog-be/internal/service"
	"blog-be/pkg/apperr"
	"blog-be/pkg/logger"

	"github.com/google/uuid"
)

// Service implements the AuthService interface. It is the single signup and
// signin orchestration path; handlers never touch the user repository or the
// hasher directly.
type Service struct {
	users  repository.UserRepository
	blogs  repository.BlogRepository
	hasher PasswordHasher
	tokens service.TokenService
	logger *logger.Logger
}

// NewService creates a new auth service
func NewService(
	users repository.UserRepository,
	blogs repository.BlogRepository,
	hasher PasswordHasher,
	tokens service.TokenService,
	log *logger.Logger,
) service.AuthService {
	return &Service{
		users:  users,
		blogs:  blogs,
		hasher: hasher,
		tokens: tokens,
		logger: log,
	}
}

// Signup registers a new account and mints a session token for it.
// A duplicate email is rejected without touching the existing row.
func (s *Service) Signup(ctx context.Context, email, password string) (string, *domain.PublicUser, error) {
	if email == "" || password == "" {
		return "", nil, apperr.NewValidation("Email and password are required")
	}

	existing, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		s.logger.WithError(err).Error("Failed to look up user during signup")
		return "", nil, apperr.NewInternal("Internal server error", err)
	}
	if existing != nil {
		return "", nil, apperr.NewConflict("User already exists")
	}

	digest, err := s.hasher.Hash(password)
	if err != nil {
		s.logger.WithError(err).Error("Failed to hash password")
		return "", nil, apperr.NewInternal("Internal server error", err)
	}

	user := &domain.User{
		ID:           uuid.New().String(),
		Email:        email,
		PasswordHash: digest,
	}

	if err := s.users.Create(ctx, user); err != nil {
		// The unique index may still reject the row if a concurrent signup
		// won the race between the lookup and the insert.
		if err == repository.ErrDuplicateEmail {
			return "", nil, apperr.NewConflict("User already exists")
		}
		s.logger.WithError(err).Error("Failed to create user")
		return "", nil, apperr.NewInternal("Internal server error", err)
	}

	token, err := s.tokens.Mint(&domain.TokenClaims{ID: user.ID, Email: user.Email})
	if err != nil {
		s.logger.WithError(err).Error("Failed to mint token after signup")
		return "", nil, apperr.NewInternal("Internal server error", err)
	}

	s.logger.WithField("user_id", user.ID).Info("User signed up")

	return token, &domain.PublicUser{ID: user.ID, Email: user.Email}, nil
}

// Signin verifies credentials and mints a session token. Unknown email and
// wrong password return the same error so the response never reveals which
// check failed.
func (s *Service) Signin(ctx context.Context, email, password string) (string, *domain.PublicUser, error) {
	if email == "" || password == "" {
		return "", nil, apperr.NewUnauthorized("Invalid credentials")
	}

	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		s.logger.WithError(err).Error("Failed to look up user during signin")
		return "", nil, apperr.NewInternal("Internal server error", err)
	}
	if user == nil || user.PasswordHash == "" {
		return "", nil, apperr.NewUnauthorized("Invalid credentials")
	}

	if !s.hasher.Compare(password, user.PasswordHash) {
		return "", nil, apperr.NewUnauthorized("Invalid credentials")
	}

	token, err := s.tokens.Mint(&domain.TokenClaims{ID: user.ID, Email: user.Email})
	if err != nil {
		s.logger.WithError(err).Error("Failed to mint token after signin")
		return "", nil, apperr.NewInternal("Internal server error", err)
	}

	s.logger.WithField("user_id", user.ID).Info("User signed in")

	return token, &domain.PublicUser{ID: user.ID, Email: user.Email}, nil
}

// Profile returns the account summary with the user's blogs, newest first
func (s *Service) Profile(ctx context.Context, userID string) (*domain.Profile, error) {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		s.logger.WithError(err).Error("Failed to load user for profile")
		return nil, apperr.NewInternal("Internal server error", err)
	}
	if user == nil {
		return nil, apperr.NewNotFound("User not found")
	}

	blogs, err := s.blogs.ListByAuthor(ctx, user.ID)
	if err != nil {
		s.logger.WithError(err).Error("Failed to load blogs for profile")
		return nil, apperr.NewInternal("Internal server error", err)
	}

	return &domain.Profile{
		Email:     user.Email,
		CreatedAt: user.CreatedAt,
		Blogs:     blogs,
	}, nil
}
