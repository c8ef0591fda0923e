package service

import (
	"context"

	"blog-be/internal/domain"
)

// TokenService mints and validates session tokens
type TokenService interface {
	Mint(claims *domain.TokenClaims) (string, error)
	Validate(tokenString string) (*domain.TokenClaims, error)
}

// AuthService handles signup, signin and account profile lookups
type AuthService interface {
	Signup(ctx context.Context, email, password string) (string, *domain.PublicUser, error)
	Signin(ctx context.Context, email, password string) (string, *domain.PublicUser, error)
	Profile(ctx context.Context, userID string) (*domain.Profile, error)
}

// BlogService handles blog CRUD, publishing and draft autosave
type BlogService interface {
	ListByAuthor(ctx context.Context, authorID string) ([]domain.Blog, error)
	Get(ctx context.Context, id int64) (*domain.Blog, error)
	Delete(ctx context.Context, id int64, requesterID string) error
	Publish(ctx context.Context, authorID string, req *domain.SaveBlogRequest) (*domain.Blog, bool, error)
	SaveDraft(ctx context.Context, authorID string, req *domain.SaveBlogRequest) (*domain.Blog, bool, error)
}

// Services holds the single binding of every service implementation
type Services struct {
	Auth  AuthService
	Blog  BlogService
	Token TokenService
}
