package repository

import (
	"context"
	"errors"

	"blog-be/internal/domain"
)

// ErrDuplicateEmail is returned when a user row violates the email unique index
var ErrDuplicateEmail = errors.New("email already exists")

// UserRepository persists user accounts keyed by email
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	GetByID(ctx context.Context, id string) (*domain.User, error)
}

// BlogRepository persists blog posts
type BlogRepository interface {
	Create(ctx context.Context, blog *domain.Blog) error
	GetByID(ctx context.Context, id int64) (*domain.Blog, error)
	ListByAuthor(ctx context.Context, authorID string) ([]domain.Blog, error)
	Update(ctx context.Context, blog *domain.Blog) error
	Delete(ctx context.Context, id int64) error
}
