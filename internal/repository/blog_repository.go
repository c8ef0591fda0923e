package repository

import (
	"context"
	"fmt"

	"blog-be/internal/domain"
	"blog-be/pkg/database"

	"github.com/jackc/pgx/v5"
)

type PostgresBlogRepository struct {
	db *database.PostgresDB
}

func NewBlogRepository(db *database.PostgresDB) *PostgresBlogRepository {
	return &PostgresBlogRepository{db: db}
}

// Create inserts a new blog and fills in the generated ID and timestamps
func (r *PostgresBlogRepository) Create(ctx context.Context, blog *domain.Blog) error {
	query := `
		INSERT INTO blogs (title, content, tags, status, author_id)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at, updated_at
	`

	err := r.db.Pool.QueryRow(ctx, query,
		blog.Title,
		blog.Content,
		blog.Tags,
		blog.Status,
		blog.AuthorID,
	).Scan(&blog.ID, &blog.CreatedAt, &blog.UpdatedAt)

	if err != nil {
		return fmt.Errorf("failed to create blog: %w", err)
	}

	return nil
}

// GetByID gets a blog by ID, returning (nil, nil) when no row matches
func (r *PostgresBlogRepository) GetByID(ctx context.Context, id int64) (*domain.Blog, error) {
	var blog domain.Blog
	query := `
		SELECT id, title, content, tags, status, author_id, created_at, updated_at
		FROM blogs
		WHERE id = $1
	`

	err := r.db.Pool.QueryRow(ctx, query, id).Scan(
		&blog.ID,
		&blog.Title,
		&blog.Content,
		&blog.Tags,
		&blog.Status,
		&blog.AuthorID,
		&blog.CreatedAt,
		&blog.UpdatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get blog: %w", err)
	}

	return &blog, nil
}

// ListByAuthor lists an author's blogs, newest first
func (r *PostgresBlogRepository) ListByAuthor(ctx context.Context, authorID string) ([]domain.Blog, error) {
	query := `
		SELECT id, title, content, tags, status, author_id, created_at, updated_at
		FROM blogs
		WHERE author_id = $1
		ORDER BY created_at DESC
	`

	rows, err := r.db.Pool.Query(ctx, query, authorID)
	if err != nil {
		return nil, fmt.Errorf("failed to list blogs: %w", err)
	}
	defer rows.Close()

	blogs := make([]domain.Blog, 0)
	for rows.Next() {
		var blog domain.Blog
		if err := rows.Scan(
			&blog.ID,
			&blog.Title,
			&blog.Content,
			&blog.Tags,
			&blog.Status,
			&blog.AuthorID,
			&blog.CreatedAt,
			&blog.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan blog row: %w", err)
		}
		blogs = append(blogs, blog)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate blog rows: %w", err)
	}

	return blogs, nil
}

// Update rewrites title, content, tags and status of an existing blog
func (r *PostgresBlogRepository) Update(ctx context.Context, blog *domain.Blog) error {
	query := `
		UPDATE blogs
		SET title = $2, content = $3, tags = $4, status = $5, updated_at = NOW()
		WHERE id = $1
		RETURNING updated_at
	`

	err := r.db.Pool.QueryRow(ctx, query,
		blog.ID,
		blog.Title,
		blog.Content,
		blog.Tags,
		blog.Status,
	).Scan(&blog.UpdatedAt)

	if err == pgx.ErrNoRows {
		return fmt.Errorf("blog %d not found", blog.ID)
	}
	if err != nil {
		return fmt.Errorf("failed to update blog: %w", err)
	}

	return nil
}

// Delete removes a blog by ID
func (r *PostgresBlogRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.db.Pool.Exec(ctx, `DELETE FROM blogs WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete blog: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("blog %d not found", id)
	}
	return nil
}
