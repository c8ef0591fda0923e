package domain

import "time"

// Blog status values. "savedraft" matches what the web client sends and
// stores; renaming it would break existing rows.
const (
	BlogStatusDraft     = "savedraft"
	BlogStatusPublished = "published"
)

// Blog represents a blog post
type Blog struct {
	ID        int64     `json:"id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	Tags      []string  `json:"tags"`
	Status    string    `json:"status"`
	AuthorID  string    `json:"authorId"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// SaveBlogRequest is the body for publish and save-draft submissions.
// ID is zero when the client is creating a new post.
type SaveBlogRequest struct {
	ID      int64    `json:"id"`
	Title   string   `json:"title"`
	Content string   `json:"content"`
	Tags    []string `json:"tags"`
}

// IsPublished reports whether the blog is visible to readers
func (b *Blog) IsPublished() bool {
	return b.Status == BlogStatusPublished
}
