package service

import (
	"context"
	"testing"
	"time"

	"blog-be/internal/domain"
	"blog-be/pkg/apperr"
	"blog-be/pkg/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// memBlogRepo is an in-memory BlogRepository for tests
type memBlogRepo struct {
	blogs  map[int64]*domain.Blog
	nextID int64
}

func newMemBlogRepo() *memBlogRepo {
	return &memBlogRepo{blogs: make(map[int64]*domain.Blog)}
}

func (m *memBlogRepo) Create(ctx context.Context, blog *domain.Blog) error {
	m.nextID++
	blog.ID = m.nextID
	blog.CreatedAt = time.Now().Add(time.Duration(m.nextID) * time.Millisecond)
	blog.UpdatedAt = blog.CreatedAt
	copied := *blog
	m.blogs[blog.ID] = &copied
	return nil
}

func (m *memBlogRepo) GetByID(ctx context.Context, id int64) (*domain.Blog, error) {
	blog, ok := m.blogs[id]
	if !ok {
		return nil, nil
	}
	copied := *blog
	return &copied, nil
}

func (m *memBlogRepo) ListByAuthor(ctx context.Context, authorID string) ([]domain.Blog, error) {
	result := make([]domain.Blog, 0)
	// Newest first: ids are assigned in creation order.
	for id := m.nextID; id >= 1; id-- {
		if blog, ok := m.blogs[id]; ok && blog.AuthorID == authorID {
			result = append(result, *blog)
		}
	}
	return result, nil
}

func (m *memBlogRepo) Update(ctx context.Context, blog *domain.Blog) error {
	blog.UpdatedAt = time.Now()
	copied := *blog
	m.blogs[blog.ID] = &copied
	return nil
}

func (m *memBlogRepo) Delete(ctx context.Context, id int64) error {
	delete(m.blogs, id)
	return nil
}

func newTestBlogService(t *testing.T) (BlogService, *memBlogRepo) {
	t.Helper()

	log, err := logger.New("error")
	require.NoError(t, err)

	repo := newMemBlogRepo()
	return NewBlogService(repo, nil, log), repo
}

func TestPublish(t *testing.T) {
	svc, _ := newTestBlogService(t)
	ctx := context.Background()

	t.Run("creates a published blog", func(t *testing.T) {
		blog, created, err := svc.Publish(ctx, "author-1", &domain.SaveBlogRequest{
			Title:   "Hello",
			Content: "World",
			Tags:    []string{"go"},
		})
		require.NoError(t, err)
		assert.True(t, created)
		assert.Equal(t, domain.BlogStatusPublished, blog.Status)
		assert.Equal(t, "author-1", blog.AuthorID)
		assert.NotZero(t, blog.ID)
	})

	t.Run("updates an existing blog in place", func(t *testing.T) {
		draft, _, err := svc.SaveDraft(ctx, "author-1", &domain.SaveBlogRequest{Title: "WIP"})
		require.NoError(t, err)

		published, created, err := svc.Publish(ctx, "author-1", &domain.SaveBlogRequest{
			ID:      draft.ID,
			Title:   "Done",
			Content: "Final text",
		})
		require.NoError(t, err)
		assert.False(t, created)
		assert.Equal(t, draft.ID, published.ID)
		assert.Equal(t, "Done", published.Title)
		assert.Equal(t, domain.BlogStatusPublished, published.Status)
	})

	t.Run("requires title and content", func(t *testing.T) {
		_, _, err := svc.Publish(ctx, "author-1", &domain.SaveBlogRequest{Title: "No content"})
		assert.Equal(t, apperr.KindValidation, apperr.From(err).Kind)

		_, _, err = svc.Publish(ctx, "author-1", &domain.SaveBlogRequest{Content: "No title"})
		assert.Equal(t, apperr.KindValidation, apperr.From(err).Kind)
	})

	t.Run("rejects updating someone else's blog", func(t *testing.T) {
		blog, _, err := svc.Publish(ctx, "author-1", &domain.SaveBlogRequest{Title: "Mine", Content: "x"})
		require.NoError(t, err)

		_, _, err = svc.Publish(ctx, "author-2", &domain.SaveBlogRequest{
			ID:      blog.ID,
			Title:   "Theirs",
			Content: "y",
		})
		assert.Equal(t, apperr.KindForbidden, apperr.From(err).Kind)
	})
}

func TestSaveDraft(t *testing.T) {
	svc, _ := newTestBlogService(t)
	ctx := context.Background()

	t.Run("content may be empty while drafting", func(t *testing.T) {
		blog, created, err := svc.SaveDraft(ctx, "author-1", &domain.SaveBlogRequest{Title: "Ideas"})
		require.NoError(t, err)
		assert.True(t, created)
		assert.Equal(t, domain.BlogStatusDraft, blog.Status)
	})

	t.Run("title is required", func(t *testing.T) {
		_, _, err := svc.SaveDraft(ctx, "author-1", &domain.SaveBlogRequest{Content: "orphan text"})
		assert.Equal(t, apperr.KindValidation, apperr.From(err).Kind)
	})

	t.Run("stale id falls back to creating a new row", func(t *testing.T) {
		blog, created, err := svc.SaveDraft(ctx, "author-1", &domain.SaveBlogRequest{
			ID:    9999,
			Title: "Recovered draft",
		})
		require.NoError(t, err)
		assert.True(t, created)
		assert.NotEqual(t, int64(9999), blog.ID)
	})
}

func TestGetAndList(t *testing.T) {
	svc, _ := newTestBlogService(t)
	ctx := context.Background()

	first, _, err := svc.Publish(ctx, "author-1", &domain.SaveBlogRequest{Title: "First", Content: "a"})
	require.NoError(t, err)
	second, _, err := svc.Publish(ctx, "author-1", &domain.SaveBlogRequest{Title: "Second", Content: "b"})
	require.NoError(t, err)
	_, _, err = svc.Publish(ctx, "author-2", &domain.SaveBlogRequest{Title: "Other", Content: "c"})
	require.NoError(t, err)

	t.Run("get returns the blog", func(t *testing.T) {
		blog, err := svc.Get(ctx, first.ID)
		require.NoError(t, err)
		assert.Equal(t, "First", blog.Title)
	})

	t.Run("get unknown id is not found", func(t *testing.T) {
		_, err := svc.Get(ctx, 12345)
		assert.Equal(t, apperr.KindNotFound, apperr.From(err).Kind)
	})

	t.Run("list returns only the author's blogs, newest first", func(t *testing.T) {
		blogs, err := svc.ListByAuthor(ctx, "author-1")
		require.NoError(t, err)
		require.Len(t, blogs, 2)
		assert.Equal(t, second.ID, blogs[0].ID)
		assert.Equal(t, first.ID, blogs[1].ID)
	})
}

func TestDelete(t *testing.T) {
	svc, repo := newTestBlogService(t)
	ctx := context.Background()

	blog, _, err := svc.Publish(ctx, "author-1", &domain.SaveBlogRequest{Title: "Doomed", Content: "x"})
	require.NoError(t, err)

	t.Run("only the owner may delete", func(t *testing.T) {
		err := svc.Delete(ctx, blog.ID, "author-2")
		assert.Equal(t, apperr.KindForbidden, apperr.From(err).Kind)
	})

	t.Run("owner deletes successfully", func(t *testing.T) {
		require.NoError(t, svc.Delete(ctx, blog.ID, "author-1"))
		_, ok := repo.blogs[blog.ID]
		assert.False(t, ok)
	})

	t.Run("deleting a missing blog is not found", func(t *testing.T) {
		err := svc.Delete(ctx, blog.ID, "author-1")
		assert.Equal(t, apperr.KindNotFound, apperr.From(err).Kind)
	})
}
