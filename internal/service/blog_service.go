package service

import (
	"context"
	"encoding/json"
	"time"

	"blog-be/internal/domain"
	"blog-be/internal/repository"
	"blog-be/pkg/apperr"
	"blog-be/pkg/logger"
	"blog-be/pkg/redis"
)

// blogService implements BlogService with a Redis cache-aside layer.
// The cache is best effort: any Redis failure falls through to Postgres.
type blogService struct {
	blogs  repository.BlogRepository
	cache  *redis.Client
	logger *logger.Logger
}

// NewBlogService creates a new blog service. cache may be nil when Redis is
// not configured; the service then always reads from the database.
func NewBlogService(blogs repository.BlogRepository, cache *redis.Client, log *logger.Logger) BlogService {
	return &blogService{
		blogs:  blogs,
		cache:  cache,
		logger: log,
	}
}

// ListByAuthor lists an author's blogs, newest first
func (s *blogService) ListByAuthor(ctx context.Context, authorID string) ([]domain.Blog, error) {
	if s.cache != nil {
		key := s.cache.KeyBuilder.KeyBlogsByUser(authorID)
		if cached, err := s.cache.Get(ctx, key); err == nil && cached != "" {
			var blogs []domain.Blog
			if err := json.Unmarshal([]byte(cached), &blogs); err == nil {
				s.logger.WithField("author_id", authorID).Debug("Blog list cache hit")
				return blogs, nil
			}
			s.logger.WithField("author_id", authorID).Warn("Blog list cache corrupted, reading database")
		}
	}

	blogs, err := s.blogs.ListByAuthor(ctx, authorID)
	if err != nil {
		s.logger.WithError(err).Error("Failed to list blogs")
		return nil, apperr.NewInternal("Error fetching blogs", err)
	}

	s.cacheSet(ctx, func(kb *redis.KeyBuilder) string { return kb.KeyBlogsByUser(authorID) }, blogs, redis.TTLBlogList)

	return blogs, nil
}

// Get fetches a single blog by ID
func (s *blogService) Get(ctx context.Context, id int64) (*domain.Blog, error) {
	if s.cache != nil {
		key := s.cache.KeyBuilder.KeyBlogByID(id)
		if cached, err := s.cache.Get(ctx, key); err == nil && cached != "" {
			var blog domain.Blog
			if err := json.Unmarshal([]byte(cached), &blog); err == nil {
				s.logger.WithField("blog_id", id).Debug("Blog cache hit")
				return &blog, nil
			}
			s.logger.WithField("blog_id", id).Warn("Blog cache corrupted, reading database")
		}
	}

	blog, err := s.blogs.GetByID(ctx, id)
	if err != nil {
		s.logger.WithError(err).Error("Failed to get blog")
		return nil, apperr.NewInternal("Error fetching blog", err)
	}
	if blog == nil {
		return nil, apperr.NewNotFound("Blog not found")
	}

	s.cacheSet(ctx, func(kb *redis.KeyBuilder) string { return kb.KeyBlogByID(id) }, blog, redis.TTLBlog)

	return blog, nil
}

// Delete removes a blog after checking the requester owns it
func (s *blogService) Delete(ctx context.Context, id int64, requesterID string) error {
	blog, err := s.blogs.GetByID(ctx, id)
	if err != nil {
		s.logger.WithError(err).Error("Failed to get blog for delete")
		return apperr.NewInternal("Error deleting blog", err)
	}
	if blog == nil {
		return apperr.NewNotFound("Blog not found")
	}
	if blog.AuthorID != requesterID {
		return apperr.NewForbidden("You do not own this blog")
	}

	if err := s.blogs.Delete(ctx, id); err != nil {
		s.logger.WithError(err).Error("Failed to delete blog")
		return apperr.NewInternal("Error deleting blog", err)
	}

	s.invalidate(ctx, id, blog.AuthorID)

	return nil
}

// Publish creates or updates a blog with status "published". The second
// return value reports whether a new row was created.
func (s *blogService) Publish(ctx context.Context, authorID string, req *domain.SaveBlogRequest) (*domain.Blog, bool, error) {
	if req.Title == "" || req.Content == "" {
		return nil, false, apperr.NewValidation("Title and content are required to publish")
	}
	return s.save(ctx, authorID, req, domain.BlogStatusPublished)
}

// SaveDraft creates or updates a blog with status "savedraft". Drafts only
// need a title; content may still be empty while the author is writing.
func (s *blogService) SaveDraft(ctx context.Context, authorID string, req *domain.SaveBlogRequest) (*domain.Blog, bool, error) {
	if req.Title == "" {
		return nil, false, apperr.NewValidation("Title is required to save draft")
	}
	return s.save(ctx, authorID, req, domain.BlogStatusDraft)
}

// save is the shared update-or-create path behind Publish and SaveDraft
func (s *blogService) save(ctx context.Context, authorID string, req *domain.SaveBlogRequest, status string) (*domain.Blog, bool, error) {
	if req.ID != 0 {
		existing, err := s.blogs.GetByID(ctx, req.ID)
		if err != nil {
			s.logger.WithError(err).Error("Failed to get blog for save")
			return nil, false, apperr.NewInternal("Error saving blog", err)
		}
		if existing != nil {
			if existing.AuthorID != authorID {
				return nil, false, apperr.NewForbidden("You do not own this blog")
			}

			existing.Title = req.Title
			existing.Content = req.Content
			existing.Tags = req.Tags
			existing.Status = status

			if err := s.blogs.Update(ctx, existing); err != nil {
				s.logger.WithError(err).Error("Failed to update blog")
				return nil, false, apperr.NewInternal("Error saving blog", err)
			}

			s.invalidate(ctx, existing.ID, authorID)

			return existing, false, nil
		}
		// Stale client ID, fall through and create a fresh row.
	}

	blog := &domain.Blog{
		Title:    req.Title,
		Content:  req.Content,
		Tags:     req.Tags,
		Status:   status,
		AuthorID: authorID,
	}

	if err := s.blogs.Create(ctx, blog); err != nil {
		s.logger.WithError(err).Error("Failed to create blog")
		return nil, false, apperr.NewInternal("Error saving blog", err)
	}

	s.invalidate(ctx, blog.ID, authorID)

	return blog, true, nil
}

// cacheSet stores a value in Redis, ignoring failures
func (s *blogService) cacheSet(ctx context.Context, key func(*redis.KeyBuilder) string, value interface{}, ttl time.Duration) {
	if s.cache == nil {
		return
	}

	data, err := json.Marshal(value)
	if err != nil {
		return
	}

	if err := s.cache.Set(ctx, key(s.cache.KeyBuilder), data, ttl); err != nil {
		s.logger.WithError(err).Warn("Failed to write blog cache")
	}
}

// invalidate drops every cache entry a write may have made stale
func (s *blogService) invalidate(ctx context.Context, blogID int64, authorID string) {
	if s.cache == nil {
		return
	}

	keys := []string{
		s.cache.KeyBuilder.KeyBlogByID(blogID),
		s.cache.KeyBuilder.KeyBlogsByUser(authorID),
		s.cache.KeyBuilder.KeyUserProfile(authorID),
	}

	if err := s.cache.Delete(ctx, keys...); err != nil {
		s.logger.WithError(err).Warn("Failed to invalidate blog cache")
	}
}
