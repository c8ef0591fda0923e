package handler

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"blog-be/internal/config"
	"blog-be/internal/container"
	"blog-be/internal/domain"
	"blog-be/internal/middleware"
	"blog-be/internal/repository"
	"blog-be/internal/service"
	"blog-be/internal/service/auth"
	"blog-be/internal/service/token"
	"blog-be/pkg/logger"
)

// memUserRepo is an in-memory UserRepository for handler tests
type memUserRepo struct {
	byEmail map[string]*domain.User
}

func (m *memUserRepo) Create(ctx context.Context, user *domain.User) error {
	if _, exists := m.byEmail[user.Email]; exists {
		return repository.ErrDuplicateEmail
	}
	user.CreatedAt = time.Now()
	copied := *user
	m.byEmail[user.Email] = &copied
	return nil
}

func (m *memUserRepo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	user, ok := m.byEmail[email]
	if !ok {
		return nil, nil
	}
	copied := *user
	return &copied, nil
}

func (m *memUserRepo) GetByID(ctx context.Context, id string) (*domain.User, error) {
	for _, user := range m.byEmail {
		if user.ID == id {
			copied := *user
			return &copied, nil
		}
	}
	return nil, nil
}

// memBlogRepo is an in-memory BlogRepository for handler tests
type memBlogRepo struct {
	blogs  map[int64]*domain.Blog
	nextID int64
}

func (m *memBlogRepo) Create(ctx context.Context, blog *domain.Blog) error {
	m.nextID++
	blog.ID = m.nextID
	blog.CreatedAt = time.Now()
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

// newTestRouter wires real services over in-memory repositories and mounts
// the same route tree the server uses.
func newTestRouter(t *testing.T) *chi.Mux {
	t.Helper()

	log, err := logger.New("error")
	require.NoError(t, err)

	tokens, err := token.NewService("test-secret", log)
	require.NoError(t, err)

	users := &memUserRepo{byEmail: make(map[string]*domain.User)}
	blogs := &memBlogRepo{blogs: make(map[int64]*domain.Blog)}

	hasher := auth.NewBcryptHasher(bcrypt.MinCost)
	authService := auth.NewService(users, blogs, hasher, tokens, log)
	blogService := service.NewBlogService(blogs, nil, log)

	c := &container.Container{
		Config: &config.Config{Environment: "test", JWTSecret: "test-secret"},
		Logger: log,
		Services: &service.Services{
			Auth:  authService,
			Blog:  blogService,
			Token: tokens,
		},
	}

	authHandler := NewAuthHandler(c)
	blogHandler := NewBlogHandler(c)

	r := chi.NewRouter()
	r.Route("/api", func(r chi.Router) {
		r.Post("/auth/signup", authHandler.Signup)
		r.Post("/auth/signin", authHandler.Signin)

		r.Group(func(r chi.Router) {
			r.Use(middleware.Auth(tokens, log))

			r.Get("/auth/me", authHandler.Me)
			r.Post("/auth/profile", authHandler.Profile)

			r.Route("/blogs", func(r chi.Router) {
				r.Get("/", blogHandler.List)
				r.Post("/publish", blogHandler.Publish)
				r.Post("/save-draft", blogHandler.SaveDraft)
				r.Get("/{id}", blogHandler.Get)
				r.Delete("/{id}", blogHandler.Delete)
			})
		})
	})

	return r
}

// sessionCookie returns the session cookie set on a response, if any
func sessionCookie(resp *http.Response) *http.Cookie {
	for _, cookie := range resp.Cookies() {
		if cookie.Name == SessionCookieName {
			return cookie
		}
	}
	return nil
}
