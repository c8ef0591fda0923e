package container

import (
	"blog-be/internal/config"
	"blog-be/internal/repository"
	"blog-be/internal/service"
	"blog-be/internal/service/auth"
	"blog-be/internal/service/token"
	"blog-be/pkg/database"
	"blog-be/pkg/logger"
	"blog-be/pkg/redis"
)

// Container holds all application dependencies. Repositories and services
// are bound once here and shared by every handler.
type Container struct {
	Config      *config.Config
	Logger      *logger.Logger
	RedisClient *redis.Client
	Services    *service.Services
}

// New creates a new dependency injection container
func New(cfg *config.Config, log *logger.Logger, db *database.PostgresDB) (*Container, error) {
	// Redis is optional: without it the blog service reads straight from
	// Postgres on every request.
	var redisClient *redis.Client
	if cfg.RedisURL != "" {
		client, err := redis.NewClient(cfg.RedisURL, cfg.Environment, log.Logger)
		if err != nil {
			log.WithError(err).Warn("Failed to initialize Redis client, proceeding without caching")
		} else {
			redisClient = client
			log.Info("Redis client initialized successfully")
		}
	} else {
		log.Info("Redis URL not configured, proceeding without caching")
	}

	userRepo := repository.NewUserRepository(db)
	blogRepo := repository.NewBlogRepository(db)

	tokenService, err := token.NewService(cfg.JWTSecret, log)
	if err != nil {
		return nil, err
	}

	hasher := auth.NewBcryptHasher(cfg.BcryptCost)
	authService := auth.NewService(userRepo, blogRepo, hasher, tokenService, log)
	blogService := service.NewBlogService(blogRepo, redisClient, log)

	return &Container{
		Config:      cfg,
		Logger:      log,
		RedisClient: redisClient,
		Services: &service.Services{
			Auth:  authService,
			Blog:  blogService,
			Token: tokenService,
		},
	}, nil
}

// GetAuthService returns the auth service
func (c *Container) GetAuthService() service.AuthService {
	return c.Services.Auth
}

// GetBlogService returns the blog service
func (c *Container) GetBlogService() service.BlogService {
	return c.Services.Blog
}

// GetTokenService returns the token service
func (c *Container) GetTokenService() service.TokenService {
	return c.Services.Token
}

// GetLogger returns the logger
func (c *Container) GetLogger() *logger.Logger {
	return c.Logger
}

// GetConfig returns the configuration
func (c *Container) GetConfig() *config.Config {
	return c.Config
}

// GetRedisClient returns the Redis client (may be nil if not configured)
func (c *Container) GetRedisClient() *redis.Client {
	return c.RedisClient
}
