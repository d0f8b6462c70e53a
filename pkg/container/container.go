package container

import (
	"context"
	"fmt"
	"time"

	"library-backend/internal/config"
	"library-backend/internal/infrastructure/cache"
	"library-backend/internal/infrastructure/database"
	"library-backend/internal/infrastructure/memory"
	"library-backend/internal/infrastructure/token"
	"library-backend/pkg/hash"
	"library-backend/pkg/jwt"
	"library-backend/pkg/logger"

	// User domain
	userHandler "library-backend/internal/domains/user/handler"
	userRepo "library-backend/internal/domains/user/repository"
	userService "library-backend/internal/domains/user/service"

	// Author domain
	authorHandler "library-backend/internal/domains/author/handler"
	authorRepo "library-backend/internal/domains/author/repository"
	authorService "library-backend/internal/domains/author/service"

	// Book domain
	bookHandler "library-backend/internal/domains/book/handler"
	bookRepo "library-backend/internal/domains/book/repository"
	bookService "library-backend/internal/domains/book/service"
)

// ========================================
// CONTAINER STRUCT
// ========================================

// Container is the root of the dependency graph
type Container struct {
	// ========================================
	// INFRASTRUCTURE LAYER
	// ========================================

	Config     *config.Config
	DB         *database.PostgresDB // nil with STORAGE_DRIVER=memory
	Redis      *cache.SessionStore  // nil with SESSION_STORE=memory
	JWTManager *jwt.Manager
	Encrypter  *token.Encrypter
	Hasher     *hash.BcryptHasher
	Sessions   userService.RefreshTokenStore

	// ========================================
	// REPOSITORY LAYER
	// ========================================

	UserRepo   userRepo.UsersRepository
	AuthorRepo authorRepo.AuthorsRepository
	BookRepo   bookRepo.BooksRepository

	// ========================================
	// SERVICE LAYER
	// ========================================

	UserService   userService.Service
	AuthorService authorService.Service
	BookService   bookService.Service

	// ========================================
	// HANDLER LAYER
	// ========================================

	UserHandler   *userHandler.UserHandler
	AuthorHandler *authorHandler.AuthorHandler
	BookHandler   *bookHandler.BookHandler
}

// ========================================
// CONSTRUCTOR: BUILD CONTAINER
// ========================================

// NewContainer builds the graph in order: infrastructure, repositories,
// services, handlers. Cleanup must be called on shutdown even after an error.
func NewContainer(ctx context.Context, cfg *config.Config) (*Container, error) {
	logger.Info("initializing container", map[string]interface{}{
		"storage":       cfg.Storage.Driver,
		"session_store": cfg.Storage.SessionStore,
	})

	c := &Container{Config: cfg}

	// STEP 1: DATABASE
	if cfg.Storage.Driver == config.StorageDriverPostgres {
		db := database.NewPostgresDB(cfg.DBConfig())

		connectCtx, cancel := context.WithTimeout(ctx, 30*time.Second)
		defer cancel()

		if err := db.Connect(connectCtx); err != nil {
			return c, fmt.Errorf("failed to connect to database: %w", err)
		}
		if err := db.HealthCheck(connectCtx); err != nil {
			db.Close()
			return c, fmt.Errorf("database health check failed: %w", err)
		}
		c.DB = db
	}

	// STEP 2: SESSION STORE
	if err := c.initSessionStore(ctx); err != nil {
		return c, err
	}

	// STEP 3: CRYPTOGRAPHY
	c.JWTManager = jwt.NewManager(jwt.Config{
		Secret:     cfg.JWT.Secret,
		Issuer:     cfg.JWT.Issuer,
		AccessTTL:  cfg.JWT.AccessTTL(),
		RefreshTTL: cfg.JWT.RefreshTTL(),
	})
	c.Encrypter = token.NewEncrypter(c.JWTManager)
	c.Hasher = hash.NewBcryptHasher(cfg.Security.BcryptCost)

	// STEP 4-6
	c.initRepositories()
	c.initServices()
	c.initHandlers()

	logger.Info("container initialized", nil)
	return c, nil
}

// ========================================
// PRIVATE INITIALIZATION METHODS
// ========================================

func (c *Container) initSessionStore(ctx context.Context) error {
	if c.Config.Storage.SessionStore == config.SessionStoreMemory {
		c.Sessions = memory.NewRefreshTokenStore()
		return nil
	}

	// refresh rotation is unsafe without the store, so redis failure is fatal
	store, err := cache.OpenSessionStore(ctx, cache.RedisConfig{
		Addr:     c.Config.Redis.Host,
		Password: c.Config.Redis.Password,
		DB:       c.Config.Redis.DB,
	})
	if err != nil {
		return fmt.Errorf("failed to connect to redis: %w", err)
	}

	c.Redis = store
	c.Sessions = store
	return nil
}

func (c *Container) initRepositories() {
	if c.DB == nil {
		authors := memory.NewAuthorRepository()
		c.UserRepo = memory.NewUserRepository()
		c.AuthorRepo = authors
		c.BookRepo = memory.NewBookRepository(authors)
		return
	}

	pool := c.DB.Pool
	c.UserRepo = userRepo.NewPostgresRepository(pool)
	c.AuthorRepo = authorRepo.NewPostgresRepository(pool)
	c.BookRepo = bookRepo.NewPostgresRepository(pool)
}

func (c *Container) initServices() {
	c.UserService = userService.NewUserService(
		c.UserRepo,
		c.Hasher, // HashGenerator
		c.Hasher, // HashComparer
		c.Encrypter,
		c.Sessions,
	)

	// Cross-domain: authors need books (linked check), both need users (actor role)
	c.AuthorService = authorService.NewAuthorService(c.AuthorRepo, c.BookRepo, c.UserRepo)
	c.BookService = bookService.NewBookService(c.BookRepo, c.AuthorRepo, c.UserRepo)
}

func (c *Container) initHandlers() {
	c.UserHandler = userHandler.NewUserHandler(c.UserService)
	c.AuthorHandler = authorHandler.NewAuthorHandler(c.AuthorService)
	c.BookHandler = bookHandler.NewBookHandler(c.BookService)
}

// Cleanup releases connections. Safe on a partially built container.
func (c *Container) Cleanup() {
	logger.Info("cleaning up container resources", nil)

	if c.DB != nil {
		c.DB.Close()
	}

	if c.Redis != nil {
		if err := c.Redis.Close(); err != nil {
			logger.Error("failed to close redis", err)
		} else {
			logger.Info("redis connections closed", nil)
		}
	}
}
