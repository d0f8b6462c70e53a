package main

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"library-backend/internal/domains/user/model"
	"library-backend/internal/shared/middleware"
	"library-backend/pkg/container"
)

func SetupRouter(c *container.Container) *gin.Engine {
	router := gin.New()

	// Global middlewares
	router.Use(
		middleware.Recovery(),
		middleware.RequestID(),
		middleware.Logger(),
		middleware.CORS(c.Config.CORS.AllowedOrigins),
	)

	v1 := router.Group("/api/v1")
	{
		v1.GET("/health", healthCheckHandler(c))

		setupAccountRoutes(v1, c)
		setupSessionRoutes(v1, c)
		setupAuthorRoutes(v1, c)
		setupBookRoutes(v1, c)
	}

	return router
}

// ========================================
// ACCOUNT & SESSION ROUTES (public)
// ========================================
func setupAccountRoutes(v1 *gin.RouterGroup, c *container.Container) {
	v1.POST("/accounts", c.UserHandler.CreateAccount)
}

func setupSessionRoutes(v1 *gin.RouterGroup, c *container.Container) {
	sessions := v1.Group("/sessions")
	{
		sessions.POST("", c.UserHandler.Authenticate)
		sessions.POST("/refresh", c.UserHandler.Refresh)
		sessions.POST("/logout", c.UserHandler.Logout)
	}
}

// ========================================
// AUTHOR ROUTES
// ========================================
func setupAuthorRoutes(v1 *gin.RouterGroup, c *container.Container) {
	authors := v1.Group("/authors")
	authors.Use(middleware.RequireRoles(c.Encrypter, model.RoleCommon, model.RoleAdmin))
	{
		authors.GET("", c.AuthorHandler.ListAuthors)
		authors.GET("/:id", c.AuthorHandler.GetAuthor)
	}

	admin := v1.Group("/authors")
	admin.Use(middleware.RequireRoles(c.Encrypter, model.RoleAdmin))
	{
		admin.POST("", c.AuthorHandler.CreateAuthor)
		admin.PUT("/:id", c.AuthorHandler.EditAuthor)
		admin.DELETE("/:id", c.AuthorHandler.DeleteAuthor)
	}
}

// ========================================
// BOOK ROUTES
// ========================================
func setupBookRoutes(v1 *gin.RouterGroup, c *container.Container) {
	books := v1.Group("/books")
	books.Use(middleware.RequireRoles(c.Encrypter, model.RoleCommon, model.RoleAdmin))
	{
		books.GET("", c.BookHandler.ListBooks)
		books.GET("/:id", c.BookHandler.GetBook)
	}

	admin := v1.Group("/books")
	admin.Use(middleware.RequireRoles(c.Encrypter, model.RoleAdmin))
	{
		admin.POST("", c.BookHandler.CreateBook)
		admin.PUT("/:id", c.BookHandler.EditBook)
		admin.DELETE("/:id", c.BookHandler.DeleteBook)
	}
}

// ========================================
// HEALTH CHECK HANDLER
// ========================================
func healthCheckHandler(appCtx *container.Container) gin.HandlerFunc {
	return func(c *gin.Context) {
		health := gin.H{
			"status":    "ok",
			"timestamp": time.Now().Format(time.RFC3339),
			"version":   appCtx.Config.App.Version,
			"storage":   appCtx.Config.Storage.Driver,
		}
		services := gin.H{}

		ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
		defer cancel()

		dbStatus := "not configured"
		if appCtx.DB != nil {
			dbStatus = "ok"
			if err := appCtx.DB.HealthCheck(ctx); err != nil {
				dbStatus = "error: " + err.Error()
				health["status"] = "degraded"
			} else if stats, err := appCtx.DB.Stats(); err == nil {
				services["database_pool"] = stats
			}
		}
		services["database"] = dbStatus

		redisStatus := "not configured"
		if appCtx.Redis != nil {
			redisStatus = "ok"
			if err := appCtx.Redis.Ping(ctx); err != nil {
				redisStatus = "error: " + err.Error()
				health["status"] = "degraded"
			}
		}
		services["redis"] = redisStatus
		health["services"] = services

		statusCode := http.StatusOK
		if health["status"] != "ok" {
			statusCode = http.StatusServiceUnavailable
		}

		c.JSON(statusCode, health)
	}
}
