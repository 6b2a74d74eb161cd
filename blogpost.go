// Package blogpost is a minimal blogging backend built with Go, Echo, and
// SQLite. It provides user registration and login, category-tagged posts,
// paginated listing and keyword search, and a posts-per-day trend series,
// behind a small JSON API plus an RSS feed.
package blogpost

import (
	"fmt"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
)

// App is the central blogpost application. It wires together the store,
// session middleware, login rate limiter, and HTTP handlers.
type App struct {
	Config SiteConfig
	Echo   *echo.Echo
	Store  *Store

	categories   *categoryCache
	loginLimiter *LoginLimiter
	customRoutes []func(*App)

	limiterMax    int
	limiterWindow time.Duration
}

// New creates a new App with the given configuration.
func New(cfg SiteConfig, opts ...Option) *App {
	cfg.setDefaults()

	a := &App{
		Config:        cfg,
		Echo:          echo.New(),
		limiterMax:    5,
		limiterWindow: time.Minute,
	}

	for _, opt := range opts {
		opt(a)
	}

	return a
}

// Start initializes the store, cache, middleware, and routes, then starts
// the HTTP server.
func (a *App) Start() error {
	if err := a.setup(); err != nil {
		return err
	}
	if err := a.Echo.Start(a.Config.Addr); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

// setup opens the store and wires middleware and routes without starting
// the listener.
func (a *App) setup() error {
	if a.Config.SessionSecret == "" {
		return fmt.Errorf("blogpost: SessionSecret is required")
	}

	store, err := NewStore(a.Config.DatabasePath)
	if err != nil {
		return fmt.Errorf("blogpost: init store: %w", err)
	}
	a.Store = store

	a.categories = newCategoryCache(store, a.Config.CategoryCacheTTL)
	a.loginLimiter = NewLoginLimiter(a.limiterMax, a.limiterWindow)

	a.setupMiddleware()
	a.setupRoutes()

	for _, fn := range a.customRoutes {
		fn(a)
	}
	return nil
}

func (a *App) setupRoutes() {
	e := a.Echo

	e.GET("/feed.xml", a.handleFeed)

	api := e.Group("/api")
	api.GET("/posts", a.handleListPosts)
	api.POST("/posts", a.handleCreatePost)
	api.GET("/posts/search", a.handleSearchPosts)
	api.GET("/categories", a.handleListCategories)
	api.GET("/categories/:id/posts", a.handlePostsByCategory)
	api.GET("/trends", a.handleTrends)
	api.POST("/register", a.handleRegister)
	api.POST("/login", a.handleLogin)
	api.POST("/logout", handleLogout)
}

// Close cleans up resources. Call this when the app is shutting down.
func (a *App) Close() error {
	if a.Store != nil {
		return a.Store.Close()
	}
	return nil
}
