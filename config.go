package blogpost

import "time"

// SiteConfig holds all configuration for a blogpost server.
type SiteConfig struct {
	Name        string // Site name (default "BlogPost")
	URL         string // Canonical URL for feed links (default "http://localhost:3000")
	Description string // Site description for the RSS channel

	Addr         string // Listen address (default ":3000")
	DatabasePath string // SQLite path (default "data/blog.db")

	SessionSecret string // Required: session cookie encryption secret
	CookieSecure  bool   // Set true behind HTTPS

	PageSize         int           // Posts per listing page (default 10)
	CategoryCacheTTL time.Duration // Category listing cache TTL (default 5min)
}

func (c *SiteConfig) setDefaults() {
	if c.Name == "" {
		c.Name = "BlogPost"
	}
	if c.URL == "" {
		c.URL = "http://localhost:3000"
	}
	if c.Addr == "" {
		c.Addr = ":3000"
	}
	if c.DatabasePath == "" {
		c.DatabasePath = "data/blog.db"
	}
	if c.PageSize == 0 {
		c.PageSize = 10
	}
	if c.CategoryCacheTTL == 0 {
		c.CategoryCacheTTL = 5 * time.Minute
	}
}

// Option configures additional App behavior.
type Option func(*App)

// WithCustomRoutes registers additional routes on the Echo instance. The
// callback receives the App after its own routes are set up.
func WithCustomRoutes(fn func(*App)) Option {
	return func(a *App) {
		a.customRoutes = append(a.customRoutes, fn)
	}
}

// WithLoginLimit overrides the per-IP login attempt limit and window.
func WithLoginLimit(max int, window time.Duration) Option {
	return func(a *App) {
		a.limiterMax = max
		a.limiterWindow = window
	}
}
