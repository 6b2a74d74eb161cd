// main.go — blogserver entry point.
// Builds SiteConfig from environment variables (optionally loaded from a
// local .env) and starts the HTTP server.
package main

import (
	"log"
	"os"
	"strings"

	"github.com/joho/godotenv"

	"github.com/joemugare/blogpost"
)

func main() {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Printf("skipping .env: %v", err)
	}

	cfg := blogpost.SiteConfig{
		Name:          envOr("SITE_NAME", "BlogPost"),
		URL:           strings.TrimSuffix(envOr("SITE_URL", "http://localhost:3000"), "/"),
		Description:   os.Getenv("SITE_DESCRIPTION"),
		Addr:          envOr("ADDR", ":3000"),
		DatabasePath:  envOr("DATABASE_PATH", "data/blog.db"),
		SessionSecret: mustEnv("SESSION_SECRET"),
		CookieSecure:  strings.EqualFold(os.Getenv("COOKIE_SECURE"), "true"),
	}

	app := blogpost.New(cfg)
	defer app.Close()

	if err := app.Start(); err != nil {
		log.Fatal(err)
	}
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func mustEnv(key string) string {
	v := os.Getenv(key)
	if v == "" {
		log.Fatalf("required environment variable %s is not set", key)
	}
	return v
}
