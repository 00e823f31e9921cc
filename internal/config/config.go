package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type AppConfig struct {
	Port       string
	APIBaseURL string
	APITimeout time.Duration

	// Admin login. Auth is disabled when any of these is empty.
	SessionSecret     string
	AdminEmail        string
	AdminPasswordHash string
}

// AuthEnabled reports whether the admin surface requires a login.
func (c AppConfig) AuthEnabled() bool {
	return c.SessionSecret != "" && c.AdminEmail != "" && c.AdminPasswordHash != ""
}

func Load() AppConfig {
	_ = godotenv.Load() // load .env if present

	port := os.Getenv("PORT")
	if port == "" {
		port = "8085"
	}
	apiURL := os.Getenv("APIURL")
	if apiURL == "" {
		apiURL = "http://localhost:8080/api"
	}
	timeout := 10 * time.Second
	if v := os.Getenv("API_TIMEOUT"); v != "" {
		if secs, err := strconv.Atoi(v); err == nil && secs > 0 {
			timeout = time.Duration(secs) * time.Second
		}
	}
	return AppConfig{
		Port:              port,
		APIBaseURL:        apiURL,
		APITimeout:        timeout,
		SessionSecret:     os.Getenv("SESSION_SECRET"),
		AdminEmail:        os.Getenv("ADMIN_EMAIL"),
		AdminPasswordHash: os.Getenv("ADMIN_PASSWORD_HASH"),
	}
}
