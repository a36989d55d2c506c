package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"

	"showcase.dev/internal/models"
)

// Config holds all application configuration
type Config struct {
	ServerAddr   string
	DataPath     string
	AssetsDir    string
	ContentFile  string // empty when the embedded default content is in use
	LogLevel     string
	RateLimitRPM int
	Site         *models.Site
}

// Load reads the environment and the content file it points at. A missing
// content file falls back to the embedded default site.
func Load() (*Config, error) {
	dataPath := envOr("DATA_PATH", "data")
	contentFile := envOr("CONTENT_FILE", filepath.Join(dataPath, "site.yaml"))

	rpm, err := envInt("RATE_LIMIT_RPM", 600)
	if err != nil {
		return nil, err
	}

	site, err := LoadSite(contentFile)
	if errors.Is(err, fs.ErrNotExist) {
		contentFile = ""
		site, err = DefaultSite()
	}
	if err != nil {
		return nil, err
	}

	return &Config{
		ServerAddr:   envOr("SERVER_ADDR", ":8080"),
		DataPath:     dataPath,
		AssetsDir:    filepath.Join(dataPath, "assets"),
		ContentFile:  contentFile,
		LogLevel:     os.Getenv("LOG_LEVEL"),
		RateLimitRPM: rpm,
		Site:         site,
	}, nil
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envInt(key string, fallback int) (int, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil || n < 0 {
		return 0, fmt.Errorf("%s must be a non-negative integer, got %q", key, v)
	}
	return n, nil
}
