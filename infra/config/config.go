package config

import (
	"fmt"
	"log/slog"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
)

const defaultBackendURL = "http://localhost:8080/api"

// Config holds application-level configuration.
type Config struct {
	BackendURL string     // e.g. "https://board.example.com/api"
	TokenPath  string     // Optional path to a bearer token file
	LogPath    string     // File the TUI logs to while it owns the terminal
	LogLevel   slog.Level // Minimum level written to LogPath
}

// Load reads configuration from environment variables.
// A .env file in the working directory is loaded first if present.
//
//	POSTBOARD_BACKEND    — backend base URL (default: http://localhost:8080/api)
//	POSTBOARD_TOKEN      — path to a bearer token file (default: none)
//	POSTBOARD_LOG        — log file (default: ~/.config/postboard/postboard.log)
//	POSTBOARD_LOG_LEVEL  — debug, info, warn or error (default: info)
func Load() (Config, error) {
	_ = godotenv.Load()

	backend, err := NormalizeBackendURL(getEnv("POSTBOARD_BACKEND", defaultBackendURL))
	if err != nil {
		return Config{}, err
	}

	logPath := os.Getenv("POSTBOARD_LOG")
	if logPath == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return Config{}, fmt.Errorf("cannot determine home directory: %w", err)
		}
		logPath = filepath.Join(home, ".config", "postboard", "postboard.log")
	}

	var level slog.Level
	if err := level.UnmarshalText([]byte(getEnv("POSTBOARD_LOG_LEVEL", "info"))); err != nil {
		return Config{}, fmt.Errorf("invalid POSTBOARD_LOG_LEVEL: %w", err)
	}

	return Config{
		BackendURL: backend,
		TokenPath:  os.Getenv("POSTBOARD_TOKEN"),
		LogPath:    logPath,
		LogLevel:   level,
	}, nil
}

// NormalizeBackendURL validates an absolute http(s) URL and trims trailing slashes.
func NormalizeBackendURL(raw string) (string, error) {
	parsed, err := url.Parse(strings.TrimSpace(raw))
	if err != nil || parsed.Scheme == "" || parsed.Host == "" {
		return "", fmt.Errorf("invalid backend URL %q: must be an absolute URL", raw)
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return "", fmt.Errorf("invalid backend URL %q: only http and https are allowed", raw)
	}
	return strings.TrimRight(parsed.String(), "/"), nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
