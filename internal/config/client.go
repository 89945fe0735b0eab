package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/caarlos0/env/v11"
)

// DefaultClientServerAddress is the server base URL the client talks to when
// none is configured.
const DefaultClientServerAddress = "http://localhost:8080"

// DefaultClientRequestTimeout bounds a single client API call.
const DefaultClientRequestTimeout = 15 * time.Second

// ClientConfig holds the configuration of the command-line client.
type ClientConfig struct {
	// ServerAddress is the base URL of the note-keeper server API.
	// Env: CLIENT_SERVER_ADDRESS
	ServerAddress string `env:"SERVER_ADDRESS"`

	// SessionPath is the SQLite file the client keeps its bearer token in
	// between invocations. Defaults to ~/.note-keeper/session.db.
	// Env: CLIENT_SESSION_PATH
	SessionPath string `env:"SESSION_PATH"`

	// RequestTimeout bounds a single API call.
	// Env: CLIENT_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// GetClientConfig loads the client configuration from CLIENT_-prefixed
// environment variables and fills the remaining fields with defaults.
func GetClientConfig() (*ClientConfig, error) {
	cfg := &ClientConfig{}
	if err := env.ParseWithOptions(cfg, env.Options{Prefix: "CLIENT_"}); err != nil {
		return nil, fmt.Errorf("error parsing client environment configuration: %w", err)
	}

	if cfg.ServerAddress == "" {
		cfg.ServerAddress = DefaultClientServerAddress
	}
	if cfg.RequestTimeout <= 0 {
		cfg.RequestTimeout = DefaultClientRequestTimeout
	}
	if cfg.SessionPath == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("resolving home directory for session store: %w", err)
		}
		cfg.SessionPath = filepath.Join(home, ".note-keeper", "session.db")
	}

	return cfg, nil
}
