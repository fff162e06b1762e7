package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"

	"github.com/ecotrack/ecotrack-cli/internal/constants"
	"github.com/ecotrack/ecotrack-cli/internal/keyring"
	"github.com/ecotrack/ecotrack-cli/internal/logger"
)

// Config holds the resolved client configuration. Credentials come from the
// environment first, then the OS keyring; a missing CSRF token is tolerated
// and the server's rejection surfaces like any other request failure.
type Config struct {
	ServerURL string
	Session   string
	CSRFToken string
	ConfigDir string
	Debug     bool
}

// Load resolves configuration from a .env file (if present), environment
// variables, and the OS keyring, in that order of precedence.
func Load(configDir string, debug bool) (Config, error) {
	// Missing .env is fine; explicit env vars and keyring still apply.
	if err := godotenv.Load(filepath.Join(configDir, ".env")); err != nil && !os.IsNotExist(err) {
		logger.Debug("No .env file loaded", "error", err)
	}

	cfg := Config{
		ServerURL: strings.TrimRight(envOr("ECOTRACK_SERVER_URL", constants.DefaultServerURL), "/"),
		Session:   os.Getenv("ECOTRACK_SESSION"),
		CSRFToken: os.Getenv("ECOTRACK_CSRF"),
		ConfigDir: configDir,
		Debug:     debug,
	}

	if cfg.Session == "" {
		creds, err := keyring.Get()
		switch err {
		case nil:
			cfg.Session = creds.Session
			if cfg.CSRFToken == "" {
				cfg.CSRFToken = creds.CSRF
			}
		case keyring.ErrNotFound:
			// Unauthenticated runs are allowed; the server answers 401/403
			// and the gateway reports it as an HTTP failure.
		default:
			return Config{}, err
		}
	}

	return cfg, nil
}

// ExpandPath expands a leading ~ to the user's home directory.
func ExpandPath(path string) string {
	if strings.HasPrefix(path, "~/") || path == "~" {
		home, err := os.UserHomeDir()
		if err != nil {
			return path
		}
		if path == "~" {
			return home
		}
		return filepath.Join(home, path[2:])
	}
	return path
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
