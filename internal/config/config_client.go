package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// ClientAdapter holds network settings used by the client transport layer.
type ClientAdapter struct {
	// BaseURL is the backend HTTP endpoint the client talks to.
	BaseURL string
	// RequestTimeout is the default timeout for outbound client requests.
	RequestTimeout time.Duration
}

// ClientStorage groups client-side storage settings.
type ClientStorage struct {
	// SessionPath is the SQLite file holding the persisted bearer token.
	SessionPath string
}

// ClientConfig is the top-level client configuration assembled from
// [StructuredConfig].
type ClientConfig struct {
	// Adapter contains client transport address and timeout.
	Adapter ClientAdapter
	// Storage contains client storage settings.
	Storage ClientStorage
}

// GetClientConfig builds and validates a client-specific config view from the
// merged structured configuration.
//
// It loads the base config via [GetStructuredConfig], maps only the fields
// relevant to the client runtime, and validates the resulting [ClientConfig].
// When no session path is configured, a per-user default under the OS cache
// directory is used.
func GetClientConfig() (*ClientConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	sessionPath := cfg.Storage.Session.Path
	if sessionPath == "" {
		sessionPath = defaultSessionPath()
	}

	clientCfg := &ClientConfig{
		Adapter: ClientAdapter{
			BaseURL:        cfg.Adapter.BaseURL,
			RequestTimeout: cfg.Adapter.RequestTimeout,
		},
		Storage: ClientStorage{
			SessionPath: sessionPath,
		},
	}

	return clientCfg, clientCfg.validate()
}

func defaultSessionPath() string {
	cacheDir, err := os.UserCacheDir()
	if err != nil {
		return "resumekit-session.db"
	}
	return filepath.Join(cacheDir, "resumekit", "session.db")
}
