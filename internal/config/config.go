package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container for the
// go-card-wallet client. It is populated by merging values from environment
// variables, command-line flags, an optional JSON file, and built-in
// defaults, in that priority order.
//
// Struct tags:
//   - envPrefix — prefix applied to all nested env tag lookups (caarlos0/env).
//   - env       — direct environment variable name for scalar fields.
type StructuredConfig struct {
	// Adapter holds the remote account server settings.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// Storage holds the local card file and picture directory settings.
	Storage Storage `envPrefix:"STORAGE_"`

	// Workers holds background worker settings.
	Workers Workers `envPrefix:"WORKERS_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// When non-empty, the file is parsed and merged on top of the values
	// already loaded from environment variables and flags.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// Adapter holds settings for the outbound account server transport.
type Adapter struct {
	// ServerURL is the base URL of the account server
	// (e.g. "http://localhost:8080").
	// Env: ADAPTER_SERVER_URL
	ServerURL string `env:"SERVER_URL"`

	// RequestTimeout is the per-request timeout for account server calls
	// (e.g. "30s", "1m").
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Storage holds settings for the on-disk card collection.
type Storage struct {
	// CardsFile is the path of the JSON file holding the card collection.
	// Env: STORAGE_CARDS_FILE
	CardsFile string `env:"CARDS_FILE"`

	// PicturesDir is the directory where generated barcode images live.
	// Env: STORAGE_PICTURES_DIR
	PicturesDir string `env:"PICTURES_DIR"`
}

// Workers holds configuration for background worker processes.
type Workers struct {
	// SyncInterval defines how often the background divergence check runs.
	// Env: WORKERS_SYNC_INTERVAL
	SyncInterval time.Duration `env:"SYNC_INTERVAL"`
}

func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		Adapter: Adapter{
			ServerURL:      "http://localhost:8080",
			RequestTimeout: 30 * time.Second,
		},
		Storage: Storage{
			CardsFile:   "wallet/cards.json",
			PicturesDir: "wallet/pictures",
		},
		Workers: Workers{
			SyncInterval: 5 * time.Minute,
		},
	}
}

// ClientConfig is the validated configuration view the client runtime
// consumes, assembled from [StructuredConfig].
type ClientConfig struct {
	// ServerURL is the base URL of the account server.
	ServerURL string
	// RequestTimeout is the per-request timeout for account server calls.
	RequestTimeout time.Duration
	// CardsFile is the path of the JSON file holding the card collection.
	CardsFile string
	// PicturesDir is the directory for generated barcode images.
	PicturesDir string
	// SyncInterval defines how often the background divergence check runs.
	SyncInterval time.Duration
}

// GetClientConfig loads, merges, and validates the client configuration from
// all available sources in the following priority order (first non-zero value
// wins):
//  1. Environment variables
//  2. Command-line flags
//  3. JSON file (path resolved from sources 1 and 2)
//  4. Built-in defaults
func GetClientConfig() (*ClientConfig, error) {
	cfg, err := newConfigBuilder().
		withEnv().
		withFlags().
		withJSON().
		withDefaults().
		build()
	if err != nil {
		return nil, err
	}

	clientCfg := &ClientConfig{
		ServerURL:      cfg.Adapter.ServerURL,
		RequestTimeout: cfg.Adapter.RequestTimeout,
		CardsFile:      cfg.Storage.CardsFile,
		PicturesDir:    cfg.Storage.PicturesDir,
		SyncInterval:   cfg.Workers.SyncInterval,
	}

	return clientCfg, clientCfg.validate()
}
