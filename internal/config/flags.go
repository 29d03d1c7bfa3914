package config

import (
	"flag"
	"time"
)

// ParseFlags parses all configuration flags.
//
// Flags:
//
//	-a server base URL
//	-f cards file path
//	-p pictures directory
//	-request-timeout request timeout (e.g., "30s", "1m")
//	-sync-interval background sync check interval (e.g., "5m")
//	-c/-config json file path with configs
func ParseFlags() *StructuredConfig {
	var serverURL string
	var cardsFile string
	var picturesDir string
	var requestTimeout time.Duration
	var syncInterval time.Duration
	var jsonConfigPath string

	flag.StringVar(&serverURL, "a", "", "Account server base URL")
	flag.StringVar(&cardsFile, "f", "", "Cards file path")
	flag.StringVar(&picturesDir, "p", "", "Pictures directory")
	flag.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	flag.DurationVar(&syncInterval, "sync-interval", 0, "Sync check interval (e.g., 5m)")
	flag.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	flag.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")

	flag.Parse()

	return &StructuredConfig{
		Adapter: Adapter{
			ServerURL:      serverURL,
			RequestTimeout: requestTimeout,
		},
		Storage: Storage{
			CardsFile:   cardsFile,
			PicturesDir: picturesDir,
		},
		Workers: Workers{
			SyncInterval: syncInterval,
		},
		JSONFilePath: jsonConfigPath,
	}
}
