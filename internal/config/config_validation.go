package config

import "net/url"

func (cfg *ClientConfig) validate() error {
	if cfg.ServerURL == "" || cfg.RequestTimeout <= 0 {
		return ErrInvalidAdapterConfigs
	}
	if u, err := url.Parse(cfg.ServerURL); err != nil || u.Scheme == "" || u.Host == "" {
		return ErrInvalidAdapterConfigs
	}

	if cfg.CardsFile == "" || cfg.PicturesDir == "" {
		return ErrInvalidStorageConfigs
	}

	if cfg.SyncInterval <= 0 {
		return ErrInvalidWorkerConfigs
	}

	return nil
}
