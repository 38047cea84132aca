package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"
)

// LoadAppConfig reads the YAML config at path over the defaults. A missing
// file is not an error; the defaults stand.
func LoadAppConfig(path string) (*AppConfig, error) {
	cfg := DefaultAppConfig()

	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return &cfg, nil
	}
	if err != nil {
		return nil, fmt.Errorf("can not read config file %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("can not parse config file %s: %w", path, err)
	}

	if cfg.Server.Port == 0 {
		cfg.Server.Port = DefaultAppConfig().Server.Port
	}
	if cfg.Signalling.PingIntervalMsec <= 0 {
		cfg.Signalling.PingIntervalMsec = DefaultAppConfig().Signalling.PingIntervalMsec
	}

	return &cfg, nil
}
