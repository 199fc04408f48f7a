// Package yaml loads configuration files.
package yaml

import (
	"fmt"
	"os"
	"time"

	"github.com/fwojciec/docscrape"
	"gopkg.in/yaml.v3"
)

// DefaultFilename is the config file looked up in the base directory.
const DefaultFilename = "docscrape.yaml"

type fileConfig struct {
	DocsURL           string  `yaml:"docs_url"`
	PEPURL            string  `yaml:"pep_url"`
	Timeout           string  `yaml:"timeout"`
	RequestsPerSecond float64 `yaml:"requests_per_second"`
	CacheExpireAfter  string  `yaml:"cache_expire_after"`
	Encoding          string  `yaml:"encoding"`
	LogLevel          string  `yaml:"log_level"`
	LogMaxSizeMB      int     `yaml:"log_max_size_mb"`
	LogMaxBackups     int     `yaml:"log_max_backups"`
}

// LoadConfig reads the config file at path and merges its non-zero values
// over the defaults. A missing file yields the defaults.
func LoadConfig(path string) (*docscrape.Config, error) {
	cfg := docscrape.DefaultConfig()

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return cfg, nil
	} else if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var fc fileConfig
	if err := yaml.Unmarshal(data, &fc); err != nil {
		return nil, docscrape.Errorf(docscrape.EINVALID, "failed to parse config file: %v", err)
	}

	if fc.DocsURL != "" {
		cfg.DocsURL = fc.DocsURL
	}
	if fc.PEPURL != "" {
		cfg.PEPURL = fc.PEPURL
	}
	if fc.Timeout != "" {
		cfg.Timeout, err = parseDuration("timeout", fc.Timeout)
		if err != nil {
			return nil, err
		}
	}
	if fc.RequestsPerSecond != 0 {
		cfg.RequestsPerSecond = fc.RequestsPerSecond
	}
	if fc.CacheExpireAfter != "" {
		cfg.CacheExpireAfter, err = parseDuration("cache_expire_after", fc.CacheExpireAfter)
		if err != nil {
			return nil, err
		}
	}
	if fc.Encoding != "" {
		cfg.Encoding = fc.Encoding
	}
	if fc.LogLevel != "" {
		cfg.LogLevel = fc.LogLevel
	}
	if fc.LogMaxSizeMB != 0 {
		cfg.LogMaxSizeMB = fc.LogMaxSizeMB
	}
	if fc.LogMaxBackups != 0 {
		cfg.LogMaxBackups = fc.LogMaxBackups
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func parseDuration(key, value string) (time.Duration, error) {
	d, err := time.ParseDuration(value)
	if err != nil {
		return 0, docscrape.Errorf(docscrape.EINVALID, "invalid %s format %q", key, value)
	}
	return d, nil
}
