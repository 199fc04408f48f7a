package docscrape

import "time"

// Default site locations.
const (
	DefaultDocsURL = "https://docs.python.org/3/"
	DefaultPEPURL  = "https://peps.python.org/"
)

// Config holds runtime settings that are not part of the command line.
type Config struct {
	// DocsURL is the root of the Python documentation.
	DocsURL string

	// PEPURL is the PEP index page.
	PEPURL string

	// Timeout bounds each page fetch. Archive downloads are not bounded.
	Timeout time.Duration

	// RequestsPerSecond limits network requests per host. Zero disables limiting.
	RequestsPerSecond float64

	// CacheExpireAfter bounds the age of cached responses. Zero keeps them forever.
	CacheExpireAfter time.Duration

	// Encoding is the charset label used to decode page text.
	Encoding string

	// LogLevel is one of debug, info, warn, error.
	LogLevel string

	// LogMaxSizeMB is the size at which the log file is rotated.
	LogMaxSizeMB int

	// LogMaxBackups is the number of rotated log files kept.
	LogMaxBackups int
}

// DefaultConfig returns a Config with default values.
func DefaultConfig() *Config {
	return &Config{
		DocsURL:           DefaultDocsURL,
		PEPURL:            DefaultPEPURL,
		Timeout:           10 * time.Second,
		RequestsPerSecond: 5,
		Encoding:          "utf-8",
		LogLevel:          "info",
		LogMaxSizeMB:      1,
		LogMaxBackups:     5,
	}
}

// Validate returns an error if the config contains invalid fields.
func (c *Config) Validate() error {
	if c.DocsURL == "" {
		return Errorf(EINVALID, "docs URL required")
	}
	if c.PEPURL == "" {
		return Errorf(EINVALID, "PEP URL required")
	}
	if c.Timeout < 0 {
		return Errorf(EINVALID, "timeout must not be negative")
	}
	if c.RequestsPerSecond < 0 {
		return Errorf(EINVALID, "requests per second must not be negative")
	}
	if c.CacheExpireAfter < 0 {
		return Errorf(EINVALID, "cache expiry must not be negative")
	}
	switch c.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return Errorf(EINVALID, "unknown log level %q", c.LogLevel)
	}
	return nil
}
