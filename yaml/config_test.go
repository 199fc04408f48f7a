package yaml_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/fwojciec/docscrape"
	"github.com/fwojciec/docscrape/yaml"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), yaml.DefaultFilename)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoadConfig(t *testing.T) {
	t.Parallel()

	t.Run("missing file yields defaults", func(t *testing.T) {
		t.Parallel()

		cfg, err := yaml.LoadConfig(filepath.Join(t.TempDir(), "absent.yaml"))

		require.NoError(t, err)
		assert.Equal(t, docscrape.DefaultConfig(), cfg)
	})

	t.Run("merges file values over defaults", func(t *testing.T) {
		t.Parallel()

		path := writeConfig(t, `
docs_url: https://mirror.example.com/3/
timeout: 30s
requests_per_second: 2.5
cache_expire_after: 24h
log_level: debug
log_max_backups: 3
`)

		cfg, err := yaml.LoadConfig(path)

		require.NoError(t, err)
		assert.Equal(t, "https://mirror.example.com/3/", cfg.DocsURL)
		assert.Equal(t, docscrape.DefaultPEPURL, cfg.PEPURL)
		assert.Equal(t, 30*time.Second, cfg.Timeout)
		assert.InDelta(t, 2.5, cfg.RequestsPerSecond, 0.001)
		assert.Equal(t, 24*time.Hour, cfg.CacheExpireAfter)
		assert.Equal(t, "utf-8", cfg.Encoding)
		assert.Equal(t, "debug", cfg.LogLevel)
		assert.Equal(t, 1, cfg.LogMaxSizeMB)
		assert.Equal(t, 3, cfg.LogMaxBackups)
	})

	t.Run("rejects malformed duration", func(t *testing.T) {
		t.Parallel()

		path := writeConfig(t, "timeout: soon\n")

		_, err := yaml.LoadConfig(path)

		assert.Equal(t, docscrape.EINVALID, docscrape.ErrorCode(err))
		assert.Contains(t, docscrape.ErrorMessage(err), "timeout")
	})

	t.Run("rejects malformed yaml", func(t *testing.T) {
		t.Parallel()

		path := writeConfig(t, "docs_url: [unterminated\n")

		_, err := yaml.LoadConfig(path)

		assert.Equal(t, docscrape.EINVALID, docscrape.ErrorCode(err))
	})

	t.Run("validates merged config", func(t *testing.T) {
		t.Parallel()

		path := writeConfig(t, "log_level: loud\n")

		_, err := yaml.LoadConfig(path)

		assert.Equal(t, docscrape.EINVALID, docscrape.ErrorCode(err))
	})
}
