package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"diskmaid/internal/domain"
)

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	cfg, err := loadFrom(filepath.Join(t.TempDir(), "nope", "config.json"))
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestSaveThenLoadRoundTrips(t *testing.T) {
	path := filepath.Join(t.TempDir(), "diskmaid", "config.json")
	saved := Config{
		ScanFilter:  "*.log",
		Unit:        domain.UnitGB,
		DefaultPath: "/var/log",
		DefaultSort: domain.SortSizeLargest,
	}
	require.NoError(t, saveTo(path, saved))

	loaded, err := loadFrom(path)
	require.NoError(t, err)
	assert.Equal(t, saved, loaded)
}

func TestLoadPartialFileKeepsDefaultsForMissingKeys(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"scanFilter": "*.iso"}`), 0o600))

	cfg, err := loadFrom(path)
	require.NoError(t, err)

	assert.Equal(t, "*.iso", cfg.ScanFilter)
	assert.Equal(t, domain.UnitMB, cfg.Unit)
	assert.Equal(t, domain.SortNameAZ, cfg.DefaultSort)
}

func TestLoadInvalidEnumsFallBackToDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	stored := `{"unit": "parsecs", "defaultSort": "by-vibes"}`
	require.NoError(t, os.WriteFile(path, []byte(stored), 0o600))

	cfg, err := loadFrom(path)
	require.NoError(t, err)

	assert.Equal(t, domain.UnitMB, cfg.Unit)
	assert.Equal(t, domain.SortNameAZ, cfg.DefaultSort)
}

func TestLoadMalformedJSONReturnsDefaultsAndError(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o600))

	cfg, err := loadFrom(path)
	assert.Error(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}
