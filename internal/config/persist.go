package config

import (
	"encoding/json"
	"os"
	"path/filepath"

	"diskmaid/internal/domain"
)

const (
	configDirName  = "diskmaid"
	configFileName = "config.json"
)

func DefaultConfig() Config {
	return Config{
		ScanFilter:  "*",
		Unit:        domain.UnitMB,
		DefaultPath: "",
		DefaultSort: domain.SortNameAZ,
	}
}

func ConfigPath() (string, error) {
	base, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(base, configDirName, configFileName), nil
}

func LoadConfig() (Config, error) {
	path, err := ConfigPath()
	if err != nil {
		return DefaultConfig(), err
	}
	return loadFrom(path)
}

func SaveConfig(cfg Config) error {
	path, err := ConfigPath()
	if err != nil {
		return err
	}
	return saveTo(path, cfg)
}

func loadFrom(path string) (Config, error) {
	cfg := DefaultConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, err
	}
	var stored fileConfig
	if err := json.Unmarshal(data, &stored); err != nil {
		return cfg, err
	}
	return mergeConfig(cfg, stored), nil
}

func saveTo(path string, cfg Config) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o600)
}

func mergeConfig(base Config, stored fileConfig) Config {
	merged := base
	if stored.ScanFilter != nil {
		merged.ScanFilter = *stored.ScanFilter
	}
	if stored.Unit != nil {
		merged.Unit = unitValue(*stored.Unit, base.Unit)
	}
	if stored.DefaultPath != nil {
		merged.DefaultPath = *stored.DefaultPath
	}
	if stored.DefaultSort != nil {
		merged.DefaultSort = sortValue(*stored.DefaultSort, base.DefaultSort)
	}
	return merged
}

func unitValue(value string, fallback domain.Unit) domain.Unit {
	switch domain.Unit(value) {
	case domain.UnitKB, domain.UnitMB, domain.UnitGB:
		return domain.Unit(value)
	default:
		return fallback
	}
}

func sortValue(value string, fallback domain.SortMethod) domain.SortMethod {
	for _, method := range domain.SortMethods() {
		if domain.SortMethod(value) == method {
			return method
		}
	}
	return fallback
}
