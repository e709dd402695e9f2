package config

import "diskmaid/internal/domain"

// Config is the persisted user configuration. The scanner and sorter
// consume these values as opaque parameters; only the UI owns them.
type Config struct {
	ScanFilter  string            `json:"scanFilter"`
	Unit        domain.Unit       `json:"unit"`
	DefaultPath string            `json:"defaultPath"`
	DefaultSort domain.SortMethod `json:"defaultSort"`
}

// fileConfig mirrors Config with pointer fields so a partial config file
// only overrides the keys it actually contains.
type fileConfig struct {
	ScanFilter  *string `json:"scanFilter"`
	Unit        *string `json:"unit"`
	DefaultPath *string `json:"defaultPath"`
	DefaultSort *string `json:"defaultSort"`
}
