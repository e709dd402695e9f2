package services

import (
	"time"

	"diskmaid/internal/domain"
)

type ScanResult struct {
	RootPath string
	Entries  []domain.Entry
	Duration time.Duration
}

type ActionResult struct {
	Type     ActionType
	Path     string
	Duration time.Duration
	Message  string
}
