package ui

import "diskmaid/internal/services"

// scanResultMsg carries the generation of the scan that produced it so a
// result arriving after the user pressed stop (or started a newer scan) is
// recognized as stale and discarded without being applied.
type scanResultMsg struct {
	generation int
	result     services.ScanResult
	err        error
}

type actionResultMsg struct {
	result services.ActionResult
	err    error
}

type configSavedMsg struct {
	err error
}
