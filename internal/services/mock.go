package services

import (
	"context"
	"fmt"
	"time"

	"diskmaid/internal/domain"
)

// MockScanner returns a fixed entry list without touching the filesystem.
type MockScanner struct {
	Entries []domain.Entry
	Err     error
}

func NewMockScanner() *MockScanner {
	return &MockScanner{}
}

func (scanner *MockScanner) Scan(ctx context.Context, req ScanRequest) (ScanResult, error) {
	if err := ctx.Err(); err != nil {
		return ScanResult{}, err
	}
	if scanner.Err != nil {
		return ScanResult{}, scanner.Err
	}
	entries := append([]domain.Entry{}, scanner.Entries...)
	return ScanResult{
		RootPath: req.RootPath,
		Entries:  entries,
		Duration: time.Millisecond,
	}, nil
}

// MockActions records requests and succeeds unless Err is set.
type MockActions struct {
	Requests []ActionRequest
	Err      error
}

func NewMockActions() *MockActions {
	return &MockActions{}
}

func (actions *MockActions) Execute(ctx context.Context, req ActionRequest) (ActionResult, error) {
	if err := ctx.Err(); err != nil {
		return ActionResult{Type: req.Type}, err
	}
	actions.Requests = append(actions.Requests, req)
	if actions.Err != nil {
		return ActionResult{Type: req.Type, Path: req.Path}, actions.Err
	}
	return ActionResult{
		Type:     req.Type,
		Path:     req.Path,
		Duration: time.Millisecond,
		Message:  fmt.Sprintf("%s completed", req.Type),
	}, nil
}
