package services

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// FSActions performs the thin OS-level operations the scan screen offers on
// a previously scanned path: deleting a file and opening its containing
// folder. Callers own the record list; after a successful delete they drop
// the matching record themselves.
type FSActions struct{}

func NewFSActions() *FSActions {
	return &FSActions{}
}

func (actions *FSActions) Execute(ctx context.Context, req ActionRequest) (ActionResult, error) {
	start := time.Now()
	if err := ctx.Err(); err != nil {
		return ActionResult{Type: req.Type}, err
	}

	result := ActionResult{Type: req.Type, Path: req.Path}
	switch req.Type {
	case ActionDelete:
		if err := deleteFile(req.Path); err != nil {
			return result, err
		}
		result.Message = fmt.Sprintf("Successfully deleted: %s", req.Path)
	case ActionOpenFolder:
		target := containingFolder(req.Path)
		if err := openPath(target); err != nil {
			return result, err
		}
		result.Message = fmt.Sprintf("Opened folder for: %s", req.Path)
	default:
		return result, fmt.Errorf("unsupported action: %s", req.Type)
	}

	result.Duration = time.Since(start)
	return result, nil
}

// deleteFile removes a regular file. Directories are refused: the scan
// screen only offers deletion for files, and nothing here should ever
// remove more than one filesystem object.
func deleteFile(path string) error {
	info, err := os.Lstat(path)
	if err != nil {
		return err
	}
	if info.IsDir() {
		return fmt.Errorf("refusing to delete directory: %s", path)
	}
	return os.Remove(path)
}

func containingFolder(path string) string {
	parent := filepath.Dir(path)
	if parent == "" || parent == path {
		return path
	}
	return parent
}
