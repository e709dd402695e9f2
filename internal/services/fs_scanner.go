package services

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"diskmaid/internal/domain"
)

const (
	MaxScanDepth   = 5
	MaxScanEntries = 10000
)

// FSScanner walks a directory tree and produces a flat list of entry
// records. Traversal is bounded by a depth cap and an entry-count cap so a
// pathological tree (junction loops, huge flat directories) cannot run away
// with memory or wall-clock time; hitting a cap silently truncates the
// result. The scanner is stateless between calls and never mutates the
// filesystem.
type FSScanner struct {
	maxDepth   int
	maxEntries int
}

func NewFSScanner() *FSScanner {
	return &FSScanner{
		maxDepth:   MaxScanDepth,
		maxEntries: MaxScanEntries,
	}
}

type dirFrame struct {
	path  string
	depth int
}

// Scan lists the tree under req.RootPath. The only failure mode is a root
// that cannot be listed at all; every deeper per-entry failure (stat race,
// unreadable subdirectory) is absorbed best-effort: the offending entry or
// subtree is skipped and the scan still succeeds. The context is consulted
// only before traversal begins; a scan that has started runs to completion
// or to its caps.
func (scanner *FSScanner) Scan(ctx context.Context, req ScanRequest) (ScanResult, error) {
	start := time.Now()
	root := cleanPath(req.RootPath)

	if err := ctx.Err(); err != nil {
		return ScanResult{}, err
	}

	entries := make([]domain.Entry, 0, 256)
	stack := []dirFrame{{path: root, depth: 1}}

	for len(stack) > 0 {
		frame := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if frame.depth > scanner.maxDepth {
			continue
		}
		if len(entries) >= scanner.maxEntries {
			break
		}

		children, err := os.ReadDir(frame.path)
		if err != nil {
			if frame.path == root {
				return ScanResult{}, fmt.Errorf("cannot list %s: %w", root, err)
			}
			// Unreadable subdirectory: nothing beneath it, not a failure.
			continue
		}

		for _, child := range children {
			if len(entries) >= scanner.maxEntries {
				break
			}
			childPath := filepath.Join(frame.path, child.Name())
			info, err := os.Stat(childPath)
			if err != nil {
				// Stat race or permission problem on a single entry
				// never aborts the scan.
				continue
			}
			if info.IsDir() {
				entries = append(entries, domain.Entry{
					Path:     childPath,
					Size:     0,
					IsDir:    true,
					Modified: modifiedSeconds(info),
				})
				stack = append(stack, dirFrame{path: childPath, depth: frame.depth + 1})
				continue
			}
			if !matchesFilter(req.Filter, child.Name()) {
				continue
			}
			entries = append(entries, domain.Entry{
				Path:     childPath,
				Size:     info.Size(),
				IsDir:    false,
				Modified: modifiedSeconds(info),
			})
		}
	}

	return ScanResult{
		RootPath: root,
		Entries:  entries,
		Duration: time.Since(start),
	}, nil
}

func modifiedSeconds(info os.FileInfo) int64 {
	seconds := info.ModTime().Unix()
	if seconds < 0 {
		return 0
	}
	return seconds
}
