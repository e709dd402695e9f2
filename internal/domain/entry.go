package domain

// Entry is one scanned filesystem object. Paths are absolute and unique
// within a single scan result. Size is always 0 for directories; directory
// sizes are never accumulated. Modified is whole seconds since the Unix
// epoch, 0 when the OS cannot supply a timestamp.
type Entry struct {
	Path     string
	Size     int64
	IsDir    bool
	Modified int64
}

// Summary holds the aggregates derived from a scan result. Directories do
// not count toward FileCount or TotalBytes.
type Summary struct {
	FileCount  int64
	DirCount   int64
	TotalBytes int64
}

// Aggregate computes the summary for a record list. It does not depend on
// the list being sorted.
func Aggregate(entries []Entry) Summary {
	var summary Summary
	for _, entry := range entries {
		if entry.IsDir {
			summary.DirCount++
			continue
		}
		summary.FileCount++
		summary.TotalBytes += entry.Size
	}
	return summary
}
