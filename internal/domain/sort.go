package domain

import (
	"sort"
	"strings"
)

type SortMethod string

const (
	SortNameAZ       SortMethod = "name-az"
	SortNameZA       SortMethod = "name-za"
	SortSizeLargest  SortMethod = "size-largest"
	SortSizeSmallest SortMethod = "size-smallest"
	SortNewest       SortMethod = "newest"
	SortOldest       SortMethod = "oldest"
)

// SortMethods lists every method in picker order.
func SortMethods() []SortMethod {
	return []SortMethod{
		SortNameAZ,
		SortNameZA,
		SortSizeLargest,
		SortSizeSmallest,
		SortNewest,
		SortOldest,
	}
}

func (method SortMethod) Label() string {
	switch method {
	case SortNameAZ:
		return "Name (A-Z)"
	case SortNameZA:
		return "Name (Z-A)"
	case SortSizeLargest:
		return "Size (Largest First)"
	case SortSizeSmallest:
		return "Size (Smallest First)"
	case SortNewest:
		return "Date (Newest First)"
	case SortOldest:
		return "Date (Oldest First)"
	}
	return string(method)
}

// Next returns the method following this one in picker order, wrapping
// around at the end.
func (method SortMethod) Next() SortMethod {
	methods := SortMethods()
	for index, candidate := range methods {
		if candidate == method {
			return methods[(index+1)%len(methods)]
		}
	}
	return SortNameAZ
}

// SortEntries orders the list in place. Name comparisons are
// case-insensitive on the full path; size and date comparisons are numeric,
// so directories (size 0) order as the smallest. The sort is stable: equal
// keys keep their input order, and files and directories stay intermixed.
func SortEntries(entries []Entry, method SortMethod) {
	sort.SliceStable(entries, func(i, j int) bool {
		left, right := entries[i], entries[j]
		switch method {
		case SortNameZA:
			return strings.ToLower(right.Path) < strings.ToLower(left.Path)
		case SortSizeLargest:
			return right.Size < left.Size
		case SortSizeSmallest:
			return left.Size < right.Size
		case SortNewest:
			return right.Modified < left.Modified
		case SortOldest:
			return left.Modified < right.Modified
		default:
			return strings.ToLower(left.Path) < strings.ToLower(right.Path)
		}
	})
}
