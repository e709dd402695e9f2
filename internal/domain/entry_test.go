package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAggregateCountsFilesAndDirsSeparately(t *testing.T) {
	entries := []Entry{
		{Path: "/scan/a.log", Size: 1024},
		{Path: "/scan/b.log", Size: 2048},
		{Path: "/scan/empty", Size: 0},
		{Path: "/scan/sub", IsDir: true},
		{Path: "/scan/sub/deeper", IsDir: true},
	}

	summary := Aggregate(entries)

	assert.Equal(t, int64(3), summary.FileCount)
	assert.Equal(t, int64(2), summary.DirCount)
	assert.Equal(t, int64(3072), summary.TotalBytes)
	assert.Equal(t, "0.00 MB", UnitMB.Format(summary.TotalBytes))
}

func TestAggregateEmptyList(t *testing.T) {
	assert.Equal(t, Summary{}, Aggregate(nil))
}

func TestUnitConvertUsesBinaryScaling(t *testing.T) {
	assert.InDelta(t, 2.0, UnitKB.Convert(2048), 1e-9)
	assert.InDelta(t, 1.0, UnitMB.Convert(1024*1024), 1e-9)
	assert.InDelta(t, 0.5, UnitGB.Convert(512*1024*1024), 1e-9)
}

func TestUnitFormat(t *testing.T) {
	assert.Equal(t, "1.50 KB", UnitKB.Format(1536))
	assert.Equal(t, "2.00 GB", UnitGB.Format(2*1024*1024*1024))
}

func TestUnitNextCycles(t *testing.T) {
	assert.Equal(t, UnitMB, UnitKB.Next())
	assert.Equal(t, UnitGB, UnitMB.Next())
	assert.Equal(t, UnitKB, UnitGB.Next())
}
