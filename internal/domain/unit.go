package domain

import "fmt"

// Unit selects the scale sizes are displayed in. Scaling is binary: KB
// divides by 1024, MB by 1024^2, GB by 1024^3.
type Unit string

const (
	UnitKB Unit = "KB"
	UnitMB Unit = "MB"
	UnitGB Unit = "GB"
)

func Units() []Unit {
	return []Unit{UnitKB, UnitMB, UnitGB}
}

func (unit Unit) Convert(bytes int64) float64 {
	switch unit {
	case UnitKB:
		return float64(bytes) / 1024
	case UnitGB:
		return float64(bytes) / (1024 * 1024 * 1024)
	default:
		return float64(bytes) / (1024 * 1024)
	}
}

func (unit Unit) Format(bytes int64) string {
	return fmt.Sprintf("%.2f %s", unit.Convert(bytes), unit.name())
}

func (unit Unit) name() string {
	switch unit {
	case UnitKB, UnitMB, UnitGB:
		return string(unit)
	}
	return string(UnitMB)
}

// Next returns the unit following this one in picker order, wrapping around.
func (unit Unit) Next() Unit {
	units := Units()
	for index, candidate := range units {
		if candidate == unit {
			return units[(index+1)%len(units)]
		}
	}
	return UnitMB
}
