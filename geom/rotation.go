package geom

import (
	"fmt"
	"strings"
)

// RotationMode selects the rotation formula applied by world transforms
type RotationMode uint8

const (
	// RotateSnapshot computes both coordinates from the pre-rotation pair
	RotateSnapshot RotationMode = iota
	// RotateSequential feeds the updated x into the y computation (legacy)
	RotateSequential
)

func (m RotationMode) String() string {
	switch m {
	case RotateSnapshot:
		return "snapshot"
	case RotateSequential:
		return "sequential"
	default:
		return fmt.Sprintf("RotationMode(%d)", uint8(m))
	}
}

// ParseRotationMode maps a config name to a RotationMode, empty means snapshot
func ParseRotationMode(s string) (RotationMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "snapshot":
		return RotateSnapshot, nil
	case "sequential", "legacy":
		return RotateSequential, nil
	default:
		return RotateSnapshot, fmt.Errorf("geom: unknown rotation mode %q", s)
	}
}
