// Package world owns the wall segments. The player never moves: every step
// the world is translated and rotated around the origin instead.
package world

import (
	"encoding/binary"
	"fmt"
	"math"

	"github.com/cespare/xxhash/v2"

	"github.com/lixenwraith/wallwalk/geom"
)

// World is an ordered, fixed-size collection of segments
// Order carries no meaning but is stable so runs are reproducible
type World struct {
	segments []geom.Segment
	rotation geom.RotationMode
}

// New validates defs and copies them into a new World
// A degenerate or non-finite segment fails construction, never the frame loop
func New(defs []geom.Segment) (*World, error) {
	segs := make([]geom.Segment, len(defs))
	for i, s := range defs {
		if err := s.Validate(); err != nil {
			return nil, fmt.Errorf("world: segment %d %v: %w", i, s, err)
		}
		segs[i] = s
	}
	return &World{segments: segs}, nil
}

// MustNew is New for compiled-in layouts; it panics on an invalid definition
func MustNew(defs []geom.Segment) *World {
	w, err := New(defs)
	if err != nil {
		panic(err)
	}
	return w
}

// Default builds the compiled-in layout
func Default() *World {
	return MustNew(DefaultLayout())
}

// SetRotationMode selects the rotation formula used by Rotate
func (w *World) SetRotationMode(mode geom.RotationMode) {
	w.rotation = mode
}

// RotationMode returns the active rotation formula
func (w *World) RotationMode() geom.RotationMode {
	return w.rotation
}

// Len returns the number of segments
func (w *World) Len() int {
	return len(w.segments)
}

// Segments returns the owned slice for read-only iteration within a step
// Callers must not retain or modify it; use Snapshot for a copy
func (w *World) Segments() []geom.Segment {
	return w.segments
}

// Snapshot returns a copy of the current segments
func (w *World) Snapshot() []geom.Segment {
	out := make([]geom.Segment, len(w.segments))
	copy(out, w.segments)
	return out
}

// Translate shifts every segment by (dx, dy)
func (w *World) Translate(dx, dy float64) {
	for i := range w.segments {
		w.segments[i].Translate(dx, dy)
	}
}

// Rotate turns the world by -angle about the player: a positive turn input
// spins the world the opposite way
func (w *World) Rotate(angle float64) {
	for i := range w.segments {
		w.segments[i].RotateWith(-angle, w.rotation)
	}
}

// Fingerprint hashes the exact coordinate bits of every segment in order
func (w *World) Fingerprint() uint64 {
	h := xxhash.New()
	var buf [8]byte
	for _, s := range w.segments {
		for _, v := range [4]float64{s.P1.X, s.P1.Y, s.P2.X, s.P2.Y} {
			binary.LittleEndian.PutUint64(buf[:], math.Float64bits(v))
			_, _ = h.Write(buf[:])
		}
	}
	return h.Sum64()
}
