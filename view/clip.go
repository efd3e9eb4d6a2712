// Package view turns world segments into screen-space lines: near-plane
// culling and clipping, then perspective or overhead projection.
package view

import (
	"fmt"
	"strings"

	"github.com/lixenwraith/wallwalk/geom"
)

// Depth is the forward distance of p from the player; forward is -Y
func Depth(p geom.Point) float64 {
	return -p.Y
}

// Class is a segment's position relative to the near plane
type Class uint8

const (
	// ClassFront has both endpoints at or beyond the near plane
	ClassFront Class = iota
	// ClassBehind has both endpoints nearer than the near plane
	ClassBehind
	// ClassStraddle crosses the near plane
	ClassStraddle
)

func (c Class) String() string {
	switch c {
	case ClassFront:
		return "front"
	case ClassBehind:
		return "behind"
	case ClassStraddle:
		return "straddle"
	default:
		return fmt.Sprintf("Class(%d)", uint8(c))
	}
}

// Classify compares both endpoint depths against clipDepth
func Classify(s geom.Segment, clipDepth float64) Class {
	f1 := Depth(s.P1) >= clipDepth
	f2 := Depth(s.P2) >= clipDepth
	switch {
	case f1 && f2:
		return ClassFront
	case !f1 && !f2:
		return ClassBehind
	default:
		return ClassStraddle
	}
}

// ClipPolicy decides what happens to segments crossing the near plane
type ClipPolicy uint8

const (
	// ClipTrim replaces the near endpoint with the near-plane intersection
	ClipTrim ClipPolicy = iota
	// ClipDiscard drops crossing segments entirely
	ClipDiscard
)

func (p ClipPolicy) String() string {
	switch p {
	case ClipTrim:
		return "trim"
	case ClipDiscard:
		return "discard"
	default:
		return fmt.Sprintf("ClipPolicy(%d)", uint8(p))
	}
}

// ParseClipPolicy maps a config name to a ClipPolicy, empty means trim
func ParseClipPolicy(s string) (ClipPolicy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "trim", "clip":
		return ClipTrim, nil
	case "discard", "drop":
		return ClipDiscard, nil
	default:
		return ClipTrim, fmt.Errorf("view: unknown clip policy %q", s)
	}
}

// Clip trims a straddling segment at depth == clipDepth, keeping the far
// endpoint and the original endpoint order. ok is false if the segment is not
// straddling or the trimmed remainder collapses to a point.
func Clip(s geom.Segment, clipDepth float64) (geom.Segment, bool) {
	if Classify(s, clipDepth) != ClassStraddle {
		return s, false
	}

	front, back := &s.P1, &s.P2
	if Depth(s.P1) < clipDepth {
		front, back = back, front
	}

	fd, bd := Depth(*front), Depth(*back)
	t := (fd - clipDepth) / (fd - bd)
	*back = geom.Point{
		X: front.X + (back.X-front.X)*t,
		Y: -clipDepth,
	}

	if s.P1 == s.P2 {
		return s, false
	}
	return s, true
}

// Cull appends to dst every segment visible beyond clipDepth under policy
func Cull(dst, segments []geom.Segment, clipDepth float64, policy ClipPolicy) []geom.Segment {
	for _, s := range segments {
		switch Classify(s, clipDepth) {
		case ClassFront:
			dst = append(dst, s)
		case ClassBehind:
		case ClassStraddle:
			if policy == ClipDiscard {
				continue
			}
			if c, ok := Clip(s, clipDepth); ok {
				dst = append(dst, c)
			}
		}
	}
	return dst
}
