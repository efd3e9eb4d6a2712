package player

import "math"

// Input is the per-step snapshot from the input collaborator
type Input struct {
	Forward, Back, Left, Right bool
	TurnLeft, TurnRight        bool
	// DT is the frame delta in seconds
	DT float64
}

// Idle reports whether no direction or turn is held
func (in Input) Idle() bool {
	return !in.Forward && !in.Back && !in.Left && !in.Right && !in.TurnLeft && !in.TurnRight
}

func (in Input) dt() float64 {
	if !(in.DT > 0) || math.IsInf(in.DT, 0) {
		return 0
	}
	return in.DT
}
