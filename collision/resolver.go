package collision

import "github.com/lixenwraith/wallwalk/geom"

// Result is the outcome of one resolution step
type Result struct {
	// Velocity is the world translation to apply this step
	Velocity geom.Point
	// Blocked is true when the proposed move touched at least one wall
	Blocked bool
	// Contacts found against the proposed position, in segment order
	// Backed by the Resolver's scratch buffer: valid until the next Resolve
	Contacts []Contact
}

// Resolver applies a Config to a set of segments each step
// Not safe for concurrent use
type Resolver struct {
	cfg      Config
	contacts []Contact
}

// NewResolver validates cfg and returns a Resolver
func NewResolver(cfg Config) (*Resolver, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &Resolver{cfg: cfg}, nil
}

// Config returns the active configuration
func (r *Resolver) Config() Config {
	return r.cfg
}

// SetPolicy switches the combination policy at runtime
func (r *Resolver) SetPolicy(p Policy) {
	if int(p) < len(policyNames) {
		r.cfg.Policy = p
	}
}

// Resolve checks the agent's proposed position, -velocity, against every
// segment and returns the corrected world velocity
func (r *Resolver) Resolve(radius float64, velocity geom.Point, segments []geom.Segment) Result {
	proj := velocity.Neg()
	r.contacts = r.collect(r.contacts[:0], radius, proj, segments)

	res := Result{
		Velocity: velocity,
		Blocked:  len(r.contacts) > 0,
		Contacts: r.contacts,
	}
	if !res.Blocked {
		return res
	}

	switch r.cfg.Policy {
	case PolicyLastWins:
		last := r.contacts[len(r.contacts)-1]
		res.Velocity = last.Offset.Scale(1 / r.cfg.Damping)

	case PolicySum:
		var sum geom.Point
		for _, c := range r.contacts {
			sum = sum.Add(c.Offset)
		}
		res.Velocity = sum.Scale(1 / r.cfg.Damping)

	case PolicyIterative:
		res.Velocity = r.iterate(radius, proj, segments).Neg()
	}
	return res
}

func (r *Resolver) collect(dst []Contact, radius float64, proj geom.Point, segments []geom.Segment) []Contact {
	for i, s := range segments {
		if c, ok := Check(radius, proj, s, r.cfg.Tolerance); ok {
			c.Index = i
			dst = append(dst, c)
		}
	}
	return dst
}

// iterate pushes pos out of each overlapping wall in turn until a pass finds none
func (r *Resolver) iterate(radius float64, pos geom.Point, segments []geom.Segment) geom.Point {
	for pass := 0; pass < r.cfg.Iterations; pass++ {
		moved := false
		for _, s := range segments {
			c, ok := Check(radius, pos, s, r.cfg.Tolerance)
			if !ok {
				continue
			}
			pos = pos.Add(c.PushOut(radius))
			moved = true
		}
		if !moved {
			break
		}
	}
	return pos
}
