package collision

import (
	"fmt"
	"strings"
)

// Policy selects how simultaneous contacts combine into the step velocity
type Policy uint8

const (
	// PolicyLastWins replaces velocity with the last contact's damped offset
	// Concave corners can leave the agent overlapping the earlier walls
	PolicyLastWins Policy = iota
	// PolicySum replaces velocity with the damped sum of every contact offset
	PolicySum
	// PolicyIterative pushes the proposed position out of each wall exactly,
	// re-checking up to Config.Iterations passes
	PolicyIterative
)

var policyNames = [...]string{
	PolicyLastWins:  "last-wins",
	PolicySum:       "sum",
	PolicyIterative: "iterative",
}

func (p Policy) String() string {
	if int(p) < len(policyNames) {
		return policyNames[p]
	}
	return fmt.Sprintf("Policy(%d)", uint8(p))
}

// ParsePolicy maps a config name to a Policy, empty means last-wins
func ParsePolicy(s string) (Policy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "last-wins", "last", "lastwins":
		return PolicyLastWins, nil
	case "sum":
		return PolicySum, nil
	case "iterative":
		return PolicyIterative, nil
	default:
		return PolicyLastWins, fmt.Errorf("collision: unknown policy %q", s)
	}
}

// Next cycles through the policies in declaration order
func (p Policy) Next() Policy {
	return (p + 1) % Policy(len(policyNames))
}
