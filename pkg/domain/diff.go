package domain

import (
	"reflect"
)

// StateChange describes how one node's state moved between two snapshots.
type StateChange struct {
	Name string `json:"name"`

	// On is set when a flip-flop toggled (new value).
	On *bool `json:"on,omitempty"`

	// Memory contains only the conjunction inputs whose remembered level changed.
	Memory map[string]Level `json:"memory,omitempty"`

	// Received is set when a sink got pulses in between.
	Received *Counts `json:"received,omitempty"`
}

// Diff calculates the difference between two snapshots of the same network.
// If old is nil, every node of new with non-initial state is reported.
// Nodes are reported in network order.
func Diff(old, new []NodeState) []StateChange {
	prev := make(map[string]NodeState, len(old))
	for _, s := range old {
		prev[s.Name] = s
	}

	var changes []StateChange
	for _, s := range new {
		o, seen := prev[s.Name]
		c := StateChange{Name: s.Name}

		if s.On != nil {
			if (seen && o.On != nil && *o.On != *s.On) || (!seen && *s.On) {
				on := *s.On
				c.On = &on
			}
		}

		c.Memory = diffMemory(o.Memory, s.Memory, seen)

		if s.Low != o.Low || s.High != o.High {
			c.Received = &Counts{Low: s.Low - o.Low, High: s.High - o.High}
		}

		if !c.IsEmpty() {
			changes = append(changes, c)
		}
	}
	return changes
}

func diffMemory(old, new map[string]Level, seen bool) map[string]Level {
	delta := make(map[string]Level)
	for k, v := range new {
		ov, exists := old[k]
		switch {
		case !seen && v == High:
			delta[k] = v
		case seen && (!exists || ov != v):
			delta[k] = v
		}
	}

	// Return nil if delta is empty so omitempty can remove the key
	if len(delta) == 0 {
		return nil
	}
	return delta
}

// IsEmpty checks if the change carries anything.
func (c StateChange) IsEmpty() bool {
	return c.On == nil && len(c.Memory) == 0 && c.Received == nil
}

// Equal reports whether two snapshots describe the same state.
func Equal(a, b []NodeState) bool {
	return reflect.DeepEqual(a, b)
}
