package domain

import "fmt"

// Kind selects the transition function of a node.
type Kind int

const (
	// Sink absorbs pulses without forwarding. Created for destinations that are never declared.
	Sink Kind = iota
	// Broadcaster forwards its input level to every destination.
	Broadcaster
	// FlipFlop toggles on low pulses and ignores high ones.
	FlipFlop
	// Conjunction remembers the last level per input and emits low iff all of them are high.
	Conjunction
)

// Reserved node names.
const (
	// BroadcasterName is the only module allowed to be declared without a prefix.
	BroadcasterName = "broadcaster"
	// ButtonName is the sender of the seed pulse. It never exists as a node.
	ButtonName = "button"
)

// Declaration prefixes.
const (
	PrefixFlipFlop    = "%"
	PrefixConjunction = "&"
)

func (k Kind) String() string {
	switch k {
	case Broadcaster:
		return "broadcaster"
	case FlipFlop:
		return "flip-flop"
	case Conjunction:
		return "conjunction"
	case Sink:
		return "sink"
	}
	return fmt.Sprintf("kind(%d)", int(k))
}

// Prefix returns the declaration prefix used in the text format.
func (k Kind) Prefix() string {
	switch k {
	case FlipFlop:
		return PrefixFlipFlop
	case Conjunction:
		return PrefixConjunction
	}
	return ""
}

// ParseKind maps the YAML spelling (or prefix) of a kind back to a Kind.
func ParseKind(s string) (Kind, error) {
	switch s {
	case "broadcaster", "":
		return Broadcaster, nil
	case "flip-flop", "flipflop", PrefixFlipFlop:
		return FlipFlop, nil
	case "conjunction", PrefixConjunction:
		return Conjunction, nil
	}
	return Sink, fmt.Errorf("unknown module type %q", s)
}

// Node is a single module of the network.
// Structure (Name, Kind, Destinations, Inputs) is fixed once the network is built;
// only the per-kind state changes while pulses are delivered.
type Node struct {
	Name string
	Kind Kind

	// Destinations are delivered to in this order on every emission.
	Destinations []string

	// Inputs lists, in declaration order, every node that has this node as a destination.
	// For conjunctions it is exactly the key set of the memory.
	Inputs []string

	// On is the flip-flop state.
	On bool

	// memory holds the last level seen per input (conjunctions only).
	memory map[string]Level

	// Receipt counters, maintained for sinks.
	LowReceived  int
	HighReceived int
	LastLevel    Level
}

// NewNode creates a node with empty state.
func NewNode(name string, kind Kind, destinations ...string) *Node {
	n := &Node{
		Name:         name,
		Kind:         kind,
		Destinations: destinations,
	}
	if kind == Conjunction {
		n.memory = make(map[string]Level)
	}
	return n
}

// connect registers from as an input. It is idempotent.
func (n *Node) connect(from string) {
	for _, in := range n.Inputs {
		if in == from {
			return
		}
	}
	n.Inputs = append(n.Inputs, from)
	if n.Kind == Conjunction {
		n.memory[from] = Low
	}
}

// Memory returns the level remembered for input, and whether input is known.
func (n *Node) Memory(input string) (Level, bool) {
	l, ok := n.memory[input]
	return l, ok
}

// AllHigh reports whether every remembered input level is high.
// An input-less conjunction is vacuously all-high.
func (n *Node) AllHigh() bool {
	for _, l := range n.memory {
		if !l {
			return false
		}
	}
	return true
}

// reset restores the initial state.
func (n *Node) reset() {
	n.On = false
	for k := range n.memory {
		n.memory[k] = Low
	}
	n.LowReceived = 0
	n.HighReceived = 0
	n.LastLevel = Low
}
