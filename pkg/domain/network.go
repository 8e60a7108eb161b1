package domain

import "fmt"

// Network is the closed graph of nodes built from a module description.
// Its structure never changes after NewNetwork returns.
type Network struct {
	Name string

	nodes map[string]*Node
	order []*Node
}

// NewNetwork links the nodes into a network: every destination must resolve to a node,
// and every node learns its inputs. Conjunction memories are initialised to low.
func NewNetwork(name string, nodes ...*Node) (*Network, error) {
	net := &Network{
		Name:  name,
		nodes: make(map[string]*Node, len(nodes)),
		order: make([]*Node, 0, len(nodes)),
	}
	for _, n := range nodes {
		if _, dup := net.nodes[n.Name]; dup {
			return nil, &ConfigError{Reason: fmt.Sprintf("module %q declared twice", n.Name)}
		}
		net.nodes[n.Name] = n
		net.order = append(net.order, n)
	}

	b, ok := net.nodes[BroadcasterName]
	if !ok || b.Kind != Broadcaster {
		return nil, &ConfigError{Reason: "missing broadcaster"}
	}

	for _, n := range net.order {
		for _, dest := range n.Destinations {
			target, ok := net.nodes[dest]
			if !ok {
				return nil, &ConfigError{Reason: fmt.Sprintf("module %q sends to unknown module %q", n.Name, dest)}
			}
			target.connect(n.Name)
		}
	}
	return net, nil
}

// Node returns the node with the given name, or nil.
func (net *Network) Node(name string) *Node {
	return net.nodes[name]
}

// Broadcaster returns the entry node.
func (net *Network) Broadcaster() *Node {
	return net.nodes[BroadcasterName]
}

// Nodes returns all nodes in declaration order, sinks last.
func (net *Network) Nodes() []*Node {
	return net.order
}

// Len is the number of nodes, sinks included.
func (net *Network) Len() int {
	return len(net.order)
}

// Reset restores every node to its initial state.
func (net *Network) Reset() {
	for _, n := range net.order {
		n.reset()
	}
}

// Fingerprint encodes the global state that determines future behaviour:
// one bit per flip-flop and one bit per conjunction input.
// Two equal fingerprints guarantee identical subsequent presses.
func (net *Network) Fingerprint() string {
	var (
		buf  []byte
		cur  byte
		bits uint
	)
	push := func(b bool) {
		if b {
			cur |= 1 << bits
		}
		bits++
		if bits == 8 {
			buf = append(buf, cur)
			cur, bits = 0, 0
		}
	}
	for _, n := range net.order {
		switch n.Kind {
		case FlipFlop:
			push(n.On)
		case Conjunction:
			for _, in := range n.Inputs {
				push(bool(n.memory[in]))
			}
		}
	}
	if bits > 0 {
		buf = append(buf, cur)
	}
	return string(buf)
}

// NodeState is a read-only view of a node's state.
type NodeState struct {
	Name   string           `json:"name" yaml:"name"`
	Kind   string           `json:"kind" yaml:"kind"`
	On     *bool            `json:"on,omitempty" yaml:"on,omitempty"`
	Memory map[string]Level `json:"memory,omitempty" yaml:"memory,omitempty"`
	Low    int              `json:"low_received,omitempty" yaml:"low_received,omitempty"`
	High   int              `json:"high_received,omitempty" yaml:"high_received,omitempty"`
}

// Snapshot copies the state of every node, in network order.
func (net *Network) Snapshot() []NodeState {
	out := make([]NodeState, 0, len(net.order))
	for _, n := range net.order {
		s := NodeState{Name: n.Name, Kind: n.Kind.String()}
		switch n.Kind {
		case FlipFlop:
			on := n.On
			s.On = &on
		case Conjunction:
			s.Memory = make(map[string]Level, len(n.memory))
			for k, v := range n.memory {
				s.Memory[k] = v
			}
		case Sink:
			s.Low, s.High = n.LowReceived, n.HighReceived
		}
		out = append(out, s)
	}
	return out
}
