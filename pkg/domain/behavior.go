package domain

// Receive delivers a pulse from sender to n, updates n's state and
// returns the level n emits to all of its destinations. ok is false when n stays silent.
func (n *Node) Receive(from string, level Level) (out Level, ok bool) {
	switch n.Kind {
	case Broadcaster:
		return level, true

	case FlipFlop:
		if level == High {
			return Low, false
		}
		n.On = !n.On
		return Level(n.On), true

	case Conjunction:
		// Pulses from unknown senders cannot happen in a built network:
		// the memory set is closed at construction.
		if _, known := n.memory[from]; known {
			n.memory[from] = level
		}
		return Level(!n.AllHigh()), true

	default:
		if level == High {
			n.HighReceived++
		} else {
			n.LowReceived++
		}
		n.LastLevel = level
		return Low, false
	}
}
