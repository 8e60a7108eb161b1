package runtime

import (
	"fmt"

	"github.com/aretw0/pulsenet/pkg/domain"
)

// Condition is the goal of a RunUntil search.
// Pulse is checked for every pulse delivered to the target, State once the press settles.
// Either may be nil. State must only read On, Memory/AllHigh or LastLevel:
// the receipt counters grow forever and would defeat cycle detection.
type Condition struct {
	Name  string
	Pulse func(p domain.Pulse) bool
	State func(n *domain.Node) bool

	// counting marks conditions built on ever-growing counters.
	counting bool
}

// ReceivesLow holds when the target receives a low pulse.
func ReceivesLow() Condition {
	return Receives(domain.Low)
}

// Receives holds when the target receives a pulse of the given level.
func Receives(level domain.Level) Condition {
	return Condition{
		Name:  fmt.Sprintf("receives %s", level),
		Pulse: func(p domain.Pulse) bool { return p.Level == level },
	}
}

// ReceivesFrom holds when the target receives a pulse of the given level from a specific sender.
func ReceivesFrom(from string, level domain.Level) Condition {
	return Condition{
		Name:  fmt.Sprintf("receives %s from %s", level, from),
		Pulse: func(p domain.Pulse) bool { return p.From == from && p.Level == level },
	}
}

// SettlesOn holds when the target flip-flop is on after a press.
func SettlesOn() Condition {
	return Condition{
		Name:  "settles on",
		State: func(n *domain.Node) bool { return n.Kind == domain.FlipFlop && n.On },
	}
}

// SettlesAllHigh holds when the target conjunction remembers only high pulses after a press.
func SettlesAllHigh() Condition {
	return Condition{
		Name:  "settles all-high",
		State: func(n *domain.Node) bool { return n.Kind == domain.Conjunction && n.AllHigh() },
	}
}

// ReceivedAtLeast holds once a sink has received n pulses of the given level in total.
func ReceivedAtLeast(level domain.Level, n int) Condition {
	return Condition{
		Name: fmt.Sprintf("received %d %s", n, level),
		State: func(node *domain.Node) bool {
			if level == domain.High {
				return node.HighReceived >= n
			}
			return node.LowReceived >= n
		},
		counting: true,
	}
}

// cycleSafe reports whether a repeated fingerprint proves the condition unreachable.
func (c Condition) cycleSafe() bool {
	return !c.counting
}
