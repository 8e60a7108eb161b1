package runtime

import (
	"context"

	"github.com/aretw0/pulsenet/pkg/domain"
)

// DefaultMaxPulsesPerPress caps the number of pulses a single press may deliver.
const DefaultMaxPulsesPerPress = 1 << 22

// Scheduler drives one button press to quiescence.
// Pulses are delivered strictly in the order they were sent.
type Scheduler struct {
	net       *domain.Network
	queue     *Queue
	hooks     domain.LifecycleHooks
	maxPulses int
}

// NewScheduler creates a scheduler bound to a network.
func NewScheduler(net *domain.Network, hooks domain.LifecycleHooks, maxPulses int) *Scheduler {
	if maxPulses <= 0 {
		maxPulses = DefaultMaxPulsesPerPress
	}
	return &Scheduler{
		net:       net,
		queue:     NewQueue(net.Len() + 1),
		hooks:     hooks,
		maxPulses: maxPulses,
	}
}

// observer is called for every delivered pulse, after the receiver has handled it.
type observer func(p domain.Pulse, to *domain.Node)

// Press sends one low pulse from the button to the broadcaster and processes
// every pulse it causes. press is the 1-based index reported to hooks.
func (s *Scheduler) Press(ctx context.Context, press int, trace bool, observe observer) (domain.PressReport, error) {
	report := domain.PressReport{Press: press}

	if s.hooks.OnPressStart != nil {
		s.hooks.OnPressStart(ctx, &domain.PressEvent{Press: press})
	}

	s.queue.Reset()
	s.queue.Push(domain.Pulse{From: domain.ButtonName, To: domain.BroadcasterName, Level: domain.Low})

	delivered := 0
	for {
		p, ok := s.queue.Pop()
		if !ok {
			break
		}
		if delivered == s.maxPulses {
			s.queue.Reset()
			return report, &domain.BoundExceededError{Bound: domain.BoundPulses, Limit: s.maxPulses}
		}
		delivered++
		report.Counts.Record(p.Level)
		if trace {
			report.Pulses = append(report.Pulses, p)
		}

		to := s.net.Node(p.To)
		out, emits := to.Receive(p.From, p.Level)

		if s.hooks.OnPulse != nil {
			s.hooks.OnPulse(ctx, &domain.PulseEvent{Press: press, Pulse: p, Kind: to.Kind})
		}
		if observe != nil {
			observe(p, to)
		}

		if !emits {
			continue
		}
		for _, dest := range to.Destinations {
			s.queue.Push(domain.Pulse{From: to.Name, To: dest, Level: out})
		}
	}

	if s.hooks.OnPressEnd != nil {
		s.hooks.OnPressEnd(ctx, &domain.PressEvent{Press: press, Counts: report.Counts})
	}
	return report, nil
}
