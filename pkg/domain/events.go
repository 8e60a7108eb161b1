package domain

import "context"

// PressEvent marks the start or the end of a button press.
type PressEvent struct {
	Press int
	// Counts is only set on OnPressEnd.
	Counts Counts
}

// PulseEvent describes one delivered pulse.
type PulseEvent struct {
	Press int
	Pulse Pulse
	// Kind is the kind of the receiving node.
	Kind Kind
}

// LifecycleHooks defines callbacks for simulation observability.
// Hooks run synchronously inside the press; they must not mutate the network.
type LifecycleHooks struct {
	OnPressStart func(context.Context, *PressEvent)
	OnPulse      func(context.Context, *PulseEvent)
	OnPressEnd   func(context.Context, *PressEvent)
}

// Merge chains hooks: both sets run, h first.
func (h LifecycleHooks) Merge(other LifecycleHooks) LifecycleHooks {
	return LifecycleHooks{
		OnPressStart: chain(h.OnPressStart, other.OnPressStart),
		OnPulse:      chain(h.OnPulse, other.OnPulse),
		OnPressEnd:   chain(h.OnPressEnd, other.OnPressEnd),
	}
}

func chain[E any](a, b func(context.Context, *E)) func(context.Context, *E) {
	switch {
	case a == nil:
		return b
	case b == nil:
		return a
	}
	return func(ctx context.Context, e *E) {
		a(ctx, e)
		b(ctx, e)
	}
}
