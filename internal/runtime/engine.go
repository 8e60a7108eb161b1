package runtime

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/aretw0/pulsenet/pkg/domain"
)

// DefaultMaxPresses bounds searches that press until a condition holds.
const DefaultMaxPresses = 10_000_000

// DefaultMaxTrackedStates bounds the fingerprints kept for cycle detection in one run.
const DefaultMaxTrackedStates = 1 << 20

// Engine repeats button presses on a network and aggregates the results.
// It is not safe for concurrent use: a network has a single logical thread of control.
type Engine struct {
	net    *domain.Network
	sched  *Scheduler
	hooks  domain.LifecycleHooks
	logger *slog.Logger

	maxPresses   int
	maxPulses    int
	maxTracked   int
	detectCycles bool

	// tracked is the number of fingerprints held by the last run.
	tracked int

	// presses counts presses since the last reset.
	presses int
}

// EngineOption configures an Engine.
type EngineOption func(*Engine)

// WithLifecycleHooks registers observability hooks.
func WithLifecycleHooks(hooks domain.LifecycleHooks) EngineOption {
	return func(e *Engine) {
		e.hooks = hooks
	}
}

// WithLogger sets the structured logger. A nil logger keeps the default no-op one.
func WithLogger(logger *slog.Logger) EngineOption {
	return func(e *Engine) {
		if logger != nil {
			e.logger = logger
		}
	}
}

// WithMaxPresses bounds RunUntil and EstimatePeriod.
func WithMaxPresses(n int) EngineOption {
	return func(e *Engine) {
		if n > 0 {
			e.maxPresses = n
		}
	}
}

// WithMaxPulsesPerPress bounds the work of a single press.
func WithMaxPulsesPerPress(n int) EngineOption {
	return func(e *Engine) {
		if n > 0 {
			e.maxPulses = n
		}
	}
}

// WithMaxTrackedStates bounds the memory spent on cycle detection. Once a run has
// recorded n distinct states it stops tracking and continues by brute force.
func WithMaxTrackedStates(n int) EngineOption {
	return func(e *Engine) {
		if n > 0 {
			e.maxTracked = n
		}
	}
}

// WithCycleDetection toggles repeated-state detection (enabled by default).
func WithCycleDetection(enabled bool) EngineOption {
	return func(e *Engine) {
		e.detectCycles = enabled
	}
}

// NewEngine creates a new engine for net.
func NewEngine(net *domain.Network, opts ...EngineOption) *Engine {
	e := &Engine{
		net:          net,
		logger:       slog.New(slog.NewTextHandler(io.Discard, nil)),
		maxPresses:   DefaultMaxPresses,
		maxPulses:    DefaultMaxPulsesPerPress,
		maxTracked:   DefaultMaxTrackedStates,
		detectCycles: true,
	}
	for _, opt := range opts {
		opt(e)
	}
	e.sched = NewScheduler(net, e.hooks, e.maxPulses)
	return e
}

// Network returns the simulated network.
func (e *Engine) Network() *domain.Network {
	return e.net
}

// Presses is the number of presses performed since the last reset.
func (e *Engine) Presses() int {
	return e.presses
}

// Reset restores the initial state of every node.
func (e *Engine) Reset() {
	e.net.Reset()
	e.presses = 0
}

// Press performs a single button press and returns its report, including the
// ordered list of delivered pulses.
func (e *Engine) Press(ctx context.Context) (domain.PressReport, error) {
	return e.press(ctx, true, nil)
}

func (e *Engine) press(ctx context.Context, trace bool, observe observer) (domain.PressReport, error) {
	if err := ctx.Err(); err != nil {
		return domain.PressReport{}, err
	}
	report, err := e.sched.Press(ctx, e.presses+1, trace, observe)
	if err != nil {
		// A press interrupted halfway leaves no consistent state to continue from.
		e.logger.Error("Press aborted, resetting network", "press", e.presses+1, "err", err)
		e.Reset()
		return report, err
	}
	e.presses++
	return report, nil
}

// RunFixed performs exactly presses button presses and returns the total pulse counts.
// With cycle detection, whole repetitions of an already-seen cycle are added
// arithmetically instead of simulated; the result and final state are unchanged.
func (e *Engine) RunFixed(ctx context.Context, presses int) (domain.Counts, error) {
	if presses < 0 {
		return domain.Counts{}, fmt.Errorf("press count must not be negative, got %d", presses)
	}
	e.logger.Debug("Run started", "mode", "fixed", "presses", presses)

	var (
		total   domain.Counts
		history []domain.Counts
		seen    map[string]int
	)
	if e.detectCycles {
		seen = make(map[string]int)
	}

	e.tracked = 0
	for i := 0; i < presses; i++ {
		if seen != nil && len(seen) >= e.maxTracked {
			e.logger.Debug("Cycle tracking stopped", "states", len(seen), "press", i)
			seen, history = nil, nil
		}
		if seen != nil {
			fp := e.net.Fingerprint()
			if j, ok := seen[fp]; ok {
				period := i - j
				var cycle domain.Counts
				for _, c := range history[j:i] {
					cycle = cycle.Add(c)
				}
				repeats := (presses - i) / period
				total = total.Add(cycle.Scale(repeats))
				e.presses += repeats * period
				i += repeats * period
				e.logger.Debug("Cycle detected", "offset", j, "period", period, "skipped", repeats*period)
				seen, history = nil, nil
				if i >= presses {
					break
				}
			} else {
				seen[fp] = i
				e.tracked = len(seen)
			}
		}

		report, err := e.press(ctx, false, nil)
		if err != nil {
			return total, err
		}
		total = total.Add(report.Counts)
		if seen != nil {
			history = append(history, report.Counts)
		}
	}

	e.logger.Debug("Run finished", "mode", "fixed", "low", total.Low, "high", total.High)
	return total, nil
}

// RunUntil presses the button until cond holds for target and returns the 1-based
// index of the first press, counted from the current state, for which it held.
// A zero Condition means "target receives a low pulse".
func (e *Engine) RunUntil(ctx context.Context, target string, cond Condition) (int, error) {
	node := e.net.Node(target)
	if node == nil {
		return 0, &domain.UnreachableTargetError{Target: target}
	}
	if cond.Pulse == nil && cond.State == nil {
		cond = ReceivesLow()
	}
	e.logger.Debug("Run started", "mode", "until", "target", target, "condition", cond.Name)

	var seen map[string]int
	if e.detectCycles && cond.cycleSafe() {
		seen = make(map[string]int)
	}

	e.tracked = 0
	for i := 1; ; i++ {
		if i > e.maxPresses {
			return 0, &domain.BoundExceededError{Bound: domain.BoundPresses, Limit: e.maxPresses}
		}
		if seen != nil && len(seen) >= e.maxTracked {
			e.logger.Debug("Cycle tracking stopped", "states", len(seen), "press", i)
			seen = nil
		}
		if seen != nil {
			fp := e.net.Fingerprint()
			if j, ok := seen[fp]; ok {
				return 0, fmt.Errorf("state before press %d repeats press %d: %w", i, j, domain.ErrConditionUnsatisfiable)
			}
			seen[fp] = i
			e.tracked = len(seen)
		}

		hit := false
		var observe observer
		if cond.Pulse != nil {
			observe = func(p domain.Pulse, to *domain.Node) {
				if to == node && cond.Pulse(p) {
					hit = true
				}
			}
		}
		if _, err := e.press(ctx, false, observe); err != nil {
			return 0, err
		}
		if !hit && cond.State != nil && cond.State(node) {
			hit = true
		}
		if hit {
			e.logger.Debug("Run finished", "mode", "until", "target", target, "press", i)
			return i, nil
		}
	}
}
