package pulsenet

import (
	"context"
	_ "embed"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/aretw0/pulsenet/internal/compiler"
	"github.com/aretw0/pulsenet/internal/runtime"
	"github.com/aretw0/pulsenet/pkg/adapters/file"
	"github.com/aretw0/pulsenet/pkg/domain"
	"github.com/aretw0/pulsenet/pkg/ports"
)

//go:embed VERSION
var version string

// Version is the library version.
var Version = strings.TrimSpace(version)

// Condition is the goal of a RunUntil search.
type Condition = runtime.Condition

// Search conditions.
var (
	ReceivesLow     = runtime.ReceivesLow
	Receives        = runtime.Receives
	ReceivesFrom    = runtime.ReceivesFrom
	SettlesOn       = runtime.SettlesOn
	SettlesAllHigh  = runtime.SettlesAllHigh
	ReceivedAtLeast = runtime.ReceivedAtLeast
)

// Engine is the high-level entry point for the pulsenet library.
// It wraps the internal runtime and provides a simplified API for consumers.
type Engine struct {
	runtime     *runtime.Engine
	loader      ports.NetworkLoader
	hooks       domain.LifecycleHooks
	netHooks    []func(*domain.Network) domain.LifecycleHooks
	logger      *slog.Logger
	runtimeOpts []runtime.EngineOption
	Name        string
}

// Option defines a functional option for configuring the Engine.
type Option func(*Engine)

// WithLifecycleHooks registers observability hooks.
func WithLifecycleHooks(hooks domain.LifecycleHooks) Option {
	return func(e *Engine) {
		e.hooks = e.hooks.Merge(hooks)
	}
}

// WithNetworkHooks registers hooks that need the built network, such as metrics
// that inspect node state. fn is called once, after the network is compiled.
func WithNetworkHooks(fn func(*domain.Network) domain.LifecycleHooks) Option {
	return func(e *Engine) {
		e.netHooks = append(e.netHooks, fn)
	}
}

// WithLoader injects a custom NetworkLoader, bypassing the default file loader.
func WithLoader(l ports.NetworkLoader) Option {
	return func(e *Engine) {
		e.loader = l
	}
}

// WithLogger sets a custom structured logger for the engine.
func WithLogger(logger *slog.Logger) Option {
	return func(e *Engine) {
		e.logger = logger
	}
}

// WithMaxPresses bounds searches (RunUntil, EstimatePeriod).
func WithMaxPresses(n int) Option {
	return func(e *Engine) {
		e.runtimeOpts = append(e.runtimeOpts, runtime.WithMaxPresses(n))
	}
}

// WithMaxPulsesPerPress bounds the work of a single press.
func WithMaxPulsesPerPress(n int) Option {
	return func(e *Engine) {
		e.runtimeOpts = append(e.runtimeOpts, runtime.WithMaxPulsesPerPress(n))
	}
}

// WithMaxTrackedStates bounds the states remembered for cycle detection in one run.
func WithMaxTrackedStates(n int) Option {
	return func(e *Engine) {
		e.runtimeOpts = append(e.runtimeOpts, runtime.WithMaxTrackedStates(n))
	}
}

// WithCycleDetection toggles repeated-state detection (default on).
func WithCycleDetection(enabled bool) Option {
	return func(e *Engine) {
		e.runtimeOpts = append(e.runtimeOpts, runtime.WithCycleDetection(enabled))
	}
}

// Parse builds a network from the line format:
//
//	broadcaster -> a, b, c
//	%a -> b
//	&inv -> a
func Parse(text string) (*domain.Network, error) {
	return compiler.Build("inline", text)
}

// New initializes a new Engine.
// By default, it reads the network description from the file at path.
// If WithLoader option is provided, path is only used as a label.
func New(path string, opts ...Option) (*Engine, error) {
	return NewContext(context.Background(), path, opts...)
}

// NewContext is New with a context for the loader.
func NewContext(ctx context.Context, path string, opts ...Option) (*Engine, error) {
	eng := &Engine{}

	// Apply Options first to check if a loader is provided
	for _, opt := range opts {
		opt(eng)
	}

	if eng.loader == nil {
		if path == "" {
			return nil, fmt.Errorf("path is required when no custom loader is provided")
		}
		eng.loader = file.New(path)
	}
	eng.Name = eng.loader.Name()

	if eng.logger == nil {
		eng.logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	eng.logger = eng.logger.With("network", eng.Name)

	decls, err := eng.loader.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load network %s: %w", eng.Name, err)
	}
	net, err := compiler.Compile(eng.Name, decls)
	if err != nil {
		return nil, fmt.Errorf("failed to build network %s: %w", eng.Name, err)
	}
	eng.logger.Debug("Network built", "nodes", net.Len())

	for _, fn := range eng.netHooks {
		eng.hooks = eng.hooks.Merge(fn(net))
	}

	runtimeOpts := []runtime.EngineOption{
		runtime.WithLifecycleHooks(eng.hooks),
		runtime.WithLogger(eng.logger),
	}
	runtimeOpts = append(runtimeOpts, eng.runtimeOpts...)
	eng.runtime = runtime.NewEngine(net, runtimeOpts...)

	return eng, nil
}

// RunFixed resets the network and performs presses button presses.
// The answer to the classic puzzle is the returned Counts' Product.
func (e *Engine) RunFixed(ctx context.Context, presses int) (domain.Counts, error) {
	e.runtime.Reset()
	return e.runtime.RunFixed(ctx, presses)
}

// RunUntil resets the network and returns the 1-based index of the first press
// for which cond holds on target.
func (e *Engine) RunUntil(ctx context.Context, target string, cond Condition) (int, error) {
	e.runtime.Reset()
	return e.runtime.RunUntil(ctx, target, cond)
}

// EstimatePeriod predicts RunUntil(target, ReceivesLow()) for networks made of independent
// counters feeding a single conjunction. See domain.ErrNotPeriodic.
func (e *Engine) EstimatePeriod(ctx context.Context, target string) (int, error) {
	return e.runtime.EstimatePeriod(ctx, target)
}

// Press performs one press from the current state and returns the ordered pulse trace.
func (e *Engine) Press(ctx context.Context) (domain.PressReport, error) {
	return e.runtime.Press(ctx)
}

// Reset restores the initial state of every node.
func (e *Engine) Reset() {
	e.runtime.Reset()
}

// Network returns the simulated network, for inspection.
func (e *Engine) Network() *domain.Network {
	return e.runtime.Network()
}

// Watch returns a channel that signals when the underlying description changes.
// Returns error if the loader does not support watching.
func (e *Engine) Watch(ctx context.Context) (<-chan string, error) {
	if w, ok := e.loader.(ports.Watchable); ok {
		return w.Watch(ctx)
	}
	return nil, fmt.Errorf("current loader does not support watching")
}

// Loader returns the underlying NetworkLoader used by the engine.
func (e *Engine) Loader() ports.NetworkLoader {
	return e.loader
}
