package cli

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/aretw0/pulsenet"
	"github.com/aretw0/pulsenet/internal/config"
	"github.com/aretw0/pulsenet/internal/metrics"
	"github.com/aretw0/pulsenet/internal/presentation/tui"
)

// Options contains the configuration shared by every command.
type Options struct {
	Path    string
	Profile *config.Profile
	Debug   bool
	Out     io.Writer
}

func (o Options) out() io.Writer {
	if o.Out == nil {
		return os.Stdout
	}
	return o.Out
}

// plain reports whether output should skip colours and Markdown rendering.
func (o Options) plain() bool {
	if o.Profile != nil && o.Profile.Plain {
		return true
	}
	if f, ok := o.out().(*os.File); ok {
		return !tui.IsTerminal(f)
	}
	return true
}

func (o Options) profile() *config.Profile {
	if o.Profile != nil {
		return o.Profile
	}
	p, _ := config.Decode(config.Defaults())
	return p
}

// createEngine initializes an engine with standard CLI conventions.
// The collector is nil unless a metrics file was requested.
func createEngine(ctx context.Context, opts Options, logger *slog.Logger) (*pulsenet.Engine, *metrics.Collector, error) {
	p := opts.profile()

	engineOpts := []pulsenet.Option{
		pulsenet.WithLogger(logger),
		pulsenet.WithMaxPresses(p.MaxPresses),
		pulsenet.WithMaxPulsesPerPress(p.MaxPulses),
		pulsenet.WithMaxTrackedStates(p.MaxStates),
		pulsenet.WithCycleDetection(p.CycleDetection),
	}
	if opts.Debug {
		engineOpts = append(engineOpts, pulsenet.WithLifecycleHooks(createDebugHooks(logger)))
	}

	var collector *metrics.Collector
	if p.Metrics != "" {
		collector = metrics.NewCollector()
		engineOpts = append(engineOpts, pulsenet.WithNetworkHooks(collector.Hooks))
	}

	engine, err := pulsenet.NewContext(ctx, opts.Path, engineOpts...)
	if err != nil {
		return nil, nil, fmt.Errorf("error initializing engine: %w", err)
	}
	return engine, collector, nil
}

// writeMetrics dumps the collector to the profile's metrics file.
func writeMetrics(c *metrics.Collector, path string) error {
	if c == nil || path == "" {
		return nil
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create metrics file: %w", err)
	}
	if err := c.WriteText(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// render writes a report, rendered with glamour unless output is plain.
func render(opts Options, report *tui.Report) error {
	out, err := tui.NewRenderer(opts.plain())(report.Markdown())
	if err != nil {
		return err
	}
	_, err = fmt.Fprint(opts.out(), out)
	return err
}
