package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/aretw0/pulsenet"
	"github.com/aretw0/pulsenet/internal/presentation/tui"
	"github.com/aretw0/pulsenet/pkg/domain"
)

// RunUntil handles the 'until' command: find the first press on which the
// profile's target receives a pulse of the profile's level. With period set,
// the press is predicted from the counters feeding the target instead.
func RunUntil(ctx context.Context, opts Options, period bool) error {
	p := opts.profile()
	logger := createLogger(opts.Debug, p.LogLevel)

	level, err := domain.ParseLevel(p.Level)
	if err != nil {
		return err
	}
	if period && level != domain.Low {
		return fmt.Errorf("--period only predicts low pulses")
	}

	engine, collector, err := createEngine(ctx, opts, logger)
	if err != nil {
		return err
	}

	start := time.Now()
	var press int
	method := "simulation"
	if period {
		method = "period estimate"
		press, err = engine.EstimatePeriod(ctx, p.Target)
	} else {
		press, err = engine.RunUntil(ctx, p.Target, pulsenet.Receives(level))
	}
	if err != nil {
		return handleExecutionError(err)
	}
	elapsed := time.Since(start)
	logger.Info("Condition met", "target", p.Target, "level", level, "press", press, "method", method)

	if err := writeMetrics(collector, p.Metrics); err != nil {
		return err
	}

	if opts.plain() {
		_, err := fmt.Fprintf(opts.out(), "%d\n", press)
		return err
	}
	report := tui.NewReport(engine.Network(), "Search").
		Add("Target", p.Target).
		Add("Level", level).
		Add("Method", method).
		Add("First press", press)
	report.Duration = elapsed
	return render(opts, report)
}
