package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/aretw0/pulsenet/internal/presentation/tui"
)

// RunFixed handles the 'run' command: press the button a fixed number of times
// and print the pulse counts.
func RunFixed(ctx context.Context, opts Options) error {
	p := opts.profile()
	logger := createLogger(opts.Debug, p.LogLevel)

	engine, collector, err := createEngine(ctx, opts, logger)
	if err != nil {
		return err
	}

	start := time.Now()
	counts, err := engine.RunFixed(ctx, p.Presses)
	if err != nil {
		return handleExecutionError(err)
	}
	elapsed := time.Since(start)
	logger.Info("Run finished", "presses", p.Presses, "low", counts.Low, "high", counts.High, "took", elapsed)

	if err := writeMetrics(collector, p.Metrics); err != nil {
		return err
	}

	if opts.plain() {
		_, err := fmt.Fprintf(opts.out(), "low %d\nhigh %d\nproduct %d\n", counts.Low, counts.High, counts.Product())
		return err
	}
	report := tui.NewReport(engine.Network(), "Fixed run").
		Add("Presses", p.Presses).
		Add("Low pulses", counts.Low).
		Add("High pulses", counts.High).
		Add("Product", counts.Product())
	report.Duration = elapsed
	return render(opts, report)
}
