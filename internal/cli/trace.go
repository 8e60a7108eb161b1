package cli

import (
	"context"
	"fmt"

	"github.com/aretw0/pulsenet/internal/presentation/tui"
	"github.com/aretw0/pulsenet/pkg/domain"
)

// Trace handles the 'trace' command: print every pulse of the first presses presses.
// With state set, the node state changes of each press follow its pulses.
func Trace(ctx context.Context, opts Options, presses int, state bool) error {
	if presses < 0 {
		return fmt.Errorf("press count must not be negative, got %d", presses)
	}
	p := opts.profile()
	logger := createLogger(opts.Debug, p.LogLevel)

	engine, collector, err := createEngine(ctx, opts, logger)
	if err != nil {
		return err
	}

	w := tui.NewTraceWriter(opts.out(), opts.plain())
	net := engine.Network()
	for i := 0; i < presses; i++ {
		var before []domain.NodeState
		if state {
			before = net.Snapshot()
		}
		report, err := engine.Press(ctx)
		if err != nil {
			return handleExecutionError(err)
		}
		w.Press(report)
		if state {
			after := net.Snapshot()
			if domain.Equal(before, after) {
				w.Changes(nil)
			} else {
				w.Changes(domain.Diff(before, after))
			}
		}
	}

	return writeMetrics(collector, p.Metrics)
}
