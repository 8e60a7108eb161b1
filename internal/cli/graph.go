package cli

import (
	"context"
	"fmt"

	"github.com/aretw0/pulsenet/internal/presentation/graph"
)

// Graph handles the 'graph' command: print a Mermaid diagram of the network.
// With presses > 0 the diagram highlights node state after that many presses.
func Graph(ctx context.Context, opts Options, presses int) error {
	p := opts.profile()
	logger := createLogger(opts.Debug, p.LogLevel)

	engine, _, err := createEngine(ctx, opts, logger)
	if err != nil {
		return err
	}

	var overlay *graph.Overlay
	if presses > 0 {
		if _, err := engine.RunFixed(ctx, presses); err != nil {
			return handleExecutionError(err)
		}
		overlay = graph.OverlayFrom(engine.Network())
	}

	_, err = fmt.Fprint(opts.out(), graph.GenerateMermaid(engine.Network(), overlay))
	return err
}
