package cli

import (
	"context"
	"fmt"

	"github.com/aretw0/pulsenet/internal/presentation/tui"
	"github.com/aretw0/pulsenet/internal/validator"
)

// Validate handles the 'validate' command: build the network and report its
// shape and structural findings. Findings are warnings; only build errors fail.
func Validate(ctx context.Context, opts Options) error {
	p := opts.profile()
	logger := createLogger(opts.Debug, p.LogLevel)

	engine, _, err := createEngine(ctx, opts, logger)
	if err != nil {
		return err
	}
	net := engine.Network()

	w := opts.out()
	fmt.Fprintf(w, "Network %s is valid: %s.\n", net.Name, tui.KindSummary(net))
	for _, f := range validator.ValidateNetwork(net) {
		fmt.Fprintf(w, "warning: %s\n", f)
	}
	return nil
}
