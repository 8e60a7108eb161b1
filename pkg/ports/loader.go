package ports

import (
	"context"

	"github.com/aretw0/pulsenet/pkg/domain"
)

// NetworkLoader defines where the engine gets a network description from.
// This allows the source (file, memory, DSL) to be decoupled from the simulator.
type NetworkLoader interface {
	// Load returns the module declarations, in source order.
	// Malformed descriptions are reported as *domain.ConfigError.
	Load(ctx context.Context) ([]domain.Declaration, error)

	// Name is a short label for logs and reports (e.g. the file name).
	Name() string
}

// Watchable defines an interface for loaders that can notify about source changes.
// This is used by the CLI watch mode.
type Watchable interface {
	// Watch returns a channel that receives the name of the changed source.
	// The channel is closed when ctx is done.
	Watch(ctx context.Context) (<-chan string, error)
}
