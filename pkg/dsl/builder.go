package dsl

import (
	"fmt"

	"github.com/aretw0/pulsenet/internal/compiler"
	"github.com/aretw0/pulsenet/pkg/adapters/memory"
	"github.com/aretw0/pulsenet/pkg/domain"
)

// Builder manages the network construction.
// Modules keep the order in which they were first added.
type Builder struct {
	name  string
	order []string
	nodes map[string]*NodeBuilder
}

// New creates a new network builder.
func New(name string) *Builder {
	return &Builder{
		name:  name,
		nodes: make(map[string]*NodeBuilder),
	}
}

// Broadcaster returns the builder of the broadcaster module.
func (b *Builder) Broadcaster() *NodeBuilder {
	return b.add(domain.BroadcasterName, domain.Broadcaster)
}

// FlipFlop adds (or returns) a flip-flop module.
func (b *Builder) FlipFlop(name string) *NodeBuilder {
	return b.add(name, domain.FlipFlop)
}

// Conjunction adds (or returns) a conjunction module.
func (b *Builder) Conjunction(name string) *NodeBuilder {
	return b.add(name, domain.Conjunction)
}

// add creates a new module in the network.
// If the module already exists, it returns the existing builder; a kind mismatch is
// remembered and reported by Build.
func (b *Builder) add(name string, kind domain.Kind) *NodeBuilder {
	if nb, ok := b.nodes[name]; ok {
		if nb.decl.Kind != kind && nb.err == nil {
			nb.err = fmt.Errorf("module %q added as %s and %s", name, nb.decl.Kind, kind)
		}
		return nb
	}
	nb := &NodeBuilder{
		decl:    domain.Declaration{Name: name, Kind: kind},
		builder: b,
	}
	b.nodes[name] = nb
	b.order = append(b.order, name)
	return nb
}

// Declarations returns the modules in insertion order.
func (b *Builder) Declarations() ([]domain.Declaration, error) {
	decls := make([]domain.Declaration, 0, len(b.order))
	for _, name := range b.order {
		nb := b.nodes[name]
		if nb.err != nil {
			return nil, &domain.ConfigError{Reason: nb.err.Error()}
		}
		decls = append(decls, nb.decl)
	}
	return decls, nil
}

// Build compiles the network into a MemoryLoader.
func (b *Builder) Build() (*memory.Loader, error) {
	decls, err := b.Declarations()
	if err != nil {
		return nil, err
	}
	loader, err := memory.NewFromDeclarations(b.name, decls...)
	if err != nil {
		return nil, fmt.Errorf("failed to build memory loader: %w", err)
	}
	return loader, nil
}

// Network compiles the modules directly into a network.
func (b *Builder) Network() (*domain.Network, error) {
	decls, err := b.Declarations()
	if err != nil {
		return nil, err
	}
	return compiler.Compile(b.name, decls)
}
