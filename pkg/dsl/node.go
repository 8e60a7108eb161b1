package dsl

import "github.com/aretw0/pulsenet/pkg/domain"

// NodeBuilder provides a fluent API for configuring a module.
type NodeBuilder struct {
	decl    domain.Declaration
	builder *Builder
	err     error
}

// To appends destinations, in delivery order.
func (n *NodeBuilder) To(names ...string) *NodeBuilder {
	n.decl.Destinations = append(n.decl.Destinations, names...)
	return n
}

// Then returns the network builder to continue the chain with another module.
func (n *NodeBuilder) Then() *Builder {
	return n.builder
}

// Name returns the module name.
func (n *NodeBuilder) Name() string {
	return n.decl.Name
}
