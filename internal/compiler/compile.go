package compiler

import (
	"fmt"

	"github.com/aretw0/pulsenet/pkg/domain"
)

// Build parses text and compiles it into a network.
func Build(name, text string) (*domain.Network, error) {
	decls, err := NewParser().Parse(text)
	if err != nil {
		return nil, err
	}
	return Compile(name, decls)
}

// Compile validates declarations and turns them into a closed network.
// Destinations that are never declared become sinks, appended in first-reference order.
func Compile(name string, decls []domain.Declaration) (*domain.Network, error) {
	declared := make(map[string]domain.Declaration, len(decls))
	nodes := make([]*domain.Node, 0, len(decls))

	for _, d := range decls {
		if err := checkDeclaration(d); err != nil {
			return nil, err
		}
		if prev, dup := declared[d.Name]; dup {
			reason := fmt.Sprintf("module %q already declared on line %d", d.Name, prev.Line)
			if prev.Kind != d.Kind {
				reason = fmt.Sprintf("module %q declared as %s and %s", d.Name, prev.Kind, d.Kind)
			}
			return nil, &domain.ConfigError{Line: d.Line, Reason: reason}
		}
		declared[d.Name] = d

		dests := make([]string, len(d.Destinations))
		copy(dests, d.Destinations)
		nodes = append(nodes, domain.NewNode(d.Name, d.Kind, dests...))
	}

	if _, ok := declared[domain.BroadcasterName]; !ok {
		return nil, &domain.ConfigError{Reason: "missing broadcaster"}
	}

	sinks := make(map[string]bool)
	for _, d := range decls {
		for _, dest := range d.Destinations {
			if dest == domain.ButtonName {
				return nil, &domain.ConfigError{Line: d.Line, Reason: fmt.Sprintf("%q is reserved", domain.ButtonName)}
			}
			if _, ok := declared[dest]; ok || sinks[dest] {
				continue
			}
			sinks[dest] = true
			nodes = append(nodes, domain.NewNode(dest, domain.Sink))
		}
	}

	return domain.NewNetwork(name, nodes...)
}

func checkDeclaration(d domain.Declaration) error {
	fail := func(format string, args ...any) error {
		return &domain.ConfigError{Line: d.Line, Reason: fmt.Sprintf(format, args...)}
	}
	if err := checkName(d.Name); err != nil {
		return fail("%v", err)
	}
	if d.Name == domain.ButtonName {
		return fail("%q is reserved", domain.ButtonName)
	}
	switch d.Kind {
	case domain.Broadcaster:
		if d.Name != domain.BroadcasterName {
			return fail("module %q has no type prefix; only %q may be unprefixed", d.Name, domain.BroadcasterName)
		}
	case domain.FlipFlop, domain.Conjunction:
		if d.Name == domain.BroadcasterName {
			return fail("%q must be declared without a prefix", domain.BroadcasterName)
		}
	default:
		return fail("module %q cannot be declared as %s", d.Name, d.Kind)
	}
	if len(d.Destinations) == 0 {
		return fail("module %q has no destinations", d.Name)
	}
	for _, dest := range d.Destinations {
		if err := checkName(dest); err != nil {
			return fail("destination of %q: %v", d.Name, err)
		}
	}
	return nil
}
