/*
Package dsl provides a Go DSL (Domain Specific Language) for programmatically constructing pulse networks.

It allows developers to define networks using a type-safe, fluent builder pattern
instead of relying on text or YAML files. This is particularly useful for generated
networks, unit testing, and leveraging IDE autocompletion/type-checking.

Example usage:

	package main

	import (
		"github.com/aretw0/pulsenet"
		"github.com/aretw0/pulsenet/pkg/dsl"
	)

	func main() {
		b := dsl.New("counter")

		b.Broadcaster().To("a", "b", "c")
		b.FlipFlop("a").To("b")
		b.FlipFlop("b").To("c")
		b.FlipFlop("c").To("inv")
		b.Conjunction("inv").To("a")

		// The resulting loader can be passed to pulsenet.New
		loader, _ := b.Build()
		eng, _ := pulsenet.New("", pulsenet.WithLoader(loader))
		_ = eng
	}
*/
package dsl
