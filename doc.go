/*
Package pulsenet is a deterministic discrete-event simulator for pulse-propagation networks.

A network is a graph of typed modules (broadcaster, flip-flop, conjunction) exchanging
low and high pulses over directed wires. Pressing the button sends one low pulse to the
broadcaster; every pulse it causes is delivered in strict send order (breadth-first)
until the network is quiescent.

# Concept

The library follows a hexagonal layout: the model (pkg/domain) is pure, network descriptions
come through a NetworkLoader port (file or memory adapters, or the DSL), and the runtime
drives presses and reports results. Observability plugs in through LifecycleHooks.

# Key Features

  - Deterministic Execution: the same description and press count always yield the same counts.
  - Strict Ordering: FIFO delivery, no recursion, no visited-set shortcuts.
  - Bounded Runs: press and pulse caps turn runaway networks into typed errors.
  - Cycle Detection: repeated global state shortens long fixed runs without changing the result.

# Usage

	package main

	import (
		"context"
		"fmt"
		"log"

		"github.com/aretw0/pulsenet"
	)

	func main() {
		eng, err := pulsenet.New("modules.txt")
		if err != nil {
			log.Fatal(err)
		}

		counts, err := eng.RunFixed(context.Background(), 1000)
		if err != nil {
			log.Fatal(err)
		}
		fmt.Println(counts.Low, counts.High, counts.Product())

		press, err := eng.RunUntil(context.Background(), "rx", pulsenet.ReceivesLow())
		if err != nil {
			log.Fatal(err)
		}
		fmt.Println("rx gets a low pulse on press", press)
	}
*/
package pulsenet
