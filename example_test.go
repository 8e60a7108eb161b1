package pulsenet_test

import (
	"context"
	"fmt"
	"log"

	"github.com/aretw0/pulsenet"
	"github.com/aretw0/pulsenet/pkg/adapters/memory"
)

// ExampleNew_memory demonstrates how to use the Engine with an in-memory network description.
// This is useful for testing, embedded scenarios, or when you don't want to rely on the file system.
func ExampleNew_memory() {
	loader, err := memory.NewLoader("counter", `broadcaster -> a, b, c
%a -> b
%b -> c
%c -> inv
&inv -> a`)
	if err != nil {
		log.Fatal(err)
	}

	eng, err := pulsenet.New("", pulsenet.WithLoader(loader))
	if err != nil {
		log.Fatal(err)
	}

	counts, err := eng.RunFixed(context.Background(), 1000)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println(counts.Low, counts.High, counts.Product())
	// Output: 8000 4000 32000000
}

// ExampleEngine_Press prints the pulses of a single press in delivery order.
func ExampleEngine_Press() {
	loader, _ := memory.NewLoader("inline", `broadcaster -> a
%a -> inv, con
&inv -> b
%b -> con
&con -> output`)
	eng, _ := pulsenet.New("", pulsenet.WithLoader(loader))

	report, _ := eng.Press(context.Background())
	for _, p := range report.Pulses {
		fmt.Println(p)
	}
	// Output:
	// button -low-> broadcaster
	// broadcaster -low-> a
	// a -high-> inv
	// a -high-> con
	// inv -low-> b
	// con -high-> output
	// b -high-> con
	// con -low-> output
}
