package tests

import (
	"context"
	"testing"

	"github.com/aretw0/pulsenet/pkg/ports"
)

// NetworkLoaderContractTest is a reusable test suite that verifies if an adapter complies with ports.NetworkLoader.
// want lists the declared module names in source order.
func NetworkLoaderContractTest(t *testing.T, loader ports.NetworkLoader, want []string) {
	t.Helper()

	t.Run("Load_Order", func(t *testing.T) {
		decls, err := loader.Load(context.Background())
		if err != nil {
			t.Fatalf("unexpected error loading network: %v", err)
		}
		if len(decls) != len(want) {
			t.Fatalf("expected %d declarations, got %d", len(want), len(decls))
		}
		for i, d := range decls {
			if d.Name != want[i] {
				t.Errorf("declaration %d: got %q, want %q", i, d.Name, want[i])
			}
			if len(d.Destinations) == 0 {
				t.Errorf("declaration %q has no destinations", d.Name)
			}
		}
	})

	t.Run("Load_Repeatable", func(t *testing.T) {
		a, err := loader.Load(context.Background())
		if err != nil {
			t.Fatalf("first load: %v", err)
		}
		b, err := loader.Load(context.Background())
		if err != nil {
			t.Fatalf("second load: %v", err)
		}
		if len(a) != len(b) {
			t.Fatalf("loads differ: %d vs %d declarations", len(a), len(b))
		}
		// Callers may mutate the result; the loader must hand out fresh slices.
		if len(a) > 0 {
			a[0].Destinations[0] = "mutated"
			c, _ := loader.Load(context.Background())
			if c[0].Destinations[0] == "mutated" {
				t.Error("loader shares destination slices between loads")
			}
		}
	})

	t.Run("Name", func(t *testing.T) {
		if loader.Name() == "" {
			t.Error("loader name is empty")
		}
	})
}
