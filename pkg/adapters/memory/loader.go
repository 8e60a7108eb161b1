package memory

import (
	"context"
	"fmt"

	"github.com/aretw0/pulsenet/internal/compiler"
	"github.com/aretw0/pulsenet/pkg/domain"
)

// Loader implements ports.NetworkLoader over an in-memory description.
type Loader struct {
	name  string
	decls []domain.Declaration
}

// NewLoader parses text eagerly so malformed input fails at construction.
func NewLoader(name, text string) (*Loader, error) {
	decls, err := compiler.NewParser().Parse(text)
	if err != nil {
		return nil, err
	}
	return &Loader{name: name, decls: decls}, nil
}

// NewFromDeclarations creates a Loader from already-structured modules.
// This improves DX for tests and the DSL.
func NewFromDeclarations(name string, decls ...domain.Declaration) (*Loader, error) {
	for i, d := range decls {
		if d.Name == "" {
			return nil, fmt.Errorf("declaration %d missing name", i)
		}
	}
	return &Loader{name: name, decls: copyDecls(decls)}, nil
}

// Load returns a copy of the declarations.
func (l *Loader) Load(ctx context.Context) ([]domain.Declaration, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return copyDecls(l.decls), nil
}

// Name returns the label given at construction.
func (l *Loader) Name() string {
	return l.name
}

func copyDecls(in []domain.Declaration) []domain.Declaration {
	out := make([]domain.Declaration, len(in))
	for i, d := range in {
		d.Destinations = append([]string(nil), d.Destinations...)
		out[i] = d
	}
	return out
}
