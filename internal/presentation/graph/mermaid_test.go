package graph_test

import (
	"context"
	"strings"
	"testing"

	"github.com/aretw0/pulsenet/internal/compiler"
	"github.com/aretw0/pulsenet/internal/presentation/graph"
	"github.com/aretw0/pulsenet/internal/runtime"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const example = `broadcaster -> a
%a -> inv, con
&inv -> b
%b -> con
&con -> end`

func TestGenerateMermaid(t *testing.T) {
	net, err := compiler.Build("example", example)
	require.NoError(t, err)

	got := graph.GenerateMermaid(net, nil)

	for _, want := range []string{
		"graph LR\n",
		`button(["button"])`,
		"button -- low --> broadcaster",
		`broadcaster(("broadcaster"))`,
		`a["%a"]`,
		`inv{{"&inv"}}`,
		`n_end[/"end"/]`,
		"a --> inv",
		"a --> con",
		"con --> n_end",
	} {
		assert.Contains(t, got, want)
	}
	assert.NotContains(t, got, "classDef")
}

func TestGenerateMermaid_Overlay(t *testing.T) {
	net, err := compiler.Build("example", example)
	require.NoError(t, err)

	// After one press a and b are on; inv and con remember only high inputs.
	eng := runtime.NewEngine(net)
	_, err = eng.Press(context.Background())
	require.NoError(t, err)

	overlay := graph.OverlayFrom(net)
	assert.ElementsMatch(t, []string{"a", "b"}, overlay.On)
	assert.ElementsMatch(t, []string{"inv", "con"}, overlay.AllHigh)

	got := graph.GenerateMermaid(net, overlay)
	assert.Contains(t, got, "class a on;")
	assert.Contains(t, got, "class b on;")
	assert.Contains(t, got, "class con high;")
	assert.Contains(t, got, "class inv high;")
	assert.Equal(t, 1, strings.Count(got, "classDef on"))
}
