package metrics

import (
	"bytes"
	"context"
	"testing"

	"github.com/aretw0/pulsenet/internal/compiler"
	"github.com/aretw0/pulsenet/internal/runtime"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCollector_Hooks(t *testing.T) {
	net, err := compiler.Build("metrics", `broadcaster -> a, b, c
%a -> b
%b -> c
%c -> inv
&inv -> a`)
	require.NoError(t, err)

	c := NewCollector()
	eng := runtime.NewEngine(net,
		runtime.WithLifecycleHooks(c.Hooks(net)),
		runtime.WithCycleDetection(false),
	)
	counts, err := eng.RunFixed(context.Background(), 10)
	require.NoError(t, err)

	assert.Equal(t, float64(10), testutil.ToFloat64(c.presses))
	assert.Equal(t, float64(0), testutil.ToFloat64(c.flipFlopsOn))
	assert.Equal(t, float64(10), testutil.ToFloat64(c.pulses.WithLabelValues("low", "broadcaster")))

	var low, high float64
	for _, kind := range []string{"broadcaster", "flip-flop", "conjunction", "sink"} {
		low += testutil.ToFloat64(c.pulses.WithLabelValues("low", kind))
		high += testutil.ToFloat64(c.pulses.WithLabelValues("high", kind))
	}
	assert.Equal(t, float64(counts.Low), low)
	assert.Equal(t, float64(counts.High), high)
}

func TestCollector_WriteText(t *testing.T) {
	c := NewCollector()
	c.presses.Add(3)

	var buf bytes.Buffer
	require.NoError(t, c.WriteText(&buf))
	assert.Contains(t, buf.String(), "pulsenet_presses_total 3")
	assert.Contains(t, buf.String(), "# TYPE pulsenet_pulses_per_press histogram")
}
