package runtime_test

import (
	"context"
	"testing"

	"github.com/aretw0/pulsenet/internal/compiler"
	"github.com/aretw0/pulsenet/internal/runtime"
	"github.com/aretw0/pulsenet/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	counterNet = `broadcaster -> a, b, c
%a -> b
%b -> c
%c -> inv
&inv -> a`

	outputNet = `broadcaster -> a
%a -> inv, con
&inv -> b
%b -> con
&con -> output`

	// Two independent counters (periods 2 and 4) feed hub, which feeds rx.
	hubNet = `broadcaster -> a
%a -> ia, b
&ia -> hub
%b -> ib
&ib -> hub
&hub -> rx`
)

func newEngine(t *testing.T, text string, opts ...runtime.EngineOption) *runtime.Engine {
	t.Helper()
	net, err := compiler.Build("test", text)
	require.NoError(t, err)
	return runtime.NewEngine(net, opts...)
}

func TestEngine_RunFixed(t *testing.T) {
	tests := []struct {
		name    string
		text    string
		presses int
		want    domain.Counts
		product int
	}{
		{"counter once", counterNet, 1, domain.Counts{Low: 8, High: 4}, 32},
		{"counter 1000", counterNet, 1000, domain.Counts{Low: 8000, High: 4000}, 32_000_000},
		{"output 1000", outputNet, 1000, domain.Counts{Low: 4250, High: 2750}, 11_687_500},
		{"zero presses", outputNet, 0, domain.Counts{}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for _, detect := range []bool{true, false} {
				eng := newEngine(t, tt.text, runtime.WithCycleDetection(detect))
				got, err := eng.RunFixed(context.Background(), tt.presses)
				require.NoError(t, err)
				assert.Equal(t, tt.want, got, "cycle detection %v", detect)
				assert.Equal(t, tt.product, got.Product())
				assert.Equal(t, tt.presses, eng.Presses())
			}
		})
	}
}

func TestEngine_RunFixed_CycleDetectionMatchesBruteForce(t *testing.T) {
	for _, text := range []string{counterNet, outputNet, hubNet} {
		for _, presses := range []int{3, 7, 1000, 4321} {
			fast := newEngine(t, text)
			slow := newEngine(t, text, runtime.WithCycleDetection(false))

			a, err := fast.RunFixed(context.Background(), presses)
			require.NoError(t, err)
			b, err := slow.RunFixed(context.Background(), presses)
			require.NoError(t, err)

			assert.Equal(t, b, a, "presses=%d", presses)
			assert.Equal(t, slow.Network().Fingerprint(), fast.Network().Fingerprint(), "final state after %d presses", presses)
			assert.Equal(t, slow.Presses(), fast.Presses())
		}
	}
}

func TestEngine_RunFixed_Deterministic(t *testing.T) {
	eng := newEngine(t, outputNet)
	first, err := eng.RunFixed(context.Background(), 500)
	require.NoError(t, err)

	eng.Reset()
	second, err := eng.RunFixed(context.Background(), 500)
	require.NoError(t, err)
	assert.Equal(t, first, second)

	// Building the same description twice yields equivalent networks.
	other := newEngine(t, outputNet)
	third, err := other.RunFixed(context.Background(), 500)
	require.NoError(t, err)
	assert.Equal(t, first, third)
}

func TestEngine_RunFixed_Negative(t *testing.T) {
	eng := newEngine(t, outputNet)
	_, err := eng.RunFixed(context.Background(), -1)
	assert.Error(t, err)
}

func TestEngine_Press_TraceOrder(t *testing.T) {
	eng := newEngine(t, outputNet)
	ctx := context.Background()

	presses := [][]string{
		{
			"button -low-> broadcaster",
			"broadcaster -low-> a",
			"a -high-> inv",
			"a -high-> con",
			"inv -low-> b",
			"con -high-> output",
			"b -high-> con",
			"con -low-> output",
		},
		{
			"button -low-> broadcaster",
			"broadcaster -low-> a",
			"a -low-> inv",
			"a -low-> con",
			"inv -high-> b",
			"con -high-> output",
		},
		{
			"button -low-> broadcaster",
			"broadcaster -low-> a",
			"a -high-> inv",
			"a -high-> con",
			"inv -low-> b",
			"con -low-> output",
			"b -low-> con",
			"con -high-> output",
		},
		{
			"button -low-> broadcaster",
			"broadcaster -low-> a",
			"a -low-> inv",
			"a -low-> con",
			"inv -high-> b",
			"con -high-> output",
		},
	}

	initial := eng.Network().Fingerprint()
	for i, want := range presses {
		report, err := eng.Press(ctx)
		require.NoError(t, err)
		assert.Equal(t, i+1, report.Press)
		assert.Equal(t, want, traceLines(report.Pulses), "press %d", i+1)
	}
	assert.Equal(t, initial, eng.Network().Fingerprint(), "four presses restore the initial state")
}

func TestEngine_Press_BreadthFirst(t *testing.T) {
	eng := newEngine(t, `broadcaster -> a, b
%a -> con
%b -> con
&con -> out`)

	report, err := eng.Press(context.Background())
	require.NoError(t, err)

	// b's pulse from the broadcaster is handled before anything a sends,
	// and con sees a's update before b's.
	assert.Equal(t, []string{
		"button -low-> broadcaster",
		"broadcaster -low-> a",
		"broadcaster -low-> b",
		"a -high-> con",
		"b -high-> con",
		"con -high-> out",
		"con -low-> out",
	}, traceLines(report.Pulses))
}

func TestEngine_Press_BroadcasterOnly(t *testing.T) {
	eng := newEngine(t, `broadcaster -> x, y, z`)

	report, err := eng.Press(context.Background())
	require.NoError(t, err)

	fromBroadcaster := 0
	for _, p := range report.Pulses {
		if p.From == domain.BroadcasterName {
			fromBroadcaster++
			assert.Equal(t, domain.Low, p.Level)
		}
	}
	assert.Equal(t, 3, fromBroadcaster)
	assert.Equal(t, domain.Counts{Low: 4}, report.Counts, "button pulse plus one per destination")
	assert.Equal(t, 1, eng.Network().Node("y").LowReceived)
}

func TestEngine_Press_PulseBound(t *testing.T) {
	eng := newEngine(t, `broadcaster -> c
&c -> c`, runtime.WithMaxPulsesPerPress(100))

	_, err := eng.Press(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrSimulationBoundExceeded)

	var bound *domain.BoundExceededError
	require.ErrorAs(t, err, &bound)
	assert.Equal(t, domain.BoundPulses, bound.Bound)
	assert.Equal(t, 100, bound.Limit)

	// The aborted press is rolled back to the initial state.
	assert.Equal(t, 0, eng.Presses())
	mem, ok := eng.Network().Node("c").Memory("c")
	assert.True(t, ok)
	assert.Equal(t, domain.Low, mem)
}

func TestEngine_Press_Cancelled(t *testing.T) {
	eng := newEngine(t, outputNet)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := eng.RunFixed(ctx, 10)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestEngine_Hooks(t *testing.T) {
	var starts, ends, pulses int
	var total domain.Counts
	hooks := domain.LifecycleHooks{
		OnPressStart: func(ctx context.Context, e *domain.PressEvent) { starts++ },
		OnPulse: func(ctx context.Context, e *domain.PulseEvent) {
			pulses++
			if e.Pulse.To == "output" {
				assert.Equal(t, domain.Sink, e.Kind)
			}
		},
		OnPressEnd: func(ctx context.Context, e *domain.PressEvent) {
			ends++
			total = total.Add(e.Counts)
		},
	}

	eng := newEngine(t, outputNet, runtime.WithLifecycleHooks(hooks), runtime.WithCycleDetection(false))
	got, err := eng.RunFixed(context.Background(), 4)
	require.NoError(t, err)

	assert.Equal(t, 4, starts)
	assert.Equal(t, 4, ends)
	assert.Equal(t, got, total)
	assert.Equal(t, got.Total(), pulses)
}

func traceLines(pulses []domain.Pulse) []string {
	out := make([]string, len(pulses))
	for i, p := range pulses {
		out[i] = p.String()
	}
	return out
}
