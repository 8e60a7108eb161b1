package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func link(t *testing.T, nodes ...*Node) *Network {
	t.Helper()
	net, err := NewNetwork("test", nodes...)
	require.NoError(t, err)
	return net
}

func TestReceive_Broadcaster(t *testing.T) {
	b := NewNode(BroadcasterName, Broadcaster, "a")
	for _, level := range []Level{Low, High} {
		out, ok := b.Receive(ButtonName, level)
		assert.True(t, ok)
		assert.Equal(t, level, out)
	}
}

func TestReceive_FlipFlop(t *testing.T) {
	ff := NewNode("a", FlipFlop, "b")

	_, ok := ff.Receive("x", High)
	assert.False(t, ok, "high pulses are ignored")
	assert.False(t, ff.On)

	out, ok := ff.Receive("x", Low)
	assert.True(t, ok)
	assert.Equal(t, High, out)
	assert.True(t, ff.On)

	_, ok = ff.Receive("x", High)
	assert.False(t, ok)
	assert.True(t, ff.On, "high pulses do not change state")

	out, ok = ff.Receive("x", Low)
	assert.True(t, ok)
	assert.Equal(t, Low, out)
	assert.False(t, ff.On, "two lows restore the original state")
}

func TestReceive_ConjunctionInverter(t *testing.T) {
	inv := NewNode("inv", Conjunction, "out")
	link(t, NewNode(BroadcasterName, Broadcaster, "inv"), inv, NewNode("out", Sink))

	out, ok := inv.Receive(BroadcasterName, Low)
	assert.True(t, ok)
	assert.Equal(t, High, out)

	out, ok = inv.Receive(BroadcasterName, High)
	assert.True(t, ok)
	assert.Equal(t, Low, out)
}

func TestReceive_ConjunctionAllHigh(t *testing.T) {
	con := NewNode("con", Conjunction, "out")
	link(t,
		NewNode(BroadcasterName, Broadcaster, "a", "b"),
		NewNode("a", FlipFlop, "con"),
		NewNode("b", FlipFlop, "con"),
		con,
		NewNode("out", Sink),
	)
	assert.Equal(t, []string{"a", "b"}, con.Inputs)

	steps := []struct {
		from  string
		level Level
		want  Level
	}{
		{"a", High, High},
		{"b", High, Low},
		{"a", Low, High},
		{"a", High, Low},
		{"b", Low, High},
	}
	for _, s := range steps {
		out, ok := con.Receive(s.from, s.level)
		assert.True(t, ok, "conjunctions always emit")
		assert.Equal(t, s.want, out, "after %s=%s", s.from, s.level)
	}
}

func TestReceive_ConjunctionIgnoresUnknownSender(t *testing.T) {
	con := NewNode("con", Conjunction, "out")
	link(t, NewNode(BroadcasterName, Broadcaster, "con"), con, NewNode("out", Sink))

	con.Receive("ghost", High)
	_, known := con.Memory("ghost")
	assert.False(t, known, "memory set is fixed at construction")
}

func TestReceive_Sink(t *testing.T) {
	s := NewNode("rx", Sink)
	_, ok := s.Receive("x", Low)
	assert.False(t, ok)
	s.Receive("x", High)
	s.Receive("x", Low)

	assert.Equal(t, 2, s.LowReceived)
	assert.Equal(t, 1, s.HighReceived)
	assert.Equal(t, Low, s.LastLevel)
}

func TestNetwork_ResetAndFingerprint(t *testing.T) {
	ff := NewNode("a", FlipFlop, "con")
	con := NewNode("con", Conjunction, "rx")
	net := link(t, NewNode(BroadcasterName, Broadcaster, "a"), ff, con, NewNode("rx", Sink))
	initial := net.Fingerprint()

	ff.Receive(BroadcasterName, Low)
	assert.NotEqual(t, initial, net.Fingerprint())
	con.Receive("a", High)
	net.Node("rx").Receive("con", Low)

	net.Reset()
	assert.Equal(t, initial, net.Fingerprint())
	assert.False(t, ff.On)
	mem, _ := con.Memory("a")
	assert.Equal(t, Low, mem)
	assert.Zero(t, net.Node("rx").LowReceived)
}

func TestNewNetwork_Errors(t *testing.T) {
	_, err := NewNetwork("x", NewNode("a", FlipFlop, "b"))
	assert.ErrorIs(t, err, ErrConfig)

	_, err = NewNetwork("x", NewNode(BroadcasterName, Broadcaster, "missing"))
	assert.ErrorIs(t, err, ErrConfig)

	_, err = NewNetwork("x",
		NewNode(BroadcasterName, Broadcaster, "a"),
		NewNode("a", Sink),
		NewNode("a", Sink),
	)
	assert.ErrorIs(t, err, ErrConfig)
}
