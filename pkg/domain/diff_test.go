package domain

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDiff(t *testing.T) {
	ff := NewNode("a", FlipFlop, "con", "rx")
	con := NewNode("con", Conjunction, "rx")
	net, err := NewNetwork("diff",
		NewNode(BroadcasterName, Broadcaster, "a"),
		ff,
		con,
		NewNode("rx", Sink),
	)
	require.NoError(t, err)

	t.Run("initial state has no changes", func(t *testing.T) {
		assert.Empty(t, Diff(nil, net.Snapshot()))
		assert.Empty(t, Diff(net.Snapshot(), net.Snapshot()))
	})

	t.Run("toggle and memory update", func(t *testing.T) {
		before := net.Snapshot()
		ff.Receive(BroadcasterName, Low)
		con.Receive("a", High)
		net.Node("rx").Receive("a", High)

		changes := Diff(before, net.Snapshot())
		require.Len(t, changes, 3)

		assert.Equal(t, "a", changes[0].Name)
		require.NotNil(t, changes[0].On)
		assert.True(t, *changes[0].On)

		assert.Equal(t, "con", changes[1].Name)
		assert.Equal(t, map[string]Level{"a": High}, changes[1].Memory)

		assert.Equal(t, "rx", changes[2].Name)
		assert.Equal(t, &Counts{High: 1}, changes[2].Received)
	})

	t.Run("nil old reports non-initial state", func(t *testing.T) {
		changes := Diff(nil, net.Snapshot())
		names := make([]string, 0, len(changes))
		for _, c := range changes {
			names = append(names, c.Name)
		}
		assert.Equal(t, []string{"a", "con", "rx"}, names)
	})

	t.Run("serializes compactly", func(t *testing.T) {
		net.Reset()
		before := net.Snapshot()
		ff.Receive(BroadcasterName, Low)

		data, err := json.Marshal(Diff(before, net.Snapshot()))
		require.NoError(t, err)
		assert.JSONEq(t, `[{"name":"a","on":true}]`, string(data))
	})
}
