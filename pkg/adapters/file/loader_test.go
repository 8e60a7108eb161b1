package file_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/aretw0/pulsenet/pkg/adapters/file"
	"github.com/aretw0/pulsenet/pkg/domain"
	contract "github.com/aretw0/pulsenet/pkg/ports/tests"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const text = `broadcaster -> a
%a -> inv, con
&inv -> b
%b -> con
&con -> output
`

const doc = `modules:
  - name: broadcaster
    to: [a]
  - name: a
    type: flip-flop
    to: [inv, con]
  - name: inv
    type: conjunction
    to: [b]
  - name: b
    type: flip-flop
    to: [con]
  - name: con
    type: conjunction
    to: [output]
`

func write(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestFileLoader_Contract(t *testing.T) {
	want := []string{"broadcaster", "a", "inv", "b", "con"}

	t.Run("text", func(t *testing.T) {
		contract.NetworkLoaderContractTest(t, file.New(write(t, "net.txt", text)), want)
	})
	t.Run("yaml", func(t *testing.T) {
		l := file.New(write(t, "net.yaml", doc))
		assert.True(t, l.IsYAML())
		contract.NetworkLoaderContractTest(t, l, want)
	})
}

func TestFileLoader_Errors(t *testing.T) {
	_, err := file.New(filepath.Join(t.TempDir(), "missing.txt")).Load(context.Background())
	assert.Error(t, err)

	_, err = file.New(write(t, "bad.txt", "broadcaster a")).Load(context.Background())
	assert.ErrorIs(t, err, domain.ErrConfig)
}

func TestFileLoader_Watch(t *testing.T) {
	path := write(t, "net.txt", text)
	l := file.New(path)
	l.Debounce = 10 * time.Millisecond

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	ch, err := l.Watch(ctx)
	require.NoError(t, err)

	// Unrelated files in the same directory are ignored.
	require.NoError(t, os.WriteFile(filepath.Join(filepath.Dir(path), "other.txt"), []byte("x"), 0o644))
	require.NoError(t, os.WriteFile(path, []byte(text+"%c -> a\n"), 0o644))

	select {
	case name := <-ch:
		assert.Equal(t, "net.txt", name)
	case <-time.After(5 * time.Second):
		t.Fatal("no change notification")
	}

	cancel()
	assert.Eventually(t, func() bool {
		_, open := <-ch
		return !open
	}, 2*time.Second, 10*time.Millisecond)
}
