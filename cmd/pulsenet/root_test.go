package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadOptions_FlagsOverrideProfile(t *testing.T) {
	profile := filepath.Join(t.TempDir(), "profile.yaml")
	require.NoError(t, os.WriteFile(profile, []byte("presses: 50\ntarget: output\nmax_pulses: 99\n"), 0o644))

	cmd := &cobra.Command{Use: "until"}
	addPersistentFlags(cmd.Flags())
	cmd.Flags().String("target", "rx", "")
	cmd.Flags().Int("presses", 1000, "")
	require.NoError(t, cmd.ParseFlags([]string{"--config", profile, "--target", "hub", "--no-cycle-detection"}))

	opts, err := loadOptions(cmd, []string{"net.txt"})
	require.NoError(t, err)

	assert.Equal(t, "net.txt", opts.Path)
	assert.Equal(t, "hub", opts.Profile.Target, "explicit flag wins")
	assert.Equal(t, 50, opts.Profile.Presses, "unset flag keeps the profile value")
	assert.Equal(t, 99, opts.Profile.MaxPulses)
	assert.False(t, opts.Profile.CycleDetection)
}

func TestLoadOptions_InvalidOverride(t *testing.T) {
	cmd := &cobra.Command{Use: "until"}
	addPersistentFlags(cmd.Flags())
	require.NoError(t, cmd.ParseFlags([]string{"--max-presses=-1"}))

	_, err := loadOptions(cmd, []string{"net.txt"})
	assert.Error(t, err)
}
