package greeter

import (
	"context"
	"testing"

	"github.com/AvengeMedia/dmconfig/internal/errdefs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckInstalled(t *testing.T) {
	tests := []struct {
		name        string
		binaries    []string
		dms         []string
		wantSummary string
	}{
		{
			name:     "all installed",
			binaries: []string{"/usr/bin/sddm", "/usr/bin/kdm"},
			dms:      []string{"kdm", "sddm"},
		},
		{
			name:        "sddm missing",
			binaries:    []string{"/usr/bin/kdm"},
			dms:         []string{"sddm"},
			wantSummary: "sddm selected but not installed",
		},
		{
			name:        "kdm missing",
			binaries:    []string{"/usr/bin/sddm"},
			dms:         []string{"sddm", "kdm"},
			wantSummary: "kdm selected but not installed",
		},
		{
			name:        "sddm checked before kdm",
			dms:         []string{"kdm", "sddm"},
			wantSummary: "sddm selected but not installed",
		},
		{
			name: "unknown managers are not checked",
			dms:  []string{"lightdm", "gdm"},
		},
		{
			name: "empty list",
			dms:  []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, _ := newTestConfigurator(t)
			for _, b := range tt.binaries {
				writeFile(t, c.Fs, b, "")
			}

			err := c.CheckInstalled(tt.dms)
			if tt.wantSummary == "" {
				assert.NoError(t, err)
				return
			}

			require.Error(t, err)
			assert.Equal(t, errdefs.ErrTypeNotInstalled, errdefs.TypeOf(err))
			summary, detail := errdefs.Pair(err)
			assert.Equal(t, tt.wantSummary, summary)
			assert.Empty(t, detail)
		})
	}
}

func TestInspect(t *testing.T) {
	t.Run("missing files", func(t *testing.T) {
		c, _ := newTestConfigurator(t)

		statuses, err := c.Inspect([]string{"sddm", "kdm"})
		require.NoError(t, err)
		require.Len(t, statuses, 2)

		assert.Equal(t, Status{
			DisplayManager: "kdm",
			ConfigPath:     "/mnt/target/usr/share/config/kdm/kdmrc",
		}, statuses[0])
		assert.Equal(t, Status{
			DisplayManager: "sddm",
			ConfigPath:     "/mnt/target/etc/sddm.conf",
		}, statuses[1])
	})

	t.Run("before and after configuration", func(t *testing.T) {
		c, _ := newTestConfigurator(t)
		installPlasma(t, c.Fs)
		writeFile(t, c.Fs, kdmConfPath, kdmrcFixture)
		writeFile(t, c.Fs, sddmConfPath, sddmFixture)
		dms := []string{"kdm", "sddm"}

		before, err := c.Inspect(dms)
		require.NoError(t, err)
		require.Len(t, before, 2)
		assert.True(t, before[0].Present)
		assert.False(t, before[0].Enabled)
		assert.Equal(t, "olduser", before[0].User)
		assert.True(t, before[1].Present)
		assert.False(t, before[1].Enabled)
		assert.Empty(t, before[1].User)
		assert.Empty(t, before[1].Session)

		require.NoError(t, c.SetAutologin(context.Background(), "alice", dms))

		after, err := c.Inspect(dms)
		require.NoError(t, err)
		require.Len(t, after, 2)
		assert.True(t, after[0].Enabled)
		assert.Equal(t, "alice", after[0].User)
		assert.True(t, after[1].Enabled)
		assert.Equal(t, "alice", after[1].User)
		assert.Equal(t, "plasma.desktop", after[1].Session)
	})

	t.Run("key outside preferred section", func(t *testing.T) {
		c, _ := newTestConfigurator(t)
		writeFile(t, c.Fs, sddmConfPath, "[General]\nUser=bob\n")

		statuses, err := c.Inspect([]string{"sddm"})
		require.NoError(t, err)
		require.Len(t, statuses, 1)
		assert.Equal(t, "bob", statuses[0].User)
	})
}
