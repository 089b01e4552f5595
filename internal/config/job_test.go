package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolve(t *testing.T) {
	tests := []struct {
		name    string
		job     JobConfig
		globals Globals
		want    []string
	}{
		{
			name: "neither source",
			want: nil,
		},
		{
			name: "job configuration only",
			job:  JobConfig{DisplayManagers: []string{"sddm", "kdm"}},
			want: []string{"sddm", "kdm"},
		},
		{
			name:    "globals replace job configuration",
			job:     JobConfig{DisplayManagers: []string{"sddm", "kdm"}},
			globals: Globals{DisplayManagers: []string{"kdm"}},
			want:    []string{"kdm"},
		},
		{
			name:    "empty globals list still wins",
			job:     JobConfig{DisplayManagers: []string{"sddm"}},
			globals: Globals{DisplayManagers: []string{}},
			want:    []string{},
		},
		{
			name:    "duplicates kept",
			globals: Globals{DisplayManagers: []string{"sddm", "sddm"}},
			want:    []string{"sddm", "sddm"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Resolve(tt.job, tt.globals)
			assert.Equal(t, tt.want, got.DisplayManagers)
		})
	}
}

func TestResolveCarriesGlobals(t *testing.T) {
	got := Resolve(JobConfig{}, Globals{AutologinUser: "alice", RootMountPoint: "/mnt/target"})
	assert.Equal(t, "alice", got.Username)
	assert.Equal(t, "/mnt/target", got.RootMountPoint)
}

func TestParseJobConfig(t *testing.T) {
	cfg, err := ParseJobConfig([]byte(`---
displaymanagers:
  - sddm
  - kdm
basicSetup: false
sysconfigSetup: false
`))
	require.NoError(t, err)
	assert.Equal(t, []string{"sddm", "kdm"}, cfg.DisplayManagers)

	_, err = ParseJobConfig([]byte("displaymanagers: [sddm"))
	assert.Error(t, err)
}

func TestParseGlobals(t *testing.T) {
	g, err := ParseGlobals([]byte(`
displaymanagers: [kdm]
autologinUser: alice
rootMountPoint: /tmp/calamares-root
`))
	require.NoError(t, err)
	assert.Equal(t, Globals{
		DisplayManagers: []string{"kdm"},
		AutologinUser:   "alice",
		RootMountPoint:  "/tmp/calamares-root",
	}, g)

	g, err = ParseGlobals([]byte("rootMountPoint: /mnt\n"))
	require.NoError(t, err)
	assert.Nil(t, g.DisplayManagers)
	assert.Empty(t, g.AutologinUser)
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	jobPath := filepath.Join(dir, "displaymanager.conf")
	require.NoError(t, os.WriteFile(jobPath, []byte("displaymanagers: [sddm]\n"), 0644))

	cfg, err := LoadJobConfig(jobPath)
	require.NoError(t, err)
	assert.Equal(t, []string{"sddm"}, cfg.DisplayManagers)

	cfg, err = LoadJobConfig("")
	require.NoError(t, err)
	assert.Nil(t, cfg.DisplayManagers)

	_, err = LoadGlobals(filepath.Join(dir, "missing.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read global storage")
}
