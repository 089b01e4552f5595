package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// JobConfig is the module's own configuration file (displaymanager.conf).
// Keys this module does not use are ignored.
type JobConfig struct {
	DisplayManagers []string `yaml:"displaymanagers"`
}

// Globals is a snapshot of the installer's shared storage, taken once by
// the host before the module runs.
type Globals struct {
	DisplayManagers []string `yaml:"displaymanagers"`
	AutologinUser   string   `yaml:"autologinUser"`
	RootMountPoint  string   `yaml:"rootMountPoint"`
}

// Settings is what the job actually runs with.
type Settings struct {
	DisplayManagers []string
	// Username is empty when auto-login was not requested.
	Username       string
	RootMountPoint string
}

// Resolve combines the two sources. A display manager list present in the
// globals replaces the job configuration's list outright; the lists are
// never merged or deduplicated. A nil DisplayManagers in the result means
// neither source selected anything.
func Resolve(job JobConfig, globals Globals) Settings {
	displayManagers := job.DisplayManagers
	if globals.DisplayManagers != nil {
		displayManagers = globals.DisplayManagers
	}

	return Settings{
		DisplayManagers: displayManagers,
		Username:        globals.AutologinUser,
		RootMountPoint:  globals.RootMountPoint,
	}
}

// ParseJobConfig decodes a job configuration document.
func ParseJobConfig(data []byte) (JobConfig, error) {
	var cfg JobConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return JobConfig{}, fmt.Errorf("failed to parse job configuration: %w", err)
	}
	return cfg, nil
}

// ParseGlobals decodes a global storage snapshot.
func ParseGlobals(data []byte) (Globals, error) {
	var g Globals
	if err := yaml.Unmarshal(data, &g); err != nil {
		return Globals{}, fmt.Errorf("failed to parse global storage: %w", err)
	}
	return g, nil
}

// LoadJobConfig reads path, or returns an empty configuration when path is
// empty.
func LoadJobConfig(path string) (JobConfig, error) {
	if path == "" {
		return JobConfig{}, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return JobConfig{}, fmt.Errorf("failed to read job configuration: %w", err)
	}
	return ParseJobConfig(data)
}

// LoadGlobals reads path, or returns empty globals when path is empty.
func LoadGlobals(path string) (Globals, error) {
	if path == "" {
		return Globals{}, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Globals{}, fmt.Errorf("failed to read global storage: %w", err)
	}
	return ParseGlobals(data)
}
