package greeter

import (
	"fmt"
	"slices"

	"github.com/go-ini/ini"
	"github.com/spf13/afero"
)

// Status is the auto-login setup currently written to a display manager's
// configuration file.
type Status struct {
	DisplayManager string
	ConfigPath     string
	Present        bool
	Enabled        bool
	User           string
	Session        string
}

var iniLoadOptions = ini.LoadOptions{
	Loose:                   true,
	IgnoreInlineComment:     true,
	SkipUnrecognizableLines: true,
	AllowShadows:            true,
}

// Inspect reads back the auto-login settings for each supported display
// manager in displayManagers. It never writes.
func (c *Configurator) Inspect(displayManagers []string) ([]Status, error) {
	var statuses []Status

	if slices.Contains(displayManagers, KDM) {
		st, err := c.inspect(KDM, kdmConfPath, func(f *ini.File, st *Status) {
			st.User = lookup(f, "AutoLoginUser", "X-:0-Core")
			if k, ok := lookupKey(f, "AutoLoginEnable", "X-:0-Core"); ok {
				st.Enabled = k.MustBool(false)
			}
		})
		if err != nil {
			return statuses, err
		}
		statuses = append(statuses, st)
	}

	if slices.Contains(displayManagers, SDDM) {
		st, err := c.inspect(SDDM, sddmConfPath, func(f *ini.File, st *Status) {
			st.User = lookup(f, "User", "Autologin")
			st.Session = lookup(f, "Session", "Autologin")
			st.Enabled = st.User != ""
		})
		if err != nil {
			return statuses, err
		}
		statuses = append(statuses, st)
	}

	return statuses, nil
}

func (c *Configurator) inspect(dm, confPath string, fill func(*ini.File, *Status)) (Status, error) {
	st := Status{
		DisplayManager: dm,
		ConfigPath:     c.hostPath(confPath),
	}

	if !isRegularFile(c.Fs, confPath) {
		return st, nil
	}
	st.Present = true

	data, err := afero.ReadFile(c.Fs, confPath)
	if err != nil {
		return st, fmt.Errorf("failed to read %s: %w", st.ConfigPath, err)
	}

	f, err := ini.LoadSources(iniLoadOptions, data)
	if err != nil {
		return st, fmt.Errorf("failed to parse %s: %w", st.ConfigPath, err)
	}

	fill(f, &st)
	return st, nil
}

func lookup(f *ini.File, key, preferred string) string {
	k, ok := lookupKey(f, key, preferred)
	if !ok {
		return ""
	}
	return k.String()
}

// lookupKey prefers the named section and falls back to the first section
// that has the key, since hand-edited files do not always keep it in place.
func lookupKey(f *ini.File, key, preferred string) (*ini.Key, bool) {
	if s, err := f.GetSection(preferred); err == nil && s.HasKey(key) {
		return s.Key(key), true
	}
	for _, s := range f.Sections() {
		if s.HasKey(key) {
			return s.Key(key), true
		}
	}
	return nil, false
}
