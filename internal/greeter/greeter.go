package greeter

import (
	"fmt"
	"path"
	"path/filepath"
	"slices"

	"github.com/AvengeMedia/dmconfig/internal/errdefs"
	"github.com/AvengeMedia/dmconfig/internal/target"
	"github.com/spf13/afero"
)

const (
	KDM  = "kdm"
	SDDM = "sddm"
)

const (
	binDir       = "/usr/bin"
	kdmConfPath  = "/usr/share/config/kdm/kdmrc"
	sddmConfPath = "/etc/sddm.conf"

	sddmExampleConfig = "sddm --example-config > " + sddmConfPath
)

// Configurator edits display manager configuration on a target root. Fs must
// be rooted at Root: every path handed to it is relative to the target.
type Configurator struct {
	Root   string
	Fs     afero.Fs
	Runner target.Runner
}

// NewConfigurator returns a Configurator backed by the real filesystem
// under root.
func NewConfigurator(root string, runner target.Runner) *Configurator {
	return &Configurator{
		Root:   root,
		Fs:     afero.NewBasePathFs(afero.NewOsFs(), root),
		Runner: runner,
	}
}

// hostPath is p as seen from outside the target, for messages.
func (c *Configurator) hostPath(p string) string {
	return filepath.Join(c.Root, p)
}

// CheckInstalled verifies that every supported display manager named in
// displayManagers has its binary under the target root. sddm is checked
// before kdm; unknown names are ignored.
func (c *Configurator) CheckInstalled(displayManagers []string) error {
	for _, dm := range []string{SDDM, KDM} {
		if !slices.Contains(displayManagers, dm) {
			continue
		}
		ok, err := afero.Exists(c.Fs, path.Join(binDir, dm))
		if err != nil {
			return errdefs.WrapJobError(errdefs.ErrTypeConfigIO,
				fmt.Sprintf("Cannot check %s installation", dm),
				err.Error(), err)
		}
		if !ok {
			return errdefs.NewJobError(errdefs.ErrTypeNotInstalled,
				fmt.Sprintf("%s selected but not installed", dm), "")
		}
	}
	return nil
}
