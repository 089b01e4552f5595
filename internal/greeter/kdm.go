package greeter

import (
	"fmt"
	"strings"

	"github.com/AvengeMedia/dmconfig/internal/errdefs"
	"github.com/AvengeMedia/dmconfig/internal/log"
	"github.com/spf13/afero"
)

const (
	kdmDisabledAutologin = "#AutoLoginEnable=true"
	kdmAutologinUserKey  = "AutoLoginUser="
)

// rewriteKDM enables auto-login and points it at username. Any line that
// mentions the key is replaced whole, commented or not.
func rewriteKDM(lines []string, username string) []string {
	out := make([]string, 0, len(lines))
	for _, line := range lines {
		if strings.Contains(line, kdmDisabledAutologin) {
			line = "AutoLoginEnable=true\n"
		}
		if strings.Contains(line, kdmAutologinUserKey) {
			line = kdmAutologinUserKey + username + "\n"
		}
		out = append(out, line)
	}
	return out
}

// configureKDM edits kdmrc. Unlike sddm there is no generator to fall back
// on, so a missing file is fatal.
func (c *Configurator) configureKDM(username string) error {
	confPath := c.hostPath(kdmConfPath)

	ok, err := afero.Exists(c.Fs, kdmConfPath)
	if err != nil {
		return errdefs.WrapJobError(errdefs.ErrTypeConfigIO,
			"Cannot write KDM configuration file",
			fmt.Sprintf("KDM config file %s cannot be accessed", confPath), err)
	}
	if !ok {
		return errdefs.NewJobError(errdefs.ErrTypeMissingConfig,
			"Cannot write KDM configuration file",
			fmt.Sprintf("KDM config file %s does not exist", confPath))
	}

	lines, perm, err := readLines(c.Fs, kdmConfPath)
	if err != nil {
		return errdefs.WrapJobError(errdefs.ErrTypeConfigIO,
			"Cannot read KDM configuration file",
			fmt.Sprintf("KDM config file %s could not be read: %v", confPath, err), err)
	}

	if err := writeLines(c.Fs, kdmConfPath, rewriteKDM(lines, username), perm); err != nil {
		return errdefs.WrapJobError(errdefs.ErrTypeConfigIO,
			"Cannot write KDM configuration file",
			fmt.Sprintf("KDM config file %s could not be written: %v", confPath, err), err)
	}

	log.Info("Configured KDM autologin", "user", username, "path", confPath)
	return nil
}
