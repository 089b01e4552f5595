package greeter

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"github.com/AvengeMedia/dmconfig/internal/desktop"
	"github.com/AvengeMedia/dmconfig/internal/errdefs"
	"github.com/AvengeMedia/dmconfig/internal/log"
	"github.com/AvengeMedia/dmconfig/internal/target"
)

var (
	// User= line, possibly commented out
	sddmUserRe = regexp.MustCompile(`^\s*(?:#\s*)?User=`)
	// Session= line, commented out or with an empty value
	sddmSessionRe = regexp.MustCompile(`^(?:\s*#\s*Session=|\s*Session=$)`)
)

// rewriteSDDM sets the auto-login user and, when session is non-empty, fills
// in an unset default session. session is resolved lazily and only once.
func rewriteSDDM(lines []string, username string, session func() string) []string {
	var (
		resolved bool
		name     string
	)

	out := make([]string, 0, len(lines))
	for _, line := range lines {
		content := strings.TrimSuffix(line, "\n")

		if sddmUserRe.MatchString(content) {
			line = "User=" + username + "\n"
			content = strings.TrimSuffix(line, "\n")
		}

		if sddmSessionRe.MatchString(content) {
			if !resolved {
				name = session()
				resolved = true
			}
			if name != "" {
				line = "Session=" + name + "\n"
			}
		}
		out = append(out, line)
	}
	return out
}

// configureSDDM edits /etc/sddm.conf, generating it from sddm's built-in
// example first when the target has none.
func (c *Configurator) configureSDDM(ctx context.Context, username string) error {
	confPath := c.hostPath(sddmConfPath)

	if isRegularFile(c.Fs, sddmConfPath) {
		log.Debug("SDDM config file exists", "path", confPath)
	} else {
		log.Info("Generating SDDM config file", "path", confPath)
		if err := target.ShellCommand(ctx, c.Runner, c.Root, sddmExampleConfig); err != nil {
			return errdefs.WrapJobError(errdefs.ErrTypeCommand,
				"Cannot create SDDM configuration file",
				fmt.Sprintf("Command %q failed in %s: %v", sddmExampleConfig, c.Root, err), err)
		}
	}

	lines, perm, err := readLines(c.Fs, sddmConfPath)
	if err != nil {
		return errdefs.WrapJobError(errdefs.ErrTypeConfigIO,
			"Cannot read SDDM configuration file",
			fmt.Sprintf("SDDM config file %s could not be read: %v", confPath, err), err)
	}

	session := func() string {
		d, ok := desktop.Find(c.Fs)
		if !ok {
			log.Warn("No desktop environment detected, leaving SDDM session unset", "root", c.Root)
			return ""
		}
		return d.DesktopFile + ".desktop"
	}

	if err := writeLines(c.Fs, sddmConfPath, rewriteSDDM(lines, username, session), perm); err != nil {
		return errdefs.WrapJobError(errdefs.ErrTypeConfigIO,
			"Cannot write SDDM configuration file",
			fmt.Sprintf("SDDM config file %s could not be written: %v", confPath, err), err)
	}

	log.Info("Configured SDDM autologin", "user", username, "path", confPath)
	return nil
}
