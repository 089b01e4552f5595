package job

import (
	"context"

	"github.com/AvengeMedia/dmconfig/internal/config"
	"github.com/AvengeMedia/dmconfig/internal/errdefs"
	"github.com/AvengeMedia/dmconfig/internal/greeter"
	"github.com/AvengeMedia/dmconfig/internal/log"
	"github.com/AvengeMedia/dmconfig/internal/target"
	"github.com/spf13/afero"
)

// Job configures the selected display managers on a target root. Fs, when
// set, replaces the OS filesystem rooted at the mount point.
type Job struct {
	Settings config.Settings
	Runner   target.Runner
	Fs       afero.Fs
}

func New(settings config.Settings, runner target.Runner) *Job {
	return &Job{
		Settings: settings,
		Runner:   runner,
	}
}

func (j *Job) configurator() *greeter.Configurator {
	if j.Fs == nil {
		return greeter.NewConfigurator(j.Settings.RootMountPoint, j.Runner)
	}
	return &greeter.Configurator{
		Root:   j.Settings.RootMountPoint,
		Fs:     j.Fs,
		Runner: j.Runner,
	}
}

// Run checks that every selected display manager is installed and, when a
// username is set, enables auto-login for it. The returned error is an
// *errdefs.JobError; errdefs.Pair turns it into what the installer shows.
func (j *Job) Run(ctx context.Context) error {
	s := j.Settings

	if s.DisplayManagers == nil {
		return errdefs.ErrNoDisplayManagers
	}
	if s.RootMountPoint == "" {
		return errdefs.NewJobError(errdefs.ErrTypeGeneric,
			"No root mount point for the displaymanager module.",
			"rootMountPoint is not set in globalstorage.")
	}

	log.Debug("Configuring display managers", "displaymanagers", s.DisplayManagers, "root", s.RootMountPoint)

	c := j.configurator()
	if err := c.CheckInstalled(s.DisplayManagers); err != nil {
		return err
	}

	if s.Username == "" {
		log.Info("No autologin user configured, skipping autologin setup")
		return nil
	}

	log.Debugf("Setting up autologin for user %s.", s.Username)
	return c.SetAutologin(ctx, s.Username, s.DisplayManagers)
}

// Run is a shorthand for New(settings, runner).Run(ctx).
func Run(ctx context.Context, settings config.Settings, runner target.Runner) error {
	return New(settings, runner).Run(ctx)
}
