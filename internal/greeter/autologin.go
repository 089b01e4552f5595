package greeter

import (
	"context"
	"slices"
)

// SetAutologin enables automatic login for username on every supported
// display manager in displayManagers. kdm is handled before sddm and the
// first failure stops the run.
func (c *Configurator) SetAutologin(ctx context.Context, username string, displayManagers []string) error {
	if slices.Contains(displayManagers, KDM) {
		if err := c.configureKDM(username); err != nil {
			return err
		}
	}

	if slices.Contains(displayManagers, SDDM) {
		if err := c.configureSDDM(ctx, username); err != nil {
			return err
		}
	}

	return nil
}
