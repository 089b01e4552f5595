package target

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"

	"github.com/AvengeMedia/dmconfig/internal/log"
	"golang.org/x/sys/unix"
)

// Runner executes a command with elevated privilege inside a target root.
type Runner interface {
	Run(ctx context.Context, root string, command string, args ...string) error
}

// ShellCommand runs script through sh -c inside root.
func ShellCommand(ctx context.Context, r Runner, root, script string) error {
	return r.Run(ctx, root, "sh", "-c", script)
}

// ChrootRunner runs commands through chroot(8). The caller must be root.
type ChrootRunner struct {
	Stdout io.Writer
	Stderr io.Writer

	geteuid func() int
}

func NewChrootRunner() *ChrootRunner {
	return &ChrootRunner{
		Stdout:  os.Stdout,
		Stderr:  os.Stderr,
		geteuid: unix.Geteuid,
	}
}

func (c *ChrootRunner) Run(ctx context.Context, root string, command string, args ...string) error {
	if root == "" || root == "/" {
		return fmt.Errorf("refusing to chroot into %q", root)
	}
	if c.geteuid != nil && c.geteuid() != 0 {
		return fmt.Errorf("running %s inside %s requires root privileges", command, root)
	}

	fullArgs := append([]string{root, command}, args...)
	log.Debugf("chroot %s", strings.Join(fullArgs, " "))

	cmd := exec.CommandContext(ctx, "chroot", fullArgs...)
	cmd.Stdout = c.Stdout
	cmd.Stderr = c.Stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("failed to run %s in %s: %w", command, root, err)
	}
	return nil
}
