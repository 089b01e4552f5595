// Package targettest provides a Runner that records calls instead of
// executing them.
package targettest

import (
	"context"
	"strings"

	"github.com/AvengeMedia/dmconfig/internal/target"
)

type Call struct {
	Root    string
	Command string
	Args    []string
}

// String renders the call the way it would be typed inside the root.
func (c Call) String() string {
	return strings.Join(append([]string{c.Command}, c.Args...), " ")
}

// Recorder appends every call to Calls, then invokes OnRun when set.
type Recorder struct {
	Calls []Call
	OnRun func(call Call) error
}

var _ target.Runner = (*Recorder)(nil)

func (r *Recorder) Run(ctx context.Context, root string, command string, args ...string) error {
	call := Call{Root: root, Command: command, Args: args}
	r.Calls = append(r.Calls, call)
	if r.OnRun != nil {
		return r.OnRun(call)
	}
	return nil
}
