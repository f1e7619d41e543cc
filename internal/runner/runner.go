// Package runner resolves a button's input placeholders and dispatches
// the resulting command, either to a registered built-in action or to
// the user's shell on the current terminal.
package runner

import (
	"context"
	"io"
	"os"
	"os/exec"
	"runtime"
	"strings"

	"github.com/gorewood/lanyard/internal/button"
	"github.com/gorewood/lanyard/internal/output"
)

// ErrCancelled is returned when the user aborts input resolution.
var ErrCancelled = output.NewUserError("execution cancelled")

// Prompter asks the user for one placeholder value. ok=false means the
// prompt was cancelled.
type Prompter func(label string) (value string, ok bool)

// Action is a built-in action invocable by a button whose command is a
// bare action identifier.
type Action func(ctx context.Context) error

// Runner executes buttons.
type Runner struct {
	prompter Prompter
	actions  map[string]Action
	stdin    io.Reader
	stdout   io.Writer
	stderr   io.Writer
}

// New creates a Runner with the given prompter, attached to the
// process's standard streams.
func New(prompter Prompter) *Runner {
	return &Runner{
		prompter: prompter,
		actions:  make(map[string]Action),
		stdin:    os.Stdin,
		stdout:   os.Stdout,
		stderr:   os.Stderr,
	}
}

// WithStreams redirects the shell's standard streams. Returns the
// runner for chaining.
func (r *Runner) WithStreams(stdin io.Reader, stdout, stderr io.Writer) *Runner {
	r.stdin = stdin
	r.stdout = stdout
	r.stderr = stderr
	return r
}

// RegisterAction adds a built-in action reachable from button commands.
func (r *Runner) RegisterAction(name string, fn Action) {
	r.actions[name] = fn
}

// Run resolves the button's placeholders and dispatches the command.
func (r *Runner) Run(ctx context.Context, b button.Button) error {
	cmd, err := r.Resolve(b)
	if err != nil {
		return err
	}
	return r.Dispatch(ctx, cmd, b.ExecDir)
}

// Resolve substitutes placeholder values into the command template.
// Declared inputs are prompted sequentially in slice order; placeholder
// tokens still left in the command afterwards are prompted as they
// stand. A cancelled or empty answer aborts the execution.
//
// Substitution is literal text replacement of every occurrence of the
// token; the user's value is spliced in without shell escaping.
func (r *Runner) Resolve(b button.Button) (string, error) {
	cmd := b.Cmd

	for _, in := range b.Inputs {
		label := in.Placeholder
		if label == "" {
			label = in.Variable
		}
		value, ok := r.prompter(label)
		if !ok || value == "" {
			return "", ErrCancelled
		}
		cmd = strings.ReplaceAll(cmd, in.Variable, value)
	}

	// Tokens with no declared input still need values.
	for _, tok := range button.Placeholders(cmd) {
		value, ok := r.prompter(tok)
		if !ok || value == "" {
			return "", ErrCancelled
		}
		cmd = strings.ReplaceAll(cmd, tok, value)
	}

	return cmd, nil
}

// Dispatch routes a resolved command. A single word with no shell
// delimiters is tried as a built-in action first and falls through to
// the shell when no action matches; anything else goes straight to the
// shell.
func (r *Runner) Dispatch(ctx context.Context, cmd string, dir string) error {
	if isBareIdentifier(cmd) {
		if action, ok := r.actions[cmd]; ok {
			return action(ctx)
		}
	}
	return r.shell(ctx, cmd, dir)
}

// isBareIdentifier reports whether cmd could name a built-in action:
// no space and none of the shell chaining delimiters.
func isBareIdentifier(cmd string) bool {
	if strings.Contains(cmd, " ") {
		return false
	}
	for _, delim := range []string{"&&", "||", ";"} {
		if strings.Contains(cmd, delim) {
			return false
		}
	}
	return true
}

// shell runs cmd through the platform shell in dir (current directory
// when empty), attached to the runner's streams.
func (r *Runner) shell(ctx context.Context, cmd string, dir string) error {
	var c *exec.Cmd
	if runtime.GOOS == "windows" {
		c = exec.CommandContext(ctx, "cmd", "/C", cmd)
	} else {
		c = exec.CommandContext(ctx, "sh", "-c", cmd)
	}
	c.Dir = dir
	c.Stdin = r.stdin
	c.Stdout = r.stdout
	c.Stderr = r.stderr

	if err := c.Run(); err != nil {
		return output.NewSystemErrorWithCause("command failed: "+cmd, err)
	}
	return nil
}
