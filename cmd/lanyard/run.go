package main

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/gorewood/lanyard/internal/button"
	"github.com/gorewood/lanyard/internal/output"
	"github.com/gorewood/lanyard/internal/runner"
)

func newRunCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run <button>",
		Short: "Run a button by name or ID",
		Long: `Run a button.

Each {placeholder} in the command prompts for a value before anything
executes; an empty answer cancels the run without side effects. The
resolved command runs in the button's directory (or the current one)
with the terminal attached.

Bare single-word commands are checked against the built-in action
registry first, so a button whose command is "lanyard.list" invokes
the action instead of the shell.`,
		Args: cobra.ExactArgs(1),
		RunE: runRun,
	}

	return cmd
}

func runRun(cmd *cobra.Command, args []string) error {
	printer := output.NewPrinter(cmd.OutOrStdout(), isJSONMode(cmd), output.IsTTY(cmd.OutOrStdout()))

	store, err := openStore()
	if err != nil {
		sysErr := output.NewSystemErrorWithCause("failed to load buttons", err)
		printer.Error(sysErr)
		return sysErr
	}

	b, found := store.Find(args[0])
	if !found {
		notFound := output.NewUserError(fmt.Sprintf("no button named %q. Run 'lanyard list' to see what exists", args[0]))
		printer.Error(notFound)
		return notFound
	}

	r := runner.New(stdinPrompter(cmd.InOrStdin(), cmd.ErrOrStderr())).
		WithStreams(cmd.InOrStdin(), cmd.OutOrStdout(), cmd.ErrOrStderr())
	registerActions(r, store, printer)

	if err := r.Run(cmd.Context(), b); err != nil {
		if errors.Is(err, runner.ErrCancelled) {
			printer.Warn("cancelled")
			return nil
		}
		printer.Error(err)
		return err
	}

	if printer.IsJSON() {
		return printer.Success(map[string]any{
			"button": b.Name,
			"ran":    true,
		})
	}
	return nil
}

// registerActions wires the built-in actions a button command can name
// instead of a shell command.
func registerActions(r *runner.Runner, store *button.Store, printer *output.Printer) {
	r.RegisterAction("lanyard.list", func(_ context.Context) error {
		for _, b := range store.Buttons() {
			printer.KeyValue(b.Name, b.Cmd)
		}
		return nil
	})
}
