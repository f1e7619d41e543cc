package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/gorewood/lanyard/internal/button"
	"github.com/gorewood/lanyard/internal/output"
	"github.com/gorewood/lanyard/internal/suggest"
)

func newEditCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "edit <button>",
		Short: "Edit a button",
		Long: `Edit a button's fields by name or ID.

Changing --scope moves the button between the workspace and global
files. Promotion to global runs the machine-specific safety check and
is refused for commands that would not make sense on another machine.`,
		Example: `  lanyard edit "Run Tests" --cmd "npm test -- --watch"
  lanyard edit bt_2024-01-01T00:00:00Z_a1b2c3d4 --scope global`,
		Args: cobra.ExactArgs(1),
		RunE: runEdit,
	}

	cmd.Flags().String("name", "", "New name")
	cmd.Flags().String("cmd", "", "New command template")
	cmd.Flags().String("description", "", "New description")
	cmd.Flags().String("exec-dir", "", "New execution directory")
	cmd.Flags().String("scope", "", "Move to scope: workspace or global")

	return cmd
}

func runEdit(cmd *cobra.Command, args []string) error {
	printer := output.NewPrinter(cmd.OutOrStdout(), isJSONMode(cmd), output.IsTTY(cmd.OutOrStdout()))

	store, err := openStore()
	if err != nil {
		sysErr := output.NewSystemErrorWithCause("failed to load buttons", err)
		printer.Error(sysErr)
		return sysErr
	}

	b, found := store.Find(args[0])
	if !found {
		notFound := output.NewUserError(fmt.Sprintf("no button named %q", args[0]))
		printer.Error(notFound)
		return notFound
	}

	changed := false
	if v, _ := cmd.Flags().GetString("name"); cmd.Flags().Changed("name") {
		b.Name = v
		changed = true
	}
	if v, _ := cmd.Flags().GetString("cmd"); cmd.Flags().Changed("cmd") {
		b.Cmd = v
		b.PruneInputs()
		changed = true
	}
	if v, _ := cmd.Flags().GetString("description"); cmd.Flags().Changed("description") {
		b.UserDescription = v
		changed = true
	}
	if v, _ := cmd.Flags().GetString("exec-dir"); cmd.Flags().Changed("exec-dir") {
		b.ExecDir = v
		changed = true
	}
	if v, _ := cmd.Flags().GetString("scope"); cmd.Flags().Changed("scope") {
		scope, scopeErr := parseScope(v)
		if scopeErr != nil {
			printer.Error(scopeErr)
			return scopeErr
		}
		if scope != b.Scope {
			if scope == button.ScopeGlobal && !suggest.IsGlobalSafe(cmd.Context(), newCompleter(), b) {
				safeErr := output.NewConflictError("command looks machine-specific; not promoting to global")
				printer.Error(safeErr)
				return safeErr
			}
			if scope == button.ScopeWorkspace && !store.HasWorkspace() {
				wsErr := output.NewUserError("not inside a lanyard workspace; cannot move button here")
				printer.Error(wsErr)
				return wsErr
			}
			b.Scope = scope
			changed = true
		}
	}

	if !changed {
		noop := output.NewUserError("nothing to change. Pass at least one of --name, --cmd, --description, --exec-dir, --scope")
		printer.Error(noop)
		return noop
	}

	if reason := b.Validate(); reason != "" {
		invErr := output.NewUserError("invalid button: " + reason)
		printer.Error(invErr)
		return invErr
	}

	if err := store.Update(b); err != nil {
		printer.Error(err)
		return err
	}

	if printer.IsJSON() {
		return printer.Success(map[string]any{
			"button": b,
			"scope":  string(b.Scope),
		})
	}

	printer.Print("Updated button %q\n", b.Name)
	return nil
}
