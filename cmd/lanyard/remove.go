package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/gorewood/lanyard/internal/output"
)

func newRemoveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "remove <button>",
		Aliases: []string{"rm"},
		Short:   "Remove a button",
		Long:    `Remove a button by name or ID from whichever scope holds it.`,
		Args:    cobra.ExactArgs(1),
		RunE:    runRemove,
	}

	return cmd
}

func runRemove(cmd *cobra.Command, args []string) error {
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

	if err := store.Delete(b.ID); err != nil {
		printer.Error(err)
		return err
	}

	if printer.IsJSON() {
		return printer.Success(map[string]any{
			"removed": b.Name,
			"id":      b.ID,
			"scope":   string(b.Scope),
		})
	}

	printer.Print("Removed button %q\n", b.Name)
	return nil
}
