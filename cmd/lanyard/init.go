package main

import (
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/gorewood/lanyard/internal/activity"
	"github.com/gorewood/lanyard/internal/config"
	"github.com/gorewood/lanyard/internal/output"
)

func newInitCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Initialize a lanyard workspace",
		Long: `Create the .lanyard directory in the current directory.

The directory holds the workspace button file and the activity log.
Running init inside an already-initialized workspace is a no-op.`,
		Args: cobra.NoArgs,
		RunE: runInit,
	}

	return cmd
}

func runInit(cmd *cobra.Command, _ []string) error {
	printer := output.NewPrinter(cmd.OutOrStdout(), isJSONMode(cmd), output.IsTTY(cmd.OutOrStdout()))

	cwd, err := os.Getwd()
	if err != nil {
		sysErr := output.NewSystemErrorWithCause("failed to get working directory", err)
		printer.Error(sysErr)
		return sysErr
	}

	dir := filepath.Join(cwd, config.WorkspaceDirName)
	existed := false
	if info, statErr := os.Stat(dir); statErr == nil && info.IsDir() {
		existed = true
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		sysErr := output.NewSystemErrorWithCause("failed to create workspace directory", err)
		printer.Error(sysErr)
		return sysErr
	}

	logPath := filepath.Join(dir, activity.LogFileName)
	if _, statErr := os.Stat(logPath); os.IsNotExist(statErr) {
		if err := os.WriteFile(logPath, nil, 0o644); err != nil {
			sysErr := output.NewSystemErrorWithCause("failed to create activity log", err)
			printer.Error(sysErr)
			return sysErr
		}
	}

	if printer.IsJSON() {
		return printer.Success(map[string]any{
			"workspace": dir,
			"created":   !existed,
		})
	}

	if existed {
		printer.Println("Workspace already initialized at", dir)
	} else {
		printer.Println("Initialized workspace at", dir)
		printer.Println("Next: 'lanyard setup claude' to record activity automatically.")
	}
	return nil
}
