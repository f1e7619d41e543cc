package main

import (
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/gorewood/lanyard/internal/activity"
)

func newTrackCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:    "track <type> <detail>",
		Short:  "Record an activity entry (internal)",
		Hidden: true,
		Long: `Record one entry in the workspace activity log.

Invoked by editor hooks, so it must never break the editor: every
failure path exits 0 silently. With the single argument "hook" the
entry is derived from a tool-call JSON payload on stdin instead.`,
		Args: cobra.RangeArgs(1, 2),
		RunE: runTrack,
	}

	return cmd
}

func runTrack(cmd *cobra.Command, args []string) error {
	log := openLog()
	if log == nil {
		return nil
	}

	if len(args) == 1 && args[0] == "hook" {
		trackFromHook(cmd.InOrStdin(), log)
		return nil
	}
	if len(args) != 2 {
		return nil
	}

	t, err := activity.ParseType(args[0])
	if err != nil {
		return nil
	}
	detail := strings.TrimSpace(args[1])
	if detail == "" {
		return nil
	}

	_ = log.Append(t, detail)
	return nil
}

// trackFromHook reads a Claude Code PostToolUse payload from stdin and
// records the matching activity entry. Unrecognized or malformed payloads
// are dropped silently.
func trackFromHook(stdin io.Reader, log *activity.Log) {
	data, err := io.ReadAll(io.LimitReader(stdin, 1<<20))
	if err != nil {
		return
	}

	t, detail, ok := activity.FromHookPayload(data)
	if !ok {
		return
	}
	_ = log.Append(t, detail)
}
