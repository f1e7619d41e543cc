package main

import (
	"github.com/spf13/cobra"

	"github.com/gorewood/lanyard/internal/activity"
	"github.com/gorewood/lanyard/internal/button"
	"github.com/gorewood/lanyard/internal/output"
	"github.com/gorewood/lanyard/internal/suggest"
)

// Buttons proposed per suggestion round. Proposals beyond this are dropped.
const defaultMaxButtons = 5

// topActivityCount bounds how many aggregated activities feed the model.
const topActivityCount = 10

func newSuggestCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "suggest",
		Short: "Propose buttons from recent activity",
		Long: `Propose new buttons based on the workspace activity log.

Recent activity is aggregated, the most frequent entries are sent to the
configured model, and the proposals come back as ready-to-save buttons.
When no model is configured the proposals fall back to deterministic
keyword matching over the same activity.

Without --save the proposals are only printed. With --save each unique
proposal is stored at workspace scope; duplicates of existing buttons
are skipped and reported.`,
		Args: cobra.NoArgs,
		RunE: runSuggest,
	}

	cmd.Flags().Bool("save", false, "Save unique proposals to the workspace")
	cmd.Flags().Int("max", defaultMaxButtons, "Maximum number of proposals")

	return cmd
}

func runSuggest(cmd *cobra.Command, _ []string) error {
	printer := output.NewPrinter(cmd.OutOrStdout(), isJSONMode(cmd), output.IsTTY(cmd.OutOrStdout()))

	save, _ := cmd.Flags().GetBool("save")
	maxButtons, _ := cmd.Flags().GetInt("max")
	if maxButtons <= 0 {
		maxButtons = defaultMaxButtons
	}

	log := openLog()
	if log == nil {
		err := output.NewUserError("not inside a lanyard workspace. Run 'lanyard init' first")
		printer.Error(err)
		return err
	}

	text, err := log.Read()
	if err != nil {
		sysErr := output.NewSystemErrorWithCause("failed to read activity log", err)
		printer.Error(sysErr)
		return sysErr
	}

	top := activity.TopN(activity.Aggregate(text), topActivityCount)
	generator := suggest.NewGenerator(newCompleter())
	proposals := generator.FromActivity(cmd.Context(), top, maxButtons)

	if !save {
		return printProposals(printer, proposals)
	}

	store, err := openStore()
	if err != nil {
		sysErr := output.NewSystemErrorWithCause("failed to load buttons", err)
		printer.Error(sysErr)
		return sysErr
	}

	detector := suggest.NewDetector(newCompleter())
	summary, err := store.Add(proposals, button.ScopeWorkspace, detector.DetectFunc(cmd.Context()))
	if err != nil {
		printer.Error(err)
		return err
	}

	return printAddSummary(printer, proposals, summary)
}

func printProposals(printer *output.Printer, proposals []button.Button) error {
	if printer.IsJSON() {
		return printer.Success(map[string]any{
			"proposals": proposals,
			"count":     len(proposals),
		})
	}

	if len(proposals) == 0 {
		printer.Println("No proposals. Record some activity first.")
		return nil
	}

	printer.Section("Proposed buttons")
	for _, b := range proposals {
		printer.KeyValue(b.Name, b.Cmd)
	}
	printer.Println()
	printer.Println("Run 'lanyard suggest --save' to keep them.")
	return nil
}

func printAddSummary(printer *output.Printer, proposals []button.Button, summary *button.AddSummary) error {
	if printer.IsJSON() {
		return printer.Success(map[string]any{
			"proposed":   len(proposals),
			"added":      summary.Added,
			"duplicates": summary.Duplicates,
			"invalid":    summary.Invalid,
		})
	}

	printer.Print("Added %d of %d proposal(s)\n", summary.Added, len(proposals))
	for _, dup := range summary.Duplicates {
		printer.Warn("skipped %q: duplicate of %q", dup.Candidate, dup.Existing)
	}
	for _, inv := range summary.Invalid {
		printer.Warn("skipped %q: %s", inv.Name, inv.Reason)
	}
	return nil
}
