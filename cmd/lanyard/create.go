package main

import (
	"github.com/spf13/cobra"

	"github.com/gorewood/lanyard/internal/button"
	"github.com/gorewood/lanyard/internal/output"
	"github.com/gorewood/lanyard/internal/suggest"
)

func newCreateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a button manually or from a description",
		Long: `Create a single button.

With --name and --cmd the button is created exactly as given. With
--from-description the configured model turns a plain-text description
into a name, command, and placeholder inputs.

Buttons default to workspace scope. A --scope global button is first
checked by the model for machine-specific content; unsafe candidates
are stored at workspace scope instead.`,
		Example: `  lanyard create --name "Run Tests" --cmd "npm test"
  lanyard create --name Deploy --cmd "./deploy.sh {env}" --scope global
  lanyard create --from-description "rebuild the docs and open them"`,
		Args: cobra.NoArgs,
		RunE: runCreate,
	}

	cmd.Flags().String("name", "", "Button name")
	cmd.Flags().String("cmd", "", "Command template, {placeholders} become prompts")
	cmd.Flags().String("description", "", "Optional description shown in listings")
	cmd.Flags().String("from-description", "", "Generate the button from a plain-text description")
	cmd.Flags().String("exec-dir", "", "Directory the command runs in")
	cmd.Flags().String("scope", "workspace", "Scope: workspace or global")

	return cmd
}

func runCreate(cmd *cobra.Command, _ []string) error {
	printer := output.NewPrinter(cmd.OutOrStdout(), isJSONMode(cmd), output.IsTTY(cmd.OutOrStdout()))

	name, _ := cmd.Flags().GetString("name")
	cmdline, _ := cmd.Flags().GetString("cmd")
	description, _ := cmd.Flags().GetString("description")
	fromDescription, _ := cmd.Flags().GetString("from-description")
	execDir, _ := cmd.Flags().GetString("exec-dir")
	scopeValue, _ := cmd.Flags().GetString("scope")

	scope, err := parseScope(scopeValue)
	if err != nil {
		printer.Error(err)
		return err
	}

	candidate, err := buildCandidate(cmd, name, cmdline, description, fromDescription)
	if err != nil {
		printer.Error(err)
		return err
	}
	candidate.ExecDir = execDir

	store, err := openStore()
	if err != nil {
		sysErr := output.NewSystemErrorWithCause("failed to load buttons", err)
		printer.Error(sysErr)
		return sysErr
	}
	if scope == button.ScopeWorkspace && !store.HasWorkspace() {
		wsErr := output.NewUserError("not inside a lanyard workspace. Run 'lanyard init' or use --scope global")
		printer.Error(wsErr)
		return wsErr
	}

	demoted := false
	if scope == button.ScopeGlobal && !suggest.IsGlobalSafe(cmd.Context(), newCompleter(), candidate) {
		if !store.HasWorkspace() {
			safeErr := output.NewConflictError("command looks machine-specific and no workspace is open to hold it")
			printer.Error(safeErr)
			return safeErr
		}
		scope = button.ScopeWorkspace
		demoted = true
	}

	detector := suggest.NewDetector(newCompleter())
	summary, err := store.Add([]button.Button{candidate}, scope, detector.DetectFunc(cmd.Context()))
	if err != nil {
		printer.Error(err)
		return err
	}

	if len(summary.Invalid) > 0 {
		invErr := output.NewUserError("invalid button: " + summary.Invalid[0].Reason)
		printer.Error(invErr)
		return invErr
	}
	if len(summary.Duplicates) > 0 {
		dupErr := output.NewConflictError("duplicate of existing button " + summary.Duplicates[0].Existing)
		printer.Error(dupErr)
		return dupErr
	}

	saved, _ := store.FindByNameCmd(candidate.Name, candidate.Cmd)

	if printer.IsJSON() {
		return printer.Success(map[string]any{
			"button":  saved,
			"scope":   string(scope),
			"demoted": demoted,
		})
	}

	printer.Print("Created button %q (%s)\n", saved.Name, saved.ID)
	if demoted {
		printer.Warn("command looks machine-specific; stored at workspace scope instead of global")
	}
	return nil
}

// buildCandidate resolves the button either from explicit flags or from a
// model-generated proposal.
func buildCandidate(cmd *cobra.Command, name, cmdline, description, fromDescription string) (button.Button, error) {
	if fromDescription != "" {
		if name != "" || cmdline != "" {
			return button.Button{}, output.NewUserError("--from-description cannot be combined with --name or --cmd")
		}
		generator := suggest.NewGenerator(newCompleter())
		candidate, ok := generator.FromDescription(cmd.Context(), fromDescription)
		if !ok {
			return button.Button{}, output.NewSystemError("no model available to generate a button. Set ANTHROPIC_API_KEY or another provider key")
		}
		return candidate, nil
	}

	if name == "" || cmdline == "" {
		return button.Button{}, output.NewUserError("either --from-description or both --name and --cmd are required")
	}

	return button.Button{
		Name:            name,
		Cmd:             cmdline,
		UserDescription: description,
		Inputs:          button.DefaultInputs(cmdline),
	}, nil
}
