package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/gorewood/lanyard/internal/activity"
	"github.com/gorewood/lanyard/internal/button"
	"github.com/gorewood/lanyard/internal/config"
	"github.com/gorewood/lanyard/internal/llm"
	"github.com/gorewood/lanyard/internal/output"
	"github.com/gorewood/lanyard/internal/setup"
)

type checkResult struct {
	Name   string `json:"name"`
	OK     bool   `json:"ok"`
	Detail string `json:"detail"`
}

func newDoctorCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "doctor",
		Short: "Diagnose the lanyard installation",
		Long: `Run environment checks: config directory, workspace, button files,
activity log, model credentials, and editor hook installation.

Exits non-zero when any check fails.`,
		Args: cobra.NoArgs,
		RunE: runDoctor,
	}

	return cmd
}

func runDoctor(cmd *cobra.Command, _ []string) error {
	printer := output.NewPrinter(cmd.OutOrStdout(), isJSONMode(cmd), output.IsTTY(cmd.OutOrStdout()))

	checks := []checkResult{
		checkConfigDir(),
		checkWorkspace(),
		checkButtonFile(),
		checkActivityLog(),
		checkModel(),
		checkHook(),
	}

	failed := 0
	for _, c := range checks {
		if !c.OK {
			failed++
		}
	}

	if printer.IsJSON() {
		return printer.Success(map[string]any{
			"checks": checks,
			"failed": failed,
		})
	}

	printer.Section("Doctor")
	for _, c := range checks {
		mark := "ok"
		if !c.OK {
			mark = "FAIL"
		}
		printer.KeyValue(fmt.Sprintf("[%s] %s", mark, c.Name), c.Detail)
	}

	if failed > 0 {
		err := output.NewSystemError(fmt.Sprintf("%d check(s) failed", failed))
		printer.Error(err)
		return err
	}
	printer.Println()
	printer.Println("All checks passed.")
	return nil
}

func checkConfigDir() checkResult {
	dir := config.Dir()
	if dir == "" {
		return checkResult{Name: "config directory", OK: false, Detail: "could not resolve a config directory"}
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return checkResult{Name: "config directory", OK: false, Detail: err.Error()}
	}
	return checkResult{Name: "config directory", OK: true, Detail: dir}
}

func checkWorkspace() checkResult {
	ws := config.WorkspaceDir()
	if ws == "" {
		return checkResult{Name: "workspace", OK: true, Detail: "not inside a workspace (run 'lanyard init' in a project)"}
	}
	return checkResult{Name: "workspace", OK: true, Detail: ws}
}

func checkButtonFile() checkResult {
	store := button.NewStore(buttonPaths())
	if err := store.Load(); err != nil {
		return checkResult{Name: "button files", OK: false, Detail: err.Error()}
	}
	return checkResult{Name: "button files", OK: true, Detail: fmt.Sprintf("%d button(s) loaded", len(store.Buttons()))}
}

func checkActivityLog() checkResult {
	log := openLog()
	if log == nil {
		return checkResult{Name: "activity log", OK: true, Detail: "no workspace"}
	}
	text, err := log.Read()
	if err != nil {
		return checkResult{Name: "activity log", OK: false, Detail: err.Error()}
	}
	total := 0
	for _, line := range strings.Split(text, "\n") {
		if strings.TrimSpace(line) != "" {
			total++
		}
	}
	parsed := 0
	for _, tally := range activity.Aggregate(text) {
		parsed += tally.Count
	}
	detail := fmt.Sprintf("%d of %d line(s) parse", parsed, total)
	return checkResult{Name: "activity log", OK: true, Detail: detail}
}

func checkModel() checkResult {
	client, err := llm.FromEnv()
	if err != nil {
		keys := strings.Join(llm.APIKeyEnvVars(), ", ")
		return checkResult{Name: "model", OK: true, Detail: "none configured (set one of " + keys + "); suggestions use fallbacks"}
	}
	return checkResult{Name: "model", OK: true, Detail: client.Model()}
}

func checkHook() checkResult {
	for _, project := range []bool{true, false} {
		hookPath, _, err := setup.ResolveHookPath(project)
		if err != nil {
			continue
		}
		if setup.IsSectionInstalled(hookPath) {
			return checkResult{Name: "editor hook", OK: true, Detail: filepath.ToSlash(hookPath)}
		}
	}
	return checkResult{Name: "editor hook", OK: true, Detail: "not installed (run 'lanyard setup claude')"}
}
