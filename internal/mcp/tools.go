package mcp

import (
	"context"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/gorewood/lanyard/internal/activity"
	"github.com/gorewood/lanyard/internal/button"
	"github.com/gorewood/lanyard/internal/suggest"
)

// ButtonSummary is a simplified button for tool output.
type ButtonSummary struct {
	ID          string `json:"id"          jsonschema:"button ID"`
	Name        string `json:"name"        jsonschema:"display label"`
	Cmd         string `json:"cmd"         jsonschema:"command template"`
	Description string `json:"description,omitempty" jsonschema:"button description"`
	Scope       string `json:"scope"       jsonschema:"workspace or global"`
}

// toSummaries converts buttons for output.
func toSummaries(buttons []button.Button) []ButtonSummary {
	out := make([]ButtonSummary, 0, len(buttons))
	for _, b := range buttons {
		out = append(out, ButtonSummary{
			ID:          b.ID,
			Name:        b.Name,
			Cmd:         b.Cmd,
			Description: b.Description(),
			Scope:       string(b.Scope),
		})
	}
	return out
}

// --- list_buttons ---

// ListInput is the input for the list_buttons tool.
type ListInput struct {
	Scope string `json:"scope,omitempty" jsonschema:"filter to workspace or global"`
}

// ListOutput is the output for the list_buttons tool.
type ListOutput struct {
	Count   int             `json:"count"             jsonschema:"number of buttons"`
	Buttons []ButtonSummary `json:"buttons,omitempty" jsonschema:"the buttons"`
}

func handleList(deps Deps) mcp.ToolHandlerFor[ListInput, ListOutput] {
	return func(_ context.Context, _ *mcp.CallToolRequest, input ListInput) (*mcp.CallToolResult, ListOutput, error) {
		if err := deps.Store.Load(); err != nil {
			return nil, ListOutput{}, fmt.Errorf("loading buttons: %w", err)
		}

		buttons := deps.Store.Buttons()
		if input.Scope != "" {
			buttons = deps.Store.Scoped(button.Scope(input.Scope))
		}

		return nil, ListOutput{Count: len(buttons), Buttons: toSummaries(buttons)}, nil
	}
}

// --- suggest_buttons ---

// SuggestInput is the input for the suggest_buttons tool.
type SuggestInput struct {
	Top   int  `json:"top,omitempty"  jsonschema:"number of top activities to consider (default 5)"`
	Save  bool `json:"save,omitempty" jsonschema:"store the unique proposals at workspace scope"`
}

// SuggestOutput is the output for the suggest_buttons tool.
type SuggestOutput struct {
	Proposals []ButtonSummary `json:"proposals,omitempty" jsonschema:"proposed buttons"`
	Added     int             `json:"added"               jsonschema:"buttons stored (save=true only)"`
	Skipped   int             `json:"skipped"             jsonschema:"proposals skipped as duplicates or invalid"`
}

func handleSuggest(deps Deps) mcp.ToolHandlerFor[SuggestInput, SuggestOutput] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input SuggestInput) (*mcp.CallToolResult, SuggestOutput, error) {
		if deps.Log == nil {
			return nil, SuggestOutput{}, fmt.Errorf("no project open: run 'lanyard init' first")
		}

		top := input.Top
		if top <= 0 {
			top = 5
		}

		text, err := deps.Log.Read()
		if err != nil {
			return nil, SuggestOutput{}, fmt.Errorf("reading activity log: %w", err)
		}

		ranked := activity.TopN(activity.Aggregate(text), top)
		generator := suggest.NewGenerator(deps.Completer)
		proposals := generator.FromActivity(ctx, ranked, top)

		out := SuggestOutput{Proposals: proposalSummaries(proposals)}
		if !input.Save {
			return nil, out, nil
		}

		if err := deps.Store.Load(); err != nil {
			return nil, SuggestOutput{}, fmt.Errorf("loading buttons: %w", err)
		}

		detector := suggest.NewDetector(deps.Completer)
		summary, err := deps.Store.Add(proposals, button.ScopeWorkspace, detector.DetectFunc(ctx))
		if err != nil {
			return nil, SuggestOutput{}, fmt.Errorf("storing buttons: %w", err)
		}

		out.Added = summary.Added
		out.Skipped = len(summary.Duplicates) + len(summary.Invalid)
		return nil, out, nil
	}
}

// proposalSummaries renders proposals that have no scope or ID yet.
func proposalSummaries(proposals []button.Button) []ButtonSummary {
	out := make([]ButtonSummary, 0, len(proposals))
	for _, b := range proposals {
		out = append(out, ButtonSummary{
			Name:        b.Name,
			Cmd:         b.Cmd,
			Description: b.Description(),
		})
	}
	return out
}

// --- create_button ---

// CreateInput is the input for the create_button tool.
type CreateInput struct {
	Name        string `json:"name"                  jsonschema:"display label (50 characters max)"`
	Cmd         string `json:"cmd"                   jsonschema:"command template, may contain {placeholder} tokens"`
	Description string `json:"description,omitempty" jsonschema:"what the button does"`
	Scope       string `json:"scope,omitempty"       jsonschema:"workspace (default) or global"`
}

// CreateOutput is the output for the create_button tool.
type CreateOutput struct {
	Added     int    `json:"added"               jsonschema:"1 when the button was stored"`
	Duplicate string `json:"duplicate,omitempty" jsonschema:"name of the existing button that blocked creation"`
	Invalid   string `json:"invalid,omitempty"   jsonschema:"validation failure reason"`
	Scope     string `json:"scope,omitempty"     jsonschema:"scope the button was stored at"`
	Demoted   bool   `json:"demoted,omitempty"   jsonschema:"true when a global candidate was stored at workspace scope instead"`
}

func handleCreate(deps Deps) mcp.ToolHandlerFor[CreateInput, CreateOutput] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input CreateInput) (*mcp.CallToolResult, CreateOutput, error) {
		if err := deps.Store.Load(); err != nil {
			return nil, CreateOutput{}, fmt.Errorf("loading buttons: %w", err)
		}

		candidate := button.Button{
			Name:            input.Name,
			Cmd:             input.Cmd,
			UserDescription: input.Description,
			Inputs:          button.DefaultInputs(input.Cmd),
		}

		scope := button.ScopeWorkspace
		out := CreateOutput{}
		if input.Scope == string(button.ScopeGlobal) {
			if suggest.IsGlobalSafe(ctx, deps.Completer, candidate) {
				scope = button.ScopeGlobal
			} else {
				out.Demoted = true
			}
		}

		detector := suggest.NewDetector(deps.Completer)
		summary, err := deps.Store.Add([]button.Button{candidate}, scope, detector.DetectFunc(ctx))
		if err != nil {
			return nil, CreateOutput{}, fmt.Errorf("storing button: %w", err)
		}

		out.Added = summary.Added
		out.Scope = string(scope)
		if len(summary.Duplicates) > 0 {
			out.Duplicate = summary.Duplicates[0].Existing
		}
		if len(summary.Invalid) > 0 {
			out.Invalid = summary.Invalid[0].Reason
		}
		return nil, out, nil
	}
}

// --- remove_button ---

// RemoveInput is the input for the remove_button tool.
type RemoveInput struct {
	Ref string `json:"ref" jsonschema:"button ID or name"`
}

// RemoveOutput is the output for the remove_button tool.
type RemoveOutput struct {
	Removed string `json:"removed" jsonschema:"name of the removed button"`
}

func handleRemove(deps Deps) mcp.ToolHandlerFor[RemoveInput, RemoveOutput] {
	return func(_ context.Context, _ *mcp.CallToolRequest, input RemoveInput) (*mcp.CallToolResult, RemoveOutput, error) {
		if err := deps.Store.Load(); err != nil {
			return nil, RemoveOutput{}, fmt.Errorf("loading buttons: %w", err)
		}

		b, ok := deps.Store.Find(input.Ref)
		if !ok {
			return nil, RemoveOutput{}, fmt.Errorf("button not found: %s", input.Ref)
		}

		if err := deps.Store.Delete(b.ID); err != nil {
			return nil, RemoveOutput{}, fmt.Errorf("deleting button: %w", err)
		}

		return nil, RemoveOutput{Removed: b.Name}, nil
	}
}
