package activity

import (
	"encoding/json"
	"strings"
)

// hookPayload is the subset of the Claude Code PostToolUse event that
// activity capture cares about.
type hookPayload struct {
	ToolName  string `json:"tool_name"`
	ToolInput struct {
		Command  string `json:"command"`
		FilePath string `json:"file_path"`
	} `json:"tool_input"`
}

// FromHookPayload maps an editor hook event to an activity.
// Shell tool invocations become Command events; file writes and edits
// become Save events. Unknown tools and malformed payloads are not
// activities; ok=false means "nothing to record", never an error, so
// the hook can never fail the editor operation.
func FromHookPayload(data []byte) (Type, string, bool) {
	var payload hookPayload
	if err := json.Unmarshal(data, &payload); err != nil {
		return "", "", false
	}

	switch strings.ToLower(payload.ToolName) {
	case "bash":
		if payload.ToolInput.Command == "" {
			return "", "", false
		}
		return TypeCommand, payload.ToolInput.Command, true
	case "write":
		if payload.ToolInput.FilePath == "" {
			return "", "", false
		}
		return TypeCreate, payload.ToolInput.FilePath, true
	case "edit", "multiedit", "notebookedit":
		if payload.ToolInput.FilePath == "" {
			return "", "", false
		}
		return TypeSave, payload.ToolInput.FilePath, true
	default:
		return "", "", false
	}
}
