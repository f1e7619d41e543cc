package button

import (
	"reflect"
	"strings"
	"testing"
	"time"
)

func TestButtonValidate(t *testing.T) {
	tests := []struct {
		name   string
		button Button
		want   string
	}{
		{
			name:   "valid",
			button: Button{Name: "Run Tests", Cmd: "npm test"},
			want:   "",
		},
		{
			name:   "empty name",
			button: Button{Cmd: "npm test"},
			want:   "name is empty",
		},
		{
			name:   "empty cmd",
			button: Button{Name: "Run Tests"},
			want:   "cmd is empty",
		},
		{
			name:   "name too long",
			button: Button{Name: strings.Repeat("x", MaxNameLength+1), Cmd: "ls"},
			want:   "name exceeds 50 characters",
		},
		{
			name:   "name at limit",
			button: Button{Name: strings.Repeat("x", MaxNameLength), Cmd: "ls"},
			want:   "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.button.Validate(); got != tt.want {
				t.Errorf("Validate() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestPlaceholders(t *testing.T) {
	tests := []struct {
		name string
		cmd  string
		want []string
	}{
		{
			name: "no placeholders",
			cmd:  "npm test",
			want: nil,
		},
		{
			name: "single placeholder",
			cmd:  "git commit -m {message}",
			want: []string{"{message}"},
		},
		{
			name: "repeated token counted once",
			cmd:  "echo {name} {name}",
			want: []string{"{name}"},
		},
		{
			name: "multiple in appearance order",
			cmd:  "scp {src} {dst}",
			want: []string{"{src}", "{dst}"},
		},
		{
			name: "invalid tokens ignored",
			cmd:  "echo {1bad} {} {ok_1}",
			want: []string{"{ok_1}"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Placeholders(tt.cmd); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Placeholders(%q) = %v, want %v", tt.cmd, got, tt.want)
			}
		})
	}
}

func TestPruneInputs(t *testing.T) {
	b := Button{
		Name: "Deploy",
		Cmd:  "deploy {env}",
		Inputs: []Input{
			{Placeholder: "Environment", Variable: "{env}"},
			{Placeholder: "Stale", Variable: "{region}"},
		},
	}

	b.PruneInputs()

	if len(b.Inputs) != 1 || b.Inputs[0].Variable != "{env}" {
		t.Errorf("PruneInputs() kept %v, want only {env}", b.Inputs)
	}
}

func TestDefaultInputs(t *testing.T) {
	inputs := DefaultInputs("git commit -m {message} --author {author}")

	want := []Input{
		{Placeholder: "message", Variable: "{message}"},
		{Placeholder: "author", Variable: "{author}"},
	}
	if !reflect.DeepEqual(inputs, want) {
		t.Errorf("DefaultInputs() = %v, want %v", inputs, want)
	}
}

func TestDescription(t *testing.T) {
	b := Button{AIDescription: "from the model"}
	if got := b.Description(); got != "from the model" {
		t.Errorf("Description() = %q", got)
	}

	b.UserDescription = "from the user"
	if got := b.Description(); got != "from the user" {
		t.Errorf("Description() should prefer the user's text, got %q", got)
	}
}

func TestGenerateID(t *testing.T) {
	ts := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

	id := GenerateID("Run Tests", "npm test", ts)
	if !strings.HasPrefix(id, "bt_2024-06-01T12:00:00Z_") {
		t.Errorf("GenerateID() = %q, want bt_<timestamp>_ prefix", id)
	}
	if len(id)-len("bt_2024-06-01T12:00:00Z_") != 8 {
		t.Errorf("GenerateID() hash suffix has wrong length: %q", id)
	}

	// Same inputs, same ID. Different content, different ID.
	if id != GenerateID("Run Tests", "npm test", ts) {
		t.Error("GenerateID() is not deterministic")
	}
	if id == GenerateID("Run Tests", "npm run test", ts) {
		t.Error("GenerateID() ignored the command")
	}
}
