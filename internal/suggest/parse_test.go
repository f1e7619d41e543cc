package suggest

import "testing"

func TestExtractJSONArray(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		want   string
		wantOK bool
	}{
		{
			name:   "bare array",
			input:  `[{"name":"x"}]`,
			want:   `[{"name":"x"}]`,
			wantOK: true,
		},
		{
			name:   "array with surrounding prose",
			input:  `Here are the buttons: [{"name":"x"}] hope that helps!`,
			want:   `[{"name":"x"}]`,
			wantOK: true,
		},
		{
			name:   "nested arrays stay balanced",
			input:  `[[1,2],[3]] trailing`,
			want:   `[[1,2],[3]]`,
			wantOK: true,
		},
		{
			name:   "bracket inside string literal ignored",
			input:  `[{"cmd":"echo ]"}]`,
			want:   `[{"cmd":"echo ]"}]`,
			wantOK: true,
		},
		{
			name:   "escaped quote inside string",
			input:  `[{"cmd":"say \"hi]\""}]`,
			want:   `[{"cmd":"say \"hi]\""}]`,
			wantOK: true,
		},
		{
			name:   "no array",
			input:  `sorry, I cannot help with that`,
			wantOK: false,
		},
		{
			name:   "unbalanced array",
			input:  `[{"name":"x"}`,
			wantOK: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := extractJSONArray(tt.input)
			if ok != tt.wantOK {
				t.Fatalf("extractJSONArray() ok = %v, want %v", ok, tt.wantOK)
			}
			if ok && got != tt.want {
				t.Errorf("extractJSONArray() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestExtractJSONObject(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		want   string
		wantOK bool
	}{
		{
			name:   "bare object",
			input:  `{"name":"x"}`,
			want:   `{"name":"x"}`,
			wantOK: true,
		},
		{
			name: "fenced object",
			input: "```json\n" + `{"name":"x"}` + "\n```",
			want: `{"name":"x"}`,
			wantOK: true,
		},
		{
			name:   "prose around object",
			input:  `Sure: {"name":"x"} done`,
			want:   `{"name":"x"}`,
			wantOK: true,
		},
		{
			name:   "first brace to last brace",
			input:  `{"a":{"b":1}} extra {"c":2}`,
			want:   `{"a":{"b":1}} extra {"c":2}`,
			wantOK: true,
		},
		{
			name:   "no object",
			input:  `nothing here`,
			wantOK: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := extractJSONObject(tt.input)
			if ok != tt.wantOK {
				t.Fatalf("extractJSONObject() ok = %v, want %v", ok, tt.wantOK)
			}
			if ok && got != tt.want {
				t.Errorf("extractJSONObject() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestStripCodeFences(t *testing.T) {
	input := "```json\n[1,2]\n```"
	if got := stripCodeFences(input); got != "[1,2]" {
		t.Errorf("stripCodeFences() = %q, want %q", got, "[1,2]")
	}
}
