package output

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"
)

func TestPrinterSuccessJSON(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf, true, false)

	if err := p.Success(map[string]any{"added": 2}); err != nil {
		t.Fatalf("Success() error = %v", err)
	}

	var decoded map[string]any
	if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("output is not JSON: %v", err)
	}
	if decoded["added"] != float64(2) {
		t.Errorf("added = %v", decoded["added"])
	}
}

func TestPrinterSuccessHumanMessage(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf, false, false)

	if err := p.Success(map[string]any{"message": "all done"}); err != nil {
		t.Fatalf("Success() error = %v", err)
	}
	if !strings.Contains(buf.String(), "all done") {
		t.Errorf("output = %q", buf.String())
	}
}

func TestPrinterErrorJSON(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf, true, false)

	p.Error(NewConflictError("already exists"))

	var decoded map[string]any
	if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("output is not JSON: %v", err)
	}
	if decoded["error"] != "already exists" {
		t.Errorf("error = %v", decoded["error"])
	}
	if decoded["code"] != float64(ExitConflict) {
		t.Errorf("code = %v, want %d", decoded["code"], ExitConflict)
	}
}

func TestPrinterErrorHumanGoesToStderr(t *testing.T) {
	var out, errOut bytes.Buffer
	p := NewPrinter(&out, false, false).WithStderr(&errOut)

	p.Error(NewUserError("bad input"))

	if out.Len() != 0 {
		t.Errorf("stdout should be empty, got %q", out.String())
	}
	if !strings.Contains(errOut.String(), "bad input") {
		t.Errorf("stderr = %q", errOut.String())
	}
}

func TestGetExitCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{name: "nil is success", err: nil, want: ExitSuccess},
		{name: "user error", err: NewUserError("x"), want: ExitUserError},
		{name: "system error", err: NewSystemError("x"), want: ExitSystemError},
		{name: "conflict", err: NewConflictError("x"), want: ExitConflict},
		{name: "plain error defaults to user", err: errors.New("x"), want: ExitUserError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := GetExitCode(tt.err); got != tt.want {
				t.Errorf("GetExitCode() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestExitErrorUnwrap(t *testing.T) {
	cause := errors.New("root cause")
	err := NewSystemErrorWithCause("wrapper", cause)

	if !errors.Is(err, cause) {
		t.Error("NewSystemErrorWithCause() should wrap its cause")
	}
	if err.Error() != "wrapper" {
		t.Errorf("Error() = %q, want the message alone", err.Error())
	}
}

func TestTable(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf, false, false)

	p.Table([]string{"ID", "NAME"}, [][]string{
		{"bt_1", "Run Tests"},
		{"bt_2", "Build"},
	})

	got := buf.String()
	for _, want := range []string{"ID", "NAME", "bt_1", "Run Tests", "bt_2"} {
		if !strings.Contains(got, want) {
			t.Errorf("table output missing %q:\n%s", want, got)
		}
	}
}
