package input

import (
	"bytes"
	"strings"
	"testing"
)

func TestAskYesNo(t *testing.T) {
	tests := []struct {
		name   string
		inputs []string
		def    Answer
		want   Answer
	}{
		{"explicit yes", []string{"yes\n"}, No, Yes},
		{"explicit no", []string{"no\n"}, Yes, No},
		{"short y", []string{"y\n"}, No, Yes},
		{"short n", []string{"n\n"}, Yes, No},
		{"partial ye", []string{"ye\n"}, No, Yes},
		{"empty takes default yes", []string{"\n"}, Yes, Yes},
		{"empty takes default no", []string{"\n"}, No, No},
		{"uppercase normalized", []string{"YES\n"}, No, Yes},
		{"invalid then valid", []string{"maybe\n", "y\n"}, No, Yes},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			reader := NewStringReader(tt.inputs...)

			got, err := AskYesNo(reader, &out, "Proceed?", tt.def)
			if err != nil {
				t.Fatalf("AskYesNo failed: %v", err)
			}
			if got != tt.want {
				t.Errorf("expected %q, got %q", tt.want, got)
			}
		})
	}
}

func TestAskYesNo_PromptSuffix(t *testing.T) {
	tests := []struct {
		name string
		def  Answer
		want string
	}{
		{"default yes", Yes, "[Y/n]"},
		{"default no", No, "[y/N]"},
		{"no default", "", "[y/n]"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			reader := NewStringReader("y\n")

			if _, err := AskYesNo(reader, &out, "Proceed?", tt.def); err != nil {
				t.Fatalf("AskYesNo failed: %v", err)
			}
			if !strings.Contains(out.String(), tt.want) {
				t.Errorf("expected prompt containing %q, got %q", tt.want, out.String())
			}
		})
	}
}

func TestAskYesNo_InvalidReprompts(t *testing.T) {
	var out bytes.Buffer
	reader := NewStringReader("dunno\n", "no\n")

	got, err := AskYesNo(reader, &out, "Proceed?", Yes)
	if err != nil {
		t.Fatalf("AskYesNo failed: %v", err)
	}
	if got != No {
		t.Errorf("expected no after re-prompt, got %q", got)
	}
	if !strings.Contains(out.String(), "Please respond") {
		t.Error("expected a re-prompt message for invalid input")
	}
}

func TestAskYesNo_NoDefaultRequiresAnswer(t *testing.T) {
	var out bytes.Buffer
	reader := NewStringReader("\n", "yes\n")

	got, err := AskYesNo(reader, &out, "Proceed?", "")
	if err != nil {
		t.Fatalf("AskYesNo failed: %v", err)
	}
	if got != Yes {
		t.Errorf("empty input with no default should re-prompt, got %q", got)
	}
}

func TestAskInstallDir(t *testing.T) {
	t.Run("explicit directory", func(t *testing.T) {
		var out bytes.Buffer
		reader := NewStringReader("/opt/custom\n")

		dir, err := AskInstallDir(reader, &out, "Python 3.11", "/opt/python-3.11")
		if err != nil {
			t.Fatalf("AskInstallDir failed: %v", err)
		}
		if dir != "/opt/custom" {
			t.Errorf("expected /opt/custom, got %q", dir)
		}
	})

	t.Run("blank selects default", func(t *testing.T) {
		var out bytes.Buffer
		reader := NewStringReader("\n")

		dir, err := AskInstallDir(reader, &out, "Python 3.11", "/opt/python-3.11")
		if err != nil {
			t.Fatalf("AskInstallDir failed: %v", err)
		}
		if dir != "/opt/python-3.11" {
			t.Errorf("expected default dir, got %q", dir)
		}
		if !strings.Contains(out.String(), "/opt/python-3.11") {
			t.Error("prompt should show the default directory")
		}
	})
}
