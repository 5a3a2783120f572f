package output

import (
	"bytes"
	"encoding/json"
	"io"
	"os"
	"strings"
	"testing"

	"github.com/fatih/color"
)

func init() {
	// Disable color for tests
	color.NoColor = true
}

// captureStdout captures stdout during function execution
func captureStdout(f func()) string {
	old := os.Stdout
	r, w, _ := os.Pipe()
	os.Stdout = w

	// Also set color output to the same writer
	color.Output = w

	f()

	w.Close()
	os.Stdout = old
	color.Output = os.Stdout

	var buf bytes.Buffer
	_, _ = io.Copy(&buf, r)
	return buf.String()
}

func TestJSON(t *testing.T) {
	t.Run("simple map", func(t *testing.T) {
		data := map[string]interface{}{
			"install_dir": "/opt/python-3.11",
			"product":     "Python Runtime",
		}

		out := captureStdout(func() {
			_ = JSON(data)
		})

		var result map[string]interface{}
		err := json.Unmarshal([]byte(out), &result)
		if err != nil {
			t.Fatalf("JSON output is invalid: %v", err)
		}

		if result["install_dir"] != "/opt/python-3.11" {
			t.Errorf("expected install_dir /opt/python-3.11, got %v", result["install_dir"])
		}
		if result["product"] != "Python Runtime" {
			t.Errorf("expected product Python Runtime, got %v", result["product"])
		}
	})

	t.Run("struct", func(t *testing.T) {
		type TestStruct struct {
			Name  string `json:"name"`
			Value int    `json:"value"`
		}
		data := TestStruct{Name: "rewritten", Value: 42}

		out := captureStdout(func() {
			_ = JSON(data)
		})

		var result TestStruct
		err := json.Unmarshal([]byte(out), &result)
		if err != nil {
			t.Fatalf("JSON output is invalid: %v", err)
		}

		if result.Name != "rewritten" {
			t.Errorf("expected name rewritten, got %s", result.Name)
		}
		if result.Value != 42 {
			t.Errorf("expected value 42, got %d", result.Value)
		}
	})

	t.Run("empty object", func(t *testing.T) {
		data := map[string]interface{}{}

		out := captureStdout(func() {
			_ = JSON(data)
		})

		if !strings.Contains(out, "{}") {
			t.Errorf("expected empty object, got %s", out)
		}
	})
}

func TestTable(t *testing.T) {
	t.Run("basic table", func(t *testing.T) {
		headers := []string{"FILE", "STATUS"}
		rows := [][]string{
			{"bin/pip", "rewritten"},
			{"lib/python3.11/config/Makefile", "skipped"},
		}

		out := captureStdout(func() {
			Table(headers, rows)
		})

		if !strings.Contains(out, "FILE") {
			t.Error("output should contain header FILE")
		}
		if !strings.Contains(out, "STATUS") {
			t.Error("output should contain header STATUS")
		}
		if !strings.Contains(out, "bin/pip") {
			t.Error("output should contain bin/pip")
		}
		if !strings.Contains(out, "skipped") {
			t.Error("output should contain skipped")
		}
	})

	t.Run("empty headers", func(t *testing.T) {
		out := captureStdout(func() {
			Table([]string{}, [][]string{{"data"}})
		})

		if out != "" {
			t.Errorf("expected no output for empty headers, got %s", out)
		}
	})

	t.Run("empty rows", func(t *testing.T) {
		out := captureStdout(func() {
			Table([]string{"COL1", "COL2"}, [][]string{})
		})

		if !strings.Contains(out, "COL1") {
			t.Error("output should contain header COL1")
		}
		// Should have header and separator but no data rows
		lines := strings.Split(strings.TrimSpace(out), "\n")
		if len(lines) != 2 {
			t.Errorf("expected 2 lines (header + separator), got %d", len(lines))
		}
	})

	t.Run("uneven columns", func(t *testing.T) {
		headers := []string{"COL1", "COL2", "COL3"}
		rows := [][]string{
			{"a", "b"},           // missing COL3
			{"x", "y", "z", "w"}, // extra column (should be ignored)
		}

		out := captureStdout(func() {
			Table(headers, rows)
		})

		if !strings.Contains(out, "COL1") {
			t.Error("output should contain header COL1")
		}
		if !strings.Contains(out, "a") {
			t.Error("output should contain value a")
		}
	})
}

func TestSuccess(t *testing.T) {
	out := captureStdout(func() {
		Success("install completed")
	})

	if !strings.Contains(out, "install completed") {
		t.Error("output should contain success message")
	}
	if !strings.Contains(out, "✓") {
		t.Error("output should contain success symbol")
	}
}

func TestError(t *testing.T) {
	out := captureStdout(func() {
		Error("install failed")
	})

	if !strings.Contains(out, "install failed") {
		t.Error("output should contain error message")
	}
	if !strings.Contains(out, "✗") {
		t.Error("output should contain error symbol")
	}
}

func TestWarn(t *testing.T) {
	out := captureStdout(func() {
		Warn("directory already exists")
	})

	if !strings.Contains(out, "directory already exists") {
		t.Error("output should contain warning message")
	}
	if !strings.Contains(out, "!") {
		t.Error("output should contain warning symbol")
	}
}

func TestBlock(t *testing.T) {
	text := "line one\n    indented line two"

	out := captureStdout(func() {
		Block(text)
	})

	if out != text+"\n" {
		t.Errorf("Block should print text verbatim, got %q", out)
	}
}
