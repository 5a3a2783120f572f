package input

import (
	"io"
	"testing"
)

func TestStringReader_ReadString(t *testing.T) {
	t.Run("single input", func(t *testing.T) {
		reader := NewStringReader("yes\n")
		result, err := reader.ReadString('\n')
		if err != nil {
			t.Fatalf("ReadString failed: %v", err)
		}
		if result != "yes\n" {
			t.Errorf("expected 'yes\\n', got '%s'", result)
		}
	})

	t.Run("multiple inputs", func(t *testing.T) {
		reader := NewStringReader("/opt/python\n", "no\n")

		result1, err := reader.ReadString('\n')
		if err != nil {
			t.Fatalf("ReadString for first failed: %v", err)
		}
		if result1 != "/opt/python\n" {
			t.Errorf("expected '/opt/python\\n', got '%s'", result1)
		}

		result2, err := reader.ReadString('\n')
		if err != nil {
			t.Fatalf("ReadString for second failed: %v", err)
		}
		if result2 != "no\n" {
			t.Errorf("expected 'no\\n', got '%s'", result2)
		}
	})

	t.Run("EOF after all inputs consumed", func(t *testing.T) {
		reader := NewStringReader("yes\n")
		if _, err := reader.ReadString('\n'); err != nil {
			t.Fatalf("ReadString failed: %v", err)
		}

		result, err := reader.ReadString('\n')
		if err != io.EOF {
			t.Errorf("expected io.EOF, got %v", err)
		}
		if result != "" {
			t.Errorf("expected empty string, got '%s'", result)
		}
	})
}
