package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pybundle/pyinstall/internal/config"
	pyerrors "github.com/pybundle/pyinstall/internal/errors"
	"github.com/pybundle/pyinstall/internal/executor"
	"github.com/pybundle/pyinstall/internal/platform"
	"github.com/pybundle/pyinstall/internal/relocate"
)

// findCheck returns the first check whose message contains substr.
func findCheck(results []CheckResult, substr string) (CheckResult, bool) {
	for _, r := range results {
		if strings.Contains(r.Message, substr) {
			return r, true
		}
	}
	return CheckResult{}, false
}

func TestCheckBundle(t *testing.T) {
	t.Run("complete bundle", func(t *testing.T) {
		src := t.TempDir()
		bundle := config.Default()
		tmpl := bundle.TemplatePath(src)
		if err := os.MkdirAll(filepath.Join(tmpl, "lib"), 0755); err != nil {
			t.Fatal(err)
		}
		manifest := filepath.Join(tmpl, relocate.ManifestPath)
		if err := os.WriteFile(manifest, []byte("bin/pip\nlib/settings.cfg\n"), 0644); err != nil {
			t.Fatal(err)
		}

		results := checkBundle(src, bundle, nil)

		if check, ok := findCheck(results, "Bundle metadata"); !ok || check.Status != "success" {
			t.Errorf("expected metadata success, got %+v", results)
		}
		if check, ok := findCheck(results, "Template tree"); !ok || check.Status != "success" {
			t.Errorf("expected template success, got %+v", results)
		}
		check, ok := findCheck(results, "Relocation manifest")
		if !ok || check.Status != "success" {
			t.Fatalf("expected manifest success, got %+v", results)
		}
		if !strings.Contains(check.Message, "2 entries") {
			t.Errorf("expected entry count, got %q", check.Message)
		}
	})

	t.Run("load error short-circuits", func(t *testing.T) {
		loadErr := pyerrors.Wrap(pyerrors.ErrCodeConfig, "failed to read bundle metadata", os.ErrNotExist)
		results := checkBundle(t.TempDir(), nil, loadErr)

		if len(results) != 1 || results[0].Status != "error" {
			t.Fatalf("expected a single error result, got %+v", results)
		}
	})

	t.Run("missing template tree", func(t *testing.T) {
		results := checkBundle(t.TempDir(), config.Default(), nil)

		if check, ok := findCheck(results, "Template tree missing"); !ok || check.Status != "error" {
			t.Errorf("expected template error, got %+v", results)
		}
	})

	t.Run("missing manifest is a warning", func(t *testing.T) {
		src := t.TempDir()
		bundle := config.Default()
		if err := os.MkdirAll(bundle.TemplatePath(src), 0755); err != nil {
			t.Fatal(err)
		}

		results := checkBundle(src, bundle, nil)

		if check, ok := findCheck(results, "manifest not readable"); !ok || check.Status != "warning" {
			t.Errorf("expected manifest warning, got %+v", results)
		}
	})
}

func TestCheckEnvironment(t *testing.T) {
	t.Run("openssl present with directory", func(t *testing.T) {
		mock := &executor.MockExecutor{
			ExecuteFunc: func(name string, args ...string) ([]byte, error) {
				return []byte("OPENSSLDIR: \"/usr/lib/ssl\"\n"), nil
			},
		}

		results := checkEnvironment(mock, platform.POSIX, config.Default())

		check, ok := findCheck(results, "openssl found")
		if !ok || check.Status != "success" {
			t.Fatalf("expected openssl success, got %+v", results)
		}
		if !strings.Contains(check.Message, "/usr/lib/ssl") {
			t.Errorf("expected reported directory, got %q", check.Message)
		}
	})

	t.Run("openssl missing", func(t *testing.T) {
		mock := &executor.MockExecutor{
			LookPathFunc: func(file string) (string, error) {
				return "", fmt.Errorf("%s not found", file)
			},
		}

		results := checkEnvironment(mock, platform.POSIX, config.Default())

		if check, ok := findCheck(results, "openssl not found"); !ok || check.Status != "warning" {
			t.Errorf("expected openssl warning, got %+v", results)
		}
	})

	t.Run("patchelf checked when runpath allowed", func(t *testing.T) {
		bundle := config.Default()
		bundle.Features.AllowSetRunPath = true
		mock := &executor.MockExecutor{
			LookPathFunc: func(file string) (string, error) {
				if file == "patchelf" {
					return "", fmt.Errorf("patchelf not found")
				}
				return "/usr/bin/" + file, nil
			},
		}

		results := checkEnvironment(mock, platform.POSIX, bundle)

		if check, ok := findCheck(results, "patchelf not found"); !ok || check.Status != "warning" {
			t.Errorf("expected patchelf warning, got %+v", results)
		}
	})

	t.Run("patchelf not checked when runpath disabled", func(t *testing.T) {
		results := checkEnvironment(&executor.MockExecutor{}, platform.POSIX, config.Default())

		if _, ok := findCheck(results, "patchelf"); ok {
			t.Errorf("patchelf check must be gated on the bundle feature, got %+v", results)
		}
	})
}
