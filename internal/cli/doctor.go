package cli

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/pybundle/pyinstall/internal/config"
	"github.com/pybundle/pyinstall/internal/executor"
	"github.com/pybundle/pyinstall/internal/openssl"
	"github.com/pybundle/pyinstall/internal/output"
	"github.com/pybundle/pyinstall/internal/platform"
	"github.com/pybundle/pyinstall/internal/relocate"
	"github.com/pybundle/pyinstall/internal/tree"
	"github.com/spf13/cobra"
)

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Check the bundle and environment before installing",
	Long: `Run diagnostic checks on the bundle and the system.

Checks:
  - Bundle metadata validity
  - Template tree and relocation manifest presence
  - openssl tool availability and its compiled-in directory
  - patchelf availability (when the bundle allows RUNPATH rewriting)
  - OpenSSL certificate directory recommendation

Examples:
  pyinstall doctor
  pyinstall doctor --json`,
	RunE: runDoctor,
}

func init() {
	rootCmd.AddCommand(doctorCmd)
}

// CheckResult represents a single diagnostic check result
type CheckResult struct {
	Status  string `json:"status"` // "success", "warning", "error"
	Message string `json:"message"`
}

// DoctorReport contains all diagnostic results
type DoctorReport struct {
	Platform    string                 `json:"platform"`
	Bundle      []CheckResult          `json:"bundle"`
	Environment []CheckResult          `json:"environment"`
	OpenSSL     openssl.Recommendation `json:"openssl"`
}

func runDoctor(cmd *cobra.Command, args []string) error {
	srcDir, err := resolveBundleDir()
	if err != nil {
		return fmt.Errorf("failed to locate bundle: %w", err)
	}

	exec := executor.NewSystemExecutor()
	kind := platform.Detect()

	report := &DoctorReport{Platform: platform.Platform()}

	bundle, loadErr := config.Load(srcDir)
	report.Bundle = checkBundle(srcDir, bundle, loadErr)
	report.Environment = checkEnvironment(exec, kind, bundle)
	report.OpenSSL = openssl.NewRanker(exec).Recommend()

	if jsonOutput {
		return output.JSON(report)
	}

	displayDoctorResults(report)
	return nil
}

func checkBundle(srcDir string, bundle *config.Bundle, loadErr error) []CheckResult {
	results := []CheckResult{}

	if loadErr != nil {
		results = append(results, CheckResult{"error", fmt.Sprintf("Bundle metadata: %v", loadErr)})
		return results
	}
	results = append(results, CheckResult{"success",
		fmt.Sprintf("Bundle metadata: %s %s", bundle.Product, bundle.Version)})

	tmpl := bundle.TemplatePath(srcDir)
	if !tree.Exists(tmpl) {
		results = append(results, CheckResult{"error",
			fmt.Sprintf("Template tree missing: %s", tmpl)})
		return results
	}
	results = append(results, CheckResult{"success", fmt.Sprintf("Template tree: %s", tmpl)})

	manifest := filepath.Join(tmpl, relocate.ManifestPath)
	entries, err := relocate.ReadManifest(manifest)
	switch {
	case err != nil:
		// A bundle without a manifest installs fine, it just has
		// nothing to relocate.
		results = append(results, CheckResult{"warning",
			fmt.Sprintf("Relocation manifest not readable: %s", manifest)})
	default:
		results = append(results, CheckResult{"success",
			fmt.Sprintf("Relocation manifest: %d entries", len(entries))})
	}

	results = append(results, CheckResult{"success",
		fmt.Sprintf("Placeholder reserves %d bytes for the install path", len(bundle.Placeholder))})
	return results
}

func checkEnvironment(exec executor.CommandExecutor, kind platform.Kind, bundle *config.Bundle) []CheckResult {
	results := []CheckResult{}

	if _, err := exec.LookPath("openssl"); err == nil {
		ranker := openssl.NewRanker(exec)
		if dir, ok := ranker.DefaultDir(); ok {
			results = append(results, CheckResult{"success",
				fmt.Sprintf("openssl found (OPENSSLDIR: %s)", dir)})
		} else {
			results = append(results, CheckResult{"warning",
				"openssl found but its directory could not be determined"})
		}
	} else {
		results = append(results, CheckResult{"warning",
			"openssl not found; certificate guidance will be limited"})
	}

	if kind == platform.POSIX && bundle != nil && bundle.Features.AllowSetRunPath {
		if _, err := exec.LookPath("patchelf"); err == nil {
			results = append(results, CheckResult{"success", "patchelf found (RUNPATH rewriting available)"})
		} else {
			results = append(results, CheckResult{"warning",
				"patchelf not found; --set-runpath will fail"})
		}
	}

	return results
}

func displayDoctorResults(report *DoctorReport) {
	output.Print("Platform: %s", report.Platform)
	output.Print("")

	output.Print("Bundle:")
	displayChecks(report.Bundle)
	output.Print("")

	output.Print("Environment:")
	displayChecks(report.Environment)
	output.Print("")

	output.Print("OpenSSL certificate directory:")
	for _, line := range openssl.Guidance(report.OpenSSL) {
		output.Info("%s", line)
	}
	if len(report.OpenSSL.Ambiguous) > 1 {
		output.Warn("multiple working openssl directories: %s",
			strings.Join(report.OpenSSL.Ambiguous, ", "))
	}
}

func displayChecks(checks []CheckResult) {
	for _, check := range checks {
		switch check.Status {
		case "success":
			output.Success("%s", check.Message)
		case "warning":
			output.Warn("%s", check.Message)
		default:
			output.Error("%s", check.Message)
		}
	}
}
