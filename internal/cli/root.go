package cli

import (
	"os"
	"path/filepath"

	"github.com/pybundle/pyinstall/internal/logger"
	"github.com/spf13/cobra"
)

var (
	jsonOutput bool
	verbose    bool
	bundleDir  string
	version    = "dev"
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "pyinstall",
	Short: "Relocatable Python runtime installer",
	Long: `pyinstall installs a pre-built, relocatable Python runtime bundle.

It copies the bundled template tree to a chosen destination, rewrites
path-dependent files so the interpreter works at its new location, and
prints post-install guidance (PATH setup, OpenSSL certificate paths,
documentation links).`,
}

// Execute runs the root command
func Execute() {
	// Initialize logger based on verbose flag (parsed by cobra)
	cobra.OnInitialize(func() {
		logger.Init(verbose)
	})

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// SetVersion sets the version string for the CLI
func SetVersion(v string) {
	version = v
	rootCmd.Version = v
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "Output in JSON format")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging for debugging")
	rootCmd.PersistentFlags().StringVar(&bundleDir, "bundle-dir", "", "Directory containing bundle.yaml and the template tree (default: the installer's directory)")
}

// resolveBundleDir returns the directory holding the bundle metadata,
// defaulting to the directory containing the installer binary.
func resolveBundleDir() (string, error) {
	if bundleDir != "" {
		return bundleDir, nil
	}
	exe, err := os.Executable()
	if err != nil {
		return "", err
	}
	return filepath.Dir(exe), nil
}
