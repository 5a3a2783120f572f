package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/pybundle/pyinstall/internal/adapter"
	"github.com/pybundle/pyinstall/internal/config"
	pyerrors "github.com/pybundle/pyinstall/internal/errors"
	"github.com/pybundle/pyinstall/internal/executor"
	"github.com/pybundle/pyinstall/internal/input"
	"github.com/pybundle/pyinstall/internal/installer"
	"github.com/pybundle/pyinstall/internal/output"
	"github.com/pybundle/pyinstall/internal/platform"
	"github.com/pybundle/pyinstall/internal/tree"
	"github.com/spf13/cobra"
)

var (
	installDir        string
	useEnvShebang     bool
	setRunPath        bool
	noComRegistration bool
	noPathAdditions   bool
)

var installCmd = &cobra.Command{
	Use:   "install",
	Short: "Install the bundled Python runtime",
	Long: `Install the bundled Python runtime to a chosen directory.

Without --install-dir the install is interactive: you are prompted for
the destination and the optional integration steps. With --install-dir
the install runs without interaction.

There is no rollback: interrupting the install leaves a partially
populated destination directory.

Examples:
  pyinstall install
  pyinstall install -I /opt/python-3.11
  pyinstall install -I /opt/python-3.11 -e --no-path-additions`,
	RunE: runInstall,
}

func init() {
	installCmd.Flags().StringVarP(&installDir, "install-dir", "I", "", "Install directory (disables interactive prompts)")
	installCmd.Flags().BoolVarP(&useEnvShebang, "use-env-shebang", "e", false, "Rewrite script shebangs to use /usr/bin/env (ignored on Windows)")
	installCmd.Flags().BoolVar(&setRunPath, "set-runpath", false, "Set a root RUNPATH on bundled shared objects (requires patchelf)")
	installCmd.Flags().BoolVarP(&noComRegistration, "no-com-registration", "c", false, "Do not register the bundled pywin32 COM objects (Windows only)")
	installCmd.Flags().BoolVar(&noPathAdditions, "no-path-additions", false, "Do not add directories to PATH (Windows only)")

	rootCmd.AddCommand(installCmd)
}

func runInstall(cmd *cobra.Command, args []string) error {
	srcDir, err := resolveBundleDir()
	if err != nil {
		return fmt.Errorf("failed to locate bundle: %w", err)
	}

	bundle, err := config.Load(srcDir)
	if err != nil {
		return err
	}

	kind := platform.Detect()
	exec := executor.NewSystemExecutor()

	integration, err := adapter.New(kind, exec)
	if err != nil {
		return err
	}

	opts := installer.Options{
		InstallDir:      installDir,
		UseEnvShebang:   useEnvShebang,
		SetRunPath:      setRunPath,
		RegisterModules: !noComRegistration,
		PathAdditions:   !noPathAdditions,
	}

	if opts.InstallDir == "" {
		if !platform.IsInteractive(int(os.Stdin.Fd())) {
			return pyerrors.ErrNoTTY
		}
		proceed, err := promptOptions(input.NewStdinReader(), os.Stdout, kind, bundle, &opts)
		if err != nil {
			return err
		}
		if !proceed {
			output.Print("Aborting install.")
			return nil
		}
	}

	inst := &installer.Installer{
		Bundle:    bundle,
		Kind:      kind,
		Exec:      exec,
		Adapter:   integration,
		SourceDir: srcDir,
	}

	report, err := inst.Run(opts)
	if err != nil {
		return err
	}

	if jsonOutput {
		return output.JSON(report)
	}
	output.Block(report.Render())
	return nil
}

// promptOptions runs the interactive flow: destination first, then the
// platform-specific integration questions. Returns false when the user
// declines to install over an existing directory.
func promptOptions(reader input.Reader, out io.Writer, kind platform.Kind, bundle *config.Bundle, opts *installer.Options) (bool, error) {
	def, err := platform.ExpandDefaultInstallDir(kind, bundle.DefaultInstallDir)
	if err != nil {
		return false, pyerrors.Wrap(pyerrors.ErrCodeConfig, "failed to resolve default install dir", err)
	}

	dir, err := input.AskInstallDir(reader, out, bundle.Product, def)
	if err != nil {
		return false, err
	}

	target, err := tree.ValidateTarget(dir)
	if err != nil {
		return false, err
	}
	if tree.Exists(target) {
		output.Warn("'%s' already exists. Installing over an existing installation may have unexpected results.", dir)
		choice, err := input.AskYesNo(reader, out, "Proceed?", input.No)
		if err != nil {
			return false, err
		}
		if choice != input.Yes {
			return false, nil
		}
	}
	opts.InstallDir = target

	if kind == platform.Windows {
		// Flags that already disabled a step are a conscious choice;
		// only ask about the steps still enabled.
		if opts.RegisterModules && bundle.Features.PyWin32 {
			choice, err := input.AskYesNo(reader, out, "Do you want to register the pywin32 COM objects?", input.Yes)
			if err != nil {
				return false, err
			}
			opts.RegisterModules = choice == input.Yes
		}
		if opts.PathAdditions {
			choice, err := input.AskYesNo(reader, out, "Do you want to add directories to PATH?", input.Yes)
			if err != nil {
				return false, err
			}
			opts.PathAdditions = choice == input.Yes
		}
		return true, nil
	}

	if !opts.UseEnvShebang {
		choice, err := input.AskYesNo(reader, out,
			"Do you want to rewrite the shebang lines of scripts to use /usr/bin/env?", input.No)
		if err != nil {
			return false, err
		}
		opts.UseEnvShebang = choice == input.Yes
	}
	if bundle.Features.AllowSetRunPath && !opts.SetRunPath {
		choice, err := input.AskYesNo(reader, out,
			"Do you want to set a RUNPATH pointing at the root directory? (Note that patchelf needs to be installed on your system)", input.No)
		if err != nil {
			return false, err
		}
		opts.SetRunPath = choice == input.Yes
	}
	return true, nil
}
