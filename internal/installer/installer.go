// Package installer orchestrates the install pipeline: validate the
// target, materialize the template tree, relocate path-dependent
// files, configure bundled Qt, run platform integration, and assemble
// the final report.
//
// The pipeline is strictly sequential with no rollback: a failing or
// interrupted step leaves whatever was already written. Configuration
// and validation problems are caught before the first mutation.
package installer

import (
	"path/filepath"

	"github.com/pybundle/pyinstall/internal/adapter"
	"github.com/pybundle/pyinstall/internal/config"
	pyerrors "github.com/pybundle/pyinstall/internal/errors"
	"github.com/pybundle/pyinstall/internal/executor"
	"github.com/pybundle/pyinstall/internal/logger"
	"github.com/pybundle/pyinstall/internal/openssl"
	"github.com/pybundle/pyinstall/internal/platform"
	"github.com/pybundle/pyinstall/internal/qtconf"
	"github.com/pybundle/pyinstall/internal/relocate"
	"github.com/pybundle/pyinstall/internal/tree"
)

// Options are the per-install choices, resolved from flags or prompts
// before the pipeline starts.
type Options struct {
	InstallDir      string
	UseEnvShebang   bool
	SetRunPath      bool
	RegisterModules bool
	PathAdditions   bool
}

// Installer runs the install pipeline. All collaborators are injected
// so the pipeline itself stays platform-agnostic and testable.
type Installer struct {
	Bundle  *config.Bundle
	Kind    platform.Kind
	Exec    executor.CommandExecutor
	Adapter adapter.Adapter

	// SourceDir is the directory holding the template tree, normally
	// the directory containing the installer binary.
	SourceDir string
}

// Run executes the full pipeline and returns the install report.
func (inst *Installer) Run(opts Options) (*Report, error) {
	target, err := tree.ValidateTarget(opts.InstallDir)
	if err != nil {
		return nil, err
	}

	// The placeholder's byte length is the reserved width for
	// length-sensitive files; a longer target can never be
	// substituted safely, so reject it before any mutation.
	if len(target) > len(inst.Bundle.Placeholder) {
		return nil, pyerrors.Overflow(target)
	}

	src := inst.Bundle.TemplatePath(inst.SourceDir)
	logger.Info("installing %s to %s", inst.Bundle.Product, target)
	if err := tree.Copy(src, target); err != nil {
		return nil, err
	}

	relocation, err := relocate.Run(target, inst.Bundle.Placeholder)
	if err != nil {
		return nil, err
	}

	shebangs := 0
	if opts.UseEnvShebang && inst.Kind == platform.POSIX {
		shebangs, err = relocate.RewriteShebangs(filepath.Join(target, "bin"), inst.Bundle.Interpreter())
		if err != nil {
			return nil, err
		}
	}

	qtNote, err := qtconf.Configure(inst.Kind, target)
	if err != nil {
		return nil, err
	}

	err = inst.Adapter.Integrate(adapter.IntegrateContext{
		InstallDir:      target,
		Bundle:          inst.Bundle,
		SetRunPath:      opts.SetRunPath && inst.Bundle.Features.AllowSetRunPath,
		RegisterModules: opts.RegisterModules,
		PathAdditions:   opts.PathAdditions,
	})
	if err != nil {
		return nil, err
	}

	// Advisory only; a missing openssl tool or empty candidate set
	// degrades to "not found" in the report.
	rec := openssl.NewRanker(inst.Exec).Recommend()

	return &Report{
		Product:      inst.Bundle.Product,
		InstallDir:   target,
		PathGuidance: inst.Adapter.PathGuidance(target),
		QtNote:       qtNote,
		OpenSSL:      rec,
		Relocation:   relocation,
		Shebangs:     shebangs,
		DocPath: filepath.Join(target, "doc",
			"python"+inst.Bundle.Version, "index.html"),
		WebDoc:        inst.Bundle.DocURL(),
		FeedbackEmail: inst.Bundle.FeedbackEmail,
		FeedbackURL:   inst.Bundle.FeedbackURL,
	}, nil
}
