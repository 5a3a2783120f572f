// Package adapter performs the OS-specific integration steps that run
// after relocation.
//
// The core install pipeline is platform-agnostic; everything that
// differs between operating systems lives behind the Adapter
// interface, selected once at startup from the detected platform kind.
// The POSIX variant covers RPATH rewriting; the Windows variant covers
// registry PATH additions and pywin32 registry cleanup.
package adapter

import (
	"github.com/pybundle/pyinstall/internal/config"
	pyerrors "github.com/pybundle/pyinstall/internal/errors"
	"github.com/pybundle/pyinstall/internal/executor"
	"github.com/pybundle/pyinstall/internal/platform"
)

// IntegrateContext carries the install result and the user's
// integration choices into the adapter.
type IntegrateContext struct {
	InstallDir string
	Bundle     *config.Bundle

	// SetRunPath requests RPATH rootification (POSIX only, and only
	// when the bundle enables it).
	SetRunPath bool

	// RegisterModules requests pywin32 registry integration (Windows only).
	RegisterModules bool

	// PathAdditions requests search-path updates (Windows only; POSIX
	// installs only print guidance).
	PathAdditions bool
}

// Adapter is the interface platform integrations must implement.
type Adapter interface {
	// Name returns the adapter name (posix, windows)
	Name() string

	// Integrate performs the platform-specific post-install side
	// effects for the given context.
	Integrate(ctx IntegrateContext) error

	// PathGuidance returns the report paragraph telling the user how
	// the install directory reaches their search path. The wording is
	// the adapter's: .bashrc on POSIX, the Path value on Windows.
	PathGuidance(installDir string) string
}

// New selects the adapter for the detected platform kind.
func New(kind platform.Kind, exec executor.CommandExecutor) (Adapter, error) {
	switch kind {
	case platform.POSIX:
		return NewPosixAdapter(exec), nil
	case platform.Windows:
		return newWindowsAdapter(exec)
	default:
		return nil, pyerrors.ErrUnsupportedPlatform
	}
}

// MockAdapter is a mock implementation for testing.
type MockAdapter struct {
	IntegrateFunc func(ctx IntegrateContext) error
	Contexts      []IntegrateContext
	Guidance      string
}

// Name returns the mock adapter name.
func (m *MockAdapter) Name() string { return "mock" }

// Integrate records the context and calls the mock function.
func (m *MockAdapter) Integrate(ctx IntegrateContext) error {
	m.Contexts = append(m.Contexts, ctx)
	if m.IntegrateFunc != nil {
		return m.IntegrateFunc(ctx)
	}
	return nil
}

// PathGuidance returns the configured guidance text.
func (m *MockAdapter) PathGuidance(installDir string) string {
	return m.Guidance
}
