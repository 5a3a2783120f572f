package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	pyerrors "github.com/pybundle/pyinstall/internal/errors"
)

// BundleFile is the metadata file name, expected next to the template tree.
const BundleFile = "bundle.yaml"

// DefaultTemplateDir is the template tree directory name used when the
// metadata does not specify one.
const DefaultTemplateDir = "INSTALLDIR"

// DefaultPlaceholder is the build-time sentinel path baked into
// relocatable files. It is deliberately long so that any realistic
// install path fits within its reserved width, and distinctive enough
// that it cannot occur in user data by accident.
const DefaultPlaceholder = "/tmp/pybundle-------------------------------------------please-run-the-install-script-------------------------------------------"

// Features holds build-time feature flags for optional install steps.
type Features struct {
	// AllowSetRunPath exposes the RPATH-rootify step. Set at build
	// time depending on how the bundle was produced.
	AllowSetRunPath bool `yaml:"allow_set_runpath"`

	// PyWin32 marks bundles that ship the pywin32 extensions and need
	// the Windows registry cleanup during integration.
	PyWin32 bool `yaml:"pywin32"`
}

// Bundle describes the runtime bundle being installed. Loaded once
// from bundle.yaml and treated as immutable.
type Bundle struct {
	Product           string   `yaml:"product"`
	Version           string   `yaml:"version"`
	DefaultInstallDir string   `yaml:"default_install_dir"`
	Placeholder       string   `yaml:"placeholder"`
	TemplateDir       string   `yaml:"template_dir"`
	DocsURL           string   `yaml:"docs_url"`
	FeedbackEmail     string   `yaml:"feedback_email"`
	FeedbackURL       string   `yaml:"feedback_url"`
	Features          Features `yaml:"features"`
}

// Default returns a Bundle with baked-in defaults. Used by tests and
// as the base that loaded metadata overrides.
func Default() *Bundle {
	return &Bundle{
		Product:           "Python runtime",
		Version:           "3.11",
		DefaultInstallDir: "/opt/python-3.11",
		Placeholder:       DefaultPlaceholder,
		TemplateDir:       DefaultTemplateDir,
	}
}

// Load reads and validates bundle.yaml from the given directory
// (normally the directory containing the installer binary).
func Load(dir string) (*Bundle, error) {
	path := filepath.Join(dir, BundleFile)
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, pyerrors.WrapPath(pyerrors.ErrCodeConfig, "failed to read bundle metadata", path, err)
	}

	b := &Bundle{}
	if err := yaml.Unmarshal(data, b); err != nil {
		return nil, pyerrors.WrapPath(pyerrors.ErrCodeConfig, "failed to parse bundle metadata", path, err)
	}

	b.applyDefaults()
	if err := b.Validate(); err != nil {
		return nil, err
	}
	return b, nil
}

// applyDefaults fills absent optional fields.
func (b *Bundle) applyDefaults() {
	if b.Product == "" {
		b.Product = "Python runtime"
	}
	if b.TemplateDir == "" {
		b.TemplateDir = DefaultTemplateDir
	}
	if b.Placeholder == "" {
		b.Placeholder = DefaultPlaceholder
	}
	if b.DefaultInstallDir == "" && b.Version != "" {
		b.DefaultInstallDir = "/opt/python-" + b.Version
	}
}

// Validate checks that the metadata is usable for an install.
func (b *Bundle) Validate() error {
	if b.Version == "" {
		return pyerrors.Wrap(pyerrors.ErrCodeConfig, "bundle metadata missing version", nil)
	}
	if b.Placeholder == "" {
		return pyerrors.Wrap(pyerrors.ErrCodeConfig, "bundle metadata missing placeholder path", nil)
	}
	if !strings.HasPrefix(b.Placeholder, "/") && !isWindowsAbs(b.Placeholder) {
		return pyerrors.Wrap(pyerrors.ErrCodeConfig,
			fmt.Sprintf("placeholder path must be absolute: %s", b.Placeholder), nil)
	}
	if b.DefaultInstallDir == "" {
		return pyerrors.Wrap(pyerrors.ErrCodeConfig, "bundle metadata missing default install dir", nil)
	}
	return nil
}

// TemplatePath returns the absolute path of the template tree under dir.
func (b *Bundle) TemplatePath(dir string) string {
	return filepath.Join(dir, b.TemplateDir)
}

// DocURL returns the web documentation URL, expanding the {version}
// token in the configured template.
func (b *Bundle) DocURL() string {
	if b.DocsURL == "" {
		return ""
	}
	return strings.ReplaceAll(b.DocsURL, "{version}", b.Version)
}

// Interpreter returns the versioned interpreter name, e.g. "python3.11".
func (b *Bundle) Interpreter() string {
	return "python" + b.Version
}

// isWindowsAbs reports whether p looks like an absolute Windows path
// (drive letter or %SystemDrive% prefix).
func isWindowsAbs(p string) bool {
	if strings.HasPrefix(strings.ToLower(p), "%systemdrive%") {
		return true
	}
	return len(p) >= 3 && p[1] == ':' && (p[2] == '\\' || p[2] == '/')
}
