package adapter

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	pyerrors "github.com/pybundle/pyinstall/internal/errors"
	"github.com/pybundle/pyinstall/internal/executor"
	"github.com/pybundle/pyinstall/internal/logger"
)

// PosixAdapter integrates installs on Linux and macOS. Its only side
// effect is optional RPATH rootification; PATH setup stays a printed
// suggestion because mutating shell startup files is not the
// installer's business.
type PosixAdapter struct {
	exec executor.CommandExecutor
}

// NewPosixAdapter creates a PosixAdapter using the given executor.
func NewPosixAdapter(exec executor.CommandExecutor) *PosixAdapter {
	return &PosixAdapter{exec: exec}
}

// Name returns the adapter name.
func (a *PosixAdapter) Name() string { return "posix" }

// Integrate rootifies the RPATH of bundled shared objects when
// requested. patchelf availability is checked before any object is
// touched so a missing tool cannot leave the libraries half-rewritten.
func (a *PosixAdapter) Integrate(ctx IntegrateContext) error {
	if !ctx.SetRunPath {
		return nil
	}

	if _, err := a.exec.LookPath("patchelf"); err != nil {
		return pyerrors.ErrPatchelfMissing
	}

	objects, err := sharedObjects(filepath.Join(ctx.InstallDir, "lib"))
	if err != nil {
		return err
	}

	for _, obj := range objects {
		if _, err := a.exec.Execute("patchelf", "--set-rpath", "/", obj); err != nil {
			return pyerrors.WrapPath(pyerrors.ErrCodePlatform, "patchelf failed", obj, err)
		}
		logger.Debug("set rpath on %s", obj)
	}
	logger.Info("rootified rpath on %d shared objects", len(objects))
	return nil
}

// PathGuidance returns the .bashrc paragraph for the install report.
func (a *PosixAdapter) PathGuidance(installDir string) string {
	return fmt.Sprintf("You can add the following to your .bashrc (or equivalent)\nto put the installed tools on your PATH:\n\n    export PATH=%s/bin:%s/Tools:%s/Tools/ninja:$PATH",
		installDir, installDir, installDir)
}

// sharedObjects lists the ELF shared objects under dir, including
// versioned names like libpython3.11.so.1.0. Symlinks are excluded so
// each object is patched once.
func sharedObjects(dir string) ([]string, error) {
	var objects []string
	err := filepath.WalkDir(dir, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			if os.IsNotExist(err) && path == dir {
				return filepath.SkipAll
			}
			return err
		}
		if d.IsDir() || d.Type()&os.ModeSymlink != 0 {
			return nil
		}
		name := d.Name()
		if strings.HasSuffix(name, ".so") || strings.Contains(name, ".so.") {
			objects = append(objects, path)
		}
		return nil
	})
	if err != nil {
		return nil, pyerrors.WrapPath(pyerrors.ErrCodeIO, "failed to scan shared objects", dir, err)
	}
	return objects, nil
}
