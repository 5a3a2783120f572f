//go:build !windows

package adapter

import (
	pyerrors "github.com/pybundle/pyinstall/internal/errors"
	"github.com/pybundle/pyinstall/internal/executor"
)

// newWindowsAdapter is unavailable off Windows; selecting it is a
// platform error rather than a silent no-op.
func newWindowsAdapter(exec executor.CommandExecutor) (Adapter, error) {
	return nil, pyerrors.ErrUnsupportedPlatform
}
