//go:build windows

package adapter

import (
	"path/filepath"
	"strings"
	"syscall"
	"unsafe"

	"golang.org/x/sys/windows/registry"

	pyerrors "github.com/pybundle/pyinstall/internal/errors"
	"github.com/pybundle/pyinstall/internal/executor"
	"github.com/pybundle/pyinstall/internal/logger"
)

// WindowsAdapter integrates installs on Windows: it clears stale
// pywin32 module registrations, registers the bundled sample COM
// servers, wires the Pythonwin help file into the registry, and
// prepends the install layout to the per-user Path.
type WindowsAdapter struct {
	exec executor.CommandExecutor
}

func newWindowsAdapter(exec executor.CommandExecutor) (Adapter, error) {
	return &WindowsAdapter{exec: exec}, nil
}

// Name returns the adapter name.
func (a *WindowsAdapter) Name() string { return "windows" }

// Integrate applies the requested registry-level integration. The
// pywin32 steps run only for bundles that ship the extensions; of
// those, only COM registration is subject to the user's choice —
// stale Modules keys break module resolution for the bundled
// extensions, so that cleanup always runs.
func (a *WindowsAdapter) Integrate(ctx IntegrateContext) error {
	if ctx.Bundle != nil && ctx.Bundle.Features.PyWin32 {
		if err := clearPyWin32Modules(ctx.Bundle.Version); err != nil {
			logger.Warn("could not clear pywin32 registry entries: %v", err)
		}

		if ctx.RegisterModules {
			registerCOMServers(a.exec, ctx.InstallDir)
		}

		if err := setPythonwinHelpKey(ctx.Bundle.Version, ctx.InstallDir); err != nil {
			logger.Info("could not set the Pythonwin help registry key: %v", err)
		}
		if err := ensureGenPyDir(ctx.InstallDir); err != nil {
			logger.Warn("could not create the win32com gen_py directory: %v", err)
		}
	}

	if !ctx.PathAdditions {
		return nil
	}
	return updateUserPath(installPathEntries(ctx.InstallDir))
}

// PathGuidance returns the Path paragraph for the install report.
func (a *WindowsAdapter) PathGuidance(installDir string) string {
	return windowsPathGuidance(installDir)
}

// updateUserPath prepends entries to the HKCU Environment Path value
// and broadcasts the settings change so new shells pick it up.
func updateUserPath(entries []string) error {
	key, err := registry.OpenKey(registry.CURRENT_USER, "Environment", registry.QUERY_VALUE|registry.SET_VALUE)
	if err != nil {
		return pyerrors.Wrap(pyerrors.ErrCodePlatform, "failed to open HKCU Environment key", err)
	}
	defer key.Close()

	current, _, err := key.GetStringValue("Path")
	if err != nil && err != registry.ErrNotExist {
		return pyerrors.Wrap(pyerrors.ErrCodePlatform, "failed to read Path value", err)
	}

	merged := MergePathList(entries, strings.Split(current, ";"))
	if err := key.SetExpandStringValue("Path", strings.Join(merged, ";")); err != nil {
		return pyerrors.Wrap(pyerrors.ErrCodePlatform, "failed to write Path value", err)
	}

	broadcastEnvironmentChange()
	logger.Info("prepended %d directories to the user Path", len(entries))
	return nil
}

// clearPyWin32Modules removes stale pythoncom/pywintypes Modules keys
// left by previous installs, under both machine and user hives.
func clearPyWin32Modules(version string) error {
	var lastErr error
	for _, name := range []string{"pythoncom", "pywintypes"} {
		keyName := `Software\Python\PythonCore\` + version + `\Modules\` + name
		for _, root := range []registry.Key{registry.LOCAL_MACHINE, registry.CURRENT_USER} {
			// Absent keys are fine; only report real failures
			if err := registry.DeleteKey(root, keyName+`\Debug`); err != nil && err != registry.ErrNotExist {
				lastErr = err
			}
			if err := registry.DeleteKey(root, keyName); err != nil && err != registry.ErrNotExist {
				lastErr = err
			}
		}
	}
	return lastErr
}

// setPythonwinHelpKey points the Pythonwin Reference help entry at the
// bundled help file. The key lands under the machine hive when it is
// writable, otherwise under the user hive.
func setPythonwinHelpKey(version, installDir string) error {
	rootName := `Software\Python\PythonCore\` + version
	root, err := registry.OpenKey(registry.LOCAL_MACHINE, rootName, registry.CREATE_SUB_KEY)
	if err != nil {
		root, err = registry.OpenKey(registry.CURRENT_USER, rootName, registry.CREATE_SUB_KEY)
		if err != nil {
			return err
		}
	}
	defer root.Close()

	key, _, err := registry.CreateKey(root, `Help\Pythonwin Reference`, registry.SET_VALUE)
	if err != nil {
		return err
	}
	defer key.Close()

	chm := filepath.Join(installDir, "Doc", "Pythonwin.chm")
	return key.SetStringValue("", chm)
}

// broadcastEnvironmentChange sends WM_SETTINGCHANGE for "Environment"
// so running shells are told the user Path changed.
func broadcastEnvironmentChange() {
	const (
		hwndBroadcast   = 0xffff
		wmSettingChange = 0x001a
		smtoAbortIfHung = 0x0002
	)

	user32 := syscall.NewLazyDLL("user32.dll")
	proc := user32.NewProc("SendMessageTimeoutW")
	env, err := syscall.UTF16PtrFromString("Environment")
	if err != nil {
		return
	}
	_, _, _ = proc.Call(hwndBroadcast, wmSettingChange, 0,
		uintptr(unsafe.Pointer(env)), smtoAbortIfHung, 5000, 0)
}
