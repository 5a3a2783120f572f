// Package qtconf configures a bundled Qt distribution after install.
//
// Bundles that ship Qt carry it under <install>/Qt. Qt resolves its
// own install prefix through qt.conf, so after relocation the
// installer writes fresh qt.conf files pointing at the new location:
// one in Qt/bin, and one next to the interpreter (the install root on
// Windows, <install>/bin on POSIX).
package qtconf

import (
	"os"
	"path/filepath"
	"strings"

	pyerrors "github.com/pybundle/pyinstall/internal/errors"
	"github.com/pybundle/pyinstall/internal/logger"
	"github.com/pybundle/pyinstall/internal/platform"
)

// Configure writes qt.conf files when the install carries a Qt/
// directory, and returns the note to include in the install report.
// Installs without bundled Qt return an empty note and write nothing.
func Configure(kind platform.Kind, installDir string) (string, error) {
	qtPath := filepath.Join(installDir, "Qt")
	if _, err := os.Stat(qtPath); err != nil {
		if os.IsNotExist(err) {
			return "", nil
		}
		return "", pyerrors.WrapPath(pyerrors.ErrCodeIO, "failed to stat Qt directory", qtPath, err)
	}

	if err := writeConf(filepath.Join(qtPath, "bin"), qtPath); err != nil {
		return "", err
	}

	if kind == platform.Windows {
		// Windows needs a second qt.conf in the python base dir
		if err := writeConf(installDir, qtPath); err != nil {
			return "", err
		}
		return "\nQt is bundled with this build\n", nil
	}

	// POSIX needs the second qt.conf next to the interpreter
	if err := writeConf(filepath.Join(installDir, "bin"), qtPath); err != nil {
		return "", err
	}
	note := "\nQt is bundled with this build, to enable it:\n\n" +
		"    export LD_LIBRARY_PATH=$LD_LIBRARY_PATH:" + installDir + "/Qt/lib\n"
	return note, nil
}

// writeConf writes a qt.conf in dir with the given prefix. Backslashes
// are doubled because qt.conf uses the INI escape syntax.
func writeConf(dir, qtPath string) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return pyerrors.WrapPath(pyerrors.ErrCodeIO, "failed to create directory", dir, err)
	}

	path := filepath.Join(dir, "qt.conf")
	content := "[Paths]\nPrefix = " + strings.ReplaceAll(qtPath, `\`, `\\`)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		return pyerrors.WrapPath(pyerrors.ErrCodeIO, "failed to write qt.conf", path, err)
	}
	logger.Debug("wrote %s", path)
	return nil
}
