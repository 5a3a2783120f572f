package relocate

import (
	"bytes"
	"os"
	"path/filepath"

	pyerrors "github.com/pybundle/pyinstall/internal/errors"
	"github.com/pybundle/pyinstall/internal/logger"
)

// Shebang rewrites a python shebang line to use /usr/bin/env, making
// the script independent of the install location. Returns true when
// the file was modified. Files without a python shebang, and binary
// files, are left untouched.
func Shebang(path, interpreter string) (bool, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return false, pyerrors.WrapPath(pyerrors.ErrCodeIO, "failed to read script", path, err)
	}

	if !bytes.HasPrefix(data, []byte("#!")) || bytes.IndexByte(data, 0) >= 0 {
		return false, nil
	}

	end := bytes.IndexByte(data, '\n')
	if end < 0 {
		end = len(data)
	}
	line := data[:end]
	if !bytes.Contains(line, []byte("python")) {
		return false, nil
	}

	newLine := []byte("#!/usr/bin/env " + interpreter)
	if bytes.Equal(line, newLine) {
		return false, nil
	}

	info, err := os.Stat(path)
	if err != nil {
		return false, pyerrors.WrapPath(pyerrors.ErrCodeIO, "failed to stat script", path, err)
	}

	updated := append(newLine, data[end:]...)
	if err := os.WriteFile(path, updated, info.Mode().Perm()); err != nil {
		return false, pyerrors.WrapPath(pyerrors.ErrCodeIO, "failed to write script", path, err)
	}
	return true, nil
}

// RewriteShebangs applies Shebang to every regular file directly under
// binDir. Scripts that cannot be parsed as shebang files are skipped.
func RewriteShebangs(binDir, interpreter string) (int, error) {
	entries, err := os.ReadDir(binDir)
	if err != nil {
		if os.IsNotExist(err) {
			logger.Debug("no bin directory at %s, skipping shebang rewrite", binDir)
			return 0, nil
		}
		return 0, pyerrors.WrapPath(pyerrors.ErrCodeIO, "failed to read bin directory", binDir, err)
	}

	count := 0
	for _, entry := range entries {
		if entry.IsDir() || entry.Type()&os.ModeSymlink != 0 {
			continue
		}
		path := filepath.Join(binDir, entry.Name())
		modified, err := Shebang(path, interpreter)
		if err != nil {
			return count, err
		}
		if modified {
			logger.Debug("rewrote shebang in %s", entry.Name())
			count++
		}
	}
	return count, nil
}
