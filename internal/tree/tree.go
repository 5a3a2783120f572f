// Package tree materializes the bundle's template tree at the install
// destination.
//
// Copy preserves symlink structure: links are recreated pointing at
// their original targets, never followed. Copying into an existing
// directory merges, matching the dirs_exist_ok behavior installers
// need when a user re-installs over a previous location. There is no
// rollback; an interrupted copy leaves a partial destination.
package tree

import (
	"io"
	"os"
	"path/filepath"

	"github.com/mitchellh/go-homedir"

	pyerrors "github.com/pybundle/pyinstall/internal/errors"
	"github.com/pybundle/pyinstall/internal/logger"
)

// ValidateTarget normalizes an install target and checks it is usable.
// The path has ~ expanded and is made absolute. If the path exists it
// must be a directory.
func ValidateTarget(path string) (string, error) {
	if path == "" {
		return "", pyerrors.Validation("install directory cannot be empty")
	}

	expanded, err := homedir.Expand(path)
	if err != nil {
		return "", pyerrors.WrapPath(pyerrors.ErrCodeValidation, "failed to expand home directory", path, err)
	}

	abs, err := filepath.Abs(filepath.Clean(expanded))
	if err != nil {
		return "", pyerrors.WrapPath(pyerrors.ErrCodeValidation, "failed to resolve absolute path", expanded, err)
	}

	info, err := os.Stat(abs)
	if err != nil {
		if os.IsNotExist(err) {
			return abs, nil
		}
		return "", pyerrors.WrapPath(pyerrors.ErrCodeIO, "failed to stat target", abs, err)
	}
	if !info.IsDir() {
		return "", pyerrors.NotDirectory(abs)
	}
	return abs, nil
}

// Exists reports whether the path exists on the filesystem.
func Exists(path string) bool {
	_, err := os.Lstat(path)
	return err == nil
}

// Copy recursively copies the template tree at src to dst, preserving
// symlinks, file modes and modification times. dst and intermediate
// directories are created as needed; existing directories are merged
// into, existing files are overwritten.
func Copy(src, dst string) error {
	info, err := os.Lstat(src)
	if err != nil {
		return pyerrors.WrapPath(pyerrors.ErrCodeIO, "failed to read template tree", src, err)
	}
	if !info.IsDir() {
		return pyerrors.WrapPath(pyerrors.ErrCodeIO, "template tree is not a directory", src, nil)
	}
	return copyDir(src, dst)
}

func copyDir(src, dst string) error {
	srcInfo, err := os.Stat(src)
	if err != nil {
		return pyerrors.WrapPath(pyerrors.ErrCodeIO, "failed to stat directory", src, err)
	}

	if err := os.MkdirAll(dst, srcInfo.Mode().Perm()); err != nil {
		return pyerrors.WrapPath(pyerrors.ErrCodeIO, "failed to create directory", dst, err)
	}

	entries, err := os.ReadDir(src)
	if err != nil {
		return pyerrors.WrapPath(pyerrors.ErrCodeIO, "failed to read directory", src, err)
	}

	for _, entry := range entries {
		srcPath := filepath.Join(src, entry.Name())
		dstPath := filepath.Join(dst, entry.Name())

		info, err := os.Lstat(srcPath)
		if err != nil {
			return pyerrors.WrapPath(pyerrors.ErrCodeIO, "failed to stat entry", srcPath, err)
		}

		switch {
		case info.Mode()&os.ModeSymlink != 0:
			if err := copySymlink(srcPath, dstPath); err != nil {
				return err
			}
		case info.IsDir():
			if err := copyDir(srcPath, dstPath); err != nil {
				return err
			}
		default:
			if err := copyFile(srcPath, dstPath, info); err != nil {
				return err
			}
		}
	}
	return nil
}

// copySymlink recreates the link at dst with src's target. Dangling
// links are recreated as-is; relocation may make them valid at the
// new location.
func copySymlink(src, dst string) error {
	target, err := os.Readlink(src)
	if err != nil {
		return pyerrors.WrapPath(pyerrors.ErrCodeIO, "failed to read symlink", src, err)
	}
	if Exists(dst) {
		if err := os.Remove(dst); err != nil {
			return pyerrors.WrapPath(pyerrors.ErrCodeIO, "failed to replace existing entry", dst, err)
		}
	}
	if err := os.Symlink(target, dst); err != nil {
		return pyerrors.WrapPath(pyerrors.ErrCodeIO, "failed to create symlink", dst, err)
	}
	logger.Debug("linked %s -> %s", dst, target)
	return nil
}

func copyFile(src, dst string, info os.FileInfo) error {
	in, err := os.Open(src)
	if err != nil {
		return pyerrors.WrapPath(pyerrors.ErrCodeIO, "failed to open file", src, err)
	}
	defer in.Close()

	out, err := os.OpenFile(dst, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, info.Mode().Perm())
	if err != nil {
		return pyerrors.WrapPath(pyerrors.ErrCodeIO, "failed to create file", dst, err)
	}

	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		return pyerrors.WrapPath(pyerrors.ErrCodeIO, "failed to copy file", dst, err)
	}
	if err := out.Close(); err != nil {
		return pyerrors.WrapPath(pyerrors.ErrCodeIO, "failed to close file", dst, err)
	}

	// Best-effort; a lost mtime is not worth failing the install
	if err := os.Chtimes(dst, info.ModTime(), info.ModTime()); err != nil {
		logger.Debug("could not preserve mtime on %s: %v", dst, err)
	}
	return nil
}
