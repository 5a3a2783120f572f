// Package relocate rewrites the build-time placeholder path inside
// already-materialized files to the real install path.
//
// Bundles are built against a long sentinel path because the final
// install location is unknown at build time. After the template tree
// is copied, every file listed in the relocation manifest is rewritten
// in place. Text files are rewritten freely. Binary files carry the
// path in length-sensitive structures (compiled shebangs, embedded C
// strings), so substitution is fixed-width: the real path is
// NUL-padded to the placeholder's byte length, and an install path
// longer than the placeholder is rejected rather than truncated.
package relocate

import (
	"bytes"
	"os"
	"path/filepath"

	pyerrors "github.com/pybundle/pyinstall/internal/errors"
	"github.com/pybundle/pyinstall/internal/logger"
)

// Result summarizes a relocation pass.
type Result struct {
	Processed int `json:"processed"` // manifest entries whose file existed
	Rewritten int `json:"rewritten"` // files that contained the placeholder
	Skipped   int `json:"skipped"`   // manifest entries with no file on disk
}

// File substitutes every occurrence of placeholder in the file at path
// with installDir, writing the result back in place. Returns true when
// the file was modified. A file that does not contain the placeholder
// is left untouched; running File twice is therefore a no-op.
func File(path, placeholder, installDir string) (bool, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return false, pyerrors.WrapPath(pyerrors.ErrCodeIO, "failed to read file", path, err)
	}

	old := []byte(placeholder)
	if !bytes.Contains(data, old) {
		return false, nil
	}

	// NUL bytes mark a binary file; those need fixed-width substitution
	// so embedded string lengths and offsets survive the rewrite.
	replacement := []byte(installDir)
	if bytes.IndexByte(data, 0) >= 0 {
		if len(replacement) > len(old) {
			return false, pyerrors.Overflow(path)
		}
		padded := make([]byte, len(old))
		copy(padded, replacement)
		replacement = padded
	}

	info, err := os.Stat(path)
	if err != nil {
		return false, pyerrors.WrapPath(pyerrors.ErrCodeIO, "failed to stat file", path, err)
	}

	updated := bytes.ReplaceAll(data, old, replacement)
	if err := os.WriteFile(path, updated, info.Mode().Perm()); err != nil {
		return false, pyerrors.WrapPath(pyerrors.ErrCodeIO, "failed to write file", path, err)
	}
	return true, nil
}

// Run relocates every file listed in the manifest under installDir.
// Manifest entries naming files that do not exist are skipped; a bundle
// without a manifest has nothing to relocate. Read or write failures
// abort the pass, per the installer's no-partial-success model.
func Run(installDir, placeholder string) (Result, error) {
	var res Result

	entries, err := ReadManifest(filepath.Join(installDir, ManifestPath))
	if err != nil {
		if pyerrors.Is(err, pyerrors.ErrManifestMissing) {
			logger.Debug("no relocation manifest under %s", installDir)
			return res, nil
		}
		return res, err
	}

	for _, entry := range entries {
		path := filepath.Join(installDir, entry)
		if _, err := os.Lstat(path); err != nil {
			logger.Debug("manifest entry %s does not exist, skipping", entry)
			res.Skipped++
			continue
		}

		res.Processed++
		modified, err := File(path, placeholder, installDir)
		if err != nil {
			return res, err
		}
		if modified {
			logger.Debug("relocated %s", entry)
			res.Rewritten++
		}
	}

	logger.InfoFields("relocation complete", map[string]interface{}{
		"processed": res.Processed,
		"rewritten": res.Rewritten,
		"skipped":   res.Skipped,
	})
	return res, nil
}
