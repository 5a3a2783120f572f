package relocate

import (
	"os"
	"strings"

	pyerrors "github.com/pybundle/pyinstall/internal/errors"
)

// ManifestPath is the relocation manifest's location relative to the
// install directory. The manifest is written at build time and lists
// every file carrying the placeholder path, one relative path per line.
const ManifestPath = "lib/reloc.txt"

// ReadManifest reads a relocation manifest and returns the listed
// relative paths in file order. Blank lines and surrounding whitespace
// are ignored. A missing manifest returns ErrManifestMissing.
func ReadManifest(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, pyerrors.ErrManifestMissing
		}
		return nil, pyerrors.WrapPath(pyerrors.ErrCodeIO, "failed to read relocation manifest", path, err)
	}

	var entries []string
	for _, line := range strings.Split(string(data), "\n") {
		entry := strings.TrimSpace(line)
		if entry == "" {
			continue
		}
		entries = append(entries, entry)
	}
	return entries, nil
}
