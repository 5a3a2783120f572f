package adapter

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// MergePathList prepends newPaths to current, dropping empty entries
// and deduplicating while preserving first occurrence. This is the
// semantics the Windows adapter applies to the HKCU Environment Path
// value; it is kept platform-neutral so the behavior is testable
// everywhere.
func MergePathList(newPaths, current []string) []string {
	var merged []string
	seen := make(map[string]bool)
	for _, p := range append(append([]string{}, newPaths...), current...) {
		if p == "" || seen[p] {
			continue
		}
		seen[p] = true
		merged = append(merged, p)
	}
	return merged
}

// installPathEntries lists the directories the install contributes to
// the Windows search path, in precedence order. Qt\bin is included
// only when the bundle ships Qt.
func installPathEntries(installDir string) []string {
	entries := []string{
		installDir,
		filepath.Join(installDir, "DLLs"),
		filepath.Join(installDir, "Scripts"),
		filepath.Join(installDir, "Tools"),
		filepath.Join(installDir, "Tools", "ninja"),
	}
	qtBin := filepath.Join(installDir, "Qt", "bin")
	if _, err := os.Stat(qtBin); err == nil {
		entries = append(entries, qtBin)
	}
	return entries
}

// windowsPathGuidance renders the Windows report paragraph around the
// Path line.
func windowsPathGuidance(installDir string) string {
	return fmt.Sprintf("You can add the following to your Path to ensure\nthe installed tools are found:\n\n    Path=%s;%%Path%%",
		strings.Join(installPathEntries(installDir), ";"))
}
