// Package platform provides platform detection for the installer.
//
// The core install pipeline is platform-agnostic; this package is the
// single place that inspects the OS, and the result selects the
// integration adapter once at startup.
package platform

import (
	"fmt"
	"os"
	"regexp"
	"runtime"

	"golang.org/x/term"
)

// Kind identifies the family of platform integration to use.
type Kind string

// Supported platform kinds.
const (
	POSIX   Kind = "posix"
	Windows Kind = "windows"
)

// Detect returns the platform kind for the current OS.
func Detect() Kind {
	if runtime.GOOS == "windows" {
		return Windows
	}
	return POSIX
}

// Platform returns a string describing the current platform.
func Platform() string {
	return fmt.Sprintf("%s/%s", runtime.GOOS, runtime.GOARCH)
}

// IsInteractive reports whether the given file descriptor is a
// terminal. Interactive installs require a TTY on stdin.
func IsInteractive(fd int) bool {
	return term.IsTerminal(fd)
}

var systemDrivePattern = regexp.MustCompile(`(?i)%SystemDrive%`)

// ExpandDefaultInstallDir expands the %SystemDrive% token in a default
// install directory on Windows. On POSIX the directory is returned
// unchanged. An unset SystemDrive environment variable is an error,
// matching the installer's historical behavior.
func ExpandDefaultInstallDir(kind Kind, dir string) (string, error) {
	if kind != Windows || !systemDrivePattern.MatchString(dir) {
		return dir, nil
	}
	drive := os.Getenv("SystemDrive")
	if drive == "" {
		return "", fmt.Errorf("'SystemDrive' environment variable is not set")
	}
	return systemDrivePattern.ReplaceAllLiteralString(dir, drive), nil
}
