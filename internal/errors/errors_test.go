package errors

import (
	"fmt"
	"testing"
)

func TestInstallError_Error(t *testing.T) {
	tests := []struct {
		name string
		err  *InstallError
		want string
	}{
		{
			name: "message only",
			err:  &InstallError{Code: ErrCodeConfig, Message: "invalid bundle metadata"},
			want: "invalid bundle metadata",
		},
		{
			name: "with path",
			err:  &InstallError{Code: ErrCodeValidation, Message: "target exists and is not a directory", Path: "/opt/python"},
			want: "/opt/python: target exists and is not a directory",
		},
		{
			name: "with wrapped error",
			err:  &InstallError{Code: ErrCodeIO, Message: "failed to copy tree", Err: fmt.Errorf("disk full")},
			want: "failed to copy tree: disk full",
		},
		{
			name: "with path and wrapped error",
			err:  &InstallError{Code: ErrCodeIO, Message: "failed to write", Path: "/opt/python/bin/python3", Err: fmt.Errorf("permission denied")},
			want: "/opt/python/bin/python3: failed to write: permission denied",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.want {
				t.Errorf("Error() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestInstallError_Is(t *testing.T) {
	err := NotDirectory("/opt/python")

	if !Is(err, ErrNotDirectory) {
		t.Error("NotDirectory error should match ErrNotDirectory")
	}
	if Is(err, ErrManifestMissing) {
		t.Error("NotDirectory error should not match ErrManifestMissing")
	}
	if Is(err, fmt.Errorf("plain error")) {
		t.Error("InstallError should not match a plain error")
	}
}

func TestOverflow(t *testing.T) {
	err := Overflow("/opt/python/bin/python3")

	if !Is(err, ErrPlaceholderOverflow) {
		t.Error("Overflow error should match ErrPlaceholderOverflow")
	}

	var instErr *InstallError
	if !As(err, &instErr) {
		t.Fatal("Overflow should return an *InstallError")
	}
	if instErr.Code != ErrCodeConfig {
		t.Errorf("expected code %s, got %s", ErrCodeConfig, instErr.Code)
	}
	if instErr.Path != "/opt/python/bin/python3" {
		t.Errorf("expected path to be preserved, got %q", instErr.Path)
	}
}

func TestWrap_Unwrap(t *testing.T) {
	inner := fmt.Errorf("read-only filesystem")
	err := WrapPath(ErrCodeIO, "failed to relocate", "/opt/python/bin/pip", inner)

	var instErr *InstallError
	if !As(err, &instErr) {
		t.Fatal("expected an *InstallError")
	}
	if instErr.Unwrap() != inner {
		t.Error("Unwrap should return the wrapped error")
	}
}
