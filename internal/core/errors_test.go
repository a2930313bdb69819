package core

import (
	"errors"
	"fmt"
	"testing"
)

func TestDomainError_Error(t *testing.T) {
	t.Parallel()

	err := ErrValidation(CodeInvalidCandidate, "hue is not finite")
	want := "[validation] INVALID_CANDIDATE: hue is not finite"
	if err.Error() != want {
		t.Fatalf("Error() = %q, want %q", err.Error(), want)
	}

	wrapped := ErrIO(CodeBackupFailed, "writing backup").WithCause(errors.New("disk full"))
	if got := wrapped.Error(); got != "[io] BACKUP_FAILED: writing backup (disk full)" {
		t.Fatalf("Error() with cause = %q", got)
	}
}

func TestDomainError_Unwrap(t *testing.T) {
	t.Parallel()

	cause := errors.New("boom")
	err := ErrDecode(CodeImageDecodeFailed, "decoding png").WithCause(cause)

	if !errors.Is(err, cause) {
		t.Fatal("expected errors.Is to find the cause")
	}
}

func TestDomainError_Is(t *testing.T) {
	t.Parallel()

	a := ErrNotFound("stylesheet", "src/index.css")
	b := ErrNotFound("stylesheet", "other.css")
	if !errors.Is(a, b) {
		t.Fatal("errors with same category and code should match")
	}

	c := ErrValidation(CodeInvalidHex, "bad hex")
	if errors.Is(a, c) {
		t.Fatal("errors with different categories should not match")
	}
}

func TestGetCategory(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  error
		want ErrorCategory
	}{
		{"domain error", ErrState(CodeThemeNotFound, "no themes yet"), ErrCatState},
		{"wrapped domain error", fmt.Errorf("outer: %w", ErrIO(CodeBackupFailed, "backup")), ErrCatIO},
		{"plain error", errors.New("plain"), ErrCatInternal},
		{"nil-ish wrap", fmt.Errorf("no domain here"), ErrCatInternal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := GetCategory(tt.err); got != tt.want {
				t.Fatalf("GetCategory() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestIsCategory(t *testing.T) {
	t.Parallel()

	err := ErrValidation(CodeInvalidConfig, "negative port")
	if !IsCategory(err, ErrCatValidation) {
		t.Fatal("expected validation category")
	}
	if IsCategory(err, ErrCatIO) {
		t.Fatal("did not expect io category")
	}
}

func TestWithDetail(t *testing.T) {
	t.Parallel()

	err := ErrDecode(CodeUnsupportedFormat, "unknown extension").
		WithDetail("path", "logo.webp").
		WithDetail("ext", ".webp")

	if err.Details["path"] != "logo.webp" {
		t.Fatalf("detail path = %v", err.Details["path"])
	}
	if err.Details["ext"] != ".webp" {
		t.Fatalf("detail ext = %v", err.Details["ext"])
	}
}
