package errors

import (
	"errors"
	"fmt"
	"testing"
)

func TestExitError_Error(t *testing.T) {
	tests := []struct {
		name string
		err  *ExitError
		want string
	}{
		{
			name: "with underlying error",
			err:  NewExitError(ErrTemplatesNotFound, ExitUser),
			want: "templates not found",
		},
		{
			name: "with wrapped error",
			err:  NewExitError(fmt.Errorf("loading config: %w", ErrInvalidConfig), ExitUser),
			want: "loading config: invalid configuration",
		},
		{
			name: "nil underlying error",
			err:  NewExitError(nil, ExitUser),
			want: "exit code 1",
		},
		{
			name: "success code with error",
			err:  NewExitError(errors.New("unexpected"), ExitSuccess),
			want: "unexpected",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.want {
				t.Errorf("ExitError.Error() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestExitError_Unwrap(t *testing.T) {
	wrapped := fmt.Errorf("resolving templates: %w", ErrTemplatesNotFound)
	exitErr := NewExitError(wrapped, ExitUser)

	if !errors.Is(exitErr, ErrTemplatesNotFound) {
		t.Error("errors.Is should find the sentinel through the ExitError chain")
	}
	if errors.Unwrap(exitErr) != wrapped {
		t.Error("Unwrap should return the underlying error")
	}
}

func TestExitError_As(t *testing.T) {
	var err error = NewUserError(ErrUnknownPlatform, "Run: zc list")

	var exitErr *ExitError
	if !errors.As(err, &exitErr) {
		t.Fatal("errors.As should match *ExitError")
	}
	if exitErr.Code != ExitUser {
		t.Errorf("Code = %d, want %d", exitErr.Code, ExitUser)
	}
	if exitErr.Suggestion != "Run: zc list" {
		t.Errorf("Suggestion = %q", exitErr.Suggestion)
	}
}

func TestNewSystemError(t *testing.T) {
	err := NewSystemError(errors.New("disk full"), "Free up disk space")
	if err.Code != ExitSystem {
		t.Errorf("Code = %d, want %d", err.Code, ExitSystem)
	}
}

func TestNewConfigError(t *testing.T) {
	err := NewConfigError(ErrInvalidConfig)
	if err.Code != ExitUser {
		t.Errorf("Code = %d, want %d", err.Code, ExitUser)
	}
	if err.Suggestion == "" {
		t.Error("expected a suggestion")
	}
}
