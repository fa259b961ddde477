package wklprep_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/vvka-141/wklprep/pkg/wklprep"
)

func TestExitCodeForError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"nil error", nil, wklprep.ExitSuccess},
		{"general error", errors.New("something went wrong"), wklprep.ExitGeneralError},
		{"unknown flag", errors.New("unknown flag: --foo"), wklprep.ExitUsageError},
		{"unknown shorthand flag", errors.New("unknown shorthand flag: 'x' in -x"), wklprep.ExitUsageError},
		{"accepts args", errors.New("accepts 1 arg(s), received 0"), wklprep.ExitUsageError},
		{"invalid argument", errors.New(`invalid argument "abc" for "--thread-id"`), wklprep.ExitUsageError},
		{"invalid config", wklprep.ErrInvalidConfig, wklprep.ExitConfigError},
		{"unknown parameter", fmt.Errorf("%w: FOO", wklprep.ErrUnknownParameter), wklprep.ExitConfigError},
		{"wrapped duration", fmt.Errorf("DURTIME: %w", wklprep.ErrInvalidDuration), wklprep.ExitDurationError},
		{"password", wklprep.ErrInvalidPassword, wklprep.ExitPasswordError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := wklprep.ExitCodeForError(tt.err); got != tt.want {
				t.Errorf("ExitCodeForError(%v) = %d, want %d", tt.err, got, tt.want)
			}
		})
	}
}

func TestInputs_Validate(t *testing.T) {
	if err := (wklprep.Inputs{ThreadID: 3}).Validate(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := (wklprep.Inputs{}).Validate(); err != nil {
		t.Fatalf("zero thread id should be valid: %v", err)
	}

	err := (wklprep.Inputs{ThreadID: -1}).Validate()
	if !errors.Is(err, wklprep.ErrInvalidConfig) {
		t.Fatalf("expected ErrInvalidConfig, got %v", err)
	}
}
