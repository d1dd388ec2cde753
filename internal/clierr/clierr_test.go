package clierr

import (
	"errors"
	"fmt"
	"testing"
)

func TestHasCodeThroughWrapping(t *testing.T) {
	base := Newf(ChoreNotFound, "chore not found: #%d", 4)
	wrapped := fmt.Errorf("loading chore: %w", base)

	if !HasCode(wrapped, ChoreNotFound) {
		t.Fatalf("expected wrapped error to carry %s", ChoreNotFound)
	}
	if HasCode(wrapped, DuplicateName) {
		t.Errorf("unexpected code match for %s", DuplicateName)
	}
	if HasCode(errors.New("plain"), ChoreNotFound) {
		t.Errorf("plain error must not match a code")
	}
}

func TestIsNotFound(t *testing.T) {
	tests := []struct {
		code string
		want bool
	}{
		{ChoreNotFound, true},
		{IntervalNotFound, true},
		{TagNotFound, true},
		{DuplicateName, false},
		{InvalidDuration, false},
	}
	for _, tt := range tests {
		if got := IsNotFound(New(tt.code, "x")); got != tt.want {
			t.Errorf("IsNotFound(%s) = %v, want %v", tt.code, got, tt.want)
		}
	}
}

func TestExitCode(t *testing.T) {
	if got := New(InternalError, "boom").ExitCode(); got != 2 {
		t.Errorf("InternalError exit code = %d, want 2", got)
	}
	if got := New(DuplicateName, "dup").ExitCode(); got != 1 {
		t.Errorf("DuplicateName exit code = %d, want 1", got)
	}
}
