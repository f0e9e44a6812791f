package errors

import (
	"context"
	"errors"
	"fmt"
	"testing"
)

func TestGetType(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want ErrorType
	}{
		{"not found", NotFoundf("galaxy %s not found", "abc"), ErrorTypeNotFound},
		{"validation", Validation("bad"), ErrorTypeValidation},
		{"wrapped validation", fmt.Errorf("decode: %w", Validationf("width %d", -1)), ErrorTypeValidation},
		{"method", MethodNotAllowed("PUT"), ErrorTypeMethodNotAllowed},
		{"external", WrapExternal("redis", errors.New("down")), ErrorTypeExternal},
		{"canceled", WrapCanceled("build", context.Canceled), ErrorTypeCanceled},
		{"plain error", errors.New("boom"), ErrorTypeInternal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := GetType(tt.err); got != tt.want {
				t.Errorf("GetType = %s, want %s", got, tt.want)
			}
		})
	}
}

func TestAppError_Unwrap(t *testing.T) {
	err := WrapCanceled("galaxy build canceled", context.DeadlineExceeded)

	if !errors.Is(err, context.DeadlineExceeded) {
		t.Error("wrapped cause not reachable through errors.Is")
	}
	if err.Error() != "galaxy build canceled: context deadline exceeded" {
		t.Errorf("Error() = %q", err.Error())
	}
	if MethodNotAllowed("PUT").Error() != "method PUT not allowed" {
		t.Errorf("unexpected message %q", MethodNotAllowed("PUT").Error())
	}
}

func TestIs(t *testing.T) {
	err := fmt.Errorf("connect: %w", WrapExternal("failed to ping Redis", errors.New("refused")))

	if !Is(err, ErrorTypeExternal) {
		t.Error("wrapped external error not detected")
	}
	if Is(err, ErrorTypeInternal) {
		t.Error("external error reported as internal")
	}
	if Is(errors.New("plain"), ErrorTypeInternal) {
		t.Error("plain errors carry no AppError")
	}
}
