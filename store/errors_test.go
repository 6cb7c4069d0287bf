package store

import (
	"errors"
	"fmt"
	"testing"
)

func TestAsError(t *testing.T) {
	t.Run("nil", func(t *testing.T) {
		if AsError(nil) != nil {
			t.Fatal("expected nil")
		}
	})

	t.Run("passes typed errors through", func(t *testing.T) {
		original := NotFound("x")
		wrapped := fmt.Errorf("lookup: %w", original)
		if got := AsError(wrapped); got != original {
			t.Fatalf("expected original error, got %v", got)
		}
	})

	t.Run("wraps unknown errors as internal", func(t *testing.T) {
		sentinel := errors.New("socket closed")
		got := AsError(sentinel)
		if got.Code != CodeInternal {
			t.Fatalf("expected code %d, got %d", CodeInternal, got.Code)
		}
		if got.Message != "socket closed" {
			t.Fatalf("unexpected message %q", got.Message)
		}
		if !errors.Is(got, sentinel) {
			t.Fatal("expected cause to be preserved")
		}
	})
}

func TestErrorIsMatchesCode(t *testing.T) {
	if !errors.Is(NotFound("a"), ErrNotFound) {
		t.Fatal("expected NotFound to match ErrNotFound")
	}
	if errors.Is(NotFound("a"), ErrDuplicateKey) {
		t.Fatal("expected codes to differ")
	}
}

func TestErrorString(t *testing.T) {
	err := NewError(CodeBadValue, "bad %s", "body")
	if got := err.Error(); got != "store error 2 (BadValue): bad body" {
		t.Fatalf("unexpected message %q", got)
	}
	custom := &Error{Code: 9001, Message: "odd"}
	if got := custom.Error(); got != "store error 9001: odd" {
		t.Fatalf("unexpected message %q", got)
	}
}
