package models

import (
	"strings"
	"testing"
)

func TestNewItemName(t *testing.T) {
	t.Run("valid single character", func(t *testing.T) {
		n, err := NewItemName("a")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if n.String() != "a" {
			t.Fatalf("expected %q, got %q", "a", n.String())
		}
	})

	t.Run("valid normal name", func(t *testing.T) {
		n, err := NewItemName("Sample Item")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if n.String() != "Sample Item" {
			t.Fatalf("expected %q, got %q", "Sample Item", n.String())
		}
	})

	t.Run("surrounding whitespace is preserved, not normalized", func(t *testing.T) {
		n, err := NewItemName("  Widget ")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if n.String() != "  Widget " {
			t.Fatalf("expected untrimmed %q, got %q", "  Widget ", n.String())
		}
	})

	t.Run("long name is allowed", func(t *testing.T) {
		s := strings.Repeat("x", 1000)
		if _, err := NewItemName(s); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("empty string returns error", func(t *testing.T) {
		_, err := NewItemName("")
		if err == nil {
			t.Fatal("expected error, got nil")
		}
	})

	t.Run("whitespace-only returns error", func(t *testing.T) {
		for _, s := range []string{" ", "   ", "\t", "\n", " \t\n "} {
			if _, err := NewItemName(s); err == nil {
				t.Errorf("expected error for %q, got nil", s)
			}
		}
	})
}

func TestItemName_String(t *testing.T) {
	n := ItemName("hello")
	if n.String() != "hello" {
		t.Fatalf("expected %q, got %q", "hello", n.String())
	}
}
