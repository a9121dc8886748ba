package utils

import (
	"sort"
	"testing"
	"time"

	"github.com/google/uuid"
)

func TestNewAccountID_ValidUUID(t *testing.T) {
	id := NewAccountID()

	parsed, err := uuid.Parse(id)
	if err != nil {
		t.Fatalf("expected a valid UUID, got %q: %v", id, err)
	}
	if parsed.Version() != 7 {
		t.Errorf("expected UUID version 7, got version %d", parsed.Version())
	}
}

func TestNewAccountID_Unique(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		id := NewAccountID()
		if seen[id] {
			t.Fatalf("duplicate identifier generated: %s", id)
		}
		seen[id] = true
	}
}

func TestNewAccountID_TimeOrdered(t *testing.T) {
	first := NewAccountID()
	time.Sleep(2 * time.Millisecond)
	second := NewAccountID()

	ids := []string{second, first}
	sort.Strings(ids)
	if ids[0] != first {
		t.Errorf("expected %s to sort before %s", first, second)
	}
}
