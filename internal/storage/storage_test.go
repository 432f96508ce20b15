package storage

import (
	"fmt"
	"sync"
	"testing"

	"github.com/eugenenazirov/cash-payout/internal/calculator"
)

func TestNewMemoryStorageIsEmpty(t *testing.T) {
	t.Parallel()

	store := NewMemoryStorage()

	got, err := store.List()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got == nil || len(got) != 0 {
		t.Fatalf("expected empty non-nil list, got %v", got)
	}
}

func TestAppendKeepsInsertionOrder(t *testing.T) {
	t.Parallel()

	store := NewMemoryStorage()
	for _, id := range []string{"a", "b", "c"} {
		if err := store.Append(entry(id, 100)); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}

	got, err := store.List()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 3 || got[0].ID != "a" || got[2].ID != "c" {
		t.Fatalf("unexpected entries %v", got)
	}

	// ensure mutation safety
	got[0].ID = "mutated"
	again, err := store.List()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if again[0].ID != "a" {
		t.Fatalf("expected defensive copy, got %v", again[0].ID)
	}
}

func TestReplaceSwapsWholeList(t *testing.T) {
	t.Parallel()

	store := NewMemoryStorage()
	if err := store.Append(entry("old", 1)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	replacement := []calculator.Entry{entry("x", 10), entry("y", 20)}
	if err := store.Replace(replacement); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	replacement[0].ID = "mutated"

	got, err := store.List()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 2 || got[0].ID != "x" || got[1].ID != "y" {
		t.Fatalf("unexpected entries %v", got)
	}
}

func TestClearRemovesEverything(t *testing.T) {
	t.Parallel()

	store := NewMemoryStorage()
	if err := store.Replace([]calculator.Entry{entry("a", 1), entry("b", 2)}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := store.Clear(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got, err := store.List()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("expected empty list, got %v", got)
	}
}

func TestMemoryStorageConcurrentAccess(t *testing.T) {
	store := NewMemoryStorage()
	var wg sync.WaitGroup

	for i := 0; i < 32; i++ {
		wg.Add(2)

		go func(offset int) {
			defer wg.Done()
			if err := store.Append(entry(fmt.Sprintf("e-%d", offset), float64(offset))); err != nil {
				t.Errorf("Append failed: %v", err)
			}
		}(i)

		go func() {
			defer wg.Done()
			if _, err := store.List(); err != nil {
				t.Errorf("List failed: %v", err)
			}
		}()
	}

	wg.Wait()

	got, err := store.List()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 32 {
		t.Fatalf("expected 32 entries, got %d", len(got))
	}
}

func entry(id string, raw float64) calculator.Entry {
	return calculator.Entry{ID: id, Payout: calculator.Payout{Raw: raw}}
}
