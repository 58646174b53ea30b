package flow_test

import (
	"errors"
	"testing"

	"github.com/go-theft-auto/flow"
)

func TestItemList_Mutations(t *testing.T) {
	l := flow.NewItemList("a", "b", "c")

	if l.Len() != 3 {
		t.Fatalf("Expected 3 items, got %d", l.Len())
	}
	if l.At(1) != "b" {
		t.Errorf("Expected item b at index 1, got %q", l.At(1))
	}

	l.Append("d", "e")
	if l.Len() != 5 || l.At(4) != "e" {
		t.Errorf("Expected 5 items ending in e, got %d items", l.Len())
	}

	if err := l.Insert(1, "x"); err != nil {
		t.Fatalf("Insert failed: %v", err)
	}
	if l.At(1) != "x" || l.At(2) != "b" {
		t.Errorf("Expected insert to shift b to index 2, got %q, %q", l.At(1), l.At(2))
	}

	if err := l.Remove(0, 2); err != nil {
		t.Fatalf("Remove failed: %v", err)
	}
	if l.Len() != 4 || l.At(0) != "b" {
		t.Errorf("Expected b at the front after removal, got %q", l.At(0))
	}

	if err := l.Set(0, "B"); err != nil {
		t.Fatalf("Set failed: %v", err)
	}
	if l.At(0) != "B" {
		t.Errorf("Expected B after Set, got %q", l.At(0))
	}
}

func TestItemList_RangeErrors(t *testing.T) {
	l := flow.NewItemList(1, 2, 3)

	if _, err := l.Get(3); !errors.Is(err, flow.ErrIndexOutOfRange) {
		t.Errorf("Expected ErrIndexOutOfRange from Get(3), got %v", err)
	}
	if _, err := l.Get(-1); !errors.Is(err, flow.ErrIndexOutOfRange) {
		t.Errorf("Expected ErrIndexOutOfRange from Get(-1), got %v", err)
	}
	if v, err := l.Get(2); err != nil || v != 3 {
		t.Errorf("Expected Get(2) = 3, got %d, %v", v, err)
	}

	if err := l.Insert(4, 9); !errors.Is(err, flow.ErrIndexOutOfRange) {
		t.Errorf("Expected ErrIndexOutOfRange from Insert past the end, got %v", err)
	}
	if err := l.Remove(2, 2); !errors.Is(err, flow.ErrIndexOutOfRange) {
		t.Errorf("Expected ErrIndexOutOfRange from Remove past the end, got %v", err)
	}
	if err := l.Set(3, 9); !errors.Is(err, flow.ErrIndexOutOfRange) {
		t.Errorf("Expected ErrIndexOutOfRange from Set(3), got %v", err)
	}
}

func TestItemList_Observe(t *testing.T) {
	l := flow.NewItemList[int]()

	var changes []flow.ItemsChange
	cancel := l.Observe(func(c flow.ItemsChange) {
		changes = append(changes, c)
	})

	l.Append(1, 2, 3)
	if err := l.Insert(1, 9); err != nil {
		t.Fatalf("Insert failed: %v", err)
	}
	if err := l.Remove(0, 2); err != nil {
		t.Fatalf("Remove failed: %v", err)
	}
	if err := l.Set(1, 7); err != nil {
		t.Fatalf("Set failed: %v", err)
	}

	want := []flow.ItemsChange{
		{From: 0, Added: 3},
		{From: 1, Added: 1},
		{From: 0, Removed: 2},
		{From: 1, Removed: 1, Added: 1},
	}
	if len(changes) != len(want) {
		t.Fatalf("Expected %d notifications, got %d", len(want), len(changes))
	}
	for i, c := range changes {
		if c != want[i] {
			t.Errorf("Notification %d: expected %+v, got %+v", i, want[i], c)
		}
	}

	cancel()
	cancel() // second cancel is harmless
	l.Append(4)
	if len(changes) != len(want) {
		t.Error("Expected no notifications after cancel")
	}

	// Remove of zero items is a no-op and must not notify.
	before := len(changes)
	l.Observe(func(c flow.ItemsChange) { changes = append(changes, c) })
	if err := l.Remove(0, 0); err != nil {
		t.Fatalf("Remove(0, 0) failed: %v", err)
	}
	if len(changes) != before {
		t.Error("Expected no notification for an empty removal")
	}
}

func TestItemsChange_Delta(t *testing.T) {
	tests := []struct {
		change flow.ItemsChange
		want   int
	}{
		{flow.ItemsChange{From: 0, Added: 3}, 3},
		{flow.ItemsChange{From: 2, Removed: 2}, -2},
		{flow.ItemsChange{From: 1, Removed: 1, Added: 1}, 0},
		{flow.ItemsChange{From: 5, Removed: 2, Added: 5}, 3},
	}
	for _, tt := range tests {
		if got := tt.change.Delta(); got != tt.want {
			t.Errorf("Delta of %+v: expected %d, got %d", tt.change, tt.want, got)
		}
	}
}
