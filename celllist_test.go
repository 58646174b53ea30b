package flow

import "testing"

// poolCell is a reusable cell for exercising the realize/release
// lifecycle directly.
type poolCell struct {
	item     int
	index    int
	updates  int
	resets   int
	disposed bool
}

func (c *poolCell) PrefWidth(height float32) float32 { return 10 }
func (c *poolCell) PrefHeight(width float32) float32 { return 10 }
func (c *poolCell) Reusable() bool                   { return true }
func (c *poolCell) Update(item int)                  { c.item = item; c.updates++ }
func (c *poolCell) UpdateIndex(index int)            { c.index = index }
func (c *poolCell) Reset()                           { c.resets++ }
func (c *poolCell) Dispose()                         { c.disposed = true }

func newPoolList(n int) (*lazyCellList[int, *poolCell], *int) {
	items := make([]int, n)
	for i := range items {
		items[i] = i * 100
	}
	created := 0
	l := newLazyCellList(NewItemList(items...), func(item int) *poolCell {
		created++
		return &poolCell{item: item}
	})
	return l, &created
}

func TestLazyCellList_RealizeMemoizes(t *testing.T) {
	l, created := newPoolList(10)

	s1 := l.get(3)
	s2 := l.get(3)
	if s1 != s2 {
		t.Error("Expected repeated get to return the same state")
	}
	if *created != 1 {
		t.Errorf("Expected one factory call, got %d", *created)
	}
	if s1.cell.item != 300 || s1.cell.index != 3 {
		t.Errorf("Expected cell bound to item 300 at index 3, got %d at %d", s1.cell.item, s1.cell.index)
	}
}

func TestLazyCellList_ReleaseRebindsFromPool(t *testing.T) {
	l, created := newPoolList(10)

	first := l.get(0).cell
	l.release(0)
	if first.resets != 1 {
		t.Errorf("Expected released cell to be reset once, got %d", first.resets)
	}
	if first.disposed {
		t.Error("Expected reusable cell to be pooled, not disposed")
	}

	second := l.get(5).cell
	if second != first {
		t.Error("Expected the pooled cell to be rebound")
	}
	if second.item != 500 || second.index != 5 {
		t.Errorf("Expected rebinding to item 500 at index 5, got %d at %d", second.item, second.index)
	}
	if *created != 1 {
		t.Errorf("Expected no second factory call, got %d", *created)
	}

	// Releasing an unrealized index is a no-op.
	l.release(7)
	if l.realizedCount() != 1 {
		t.Errorf("Expected 1 realized cell, got %d", l.realizedCount())
	}
}

func TestLazyCellList_ForceAndUnpin(t *testing.T) {
	l, _ := newPoolList(10)

	l.force(4)
	s, ok := l.ifRealized(4)
	if !ok || !s.pinned {
		t.Fatal("Expected force to realize and pin index 4")
	}

	l.unpin(4)
	if s.pinned {
		t.Error("Expected unpin to clear the flag")
	}
	l.unpin(9) // unrealized: no-op
}

func TestLazyCellList_ApplyChangeShiftsIndices(t *testing.T) {
	l, _ := newPoolList(20)
	for i := 4; i <= 9; i++ {
		l.get(i)
	}

	removed := l.get(5).cell
	l.applyChange(ItemsChange{From: 5, Removed: 2})

	if !removedOrPooled(l, removed) {
		t.Error("Expected the removed cell to leave the realized set")
	}
	if l.realizedCount() != 4 {
		t.Errorf("Expected 4 surviving cells, got %d", l.realizedCount())
	}
	// The cell that displayed item index 7 now displays index 5.
	s, ok := l.ifRealized(5)
	if !ok {
		t.Fatal("Expected a cell at index 5 after the shift")
	}
	if s.cell.item != 700 {
		t.Errorf("Expected item 700 at index 5, got %d", s.cell.item)
	}
	if s.cell.index != 5 || s.index != 5 {
		t.Errorf("Expected cell reindexed to 5, got cell=%d state=%d", s.cell.index, s.index)
	}

	// Insertions shift the realized set the other way.
	l.applyChange(ItemsChange{From: 0, Added: 3})
	if _, ok := l.ifRealized(5); ok {
		t.Error("Expected no cell left at index 5 after insertion")
	}
	s, ok = l.ifRealized(8)
	if !ok || s.cell.item != 700 {
		t.Error("Expected the item-700 cell at index 8 after insertion")
	}
}

func removedOrPooled(l *lazyCellList[int, *poolCell], c *poolCell) bool {
	for _, s := range l.states {
		if s.cell == c {
			return false
		}
	}
	return true
}

func TestLazyCellList_RealizedSortedByIndex(t *testing.T) {
	l, _ := newPoolList(10)
	for _, i := range []int{7, 2, 9, 0} {
		l.get(i)
	}

	states := l.realized()
	want := []int{0, 2, 7, 9}
	if len(states) != len(want) {
		t.Fatalf("Expected %d states, got %d", len(want), len(states))
	}
	for i, s := range states {
		if s.index != want[i] {
			t.Errorf("Position %d: expected index %d, got %d", i, want[i], s.index)
		}
	}
}

func TestLazyCellList_DisposeDrainsEverything(t *testing.T) {
	l, _ := newPoolList(10)
	a := l.get(0).cell
	b := l.get(1).cell
	l.release(1) // b goes to the pool

	l.dispose()
	if !a.disposed || !b.disposed {
		t.Error("Expected both realized and pooled cells disposed")
	}
	if l.realizedCount() != 0 {
		t.Errorf("Expected empty realized set, got %d", l.realizedCount())
	}
}
