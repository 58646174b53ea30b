package flow

import "sort"

// cellState wraps a realized cell with the engine-side geometry the
// cell itself doesn't know about: measured size, placement, and
// retention flags.
type cellState[T any, C Cell[T]] struct {
	cell  C
	index int

	// Measurement. breadth records the layout breadth the length was
	// measured at, so a grown layout breadth invalidates the length.
	// prefB is the cell's own unconstrained breadth.
	breadth float32
	length  float32
	prefB   float32
	sized   bool

	// Placement. offset is the start edge relative to the viewport
	// start along the length axis, valid only while visible.
	visible bool
	offset  float32

	// pinned keeps the cell realized regardless of visibility.
	pinned bool
}

func (s *cellState[T, C]) end() float32 {
	return s.offset + s.length
}

// lazyCellList is the memoizing index→cell table. Cells are created on
// first access via the factory, preferentially rebinding a pooled
// reusable cell instead of allocating. Realization and release notify
// the owner through invalidate so derived size estimates stay fresh.
type lazyCellList[T any, C Cell[T]] struct {
	items      *ItemList[T]
	factory    func(T) C
	states     map[int]*cellState[T, C]
	pool       []C
	invalidate func()
}

func newLazyCellList[T any, C Cell[T]](items *ItemList[T], factory func(T) C) *lazyCellList[T, C] {
	return &lazyCellList[T, C]{
		items:      items,
		factory:    factory,
		states:     make(map[int]*cellState[T, C]),
		invalidate: func() {},
	}
}

// get realizes or fetches the cell for index i. The index must already
// be validated against the item list; the engine clamps or checks all
// indices before reaching this point.
func (l *lazyCellList[T, C]) get(i int) *cellState[T, C] {
	if s, ok := l.states[i]; ok {
		return s
	}
	item := l.items.At(i)
	var cell C
	if n := len(l.pool); n > 0 {
		cell = l.pool[n-1]
		l.pool = l.pool[:n-1]
		cell.Update(item)
	} else {
		cell = l.factory(item)
	}
	cell.UpdateIndex(i)
	s := &cellState[T, C]{cell: cell, index: i}
	l.states[i] = s
	l.invalidate()
	return s
}

// ifRealized returns the state for i only if the index is currently
// backed by a cell.
func (l *lazyCellList[T, C]) ifRealized(i int) (*cellState[T, C], bool) {
	s, ok := l.states[i]
	return s, ok
}

// force realizes index i and pins it, keeping the cell alive across
// passes independent of visibility.
func (l *lazyCellList[T, C]) force(i int) {
	l.get(i).pinned = true
}

// release drops index i from the realized set. Reusable cells are
// reset and parked in the pool for rebinding; others are disposed.
func (l *lazyCellList[T, C]) release(i int) {
	s, ok := l.states[i]
	if !ok {
		return
	}
	delete(l.states, i)
	if s.cell.Reusable() {
		s.cell.Reset()
		l.pool = append(l.pool, s.cell)
	} else {
		s.cell.Dispose()
	}
	l.invalidate()
}

// unpin clears the retention flag set by force.
func (l *lazyCellList[T, C]) unpin(i int) {
	if s, ok := l.states[i]; ok {
		s.pinned = false
	}
}

// realized returns the realized states in index order. The slice is
// rebuilt per call; callers must not retain it across mutations.
func (l *lazyCellList[T, C]) realized() []*cellState[T, C] {
	out := make([]*cellState[T, C], 0, len(l.states))
	for _, s := range l.states {
		out = append(out, s)
	}
	sort.Slice(out, func(a, b int) bool { return out[a].index < out[b].index })
	return out
}

func (l *lazyCellList[T, C]) realizedCount() int {
	return len(l.states)
}

// applyChange reconciles the realized set with an item list mutation:
// cells in the replaced range are released, survivors after it shift
// by the net index delta.
func (l *lazyCellList[T, C]) applyChange(c ItemsChange) {
	for i := c.From; i < c.From+c.Removed; i++ {
		l.release(i)
	}
	delta := c.Delta()
	if delta == 0 {
		return
	}
	// Rebuild the map rather than mutate it during iteration.
	shifted := make(map[int]*cellState[T, C], len(l.states))
	for i, s := range l.states {
		if i >= c.From+c.Removed {
			s.index = i + delta
			s.cell.UpdateIndex(s.index)
			shifted[i+delta] = s
		} else {
			shifted[i] = s
		}
	}
	l.states = shifted
	l.invalidate()
}

// dispose releases every realized cell and drains the reuse pool.
func (l *lazyCellList[T, C]) dispose() {
	for _, s := range l.states {
		s.cell.Dispose()
	}
	l.states = make(map[int]*cellState[T, C])
	for _, c := range l.pool {
		c.Dispose()
	}
	l.pool = nil
	l.invalidate()
}
