package flow

import "fmt"

// cellPositioner distinguishes cells that are merely realized for
// measurement from cells that are placed at a viewport-relative
// position. The placed ("visible") window is always index-contiguous.
type cellPositioner[T any, C Cell[T]] struct {
	cells  *lazyCellList[T, C]
	orient axis
	sizes  *sizeTracker[T, C]

	hasWindow bool
	first     int
	last      int
}

func newCellPositioner[T any, C Cell[T]](cells *lazyCellList[T, C], orient axis, sizes *sizeTracker[T, C]) *cellPositioner[T, C] {
	return &cellPositioner[T, C]{cells: cells, orient: orient, sizes: sizes}
}

// sizedState realizes index i and guarantees it has been measured at
// the current cell layout breadth. The returned state carries no valid
// placement unless the index is inside the visible window; callers
// using it for measurement must not rely on its position beyond the
// current pass.
func (p *cellPositioner[T, C]) sizedState(i int) *cellState[T, C] {
	s := p.cells.get(i)
	breadth := p.sizes.cellLayoutBreadth()
	if s.sized && s.breadth == breadth {
		return s
	}
	s.prefB = p.orient.prefBreadth(s.cell)
	// Measuring a cell wider than everything seen so far grows the
	// layout breadth; measure the length at the grown value so the
	// fixed-point loop converges instead of oscillating.
	breadth = maxf(breadth, s.prefB)
	s.length = p.orient.prefLength(s.cell, breadth)
	s.breadth = breadth
	s.sized = true
	p.sizes.invalidate()
	return s
}

// ifVisible returns the state for i only if i is currently placed.
func (p *cellPositioner[T, C]) ifVisible(i int) (*cellState[T, C], bool) {
	if !p.hasWindow || i < p.first || i > p.last {
		return nil, false
	}
	s, ok := p.cells.ifRealized(i)
	if !ok || !s.visible {
		return nil, false
	}
	return s, true
}

// visibleState returns the state for an index known to be visible.
// Asking for a non-visible index is a control-flow bug in the engine
// or the caller, not a recoverable condition.
func (p *cellPositioner[T, C]) visibleState(i int) *cellState[T, C] {
	s, ok := p.ifVisible(i)
	if !ok {
		panic(fmt.Sprintf("flow: cell %d is not visible", i))
	}
	return s
}

func (p *cellPositioner[T, C]) firstVisible() (int, bool) {
	return p.first, p.hasWindow
}

func (p *cellPositioner[T, C]) lastVisible() (int, bool) {
	return p.last, p.hasWindow
}

// placeStartAt sizes cell i and places its start edge at the given
// offset from the viewport start. Offsets may be negative (the cell
// begins before the viewport).
func (p *cellPositioner[T, C]) placeStartAt(i int, offset float32) *cellState[T, C] {
	s := p.sizedState(i)
	s.offset = offset
	s.visible = true
	return s
}

// placeEndAt sizes cell i and places its end edge at the given offset
// from the viewport start.
func (p *cellPositioner[T, C]) placeEndAt(i int, end float32) *cellState[T, C] {
	s := p.sizedState(i)
	s.offset = end - s.length
	s.visible = true
	return s
}

// shiftWindow translates every placed cell by delta along the length
// axis.
func (p *cellPositioner[T, C]) shiftWindow(delta float32) {
	if !p.hasWindow || delta == 0 {
		return
	}
	for i := p.first; i <= p.last; i++ {
		if s, ok := p.cells.ifRealized(i); ok && s.visible {
			s.offset += delta
		}
	}
}

// setWindow records the contiguous placed range [first, last].
func (p *cellPositioner[T, C]) setWindow(first, last int) {
	p.hasWindow = true
	p.first = first
	p.last = last
}

// clearWindow unplaces everything.
func (p *cellPositioner[T, C]) clearWindow() {
	for _, s := range p.cells.states {
		s.visible = false
	}
	p.hasWindow = false
}
