package flow

// sizeTracker derives the viewport dimensions and the sampled size
// estimates from whatever cells happen to be realized. All derived
// values are invalidated on mutation and recomputed lazily on read;
// reads always reflect the latest completed mutation.
//
// Exactness is deliberately out of reach: a true total extent would
// require realizing every item, which defeats virtualization. The
// estimates are extrapolations bounded by the realized set's size and
// they improve as more content is visited.
type sizeTracker[T any, C Cell[T]] struct {
	orient axis
	cells  *lazyCellList[T, C]

	viewportSize Vec2

	// Visible window anchor, reported by the navigator after each
	// pass: index of the first placed cell and its start edge offset.
	windowSet    bool
	windowFirst  int
	windowOffset float32

	// Cached aggregates over the realized set.
	dirty      bool
	maxBreadth float32
	avgLength  float32
	avgKnown   bool
}

func newSizeTracker[T any, C Cell[T]](orient axis, cells *lazyCellList[T, C]) *sizeTracker[T, C] {
	t := &sizeTracker[T, C]{orient: orient, cells: cells, dirty: true}
	cells.invalidate = t.invalidate
	return t
}

func (t *sizeTracker[T, C]) invalidate() {
	t.dirty = true
}

func (t *sizeTracker[T, C]) setViewportSize(size Vec2) {
	t.viewportSize = size
}

func (t *sizeTracker[T, C]) viewportBreadth() float32 {
	return t.orient.breadthOf(t.viewportSize)
}

func (t *sizeTracker[T, C]) viewportLength() float32 {
	return t.orient.lengthOf(t.viewportSize)
}

// setWindow records the first visible cell and its in-viewport offset.
// Called by the navigator whenever the visible window shifts; clearing
// happens with ok=false when nothing is placed.
func (t *sizeTracker[T, C]) setWindow(first int, offset float32, ok bool) {
	t.windowSet = ok
	t.windowFirst = first
	t.windowOffset = offset
}

func (t *sizeTracker[T, C]) recompute() {
	if !t.dirty {
		return
	}
	t.maxBreadth = 0
	t.avgKnown = false
	var sum float32
	var n int
	for _, s := range t.cells.states {
		if !s.sized {
			continue
		}
		t.maxBreadth = maxf(t.maxBreadth, s.prefB)
		sum += s.length
		n++
	}
	if n > 0 {
		t.avgLength = sum / float32(n)
		t.avgKnown = true
	}
	t.dirty = false
}

// maxCellBreadth is the widest breadth observed among realized cells.
// The true maximum may be held by a cell that was never realized; the
// under-report is a documented approximation, not corrected.
func (t *sizeTracker[T, C]) maxCellBreadth() float32 {
	t.recompute()
	return t.maxBreadth
}

// cellLayoutBreadth is the breadth cells are laid out at: at least the
// viewport, wider if some realized cell wants more.
func (t *sizeTracker[T, C]) cellLayoutBreadth() float32 {
	return maxf(t.viewportBreadth(), t.maxCellBreadth())
}

// totalBreadthEstimate is the cross-axis content extent, ok=false
// before any cell has been measured.
func (t *sizeTracker[T, C]) totalBreadthEstimate() (float32, bool) {
	t.recompute()
	if !t.avgKnown {
		return 0, false
	}
	return t.maxBreadth, true
}

// averageLengthEstimate is the mean measured length over realized
// cells, ok=false if none has been measured yet.
func (t *sizeTracker[T, C]) averageLengthEstimate() (float32, bool) {
	t.recompute()
	return t.avgLength, t.avgKnown
}

// totalLengthEstimate extrapolates the scroll-axis content extent as
// average length × item count. Exact only under uniform lengths or
// full realization.
func (t *sizeTracker[T, C]) totalLengthEstimate() (float32, bool) {
	avg, ok := t.averageLengthEstimate()
	if !ok {
		return 0, false
	}
	return avg * float32(t.cells.items.Len()), true
}

// lengthOffsetEstimate is the estimated number of pixels scrolled past:
// the extrapolated extent of all items strictly before the first
// visible one, plus how far that cell's start sits above the viewport
// start.
func (t *sizeTracker[T, C]) lengthOffsetEstimate() float32 {
	if !t.windowSet {
		return 0
	}
	avg, ok := t.averageLengthEstimate()
	if !ok {
		return 0
	}
	return avg*float32(t.windowFirst) - t.windowOffset
}
