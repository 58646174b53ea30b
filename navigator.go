package flow

// Gravity selects the anchor edge used when the placed content is
// shorter than the viewport: the block is pushed flush against the
// front (start) or rear (end) edge and the gap appears on the other
// side.
type Gravity int

const (
	GravityFront Gravity = iota
	GravityRear
)

// targetPosition is the pending scroll destination. Exactly one is
// pending at any time; issuing a new one supersedes the old before the
// next fill executes. After every pass the navigator replaces the
// target with the current position, so subsequent passes hold the view.
type targetPosition interface {
	// scrollBy translates the target by a scroll delta along the
	// length axis.
	scrollBy(delta float32) targetPosition

	// transformByChange remaps the target's item index across an item
	// list mutation so the viewport stays on the same content.
	transformByChange(c ItemsChange) targetPosition
}

// anchorStart places the item's start edge at offset from the viewport
// start. Negative offsets start the cell before the viewport.
type anchorStart struct {
	index  int
	offset float32
}

func (t anchorStart) scrollBy(delta float32) targetPosition {
	return anchorStart{index: t.index, offset: t.offset - delta}
}

func (t anchorStart) transformByChange(c ItemsChange) targetPosition {
	return anchorStart{index: transformIndex(t.index, c), offset: t.offset}
}

// anchorEnd places the item's end edge at offset from the viewport
// end. Zero means flush with the rear edge.
type anchorEnd struct {
	index  int
	offset float32
}

func (t anchorEnd) scrollBy(delta float32) targetPosition {
	return anchorEnd{index: t.index, offset: t.offset - delta}
}

func (t anchorEnd) transformByChange(c ItemsChange) targetPosition {
	return anchorEnd{index: transformIndex(t.index, c), offset: t.offset}
}

// nearestEdge brings the item fully into view with the least net
// scroll; a target already fully visible is a no-op.
type nearestEdge struct {
	index int
}

func (t nearestEdge) scrollBy(delta float32) targetPosition {
	return t
}

func (t nearestEdge) transformByChange(c ItemsChange) targetPosition {
	return nearestEdge{index: transformIndex(t.index, c)}
}

func transformIndex(i int, c ItemsChange) int {
	switch {
	case i >= c.From+c.Removed:
		return i + c.Delta()
	case i >= c.From:
		return c.From
	default:
		return i
	}
}

// navigator is the fill state machine. Given the pending target it
// realizes, measures and places cells until the viewport is covered,
// anchors short content per gravity, and releases whatever ended up
// realized but unplaced.
type navigator[T any, C Cell[T]] struct {
	cells      *lazyCellList[T, C]
	positioner *cellPositioner[T, C]
	orient     axis
	gravity    Gravity
	sizes      *sizeTracker[T, C]

	target targetPosition
}

func newNavigator[T any, C Cell[T]](
	cells *lazyCellList[T, C],
	positioner *cellPositioner[T, C],
	orient axis,
	gravity Gravity,
	sizes *sizeTracker[T, C],
) *navigator[T, C] {
	return &navigator[T, C]{
		cells:      cells,
		positioner: positioner,
		orient:     orient,
		gravity:    gravity,
		sizes:      sizes,
		target:     anchorStart{index: 0, offset: 0},
	}
}

func (nav *navigator[T, C]) setTargetPosition(t targetPosition) {
	nav.target = t
}

// scrollTargetPositionBy folds a scroll delta into the pending target.
// Cheap: no absolute recomputation, the next pass does the work.
func (nav *navigator[T, C]) scrollTargetPositionBy(delta float32) {
	nav.target = nav.target.scrollBy(delta)
}

// itemsChanged reconciles the realized cells and the pending target
// with an item list mutation.
func (nav *navigator[T, C]) itemsChanged(c ItemsChange) {
	nav.cells.applyChange(c)
	nav.target = nav.target.transformByChange(c)
	nav.positioner.clearWindow()
	nav.sizes.setWindow(0, 0, false)
}

// pass runs one fill: anchor, fill backward, fill forward, gravity
// adjustment, release. It is atomic within one synchronous call.
func (nav *navigator[T, C]) pass() {
	n := nav.cells.items.Len()
	if n == 0 {
		nav.positioner.clearWindow()
		nav.releaseUnplaced()
		nav.sizes.setWindow(0, 0, false)
		nav.target = anchorStart{}
		return
	}

	anchor := nav.placeAnchor(n)
	first, last := nav.fillViewport(anchor, n)
	first, last = nav.cullOutside(first, last)

	nav.positioner.setWindow(first, last)
	nav.releaseUnplaced()

	firstOffset := nav.placedState(first).offset
	nav.sizes.setWindow(first, firstOffset, true)
	// Hold the resulting view on subsequent passes.
	nav.target = anchorStart{index: first, offset: firstOffset}

	flowLogger.Debug("fill pass", "first", first, "last", last, "offset", firstOffset)
}

// placeAnchor resolves the pending target into one placed cell and
// returns its index.
func (nav *navigator[T, C]) placeAnchor(n int) int {
	vpLen := nav.sizes.viewportLength()

	// Resolve the placement before clearing the window: nearestEdge
	// needs the previous pass's placement to pick the closer edge.
	var (
		i       int
		atStart bool
		offset  float32
	)
	switch t := nav.target.(type) {
	case anchorStart:
		i = clampi(t.index, 0, n-1)
		atStart, offset = true, t.offset
	case anchorEnd:
		i = clampi(t.index, 0, n-1)
		atStart, offset = false, vpLen+t.offset
	case nearestEdge:
		i = clampi(t.index, 0, n-1)
		atStart, offset = nav.resolveNearestEdge(i, vpLen)
	default:
		panic("flow: unknown target position")
	}

	nav.positioner.clearWindow()
	if atStart {
		nav.positioner.placeStartAt(i, offset)
	} else {
		nav.positioner.placeEndAt(i, offset)
	}
	return i
}

// resolveNearestEdge picks the viewport edge that needs the least net
// scroll to reveal item i, based on the previous pass's placement.
func (nav *navigator[T, C]) resolveNearestEdge(i int, vpLen float32) (atStart bool, offset float32) {
	first, okF := nav.positioner.firstVisible()
	last, okL := nav.positioner.lastVisible()
	if !okF || !okL {
		return true, 0
	}
	if i >= first && i <= last {
		if s, ok := nav.cells.ifRealized(i); ok && s.sized {
			switch {
			case s.offset >= 0 && s.end() <= vpLen:
				// Already fully visible: keep it where it is.
				return true, s.offset
			case s.offset < 0 && s.end() > vpLen:
				// Covers the whole viewport: nothing to reveal.
				return true, s.offset
			case s.offset < 0:
				return true, 0
			default:
				return false, vpLen
			}
		}
	}
	if i < first {
		return true, 0
	}
	return false, vpLen
}

// fillViewport grows the placed window around the anchor until the
// viewport is covered or the content runs out, then fixes up front and
// rear gaps. Returns the final window.
func (nav *navigator[T, C]) fillViewport(anchor, n int) (first, last int) {
	vpLen := nav.sizes.viewportLength()
	first, last = anchor, anchor

	for {
		first = nav.fillBackward(first)
		last = nav.fillForward(last, n)

		start := nav.placedState(first).offset
		end := nav.placedState(last).end()

		switch {
		case first == 0 && last == n-1 && end-start <= vpLen:
			// Sparse content: anchor the whole block per gravity.
			if nav.gravity == GravityRear {
				nav.shiftRange(first, last, vpLen-end)
			} else {
				nav.shiftRange(first, last, -start)
			}
			return first, last
		case first == 0 && start > 0:
			// Gap before item 0: pull the block to the front and
			// refill forward.
			nav.shiftRange(first, last, -start)
		case last == n-1 && end < vpLen && first > 0:
			// Gap after the last item: push the block to the rear and
			// refill backward.
			nav.shiftRange(first, last, vpLen-end)
		default:
			return first, last
		}
	}
}

// fillBackward places cells before first until the viewport's front
// edge is covered or item 0 is reached.
func (nav *navigator[T, C]) fillBackward(first int) int {
	for first > 0 && nav.placedState(first).offset > 0 {
		nav.positioner.placeEndAt(first-1, nav.placedState(first).offset)
		first--
	}
	return first
}

// fillForward places cells after last until the viewport's rear edge
// is covered or the last item is reached.
func (nav *navigator[T, C]) fillForward(last, n int) int {
	vpLen := nav.sizes.viewportLength()
	for last < n-1 && nav.placedState(last).end() < vpLen {
		nav.positioner.placeStartAt(last+1, nav.placedState(last).end())
		last++
	}
	return last
}

// cullOutside unplaces cells that ended the fill entirely outside the
// viewport, which happens when the anchor carried a placement far off
// screen. Without this the placed window would grow on every
// incremental scroll.
func (nav *navigator[T, C]) cullOutside(first, last int) (int, int) {
	vpLen := nav.sizes.viewportLength()
	for first < last && nav.placedState(first).end() <= 0 {
		nav.placedState(first).visible = false
		first++
	}
	for last > first && nav.placedState(last).offset >= vpLen {
		nav.placedState(last).visible = false
		last--
	}
	return first, last
}

func (nav *navigator[T, C]) shiftRange(first, last int, delta float32) {
	if delta == 0 {
		return
	}
	for i := first; i <= last; i++ {
		nav.placedState(i).offset += delta
	}
}

// placedState reads a cell placed during the current pass. The window
// bookkeeping isn't final until the pass ends, so this bypasses the
// positioner's window check.
func (nav *navigator[T, C]) placedState(i int) *cellState[T, C] {
	s, ok := nav.cells.ifRealized(i)
	if !ok || !s.visible {
		panic("flow: cell expected to be placed during fill")
	}
	return s
}

// releaseUnplaced drops every realized cell that ended the pass
// neither placed nor pinned, making it eligible for rebinding.
func (nav *navigator[T, C]) releaseUnplaced() {
	for _, s := range nav.cells.realized() {
		if !s.visible && !s.pinned {
			nav.cells.release(s.index)
		}
	}
}
