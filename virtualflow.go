package flow

import "fmt"

// Option configures a VirtualFlow at construction time.
type Option func(*config)

type config struct {
	gravity       Gravity
	requestLayout func()
}

// WithGravity sets the anchor edge used when the content is shorter
// than the viewport. The default is GravityFront.
func WithGravity(g Gravity) Option {
	return func(c *config) { c.gravity = g }
}

// WithRequestLayout registers the host's relayout primitive. The
// engine invokes it (never more than once per dirty period) whenever a
// mutation affects geometry; the host should respond by calling Layout
// before the next paint.
func WithRequestLayout(fn func()) Option {
	return func(c *config) { c.requestLayout = fn }
}

// VirtualFlow is the root of the engine: it owns the lazy cell table,
// the size tracker, the positioner and the navigator, and exposes the
// public scrolling, estimation and hit-testing API.
//
// All methods must be called from the single thread that owns the
// flow.
type VirtualFlow[T any, C Cell[T]] struct {
	items      *ItemList[T]
	orient     axis
	vertical   bool
	cells      *lazyCellList[T, C]
	sizes      *sizeTracker[T, C]
	positioner *cellPositioner[T, C]
	nav        *navigator[T, C]

	breadthOffset float32
	needsLayout   bool
	requestLayout func()
	unobserve     func()
	disposed      bool
}

// NewVertical creates a flow that scrolls along Y and pans along X.
func NewVertical[T any, C Cell[T]](items *ItemList[T], factory func(T) C, opts ...Option) *VirtualFlow[T, C] {
	return newVirtualFlow(items, factory, verticalAxis{}, true, opts)
}

// NewHorizontal creates a flow that scrolls along X and pans along Y.
func NewHorizontal[T any, C Cell[T]](items *ItemList[T], factory func(T) C, opts ...Option) *VirtualFlow[T, C] {
	return newVirtualFlow(items, factory, horizontalAxis{}, false, opts)
}

func newVirtualFlow[T any, C Cell[T]](items *ItemList[T], factory func(T) C, orient axis, vertical bool, opts []Option) *VirtualFlow[T, C] {
	var cfg config
	for _, opt := range opts {
		opt(&cfg)
	}

	cells := newLazyCellList(items, factory)
	sizes := newSizeTracker(orient, cells)
	positioner := newCellPositioner(cells, orient, sizes)
	nav := newNavigator(cells, positioner, orient, cfg.gravity, sizes)

	vf := &VirtualFlow[T, C]{
		items:         items,
		orient:        orient,
		vertical:      vertical,
		cells:         cells,
		sizes:         sizes,
		positioner:    positioner,
		nav:           nav,
		needsLayout:   true,
		requestLayout: cfg.requestLayout,
	}
	vf.unobserve = items.Observe(vf.onItemsChanged)
	return vf
}

func (vf *VirtualFlow[T, C]) onItemsChanged(c ItemsChange) {
	if vf.disposed {
		return
	}
	vf.nav.itemsChanged(c)
	vf.invalidate()
}

// invalidate marks the layout dirty and forwards a single relayout
// request to the host; further invalidations collapse into it.
func (vf *VirtualFlow[T, C]) invalidate() {
	if vf.needsLayout {
		return
	}
	vf.needsLayout = true
	if vf.requestLayout != nil {
		vf.requestLayout()
	}
}

func (vf *VirtualFlow[T, C]) layoutIfNeeded() {
	if vf.needsLayout {
		vf.Layout()
	}
}

// Layout runs fill passes until the cross-axis extent reaches a fixed
// point. The extent only changes when a pass realizes a cell wider
// than everything measured before, so the loop is bounded by the
// number of distinct breadths realized in one layout.
func (vf *VirtualFlow[T, C]) Layout() {
	for {
		oldBreadth := vf.sizes.cellLayoutBreadth()
		vf.nav.pass()
		if vf.sizes.cellLayoutBreadth() == oldBreadth {
			break
		}
	}
	vf.clampBreadthOffset()
	vf.needsLayout = false
}

// Resize informs the engine of the host viewport size in pixels.
func (vf *VirtualFlow[T, C]) Resize(width, height float32) {
	vf.sizes.setViewportSize(Vec2{X: width, Y: height})
	vf.invalidate()
}

// Dispose releases every realized cell and detaches from the item
// list. The flow must not be used afterwards.
func (vf *VirtualFlow[T, C]) Dispose() {
	if vf.disposed {
		return
	}
	vf.disposed = true
	vf.unobserve()
	vf.positioner.clearWindow()
	vf.sizes.setWindow(0, 0, false)
	vf.cells.dispose()
}

// ScrollXBy scrolls the content horizontally by delta pixels.
// Positive values scroll right.
func (vf *VirtualFlow[T, C]) ScrollXBy(delta float32) {
	if vf.vertical {
		vf.scrollBreadth(delta)
	} else {
		vf.scrollLength(delta)
	}
}

// ScrollYBy scrolls the content vertically by delta pixels.
// Positive values scroll down.
func (vf *VirtualFlow[T, C]) ScrollYBy(delta float32) {
	if vf.vertical {
		vf.scrollLength(delta)
	} else {
		vf.scrollBreadth(delta)
	}
}

// ScrollXToPixel scrolls the content horizontally to an absolute pixel
// offset.
func (vf *VirtualFlow[T, C]) ScrollXToPixel(pixel float32) {
	if vf.vertical {
		vf.setBreadthOffset(pixel)
	} else {
		vf.setLengthOffset(pixel)
	}
}

// ScrollYToPixel scrolls the content vertically to an absolute pixel
// offset.
func (vf *VirtualFlow[T, C]) ScrollYToPixel(pixel float32) {
	if vf.vertical {
		vf.setLengthOffset(pixel)
	} else {
		vf.setBreadthOffset(pixel)
	}
}

func (vf *VirtualFlow[T, C]) scrollLength(delta float32) {
	vf.layoutIfNeeded()
	vf.setLengthOffset(vf.sizes.lengthOffsetEstimate() + delta)
}

func (vf *VirtualFlow[T, C]) scrollBreadth(delta float32) {
	vf.setBreadthOffset(vf.breadthOffset + delta)
}

// setLengthOffset scrolls to an absolute offset along the length axis.
// Distances under one viewport length translate the pending target;
// longer jumps estimate the destination index from the average cell
// length and self-correct on subsequent passes.
func (vf *VirtualFlow[T, C]) setLengthOffset(pixels float32) {
	vf.layoutIfNeeded()

	total, ok := vf.sizes.totalLengthEstimate()
	if !ok {
		return
	}
	length := vf.sizes.viewportLength()
	pixels = clampf(pixels, 0, maxf(total-length, 0))

	current := vf.sizes.lengthOffsetEstimate()
	diff := pixels - current
	switch {
	case diff == 0:
		return
	case absf(diff) < length:
		vf.nav.scrollTargetPositionBy(diff)
	default:
		vf.jumpToAbsolutePosition(pixels)
	}
	vf.invalidate()
}

func (vf *VirtualFlow[T, C]) jumpToAbsolutePosition(pixels float32) {
	n := vf.items.Len()
	if n == 0 {
		return
	}
	avg, ok := vf.sizes.averageLengthEstimate()
	if !ok || avg == 0 {
		return
	}
	// Guess the first visible cell and its offset in the viewport.
	first := int(pixels / avg)
	firstOffset := -float32(float64(pixels) - float64(first)*float64(avg))
	if first < n {
		vf.nav.setTargetPosition(anchorStart{index: first, offset: firstOffset})
	} else {
		vf.nav.setTargetPosition(anchorEnd{index: n - 1})
	}
}

func (vf *VirtualFlow[T, C]) setBreadthOffset(pixels float32) {
	vf.breadthOffset = pixels
	vf.clampBreadthOffset()
	vf.invalidate()
}

func (vf *VirtualFlow[T, C]) clampBreadthOffset() {
	total, _ := vf.sizes.totalBreadthEstimate()
	vf.breadthOffset = clampf(vf.breadthOffset, 0, maxf(total-vf.sizes.viewportBreadth(), 0))
}

// BreadthOffset is the current pan offset along the cross axis.
func (vf *VirtualFlow[T, C]) BreadthOffset() float32 {
	return vf.breadthOffset
}

// Show scrolls just enough to bring item i fully into view. An item
// already fully visible is a no-op. The index clamps to the content
// bounds.
func (vf *VirtualFlow[T, C]) Show(i int) {
	vf.nav.setTargetPosition(nearestEdge{index: i})
	vf.invalidate()
}

// ShowAsFirst scrolls so item i becomes the first visible item.
func (vf *VirtualFlow[T, C]) ShowAsFirst(i int) {
	vf.ShowAtOffset(i, 0)
}

// ShowAsLast scrolls so item i becomes the last visible item, flush
// with the viewport's rear edge.
func (vf *VirtualFlow[T, C]) ShowAsLast(i int) {
	vf.nav.setTargetPosition(anchorEnd{index: i})
	vf.invalidate()
}

// ShowAtOffset places item i's start edge offset pixels from the
// viewport start.
func (vf *VirtualFlow[T, C]) ShowAtOffset(i int, offset float32) {
	vf.nav.setTargetPosition(anchorStart{index: i, offset: offset})
	vf.invalidate()
}

// ShowRegion scrolls along both axes just enough to reveal the given
// region of item i, in cell-local coordinates.
func (vf *VirtualFlow[T, C]) ShowRegion(i int, region Rect) {
	n := vf.items.Len()
	if n == 0 {
		return
	}
	i = clampi(i, 0, n-1)

	vf.nav.setTargetPosition(nearestEdge{index: i})
	vf.Layout()

	s := vf.positioner.visibleState(i)
	regionMin := Vec2{X: region.X, Y: region.Y}
	regionSize := Vec2{X: region.W, Y: region.H}

	fromL := s.offset + vf.orient.lengthOf(regionMin)
	toL := fromL + vf.orient.lengthOf(regionSize)
	vf.showLengthRegion(fromL, toL)

	fromB := vf.orient.breadthOf(regionMin)
	toB := fromB + vf.orient.breadthOf(regionSize)
	vf.showBreadthRegion(fromB, toB)
}

// showLengthRegion nudges the pending target so the viewport-relative
// range [from, to] ends up inside the viewport.
func (vf *VirtualFlow[T, C]) showLengthRegion(from, to float32) {
	vpLen := vf.sizes.viewportLength()
	if from < 0 {
		vf.nav.scrollTargetPositionBy(from)
		vf.invalidate()
	} else if to > vpLen {
		vf.nav.scrollTargetPositionBy(to - vpLen)
		vf.invalidate()
	}
}

// showBreadthRegion shifts the pan offset by the smallest amount that
// reveals the content-relative breadth range [from, to].
func (vf *VirtualFlow[T, C]) showBreadthRegion(from, to float32) {
	bOff := vf.breadthOffset
	spaceBefore := from - bOff
	spaceAfter := vf.sizes.viewportBreadth() - to + bOff
	if spaceBefore < 0 && spaceAfter > 0 {
		shift := minf(-spaceBefore, spaceAfter)
		vf.setBreadthOffset(bOff - shift)
	} else if spaceAfter < 0 && spaceBefore > 0 {
		shift := maxf(spaceAfter, -spaceBefore)
		vf.setBreadthOffset(bOff - shift)
	}
}

// TotalWidthEstimate is the estimated horizontal content extent,
// ok=false before any cell has been measured.
func (vf *VirtualFlow[T, C]) TotalWidthEstimate() (float32, bool) {
	vf.layoutIfNeeded()
	if vf.vertical {
		return vf.sizes.totalBreadthEstimate()
	}
	return vf.sizes.totalLengthEstimate()
}

// TotalHeightEstimate is the estimated vertical content extent,
// ok=false before any cell has been measured.
func (vf *VirtualFlow[T, C]) TotalHeightEstimate() (float32, bool) {
	vf.layoutIfNeeded()
	if vf.vertical {
		return vf.sizes.totalLengthEstimate()
	}
	return vf.sizes.totalBreadthEstimate()
}

// PositionX is the normalized horizontal scroll position in [0, 1].
// Zero when the content fits in the viewport.
func (vf *VirtualFlow[T, C]) PositionX() float32 {
	if vf.vertical {
		return vf.breadthPosition()
	}
	return vf.lengthPosition()
}

// PositionY is the normalized vertical scroll position in [0, 1].
func (vf *VirtualFlow[T, C]) PositionY() float32 {
	if vf.vertical {
		return vf.lengthPosition()
	}
	return vf.breadthPosition()
}

// SetPositionX scrolls horizontally to a normalized position in [0, 1].
func (vf *VirtualFlow[T, C]) SetPositionX(p float32) {
	if vf.vertical {
		vf.setBreadthPosition(p)
	} else {
		vf.setLengthPosition(p)
	}
}

// SetPositionY scrolls vertically to a normalized position in [0, 1].
func (vf *VirtualFlow[T, C]) SetPositionY(p float32) {
	if vf.vertical {
		vf.setLengthPosition(p)
	} else {
		vf.setBreadthPosition(p)
	}
}

func (vf *VirtualFlow[T, C]) lengthPosition() float32 {
	vf.layoutIfNeeded()
	total, ok := vf.sizes.totalLengthEstimate()
	if !ok || total <= 0 {
		return 0
	}
	pos := offsetToScrollbarPosition(vf.sizes.lengthOffsetEstimate(), vf.sizes.viewportLength(), total)
	return pos / total
}

func (vf *VirtualFlow[T, C]) setLengthPosition(p float32) {
	vf.layoutIfNeeded()
	total, ok := vf.sizes.totalLengthEstimate()
	if !ok {
		return
	}
	vf.setLengthOffset(scrollbarPositionToOffset(clampf(p, 0, 1)*total, vf.sizes.viewportLength(), total))
}

func (vf *VirtualFlow[T, C]) breadthPosition() float32 {
	total, ok := vf.sizes.totalBreadthEstimate()
	if !ok || total <= 0 {
		return 0
	}
	pos := offsetToScrollbarPosition(vf.breadthOffset, vf.sizes.viewportBreadth(), total)
	return pos / total
}

func (vf *VirtualFlow[T, C]) setBreadthPosition(p float32) {
	total, ok := vf.sizes.totalBreadthEstimate()
	if !ok {
		return
	}
	vf.setBreadthOffset(scrollbarPositionToOffset(clampf(p, 0, 1)*total, vf.sizes.viewportBreadth(), total))
}

// VisibleCells returns the placed cells in index order, with
// viewport-relative bounds (breadth pan applied). The snapshot is
// valid until the next mutation or layout pass.
func (vf *VirtualFlow[T, C]) VisibleCells() []VisibleCell[T, C] {
	vf.layoutIfNeeded()
	first, ok := vf.positioner.firstVisible()
	if !ok {
		return nil
	}
	last, _ := vf.positioner.lastVisible()
	breadth := vf.sizes.cellLayoutBreadth()
	out := make([]VisibleCell[T, C], 0, last-first+1)
	for i := first; i <= last; i++ {
		s := vf.positioner.visibleState(i)
		out = append(out, VisibleCell[T, C]{
			Index:  i,
			Cell:   s.cell,
			Bounds: vf.orient.cellBounds(-vf.breadthOffset, s.offset, breadth, s.length),
		})
	}
	return out
}

// FirstVisibleIndex returns the index of the first placed cell,
// ok=false when nothing is placed.
func (vf *VirtualFlow[T, C]) FirstVisibleIndex() (int, bool) {
	vf.layoutIfNeeded()
	return vf.positioner.firstVisible()
}

// LastVisibleIndex returns the index of the last placed cell.
func (vf *VirtualFlow[T, C]) LastVisibleIndex() (int, bool) {
	vf.layoutIfNeeded()
	return vf.positioner.lastVisible()
}

// Cell returns a properly sized cell for item i, realizing one if the
// item is out of view. The cell is valid only until the next layout
// pass and carries no valid placement unless i is itself visible; it
// is intended for measurement purposes only and must not be stored.
func (vf *VirtualFlow[T, C]) Cell(i int) (C, error) {
	if i < 0 || i >= vf.items.Len() {
		var zero C
		return zero, fmt.Errorf("cell %d of %d: %w", i, vf.items.Len(), ErrIndexOutOfRange)
	}
	vf.layoutIfNeeded()
	return vf.positioner.sizedState(i).cell, nil
}

// Pin keeps item i's cell realized across layout passes even while it
// scrolls out of view, so host state bound to the cell (focus, an
// in-flight animation) survives. The cell is positioned normally
// whenever its item is visible. Pinning ends when Unpin is called or
// the item is removed from the list.
func (vf *VirtualFlow[T, C]) Pin(i int) (C, error) {
	if i < 0 || i >= vf.items.Len() {
		var zero C
		return zero, fmt.Errorf("pin %d of %d: %w", i, vf.items.Len(), ErrIndexOutOfRange)
	}
	vf.cells.force(i)
	s, _ := vf.cells.ifRealized(i)
	return s.cell, nil
}

// Unpin releases the retention established by Pin. Unpinning an index
// that was never pinned is a no-op.
func (vf *VirtualFlow[T, C]) Unpin(i int) {
	vf.cells.unpin(i)
}

// CellIfVisible returns the cell for item i only if i is currently
// placed in the viewport.
func (vf *VirtualFlow[T, C]) CellIfVisible(i int) (C, bool) {
	vf.layoutIfNeeded()
	s, ok := vf.positioner.ifVisible(i)
	if !ok {
		var zero C
		return zero, false
	}
	return s.cell, true
}

// Hit tests the point (x, y), given in viewport coordinates. It
// reports the cell that was hit with cell-local coordinates, or
// whether the point fell before or past the content.
func (vf *VirtualFlow[T, C]) Hit(x, y float32) Hit[T, C] {
	p := Vec2{X: x, Y: y}
	bOff := vf.orient.breadthOf(p) + vf.breadthOffset
	lOff := vf.orient.lengthOf(p)

	if vf.items.Len() == 0 {
		return Hit[T, C]{Kind: HitAfterCells}
	}

	vf.Layout()

	first, _ := vf.positioner.firstVisible()
	last, _ := vf.positioner.lastVisible()
	firstS := vf.positioner.visibleState(first)
	lastS := vf.positioner.visibleState(last)

	switch {
	case lOff < firstS.offset:
		return Hit[T, C]{Kind: HitBeforeCells, Offset: vf.orient.vecOf(bOff, lOff-firstS.offset)}
	case lOff >= lastS.end():
		return Hit[T, C]{Kind: HitAfterCells, Offset: vf.orient.vecOf(bOff, lOff-lastS.end())}
	}
	for i := first; i <= last; i++ {
		s := vf.positioner.visibleState(i)
		if lOff < s.end() {
			return Hit[T, C]{
				Kind:   HitCell,
				Index:  i,
				Cell:   s.cell,
				Offset: vf.orient.vecOf(bOff, lOff-s.offset),
			}
		}
	}
	panic("flow: hit point not covered by a contiguous visible window")
}

// offsetToScrollbarPosition maps a content offset to conventional
// scrollbar-value space [0, contentSize]. The scaling is non-linear in
// the offset so the thumb size stays proportional to
// viewport/content.
func offsetToScrollbarPosition(contentOffset, viewportSize, contentSize float32) float32 {
	if contentSize > viewportSize {
		return contentOffset / (contentSize - viewportSize) * contentSize
	}
	return 0
}

// scrollbarPositionToOffset is the inverse of
// offsetToScrollbarPosition.
func scrollbarPositionToOffset(scrollbarPos, viewportSize, contentSize float32) float32 {
	if contentSize > viewportSize {
		return scrollbarPos / contentSize * (contentSize - viewportSize)
	}
	return 0
}

func absf(v float32) float32 {
	if v < 0 {
		return -v
	}
	return v
}
