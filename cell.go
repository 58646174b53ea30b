package flow

// Cell renders a single item of a VirtualFlow. A cell is bound to
// exactly one item while realized; the engine measures it, positions
// it, and hands it back to callers for drawing.
//
// PrefWidth and PrefHeight report the cell's preferred size; the
// constrained dimension is passed in, or -1 when unconstrained. In a
// vertical flow the engine fixes the width (the breadth) and asks
// PrefHeight(width) for the cell's length; a horizontal flow swaps
// the roles. Sizes are undefined until the first layout pass.
//
// Implementations that only care about a subset of the lifecycle can
// embed CellBase and override what they need:
//
//	type rowCell struct {
//	    flow.CellBase[string]
//	    text string
//	}
//
//	func (c *rowCell) Update(item string)               { c.text = item }
//	func (c *rowCell) Reusable() bool                   { return true }
//	func (c *rowCell) PrefWidth(height float32) float32 { return 300 }
//	func (c *rowCell) PrefHeight(width float32) float32 { return 24 }
type Cell[T any] interface {
	// PrefWidth returns the preferred width for the given height
	// constraint (-1 = unconstrained).
	PrefWidth(height float32) float32

	// PrefHeight returns the preferred height for the given width
	// constraint (-1 = unconstrained).
	PrefHeight(width float32) float32

	// Reusable reports whether the cell may be rebound to a different
	// item via Update instead of being disposed when its index leaves
	// the realized set.
	Reusable() bool

	// Update rebinds the cell to a new item. Only called on cells
	// whose Reusable returns true.
	Update(item T)

	// UpdateIndex informs the cell of the index it is displaying.
	// Called on realization and whenever list mutations shift the
	// cell's index.
	UpdateIndex(index int)

	// Reset clears transient state when the cell is parked in the
	// reuse pool between items.
	Reset()

	// Dispose releases the cell's resources. The cell is not used
	// again afterwards.
	Dispose()
}

// CellBase provides no-op defaults for the optional parts of the Cell
// lifecycle. Embed it and implement PrefWidth/PrefHeight (and Update,
// if the cell is reusable).
type CellBase[T any] struct{}

// Reusable reports false; override to opt into cell reuse.
func (CellBase[T]) Reusable() bool { return false }

// Update panics: a cell that doesn't override Update must not report
// itself reusable.
func (CellBase[T]) Update(item T) {
	panic("flow: Update called on non-reusable cell")
}

// UpdateIndex is a no-op.
func (CellBase[T]) UpdateIndex(index int) {}

// Reset is a no-op.
func (CellBase[T]) Reset() {}

// Dispose is a no-op.
func (CellBase[T]) Dispose() {}

// VisibleCell is one placed cell in the viewport, as reported by
// VirtualFlow.VisibleCells. Bounds are viewport-relative with the
// breadth pan offset already applied.
type VisibleCell[T any, C Cell[T]] struct {
	Index  int
	Cell   C
	Bounds Rect
}
