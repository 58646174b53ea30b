package flow

// HitKind distinguishes the three outcomes of hit-testing a flow.
type HitKind int

const (
	// HitCell means the point landed inside a visible cell.
	HitCell HitKind = iota
	// HitBeforeCells means the point was before the first cell (above
	// a vertical flow's content, left of a horizontal flow's).
	HitBeforeCells
	// HitAfterCells means the point was past the last cell. An empty
	// flow always reports this with a zero offset.
	HitAfterCells
)

// Hit is the result of VirtualFlow.Hit.
//
// For HitCell, Index and Cell identify the cell that was hit and
// Offset is the point in cell-local coordinates. For HitBeforeCells
// and HitAfterCells, Offset is the distance from the nearest content
// corner; Index and Cell are zero values.
type Hit[T any, C Cell[T]] struct {
	Kind   HitKind
	Index  int
	Cell   C
	Offset Vec2
}
