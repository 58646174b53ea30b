/*
Package flow virtualizes rendering of large or unbounded ordered
collections. Only the items currently (or nearly) visible are
materialized into renderable cells, yet the engine still answers
scrollbar questions (total extent, current position) from a sampled
subset of measured cells.

# Overview

A VirtualFlow owns an ItemList and a cell factory. On every layout
pass it realizes just enough cells to cover the viewport, places them
edge to edge along the scroll axis, and releases the rest back into a
reuse pool. Because most items are never measured, the total content
extent is an extrapolation: average measured cell length times item
count. The estimate sharpens as more of the content is visited.

# Quick Start

	items := flow.NewItemList[string]()
	for i := 0; i < 100000; i++ {
	    items.Append(fmt.Sprintf("row %d", i))
	}

	vf := flow.NewVertical(items, newRowCell)
	vf.Resize(800, 600)

	// Host loop
	vf.ScrollYBy(wheelDelta)
	for _, vc := range vf.VisibleCells() {
	    drawCell(vc.Cell, vc.Bounds)
	}

The length axis is the scroll direction; the breadth axis is
perpendicular to it. A vertical flow scrolls along Y and pans along X;
a horizontal flow swaps the two. One fill algorithm serves both via an
internal axis strategy.

# Threading

A VirtualFlow is owned by a single control thread. There is no
internal locking; concurrent use is undefined and must be prevented by
the caller. The engine never schedules work itself: geometry-affecting
mutations invoke the host's request-layout callback, and any number of
such requests collapse into the next Layout call.
*/
package flow
