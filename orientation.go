package flow

// sizer is the measurement subset of Cell. It carries no item type
// parameter so the axis strategies stay non-generic.
type sizer interface {
	PrefWidth(height float32) float32
	PrefHeight(width float32) float32
}

// axis abstracts which geometric direction is "length" (the scroll
// axis) and which is "breadth" (the pan axis). Both implementations
// are stateless, so one fill algorithm serves vertical and horizontal
// flows.
type axis interface {
	// breadthOf and lengthOf decompose a concrete point or size into
	// flow coordinates.
	breadthOf(v Vec2) float32
	lengthOf(v Vec2) float32

	// vecOf composes a concrete point from flow coordinates.
	vecOf(breadth, length float32) Vec2

	// cellBounds builds the concrete rectangle of a placed cell from
	// its flow-coordinate placement.
	cellBounds(breadthOffset, lengthOffset, breadth, length float32) Rect

	// prefBreadth measures a cell's unconstrained extent across the
	// scroll axis.
	prefBreadth(c sizer) float32

	// prefLength measures a cell's extent along the scroll axis at the
	// given breadth.
	prefLength(c sizer, breadth float32) float32
}

// verticalAxis scrolls along Y and pans along X.
type verticalAxis struct{}

func (verticalAxis) breadthOf(v Vec2) float32 { return v.X }
func (verticalAxis) lengthOf(v Vec2) float32  { return v.Y }

func (verticalAxis) vecOf(breadth, length float32) Vec2 {
	return Vec2{X: breadth, Y: length}
}

func (verticalAxis) cellBounds(breadthOffset, lengthOffset, breadth, length float32) Rect {
	return Rect{X: breadthOffset, Y: lengthOffset, W: breadth, H: length}
}

func (verticalAxis) prefBreadth(c sizer) float32 {
	return c.PrefWidth(-1)
}

func (verticalAxis) prefLength(c sizer, breadth float32) float32 {
	return c.PrefHeight(breadth)
}

// horizontalAxis scrolls along X and pans along Y.
type horizontalAxis struct{}

func (horizontalAxis) breadthOf(v Vec2) float32 { return v.Y }
func (horizontalAxis) lengthOf(v Vec2) float32  { return v.X }

func (horizontalAxis) vecOf(breadth, length float32) Vec2 {
	return Vec2{X: length, Y: breadth}
}

func (horizontalAxis) cellBounds(breadthOffset, lengthOffset, breadth, length float32) Rect {
	return Rect{X: lengthOffset, Y: breadthOffset, W: length, H: breadth}
}

func (horizontalAxis) prefBreadth(c sizer) float32 {
	return c.PrefHeight(-1)
}

func (horizontalAxis) prefLength(c sizer, breadth float32) float32 {
	return c.PrefWidth(breadth)
}
