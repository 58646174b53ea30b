// Example demonstrates a virtualized list over 100,000 rows in a GLFW
// window.
//
// Prerequisites:
//
//	Install devbox: https://www.jetify.com/devbox
//	devbox shell              # enter the dev environment (provides Go + OpenGL/X11 headers)
//	go run ./example/         # run this example
//
// The example creates a GLFW window, builds a vertical VirtualFlow over
// a large item list, and renders the visible cells each frame. Only the
// on-screen rows are ever realized. Scroll with the mouse wheel, page
// with PgUp/PgDn, jump with Home/End, and click a row to select it.
package main

import (
	"fmt"
	"os"
	"runtime"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/go-theft-auto/flow"
	"github.com/go-theft-auto/flow/backend/opengl"
	"github.com/go-theft-auto/flow/render"
)

const (
	windowWidth  = 800
	windowHeight = 600
	windowTitle  = "flow example"

	rowCount       = 100_000
	scrollbarWidth = 12
	wheelStep      = 48
)

func init() {
	// GLFW must run on the main thread.
	runtime.LockOSThread()
}

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// row is one list item. Heights vary so the example exercises the
// estimation path rather than a trivial fixed-height layout.
type row struct {
	index int
	label string
}

func (r row) height() float32 {
	switch r.index % 7 {
	case 0:
		return 44
	case 3:
		return 32
	default:
		return 24
	}
}

// rowCell is a reusable cell: when a row scrolls out of view the cell
// is parked in the flow's pool and rebound to the next row scrolling
// in, so the factory runs only about once per visible slot.
type rowCell struct {
	flow.CellBase[row]
	item     row
	selected bool
}

func (c *rowCell) Reusable() bool { return true }

func (c *rowCell) Update(item row) {
	c.item = item
	c.selected = false
}

func (c *rowCell) Reset() { c.selected = false }

func (c *rowCell) PrefWidth(height float32) float32 { return 300 }
func (c *rowCell) PrefHeight(width float32) float32 { return c.item.height() }

func (c *rowCell) draw(dl *render.DrawList, b flow.Rect) {
	bg := uint32(0xFF262626)
	if c.item.index%2 == 1 {
		bg = 0xFF1E1E1E
	}
	if c.selected {
		bg = 0xFF5A3A1E
	}
	dl.AddRect(b.X, b.Y, b.W, b.H, bg)
	dl.AddText(b.X+8, b.Y+(b.H-16)/2, c.item.label, 0xFFD8D8D8, 8, 16)
}

func run() error {
	// Initialize GLFW.
	if err := glfw.Init(); err != nil {
		return fmt.Errorf("glfw init: %w", err)
	}
	defer glfw.Terminate()

	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)

	window, err := glfw.CreateWindow(windowWidth, windowHeight, windowTitle, nil, nil)
	if err != nil {
		return fmt.Errorf("create window: %w", err)
	}
	window.MakeContextCurrent()
	glfw.SwapInterval(1) // vsync

	// Initialize OpenGL.
	if err := gl.Init(); err != nil {
		return fmt.Errorf("gl init: %w", err)
	}

	renderer, err := opengl.NewRenderer(windowWidth, windowHeight)
	if err != nil {
		return fmt.Errorf("renderer: %w", err)
	}
	defer renderer.Delete()

	inputAdapter := opengl.NewGLFWInputAdapter(window)

	// Build the item list and the flow.
	items := flow.NewItemList[row]()
	rows := make([]row, rowCount)
	for i := range rows {
		rows[i] = row{index: i, label: fmt.Sprintf("row %d", i)}
	}
	items.Append(rows...)

	vf := flow.NewVertical(items, func(item row) *rowCell {
		return &rowCell{item: item}
	})
	defer vf.Dispose()
	vf.Resize(windowWidth-scrollbarWidth, windowHeight)

	dl := render.NewDrawList()
	selected := -1

	for !window.ShouldClose() {
		glfw.PollEvents()
		in := inputAdapter.Update()

		w, h := window.GetFramebufferSize()
		fw, fh := float32(w), float32(h)
		vf.Resize(fw-scrollbarWidth, fh)

		switch {
		case in.WheelY != 0:
			vf.ScrollYBy(-in.WheelY * wheelStep)
		case in.PageDown:
			vf.ScrollYBy(fh)
		case in.PageUp:
			vf.ScrollYBy(-fh)
		case in.Home:
			vf.ShowAsFirst(0)
		case in.End:
			vf.ShowAsLast(items.Len() - 1)
		}

		if in.Clicked {
			hit := vf.Hit(in.ClickX, in.ClickY)
			if hit.Kind == flow.HitCell {
				selected = hit.Index
			}
		}

		gl.Viewport(0, 0, int32(w), int32(h))
		gl.ClearColor(0.07, 0.07, 0.08, 1.0)
		gl.Clear(gl.COLOR_BUFFER_BIT)

		dl.Clear()
		dl.PushClipRect(0, 0, fw-scrollbarWidth, fh)
		for _, vc := range vf.VisibleCells() {
			vc.Cell.selected = vc.Index == selected
			vc.Cell.draw(dl, vc.Bounds)
		}
		dl.PopClipRect()

		drawScrollbar(dl, vf, fw, fh)
		dl.Finalize()

		renderer.Resize(w, h)
		if err := renderer.Render(dl); err != nil {
			return fmt.Errorf("render: %w", err)
		}

		window.SwapBuffers()
	}

	return nil
}

// drawScrollbar renders a thumb sized and positioned from the flow's
// extent estimate. The estimate refines as more cells are measured, so
// the thumb may shift slightly during fast scrolls.
func drawScrollbar(dl *render.DrawList, vf *flow.VirtualFlow[row, *rowCell], fw, fh float32) {
	total, ok := vf.TotalHeightEstimate()
	if !ok || total <= fh {
		return
	}

	x := fw - scrollbarWidth
	dl.AddRect(x, 0, scrollbarWidth, fh, 0xFF141414)

	thumbH := fh / total * fh
	if thumbH < 24 {
		thumbH = 24
	}
	thumbY := vf.PositionY() * (fh - thumbH)
	dl.AddRect(x+2, thumbY, scrollbarWidth-4, thumbH, 0xFF505050)
}
