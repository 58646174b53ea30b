package opengl

import (
	"github.com/go-gl/glfw/v3.3/glfw"
)

// Input collects per-frame pointer and navigation-key state from a
// GLFW window. Wheel deltas and clicks accumulate between frames and
// are consumed by Update.
type Input struct {
	MouseX, MouseY float32
	WheelX, WheelY float32
	Clicked        bool
	ClickX, ClickY float32

	PageUp, PageDown bool
	Home, End        bool

	pendingWheelX, pendingWheelY float32
	pendingClick                 bool
	pendingClickX, pendingClickY float32
	pendingKeys                  map[glfw.Key]bool
}

// GLFWInputAdapter adapts GLFW callbacks to an Input snapshot.
type GLFWInputAdapter struct {
	window *glfw.Window
	input  Input
}

// NewGLFWInputAdapter installs input callbacks on the window.
func NewGLFWInputAdapter(window *glfw.Window) *GLFWInputAdapter {
	adapter := &GLFWInputAdapter{window: window}
	adapter.input.pendingKeys = make(map[glfw.Key]bool)

	window.SetKeyCallback(adapter.keyCallback)
	window.SetMouseButtonCallback(adapter.mouseButtonCallback)
	window.SetScrollCallback(adapter.scrollCallback)

	return adapter
}

// Update snapshots the state accumulated since the previous call.
// Call this at the start of each frame.
func (a *GLFWInputAdapter) Update() *Input {
	in := &a.input

	x, y := a.window.GetCursorPos()
	in.MouseX, in.MouseY = float32(x), float32(y)

	in.WheelX, in.WheelY = in.pendingWheelX, in.pendingWheelY
	in.pendingWheelX, in.pendingWheelY = 0, 0

	in.Clicked = in.pendingClick
	in.ClickX, in.ClickY = in.pendingClickX, in.pendingClickY
	in.pendingClick = false

	in.PageUp = in.pendingKeys[glfw.KeyPageUp]
	in.PageDown = in.pendingKeys[glfw.KeyPageDown]
	in.Home = in.pendingKeys[glfw.KeyHome]
	in.End = in.pendingKeys[glfw.KeyEnd]
	clear(in.pendingKeys)

	return in
}

func (a *GLFWInputAdapter) keyCallback(w *glfw.Window, key glfw.Key, scancode int, action glfw.Action, mods glfw.ModifierKey) {
	if action == glfw.Press || action == glfw.Repeat {
		a.input.pendingKeys[key] = true
	}
}

func (a *GLFWInputAdapter) mouseButtonCallback(w *glfw.Window, button glfw.MouseButton, action glfw.Action, mods glfw.ModifierKey) {
	if button == glfw.MouseButtonLeft && action == glfw.Press {
		x, y := w.GetCursorPos()
		a.input.pendingClick = true
		a.input.pendingClickX, a.input.pendingClickY = float32(x), float32(y)
	}
}

func (a *GLFWInputAdapter) scrollCallback(w *glfw.Window, xoff, yoff float64) {
	a.input.pendingWheelX += float32(xoff)
	a.input.pendingWheelY += float32(yoff)
}
