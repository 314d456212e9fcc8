package opengl

import "github.com/go-gl/glfw/v3.3/glfw"

// Interval within which a second left press counts as a double click and
// resets the view.
const doubleClickSeconds = 0.3

// Input handlers run on the render thread via PollEvents and only ever
// touch the camera's target coordinates, never GL state.
func (r *Renderer) installInputCallbacks() {
	r.window.SetMouseButtonCallback(func(w *glfw.Window, button glfw.MouseButton, action glfw.Action, mods glfw.ModifierKey) {
		if button != glfw.MouseButtonLeft {
			return
		}
		switch action {
		case glfw.Press:
			now := glfw.GetTime()
			if now-r.lastPress < doubleClickSeconds {
				r.Camera.Reset()
				r.dragging = false
			} else {
				r.dragging = true
				r.Camera.AutoRotate = false
				r.lastX, r.lastY = r.window.GetCursorPos()
			}
			r.lastPress = now
		case glfw.Release:
			r.dragging = false
		}
	})

	r.window.SetCursorPosCallback(func(w *glfw.Window, xpos, ypos float64) {
		if !r.dragging {
			return
		}
		r.Camera.Rotate(xpos-r.lastX, ypos-r.lastY)
		r.lastX = xpos
		r.lastY = ypos
	})

	r.window.SetCursorEnterCallback(func(w *glfw.Window, entered bool) {
		if !entered {
			r.dragging = false
		}
	})

	r.window.SetScrollCallback(func(w *glfw.Window, xoff, yoff float64) {
		// Scroll up zooms in.
		r.Camera.Zoom(-yoff)
	})

	r.window.SetKeyCallback(func(w *glfw.Window, key glfw.Key, scancode int, action glfw.Action, mods glfw.ModifierKey) {
		if action != glfw.Press {
			return
		}
		switch key {
		case glfw.KeyEscape:
			r.window.SetShouldClose(true)
		case glfw.KeyR:
			r.Camera.Reset()
		case glfw.KeyN, glfw.KeySpace:
			if r.OnNext != nil {
				r.OnNext()
			}
		}
	})
}
