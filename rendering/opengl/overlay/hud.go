// Package overlay draws a minimal 2D HUD over the 3D scene: a translucent
// panel with an FPS bar and the auto-advance countdown. Bars instead of
// text keep the overlay free of font assets; the textual stats live on
// stdout.
package overlay

import (
	"fmt"

	"github.com/go-gl/gl/v4.3-core/gl"
	"github.com/go-gl/mathgl/mgl32"
)

const hudVertexShader = `
#version 410 core

layout (location = 0) in vec2 position;
layout (location = 1) in vec4 color;

uniform mat4 projection;

out vec4 fragColor;

void main() {
    gl_Position = projection * vec4(position, 0.0, 1.0);
    fragColor = color;
}
`

const hudFragmentShader = `
#version 410 core

in vec4 fragColor;
out vec4 outColor;

void main() {
    outColor = fragColor;
}
`

// HUD renders the stats panel. Vertices are rebuilt each frame into one
// dynamic VBO; the panel is small enough that this is noise.
type HUD struct {
	program uint32
	vao     uint32
	vbo     uint32

	width  float32
	height float32

	fps       float64
	countdown float64 // fraction of the auto-advance interval remaining
	verts     []float32
}

// NewHUD compiles the overlay program and sets up its vertex state.
func NewHUD(width, height int) (*HUD, error) {
	h := &HUD{
		width:  float32(width),
		height: float32(height),
	}

	vert, err := compileStage(hudVertexShader, gl.VERTEX_SHADER)
	if err != nil {
		return nil, fmt.Errorf("failed to compile hud vertex shader: %v", err)
	}
	defer gl.DeleteShader(vert)

	frag, err := compileStage(hudFragmentShader, gl.FRAGMENT_SHADER)
	if err != nil {
		return nil, fmt.Errorf("failed to compile hud fragment shader: %v", err)
	}
	defer gl.DeleteShader(frag)

	h.program = gl.CreateProgram()
	gl.AttachShader(h.program, vert)
	gl.AttachShader(h.program, frag)
	gl.LinkProgram(h.program)

	var status int32
	gl.GetProgramiv(h.program, gl.LINK_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetProgramiv(h.program, gl.INFO_LOG_LENGTH, &logLength)
		log := make([]byte, logLength)
		gl.GetProgramInfoLog(h.program, logLength, nil, &log[0])
		return nil, fmt.Errorf("hud shader link failed: %s", log)
	}

	gl.GenVertexArrays(1, &h.vao)
	gl.GenBuffers(1, &h.vbo)

	gl.BindVertexArray(h.vao)
	gl.BindBuffer(gl.ARRAY_BUFFER, h.vbo)

	// 2 position floats + 4 color floats per vertex
	stride := int32(6 * 4)
	gl.VertexAttribPointer(0, 2, gl.FLOAT, false, stride, gl.PtrOffset(0))
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointer(1, 4, gl.FLOAT, false, stride, gl.PtrOffset(2*4))
	gl.EnableVertexAttribArray(1)

	gl.BindVertexArray(0)

	return h, nil
}

// Resize updates the pixel dimensions used for the orthographic
// projection.
func (h *HUD) Resize(width, height int) {
	h.width = float32(width)
	h.height = float32(height)
}

// Update stores the values the next Render call will draw. countdown is
// the remaining fraction of the auto-advance interval, in [0, 1].
func (h *HUD) Update(fps, countdown float64) {
	h.fps = fps
	h.countdown = countdown
}

func (h *HUD) quad(x, y, w, hgt float32, c mgl32.Vec4) {
	h.verts = append(h.verts,
		x, y, c[0], c[1], c[2], c[3],
		x+w, y, c[0], c[1], c[2], c[3],
		x, y+hgt, c[0], c[1], c[2], c[3],
		x+w, y, c[0], c[1], c[2], c[3],
		x+w, y+hgt, c[0], c[1], c[2], c[3],
		x, y+hgt, c[0], c[1], c[2], c[3],
	)
}

// Render draws the HUD. Must run after the 3D pass; depth testing is
// suspended for the duration.
func (h *HUD) Render() {
	gl.Disable(gl.DEPTH_TEST)
	gl.Enable(gl.BLEND)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)

	gl.UseProgram(h.program)

	projection := mgl32.Ortho2D(0, h.width, h.height, 0)
	projLoc := gl.GetUniformLocation(h.program, gl.Str("projection\x00"))
	gl.UniformMatrix4fv(projLoc, 1, false, &projection[0])

	h.verts = h.verts[:0]

	// Panel background
	h.quad(10, 10, 220, 54, mgl32.Vec4{0, 0, 0, 0.45})

	// FPS bar, full width at 120 fps
	fpsFrac := float32(h.fps / 120)
	if fpsFrac > 1 {
		fpsFrac = 1
	}
	h.quad(18, 18, 204*fpsFrac, 16, mgl32.Vec4{0.2, 0.9, 0.3, 0.9})

	// Countdown bar drains as the next planet approaches
	h.quad(18, 40, 204*float32(h.countdown), 16, mgl32.Vec4{0.4, 0.6, 1.0, 0.9})

	gl.BindVertexArray(h.vao)
	gl.BindBuffer(gl.ARRAY_BUFFER, h.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(h.verts)*4, gl.Ptr(h.verts), gl.DYNAMIC_DRAW)
	gl.DrawArrays(gl.TRIANGLES, 0, int32(len(h.verts)/6))

	gl.BindVertexArray(0)
	gl.Disable(gl.BLEND)
	gl.Enable(gl.DEPTH_TEST)
}

// Delete releases the HUD's GL objects.
func (h *HUD) Delete() {
	gl.DeleteProgram(h.program)
	gl.DeleteVertexArrays(1, &h.vao)
	gl.DeleteBuffers(1, &h.vbo)
}

func compileStage(source string, shaderType uint32) (uint32, error) {
	shader := gl.CreateShader(shaderType)

	csources, free := gl.Strs(source + "\x00")
	gl.ShaderSource(shader, 1, csources, nil)
	free()
	gl.CompileShader(shader)

	var status int32
	gl.GetShaderiv(shader, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetShaderiv(shader, gl.INFO_LOG_LENGTH, &logLength)
		log := make([]byte, logLength)
		gl.GetShaderInfoLog(shader, logLength, nil, &log[0])
		return 0, fmt.Errorf("%s", log)
	}

	return shader, nil
}
