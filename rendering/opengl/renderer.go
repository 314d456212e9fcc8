// Package opengl renders the currently selected exoplanet system: the
// host star at the origin (doubling as the light source), the planet on a
// circular orbit, and the orbit path itself. One UV-sphere mesh is shared
// by both bodies via per-draw model matrices.
package opengl

import (
	"fmt"
	"math"
	"runtime"

	"github.com/go-gl/gl/v4.3-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
	colorful "github.com/lucasb-eyer/go-colorful"

	"exoviewer/core"
	"exoviewer/rendering/opengl/overlay"
	"exoviewer/rendering/opengl/shaders"
)

const fieldOfView = 45 * math.Pi / 180

// Uniform locations are resolved once at program build and cached here.
type sphereUniforms struct {
	model        int32
	view         int32
	projection   int32
	normalMatrix int32
	lightPos     int32
	cameraPos    int32
	baseColor    int32
	time         int32
}

type lineUniforms struct {
	view       int32
	projection int32
	lineColor  int32
}

// Renderer owns the GLFW window, the GL resources and all mutable scene
// state. The host drives it: PollEvents, then AdvanceFrame with the
// measured delta time, once per display refresh.
type Renderer struct {
	window *glfw.Window

	sphereProgram uint32
	lineProgram   uint32
	su            sphereUniforms
	lu            lineUniforms

	sphereVAO  uint32
	posVBO     uint32
	normVBO    uint32
	uvVBO      uint32
	ebo        uint32
	indexCount int32

	orbitVAO    uint32
	orbitVBO    uint32
	orbitRadius float32
	orbitVerts  []float32

	Camera *core.OrbitCamera
	planet *core.PlanetRecord

	elapsed  float64
	spinRate float64

	width  int
	height int

	proj core.Mat4
	view core.Mat4

	hud *overlay.HUD

	// OnNext, when set, is invoked from the key handler to request the
	// next catalog record.
	OnNext func()

	// Mouse state for camera control
	dragging  bool
	lastX     float64
	lastY     float64
	lastPress float64
}

// New creates the window, the GL context and every GPU resource the
// viewer needs. Any failure here is fatal to the instance: a shader that
// does not compile returns an error instead of a degraded renderer.
func New(width, height, sphereSegments, sphereRings int, spinRate float64) (*Renderer, error) {
	runtime.LockOSThread()

	if err := glfw.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize GLFW: %v", err)
	}

	glfw.WindowHint(glfw.Resizable, glfw.True)
	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 3)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)

	window, err := glfw.CreateWindow(width, height, "Exoplanet Orbit Viewer", nil, nil)
	if err != nil {
		glfw.Terminate()
		return nil, fmt.Errorf("failed to create window: %v", err)
	}

	window.MakeContextCurrent()

	// Sync buffer swaps to the display refresh; the frame loop advances
	// once per vblank.
	glfw.SwapInterval(1)

	if err := gl.Init(); err != nil {
		glfw.Terminate()
		return nil, fmt.Errorf("failed to initialize OpenGL: %v", err)
	}

	version := gl.GoStr(gl.GetString(gl.VERSION))
	fmt.Println("OpenGL version:", version)

	r := &Renderer{
		window:   window,
		Camera:   core.NewOrbitCamera(),
		spinRate: spinRate,
	}

	gl.Enable(gl.DEPTH_TEST)
	gl.Enable(gl.CULL_FACE)
	gl.ClearColor(0.01, 0.01, 0.04, 1.0)

	r.sphereProgram, err = shaders.NewSphereProgram()
	if err != nil {
		glfw.Terminate()
		return nil, fmt.Errorf("failed to build sphere shader: %v", err)
	}
	r.su = sphereUniforms{
		model:        gl.GetUniformLocation(r.sphereProgram, gl.Str("model\x00")),
		view:         gl.GetUniformLocation(r.sphereProgram, gl.Str("view\x00")),
		projection:   gl.GetUniformLocation(r.sphereProgram, gl.Str("projection\x00")),
		normalMatrix: gl.GetUniformLocation(r.sphereProgram, gl.Str("normalMatrix\x00")),
		lightPos:     gl.GetUniformLocation(r.sphereProgram, gl.Str("lightPos\x00")),
		cameraPos:    gl.GetUniformLocation(r.sphereProgram, gl.Str("cameraPos\x00")),
		baseColor:    gl.GetUniformLocation(r.sphereProgram, gl.Str("baseColor\x00")),
		time:         gl.GetUniformLocation(r.sphereProgram, gl.Str("time\x00")),
	}

	r.lineProgram, err = shaders.NewLineProgram()
	if err != nil {
		glfw.Terminate()
		return nil, fmt.Errorf("failed to build line shader: %v", err)
	}
	r.lu = lineUniforms{
		view:       gl.GetUniformLocation(r.lineProgram, gl.Str("view\x00")),
		projection: gl.GetUniformLocation(r.lineProgram, gl.Str("projection\x00")),
		lineColor:  gl.GetUniformLocation(r.lineProgram, gl.Str("lineColor\x00")),
	}

	r.createSphereBuffers(core.GenerateSphere(1.0, sphereSegments, sphereRings))
	r.createOrbitBuffer()

	r.hud, err = overlay.NewHUD(width, height)
	if err != nil {
		glfw.Terminate()
		return nil, fmt.Errorf("failed to build hud: %v", err)
	}

	window.SetFramebufferSizeCallback(func(w *glfw.Window, width, height int) {
		r.Resize()
	})
	r.installInputCallbacks()

	// Pick up the real framebuffer size; on high-DPI displays it differs
	// from the requested window size.
	r.Resize()

	return r, nil
}

// createSphereBuffers uploads the shared sphere mesh into one VBO per
// attribute plus an index buffer, all bound under a single VAO.
func (r *Renderer) createSphereBuffers(mesh *core.Mesh) {
	gl.GenVertexArrays(1, &r.sphereVAO)
	gl.BindVertexArray(r.sphereVAO)

	gl.GenBuffers(1, &r.posVBO)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.posVBO)
	gl.BufferData(gl.ARRAY_BUFFER, len(mesh.Positions)*4, gl.Ptr(mesh.Positions), gl.STATIC_DRAW)
	gl.VertexAttribPointer(0, 3, gl.FLOAT, false, 0, gl.PtrOffset(0))
	gl.EnableVertexAttribArray(0)

	gl.GenBuffers(1, &r.normVBO)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.normVBO)
	gl.BufferData(gl.ARRAY_BUFFER, len(mesh.Normals)*4, gl.Ptr(mesh.Normals), gl.STATIC_DRAW)
	gl.VertexAttribPointer(1, 3, gl.FLOAT, false, 0, gl.PtrOffset(0))
	gl.EnableVertexAttribArray(1)

	gl.GenBuffers(1, &r.uvVBO)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.uvVBO)
	gl.BufferData(gl.ARRAY_BUFFER, len(mesh.UVs)*4, gl.Ptr(mesh.UVs), gl.STATIC_DRAW)
	gl.VertexAttribPointer(2, 2, gl.FLOAT, false, 0, gl.PtrOffset(0))
	gl.EnableVertexAttribArray(2)

	gl.GenBuffers(1, &r.ebo)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, r.ebo)
	gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(mesh.Indices)*2, gl.Ptr(mesh.Indices), gl.STATIC_DRAW)

	r.indexCount = int32(len(mesh.Indices))

	gl.BindVertexArray(0)
}

// createOrbitBuffer allocates the orbit path VBO once at full capacity.
// The vertex data is rewritten in place whenever the orbit radius
// changes; the line VAO carries only the position attribute.
func (r *Renderer) createOrbitBuffer() {
	gl.GenVertexArrays(1, &r.orbitVAO)
	gl.BindVertexArray(r.orbitVAO)

	gl.GenBuffers(1, &r.orbitVBO)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.orbitVBO)
	gl.BufferData(gl.ARRAY_BUFFER, core.OrbitPathSegments*3*4, nil, gl.DYNAMIC_DRAW)
	gl.VertexAttribPointer(0, 3, gl.FLOAT, false, 0, gl.PtrOffset(0))
	gl.EnableVertexAttribArray(0)

	gl.BindVertexArray(0)

	r.orbitVerts = make([]float32, 0, core.OrbitPathSegments*3)
}

// SetPlanet replaces the record on display. Takes effect on the next
// frame; safe to call before the first frame.
func (r *Renderer) SetPlanet(rec core.PlanetRecord) {
	r.planet = &rec
}

// Planet returns the record currently on display, or nil before the first
// SetPlanet call.
func (r *Renderer) Planet() *core.PlanetRecord {
	return r.planet
}

// Resize re-reads the framebuffer size and updates the viewport. The
// framebuffer size callback invokes this; hosts embedding the renderer
// call it on any surface-size change.
func (r *Renderer) Resize() {
	w, h := r.window.GetFramebufferSize()
	if w == 0 || h == 0 {
		return // minimized
	}
	r.width = w
	r.height = h
	gl.Viewport(0, 0, int32(w), int32(h))
	r.hud.Resize(w, h)
}

// AdvanceFrame runs one frame: advance the clock, ease the camera,
// rebuild view and projection, clear, and draw the scene if a planet is
// set. Ends with the buffer swap, which blocks until vblank.
func (r *Renderer) AdvanceFrame(dt float64) {
	r.elapsed += dt

	r.Camera.Update(r.elapsed)

	aspect := float32(r.width) / float32(r.height)
	core.Perspective(&r.proj, float32(fieldOfView), aspect, 0.1, 100)

	eye := r.Camera.Eye()
	core.LookAt(&r.view, eye, core.Vec3{0, 0, 0}, core.Vec3{0, 1, 0})

	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)

	if r.planet != nil {
		r.drawStar(eye)
		r.drawPlanet(eye)
		r.drawOrbitPath()
	}

	r.hud.Render()

	r.window.SwapBuffers()
}

// Elapsed returns total scene time in seconds.
func (r *Renderer) Elapsed() float64 {
	return r.elapsed
}

// SetHUDStats forwards frame statistics to the overlay.
func (r *Renderer) SetHUDStats(fps, countdown float64) {
	r.hud.Update(fps, countdown)
}

func (r *Renderer) drawStar(eye core.Vec3) {
	s := core.StarScale(r.planet.StarRadSun)

	var model core.Mat4
	core.Identity(&model)
	core.Scale(&model, core.Vec3{s, s, s})

	r.drawSphere(&model, eye, core.StarColor(r.planet.StarTeffK))
}

func (r *Renderer) drawPlanet(eye core.Vec3) {
	angle := core.OrbitAngle(r.elapsed, r.planet.PeriodDays)
	pos := core.OrbitPosition(angle, core.OrbitRadius(r.planet.AOverRstar))
	s := core.PlanetScale(r.planet.RadiusEarth)

	var model core.Mat4
	core.Identity(&model)
	core.Translate(&model, pos)
	core.RotateY(&model, float32(r.elapsed*r.spinRate))
	core.Scale(&model, core.Vec3{s, s, s})

	r.drawSphere(&model, eye, core.PlanetColor(r.planet.EqTempK))
}

func (r *Renderer) drawSphere(model *core.Mat4, eye core.Vec3, color colorful.Color) {
	gl.UseProgram(r.sphereProgram)

	var normal core.Mat3
	if core.NormalFromMat4(&normal, model) == nil {
		// Singular model matrix: draw with untransformed normals rather
		// than dividing by a zero determinant.
		core.IdentityMat3(&normal)
	}

	gl.UniformMatrix4fv(r.su.model, 1, false, &model[0])
	gl.UniformMatrix4fv(r.su.view, 1, false, &r.view[0])
	gl.UniformMatrix4fv(r.su.projection, 1, false, &r.proj[0])
	gl.UniformMatrix3fv(r.su.normalMatrix, 1, false, &normal[0])
	gl.Uniform3f(r.su.lightPos, 0, 0, 0)
	gl.Uniform3f(r.su.cameraPos, eye[0], eye[1], eye[2])
	gl.Uniform3f(r.su.baseColor, float32(color.R), float32(color.G), float32(color.B))
	gl.Uniform1f(r.su.time, float32(r.elapsed))

	gl.BindVertexArray(r.sphereVAO)
	gl.DrawElements(gl.TRIANGLES, r.indexCount, gl.UNSIGNED_SHORT, gl.PtrOffset(0))
	gl.BindVertexArray(0)
}

func (r *Renderer) drawOrbitPath() {
	radius := core.OrbitRadius(r.planet.AOverRstar)

	if radius != r.orbitRadius {
		r.orbitVerts = core.OrbitPath(r.orbitVerts, radius)
		gl.BindBuffer(gl.ARRAY_BUFFER, r.orbitVBO)
		gl.BufferSubData(gl.ARRAY_BUFFER, 0, len(r.orbitVerts)*4, gl.Ptr(r.orbitVerts))
		r.orbitRadius = radius
	}

	gl.UseProgram(r.lineProgram)
	gl.UniformMatrix4fv(r.lu.view, 1, false, &r.view[0])
	gl.UniformMatrix4fv(r.lu.projection, 1, false, &r.proj[0])
	gl.Uniform4f(r.lu.lineColor, 0.6, 0.6, 0.7, 0.5)

	gl.Enable(gl.BLEND)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)

	gl.BindVertexArray(r.orbitVAO)
	gl.DrawArrays(gl.LINE_LOOP, 0, core.OrbitPathSegments)
	gl.BindVertexArray(0)

	gl.Disable(gl.BLEND)
}

// ShouldClose reports whether the window has been asked to close.
func (r *Renderer) ShouldClose() bool {
	return r.window.ShouldClose()
}

// PollEvents pumps the window event queue. Input callbacks run here, on
// the render thread.
func (r *Renderer) PollEvents() {
	glfw.PollEvents()
}

// Terminate releases all GL resources and tears down the window.
func (r *Renderer) Terminate() {
	r.hud.Delete()
	gl.DeleteProgram(r.sphereProgram)
	gl.DeleteProgram(r.lineProgram)
	gl.DeleteVertexArrays(1, &r.sphereVAO)
	gl.DeleteVertexArrays(1, &r.orbitVAO)
	gl.DeleteBuffers(1, &r.posVBO)
	gl.DeleteBuffers(1, &r.normVBO)
	gl.DeleteBuffers(1, &r.uvVBO)
	gl.DeleteBuffers(1, &r.ebo)
	gl.DeleteBuffers(1, &r.orbitVBO)
	r.window.Destroy()
	glfw.Terminate()
}
