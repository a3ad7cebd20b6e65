// Package glcontext implements engine.Context on OpenGL 3.3 core and opens
// the glfw window it renders into. Every call must come from the thread that
// created the window.
package glcontext

import (
	"errors"
	"fmt"
	"strings"

	"github.com/der-antikeks/flatscene/engine"
	"github.com/der-antikeks/flatscene/log"
	"github.com/go-gl/gl/v3.3-core/gl"
	"github.com/go-gl/mathgl/mgl32"
)

var logger = log.New("glcontext")

var (
	ErrInitGL  = errors.New("glcontext: could not initialize OpenGL")
	ErrGLState = errors.New("glcontext: OpenGL error")
)

var stageTypes = map[engine.StageKind]uint32{
	engine.VertexStage:   gl.VERTEX_SHADER,
	engine.FragmentStage: gl.FRAGMENT_SHADER,
}

// Context issues engine calls against the current OpenGL context.
type Context struct {
	vao uint32
}

// New loads the OpenGL function pointers of the current context and binds
// the single vertex array object every attribute pointer is recorded in.
func New() (*Context, error) {
	if err := gl.Init(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInitGL, err)
	}
	logger.Noticef("OpenGL %v, GLSL %v", gl.GoStr(gl.GetString(gl.VERSION)), gl.GoStr(gl.GetString(gl.SHADING_LANGUAGE_VERSION)))

	c := &Context{}
	gl.GenVertexArrays(1, &c.vao)
	gl.BindVertexArray(c.vao)

	return c, nil
}

// CheckError returns the oldest pending OpenGL error flag.
func (c *Context) CheckError() error {
	if code := gl.GetError(); code != gl.NO_ERROR {
		return fmt.Errorf("%w: 0x%x", ErrGLState, code)
	}
	return nil
}

func (c *Context) Dispose() {
	gl.BindVertexArray(0)
	gl.DeleteVertexArrays(1, &c.vao)
}

func (c *Context) CompileShader(kind engine.StageKind, source string) (engine.Handle, bool, string) {
	shader := gl.CreateShader(stageTypes[kind])

	csources, free := gl.Strs(source + "\x00")
	gl.ShaderSource(shader, 1, csources, nil)
	free()
	gl.CompileShader(shader)

	var status int32
	gl.GetShaderiv(shader, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		var length int32
		gl.GetShaderiv(shader, gl.INFO_LOG_LENGTH, &length)

		info := strings.Repeat("\x00", int(length+1))
		gl.GetShaderInfoLog(shader, length, nil, gl.Str(info))

		return engine.Handle(shader), false, strings.TrimRight(info, "\x00")
	}

	return engine.Handle(shader), true, ""
}

func (c *Context) DeleteShader(shader engine.Handle) {
	gl.DeleteShader(uint32(shader))
}

func (c *Context) LinkProgram(vertex, fragment engine.Handle) (engine.Handle, bool, string) {
	program := gl.CreateProgram()
	gl.AttachShader(program, uint32(vertex))
	gl.AttachShader(program, uint32(fragment))
	gl.LinkProgram(program)

	// stages are flagged for deletion by the caller, detach so they can go
	gl.DetachShader(program, uint32(vertex))
	gl.DetachShader(program, uint32(fragment))

	var status int32
	gl.GetProgramiv(program, gl.LINK_STATUS, &status)
	if status == gl.FALSE {
		var length int32
		gl.GetProgramiv(program, gl.INFO_LOG_LENGTH, &length)

		info := strings.Repeat("\x00", int(length+1))
		gl.GetProgramInfoLog(program, length, nil, gl.Str(info))

		return engine.Handle(program), false, strings.TrimRight(info, "\x00")
	}

	return engine.Handle(program), true, ""
}

func (c *Context) DeleteProgram(program engine.Handle) {
	gl.DeleteProgram(uint32(program))
}

func (c *Context) UseProgram(program engine.Handle) {
	gl.UseProgram(uint32(program))
}

func (c *Context) AttribLocation(program engine.Handle, name string) int32 {
	return gl.GetAttribLocation(uint32(program), gl.Str(name+"\x00"))
}

func (c *Context) UniformLocation(program engine.Handle, name string) int32 {
	return gl.GetUniformLocation(uint32(program), gl.Str(name+"\x00"))
}

func (c *Context) UniformMatrix4(location uint32, m mgl32.Mat4) {
	gl.UniformMatrix4fv(int32(location), 1, false, &m[0])
}

func (c *Context) Uniform4(location uint32, v mgl32.Vec4) {
	gl.Uniform4fv(int32(location), 1, &v[0])
}

func (c *Context) CreateBuffer(data []float32) engine.Handle {
	var buffer uint32
	gl.GenBuffers(1, &buffer)
	gl.BindBuffer(gl.ARRAY_BUFFER, buffer)
	if len(data) > 0 {
		gl.BufferData(gl.ARRAY_BUFFER, len(data)*4, gl.Ptr(data), gl.STATIC_DRAW)
	}
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)

	return engine.Handle(buffer)
}

func (c *Context) DeleteBuffer(buffer engine.Handle) {
	b := uint32(buffer)
	gl.DeleteBuffers(1, &b)
}

func (c *Context) BindBuffer(buffer engine.Handle) {
	gl.BindBuffer(gl.ARRAY_BUFFER, uint32(buffer))
}

func (c *Context) VertexAttribPointer(location uint32, size int) {
	gl.VertexAttribPointer(location, int32(size), gl.FLOAT, false, 0, gl.PtrOffset(0))
}

func (c *Context) EnableVertexAttribArray(location uint32) {
	gl.EnableVertexAttribArray(location)
}

func (c *Context) DisableVertexAttribArray(location uint32) {
	gl.DisableVertexAttribArray(location)
}

func (c *Context) DrawTriangles(first, count int) {
	gl.DrawArrays(gl.TRIANGLES, int32(first), int32(count))
}

func (c *Context) Viewport(x, y, width, height int) {
	gl.Viewport(int32(x), int32(y), int32(width), int32(height))
}

func (c *Context) ClearColor(red, green, blue, alpha float32) {
	gl.ClearColor(red, green, blue, alpha)
}

func (c *Context) Clear() {
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)
}

// CullBackFaces selects the back face for culling without enabling it, the
// flat factory shapes are wound clockwise.
func (c *Context) CullBackFaces() {
	gl.CullFace(gl.BACK)
}

func (c *Context) EnableAlphaBlending() {
	gl.Enable(gl.BLEND)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)
}

var _ engine.Context = (*Context)(nil)
