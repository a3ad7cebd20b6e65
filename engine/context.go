package engine

import (
	"github.com/go-gl/mathgl/mgl32"
)

// Handle names an object owned by the graphics context (shader, program, buffer).
type Handle uint32

type StageKind int

const (
	VertexStage StageKind = iota
	FragmentStage
)

func (k StageKind) String() string {
	switch k {
	case VertexStage:
		return "vertex"
	case FragmentStage:
		return "fragment"
	}
	return "unknown"
}

// Context is the immediate-mode graphics api the engine issues its calls to.
// Apart from compile/link status and location queries nothing is read back.
type Context interface {
	// shaders
	CompileShader(kind StageKind, source string) (shader Handle, ok bool, info string)
	DeleteShader(shader Handle)
	LinkProgram(vertex, fragment Handle) (program Handle, ok bool, info string)
	DeleteProgram(program Handle)
	UseProgram(program Handle)

	// locations are -1 when the program does not use the variable
	AttribLocation(program Handle, name string) int32
	UniformLocation(program Handle, name string) int32

	UniformMatrix4(location uint32, m mgl32.Mat4)
	Uniform4(location uint32, v mgl32.Vec4)

	// vertex buffers
	CreateBuffer(data []float32) Handle
	DeleteBuffer(buffer Handle)
	BindBuffer(buffer Handle)
	VertexAttribPointer(location uint32, size int)
	EnableVertexAttribArray(location uint32)
	DisableVertexAttribArray(location uint32)
	DrawTriangles(first, count int)

	// state
	Viewport(x, y, width, height int)
	ClearColor(r, g, b, a float32)
	Clear()
	CullBackFaces()
	EnableAlphaBlending()
}
