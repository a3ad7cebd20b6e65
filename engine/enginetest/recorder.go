// Package enginetest provides a recording engine.Context for tests.
package enginetest

import (
	"fmt"
	"strings"

	"github.com/der-antikeks/flatscene/engine"
	"github.com/go-gl/mathgl/mgl32"
)

// Recorder implements engine.Context without a gpu. Every call is appended to
// Calls in a "Name(args)" form, uploaded data and uniform values are kept.
type Recorder struct {
	Calls []string

	// shader variable name to location, missing names resolve to -1
	Locations map[string]int32

	// stages whose compilation fails, with their info log
	FailCompile map[engine.StageKind]string
	// non-empty makes linking fail with this info log
	FailLink string

	Buffers  map[engine.Handle][]float32
	Matrices map[uint32]mgl32.Mat4
	Vectors  map[uint32]mgl32.Vec4

	next engine.Handle
}

// NewRecorder resolves the passthrough shader layout: attributes aPosition 0
// to aColour 4, uniforms projection 0, modelView 1, colour 2.
func NewRecorder() *Recorder {
	return &Recorder{
		Locations: map[string]int32{
			"aPosition":  0,
			"aNormal":    1,
			"aTangent":   2,
			"aUV":        3,
			"aColour":    4,
			"projection": 0,
			"modelView":  1,
			"colour":     2,
		},
		FailCompile: map[engine.StageKind]string{},
		Buffers:     map[engine.Handle][]float32{},
		Matrices:    map[uint32]mgl32.Mat4{},
		Vectors:     map[uint32]mgl32.Vec4{},
	}
}

func (r *Recorder) record(name string, args ...interface{}) {
	s := make([]string, len(args))
	for i, a := range args {
		s[i] = fmt.Sprint(a)
	}
	r.Calls = append(r.Calls, name+"("+strings.Join(s, ", ")+")")
}

func (r *Recorder) handle() engine.Handle {
	r.next++
	return r.next
}

// Reset forgets the recorded calls.
func (r *Recorder) Reset() {
	r.Calls = nil
}

// Count returns how many recorded calls start with prefix.
func (r *Recorder) Count(prefix string) int {
	var n int
	for _, c := range r.Calls {
		if strings.HasPrefix(c, prefix) {
			n++
		}
	}
	return n
}

// Filter returns the recorded calls starting with one of the prefixes, in order.
func (r *Recorder) Filter(prefixes ...string) []string {
	var f []string
	for _, c := range r.Calls {
		for _, p := range prefixes {
			if strings.HasPrefix(c, p) {
				f = append(f, c)
				break
			}
		}
	}
	return f
}

func (r *Recorder) CompileShader(kind engine.StageKind, source string) (engine.Handle, bool, string) {
	h := r.handle()
	r.record("CompileShader", kind, h)

	if info, ok := r.FailCompile[kind]; ok {
		return h, false, info
	}
	return h, true, ""
}

func (r *Recorder) DeleteShader(shader engine.Handle) {
	r.record("DeleteShader", shader)
}

func (r *Recorder) LinkProgram(vertex, fragment engine.Handle) (engine.Handle, bool, string) {
	h := r.handle()
	r.record("LinkProgram", vertex, fragment, h)

	if r.FailLink != "" {
		return h, false, r.FailLink
	}
	return h, true, ""
}

func (r *Recorder) DeleteProgram(program engine.Handle) {
	r.record("DeleteProgram", program)
}

func (r *Recorder) UseProgram(program engine.Handle) {
	r.record("UseProgram", program)
}

func (r *Recorder) AttribLocation(program engine.Handle, name string) int32 {
	if l, ok := r.Locations[name]; ok {
		return l
	}
	return -1
}

func (r *Recorder) UniformLocation(program engine.Handle, name string) int32 {
	if l, ok := r.Locations[name]; ok {
		return l
	}
	return -1
}

func (r *Recorder) UniformMatrix4(location uint32, m mgl32.Mat4) {
	r.Matrices[location] = m
	r.record("UniformMatrix4", location)
}

func (r *Recorder) Uniform4(location uint32, v mgl32.Vec4) {
	r.Vectors[location] = v
	r.record("Uniform4", location, v)
}

func (r *Recorder) CreateBuffer(data []float32) engine.Handle {
	h := r.handle()
	r.Buffers[h] = append([]float32(nil), data...)
	r.record("CreateBuffer", h, len(data))
	return h
}

func (r *Recorder) DeleteBuffer(buffer engine.Handle) {
	delete(r.Buffers, buffer)
	r.record("DeleteBuffer", buffer)
}

func (r *Recorder) BindBuffer(buffer engine.Handle) {
	r.record("BindBuffer", buffer)
}

func (r *Recorder) VertexAttribPointer(location uint32, size int) {
	r.record("VertexAttribPointer", location, size)
}

func (r *Recorder) EnableVertexAttribArray(location uint32) {
	r.record("EnableVertexAttribArray", location)
}

func (r *Recorder) DisableVertexAttribArray(location uint32) {
	r.record("DisableVertexAttribArray", location)
}

func (r *Recorder) DrawTriangles(first, count int) {
	r.record("DrawTriangles", first, count)
}

func (r *Recorder) Viewport(x, y, width, height int) {
	r.record("Viewport", x, y, width, height)
}

func (r *Recorder) ClearColor(red, green, blue, alpha float32) {
	r.record("ClearColor", red, green, blue, alpha)
}

func (r *Recorder) Clear() {
	r.record("Clear")
}

func (r *Recorder) CullBackFaces() {
	r.record("CullBackFaces")
}

func (r *Recorder) EnableAlphaBlending() {
	r.record("EnableAlphaBlending")
}

var _ engine.Context = (*Recorder)(nil)
