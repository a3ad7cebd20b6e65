package engine

import (
	"strconv"

	"github.com/bits-and-blooms/bitset"
	"github.com/der-antikeks/flatscene/log"
	"github.com/go-gl/mathgl/mgl32"
)

var logger = log.New("engine")

type AttributeName string

const (
	AttributePosition AttributeName = "position"
	AttributeNormal   AttributeName = "normal"
	AttributeTangent  AttributeName = "tangent"
	AttributeUV       AttributeName = "uv"
	AttributeColour   AttributeName = "colour"
)

// Attributes lists every attribute a program is queried for, in bind order.
var Attributes = []AttributeName{
	AttributePosition,
	AttributeNormal,
	AttributeTangent,
	AttributeUV,
	AttributeColour,
}

var attributeVariables = map[AttributeName]string{
	AttributePosition: "aPosition",
	AttributeNormal:   "aNormal",
	AttributeTangent:  "aTangent",
	AttributeUV:       "aUV",
	AttributeColour:   "aColour",
}

// Variable returns the name of the shader input bound to the attribute.
func (a AttributeName) Variable() string {
	return attributeVariables[a]
}

type UniformName string

const (
	UniformProjection UniformName = "projectionMatrix"
	UniformModelView  UniformName = "modelViewMatrix"
	UniformColour     UniformName = "colour"
)

var Uniforms = []UniformName{
	UniformProjection,
	UniformModelView,
	UniformColour,
}

var uniformVariables = map[UniformName]string{
	UniformProjection: "projection",
	UniformModelView:  "modelView",
	UniformColour:     "colour",
}

func (u UniformName) Variable() string {
	return uniformVariables[u]
}

// Location is a resolved attribute or uniform slot, or Absent.
type Location struct {
	slot  uint32
	valid bool
}

// Absent marks a name the program does not use.
var Absent = Location{}

func locationOf(raw int32) Location {
	if raw < 0 {
		return Absent
	}
	return Location{slot: uint32(raw), valid: true}
}

func (l Location) Slot() (uint32, bool) {
	return l.slot, l.valid
}

func (l Location) Present() bool {
	return l.valid
}

func (l Location) String() string {
	if !l.valid {
		return "absent"
	}
	return strconv.FormatUint(uint64(l.slot), 10)
}

// Program is a linked vertex/fragment pair with its locations resolved once.
type Program struct {
	ctx        Context
	program    Handle
	attributes map[AttributeName]Location
	uniforms   map[UniformName]Location

	// attribute slots enabled by BindForDraw
	enabled *bitset.BitSet
}

// NewProgram compiles, links and resolves a program. The returned program is
// never nil: when a stage does not compile it is left without a handle and
// with every location absent, so objects bound to it draw nothing useful.
// The compile or link error is returned alongside for the caller to report.
func NewProgram(ctx Context, vertex, fragment string) (*Program, error) {
	prg := &Program{
		ctx:        ctx,
		attributes: make(map[AttributeName]Location),
		uniforms:   make(map[UniformName]Location),
		enabled:    bitset.New(uint(len(Attributes))),
	}

	vshader, err := Compile(ctx, vertex, VertexStage)
	if err != nil {
		return prg, err
	}
	defer ctx.DeleteShader(vshader)

	fshader, err := Compile(ctx, fragment, FragmentStage)
	if err != nil {
		return prg, err
	}
	defer ctx.DeleteShader(fshader)

	prg.program, err = Link(ctx, vshader, fshader)
	prg.attributes, prg.uniforms = ResolveLocations(ctx, prg.program)

	return prg, err
}

func (p *Program) Handle() Handle {
	return p.program
}

// Attribute returns the resolved location, Absent for unknown names.
func (p *Program) Attribute(name AttributeName) Location {
	return p.attributes[name]
}

func (p *Program) Uniform(name UniformName) Location {
	return p.uniforms[name]
}

// set after BindForDraw, uniforms go to the active program
func (p *Program) SetFrameUniforms(projection, modelView mgl32.Mat4) {
	if slot, ok := p.uniforms[UniformProjection].Slot(); ok {
		p.ctx.UniformMatrix4(slot, projection)
	}
	if slot, ok := p.uniforms[UniformModelView].Slot(); ok {
		p.ctx.UniformMatrix4(slot, modelView)
	}
}

func (p *Program) SetColorUniform(color mgl32.Vec4) {
	if slot, ok := p.uniforms[UniformColour].Slot(); ok {
		p.ctx.Uniform4(slot, color)
	}
}

// BindForDraw points every attribute the program uses at the matching buffer
// and makes the program active. Buffers without a resolved location and
// locations without a buffer are skipped.
func (p *Program) BindForDraw(buffers map[AttributeName]*Buffer) {
	for _, name := range Attributes {
		b, ok := buffers[name]
		if !ok {
			continue
		}

		slot, ok := p.attributes[name].Slot()
		if !ok {
			continue
		}

		p.ctx.BindBuffer(b.handle)
		p.ctx.VertexAttribPointer(slot, b.ItemSize)
		p.ctx.EnableVertexAttribArray(slot)
		p.enabled.Set(uint(slot))
	}

	p.ctx.UseProgram(p.program)
}

// disable before another program enables its own slots
func (p *Program) DisableAttributes() {
	for i, ok := p.enabled.NextSet(0); ok; i, ok = p.enabled.NextSet(i + 1) {
		p.ctx.DisableVertexAttribArray(uint32(i))
	}
	p.enabled.ClearAll()
}

func (p *Program) Dispose() {
	if p.program != 0 {
		p.ctx.DeleteProgram(p.program)
		p.program = 0
	}
}
