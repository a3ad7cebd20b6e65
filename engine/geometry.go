package engine

// Buffer is one uploaded vertex attribute.
type Buffer struct {
	handle      Handle
	ItemSize    int // components per vertex
	VertexCount int
}

func (b *Buffer) Handle() Handle {
	return b.handle
}

// Geometry is a set of vertex attribute buffers drawn as a triangle list.
// It is shared by every mesh using the shape and not changed after creation.
type Geometry struct {
	ctx     Context
	buffers map[AttributeName]*Buffer
}

func NewGeometry(ctx Context) *Geometry {
	return &Geometry{
		ctx:     ctx,
		buffers: make(map[AttributeName]*Buffer),
	}
}

// NewTriangle returns an apex-up triangle of 3 vertices.
func NewTriangle(ctx Context, height, width float32) *Geometry {
	height *= 0.5
	width *= 0.5

	return newFlatGeometry(ctx, []float32{
		0.0, height, 0.0,
		width, -height, 0.0,
		-width, -width, 0.0,
	})
}

// NewRectangle returns a rectangle of two triangles, 6 vertices.
func NewRectangle(ctx Context, width, height float32) *Geometry {
	width *= 0.5
	height *= 0.5

	return newFlatGeometry(ctx, []float32{
		-width, height, 0.0,
		width, -height, 0.0,
		-width, -height, 0.0,
		-width, height, 0.0,
		width, height, 0.0,
		width, -height, 0.0,
	})
}

// flat normals facing +z, white vertex colour
func newFlatGeometry(ctx Context, positions []float32) *Geometry {
	n := len(positions) / 3

	g := NewGeometry(ctx)
	g.mustUpload(positions, AttributePosition, 3)
	g.mustUpload(repeat([]float32{0, 0, 1}, n), AttributeNormal, 3)
	g.mustUpload(repeat([]float32{1, 1, 1, 1}, n), AttributeColour, 4)

	return g
}

func (g *Geometry) mustUpload(data []float32, name AttributeName, size int) {
	if _, err := g.UploadAttribute(data, name, size); err != nil {
		panic(err)
	}
}

func repeat(v []float32, n int) []float32 {
	r := make([]float32, 0, len(v)*n)
	for i := 0; i < n; i++ {
		r = append(r, v...)
	}
	return r
}

// UploadAttribute copies data into a new gpu buffer under name. Uploading a
// name twice replaces the earlier buffer.
func (g *Geometry) UploadAttribute(data []float32, name AttributeName, itemSize int) (*Buffer, error) {
	if itemSize < 1 || len(data)%itemSize != 0 {
		return nil, &InvalidSizeError{
			Attribute: name,
			Length:    len(data),
			ItemSize:  itemSize,
		}
	}

	count := len(data) / itemSize
	for n, b := range g.buffers {
		if n != name && b.VertexCount != count {
			return nil, &InvalidSizeError{
				Attribute:   name,
				Length:      len(data),
				ItemSize:    itemSize,
				Mismatch:    true,
				VertexCount: count,
				Expected:    b.VertexCount,
			}
		}
	}

	if old, ok := g.buffers[name]; ok {
		g.ctx.DeleteBuffer(old.handle)
	}

	b := &Buffer{
		handle:      g.ctx.CreateBuffer(data),
		ItemSize:    itemSize,
		VertexCount: count,
	}
	g.buffers[name] = b

	return b, nil
}

// Buffers is shared with the caller and must not be modified.
func (g *Geometry) Buffers() map[AttributeName]*Buffer {
	return g.buffers
}

func (g *Geometry) Buffer(name AttributeName) (*Buffer, bool) {
	b, ok := g.buffers[name]
	return b, ok
}

// VertexCount is the number of vertices of the position attribute, 0 without one.
func (g *Geometry) VertexCount() int {
	if b, ok := g.buffers[AttributePosition]; ok {
		return b.VertexCount
	}
	return 0
}

// Draw issues a triangle list over the position attribute.
func (g *Geometry) Draw() error {
	pos, ok := g.buffers[AttributePosition]
	if !ok {
		return &MissingAttributeError{Attribute: AttributePosition}
	}

	g.ctx.DrawTriangles(0, pos.VertexCount)
	return nil
}

func (g *Geometry) Dispose() {
	for n, b := range g.buffers {
		g.ctx.DeleteBuffer(b.handle)
		delete(g.buffers, n)
	}
}
