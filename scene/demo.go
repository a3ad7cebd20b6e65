// Package scene builds the demo: a black backdrop, three triangles orbiting
// the centre and three rectangles pulsing behind them.
package scene

import (
	"github.com/der-antikeks/flatscene/engine"
	"github.com/der-antikeks/flatscene/log"
)

var logger = log.New("scene")

const (
	OrbitDistance float32 = 120

	TriangleSize  float32 = 50
	TriangleAlpha float32 = 0.8

	QuadWidth     float32 = 300
	QuadHeight    float32 = 100
	QuadAmplitude float32 = 100
	QuadSpacing   float32 = 100
	QuadAlpha     float32 = 0.4

	thirdTurn float32 = 2.094
)

var (
	red   = [3]float32{1, 0, 0}
	green = [3]float32{0, 1, 0}
	blue  = [3]float32{0, 0, 1}
)

type Demo struct {
	Background *engine.Mesh
	Triangles  [3]*engine.Mesh
	Quads      [3]*engine.Mesh

	// shared by the meshes above
	triangle, rectangle *engine.Geometry
}

// NewDemo lays the scene out for a view of width by height world units, all
// meshes share prg.
func NewDemo(ctx engine.Context, prg *engine.Program, width, height float32) *Demo {
	d := &Demo{
		triangle:  engine.NewTriangle(ctx, 1, 1),
		rectangle: engine.NewRectangle(ctx, 1, 1),
	}

	d.Background = engine.NewMesh(d.rectangle, prg)
	d.Background.SetColor(0, 0, 0, 1)
	d.Background.SetScale(width, height, 1)

	orbits := [3]engine.Animatable{
		Orbit{Distance: OrbitDistance, Offset: 0, Spin: 1},
		Orbit{Distance: OrbitDistance, Offset: thirdTurn, Spin: -1},
		Orbit{Distance: OrbitDistance, Offset: -thirdTurn, Spin: 2},
	}
	for i, c := range [3][3]float32{red, green, blue} {
		m := engine.NewMesh(d.triangle, prg)
		m.SetColor(c[0], c[1], c[2], TriangleAlpha)
		m.SetScale(TriangleSize, TriangleSize, TriangleSize)
		m.SetBehavior(orbits[i])
		d.Triangles[i] = m
	}

	offsets := [3]float32{0, -thirdTurn, thirdTurn}
	for i, c := range [3][3]float32{red, green, blue} {
		m := engine.NewMesh(d.rectangle, prg)
		m.SetColor(c[0], c[1], c[2], QuadAlpha)
		m.SetScale(QuadWidth, QuadHeight, 1)
		m.SetPosition(0, QuadSpacing*float32(1-i), 0)
		m.SetBehavior(Pulse{Width: QuadWidth, Height: QuadHeight, Amplitude: QuadAmplitude, Offset: offsets[i]})
		d.Quads[i] = m
	}

	logger.Debugf("demo scene laid out for a %vx%v view", width, height)

	return d
}

// Meshes returns the meshes in draw order, the background first.
func (d *Demo) Meshes() []*engine.Mesh {
	meshes := []*engine.Mesh{d.Background}
	meshes = append(meshes, d.Triangles[:]...)
	return append(meshes, d.Quads[:]...)
}

func (d *Demo) Dispose() {
	d.triangle.Dispose()
	d.rectangle.Dispose()
}
