package scene

import (
	"math"

	"github.com/der-antikeks/flatscene/engine"
)

// Orbit circles the origin at Distance, starting Offset radians into the
// circle, and spins the mesh Spin times as fast as it orbits.
type Orbit struct {
	Distance float32
	Offset   float32
	Spin     float32
}

func (o Orbit) Update(m *engine.Mesh, delta float32) {
	rot := float64(m.AdvancePhase(delta) + o.Offset)
	d := float64(o.Distance)

	m.SetPosition(float32(math.Cos(rot)*d), float32(math.Sin(rot)*d), 0)
	m.RotateZ(delta * o.Spin)
}

// Pulse oscillates the horizontal scale around Width by Amplitude.
type Pulse struct {
	Width, Height float32
	Amplitude     float32
	Offset        float32
}

func (p Pulse) Update(m *engine.Mesh, delta float32) {
	phase := float64(m.AdvancePhase(delta) + p.Offset)
	m.SetScale(p.Width+p.Amplitude*float32(math.Cos(phase)), p.Height, 1)
}
