package core

import "math"

// Mesh holds a UV-sphere as four parallel buffers, laid out for separate
// vertex attribute bindings. Generated once and shared by every sphere
// draw; the per-draw model matrix supplies scale and position.
type Mesh struct {
	Positions []float32 // 3 floats per vertex
	Normals   []float32 // 3 floats per vertex
	UVs       []float32 // 2 floats per vertex
	Indices   []uint16
}

// VertexCount returns the number of vertices in the mesh.
func (m *Mesh) VertexCount() int {
	return len(m.Positions) / 3
}

// GenerateSphere builds a UV sphere from latitude rings and longitude
// segments. Vertex count is (rings+1)*(segments+1); each quad of adjacent
// ring/segment vertices becomes two triangles wound for back-face culling.
// Identical inputs always produce identical output.
func GenerateSphere(radius float32, segments, rings int) *Mesh {
	vertexCount := (rings + 1) * (segments + 1)
	m := &Mesh{
		Positions: make([]float32, 0, vertexCount*3),
		Normals:   make([]float32, 0, vertexCount*3),
		UVs:       make([]float32, 0, vertexCount*2),
		Indices:   make([]uint16, 0, rings*segments*6),
	}

	for ring := 0; ring <= rings; ring++ {
		ringFrac := float64(ring) / float64(rings)
		lat := -math.Pi/2 + math.Pi*ringFrac
		y := math.Sin(lat)
		r := math.Cos(lat)

		for seg := 0; seg <= segments; seg++ {
			segFrac := float64(seg) / float64(segments)
			lon := 2 * math.Pi * segFrac
			x := r * math.Cos(lon)
			z := r * math.Sin(lon)

			m.Positions = append(m.Positions,
				float32(x)*radius, float32(y)*radius, float32(z)*radius)
			m.Normals = append(m.Normals, float32(x), float32(y), float32(z))
			m.UVs = append(m.UVs, float32(1-segFrac), float32(1-ringFrac))
		}
	}

	for ring := 0; ring < rings; ring++ {
		for seg := 0; seg < segments; seg++ {
			first := uint16(ring*(segments+1) + seg)
			second := first + uint16(segments) + 1

			m.Indices = append(m.Indices, first, second, first+1)
			m.Indices = append(m.Indices, second, second+1, first+1)
		}
	}

	return m
}
