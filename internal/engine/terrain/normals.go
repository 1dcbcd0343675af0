package terrain

import (
	vmath "github.com/Faultbox/terravis/pkg/math"
)

// ComputeNormals derives a per-vertex lighting normal by accumulating
// the face normal of every incident triangle and renormalizing. A
// vertex referenced by no triangle keeps the zero normal rather than
// turning into NaN.
func ComputeNormals(vertices []Vertex, indices []uint32) {
	for i := range vertices {
		vertices[i].Normal = [3]float32{}
	}

	for i := 0; i+2 < len(indices); i += 3 {
		i0, i1, i2 := indices[i], indices[i+1], indices[i+2]

		v0 := vmath.FromArray(vertices[i0].Position)
		v1 := vmath.FromArray(vertices[i1].Position)
		v2 := vmath.FromArray(vertices[i2].Position)

		face := v1.Sub(v0).Cross(v2.Sub(v0)).Normalize()

		for _, idx := range [3]uint32{i0, i1, i2} {
			n := vmath.FromArray(vertices[idx].Normal).Add(face)
			vertices[idx].Normal = n.Array()
		}
	}

	for i := range vertices {
		vertices[i].Normal = vmath.FromArray(vertices[i].Normal).Normalize().Array()
	}
}
