package terrain

import (
	"errors"
	"sort"

	"go.uber.org/zap"

	"github.com/Faultbox/terravis/internal/logger"
	vmath "github.com/Faultbox/terravis/pkg/math"
	"github.com/Faultbox/terravis/pkg/pointcloud"
)

// ErrInsufficientPoints is returned when fewer than 3 samples are
// available, which cannot form a single triangle.
var ErrInsufficientPoints = errors.New("not enough points to build a mesh")

// BuildMesh turns normalized samples into a triangle mesh.
//
// Triangulation is a deliberate strip heuristic, not Delaunay: points
// are ordered by (x, z) and every window of three consecutive positions
// becomes a triangle, after which any triangle with an edge of maxEdge
// or longer is discarded. The emitted indices always address the
// load-order vertex array; the sort only decides which vertices are
// stitched together.
func BuildMesh(points []pointcloud.Point, maxEdge float32) (*Mesh, error) {
	if len(points) < 3 {
		return nil, ErrInsufficientPoints
	}

	vertices := make([]Vertex, len(points))
	bounds := Bounds{
		Min: [3]float32{points[0].X, points[0].Y, points[0].Z},
		Max: [3]float32{points[0].X, points[0].Y, points[0].Z},
	}
	for i, p := range points {
		vertices[i] = Vertex{Position: [3]float32{p.X, p.Y, p.Z}}
		updateBounds(&bounds, vertices[i].Position)
	}

	indices := filterLongEdges(vertices, stripIndices(points), maxEdge)

	return &Mesh{
		Vertices: vertices,
		Indices:  indices,
		Bounds:   bounds,
	}, nil
}

// stripIndices emits one triangle per window of three consecutive
// positions in (x asc, z asc) order. The returned values are load-order
// vertex indices, mapped back through the sort permutation.
func stripIndices(points []pointcloud.Point) []uint32 {
	order := make([]int, len(points))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		pa, pb := points[order[a]], points[order[b]]
		if pa.X != pb.X {
			return pa.X < pb.X
		}
		return pa.Z < pb.Z
	})

	indices := make([]uint32, 0, 3*(len(points)-2))
	for i := 0; i+2 < len(order); i++ {
		indices = append(indices,
			uint32(order[i]),
			uint32(order[i+1]),
			uint32(order[i+2]),
		)
	}
	return indices
}

// filterLongEdges keeps only triangles whose three edges are all
// strictly shorter than maxEdge. Each discard is reported as a debug
// diagnostic with its indices and edge lengths.
func filterLongEdges(vertices []Vertex, indices []uint32, maxEdge float32) []uint32 {
	kept := make([]uint32, 0, len(indices))

	for i := 0; i+2 < len(indices); i += 3 {
		v0 := vmath.FromArray(vertices[indices[i]].Position)
		v1 := vmath.FromArray(vertices[indices[i+1]].Position)
		v2 := vmath.FromArray(vertices[indices[i+2]].Position)

		d01 := v0.Distance(v1)
		d12 := v1.Distance(v2)
		d20 := v2.Distance(v0)

		if d01 < maxEdge && d12 < maxEdge && d20 < maxEdge {
			kept = append(kept, indices[i], indices[i+1], indices[i+2])
			continue
		}

		logger.Debug("discarded triangle",
			zap.Uint32("i0", indices[i]),
			zap.Uint32("i1", indices[i+1]),
			zap.Uint32("i2", indices[i+2]),
			zap.Float32("edge01", d01),
			zap.Float32("edge12", d12),
			zap.Float32("edge20", d20),
		)
	}

	return kept
}
