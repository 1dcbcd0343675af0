package pointcloud

// Normalize rescales and recenters points in place so that every
// coordinate fits in [-1, 1]. A single uniform scale (half the largest
// axis span) is used for all three axes, preserving the aspect ratio of
// the terrain. A no-op on empty input.
func Normalize(points []Point) {
	if len(points) == 0 {
		return
	}

	min := points[0]
	max := points[0]
	for _, p := range points {
		if p.X < min.X {
			min.X = p.X
		}
		if p.X > max.X {
			max.X = p.X
		}
		if p.Y < min.Y {
			min.Y = p.Y
		}
		if p.Y > max.Y {
			max.Y = p.Y
		}
		if p.Z < min.Z {
			min.Z = p.Z
		}
		if p.Z > max.Z {
			max.Z = p.Z
		}
	}

	centerX := (min.X + max.X) / 2
	centerY := (min.Y + max.Y) / 2
	centerZ := (min.Z + max.Z) / 2

	scale := max.X - min.X
	if s := max.Y - min.Y; s > scale {
		scale = s
	}
	if s := max.Z - min.Z; s > scale {
		scale = s
	}
	scale /= 2
	if scale == 0 {
		// All points coincide; any scale maps them to the origin.
		scale = 1
	}

	for i := range points {
		points[i].X = (points[i].X - centerX) / scale
		points[i].Y = (points[i].Y - centerY) / scale
		points[i].Z = (points[i].Z - centerZ) / scale
	}
}
