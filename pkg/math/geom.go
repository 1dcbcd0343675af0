package math

// InCircumcircle reports whether p lies strictly inside the circle through
// a, b and c on the XZ plane (elevation is ignored). a, b and c must be in
// counter-clockwise order in the (x, z) parameterization.
//
// Uses the sign of the determinant of the lifted paraboloid coordinates,
// the standard in-circle test from Delaunay triangulation.
func InCircumcircle(p, a, b, c Vec3) bool {
	ax, az := a.X-p.X, a.Z-p.Z
	bx, bz := b.X-p.X, b.Z-p.Z
	cx, cz := c.X-p.X, c.Z-p.Z

	m := Mat4{
		ax, bx, cx, 0,
		az, bz, cz, 0,
		ax*ax + az*az, bx*bx + bz*bz, cx*cx + cz*cz, 0,
		0, 0, 0, 1,
	}

	return m.Determinant() > 0
}
