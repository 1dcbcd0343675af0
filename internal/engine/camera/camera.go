// Package camera provides camera implementations for 3D rendering.
package camera

import (
	gomath "math"

	vmath "github.com/Faultbox/terravis/pkg/math"
)

// FlyCamera is a free-flying first-person camera driven by per-frame
// polling: WASD movement, mouse look and a right-button roll drag. It is
// an explicit value owned by the viewer; there is no global camera state.
type FlyCamera struct {
	Position vmath.Vec3

	// Orientation in degrees. Yaw -90 faces -Z, pitch is clamped so the
	// view never flips over the poles, roll tilts the horizon.
	Yaw   float32
	Pitch float32
	Roll  float32

	// Movement and look tuning.
	MoveSpeed        float32 // units per second
	MouseSensitivity float32 // degrees per pixel
	RollSensitivity  float32 // degrees per pixel

	// Constraints
	MaxPitch float32
}

// NewFlyCamera creates a fly camera hovering above the normalized
// terrain, looking down -Z.
func NewFlyCamera() *FlyCamera {
	return &FlyCamera{
		Position:         vmath.Vec3{X: 0, Y: 1, Z: 3},
		Yaw:              -90,
		Pitch:            0,
		Roll:             0,
		MoveSpeed:        2.5,
		MouseSensitivity: 0.1,
		RollSensitivity:  0.25,
		MaxPitch:         89,
	}
}

// Front returns the view direction derived from yaw and pitch.
func (c *FlyCamera) Front() vmath.Vec3 {
	yaw := float64(c.Yaw) * gomath.Pi / 180
	pitch := float64(c.Pitch) * gomath.Pi / 180

	return vmath.Vec3{
		X: float32(gomath.Cos(yaw) * gomath.Cos(pitch)),
		Y: float32(gomath.Sin(pitch)),
		Z: float32(gomath.Sin(yaw) * gomath.Cos(pitch)),
	}.Normalize()
}

// Up returns the up vector with roll applied around the view direction.
func (c *FlyCamera) Up() vmath.Vec3 {
	worldUp := vmath.Vec3{X: 0, Y: 1, Z: 0}
	if c.Roll == 0 {
		return worldUp
	}
	roll := c.Roll * float32(gomath.Pi) / 180
	q := vmath.QuatFromAxisAngle(c.Front(), roll)
	return q.Rotate(worldUp).Normalize()
}

// Right returns the right direction perpendicular to front and up.
func (c *FlyCamera) Right() vmath.Vec3 {
	return c.Front().Cross(c.Up()).Normalize()
}

// ViewMatrix returns the view matrix for this camera.
func (c *FlyCamera) ViewMatrix() vmath.Mat4 {
	return vmath.LookAt(c.Position, c.Position.Add(c.Front()), c.Up())
}

// HandleMouseLook updates yaw and pitch from a relative mouse delta.
// Positive dy means the cursor moved down, which pitches the view down.
func (c *FlyCamera) HandleMouseLook(deltaX, deltaY float32) {
	c.Yaw += deltaX * c.MouseSensitivity
	c.Pitch -= deltaY * c.MouseSensitivity

	if c.Pitch > c.MaxPitch {
		c.Pitch = c.MaxPitch
	}
	if c.Pitch < -c.MaxPitch {
		c.Pitch = -c.MaxPitch
	}
}

// HandleRoll rolls the view around its forward axis from a horizontal
// mouse drag delta.
func (c *FlyCamera) HandleRoll(deltaX float32) {
	c.Roll += deltaX * c.RollSensitivity
	for c.Roll > 180 {
		c.Roll -= 360
	}
	for c.Roll < -180 {
		c.Roll += 360
	}
}

// HandleMovement moves the camera along its own axes. forward and right
// are -1, 0 or 1 from the held-key state; dt scales to units.
func (c *FlyCamera) HandleMovement(forward, right float32, dt float32) {
	if forward == 0 && right == 0 {
		return
	}
	step := c.MoveSpeed * dt
	c.Position = c.Position.
		Add(c.Front().Scale(forward * step)).
		Add(c.Right().Scale(right * step))
}
