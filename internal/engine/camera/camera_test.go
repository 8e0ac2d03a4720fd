package camera

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

func TestPositionOnOrbit(t *testing.T) {
	c := NewOrbitCamera(10)
	c.Center = mgl32.Vec3{}
	c.Pitch = 0
	c.Yaw = 0

	got := c.Position()
	want := mgl32.Vec3{0, 0, 10}
	if got.Sub(want).Len() > 1e-5 {
		t.Errorf("position = %v, want %v", got, want)
	}

	c.Yaw = mgl32.DegToRad(90)
	got = c.Position()
	want = mgl32.Vec3{10, 0, 0}
	if got.Sub(want).Len() > 1e-5 {
		t.Errorf("position after quarter turn = %v, want %v", got, want)
	}
}

func TestViewMatrixCentersTarget(t *testing.T) {
	c := NewOrbitCamera(20)
	c.Pitch = 0.7
	c.Yaw = 1.2

	eye := c.ViewMatrix().Mul4x1(c.Center.Vec4(1))
	want := mgl32.Vec4{0, 0, -20, 1}
	if eye.Sub(want).Len() > 1e-4 {
		t.Errorf("center in eye space = %v, want %v", eye, want)
	}
}

func TestHandleDragClampsPitch(t *testing.T) {
	c := NewOrbitCamera(10)

	c.HandleDrag(0, 1e6)
	if c.Pitch != c.MaxPitch {
		t.Errorf("pitch = %v, want clamped to %v", c.Pitch, c.MaxPitch)
	}

	c.HandleDrag(0, -1e6)
	if c.Pitch != c.MinPitch {
		t.Errorf("pitch = %v, want clamped to %v", c.Pitch, c.MinPitch)
	}
}

func TestHandleZoomClampsDistance(t *testing.T) {
	c := NewOrbitCamera(10)

	for i := 0; i < 100; i++ {
		c.HandleZoom(5)
	}
	if c.Distance != c.MinDistance {
		t.Errorf("distance = %v, want clamped to %v", c.Distance, c.MinDistance)
	}

	for i := 0; i < 100; i++ {
		c.HandleZoom(-5)
	}
	if c.Distance != c.MaxDistance {
		t.Errorf("distance = %v, want clamped to %v", c.Distance, c.MaxDistance)
	}
}

func TestHandleMovementPansCenter(t *testing.T) {
	c := NewOrbitCamera(10)
	c.Center = mgl32.Vec3{}
	c.Yaw = 0

	c.HandleMovement(1, 0, 0)
	if c.Center.Z() >= 0 {
		t.Errorf("center z = %v, forward should pan into the scene", c.Center.Z())
	}

	c.Center = mgl32.Vec3{}
	c.HandleMovement(0, 1, 0)
	if c.Center.X() <= 0 {
		t.Errorf("center x = %v, right should pan right", c.Center.X())
	}
}
