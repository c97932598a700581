package graphics

import "github.com/go-gl/mathgl/mgl32"

// Camera handles the view and projection matrices. Unlike the donor
// implementation this camera looks from Eye at a fixed Target rather than
// following a player entity - this module has no player, only an
// extracted mesh to look at.
type Camera struct {
	AspectRatio float32
	FOV         float32
	NearPlane   float32
	FarPlane    float32

	Eye    mgl32.Vec3
	Target mgl32.Vec3
	Up     mgl32.Vec3
}

func NewCamera(width, height int) *Camera {
	return &Camera{
		AspectRatio: float32(width) / float32(height),
		FOV:         60.0,
		NearPlane:   0.1,
		FarPlane:    1000.0,
		Eye:         mgl32.Vec3{0, 0, 3},
		Target:      mgl32.Vec3{0, 0, 0},
		Up:          mgl32.Vec3{0, 1, 0},
	}
}

func (c *Camera) GetProjectionMatrix() mgl32.Mat4 {
	return mgl32.Perspective(mgl32.DegToRad(c.FOV), c.AspectRatio, c.NearPlane, c.FarPlane)
}

func (c *Camera) GetViewMatrix() mgl32.Mat4 {
	return mgl32.LookAtV(c.Eye, c.Target, c.Up)
}
