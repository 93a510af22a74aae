package pose

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Pose represents a position and an orientation in 3D space
type Pose struct {
	Position mgl64.Vec3
	Rotation mgl64.Quat
}

// Identity returns the pose at the origin with no rotation
func Identity() Pose {
	return Pose{
		Position: mgl64.Vec3{0, 0, 0},
		Rotation: mgl64.QuatIdent(),
	}
}

// New creates a pose from a position and a rotation
func New(position mgl64.Vec3, rotation mgl64.Quat) Pose {
	return Pose{Position: position, Rotation: rotation}
}

// Lerp interpolates linearly between p and other.
// The position is interpolated linearly, the rotation with a normalized lerp on the shortest arc.
// t is not clamped.
func (p Pose) Lerp(other Pose, t float64) Pose {
	position := p.Position.Add(other.Position.Sub(p.Position).Mul(t))

	target := other.Rotation
	if p.Rotation.Dot(target) < 0 {
		target = target.Scale(-1)
	}

	return Pose{
		Position: position,
		Rotation: mgl64.QuatNlerp(p.Rotation, target, t),
	}
}

// Localize expresses p relative to the anchor: the anchor position is subtracted,
// and the rotation is right-multiplied by the inverse of the anchor rotation.
func (p Pose) Localize(anchor Pose) Pose {
	return Pose{
		Position: p.Position.Sub(anchor.Position),
		Rotation: p.Rotation.Mul(anchor.Rotation.Inverse()),
	}
}

// ApproxEqual checks both poses are within epsilon on each axis and describe the same orientation.
// q and -q are considered equal.
func (p Pose) ApproxEqual(other Pose, epsilon float64) bool {
	if math.Abs(p.Position.X()-other.Position.X()) > epsilon ||
		math.Abs(p.Position.Y()-other.Position.Y()) > epsilon ||
		math.Abs(p.Position.Z()-other.Position.Z()) > epsilon {
		return false
	}

	return math.Abs(p.Rotation.Normalize().Dot(other.Rotation.Normalize())) >= 1-epsilon
}
