package pose

import "fmt"

// Point identifies one of the tracked points of an actor
type Point uint8

const (
	Head Point = iota
	LeftHand
	RightHand
)

func (p Point) String() string {
	switch p {
	case Head:
		return "head"
	case LeftHand:
		return "left hand"
	case RightHand:
		return "right hand"
	default:
		return fmt.Sprintf("point(%d)", uint8(p))
	}
}

// Mask is a set of tracked points
type Mask uint8

const (
	MaskHead Mask = 1 << iota
	MaskLeftHand
	MaskRightHand

	MaskNone  Mask = 0
	MaskHands      = MaskLeftHand | MaskRightHand
	MaskAll        = MaskHead | MaskHands
)

// Has reports whether the point belongs to the mask
func (m Mask) Has(p Point) bool {
	return m&(1<<p) != 0
}

// Rig holds the poses of every tracked point of an actor
type Rig struct {
	Head      Pose
	LeftHand  Pose
	RightHand Pose
}

// IdentityRig returns a rig with every point at the identity pose
func IdentityRig() Rig {
	return Rig{
		Head:      Identity(),
		LeftHand:  Identity(),
		RightHand: Identity(),
	}
}

// Get returns the pose of a tracked point
func (r Rig) Get(p Point) Pose {
	switch p {
	case LeftHand:
		return r.LeftHand
	case RightHand:
		return r.RightHand
	default:
		return r.Head
	}
}

// With returns a copy of the rig with the pose of the point replaced
func (r Rig) With(p Point, pose Pose) Rig {
	switch p {
	case Head:
		r.Head = pose
	case LeftHand:
		r.LeftHand = pose
	case RightHand:
		r.RightHand = pose
	}

	return r
}

func (r Rig) Lerp(other Rig, t float64) Rig {
	return Rig{
		Head:      r.Head.Lerp(other.Head, t),
		LeftHand:  r.LeftHand.Lerp(other.LeftHand, t),
		RightHand: r.RightHand.Lerp(other.RightHand, t),
	}
}

// Localize expresses every point relative to the anchor
func (r Rig) Localize(anchor Pose) Rig {
	return Rig{
		Head:      r.Head.Localize(anchor),
		LeftHand:  r.LeftHand.Localize(anchor),
		RightHand: r.RightHand.Localize(anchor),
	}
}

// Blend moves the points of the mask toward other by t, the others are left untouched
func (r Rig) Blend(other Rig, t float64, mask Mask) Rig {
	for _, p := range [...]Point{Head, LeftHand, RightHand} {
		if mask.Has(p) {
			r = r.With(p, r.Get(p).Lerp(other.Get(p), t))
		}
	}

	return r
}

// ApproxEqual checks every point with Pose.ApproxEqual
func (r Rig) ApproxEqual(other Rig, epsilon float64) bool {
	return r.Head.ApproxEqual(other.Head, epsilon) &&
		r.LeftHand.ApproxEqual(other.LeftHand, epsilon) &&
		r.RightHand.ApproxEqual(other.RightHand, epsilon)
}
