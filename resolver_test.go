package reenact

import (
	"math"
	"testing"

	"github.com/akmonengine/reenact/motion"
	"github.com/akmonengine/reenact/pose"
	"github.com/go-gl/mathgl/mgl64"
)

const epsilon = 1e-9

func rigAt(x float64, rotation mgl64.Quat) pose.Rig {
	return pose.Rig{
		Head:      pose.New(mgl64.Vec3{x, 1.7, 0}, rotation),
		LeftHand:  pose.New(mgl64.Vec3{x - 0.3, 1.2, 0.3}, rotation),
		RightHand: pose.New(mgl64.Vec3{x + 0.3, 1.2, 0.3}, rotation),
	}
}

// twoFrames returns the recording A at t=0 and B at t=1
func twoFrames() (motion.Frame, motion.Frame) {
	a := motion.Frame{Time: 0, Rig: rigAt(0, mgl64.QuatIdent())}
	b := motion.Frame{Time: 1, Rig: rigAt(2, mgl64.QuatRotate(math.Pi/2, mgl64.Vec3{0, 1, 0}))}

	return a, b
}

func twoFramesBracket() motion.Bracket {
	a, b := twoFrames()
	return motion.Bracket{Lo: a, Hi: b}
}

// =============================================================================
// Interpolation Tests
// =============================================================================

func TestResolve_Midpoint(t *testing.T) {
	r := NewResolver(true, pose.MaskAll)

	rig, status := r.Resolve(twoFramesBracket(), true, 0.5, Input{})

	if status != Played {
		t.Fatalf("status = %v, want played", status)
	}

	want := pose.New(mgl64.Vec3{1, 1.7, 0}, mgl64.QuatRotate(math.Pi/4, mgl64.Vec3{0, 1, 0}))
	if !rig.Head.ApproxEqual(want, epsilon) {
		t.Errorf("head = %v, want %v", rig.Head, want)
	}
}

func TestResolve_InterpolationBoundaries(t *testing.T) {
	a, b := twoFrames()
	r := NewResolver(true, pose.MaskAll)

	tests := []struct {
		name string
		time float64
		want pose.Rig
	}{
		{"t=0 reproduces the lower frame", 0, a.Rig},
		{"t=1 reproduces the upper frame", 1, b.Rig},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rig, _ := r.Resolve(twoFramesBracket(), true, tt.time, Input{})
			if !rig.ApproxEqual(tt.want, epsilon) {
				t.Errorf("Resolve(%v) = %v, want %v", tt.time, rig, tt.want)
			}
		})
	}
}

func TestResolve_InterpolationDisabled(t *testing.T) {
	a, _ := twoFrames()
	r := NewResolver(false, pose.MaskAll)

	rig, status := r.Resolve(twoFramesBracket(), true, 0.9, Input{})

	if status != Played {
		t.Fatalf("status = %v, want played", status)
	}
	if rig != a.Rig {
		t.Errorf("Resolve(0.9) = %v, want the t=0 frame verbatim", rig)
	}
}

func TestResolve_DegenerateBracket(t *testing.T) {
	a, b := twoFrames()
	b.Time = a.Time
	r := NewResolver(true, pose.MaskAll)

	rig, status := r.Resolve(motion.Bracket{Lo: a, Hi: b}, true, 0, Input{})

	if status != Played {
		t.Fatalf("status = %v, want played", status)
	}
	if !rig.ApproxEqual(a.Rig, epsilon) {
		t.Errorf("degenerate bracket = %v, want the lower frame", rig)
	}
}

// =============================================================================
// Freeze Tests
// =============================================================================

func TestResolve_IdleBeforeFirstPose(t *testing.T) {
	r := NewResolver(true, pose.MaskAll)

	if _, status := r.Resolve(motion.Bracket{}, false, 0, Input{}); status != Idle {
		t.Errorf("status = %v, want idle", status)
	}
	if _, ok := r.Last(); ok {
		t.Error("Last() reported a pose before anything was resolved")
	}
}

func TestResolve_FreezesOnLastPose(t *testing.T) {
	_, b := twoFrames()
	r := NewResolver(true, pose.MaskAll)

	r.Resolve(twoFramesBracket(), true, 1, Input{})
	rig, status := r.Resolve(motion.Bracket{}, false, 1.5, Input{})

	if status != Frozen {
		t.Fatalf("status = %v, want frozen", status)
	}
	if !rig.ApproxEqual(b.Rig, epsilon) {
		t.Errorf("frozen rig = %v, want frame B", rig)
	}

	r.Reset()
	if _, status := r.Resolve(motion.Bracket{}, false, 1.5, Input{}); status != Idle {
		t.Errorf("status after Reset = %v, want idle", status)
	}
}

// =============================================================================
// Override Tests
// =============================================================================

type anchorStub struct {
	anchor pose.Pose
	ok     bool
}

func (a anchorStub) Anchor() (pose.Pose, bool) { return a.anchor, a.ok }

func TestResolve_BlendBoundaries(t *testing.T) {
	a, _ := twoFrames()
	overrideRig := rigAt(5, mgl64.QuatRotate(math.Pi/3, mgl64.Vec3{1, 0, 0}))
	override := OverrideFunc(func() pose.Rig { return overrideRig })

	tests := []struct {
		name  string
		blend float64
		want  pose.Rig
	}{
		{"zero blend is the recorded rig", 0, a.Rig},
		{"full blend is the override rig", 1, overrideRig},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := NewResolver(true, pose.MaskAll)
			rig, _ := r.Resolve(twoFramesBracket(), true, 0, Input{Override: override, Blend: tt.blend})
			if !rig.ApproxEqual(tt.want, epsilon) {
				t.Errorf("Resolve() = %v, want %v", rig, tt.want)
			}
		})
	}
}

func TestResolve_OverrideLocalizedByAnchor(t *testing.T) {
	rotation := mgl64.QuatRotate(math.Pi/5, mgl64.Vec3{0, 0, 1})
	world := pose.New(mgl64.Vec3{3, 2, 1}, rotation)
	override := OverrideFunc(func() pose.Rig {
		return pose.Rig{Head: world, LeftHand: world, RightHand: world}
	})
	anchor := StaticAnchor(pose.New(mgl64.Vec3{1, 0, 0}, mgl64.QuatIdent()))

	r := NewResolver(true, pose.MaskAll)
	rig, _ := r.Resolve(twoFramesBracket(), true, 0.5, Input{Override: override, Anchor: anchor, Blend: 1})

	want := pose.New(mgl64.Vec3{2, 2, 1}, rotation)
	for _, point := range []pose.Point{pose.Head, pose.LeftHand, pose.RightHand} {
		if !rig.Get(point).ApproxEqual(want, epsilon) {
			t.Errorf("%v = %v, want %v", point, rig.Get(point), want)
		}
	}
}

func TestResolve_InactiveAnchorIsIdentity(t *testing.T) {
	world := pose.New(mgl64.Vec3{3, 2, 1}, mgl64.QuatIdent())
	override := OverrideFunc(func() pose.Rig {
		return pose.Rig{Head: world, LeftHand: world, RightHand: world}
	})
	anchor := anchorStub{anchor: pose.New(mgl64.Vec3{10, 10, 10}, mgl64.QuatIdent()), ok: false}

	r := NewResolver(true, pose.MaskAll)
	rig, _ := r.Resolve(twoFramesBracket(), true, 0, Input{Override: override, Anchor: anchor, Blend: 1})

	if !rig.Head.ApproxEqual(world, epsilon) {
		t.Errorf("head = %v, want the untouched override %v", rig.Head, world)
	}
}

func TestResolve_MissingOverrideForcesRecorded(t *testing.T) {
	a, _ := twoFrames()
	r := NewResolver(true, pose.MaskAll)

	rig, _ := r.Resolve(twoFramesBracket(), true, 0, Input{Blend: 1})

	if !rig.ApproxEqual(a.Rig, epsilon) {
		t.Errorf("Resolve() without override = %v, want the recorded rig", rig)
	}
}

func TestResolve_HandsOnlyMask(t *testing.T) {
	a, _ := twoFrames()
	overrideRig := rigAt(5, mgl64.QuatIdent())
	override := OverrideFunc(func() pose.Rig { return overrideRig })

	r := NewResolver(true, pose.MaskHands)
	rig, _ := r.Resolve(twoFramesBracket(), true, 0, Input{Override: override, Blend: 1})

	if !rig.Head.ApproxEqual(a.Rig.Head, epsilon) {
		t.Errorf("head = %v, want the recorded head", rig.Head)
	}
	if !rig.LeftHand.ApproxEqual(overrideRig.LeftHand, epsilon) || !rig.RightHand.ApproxEqual(overrideRig.RightHand, epsilon) {
		t.Errorf("hands = %v / %v, want the override hands", rig.LeftHand, rig.RightHand)
	}
}

func TestStatus_String(t *testing.T) {
	tests := map[Status]string{
		Idle:      "idle",
		Played:    "played",
		Frozen:    "frozen",
		Status(9): "status(9)",
	}

	for status, want := range tests {
		if got := status.String(); got != want {
			t.Errorf("Status(%d).String() = %q, want %q", uint8(status), got, want)
		}
	}
}
