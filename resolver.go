package reenact

import (
	"fmt"

	"github.com/akmonengine/reenact/motion"
	"github.com/akmonengine/reenact/pose"
	"github.com/go-gl/mathgl/mgl64"
)

// Status is the outcome of a playback tick
type Status uint8

const (
	// Idle: nothing was ever played, no pose is emitted
	Idle Status = iota
	// Played: a new pose was computed from the recording
	Played
	// Frozen: no bracket was found, the last emitted pose is held
	Frozen
)

func (s Status) String() string {
	switch s {
	case Idle:
		return "idle"
	case Played:
		return "played"
	case Frozen:
		return "frozen"
	default:
		return fmt.Sprintf("status(%d)", uint8(s))
	}
}

// Input carries the live collaborators of a tick. Override and Anchor are optional.
type Input struct {
	Override OverrideSource
	Anchor   AnchorProvider
	// Blend is expected in [0, 1], sanitized by its owner
	Blend float64
}

// Resolver turns a bracket of recorded frames and the live override into the local poses of an actor
type Resolver struct {
	EnableInterpolation bool
	BlendMask           pose.Mask

	last    pose.Rig
	hasLast bool
}

func NewResolver(enableInterpolation bool, mask pose.Mask) Resolver {
	return Resolver{
		EnableInterpolation: enableInterpolation,
		BlendMask:           mask,
	}
}

// Resolve computes the rig for time. When found is false, the last resolved rig is returned as Frozen,
// or Idle if nothing was resolved yet.
func (r *Resolver) Resolve(bracket motion.Bracket, found bool, time float64, in Input) (pose.Rig, Status) {
	if !found {
		if r.hasLast {
			return r.last, Frozen
		}
		return pose.Rig{}, Idle
	}

	recorded := bracket.Lo.Rig
	if r.EnableInterpolation {
		t := mgl64.Clamp(bracket.Param(time), 0, 1)
		recorded = recorded.Lerp(bracket.Hi.Rig, t)
	}

	final := recorded
	if in.Override != nil && in.Blend > 0 {
		final = recorded.Blend(localOverride(in.Override, in.Anchor), in.Blend, r.BlendMask)
	}

	r.last = final
	r.hasLast = true

	return final, Played
}

// Last returns the last resolved rig
func (r *Resolver) Last() (pose.Rig, bool) {
	return r.last, r.hasLast
}

// Reset forgets the last resolved rig
func (r *Resolver) Reset() {
	r.last = pose.Rig{}
	r.hasLast = false
}

// localOverride expresses the override rig in the actor space, using the anchor if one is active
func localOverride(source OverrideSource, anchor AnchorProvider) pose.Rig {
	override := source.Override()
	if anchor == nil {
		return override
	}

	a, ok := anchor.Anchor()
	if !ok {
		return override
	}

	return override.Localize(a)
}
