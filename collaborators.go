package reenact

import "github.com/akmonengine/reenact/pose"

// RewindListener is notified with the new playback time when the clock jumps backward
type RewindListener func(time float64)

// Subscription cancels a listener registration. Unsubscribe may be called more than once.
type Subscription interface {
	Unsubscribe()
}

// Clock provides the playback time in seconds, and notifies its listeners of backward jumps
type Clock interface {
	Now() float64
	SubscribeRewind(listener RewindListener) Subscription
}

// OverrideSource provides the live poses, in world space, competing with the recording
type OverrideSource interface {
	Override() pose.Rig
}

// AnchorProvider provides the reference frame the override poses are expressed in.
// ok is false when no reference frame is active.
type AnchorProvider interface {
	Anchor() (anchor pose.Pose, ok bool)
}

// Sink receives the local poses of the actor once per tick
type Sink interface {
	SetLocalPoses(rig pose.Rig)
}

// SinkFunc adapts a function to the Sink interface
type SinkFunc func(rig pose.Rig)

func (f SinkFunc) SetLocalPoses(rig pose.Rig) { f(rig) }

// OverrideFunc adapts a function to the OverrideSource interface
type OverrideFunc func() pose.Rig

func (f OverrideFunc) Override() pose.Rig { return f() }

// StaticAnchor is an AnchorProvider always reporting the same active reference frame
type StaticAnchor pose.Pose

func (a StaticAnchor) Anchor() (pose.Pose, bool) { return pose.Pose(a), true }
