package main

import (
	"fmt"
	"math"

	"github.com/akmonengine/reenact"
	"github.com/akmonengine/reenact/motion"
	"github.com/akmonengine/reenact/pose"
	"github.com/akmonengine/reenact/settings"
	"github.com/go-gl/mathgl/mgl64"
)

const (
	recordRate     = 90.0 // frames per second of the recording
	recordDuration = 4.0
	tickRate       = 60.0
)

// recordSwing builds a recording of an actor swinging both hands around its head
func recordSwing(offset mgl64.Vec3) []motion.Frame {
	count := int(recordDuration*recordRate) + 1
	frames := make([]motion.Frame, 0, count)

	for i := 0; i < count; i++ {
		time := float64(i) / recordRate
		angle := time * math.Pi

		head := pose.New(offset.Add(mgl64.Vec3{0, 1.7, 0}), mgl64.QuatRotate(angle*0.25, mgl64.Vec3{0, 1, 0}))
		left := pose.New(
			offset.Add(mgl64.Vec3{-0.4 * math.Cos(angle), 1.2 + 0.3*math.Sin(angle), 0.3}),
			mgl64.QuatRotate(angle, mgl64.Vec3{1, 0, 0}),
		)
		right := pose.New(
			offset.Add(mgl64.Vec3{0.4 * math.Cos(angle), 1.2 - 0.3*math.Sin(angle), 0.3}),
			mgl64.QuatRotate(-angle, mgl64.Vec3{1, 0, 0}),
		)

		frames = append(frames, motion.Frame{
			Time: time,
			Rig:  pose.Rig{Head: head, LeftHand: left, RightHand: right},
		})
	}

	return frames
}

// printer is a sink printing the head and hands of an actor on the ticks it is enabled
type printer struct {
	name    string
	enabled *bool
}

func (p printer) SetLocalPoses(rig pose.Rig) {
	if !*p.enabled {
		return
	}
	fmt.Printf("   %s head=%.3v left=%.3v right=%.3v\n", p.name,
		rig.Head.Position, rig.LeftHand.Position, rig.RightHand.Position)
}

// camera is the reference frame the live controllers are expressed in
type camera struct {
	position mgl64.Vec3
	selected bool
}

func (c *camera) Anchor() (pose.Pose, bool) {
	return pose.New(c.position, mgl64.QuatIdent()), c.selected
}

func main() {
	clock := reenact.NewManualClock(0)
	stage := reenact.NewStage(clock)
	stage.Workers = 2

	var pool reenact.Pool
	verbose := true

	names := []string{"alice", "bob"}
	for i, name := range names {
		config := reenact.DefaultConfig()
		config.BlendMask = pose.MaskHands

		session := pool.Spawn(clock, printer{name: name, enabled: &verbose}, config)
		if err := session.Start(recordSwing(mgl64.Vec3{float64(i) * 2, 0, 0})); err != nil {
			fmt.Printf("❌ %s: %v\n", name, err)
			return
		}
		stage.AddSession(session)
	}

	// The observer holds live controllers at a fixed place in front of the camera
	cam := &camera{position: mgl64.Vec3{0, 0, -3}, selected: true}
	stage.Priority.Override = reenact.OverrideFunc(func() pose.Rig {
		live := pose.IdentityRig()
		live.LeftHand.Position = mgl64.Vec3{-0.2, 1.0, -2.5}
		live.RightHand.Position = mgl64.Vec3{0.2, 1.0, -2.5}
		return live
	})
	stage.Priority.Anchor = cam
	if err := stage.SetPriorityBlend(settings.DefaultBlend); err != nil {
		fmt.Printf("❌ blend: %v\n", err)
		return
	}

	stage.Events.Subscribe(reenact.ON_EXHAUST, func(event reenact.Event) {
		fmt.Printf("⏸️  session %s reached the end of its recording\n", event.(reenact.ExhaustEvent).Session.ID)
	})
	stage.Events.Subscribe(reenact.ON_REWIND, func(event reenact.Event) {
		fmt.Printf("⏪ session %s rewound\n", event.(reenact.RewindEvent).Session.ID)
	})
	stage.Events.Subscribe(reenact.ON_RESUME, func(event reenact.Event) {
		fmt.Printf("▶️  session %s resumed\n", event.(reenact.ResumeEvent).Session.ID)
	})

	ticks := int((recordDuration + 0.5) * tickRate)
	for tick := 0; tick < ticks; tick++ {
		verbose = tick%int(tickRate) == 0
		if verbose {
			fmt.Printf("🎬 t=%.2fs\n", clock.Now())
		}

		stage.Step()
		clock.Advance(1 / tickRate)
	}

	fmt.Println("⏮️  seeking back to 1s")
	verbose = true
	clock.Seek(1)
	stage.Step()

	for _, session := range stage.Sessions {
		pool.Despawn(session)
	}
	fmt.Printf("✅ %d sessions back in the pool\n", pool.Len())
}
