package reenact

import (
	"errors"
	"fmt"

	"github.com/akmonengine/reenact/motion"
	"github.com/akmonengine/reenact/pose"
	"github.com/google/uuid"
)

var ErrSessionActive = errors.New("reenact: session already started")

// Session replays the recording of one actor.
// A session must be ticked from a single goroutine at a time.
type Session struct {
	ID     uuid.UUID
	Config Config

	// Override and Anchor are optional, they are read at every tick
	Override OverrideSource
	Anchor   AnchorProvider

	clock    Clock
	sink     Sink
	sequence *motion.Sequence
	cursor   *motion.Cursor
	resolver Resolver

	subscription Subscription
	active       bool
	status       Status
	rewound      bool
}

func NewSession(clock Clock, sink Sink, config Config) *Session {
	return &Session{
		ID:     uuid.New(),
		Config: config,
		clock:  clock,
		sink:   sink,
	}
}

// Start loads the frames and subscribes to the rewind notifications of the clock
func (s *Session) Start(frames []motion.Frame) error {
	if s.active {
		return fmt.Errorf("session %s: %w", s.ID, ErrSessionActive)
	}

	sequence, err := motion.NewSequence(frames, s.Config.Validation)
	if err != nil {
		return fmt.Errorf("session %s: %w", s.ID, err)
	}

	s.sequence = sequence
	s.cursor = motion.NewCursor(sequence)
	s.resolver = NewResolver(s.Config.EnableInterpolation, s.Config.BlendMask)
	s.status = Idle
	s.rewound = false

	if s.clock != nil {
		s.subscription = s.clock.SubscribeRewind(s.handleRewind)
	}
	s.active = true

	return nil
}

// Tick plays the recording at the current clock time
func (s *Session) Tick() Status {
	if s.clock == nil {
		return s.status
	}

	return s.TickAt(s.clock.Now())
}

// TickAt plays the recording at time, and sends the resulting poses to the sink.
// Frozen ticks send the held poses again; Idle ticks send nothing.
func (s *Session) TickAt(time float64) Status {
	if !s.active {
		return s.status
	}

	bracket, found := s.cursor.Advance(time)
	rig, status := s.resolver.Resolve(bracket, found, time, Input{
		Override: s.Override,
		Anchor:   s.Anchor,
		Blend:    s.Config.Blend.Value(),
	})
	s.status = status

	if status != Idle && s.sink != nil {
		s.sink.SetLocalPoses(rig)
	}

	return status
}

// Rewind moves the playback back to the first frame
func (s *Session) Rewind() {
	if s.cursor != nil {
		s.cursor.Rewind()
	}
}

func (s *Session) handleRewind(float64) {
	s.Rewind()
	s.rewound = true
}

// Stop releases the recording and the collaborators, and unsubscribes from the clock
func (s *Session) Stop() {
	if s.subscription != nil {
		s.subscription.Unsubscribe()
		s.subscription = nil
	}

	s.active = false
	s.sequence = nil
	s.cursor = nil
	s.Override = nil
	s.Anchor = nil
	s.resolver.Reset()
	s.status = Idle
	s.rewound = false
}

// Reset stops the session and prepares it to replay another actor with config
func (s *Session) Reset(clock Clock, sink Sink, config Config) {
	s.Stop()

	s.ID = uuid.New()
	s.Config = config
	s.clock = clock
	s.sink = sink
	s.resolver = NewResolver(config.EnableInterpolation, config.BlendMask)
}

// Last returns the last poses sent to the sink
func (s *Session) Last() (pose.Rig, bool) {
	return s.resolver.Last()
}

func (s *Session) Status() Status {
	return s.status
}

func (s *Session) Active() bool {
	return s.active
}

func (s *Session) Sequence() *motion.Sequence {
	return s.sequence
}

// Cursor exposes the frame cursor, nil when the session is stopped
func (s *Session) Cursor() *motion.Cursor {
	return s.cursor
}

// takeRewound reports whether a rewind was received since the last call
func (s *Session) takeRewound() bool {
	rewound := s.rewound
	s.rewound = false

	return rewound
}
