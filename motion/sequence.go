package motion

import (
	"errors"
	"fmt"
	"math"
	"sort"
)

var (
	ErrInvalidTime  = errors.New("motion: invalid frame time")
	ErrNotMonotonic = errors.New("motion: frame times are not monotonic")
)

// Validation selects how NewSequence treats the order of the recorded frames
type Validation uint8

const (
	// ValidationReject refuses a recording whose timestamps ever decrease
	ValidationReject Validation = iota
	// ValidationSort reorders the frames by time, frames sharing a timestamp keep their recording order
	ValidationSort
	// ValidationTrust keeps the frames as given, the caller guarantees the order
	ValidationTrust
)

func (v Validation) String() string {
	switch v {
	case ValidationReject:
		return "reject"
	case ValidationSort:
		return "sort"
	case ValidationTrust:
		return "trust"
	default:
		return fmt.Sprintf("validation(%d)", uint8(v))
	}
}

// Sequence is an ordered, immutable list of frames
type Sequence struct {
	frames []Frame
}

// NewSequence copies the frames into a sequence ordered by time.
// NaN and infinite timestamps are always rejected, whatever the validation mode.
func NewSequence(frames []Frame, validation Validation) (*Sequence, error) {
	copied := make([]Frame, len(frames))
	copy(copied, frames)

	for i, frame := range copied {
		if math.IsNaN(frame.Time) || math.IsInf(frame.Time, 0) {
			return nil, fmt.Errorf("frame %d: %w: %v", i, ErrInvalidTime, frame.Time)
		}
	}

	switch validation {
	case ValidationReject:
		for i := 1; i < len(copied); i++ {
			if copied[i].Time < copied[i-1].Time {
				return nil, fmt.Errorf("frame %d at %vs precedes frame %d at %vs: %w",
					i, copied[i].Time, i-1, copied[i-1].Time, ErrNotMonotonic)
			}
		}
	case ValidationSort:
		sort.SliceStable(copied, func(i, j int) bool {
			return copied[i].Time < copied[j].Time
		})
	}

	return &Sequence{frames: copied}, nil
}

func (s *Sequence) Len() int {
	return len(s.frames)
}

// At returns the frame at index i
func (s *Sequence) At(i int) Frame {
	return s.frames[i]
}

// Start returns the time of the first frame, 0 for an empty sequence
func (s *Sequence) Start() float64 {
	if len(s.frames) == 0 {
		return 0
	}

	return s.frames[0].Time
}

// End returns the time of the last frame, 0 for an empty sequence
func (s *Sequence) End() float64 {
	if len(s.frames) == 0 {
		return 0
	}

	return s.frames[len(s.frames)-1].Time
}

func (s *Sequence) Duration() float64 {
	return s.End() - s.Start()
}
