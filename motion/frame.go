package motion

import "github.com/akmonengine/reenact/pose"

// Frame is a timestamped snapshot of every tracked point, in seconds
type Frame struct {
	Time float64
	Rig  pose.Rig
}

// Bracket holds the two consecutive frames surrounding a query time
type Bracket struct {
	Lo Frame
	Hi Frame
}

// Param returns the interpolation parameter of time within the bracket.
// It returns 0 when both frames share the same timestamp.
func (b Bracket) Param(time float64) float64 {
	span := b.Hi.Time - b.Lo.Time
	if span == 0 {
		return 0
	}

	return (time - b.Lo.Time) / span
}
