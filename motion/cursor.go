package motion

import "math"

// Cursor walks a sequence forward, remembering the last lower-bound frame.
// Queries must not go back in time unless Rewind is called first.
type Cursor struct {
	sequence *Sequence
	index    int
	steps    int
}

func NewCursor(sequence *Sequence) *Cursor {
	return &Cursor{sequence: sequence}
}

// Advance returns the bracket surrounding time, scanning forward from the cursor.
// Lo is the last frame with Lo.Time <= time and Hi its successor. A time equal to the
// last timestamp brackets the last two frames, or the last frame with itself when the
// recording ends on frames sharing that timestamp, so the final frame is always reached.
// It returns false when the sequence has less than two frames, when time is not finite,
// past the last frame, or precedes the cursor frame. Past the last frame the cursor is
// parked on the last bracket, so held ticks do not scan the sequence again.
func (c *Cursor) Advance(time float64) (Bracket, bool) {
	frames := c.sequence.frames
	n := len(frames)
	if n < 2 || math.IsNaN(time) || math.IsInf(time, 0) || frames[c.index].Time > time {
		return Bracket{}, false
	}

	i := c.index
	for i+1 < n && frames[i+1].Time <= time {
		i++
		c.steps++
	}

	if i == n-1 {
		c.index = n - 2
		if frames[i].Time < time {
			return Bracket{}, false
		}
		if frames[n-2].Time == frames[n-1].Time {
			return Bracket{Lo: frames[n-1], Hi: frames[n-1]}, true
		}
		return Bracket{Lo: frames[n-2], Hi: frames[n-1]}, true
	}

	c.index = i

	return Bracket{Lo: frames[i], Hi: frames[i+1]}, true
}

// Rewind moves the cursor back to the first frame
func (c *Cursor) Rewind() {
	c.index = 0
}

// Index returns the position of the current lower-bound frame
func (c *Cursor) Index() int {
	return c.index
}

// Steps returns the number of frames scanned over the cursor lifetime
func (c *Cursor) Steps() int {
	return c.steps
}

func (c *Cursor) Sequence() *Sequence {
	return c.sequence
}
