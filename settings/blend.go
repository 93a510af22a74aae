package settings

import (
	"errors"
	"fmt"
	"math"
	"sync/atomic"

	"github.com/go-gl/mathgl/mgl64"
)

const (
	MinBlend     = 0.0
	MaxBlend     = 1.0
	DefaultBlend = 0.5

	// BlendSteps is the number of increments between MinBlend and MaxBlend for SetStep
	BlendSteps = 10
)

var ErrInvalidBlend = errors.New("settings: invalid blend factor")

// Blend is the factor between recorded motion (0) and live override motion (1).
// It is owned by the controlling observer and may be set while sessions are ticking.
type Blend struct {
	bits atomic.Uint64
}

// NewBlend returns a blend factor initialised to value, clamped to [MinBlend, MaxBlend]
func NewBlend(value float64) *Blend {
	b := &Blend{}
	if err := b.Set(value); err != nil {
		b.bits.Store(math.Float64bits(MinBlend))
	}

	return b
}

// Set stores value clamped to [MinBlend, MaxBlend]. NaN and infinite values are rejected
// and the previous value is kept.
func (b *Blend) Set(value float64) error {
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return fmt.Errorf("%w: %v", ErrInvalidBlend, value)
	}

	b.bits.Store(math.Float64bits(mgl64.Clamp(value, MinBlend, MaxBlend)))

	return nil
}

// SetStep sets the factor from a slider position in [0, BlendSteps]
func (b *Blend) SetStep(step int) error {
	return b.Set(float64(step) / BlendSteps)
}

// Value returns the current factor. A nil Blend reads as MinBlend.
func (b *Blend) Value() float64 {
	if b == nil {
		return MinBlend
	}

	return math.Float64frombits(b.bits.Load())
}

// Percent returns the factor as a percentage
func (b *Blend) Percent() float64 {
	return b.Value() * 100
}
