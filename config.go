package reenact

import (
	"github.com/akmonengine/reenact/motion"
	"github.com/akmonengine/reenact/pose"
	"github.com/akmonengine/reenact/settings"
)

// Config holds the settings of a playback session, read at Start
type Config struct {
	// EnableInterpolation blends between the two frames around the playback time.
	// When disabled the last frame before the playback time is played as is.
	EnableInterpolation bool

	// Blend is shared with the controlling observer, who may change it at any time.
	// A nil Blend reads as 0, pure recorded motion.
	Blend *settings.Blend

	// BlendMask lists the points the override is allowed to move
	BlendMask pose.Mask

	// Validation defines how the recorded frames order is checked at Start
	Validation motion.Validation
}

func DefaultConfig() Config {
	return Config{
		EnableInterpolation: true,
		Blend:               settings.NewBlend(settings.MinBlend),
		BlendMask:           pose.MaskAll,
		Validation:          motion.ValidationReject,
	}
}
