package parameter

import "time"

// Audio Hardware Settings
const (
	AudioSampleRate = 44100

	// AudioBufferDuration determines speaker latency
	AudioBufferDuration = 50 * time.Millisecond

	// AudioVolume is the mixer gain exponent (base 2), negative attenuates
	AudioVolume = -1.5
)

// Cue tones
const (
	EatToneHz       = 880.0
	EatToneDuration = 60 * time.Millisecond

	PowerUpToneHz       = 660.0
	PowerUpToneDuration = 120 * time.Millisecond

	LevelUpToneHz       = 523.25
	LevelUpToneDuration = 90 * time.Millisecond

	DeathToneHz       = 110.0
	DeathToneDuration = 400 * time.Millisecond
)
