package audio

import (
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/speaker"
	"github.com/lixenwraith/neon-snake/parameter"
)

const sampleRate = beep.SampleRate(parameter.AudioSampleRate)

// Cue identifies a game sound
type Cue int

const (
	CueEat Cue = iota
	CuePowerUp
	CueLevelUp
	CueDeath
)

// SoundManager plays short synthesized cues through one mixer
// Every method is a safe no-op until Initialize succeeds
type SoundManager struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	volume      *effects.Volume
	initialized bool
}

// NewSoundManager creates an uninitialized sound manager
func NewSoundManager() *SoundManager {
	mixer := &beep.Mixer{}
	return &SoundManager{
		mixer: mixer,
		volume: &effects.Volume{
			Streamer: mixer,
			Base:     2,
			Volume:   parameter.AudioVolume,
		},
	}
}

// Initialize opens the speaker; failure leaves the game silent
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(parameter.AudioBufferDuration)); err != nil {
		return err
	}
	speaker.Play(sm.volume)
	sm.initialized = true
	return nil
}

// Cleanup silences and detaches all cues
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}
	speaker.Lock()
	sm.mixer.Clear()
	speaker.Unlock()
	speaker.Clear()
	sm.initialized = false
}

// SetMuted silences output without tearing down the speaker
func (sm *SoundManager) SetMuted(muted bool) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		sm.volume.Silent = muted
		return
	}
	speaker.Lock()
	sm.volume.Silent = muted
	speaker.Unlock()
}

// Muted reports whether output is silenced
func (sm *SoundManager) Muted() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return sm.volume.Silent
}

// Play queues a cue on the mixer
func (sm *SoundManager) Play(cue Cue) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}
	speaker.Lock()
	sm.mixer.Add(CueStreamer(cue))
	speaker.Unlock()
}

// CueStreamer builds the finite streamer for a cue
func CueStreamer(cue Cue) beep.Streamer {
	switch cue {
	case CueEat:
		return Tone(parameter.EatToneHz, parameter.EatToneDuration)
	case CuePowerUp:
		return beep.Seq(
			Tone(parameter.PowerUpToneHz, parameter.PowerUpToneDuration/2),
			Tone(parameter.PowerUpToneHz*1.5, parameter.PowerUpToneDuration/2),
		)
	case CueLevelUp:
		// Major arpeggio
		d := parameter.LevelUpToneDuration
		return beep.Seq(
			Tone(parameter.LevelUpToneHz, d),
			Tone(parameter.LevelUpToneHz*1.25, d),
			Tone(parameter.LevelUpToneHz*1.5, d),
		)
	case CueDeath:
		return beep.Take(sampleRate.N(parameter.DeathToneDuration), NewSweepGenerator(sampleRate, parameter.DeathToneHz*2, parameter.DeathToneHz, parameter.DeathToneDuration))
	}
	return beep.Silence(0)
}

// Tone returns a sine tone of the given length with a short fade
func Tone(freq float64, d time.Duration) beep.Streamer {
	return beep.Take(sampleRate.N(d), NewToneGenerator(sampleRate, freq, d))
}
