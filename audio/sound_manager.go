package audio

import (
	"fmt"
	"log"
	"math"
	"os"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
	"github.com/gopxl/beep/wav"

	"github.com/lguibr/pongduel/utils"
)

const (
	sampleRate      = beep.SampleRate(44100)
	resampleQuality = 4
)

var format = beep.Format{SampleRate: sampleRate, NumChannels: 2, Precision: 2}

// Sound is one of the game's sound effects.
type Sound int

const (
	SoundHit Sound = iota
	SoundScore
	SoundGameEnd
)

func (s Sound) String() string {
	switch s {
	case SoundHit:
		return "hit"
	case SoundScore:
		return "score"
	case SoundGameEnd:
		return "game_end"
	}
	return fmt.Sprintf("Sound(%d)", int(s))
}

// Player plays sound effects. Implementations must not block.
type Player interface {
	Play(Sound)
}

// SoundManager owns the speaker and the decoded sound effects. Every method
// is a no-op until Initialize succeeds, so the game runs silently without an
// audio device.
type SoundManager struct {
	mu          sync.Mutex
	volume      float64
	files       map[Sound]string
	buffers     map[Sound]*beep.Buffer
	played      map[Sound]int
	output      func(beep.Streamer)
	initialized bool
}

func NewSoundManager(cfg utils.Config) *SoundManager {
	return &SoundManager{
		volume: cfg.Volume,
		files: map[Sound]string{
			SoundHit:     cfg.HitSound,
			SoundScore:   cfg.ScoreSound,
			SoundGameEnd: cfg.GameEndSound,
		},
		buffers: make(map[Sound]*beep.Buffer),
		played:  make(map[Sound]int),
		output:  func(s beep.Streamer) { speaker.Play(s) },
	}
}

// Initialize opens the speaker and prepares every sound. A configured WAV
// file that cannot be read falls back to the synthesized tone.
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}

	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/10)); err != nil {
		return fmt.Errorf("init speaker: %w", err)
	}

	if err := sm.prepare(); err != nil {
		speaker.Close()
		return err
	}
	sm.initialized = true
	return nil
}

func (sm *SoundManager) prepare() error {
	for _, sound := range []Sound{SoundHit, SoundScore, SoundGameEnd} {
		if path := sm.files[sound]; path != "" {
			buffer, err := loadWAV(path)
			if err == nil {
				sm.buffers[sound] = buffer
				continue
			}
			log.Printf("Audio: %v, using synthesized %s sound", err, sound)
		}
		buffer, err := synthesize(sound)
		if err != nil {
			return fmt.Errorf("synthesize %s sound: %w", sound, err)
		}
		sm.buffers[sound] = buffer
	}
	return nil
}

// Cleanup releases the speaker.
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}
	speaker.Clear()
	speaker.Close()
	sm.initialized = false
}

func (sm *SoundManager) Play(sound Sound) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}
	buffer, ok := sm.buffers[sound]
	if !ok {
		return
	}
	sm.played[sound]++
	sm.output(withVolume(buffer.Streamer(0, buffer.Len()), sm.volume))
}

func (sm *SoundManager) PlayHit()     { sm.Play(SoundHit) }
func (sm *SoundManager) PlayScore()   { sm.Play(SoundScore) }
func (sm *SoundManager) PlayGameEnd() { sm.Play(SoundGameEnd) }

// Played counts how many times sound was started.
func (sm *SoundManager) Played(sound Sound) int {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return sm.played[sound]
}

// loadWAV decodes a WAV file into memory at the speaker's sample rate.
func loadWAV(path string) (*beep.Buffer, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open sound: %w", err)
	}
	streamer, fileFormat, err := wav.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	defer streamer.Close()

	buffer := beep.NewBuffer(format)
	if fileFormat.SampleRate == sampleRate {
		buffer.Append(streamer)
	} else {
		buffer.Append(beep.Resample(resampleQuality, fileFormat.SampleRate, sampleRate, streamer))
	}
	if err := streamer.Err(); err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return buffer, nil
}

type note struct {
	freq     float64
	duration time.Duration
}

var tones = map[Sound][]note{
	SoundHit:     {{freq: 660, duration: 60 * time.Millisecond}},
	SoundScore:   {{freq: 440, duration: 120 * time.Millisecond}, {freq: 880, duration: 120 * time.Millisecond}},
	SoundGameEnd: {{freq: 523, duration: 180 * time.Millisecond}, {freq: 392, duration: 180 * time.Millisecond}, {freq: 262, duration: 360 * time.Millisecond}},
}

// synthesize renders the built-in tone sequence for sound.
func synthesize(sound Sound) (*beep.Buffer, error) {
	notes, ok := tones[sound]
	if !ok {
		return nil, fmt.Errorf("no tone for %s", sound)
	}
	parts := make([]beep.Streamer, 0, len(notes))
	for _, n := range notes {
		sine, err := generators.SineTone(sampleRate, n.freq)
		if err != nil {
			return nil, err
		}
		parts = append(parts, beep.Take(sampleRate.N(n.duration), sine))
	}
	buffer := beep.NewBuffer(format)
	buffer.Append(beep.Seq(parts...))
	return buffer, nil
}

func withVolume(s beep.Streamer, volume float64) beep.Streamer {
	if volume <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(volume)}
}
