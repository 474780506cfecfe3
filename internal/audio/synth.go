// Package audio synthesizes and plays the game's sound cues with beep.
// No sample files are shipped: every cue is built from oscillators.
package audio

import (
	"io"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/games/flappy"
)

const sampleRate = beep.SampleRate(44100)

// Synth plays cues through the system speaker. Until Init succeeds it
// stays silent, so a machine without audio still runs the game.
type Synth struct {
	mu          sync.Mutex
	enabled     bool
	volume      float64
	mixer       *beep.Mixer
	bank        map[flappy.Cue]*beep.Buffer
	initialized bool
	logger      *log.Logger
}

var _ flappy.AudioPlayer = (*Synth)(nil)

// NewSynth creates a synth from the audio configuration.
func NewSynth(cfg config.FlappyAudio, logger *log.Logger) *Synth {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Synth{
		enabled: cfg.Enabled,
		volume:  cfg.Volume,
		mixer:   &beep.Mixer{},
		logger:  logger,
	}
}

// Init opens the speaker. Disabled synths skip it.
func (s *Synth) Init() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.enabled || s.initialized {
		return nil
	}

	if err := speaker.Init(sampleRate, sampleRate.N(50*time.Millisecond)); err != nil {
		return err
	}
	s.bank = renderCues(s.volume)
	speaker.Play(s.mixer)
	s.initialized = true
	return nil
}

// Play starts a cue and returns immediately.
func (s *Synth) Play(cue flappy.Cue) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.initialized {
		return
	}
	buf, ok := s.bank[cue]
	if !ok {
		s.logger.Debug("no sound for cue", "cue", cue)
		return
	}

	speaker.Lock()
	s.mixer.Add(buf.Streamer(0, buf.Len()))
	speaker.Unlock()
}

// renderCues synthesizes every cue once so playback only replays samples.
func renderCues(volume float64) map[flappy.Cue]*beep.Buffer {
	format := beep.Format{SampleRate: sampleRate, NumChannels: 2, Precision: 2}
	bank := make(map[flappy.Cue]*beep.Buffer, len(flappy.Cues))
	for _, cue := range flappy.Cues {
		s := CueStreamer(cue, volume)
		if s == nil {
			continue
		}
		buf := beep.NewBuffer(format)
		buf.Append(s)
		bank[cue] = buf
	}
	return bank
}

// Close silences every playing cue.
func (s *Synth) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.initialized {
		return
	}
	speaker.Lock()
	s.mixer.Clear()
	speaker.Unlock()
	s.initialized = false
}
