package audio

import (
	"io"
	"math"
	"testing"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gopxl/beep"

	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/games/flappy"
)

// drain reads a streamer to the end and returns the sample count and peak.
func drain(t *testing.T, s beep.Streamer) (int, float64) {
	t.Helper()
	buf := make([][2]float64, 512)
	total, peak := 0, 0.0
	for i := 0; i < 10000; i++ {
		n, ok := s.Stream(buf)
		for _, smp := range buf[:n] {
			peak = math.Max(peak, math.Max(math.Abs(smp[0]), math.Abs(smp[1])))
		}
		total += n
		if !ok {
			return total, peak
		}
	}
	t.Fatal("streamer never ended")
	return 0, 0
}

func TestCueStreamers(t *testing.T) {
	for _, cue := range flappy.Cues {
		t.Run(cue.String(), func(t *testing.T) {
			s := CueStreamer(cue, 0.3)
			if s == nil {
				t.Fatal("no streamer for cue")
			}
			n, peak := drain(t, s)
			if n == 0 {
				t.Error("cue produced no samples")
			}
			if n > sampleRate.N(time.Second) {
				t.Errorf("cue lasts %d samples, want under a second", n)
			}
			if peak == 0 {
				t.Error("cue is silent")
			}
			if peak > 0.6 {
				t.Errorf("peak %g too loud for volume 0.3", peak)
			}
		})
	}
}

func TestCueStreamerSilentAtZeroVolume(t *testing.T) {
	_, peak := drain(t, CueStreamer(flappy.CueScore, 0))
	if peak != 0 {
		t.Errorf("peak = %g, want silence", peak)
	}
}

func TestCueStreamerUnknown(t *testing.T) {
	if CueStreamer(flappy.Cue(99), 1) != nil {
		t.Error("unknown cue should have no streamer")
	}
}

func TestOscillatorLength(t *testing.T) {
	n, _ := drain(t, NewOscillator(440, 100*time.Millisecond, WaveSine, sampleRate))
	if want := sampleRate.N(100 * time.Millisecond); n != want {
		t.Errorf("samples = %d, want %d", n, want)
	}
}

func TestEnvelopeStartsAndEndsQuiet(t *testing.T) {
	d := 100 * time.Millisecond
	s := NewEnvelope(NewOscillator(0, d, WaveSquare, sampleRate), d, 10*time.Millisecond, 10*time.Millisecond, sampleRate)

	buf := make([][2]float64, sampleRate.N(d))
	n, _ := s.Stream(buf)
	if n != len(buf) {
		t.Fatalf("streamed %d samples, want %d", n, len(buf))
	}
	if buf[0][0] != 0 {
		t.Errorf("first sample = %g, want 0", buf[0][0])
	}
	if mid := buf[n/2][0]; mid != 1 {
		t.Errorf("sustain sample = %g, want 1", mid)
	}
	if last := math.Abs(buf[n-1][0]); last > 0.01 {
		t.Errorf("last sample = %g, want near 0", last)
	}
}

func TestRenderCues(t *testing.T) {
	bank := renderCues(0.3)

	if len(bank) != len(flappy.Cues) {
		t.Fatalf("rendered %d cues, want %d", len(bank), len(flappy.Cues))
	}
	for _, cue := range flappy.Cues {
		buf, ok := bank[cue]
		if !ok {
			t.Errorf("cue %s not rendered", cue)
			continue
		}
		n, peak := drain(t, buf.Streamer(0, buf.Len()))
		if n != buf.Len() || n == 0 {
			t.Errorf("cue %s replays %d of %d samples", cue, n, buf.Len())
		}
		if peak == 0 {
			t.Errorf("cue %s rendered silent", cue)
		}
	}
}

func TestSynthSilentUntilInit(t *testing.T) {
	s := NewSynth(config.FlappyAudio{Enabled: true, Volume: 0.3}, log.New(io.Discard))

	// Must not touch the speaker
	for _, cue := range flappy.Cues {
		s.Play(cue)
	}
	s.Close()
}

func TestSynthDisabledSkipsInit(t *testing.T) {
	s := NewSynth(config.FlappyAudio{Enabled: false}, nil)
	if err := s.Init(); err != nil {
		t.Fatalf("Init on a disabled synth should not fail: %v", err)
	}
	s.Play(flappy.CueJump)
}
