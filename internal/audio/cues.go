package audio

import (
	"math"
	"math/rand"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"

	"github.com/vovakirdan/tui-flappy/internal/games/flappy"
)

// WaveType defines oscillator wave shapes.
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
	WaveSaw
	WaveNoise
)

// oscillator generates a fixed-length raw wave.
type oscillator struct {
	freq     float64
	phase    float64
	duration int
	position int
	wave     WaveType
	rate     beep.SampleRate
	rng      *rand.Rand
}

// NewOscillator creates an oscillator that stops after duration.
func NewOscillator(freq float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return &oscillator{
		freq:     freq,
		duration: rate.N(duration),
		wave:     wave,
		rate:     rate,
		rng:      rand.New(rand.NewSource(int64(freq) + 1)),
	}
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.position >= o.duration {
			return i, i > 0
		}

		var val float64
		switch o.wave {
		case WaveSine:
			val = math.Sin(2 * math.Pi * o.phase)
		case WaveSquare:
			if o.phase < 0.5 {
				val = 1.0
			} else {
				val = -1.0
			}
		case WaveSaw:
			val = 2.0 * (o.phase - 0.5)
		case WaveNoise:
			val = o.rng.Float64()*2 - 1
		}

		samples[i][0] = val
		samples[i][1] = val

		o.phase += o.freq / float64(o.rate)
		o.phase -= math.Floor(o.phase)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// envelope applies a linear attack and release to a stream.
type envelope struct {
	streamer       beep.Streamer
	position       int
	attackSamples  int
	releaseSamples int
	totalSamples   int
}

// NewEnvelope shapes s with an attack and a release over duration.
func NewEnvelope(s beep.Streamer, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	return &envelope{
		streamer:       s,
		attackSamples:  rate.N(attack),
		releaseSamples: rate.N(release),
		totalSamples:   rate.N(duration),
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)

	for i := 0; i < n; i++ {
		if e.position >= e.totalSamples {
			return i, i > 0
		}

		vol := 1.0
		if e.attackSamples > 0 && e.position < e.attackSamples {
			vol = float64(e.position) / float64(e.attackSamples)
		}
		releaseStart := e.totalSamples - e.releaseSamples
		if e.releaseSamples > 0 && e.position >= releaseStart {
			vol = math.Max(0, float64(e.totalSamples-e.position)/float64(e.releaseSamples))
		}

		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}

	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// newVolume scales a stream linearly. Zero is silent.
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol)}
}

// tone is an enveloped oscillator.
func tone(freq float64, d time.Duration, wave WaveType, attack, release time.Duration) beep.Streamer {
	return NewEnvelope(NewOscillator(freq, d, wave, sampleRate), d, attack, release, sampleRate)
}

// sineNote is a pure sine of length d from beep's generators.
func sineNote(freq float64, d time.Duration) beep.Streamer {
	sine, err := generators.SineTone(sampleRate, freq)
	if err != nil {
		return beep.Silence(sampleRate.N(d))
	}
	return NewEnvelope(beep.Take(sampleRate.N(d), sine), d, 5*time.Millisecond, d/2, sampleRate)
}

// wingSound is a short airy flap.
func wingSound() beep.Streamer {
	return beep.Mix(
		newVolume(tone(0, 90*time.Millisecond, WaveNoise, 10*time.Millisecond, 70*time.Millisecond), 0.4),
		newVolume(tone(320, 60*time.Millisecond, WaveSine, 5*time.Millisecond, 40*time.Millisecond), 0.6),
	)
}

// pointSound is a two-note chime.
func pointSound() beep.Streamer {
	return beep.Seq(
		tone(987.77, 70*time.Millisecond, WaveSquare, 2*time.Millisecond, 30*time.Millisecond),
		tone(1318.51, 180*time.Millisecond, WaveSquare, 2*time.Millisecond, 150*time.Millisecond),
	)
}

// hitSound is a harsh thud.
func hitSound() beep.Streamer {
	return beep.Mix(
		tone(90, 140*time.Millisecond, WaveSaw, 0, 100*time.Millisecond),
		newVolume(tone(0, 80*time.Millisecond, WaveNoise, 0, 60*time.Millisecond), 0.5),
	)
}

// dieSound is a falling three-note run.
func dieSound() beep.Streamer {
	return beep.Seq(
		sineNote(660, 90*time.Millisecond),
		sineNote(495, 90*time.Millisecond),
		sineNote(330, 220*time.Millisecond),
	)
}

// swooshSound is a band of noise swelling and fading.
func swooshSound() beep.Streamer {
	return tone(0, 260*time.Millisecond, WaveNoise, 110*time.Millisecond, 150*time.Millisecond)
}

// CueStreamer builds a fresh streamer for the cue at the given volume,
// or nil for an unknown cue.
func CueStreamer(cue flappy.Cue, volume float64) beep.Streamer {
	var s beep.Streamer
	switch cue {
	case flappy.CueJump:
		s = wingSound()
	case flappy.CueScore:
		s = pointSound()
	case flappy.CueHit:
		s = hitSound()
	case flappy.CueDie:
		s = dieSound()
	case flappy.CueSwoosh:
		s = swooshSound()
	default:
		return nil
	}
	return newVolume(s, volume)
}
