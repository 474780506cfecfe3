package config

import (
	_ "embed"
	"time"
)

//go:embed defaults/flappy.yaml
var defaultFlappyYAML []byte

// DefaultFlappyConfig returns the default Flappy Bird configuration.
// It mirrors defaults/flappy.yaml and is used when the embedded file
// cannot be parsed.
func DefaultFlappyConfig() FlappyConfig {
	return FlappyConfig{
		Physics: FlappyPhysics{
			Gravity:      0.25,
			JumpVelocity: -4.6,
			TickRate:     60,
		},
		Layout: FlappyLayout{
			FlightArea: Area{X: 0, Y: 0, Width: 900, Height: 420},
			LandHeight: 112,
		},
		Bird: FlappyBird{
			X:             60,
			Width:         34,
			Height:        24,
			StartPosition: 180,
		},
		Pipes: FlappyPipes{
			SpawnDelay:  1400 * time.Millisecond,
			Gap:         90,
			EasyGap:     120,
			MinHeight:   80,
			Width:       52,
			SpawnX:      900,
			OffScreenX:  -100,
			ScrollSpeed: 133.333,
		},
		Timing: FlappyTiming{
			HitDelay:        500 * time.Millisecond,
			DieDelay:        500 * time.Millisecond,
			DeadDelay:       500 * time.Millisecond,
			ScoreboardDelay: 600 * time.Millisecond,
			ReplayDelay:     300 * time.Millisecond,
			ResetDelay:      750 * time.Millisecond,
		},
		Render: FlappyRender{
			FrameRate: 30,
		},
		Audio: FlappyAudio{
			Enabled: true,
			Volume:  0.3,
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultFlappyYAML
}
