// Package config provides YAML-based configuration loading and validation
// for the flappy game.
package config

import (
	"errors"
	"fmt"
	"math"
	"time"
)

// FlappyConfig contains all configuration for the Flappy Bird game.
type FlappyConfig struct {
	Physics FlappyPhysics `yaml:"physics"`
	Layout  FlappyLayout  `yaml:"layout"`
	Bird    FlappyBird    `yaml:"bird"`
	Pipes   FlappyPipes   `yaml:"pipes"`
	Timing  FlappyTiming  `yaml:"timing"`
	Render  FlappyRender  `yaml:"render"`
	Audio   FlappyAudio   `yaml:"audio"`
}

// FlappyPhysics defines physics parameters. Velocities are in pixels per tick.
type FlappyPhysics struct {
	Gravity      float64 `yaml:"gravity"`
	JumpVelocity float64 `yaml:"jump_velocity"` // negative = up
	TickRate     int     `yaml:"tick_rate"`
}

// Area is a rectangle in world pixels.
type Area struct {
	X      float64 `yaml:"x"`
	Y      float64 `yaml:"y"`
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// FlappyLayout defines the play field in world pixels.
type FlappyLayout struct {
	FlightArea Area    `yaml:"flight_area"`
	LandHeight float64 `yaml:"land_height"`
}

// FlappyBird defines the bird's nominal geometry.
type FlappyBird struct {
	X             float64 `yaml:"x"` // Horizontal inset of the bird in the play field
	Width         float64 `yaml:"width"`
	Height        float64 `yaml:"height"`
	StartPosition float64 `yaml:"start_position"`
}

// FlappyPipes defines obstacle generation and scroll parameters.
type FlappyPipes struct {
	SpawnDelay  time.Duration `yaml:"spawn_delay"`
	Gap         int           `yaml:"gap"`
	EasyGap     int           `yaml:"easy_gap"`
	MinHeight   int           `yaml:"min_height"`
	Width       float64       `yaml:"width"`
	SpawnX      float64       `yaml:"spawn_x"`
	OffScreenX  float64       `yaml:"offscreen_x"`
	ScrollSpeed float64       `yaml:"scroll_speed"` // Pixels per second
}

// FlappyTiming defines the delays of the death and replay sequences.
type FlappyTiming struct {
	HitDelay        time.Duration `yaml:"hit_delay"`        // hit cue -> die cue
	DieDelay        time.Duration `yaml:"die_delay"`        // die cue -> PlayerDead
	DeadDelay       time.Duration `yaml:"dead_delay"`       // PlayerDead -> scoreboard
	ScoreboardDelay time.Duration `yaml:"scoreboard_delay"` // scoreboard -> replay button
	ReplayDelay     time.Duration `yaml:"replay_delay"`     // replay button -> ScoreScreen
	ResetDelay      time.Duration `yaml:"reset_delay"`      // replay pressed -> splash
}

// FlappyRender defines presentation parameters.
type FlappyRender struct {
	FrameRate int `yaml:"frame_rate"`
}

// FlappyAudio defines cue playback parameters.
type FlappyAudio struct {
	Enabled bool    `yaml:"enabled"`
	Volume  float64 `yaml:"volume"` // 0.0 to 1.0
}

// ErrInvalidConfig is wrapped by every validation failure.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Validate checks that the configuration describes a playable field.
// A failure here is fatal at startup.
func (c FlappyConfig) Validate() error {
	var errs []error

	fa := c.Layout.FlightArea
	if fa.Width <= 0 || fa.Height <= 0 {
		errs = append(errs, fmt.Errorf("flight area must have a positive size, got %gx%g", fa.Width, fa.Height))
	}
	// Pipe heights are whole pixels and must add up to the flight height.
	if fa.Height != math.Trunc(fa.Height) {
		errs = append(errs, fmt.Errorf("flight area height must be a whole number of pixels, got %g", fa.Height))
	}
	if c.Layout.LandHeight <= 0 {
		errs = append(errs, fmt.Errorf("land height must be positive, got %g", c.Layout.LandHeight))
	}
	if c.Bird.Width <= 0 || c.Bird.Height <= 0 {
		errs = append(errs, fmt.Errorf("bird must have a positive size, got %gx%g", c.Bird.Width, c.Bird.Height))
	}
	if c.Physics.TickRate <= 0 {
		errs = append(errs, fmt.Errorf("tick rate must be positive, got %d", c.Physics.TickRate))
	}
	if c.Render.FrameRate <= 0 {
		errs = append(errs, fmt.Errorf("frame rate must be positive, got %d", c.Render.FrameRate))
	}
	if c.Pipes.SpawnDelay <= 0 {
		errs = append(errs, fmt.Errorf("pipe spawn delay must be positive, got %s", c.Pipes.SpawnDelay))
	}
	if c.Pipes.Width <= 0 {
		errs = append(errs, fmt.Errorf("pipe width must be positive, got %g", c.Pipes.Width))
	}
	if c.Pipes.ScrollSpeed <= 0 {
		errs = append(errs, fmt.Errorf("scroll speed must be positive, got %g", c.Pipes.ScrollSpeed))
	}
	if c.Pipes.MinHeight < 0 {
		errs = append(errs, fmt.Errorf("pipe min height must not be negative, got %d", c.Pipes.MinHeight))
	}
	for _, gap := range []int{c.Pipes.Gap, c.Pipes.EasyGap} {
		if gap <= 0 {
			errs = append(errs, fmt.Errorf("pipe gap must be positive, got %d", gap))
			continue
		}
		if float64(gap+2*c.Pipes.MinHeight) > fa.Height {
			errs = append(errs, fmt.Errorf("pipe gap %d with min height %d does not fit a %g high flight area",
				gap, c.Pipes.MinHeight, fa.Height))
		}
	}
	if c.Audio.Volume < 0 || c.Audio.Volume > 1 {
		errs = append(errs, fmt.Errorf("audio volume must be within [0, 1], got %g", c.Audio.Volume))
	}

	if len(errs) == 0 {
		return nil
	}
	return fmt.Errorf("%w: %w", ErrInvalidConfig, errors.Join(errs...))
}
