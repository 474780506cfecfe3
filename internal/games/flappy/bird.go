package flappy

import (
	"math"

	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/core"
)

// FlyingProperties are the physics a bird is constructed with.
type FlyingProperties struct {
	Gravity      float64  // Added to velocity every tick
	JumpVelocity float64  // Velocity set by a jump, negative = up
	FlightArea   core.Box // Bounds of vertical travel
}

// Bird is the player body. It moves on one axis inside the flight area.
type Bird struct {
	props FlyingProperties
	geom  config.FlappyBird
	audio AudioPlayer

	position float64 // Offset from the top of the flight area
	velocity float64 // Pixels per tick, positive = down
	rotation float64 // Degrees, 0 = level, 90 = nose down
	box      core.Box
}

// NewBird creates a bird in its initial flight state.
func NewBird(props FlyingProperties, geom config.FlappyBird, audio AudioPlayer) *Bird {
	b := &Bird{props: props, geom: geom, audio: audio}
	b.Reset()
	return b
}

// Reset returns the bird to its initial flight state.
func (b *Bird) Reset() {
	b.position = b.geom.StartPosition
	b.velocity = 0
	b.rotation = 0
	b.box = b.boxFor(b.position, b.rotation)
}

// Jump overwrites the velocity with the jump velocity.
func (b *Bird) Jump() {
	b.velocity = b.props.JumpVelocity
	b.audio.Play(CueJump)
}

// Tick integrates one fixed physics step.
func (b *Bird) Tick() {
	b.velocity += b.props.Gravity
	b.rotation = RotationFor(b.velocity)
	b.position += b.velocity
	// Clamping leaves velocity untouched
	b.position = core.ClampF(b.position, 0, b.props.FlightArea.H)
	b.box = b.boxFor(b.position, b.rotation)
}

// Die returns the scripted death sequence: the bird drops to the floor
// nose down, then the hit and die cues play with a pause after each.
// The sequence is complete once the last step has run.
func (b *Bird) Die(timing config.FlappyTiming) []Step {
	return []Step{
		{Name: "bird-hit", Run: func() {
			b.position = b.props.FlightArea.H - b.geom.Height
			b.rotation = 90
			b.box = b.boxFor(b.position, b.rotation)
			b.audio.Play(CueHit)
		}},
		{After: timing.HitDelay, Name: "bird-die", Run: func() {
			b.audio.Play(CueDie)
		}},
		{After: timing.DieDelay, Name: "bird-down"},
	}
}

// RotationFor maps a velocity onto the bird's tilt in degrees.
func RotationFor(velocity float64) float64 {
	return core.ClampF(velocity/10*90, 0, 90)
}

// boxFor morphs the nominal box toward its transpose as the bird tilts,
// keeping it centered on the sprite.
func (b *Bird) boxFor(position, rotation float64) core.Box {
	w, h := b.geom.Width, b.geom.Height
	s := math.Sin(math.Abs(core.ToRad(rotation)))

	boxW := w + (h-w)*s
	boxH := h + (w-h)*s

	return core.Box{
		X: b.props.FlightArea.X + b.geom.X + (w-boxW)/2,
		Y: b.props.FlightArea.Y + position + (h-boxH)/2,
		W: boxW,
		H: boxH,
	}
}

// Position returns the offset from the top of the flight area.
func (b *Bird) Position() float64 { return b.position }

// Velocity returns the current vertical velocity.
func (b *Bird) Velocity() float64 { return b.velocity }

// Rotation returns the current tilt in degrees.
func (b *Bird) Rotation() float64 { return b.rotation }

// Box returns the collision box in world coordinates.
func (b *Bird) Box() core.Box { return b.box }
