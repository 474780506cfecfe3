package flappy

// State is a phase of the game.
type State int

const (
	StateLoading State = iota
	StateSplashScreen
	StatePlaying
	StatePlayerDying
	StatePlayerDead
	StateScoreScreen
)

// String returns the state name.
func (s State) String() string {
	switch s {
	case StateLoading:
		return "Loading"
	case StateSplashScreen:
		return "SplashScreen"
	case StatePlaying:
		return "Playing"
	case StatePlayerDying:
		return "PlayerDying"
	case StatePlayerDead:
		return "PlayerDead"
	case StateScoreScreen:
		return "ScoreScreen"
	default:
		return "Unknown"
	}
}
