package flappy

// Medal is the cosmetic reward for a finished run.
type Medal int

const (
	MedalNone Medal = iota
	MedalBronze
	MedalSilver
	MedalGold
	MedalPlatinum
)

// medalThresholds is ordered from the highest tier down.
var medalThresholds = []struct {
	minScore int
	medal    Medal
}{
	{40, MedalPlatinum},
	{30, MedalGold},
	{20, MedalSilver},
	{10, MedalBronze},
}

// MedalFor returns the highest medal whose threshold the score meets.
func MedalFor(score int) Medal {
	for _, t := range medalThresholds {
		if score >= t.minScore {
			return t.medal
		}
	}
	return MedalNone
}

// String returns the medal name.
func (m Medal) String() string {
	switch m {
	case MedalBronze:
		return "bronze"
	case MedalSilver:
		return "silver"
	case MedalGold:
		return "gold"
	case MedalPlatinum:
		return "platinum"
	default:
		return "none"
	}
}
