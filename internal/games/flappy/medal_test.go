package flappy

import "testing"

func TestMedalFor(t *testing.T) {
	tests := []struct {
		score int
		want  Medal
	}{
		{0, MedalNone},
		{9, MedalNone},
		{10, MedalBronze},
		{19, MedalBronze},
		{20, MedalSilver},
		{25, MedalSilver},
		{30, MedalGold},
		{39, MedalGold},
		{40, MedalPlatinum},
		{400, MedalPlatinum},
	}

	for _, tt := range tests {
		if got := MedalFor(tt.score); got != tt.want {
			t.Errorf("MedalFor(%d) = %s, want %s", tt.score, got, tt.want)
		}
	}
}
