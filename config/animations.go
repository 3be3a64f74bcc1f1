package config

// AnimationSpec describes one sprite sheet: frame count and playback speed
// in ticks per frame.
type AnimationSpec struct {
	Frames int
	Speed  float32
}

// AnimationConfig contains per-state animation specs for the player
type AnimationConfig struct {
	Player map[StateID]AnimationSpec
}

var Animation AnimationConfig

func init() {
	Animation = AnimationConfig{
		Player: map[StateID]AnimationSpec{
			Idle:     {Frames: 4, Speed: 12},
			Move:     {Frames: 4, Speed: 8},
			Attack:   {Frames: 4, Speed: 5},
			GameOver: {Frames: 2, Speed: 20},
		},
	}
}
