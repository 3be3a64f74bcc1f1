package factory

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/tamaki/bombwalk/assets"
	"github.com/tamaki/bombwalk/assets/animations"
	"github.com/tamaki/bombwalk/components"
	cfg "github.com/tamaki/bombwalk/config"
)

// GenerateAnimations loads the per-state sprite sheets for an entity
// directory and builds the animation set driving them.
func GenerateAnimations(dir string, frameWidth, frameHeight int) *components.AnimationData {
	sheets := map[cfg.StateID]*ebiten.Image{}
	anims := map[cfg.StateID]*animations.Animation{}

	for state, name := range cfg.StateToFileName {
		spec, ok := cfg.Animation.Player[state]
		if !ok {
			continue
		}
		sheets[state] = assets.GetSpriteSheet(dir, name)
		anim := animations.NewAnimation(spec.Frames, spec.Speed)
		if state == cfg.GameOver {
			anim.FreezeOnComplete = true
		}
		anims[state] = anim
	}

	return &components.AnimationData{
		SpriteSheets: sheets,
		CachedFrames: map[cfg.StateID]map[int]*ebiten.Image{},
		CurrentSheet: cfg.Idle,
		FrameWidth:   frameWidth,
		FrameHeight:  frameHeight,
		Animations:   anims,
	}
}
