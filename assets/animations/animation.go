package animations

// Animation steps through sprite sheet frames 0..Frames-1 at a fixed tick
// rate. Looped flips to true each time playback wraps (or completes, when
// frozen), which is how state code observes "animation finished".
type Animation struct {
	Frames           int
	TicksPerFrame    float32
	Looped           bool
	FreezeOnComplete bool

	frame        int
	frameCounter float32
}

func NewAnimation(frames int, ticksPerFrame float32) *Animation {
	return &Animation{
		Frames:        frames,
		TicksPerFrame: ticksPerFrame,
		frameCounter:  ticksPerFrame,
	}
}

func (a *Animation) Update() {
	a.frameCounter -= 1.0
	if a.frameCounter >= 0.0 {
		return
	}
	a.frameCounter = a.TicksPerFrame
	a.frame++
	if a.frame >= a.Frames {
		a.Looped = true
		if a.FreezeOnComplete {
			a.frame = a.Frames - 1
		} else {
			a.frame = 0
		}
	}
}

func (a *Animation) Frame() int {
	return a.frame
}

func (a *Animation) Restart() {
	a.frame = 0
	a.frameCounter = a.TicksPerFrame
	a.Looped = false
}
