package systems

import (
	"testing"

	"github.com/solarlune/resolv"
	"github.com/tamaki/bombwalk/components"
	cfg "github.com/tamaki/bombwalk/config"
	"github.com/tamaki/bombwalk/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// Offsets here are bomb center minus player center.

func TestWithinDeflectRange(t *testing.T) {
	tests := []struct {
		name   string
		dx, dy float64
		want   bool
	}{
		{"at player", 0, 0, true},
		{"straight ahead inside", 0, -30, true},
		{"on the radius", 50, 0, true},
		{"just outside", 50.1, 0, false},
		{"diagonal outside", 40, 40, false},
		{"diagonal inside", 30, 30, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := withinDeflectRange(tt.dx, tt.dy); got != tt.want {
				t.Errorf("withinDeflectRange(%v, %v) = %v, want %v", tt.dx, tt.dy, got, tt.want)
			}
		})
	}
}

func TestInFacingCone(t *testing.T) {
	tests := []struct {
		name   string
		facing components.Direction
		dx, dy float64
		want   bool
	}{
		{"up, straight ahead", components.DirUp, 0, -30, true},
		{"up, inside half width", components.DirUp, 40, -10, true},
		{"up, outside half width", components.DirUp, 41, -10, false},
		{"up, bomb behind", components.DirUp, 0, 10, false},
		{"up, beside at 45", components.DirUp, 45, 0, false},
		{"down, straight ahead", components.DirDown, 0, 30, true},
		{"down, bomb above", components.DirDown, 0, -5, false},
		{"left, ahead", components.DirLeft, -40, 20, true},
		{"left, bomb right of player", components.DirLeft, 10, 0, false},
		{"right, ahead", components.DirRight, 30, -40, true},
		{"right, off cone", components.DirRight, 30, 40.5, false},
		{"boundary dy zero counts for up", components.DirUp, 20, 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := inFacingCone(tt.facing, tt.dx, tt.dy); got != tt.want {
				t.Errorf("inFacingCone(%v, %v, %v) = %v, want %v",
					tt.facing, tt.dx, tt.dy, got, tt.want)
			}
		})
	}
}

func TestDeflectGate(t *testing.T) {
	// the range and cone gates combine: both must pass
	tests := []struct {
		name   string
		facing components.Direction
		dx, dy float64
		want   bool
	}{
		{"in range and in cone", components.DirUp, 0, -30, true},
		{"in range, out of cone", components.DirUp, 45, 0, false},
		{"in cone, out of range", components.DirUp, 0, -60, false},
		{"out of both", components.DirUp, 40, 40, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := withinDeflectRange(tt.dx, tt.dy) && inFacingCone(tt.facing, tt.dx, tt.dy)
			if got != tt.want {
				t.Errorf("gate(%v, %v, %v) = %v, want %v", tt.facing, tt.dx, tt.dy, got, tt.want)
			}
		})
	}
}

func TestWithinBlast(t *testing.T) {
	tests := []struct {
		name   string
		dx, dy float64
		want   bool
	}{
		{"on top of bomb", 0, 0, true},
		{"both axes inside", 31, -31, true},
		{"x exactly at range", 32, 0, false},
		{"y exactly at range", 0, 32, false},
		{"x inside y outside", 10, 40, false},
		{"x outside y inside", -40, 10, false},
		{"just inside both", 31.9, 31.9, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := withinBlast(tt.dx, tt.dy); got != tt.want {
				t.Errorf("withinBlast(%v, %v) = %v, want %v", tt.dx, tt.dy, got, tt.want)
			}
		})
	}
}

// Headless world helpers: entities carry only the components the
// interaction systems read, so no sprites or GPU context are needed.

func newTestWorld(t *testing.T, now float64) *ecs.ECS {
	t.Helper()
	e := ecs.NewECS(donburi.NewWorld())
	GetClock(e).Now = now
	return e
}

func addTestPlayer(e *ecs.ECS, cx, cy float64, state cfg.StateID, facing components.Direction) *donburi.Entry {
	entry := e.World.Entry(e.World.Create(
		tags.Player, components.Player, components.Object, components.State,
	))
	w := float64(cfg.Player.CollisionWidth)
	h := float64(cfg.Player.CollisionHeight)
	obj := resolv.NewObject(cx-w/2, cy-h/2, w, h)
	components.Object.SetValue(entry, components.ObjectData{Object: obj})
	components.Player.SetValue(entry, components.PlayerData{Facing: facing})
	components.State.SetValue(entry, components.StateData{CurrentState: state})
	return entry
}

func addTestBomb(e *ecs.ECS, cx, cy, spawnedAt float64) *donburi.Entry {
	entry := e.World.Entry(e.World.Create(
		tags.Bomb, components.Bomb, components.Object,
	))
	w, h := cfg.Bomb.Width, cfg.Bomb.Height
	obj := resolv.NewObject(cx-w/2, cy-h/2, w, h)
	components.Object.SetValue(entry, components.ObjectData{Object: obj})
	components.Bomb.SetValue(entry, components.BombData{SpawnedAt: spawnedAt, TTL: cfg.Bomb.TTL})
	return entry
}

func countBombs(e *ecs.ECS) int {
	n := 0
	tags.Bomb.Each(e.World, func(*donburi.Entry) { n++ })
	return n
}

func TestReapRemovesExpiredAndTriggersGameOver(t *testing.T) {
	tests := []struct {
		name         string
		bombCX       float64
		bombCY       float64
		wantGameOver bool
	}{
		{"expires on the player", 100, 100, true},
		{"expires inside blast range", 110, 110, true},
		{"expires far away", 200, 100, false},
		{"one axis outside", 110, 140, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := newTestWorld(t, cfg.Bomb.TTL+1)
			playerEntry := addTestPlayer(e, 100, 100, cfg.Idle, components.DirDown)
			addTestBomb(e, tt.bombCX, tt.bombCY, 0)

			ReapExpired(e, nil)

			if got := countBombs(e); got != 0 {
				t.Errorf("%d bombs left after reap, want 0", got)
			}
			state := components.State.Get(playerEntry)
			if state.Terminal() != tt.wantGameOver {
				t.Errorf("terminal = %v, want %v", state.Terminal(), tt.wantGameOver)
			}
		})
	}
}

func TestReapLeavesUnexpiredBombs(t *testing.T) {
	e := newTestWorld(t, 1)
	playerEntry := addTestPlayer(e, 100, 100, cfg.Idle, components.DirDown)
	addTestBomb(e, 100, 100, 0)

	ReapExpired(e, nil)

	if got := countBombs(e); got != 1 {
		t.Errorf("%d bombs after reap, want 1", got)
	}
	if components.State.Get(playerEntry).Terminal() {
		t.Error("unexpired bomb triggered game over")
	}
}

func TestReapChecksSimultaneousExpiriesIndependently(t *testing.T) {
	e := newTestWorld(t, cfg.Bomb.TTL+1)
	playerEntry := addTestPlayer(e, 100, 100, cfg.Move, components.DirDown)
	addTestBomb(e, 400, 400, 0) // far
	addTestBomb(e, 105, 95, 0)  // inside blast range
	addTestBomb(e, 90, 110, 0)  // also inside; transition already terminal

	ReapExpired(e, nil)

	if got := countBombs(e); got != 0 {
		t.Errorf("%d bombs left after reap, want 0", got)
	}
	state := components.State.Get(playerEntry)
	if !state.Terminal() {
		t.Fatal("player not in game over after nearby expiry")
	}
	// exactly one transition fired: the recorded previous state is the
	// pre-reap state, not an intermediate
	if state.PreviousState != cfg.Move {
		t.Errorf("previous state = %v, want Move", state.PreviousState)
	}
}

func TestDeflectionRequiresAttackState(t *testing.T) {
	tests := []struct {
		name        string
		state       cfg.StateID
		wantDeflect bool
	}{
		{"idle", cfg.Idle, false},
		{"move", cfg.Move, false},
		{"attack", cfg.Attack, true},
		{"game over", cfg.GameOver, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := newTestWorld(t, 1)
			addTestPlayer(e, 100, 100, tt.state, components.DirUp)
			bombEntry := addTestBomb(e, 100, 70, 0) // (0,-30): in range, in cone

			UpdateInteractions(e)

			bomb := components.Bomb.Get(bombEntry)
			if bomb.Deflected != tt.wantDeflect {
				t.Errorf("deflected = %v, want %v", bomb.Deflected, tt.wantDeflect)
			}
			obj := components.Object.Get(bombEntry)
			if tt.wantDeflect {
				wantCY := 70 - cfg.Bomb.PushDistance
				if obj.CenterY() != wantCY || obj.CenterX() != 100 {
					t.Errorf("pushed to (%v, %v), want (100, %v)", obj.CenterX(), obj.CenterY(), wantCY)
				}
			} else if obj.CenterX() != 100 || obj.CenterY() != 70 {
				t.Errorf("bomb moved without attack: (%v, %v)", obj.CenterX(), obj.CenterY())
			}
		})
	}
}

func TestDeflectionSkipsExpiredBombs(t *testing.T) {
	e := newTestWorld(t, cfg.Bomb.TTL+1)
	addTestPlayer(e, 100, 100, cfg.Attack, components.DirUp)
	bombEntry := addTestBomb(e, 100, 70, 0)

	UpdateInteractions(e)

	if components.Bomb.Get(bombEntry).Deflected {
		t.Error("expired bomb was deflected")
	}
}

func TestDeflectedBombReapsAtPushedPosition(t *testing.T) {
	// Deflection and expiry read the same frame clock, so a bomb that is
	// deflectable this frame cannot also expire this frame; it is reaped
	// later at its pushed position.
	e := newTestWorld(t, cfg.Bomb.TTL-0.1)
	playerEntry := addTestPlayer(e, 100, 100, cfg.Attack, components.DirUp)
	bombEntry := addTestBomb(e, 100, 90, 0) // inside blast range before the push

	UpdateInteractions(e)
	if !components.Bomb.Get(bombEntry).Deflected {
		t.Fatal("bomb not deflected on its final live frame")
	}

	GetClock(e).Now = cfg.Bomb.TTL + 1
	ReapExpired(e, nil)

	if got := countBombs(e); got != 0 {
		t.Errorf("%d bombs left after reap, want 0", got)
	}
	if components.State.Get(playerEntry).Terminal() {
		t.Error("blast check used the pre-push position")
	}
}

func TestGameplaySystemsFreezeAfterGameOver(t *testing.T) {
	e := newTestWorld(t, 1)
	addTestPlayer(e, 100, 100, cfg.GameOver, components.DirUp)
	bombEntry := addTestBomb(e, 100, 70, 0)
	obj := components.Object.Get(bombEntry)
	x, y := obj.X, obj.Y

	ran := false
	for i := 0; i < 5; i++ {
		WithGameplayChecks(UpdateInteractions)(e)
		WithGameplayChecks(UpdateSpawns)(e)
		WithGameplayChecks(func(*ecs.ECS) { ran = true })(e)
	}

	if ran {
		t.Error("gameplay system ran while game over")
	}
	if got := countBombs(e); got != 1 {
		t.Errorf("%d bombs, want the original 1", got)
	}
	if obj.X != x || obj.Y != y {
		t.Errorf("bomb moved during game over: (%v, %v)", obj.X, obj.Y)
	}
	if components.Bomb.Get(bombEntry).Deflected {
		t.Error("bomb deflected during game over")
	}
}
