package config

import "image/color"

// PlayerConfig contains all player-related configuration values
type PlayerConfig struct {
	// Movement speed in pixels per second
	Speed float64

	// Dimensions
	FrameWidth      int
	FrameHeight     int
	CollisionWidth  int
	CollisionHeight int

	// Fallback spawn when the level defines no spawn object
	DefaultSpawnX float64
	DefaultSpawnY float64
}

// BombConfig contains bomb lifetime and interaction geometry
type BombConfig struct {
	// Seconds until a freshly placed bomb expires
	TTL float64

	// Deflection geometry
	PushDistance   float64 // impulse applied along the player's facing
	DeflectRadius  float64 // circular range gate around the player
	ConeHalfWidth  float64 // perpendicular bound of the facing cone
	ProximityRange float64 // per-axis blast radius checked on expiry

	// Seconds of remaining TTL below which the fuse warning tint kicks in
	FuseWarning float64

	// Dimensions
	Width  float64
	Height float64
}

// CameraConfig contains camera follow behavior
type CameraConfig struct {
	FollowSmoothing float64
}

// HUDConfig contains HUD layout values
type HUDConfig struct {
	MarginX   float64
	MarginY   float64
	TextColor color.RGBA
}

// GameOverConfig contains the end-of-game overlay configuration
type GameOverConfig struct {
	OverlayColor color.RGBA
	HintColor    color.RGBA
	FadeDuration float32 // seconds for the overlay fade-in
	HintOffsetY  float64 // distance below the centered image
	Hint         string
}

// MenuConfig contains title menu layout
type MenuConfig struct {
	Title             string
	Options           []string
	TitleY            float64
	MenuStartY        float64
	MenuItemHeight    float64
	MenuItemGap       float64
	TitleColor        color.RGBA
	TextColorNormal   color.RGBA
	TextColorSelected color.RGBA
}

// Config holds general game configuration
type Config struct {
	Width  int
	Height int

	LevelPath string
	ScriptDir string

	// Watch the script directory and recompile changed scripts between frames
	WatchScripts bool
}

// Global configuration instances
var C *Config
var Player PlayerConfig
var Bomb BombConfig
var Camera CameraConfig
var HUD HUDConfig
var GameOverScreen GameOverConfig
var Menu MenuConfig

// DebugConfig contains debug/testing command-line options
type DebugConfig struct {
	SkipMenu bool // Skip menu and go directly to game
}

var Debug DebugConfig

// Shared RGBA color constants
var (
	White        = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Yellow       = color.RGBA{R: 255, G: 255, B: 0, A: 255}
	Red          = color.RGBA{R: 255, G: 0, B: 0, A: 255}
	BlackOverlay = color.RGBA{R: 0, G: 0, B: 0, A: 180}
	LightBlue    = color.RGBA{R: 100, G: 180, B: 255, A: 255} // Selected menu items
	DarkBlue     = color.RGBA{R: 60, G: 100, B: 160, A: 255}  // Unselected menu items
)

func init() {
	C = &Config{
		Width:        640,
		Height:       360,
		LevelPath:    "levels/meadow.tmx",
		ScriptDir:    "assets/scripts",
		WatchScripts: true,
	}

	Player = PlayerConfig{
		Speed:           120.0,
		FrameWidth:      32,
		FrameHeight:     32,
		CollisionWidth:  16,
		CollisionHeight: 24,
		DefaultSpawnX:   96,
		DefaultSpawnY:   96,
	}

	Bomb = BombConfig{
		TTL:            3.0,
		PushDistance:   150.0,
		DeflectRadius:  50.0,
		ConeHalfWidth:  40.0,
		ProximityRange: 32.0,
		FuseWarning:    0.75,
		Width:          16,
		Height:         16,
	}

	Camera = CameraConfig{
		FollowSmoothing: 0.08,
	}

	HUD = HUDConfig{
		MarginX:   8,
		MarginY:   20,
		TextColor: White,
	}

	GameOverScreen = GameOverConfig{
		OverlayColor: BlackOverlay,
		HintColor:    Yellow,
		FadeDuration: 0.8,
		HintOffsetY:  48,
		Hint:         "PRESS ENTER TO RESTART",
	}

	Menu = MenuConfig{
		Title:             "BOMBWALK",
		Options:           []string{"START", "QUIT"},
		TitleY:            110,
		MenuStartY:        180,
		MenuItemHeight:    24,
		MenuItemGap:       8,
		TitleColor:        White,
		TextColorNormal:   DarkBlue,
		TextColorSelected: LightBlue,
	}
}
