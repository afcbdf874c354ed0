package config

import (
	"image/color"

	"github.com/automoto/matinee/shared/gamemath"
)

// Config holds general window configuration
type Config struct {
	Width  int `env:"MATINEE_WIDTH"`
	Height int `env:"MATINEE_HEIGHT"`
}

// MovementConfig contains kid movement tuning
type MovementConfig struct {
	PlayerSpeed    float64 // units/s^2 of acceleration while a direction is held
	PlayerFriction float64 // velocity *= friction^dt when idle
	MaxSpeed       float64 // units per frame

	FollowDistance     float64 // followers close in beyond this distance
	SeparationDistance float64 // followers push apart inside this distance
	FollowSpeedFactor  float64 // fraction of MaxSpeed a follower may reach

	DistractionRadius float64 // how close a kid must be to distract a ticket guard
	InputBuffer       float64 // seconds a pressed direction stays buffered
}

// PerceptionConfig contains guard sight tuning
type PerceptionConfig struct {
	HalfAngle      float64
	Distance       float64
	MovieHalfAngle float64
	MovieDistance  float64

	CaughtText    string
	CaughtScripts [][]string // textbox lines; a caught script ends with a level reset
}

// PatrolConfig contains patrolling guard tuning
type PatrolConfig struct {
	Speed        float64
	Friction     float64
	ArriveRadius float64
	SlowRadius   float64
}

// CutsceneConfig contains cutscene presentation values
type CutsceneConfig struct {
	MouthToggle  float64 // seconds between mouth frames of the talking character
	SlotScale    float64
	Slots        map[string]gamemath.Vec3
	TextBoxColor color.RGBA
	TextColor    color.RGBA
	TextBoxY     float64
	BoxPadding   float64
	FollowText   float64 // seconds a follow-text pulse stays on screen

	// Labels replace {placeholder} tokens in prompts per input device
	KeyboardLabels    map[string]string
	XboxLabels        map[string]string
	PlayStationLabels map[string]string
}

// TransitionConfig contains sub-level transition timing
type TransitionConfig struct {
	Delay      float64 // seconds between accepting a level change and committing it
	ResetWait  float64 // seconds the reset modes wait before restarting
	TitleHold  float64 // seconds the level title overlay is shown
	LoadingMin float64 // seconds the loading screen stays up at least
}

// CameraConfig contains the default camera pose and retarget speed
type CameraConfig struct {
	Position      gamemath.Vec3
	Axis          gamemath.Vec3
	Angle         float64
	RetargetRate  float64 // speed used when a shape's camera pose takes over
	PixelsPerUnit float64
	Smoothing     float64 // share of the remaining distance the view closes per frame
}

// CreditsConfig contains the end credits scroll
type CreditsConfig struct {
	Start     float64
	Rate      float64 // scroll speed in percent per second, times the screen height
	EndMargin float64
	Lines     []string
	TextColor color.RGBA
}

// PauseConfig contains pause menu configuration values
type PauseConfig struct {
	OverlayColor      color.RGBA
	TextColorNormal   color.RGBA
	TextColorSelected color.RGBA
	MenuItemHeight    float64
	MenuOptions       []string
}

// MenuConfig contains main menu configuration values
type MenuConfig struct {
	BackgroundColor   color.RGBA
	TitleColor        color.RGBA
	TextColorNormal   color.RGBA
	TextColorSelected color.RGBA
	Title             string
	TitleY            float64
	MenuStartY        float64
	MenuItemHeight    float64
}

// DebugConfig contains debug/testing options
type DebugConfig struct {
	SkipMenu   bool   `env:"MATINEE_SKIP_MENU"`    // Skip menu and go directly to the game
	LevelDir   string `env:"MATINEE_LEVEL_DIR"`    // Load and watch level files from disk
	ShowShapes bool   `env:"MATINEE_DEBUG_SHAPES"` // Draw collision boxes from the start
}

// KidConfig is how one kid is drawn
type KidConfig struct {
	Legs, Torso, Skin, Hair string
	LongHair                bool
}

// LevelsConfig contains level entry values
type LevelsConfig struct {
	File          string
	CollisionTMX  string
	LobbySeeds    map[string]gamemath.Vec3
	OutsideSeeds  map[string]gamemath.Vec3
	HiddenGuard   gamemath.Vec3 // spawn point of guards held back until halfway
	RevealedGuard gamemath.Vec3
	Titles        map[string]string
}

// Global configuration instances
var C *Config
var Movement MovementConfig
var Perception PerceptionConfig
var Patrol PatrolConfig
var Cutscene CutsceneConfig
var Transition TransitionConfig
var Camera CameraConfig
var Credits CreditsConfig
var Pause PauseConfig
var Menu MenuConfig
var Debug DebugConfig
var Kids map[string]KidConfig
var Levels LevelsConfig

// Shared RGBA color constants
var (
	White        = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Yellow       = color.RGBA{R: 255, G: 255, B: 0, A: 255}
	Red          = color.RGBA{R: 255, G: 0, B: 0, A: 255}
	Green        = color.RGBA{R: 0, G: 255, B: 0, A: 255}
	Blue         = color.RGBA{R: 0, G: 100, B: 255, A: 255}
	Magenta      = color.RGBA{R: 255, G: 0, B: 255, A: 255}
	BlackOverlay = color.RGBA{R: 0, G: 0, B: 0, A: 180}
	LightBlue    = color.RGBA{R: 100, G: 180, B: 255, A: 255} // Selected menu items
	DarkBlue     = color.RGBA{R: 60, G: 100, B: 160, A: 255}  // Unselected menu items
)

func init() {
	C = &Config{
		Width:  640,
		Height: 360,
	}

	Movement = MovementConfig{
		PlayerSpeed:    3.0,
		PlayerFriction: 0.15,
		MaxSpeed:       0.15,

		FollowDistance:     3.0,
		SeparationDistance: 1.5,
		FollowSpeedFactor:  0.1,

		DistractionRadius: 1.0,
		InputBuffer:       0.1,
	}

	Perception = PerceptionConfig{
		HalfAngle:      0.5,
		Distance:       5.7 - 0.7,
		MovieHalfAngle: 0.1,
		MovieDistance:  5.7 - 2.7,

		CaughtText: "Hey!",
		CaughtScripts: [][]string{
			{"Hey! Where do you think you're going?"},
			{"Hey! No sneaking in!", "Back outside, all of you."},
			{"I saw that!"},
		},
	}

	Patrol = PatrolConfig{
		Speed:        0.1,
		Friction:     0.1,
		ArriveRadius: 0.1,
		SlowRadius:   2.0,
	}

	Cutscene = CutsceneConfig{
		MouthToggle: 0.3,
		SlotScale:   0.35,
		Slots: map[string]gamemath.Vec3{
			"left":         gamemath.V3(-1.1, -0.7, -2.39),
			"right":        gamemath.V3(1.1, -0.7, -2.39),
			"center_right": gamemath.V3(0.6, -0.7, -2.99),
			"center_left":  gamemath.V3(-0.8, -0.7, -2.99),
		},
		TextBoxColor: color.RGBA{R: 0, G: 0, B: 0, A: 200},
		TextColor:    White,
		TextBoxY:     290,
		BoxPadding:   8,
		FollowText:   3.0,

		KeyboardLabels:    map[string]string{"accept": "Space", "switch": "K"},
		XboxLabels:        map[string]string{"accept": "A", "switch": "Y"},
		PlayStationLabels: map[string]string{"accept": "Cross", "switch": "Triangle"},
	}

	Transition = TransitionConfig{
		Delay:      0.01,
		ResetWait:  1.0,
		TitleHold:  1.5,
		LoadingMin: 0.25,
	}

	Camera = CameraConfig{
		Position:      gamemath.V3(-12.5, 10.5, 0),
		Axis:          gamemath.V3(-0.20287918, -0.9580786, -0.20229985),
		Angle:         1.6107514,
		RetargetRate:  2.0,
		PixelsPerUnit: 12,
		Smoothing:     0.1,
	}

	Credits = CreditsConfig{
		Start:     60,
		Rate:      8592,
		EndMargin: 60,
		Lines: []string{
			"MATINEE",
			"",
			"A game about four kids",
			"and one movie ticket",
			"",
			"Thanks for playing",
		},
		TextColor: White,
	}

	Pause = PauseConfig{
		OverlayColor:      BlackOverlay,
		TextColorNormal:   DarkBlue,
		TextColorSelected: LightBlue,
		MenuItemHeight:    30,
		MenuOptions:       []string{"Resume", "Fullscreen", "Main Menu"},
	}

	Menu = MenuConfig{
		BackgroundColor:   color.RGBA{R: 20, G: 14, B: 30, A: 255},
		TitleColor:        Yellow,
		TextColorNormal:   DarkBlue,
		TextColorSelected: LightBlue,
		Title:             "MATINEE",
		TitleY:            100,
		MenuStartY:        160,
		MenuItemHeight:    30,
	}

	// Debug Config (defaults, can be overridden by the environment)
	Debug = DebugConfig{}

	Kids = map[string]KidConfig{
		"A": {Legs: "#3d405b", Torso: "#e07a5f", Skin: "#f2cc8f", Hair: "#5c3d2e"},
		"B": {Legs: "#264653", Torso: "#2a9d8f", Skin: "#8d5524", Hair: "#1b1b1b", LongHair: true},
		"C": {Legs: "#6d597a", Torso: "#e9c46a", Skin: "#ffdbac", Hair: "#d4a373", LongHair: true},
		"D": {Legs: "#1d3557", Torso: "#e63946", Skin: "#c68642", Hair: "#3b2f2f"},
	}

	Levels = LevelsConfig{
		File:         "theater.yaml",
		CollisionTMX: "collision.tmx",
		LobbySeeds: map[string]gamemath.Vec3{
			"A": gamemath.V3(0, 0, 0),
			"B": gamemath.V3(0, 0, -1),
			"C": gamemath.V3(0, 0, 0.5),
			"D": gamemath.V3(0, 0, -0.5),
		},
		OutsideSeeds: map[string]gamemath.Vec3{
			"A": gamemath.V3(-8, 0, 0),
			"B": gamemath.V3(-8, 0, -1),
			"C": gamemath.V3(-8, 0, 1),
			"D": gamemath.V3(-9, 0, 0),
		},
		HiddenGuard:   gamemath.V3(-100, 0, -100),
		RevealedGuard: gamemath.V3(0, 0, -9),
		Titles: map[string]string{
			"outside": "Outside the Theater",
			"lobby":   "The Lobby",
			"movie":   "The Movie",
		},
	}
}
