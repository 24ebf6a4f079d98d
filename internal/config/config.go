// Package config provides YAML-based game configuration loading and
// difficulty management for the balloon climber.
package config

import (
	"errors"
	"fmt"
)

// ErrInvalidConfig is wrapped by every validation failure.
var ErrInvalidConfig = errors.New("invalid configuration")

// BalloonsConfig contains all configuration for the balloon climber.
// Distances are in world units, durations in simulation ticks unless noted.
type BalloonsConfig struct {
	World      WorldConfig      `yaml:"world"`
	Player     PlayerConfig     `yaml:"player"`
	Balloon    BalloonConfig    `yaml:"balloon"`
	Enemy      EnemyConfig      `yaml:"enemy"`
	Loop       LoopConfig       `yaml:"loop"`
	Fall       FallConfig       `yaml:"fall"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// WorldConfig defines the playfield. Y grows downward.
type WorldConfig struct {
	Width     float64 `yaml:"width"`
	Height    float64 `yaml:"height"`
	Midline   float64 `yaml:"midline"`    // scroll threshold, also the baseline altitude
	ScoreUnit float64 `yaml:"score_unit"` // altitude per score point
}

// PlayerConfig defines the climber's size, physics and input response.
type PlayerConfig struct {
	Width            float64 `yaml:"width"`
	Height           float64 `yaml:"height"`
	StartX           float64 `yaml:"start_x"`
	StartY           float64 `yaml:"start_y"`
	MoveSpeed        float64 `yaml:"move_speed"`
	JumpSpeed        float64 `yaml:"jump_speed"`
	Gravity          float64 `yaml:"gravity"`
	TerminalVelocity float64 `yaml:"terminal_velocity"` // 0 leaves gravity unbounded
	GrabCooldown     int     `yaml:"grab_cooldown"`
	JumpCooldown     int     `yaml:"jump_cooldown"`
	MaxHitpoints     int     `yaml:"max_hitpoints"`
	TapDeadzone      float64 `yaml:"tap_deadzone"`
	TapJumpThreshold float64 `yaml:"tap_jump_threshold"`
	TapRamp          float64 `yaml:"tap_ramp"` // tap distance that reaches full speed
	NudgeStep        float64 `yaml:"nudge_step"`
	NudgeDeadband    float64 `yaml:"nudge_deadband"`
}

// BalloonConfig defines balloon geometry, lifespan and spawning.
type BalloonConfig struct {
	Radius             float64 `yaml:"radius"`
	RisingSpeed        float64 `yaml:"rising_speed"`
	LifeMin            int     `yaml:"life_min"`
	LifeMax            int     `yaml:"life_max"`
	EasyLifeMin        int     `yaml:"easy_life_min"`
	EasyScoreThreshold int     `yaml:"easy_score_threshold"`
	IntervalMin        float64 `yaml:"interval_min"`
	IntervalMax        float64 `yaml:"interval_max"`
	SpawnHeightFactor  float64 `yaml:"spawn_height_factor"` // spawn at y = -factor * radius
	ExclusionFactor    float64 `yaml:"exclusion_factor"`    // band width = factor * radius
	SeedCount          int     `yaml:"seed_count"`
	SeedSpacing        float64 `yaml:"seed_spacing"`
}

// EnemyConfig defines the drifting hazards.
type EnemyConfig struct {
	Enabled          bool    `yaml:"enabled"`
	SpacingStart     float64 `yaml:"spacing_start"`
	SpacingStep      float64 `yaml:"spacing_step"`
	SpacingFloor     float64 `yaml:"spacing_floor"`
	SpawnProbability float64 `yaml:"spawn_probability"`
	MinSize          float64 `yaml:"min_size"`
	MaxSize          float64 `yaml:"max_size"`
	MaxVX            float64 `yaml:"max_vx"`
	MaxVY            float64 `yaml:"max_vy"`
}

// LoopConfig defines the fixed simulation step.
type LoopConfig struct {
	TickMillis       int `yaml:"tick_ms"`
	MaxTicksPerFrame int `yaml:"max_ticks_per_frame"`
}

// FallConfig defines the end-of-run animation.
type FallConfig struct {
	Iterations      int     `yaml:"iterations"`
	MinAltitudeGain float64 `yaml:"min_altitude_gain"` // climbs at or below this end without animation
}

// DifficultyConfig defines the difficulty progression system.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled"`
	InitialLevel float64           `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression"`
	Scaling      ScalingConfig     `yaml:"scaling"`
}

// ProgressionConfig defines how difficulty increases over a run.
type ProgressionConfig struct {
	Type  string `yaml:"type"`   // "score", "time", or "none"
	MaxAt int    `yaml:"max_at"` // Score/ticks at which max difficulty is reached
}

// ScalingConfig defines the magnitude of difficulty changes at level 1.0.
type ScalingConfig struct {
	IntervalGrowth   float64 `yaml:"interval_growth"`   // fraction added to the balloon interval
	ProbabilityBoost float64 `yaml:"probability_boost"` // fraction of the remaining enemy odds added
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset maps a CLI string to a preset. Unknown values yield "".
func ParsePreset(s string) DifficultyPreset {
	switch p := DifficultyPreset(s); p {
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p
	}
	return ""
}

// InitialLevelForPreset returns the initial_level for a difficulty preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyNormal:
		return 0.3
	case DifficultyHard:
		return 0.7
	default:
		return 0.0
	}
}

// ApplyBalloonsPreset modifies the config based on a difficulty preset.
func ApplyBalloonsPreset(cfg *BalloonsConfig, preset DifficultyPreset) {
	switch preset {
	case "":
		return
	case DifficultyFixed:
		cfg.Difficulty.Enabled = false
	default:
		cfg.Difficulty.Enabled = true
		cfg.Difficulty.InitialLevel = InitialLevelForPreset(preset)
	}
}

// Validate rejects configurations the simulation cannot run with.
func (c BalloonsConfig) Validate() error {
	var errs []error
	check := func(ok bool, format string, args ...any) {
		if !ok {
			errs = append(errs, fmt.Errorf(format, args...))
		}
	}

	w, p, b, e := c.World, c.Player, c.Balloon, c.Enemy
	check(w.Width > 0 && w.Height > 0, "world size must be positive, got %vx%v", w.Width, w.Height)
	check(w.Midline > 0 && w.Midline < w.Height, "midline %v must lie inside the world", w.Midline)
	check(w.ScoreUnit > 0, "score_unit must be positive")
	check(p.Width > 0 && p.Height > 0 && p.Width < w.Width && p.Height < w.Height, "player size %vx%v does not fit the world", p.Width, p.Height)
	check(p.MoveSpeed > 0 && p.JumpSpeed > 0 && p.Gravity > 0, "player speeds and gravity must be positive")
	check(p.GrabCooldown >= 0 && p.JumpCooldown >= 0, "cooldowns must not be negative")
	check(p.MaxHitpoints >= 1, "max_hitpoints must be at least 1")
	check(p.TapRamp > 0, "tap_ramp must be positive")
	check(b.Radius > 0 && b.RisingSpeed > 0, "balloon radius and rising_speed must be positive")
	check(b.LifeMin > 0 && b.LifeMin <= b.LifeMax, "balloon life range [%d, %d] is invalid", b.LifeMin, b.LifeMax)
	check(b.EasyLifeMin > 0 && b.EasyLifeMin <= b.LifeMax, "easy_life_min %d is outside the life range", b.EasyLifeMin)
	check(b.IntervalMin > 0 && b.IntervalMin <= b.IntervalMax, "balloon interval [%v, %v] is invalid", b.IntervalMin, b.IntervalMax)
	check(2*b.Radius < w.Width-b.Radius, "balloon radius %v leaves no room to spawn", b.Radius)
	check(b.SeedCount >= 1, "seed_count must be at least 1")
	if e.Enabled {
		check(e.SpacingFloor > 0 && e.SpacingFloor <= e.SpacingStart, "enemy spacing floor must be in (0, spacing_start]")
		check(e.SpacingStep >= 0, "enemy spacing_step must not be negative")
		check(e.SpawnProbability >= 0 && e.SpawnProbability <= 1, "enemy spawn_probability %v outside [0, 1]", e.SpawnProbability)
		check(e.MinSize > 0 && e.MinSize <= e.MaxSize, "enemy size range [%v, %v] is invalid", e.MinSize, e.MaxSize)
	}
	check(c.Loop.TickMillis > 0, "loop tick_ms must be positive")
	check(c.Loop.MaxTicksPerFrame > 0, "loop max_ticks_per_frame must be positive")
	check(c.Fall.Iterations > 0, "fall iterations must be positive")

	if len(errs) == 0 {
		return nil
	}
	return fmt.Errorf("%w: %w", ErrInvalidConfig, errors.Join(errs...))
}
