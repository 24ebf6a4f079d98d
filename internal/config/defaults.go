package config

import (
	_ "embed"
)

//go:embed defaults/balloons.yaml
var defaultBalloonsYAML []byte

// DefaultBalloonsConfig returns the built-in configuration. It mirrors
// defaults/balloons.yaml and is the fallback when no YAML can be parsed.
func DefaultBalloonsConfig() BalloonsConfig {
	return BalloonsConfig{
		World: WorldConfig{
			Width:     1000,
			Height:    1000,
			Midline:   400,
			ScoreUnit: 100,
		},
		Player: PlayerConfig{
			Width:            100,
			Height:           150,
			StartX:           410,
			StartY:           850,
			MoveSpeed:        10,
			JumpSpeed:        20,
			Gravity:          0.4,
			TerminalVelocity: 0,
			GrabCooldown:     20,
			JumpCooldown:     10,
			MaxHitpoints:     1,
			TapDeadzone:      20,
			TapJumpThreshold: 50,
			TapRamp:          200,
			NudgeStep:        1,
			NudgeDeadband:    5,
		},
		Balloon: BalloonConfig{
			Radius:             100,
			RisingSpeed:        5,
			LifeMin:            30,
			LifeMax:            140,
			EasyLifeMin:        80,
			EasyScoreThreshold: 100,
			IntervalMin:        100,
			IntervalMax:        400,
			SpawnHeightFactor:  3,
			ExclusionFactor:    4,
			SeedCount:          8,
			SeedSpacing:        100,
		},
		Enemy: EnemyConfig{
			Enabled:          false,
			SpacingStart:     1500,
			SpacingStep:      100,
			SpacingFloor:     400,
			SpawnProbability: 0.5,
			MinSize:          20,
			MaxSize:          40,
			MaxVX:            4,
			MaxVY:            2,
		},
		Loop: LoopConfig{
			TickMillis:       15,
			MaxTicksPerFrame: 20,
		},
		Fall: FallConfig{
			Iterations:      50,
			MinAltitudeGain: 1,
		},
		Difficulty: DifficultyConfig{
			Enabled:      true,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "score",
				MaxAt: 200,
			},
			Scaling: ScalingConfig{
				IntervalGrowth:   0.5,
				ProbabilityBoost: 0.6,
			},
		},
	}
}

// GetDefaultYAML returns the embedded default YAML, for `config dump` style output.
func GetDefaultYAML() []byte {
	return defaultBalloonsYAML
}
