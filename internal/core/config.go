package core

// RuntimeConfig contains configuration passed to games at initialization.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Host frames per second; simulation ticks run on their own clock
	Seed     int64 // RNG seed for deterministic gameplay
	Debug    bool  // Draw the debug overlay
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     0, // 0 means use current time in platform layer
	}
}

// GameState is the read-only view of a run that the platform consumes.
type GameState struct {
	Score     int  // Current run score
	HighScore int  // Best score seen in this session
	LastScore int  // Score of the most recently finished run
	GameOver  bool // A run just ended and should be recorded
	Paused    bool // Whether the game is paused
}

// StepResult is returned by Game.Step after each simulation tick.
type StepResult struct {
	State GameState
}
