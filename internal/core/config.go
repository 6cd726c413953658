package core

// RuntimeConfig is what the platform hands a game on Reset.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Frames per second driven by the platform
	Seed     int64 // RNG seed; the platform replaces 0 with the clock
}

// DefaultConfig returns an 80x24, 60 fps config.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
	}
}

// GameState is the platform-facing summary of a session.
type GameState struct {
	Score    int
	GameOver bool
	Paused   bool
	Reason   string // why the session ended; empty while alive
}

// StepResult is returned by Game.Step after each frame.
type StepResult struct {
	State GameState
}
