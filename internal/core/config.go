package core

// RuntimeConfig is what the platform layer hands a game on Reset.
type RuntimeConfig struct {
	ScreenW  int   // terminal width in cells
	ScreenH  int   // terminal height in cells
	TickRate int   // simulation ticks per second
	Seed     int64 // 0 lets the platform pick one from the clock
}

// GameState is the run summary the platform polls after every step.
type GameState struct {
	Wave     int
	GameOver bool
	Paused   bool

	Kills      int
	Money      int
	SimSeconds float64
}

// StepResult is returned by Game.Step.
type StepResult struct {
	State GameState
}
