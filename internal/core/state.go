package core

// GameState is a read-only snapshot of the game for front-ends.
type GameState struct {
	Score     int  // Current points
	HighScore int  // Best points this session
	Distance  int  // Distance travelled (currentX)
	GameOver  bool // Paused because of a collision
	Paused    bool // Simulation is not advancing
	Night     bool // Inverted colour palette
}
