package core

// RuntimeConfig describes the hardware surface a game session runs against.
// Games use it to lay out their playfield and seed their RNG.
type RuntimeConfig struct {
	DisplayW int    // Display width in pixels
	DisplayH int    // Display height in pixels
	LEDBars  int    // LEDs per bar (the bank has two symmetric bars)
	Seed     uint32 // RNG seed for deterministic gameplay
}

// DefaultRuntimeConfig matches the badge hardware: 320x170 display and two
// 5-LED bars.
func DefaultRuntimeConfig() RuntimeConfig {
	return RuntimeConfig{
		DisplayW: 320,
		DisplayH: 170,
		LEDBars:  5,
		Seed:     0,
	}
}

// GameState reports a game's externally visible status.
type GameState struct {
	Score    int
	GameOver bool
	Won      bool
}
