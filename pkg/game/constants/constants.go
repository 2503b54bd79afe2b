package constants

const (

	// PlayerWidth is the width of the player's collision box
	PlayerWidth float64 = 64.0
	// PlayerHeight is the height of the player's collision box
	PlayerHeight float64 = 64.0
	// PlayerStartingX is the fallback spawn X when the map has no start tile
	PlayerStartingX float64 = 170.0
	// PlayerStartingY is the fallback spawn Y when the map has no start tile
	PlayerStartingY float64 = 500.0

	// PlayerJumpSpeed is the vertical impulse applied on jump (negative is up)
	PlayerJumpSpeed float64 = -21.0
	// Gravity is added to the vertical velocity every tick
	Gravity float64 = 0.75
	// PlayerMaxSpeed caps horizontal speed in either direction
	PlayerMaxSpeed float64 = 8.0

	// GroundDamping is the horizontal velocity kept per tick while grounded
	GroundDamping float64 = 0.5
	// GroundAcceleration is the horizontal input response while grounded
	GroundAcceleration float64 = 4.0
	// AirDamping is the horizontal velocity kept per tick while airborne
	AirDamping float64 = 0.95
	// AirAcceleration is the horizontal input response while airborne
	AirAcceleration float64 = 2.0

	// TickRate is the number of physics ticks per second
	TickRate int64 = 50
)
