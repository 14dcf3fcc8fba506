// Package island implements the simulation core of the island exploration
// game: deterministic world generation, one-shot tree interactions, the
// pursuit hazard state machine, movement and collision, walker AI, and the
// outdoor/indoor stage switch. The package contains pure logic with no
// external dependencies so it can be driven headless by tests and by the
// platform layer alike.
package island

import "github.com/vovakirdan/tui-island/internal/core"

// Params holds every tunable of the simulation. Values are world units
// (roughly meters) and seconds unless noted.
type Params struct {
	// Geometry
	LandRX, LandRY   float64   // land ellipse radii
	ShoreInset       float64   // shore ellipse is the land ellipse inset by this much
	PondCenter       core.Vec2 // single pond
	PondRX, PondRY   float64
	StructurePos     core.Vec2 // central safe building
	StructureHalfW   float64   // generation exclusion rect half extents
	StructureHalfH   float64
	StructureBlock   float64 // movement keep-out radius around the structure
	RoomHalf         float64 // indoor legal region half extent per axis
	IndoorAnchor     core.Vec2
	ExitAnchor       core.Vec2 // just outside the entrance
	StartAnchor      core.Vec2 // outdoor spawn point for a fresh session

	// Population
	TreeCount   int
	RockCount   int
	WalkerCount int
	FruitPerKind int // trees carrying each fruit kind

	// Radii
	TreeRadius   float64
	RockRadius   float64
	PlayerRadius float64
	PickupRadius float64 // auto-collect distance

	// Interaction
	ActivateRadius  float64 // nearest-entity activation distance
	StructureRadius float64 // structure priority distance, larger than ActivateRadius
	FreezeDuration  float64 // walker freeze after dialogue

	// Hazard
	InstantHazardChance float64 // generation-time eligibility roll per fruitless tree
	HazardChance        float64 // interaction-time pursuit trigger roll
	ArmDelay            float64
	CatchRadius         float64

	// Movement
	PlayerSpeed float64
	DeadZone    float64 // input magnitude below this keeps the old facing
	MaxStep     float64 // dt clamp per Step

	// Wander AI
	WalkerSpeedMin float64
	WalkerSpeedMax float64
	ArriveRadius   float64
	IdleMin        float64
	IdleMax        float64
	RepelRadius    float64 // start avoiding the player inside this distance
	RepelGain      float64 // repulsion weight at zero distance

	// Generation
	SampleAttempts int // rejection sampling cap before the origin fallback
	MinTrees       int // persisted records with fewer trees are discarded
}

// DefaultParams returns the stock island tuning.
func DefaultParams() Params {
	return Params{
		LandRX:         30,
		LandRY:         24,
		ShoreInset:     2.0,
		PondCenter:     core.V(-9, -6.5),
		PondRX:         6,
		PondRY:         4.5,
		StructurePos:   core.V(0, 8),
		StructureHalfW: 4.2,
		StructureHalfH: 3.6,
		StructureBlock: 2.0,
		RoomHalf:       4.0,
		IndoorAnchor:   core.V(0, 1.5),
		ExitAnchor:     core.V(0, 3.4),
		StartAnchor:    core.V(0, 14),

		TreeCount:    44,
		RockCount:    10,
		WalkerCount:  3,
		FruitPerKind: 4,

		TreeRadius:   0.55,
		RockRadius:   0.7,
		PlayerRadius: 0.35,
		PickupRadius: 0.6,

		ActivateRadius:  2.3,
		StructureRadius: 2.9,
		FreezeDuration:  2.8,

		InstantHazardChance: 0.05,
		HazardChance:        0.20,
		ArmDelay:            2.0,
		CatchRadius:         0.75,

		PlayerSpeed: 6.0,
		DeadZone:    0.15,
		MaxStep:     0.1,

		WalkerSpeedMin: 1.6,
		WalkerSpeedMax: 2.6,
		ArriveRadius:   0.5,
		IdleMin:        1.0,
		IdleMax:        3.0,
		RepelRadius:    3.0,
		RepelGain:      2.0,

		SampleAttempts: 220,
		MinTrees:       12,
	}
}
