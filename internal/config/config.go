// Package config provides YAML-based configuration loading for the island
// platform.
package config

import (
	"github.com/vovakirdan/tui-island/internal/core"
	"github.com/vovakirdan/tui-island/internal/island"
)

// IslandConfig contains all simulation tuning for the island game.
type IslandConfig struct {
	Geometry    IslandGeometry    `yaml:"geometry"`
	Population  IslandPopulation  `yaml:"population"`
	Radii       IslandRadii       `yaml:"radii"`
	Interaction IslandInteraction `yaml:"interaction"`
	Hazard      IslandHazard      `yaml:"hazard"`
	Movement    IslandMovement    `yaml:"movement"`
	Wander      IslandWander      `yaml:"wander"`
	Generation  IslandGeneration  `yaml:"generation"`
}

// IslandGeometry defines the island shape in world units.
type IslandGeometry struct {
	LandRX         float64 `yaml:"land_rx"`
	LandRY         float64 `yaml:"land_ry"`
	ShoreInset     float64 `yaml:"shore_inset"`
	PondX          float64 `yaml:"pond_x"`
	PondY          float64 `yaml:"pond_y"`
	PondRX         float64 `yaml:"pond_rx"`
	PondRY         float64 `yaml:"pond_ry"`
	StructureX     float64 `yaml:"structure_x"`
	StructureY     float64 `yaml:"structure_y"`
	StructureHalfW float64 `yaml:"structure_half_w"`
	StructureHalfH float64 `yaml:"structure_half_h"`
	StructureBlock float64 `yaml:"structure_block"`
	RoomHalf       float64 `yaml:"room_half"`
	IndoorAnchorX  float64 `yaml:"indoor_anchor_x"`
	IndoorAnchorY  float64 `yaml:"indoor_anchor_y"`
	ExitAnchorX    float64 `yaml:"exit_anchor_x"`
	ExitAnchorY    float64 `yaml:"exit_anchor_y"`
	StartAnchorX   float64 `yaml:"start_anchor_x"`
	StartAnchorY   float64 `yaml:"start_anchor_y"`
}

// IslandPopulation defines how many of each entity the world carries.
type IslandPopulation struct {
	Trees        int `yaml:"trees"`
	Rocks        int `yaml:"rocks"`
	Walkers      int `yaml:"walkers"`
	FruitPerKind int `yaml:"fruit_per_kind"`
}

// IslandRadii defines the collision and pickup radii.
type IslandRadii struct {
	Tree   float64 `yaml:"tree"`
	Rock   float64 `yaml:"rock"`
	Player float64 `yaml:"player"`
	Pickup float64 `yaml:"pickup"`
}

// IslandInteraction defines activation distances and the dialogue freeze.
type IslandInteraction struct {
	ActivateRadius  float64 `yaml:"activate_radius"`
	StructureRadius float64 `yaml:"structure_radius"`
	FreezeDuration  float64 `yaml:"freeze_duration"`
}

// IslandHazard defines the pursuit hazard tuning.
type IslandHazard struct {
	InstantChance float64 `yaml:"instant_chance"`
	PursuitChance float64 `yaml:"pursuit_chance"`
	ArmDelay      float64 `yaml:"arm_delay"`
	CatchRadius   float64 `yaml:"catch_radius"`
}

// IslandMovement defines player motion parameters.
type IslandMovement struct {
	PlayerSpeed float64 `yaml:"player_speed"`
	DeadZone    float64 `yaml:"dead_zone"`
	MaxStep     float64 `yaml:"max_step"`
}

// IslandWander defines the walker AI tuning.
type IslandWander struct {
	SpeedMin     float64 `yaml:"speed_min"`
	SpeedMax     float64 `yaml:"speed_max"`
	ArriveRadius float64 `yaml:"arrive_radius"`
	IdleMin      float64 `yaml:"idle_min"`
	IdleMax      float64 `yaml:"idle_max"`
	RepelRadius  float64 `yaml:"repel_radius"`
	RepelGain    float64 `yaml:"repel_gain"`
}

// IslandGeneration defines world generation limits.
type IslandGeneration struct {
	SampleAttempts int `yaml:"sample_attempts"`
	MinTrees       int `yaml:"min_trees"`
}

// Params converts the YAML configuration into simulation parameters.
func (c IslandConfig) Params() island.Params {
	return island.Params{
		LandRX:         c.Geometry.LandRX,
		LandRY:         c.Geometry.LandRY,
		ShoreInset:     c.Geometry.ShoreInset,
		PondCenter:     core.V(c.Geometry.PondX, c.Geometry.PondY),
		PondRX:         c.Geometry.PondRX,
		PondRY:         c.Geometry.PondRY,
		StructurePos:   core.V(c.Geometry.StructureX, c.Geometry.StructureY),
		StructureHalfW: c.Geometry.StructureHalfW,
		StructureHalfH: c.Geometry.StructureHalfH,
		StructureBlock: c.Geometry.StructureBlock,
		RoomHalf:       c.Geometry.RoomHalf,
		IndoorAnchor:   core.V(c.Geometry.IndoorAnchorX, c.Geometry.IndoorAnchorY),
		ExitAnchor:     core.V(c.Geometry.ExitAnchorX, c.Geometry.ExitAnchorY),
		StartAnchor:    core.V(c.Geometry.StartAnchorX, c.Geometry.StartAnchorY),

		TreeCount:    c.Population.Trees,
		RockCount:    c.Population.Rocks,
		WalkerCount:  c.Population.Walkers,
		FruitPerKind: c.Population.FruitPerKind,

		TreeRadius:   c.Radii.Tree,
		RockRadius:   c.Radii.Rock,
		PlayerRadius: c.Radii.Player,
		PickupRadius: c.Radii.Pickup,

		ActivateRadius:  c.Interaction.ActivateRadius,
		StructureRadius: c.Interaction.StructureRadius,
		FreezeDuration:  c.Interaction.FreezeDuration,

		InstantHazardChance: c.Hazard.InstantChance,
		HazardChance:        c.Hazard.PursuitChance,
		ArmDelay:            c.Hazard.ArmDelay,
		CatchRadius:         c.Hazard.CatchRadius,

		PlayerSpeed: c.Movement.PlayerSpeed,
		DeadZone:    c.Movement.DeadZone,
		MaxStep:     c.Movement.MaxStep,

		WalkerSpeedMin: c.Wander.SpeedMin,
		WalkerSpeedMax: c.Wander.SpeedMax,
		ArriveRadius:   c.Wander.ArriveRadius,
		IdleMin:        c.Wander.IdleMin,
		IdleMax:        c.Wander.IdleMax,
		RepelRadius:    c.Wander.RepelRadius,
		RepelGain:      c.Wander.RepelGain,

		SampleAttempts: c.Generation.SampleAttempts,
		MinTrees:       c.Generation.MinTrees,
	}
}
