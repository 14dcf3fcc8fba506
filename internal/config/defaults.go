package config

import (
	_ "embed"
)

//go:embed defaults/island.yaml
var defaultIslandYAML []byte

// DefaultIslandConfig returns the stock island tuning, mirroring the
// embedded defaults/island.yaml.
func DefaultIslandConfig() IslandConfig {
	return IslandConfig{
		Geometry: IslandGeometry{
			LandRX:         30,
			LandRY:         24,
			ShoreInset:     2.0,
			PondX:          -9,
			PondY:          -6.5,
			PondRX:         6,
			PondRY:         4.5,
			StructureX:     0,
			StructureY:     8,
			StructureHalfW: 4.2,
			StructureHalfH: 3.6,
			StructureBlock: 2.0,
			RoomHalf:       4.0,
			IndoorAnchorX:  0,
			IndoorAnchorY:  1.5,
			ExitAnchorX:    0,
			ExitAnchorY:    3.4,
			StartAnchorX:   0,
			StartAnchorY:   14,
		},
		Population: IslandPopulation{
			Trees:        44,
			Rocks:        10,
			Walkers:      3,
			FruitPerKind: 4,
		},
		Radii: IslandRadii{
			Tree:   0.55,
			Rock:   0.7,
			Player: 0.35,
			Pickup: 0.6,
		},
		Interaction: IslandInteraction{
			ActivateRadius:  2.3,
			StructureRadius: 2.9,
			FreezeDuration:  2.8,
		},
		Hazard: IslandHazard{
			InstantChance: 0.05,
			PursuitChance: 0.20,
			ArmDelay:      2.0,
			CatchRadius:   0.75,
		},
		Movement: IslandMovement{
			PlayerSpeed: 6.0,
			DeadZone:    0.15,
			MaxStep:     0.1,
		},
		Wander: IslandWander{
			SpeedMin:     1.6,
			SpeedMax:     2.6,
			ArriveRadius: 0.5,
			IdleMin:      1.0,
			IdleMax:      3.0,
			RepelRadius:  3.0,
			RepelGain:    2.0,
		},
		Generation: IslandGeneration{
			SampleAttempts: 220,
			MinTrees:       12,
		},
	}
}

// GetDefaultYAML returns the embedded default YAML.
func GetDefaultYAML() []byte {
	return defaultIslandYAML
}
