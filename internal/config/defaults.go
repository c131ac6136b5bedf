package config

import (
	_ "embed"
)

//go:embed defaults/siege.yaml
var defaultSiegeYAML []byte

// DefaultSiegeConfig returns the built-in configuration. It mirrors
// defaults/siege.yaml and is used when the embedded file cannot be parsed.
func DefaultSiegeConfig() SiegeConfig {
	return SiegeConfig{
		World: WorldConfig{
			Width:            800,
			Height:           600,
			GrowthMultiplier: 1.3,
			GrowthEveryWaves: 3,
		},
		Engine: EngineConfig{
			SimpleCollisions: false,
			MaxSpeed:         400,
			CellSize:         64,
			MaxStepSeconds:   0.1,
		},
		Director: DirectorConfig{
			TricklePeriod:    5,
			FirstWaveDelay:   30,
			WaveDuration:     20,
			CooldownBonus:    5,
			CooldownCap:      20,
			StrengthExponent: 1.1,
			StrengthPerWave:  5,
			StrengthBase:     2,
			MonsterCap:       250,
		},
		Monsters: MonsterTable{
			Slime: MonsterStats{
				CombatStats: CombatStats{Size: 24, Speed: 22, HitPoints: 10, Damage: 2, AttackDelay: 1.1, AttackArea: 10, Awareness: 32},
				Strength:    1,
			},
			FireSlime: MonsterStats{
				CombatStats: CombatStats{Size: 32, Speed: 30, HitPoints: 8, Damage: 2, AttackDelay: 0.25, AttackArea: 10, Awareness: 80},
				Strength:    10,
			},
			SlimeMother: MonsterStats{
				CombatStats:   CombatStats{Size: 48, Speed: 15, HitPoints: 200, Damage: 10, AttackDelay: 1.5, AttackArea: 10, Awareness: 128},
				Strength:      50,
				BroodInterval: 6,
			},
		},
		Units: UnitTable{
			Worker: UnitStats{
				CombatStats: CombatStats{Size: 32, Speed: 40, HitPoints: 4, Damage: 1.5, AttackDelay: 0.9, AttackArea: 24, Awareness: 42},
				Harvest:     1,
				Cost:        50,
			},
			Swordsman: UnitStats{
				CombatStats: CombatStats{Size: 48, Speed: 30, HitPoints: 40, Damage: 15, AttackDelay: 1.0, AttackArea: 32, Awareness: 128},
				Cost:        100,
			},
		},
		Castle: CastleConfig{
			Position:       Point{X: 0, Y: 50},
			Width:          128,
			Height:         64,
			VisualHeight:   256,
			HitPoints:      100,
			AttackRange:    350,
			BaseCooldown:   2,
			CooldownScale:  5,
			BaseDamage:     4,
			UpgradeHeal:    5,
			ClearingWidth:  250,
			ClearingHeight: 200,
		},
		Effects: EffectsConfig{
			HitSize:      10,
			HitTTL:       0.5,
			MissileSize:  8,
			MissileSpeed: 100,
			MissileTTL:   3,
		},
		Trees: TreeConfig{
			Size:           16,
			VisualWidth:    32,
			VisualHeight:   64,
			Wood:           5,
			Grid:           16,
			InitialDensity: 0.05,
			GrowthDensity:  0.03,
			NoiseScale:     0.02,
			NoiseWeight:    0.5,
		},
		Costs: CostConfig{
			TowerSpeed:  50,
			TowerDamage: 75,
		},
		Player: PlayerConfig{
			Money: 500,
			Lives: 100,
		},
	}
}

// DefaultSiegeYAML returns the embedded default YAML document.
func DefaultSiegeYAML() []byte {
	return defaultSiegeYAML
}
