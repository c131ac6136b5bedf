// Package config provides YAML-based configuration for the siege simulation:
// world size, engine tuning, director pacing, per-kind stats and costs.
package config

import "fmt"

// SiegeConfig contains every tunable of the simulation.
type SiegeConfig struct {
	World    WorldConfig    `yaml:"world"`
	Engine   EngineConfig   `yaml:"engine"`
	Director DirectorConfig `yaml:"director"`
	Monsters MonsterTable   `yaml:"monsters"`
	Units    UnitTable      `yaml:"units"`
	Castle   CastleConfig   `yaml:"castle"`
	Effects  EffectsConfig  `yaml:"effects"`
	Trees    TreeConfig     `yaml:"trees"`
	Costs    CostConfig     `yaml:"costs"`
	Player   PlayerConfig   `yaml:"player"`
}

// WorldConfig defines the initial world rect and how it grows.
type WorldConfig struct {
	Width            float64 `yaml:"width"`
	Height           float64 `yaml:"height"`
	GrowthMultiplier float64 `yaml:"growth_multiplier"`
	GrowthEveryWaves int     `yaml:"growth_every_waves"`
}

// EngineConfig tunes the collision engine and the step clamp.
type EngineConfig struct {
	SimpleCollisions bool    `yaml:"simple_collisions"`
	MaxSpeed         float64 `yaml:"max_speed"`
	CellSize         float64 `yaml:"cell_size"`        // 0 = pairwise scan
	MaxStepSeconds   float64 `yaml:"max_step_seconds"` // per-step dt ceiling
}

// DirectorConfig paces trickle spawns and waves.
// Wave strength is floor((wave+1)^StrengthExponent + wave*StrengthPerWave + StrengthBase).
type DirectorConfig struct {
	TricklePeriod    float64 `yaml:"trickle_period"`
	FirstWaveDelay   float64 `yaml:"first_wave_delay"`
	WaveDuration     float64 `yaml:"wave_duration"`
	CooldownBonus    float64 `yaml:"cooldown_bonus"`
	CooldownCap      float64 `yaml:"cooldown_cap"`
	StrengthExponent float64 `yaml:"strength_exponent"`
	StrengthPerWave  float64 `yaml:"strength_per_wave"`
	StrengthBase     float64 `yaml:"strength_base"`
	MonsterCap       int     `yaml:"monster_cap"`
}

// CombatStats is the stat block shared by monsters and player units.
type CombatStats struct {
	Size        float64 `yaml:"size"`
	Speed       float64 `yaml:"speed"`
	HitPoints   float64 `yaml:"hit_points"`
	Damage      float64 `yaml:"damage"`
	AttackDelay float64 `yaml:"attack_delay"`
	AttackArea  float64 `yaml:"attack_area"`
	Awareness   float64 `yaml:"awareness"`
}

// MonsterStats describes one monster tier.
type MonsterStats struct {
	CombatStats   `yaml:",inline"`
	Strength      float64 `yaml:"strength"`
	BroodInterval float64 `yaml:"brood_interval"` // 0 = never spawns offspring
}

// MonsterTable lists the monster tiers, weakest first.
type MonsterTable struct {
	Slime       MonsterStats `yaml:"slime"`
	FireSlime   MonsterStats `yaml:"fire_slime"`
	SlimeMother MonsterStats `yaml:"slime_mother"`
}

// UnitStats describes a purchasable player unit.
type UnitStats struct {
	CombatStats `yaml:",inline"`
	Harvest     int `yaml:"harvest"`
	Cost        int `yaml:"cost"`
}

// UnitTable lists the purchasable units.
type UnitTable struct {
	Worker    UnitStats `yaml:"worker"`
	Swordsman UnitStats `yaml:"swordsman"`
}

// Point is a 2D position in world units.
type Point struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

// CastleConfig defines the core building.
// Cooldown is BaseCooldown*CooldownScale/(CooldownScale+speed level).
type CastleConfig struct {
	Position       Point   `yaml:"position"`
	Width          float64 `yaml:"width"`
	Height         float64 `yaml:"height"`
	VisualHeight   float64 `yaml:"visual_height"`
	HitPoints      float64 `yaml:"hit_points"`
	AttackRange    float64 `yaml:"attack_range"`
	BaseCooldown   float64 `yaml:"base_cooldown"`
	CooldownScale  float64 `yaml:"cooldown_scale"`
	BaseDamage     float64 `yaml:"base_damage"`
	UpgradeHeal    float64 `yaml:"upgrade_heal"`
	ClearingWidth  float64 `yaml:"clearing_width"`
	ClearingHeight float64 `yaml:"clearing_height"`
}

// EffectsConfig sizes melee hits and missiles.
type EffectsConfig struct {
	HitSize      float64 `yaml:"hit_size"`
	HitTTL       float64 `yaml:"hit_ttl"`
	MissileSize  float64 `yaml:"missile_size"`
	MissileSpeed float64 `yaml:"missile_speed"`
	MissileTTL   float64 `yaml:"missile_ttl"`
}

// TreeConfig controls scenery placement. Placement probability per grid cell
// is density modulated by a perlin mask: NoiseWeight 0 gives uniform
// scatter, 1 gives fully clustered groves.
type TreeConfig struct {
	Size           float64 `yaml:"size"`
	VisualWidth    float64 `yaml:"visual_width"`
	VisualHeight   float64 `yaml:"visual_height"`
	Wood           int     `yaml:"wood"`
	Grid           float64 `yaml:"grid"`
	InitialDensity float64 `yaml:"initial_density"`
	GrowthDensity  float64 `yaml:"growth_density"`
	NoiseScale     float64 `yaml:"noise_scale"`
	NoiseWeight    float64 `yaml:"noise_weight"`
}

// CostConfig holds upgrade base costs. The price of the next level is
// base * current level.
type CostConfig struct {
	TowerSpeed  int `yaml:"tower_speed"`
	TowerDamage int `yaml:"tower_damage"`
}

// PlayerConfig holds the starting economy.
type PlayerConfig struct {
	Money int `yaml:"money"`
	Lives int `yaml:"lives"`
}

// Validate reports the first invalid field.
func (c SiegeConfig) Validate() error {
	switch {
	case c.World.Width <= 0 || c.World.Height <= 0:
		return fmt.Errorf("config: world size must be positive, got %vx%v", c.World.Width, c.World.Height)
	case c.World.GrowthMultiplier < 1:
		return fmt.Errorf("config: growth_multiplier must be >= 1, got %v", c.World.GrowthMultiplier)
	case c.Engine.MaxStepSeconds <= 0:
		return fmt.Errorf("config: max_step_seconds must be positive, got %v", c.Engine.MaxStepSeconds)
	case c.Engine.CellSize < 0:
		return fmt.Errorf("config: cell_size must not be negative, got %v", c.Engine.CellSize)
	case c.Director.TricklePeriod <= 0:
		return fmt.Errorf("config: trickle_period must be positive, got %v", c.Director.TricklePeriod)
	case c.Castle.CooldownScale <= 0:
		return fmt.Errorf("config: castle cooldown_scale must be positive, got %v", c.Castle.CooldownScale)
	case c.Trees.Grid <= 0:
		return fmt.Errorf("config: trees grid must be positive, got %v", c.Trees.Grid)
	case c.Trees.GrowthDensity > c.Trees.InitialDensity:
		return fmt.Errorf("config: trees growth_density must not exceed initial_density, got %v > %v",
			c.Trees.GrowthDensity, c.Trees.InitialDensity)
	}

	monsters := map[string]MonsterStats{
		"slime":        c.Monsters.Slime,
		"fire_slime":   c.Monsters.FireSlime,
		"slime_mother": c.Monsters.SlimeMother,
	}
	for name, m := range monsters {
		if err := m.validate(); err != nil {
			return fmt.Errorf("config: monster %s: %w", name, err)
		}
		if m.Strength <= 0 {
			return fmt.Errorf("config: monster %s: strength must be positive", name)
		}
	}

	units := map[string]UnitStats{
		"worker":    c.Units.Worker,
		"swordsman": c.Units.Swordsman,
	}
	for name, u := range units {
		if err := u.validate(); err != nil {
			return fmt.Errorf("config: unit %s: %w", name, err)
		}
		if u.Cost < 0 {
			return fmt.Errorf("config: unit %s: cost must not be negative", name)
		}
	}
	return nil
}

func (s CombatStats) validate() error {
	for name, v := range map[string]float64{
		"size":         s.Size,
		"speed":        s.Speed,
		"hit_points":   s.HitPoints,
		"damage":       s.Damage,
		"attack_delay": s.AttackDelay,
		"awareness":    s.Awareness,
	} {
		if v < 0 {
			return fmt.Errorf("%s must not be negative, got %v", name, v)
		}
	}
	return nil
}
