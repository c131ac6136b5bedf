package config

import (
	"fmt"
	"strings"
)

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// presetScaling describes how a preset bends the base configuration.
type presetScaling struct {
	monsterHP    float64 // multiplier on every monster's hit points
	wavePerLevel float64 // multiplier on strength_per_wave
	trickle      float64 // multiplier on trickle_period
	money        int     // starting currency
}

var presets = map[DifficultyPreset]presetScaling{
	DifficultyEasy:   {monsterHP: 0.75, wavePerLevel: 0.8, trickle: 1.4, money: 750},
	DifficultyNormal: {monsterHP: 1, wavePerLevel: 1, trickle: 1, money: 0},
	DifficultyHard:   {monsterHP: 1.25, wavePerLevel: 1.3, trickle: 0.7, money: 350},
}

// ParsePreset converts a CLI string into a preset. The empty string maps to normal.
func ParsePreset(s string) (DifficultyPreset, error) {
	switch p := DifficultyPreset(strings.ToLower(strings.TrimSpace(s))); p {
	case "":
		return DifficultyNormal, nil
	case DifficultyEasy, DifficultyNormal, DifficultyHard:
		return p, nil
	default:
		return "", fmt.Errorf("config: unknown difficulty %q (want easy, normal or hard)", s)
	}
}

// Presets lists the supported presets from easiest to hardest.
func Presets() []DifficultyPreset {
	return []DifficultyPreset{DifficultyEasy, DifficultyNormal, DifficultyHard}
}

// ApplySiegePreset modifies cfg according to preset. Normal leaves it untouched.
func ApplySiegePreset(cfg *SiegeConfig, preset DifficultyPreset) {
	s, ok := presets[preset]
	if !ok {
		return
	}
	cfg.Monsters.Slime.HitPoints *= s.monsterHP
	cfg.Monsters.FireSlime.HitPoints *= s.monsterHP
	cfg.Monsters.SlimeMother.HitPoints *= s.monsterHP
	cfg.Director.StrengthPerWave *= s.wavePerLevel
	cfg.Director.TricklePeriod *= s.trickle
	if s.money > 0 {
		cfg.Player.Money = s.money
	}
}
