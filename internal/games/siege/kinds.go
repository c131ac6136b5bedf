package siege

// Kind is the closed set of entity variants.
type Kind uint8

const (
	KindPlayerUnit Kind = iota + 1
	KindMonster
	KindBuilding
	KindResource
	KindEffect
)

// String returns a human-readable kind name.
func (k Kind) String() string {
	switch k {
	case KindPlayerUnit:
		return "unit"
	case KindMonster:
		return "monster"
	case KindBuilding:
		return "building"
	case KindResource:
		return "resource"
	case KindEffect:
		return "effect"
	default:
		return "unknown"
	}
}

// Type names a concrete entity within its kind.
type Type string

const (
	TypeSlime       Type = "slime"
	TypeFireSlime   Type = "fire_slime"
	TypeSlimeMother Type = "slime_mother"
	TypeWorker      Type = "worker"
	TypeSwordsman   Type = "swordsman"
	TypeCastle      Type = "castle"
	TypeTree        Type = "tree"
	TypeHit         Type = "hit"
	TypeMissile     Type = "missile"
)

// behavior is the per-kind row of the behavior table.
type behavior struct {
	dynamic    bool // proxy is integrated by the engine
	sensor     bool // proxy never pushes other bodies
	combatant  bool // scans, attacks and can be killed by damage
	attackable bool // valid melee/missile target for the other faction
	bounceable bool // combatants reverse heading on contact
}

var behaviors = map[Kind]behavior{
	KindPlayerUnit: {dynamic: true, combatant: true, attackable: true},
	KindMonster:    {dynamic: true, combatant: true, attackable: true},
	KindBuilding:   {attackable: true, bounceable: true},
	KindResource:   {bounceable: true},
	KindEffect:     {dynamic: true, sensor: true},
}

func (k Kind) behavior() behavior {
	return behaviors[k]
}

// canAttack is the faction-asymmetric targeting predicate. Player units and
// buildings target monsters; monsters target player units and buildings.
// Buildings only ever target monsters.
func canAttack(attacker, target *Entity) bool {
	if !target.Alive || target == attacker {
		return false
	}
	if !target.Kind.behavior().attackable || attacker.Player == target.Player {
		return false
	}
	if attacker.Kind == KindBuilding {
		return target.Kind == KindMonster
	}
	return true
}

// bouncesOff reports whether a combatant reverses heading when overlapping other.
func bouncesOff(other *Entity) bool {
	return other.Alive && other.Kind.behavior().bounceable
}
