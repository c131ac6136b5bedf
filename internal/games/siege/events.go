package siege

// EventKind classifies simulation events.
type EventKind uint8

const (
	EventDeath EventKind = iota + 1
	EventAttack
	EventHarvest
	EventPurchase
	EventUpgrade
	EventWaveStart
	EventWaveEnd
	EventWorldGrow
	EventSpawnRefused
	EventGameOver
)

var eventNames = map[EventKind]string{
	EventDeath:        "death",
	EventAttack:       "attack",
	EventHarvest:      "harvest",
	EventPurchase:     "purchase",
	EventUpgrade:      "upgrade",
	EventWaveStart:    "wave_start",
	EventWaveEnd:      "wave_end",
	EventWorldGrow:    "world_grow",
	EventSpawnRefused: "spawn_refused",
	EventGameOver:     "game_over",
}

// String returns the snake_case event name.
func (k EventKind) String() string {
	if name, ok := eventNames[k]; ok {
		return name
	}
	return "unknown"
}

// Event is emitted synchronously from inside World.Step and the player
// operations. Fields that do not apply to a kind are zero.
type Event struct {
	Kind EventKind
	Tick uint64
	// Time is simulated seconds since the last restart.
	Time float64

	Entity EntityID
	Type   Type
	Player bool

	// Wave is the current wave number.
	Wave int
	// Strength is the wave total on start and the remainder on end.
	Strength float64
	// Cleared is set on wave end when every strength point was killed.
	Cleared bool
	// Amount is damage dealt, wood harvested, currency spent or, on wave
	// end, the wave's duration in seconds.
	Amount float64
	// Money is the player's balance after the event.
	Money int
	// Kills is the run's monster kill count after the event.
	Kills int
	// WaveKills counts monsters killed during the wave that just ended.
	WaveKills int
	// Width and Height are the world size after growth.
	Width, Height float64
}

// Listener observes simulation events. Implementations must not call back
// into the World.
type Listener interface {
	OnEvent(ev Event)
}

// ListenerFunc adapts a function to Listener.
type ListenerFunc func(ev Event)

// OnEvent calls f(ev).
func (f ListenerFunc) OnEvent(ev Event) { f(ev) }

type multiListener []Listener

func (m multiListener) OnEvent(ev Event) {
	for _, l := range m {
		l.OnEvent(ev)
	}
}

// Listeners fans events out to every non-nil listener in order.
func Listeners(ls ...Listener) Listener {
	out := make(multiListener, 0, len(ls))
	for _, l := range ls {
		if l != nil {
			out = append(out, l)
		}
	}
	return out
}
