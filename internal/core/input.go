package core

// Action represents a semantic game action, abstracted from physical key presses.
// This allows games to work with high-level intents rather than raw input.
type Action int

const (
	ActionNone           Action = iota
	ActionUp                    // Up arrow, K - move selection up
	ActionDown                  // Down arrow, J - move selection down
	ActionConfirm               // Enter - confirm selection in menu
	ActionBack                  // B, Escape - go back to menu
	ActionRestart               // N - start a new run
	ActionQuit                  // Ctrl+C - exit game/session
	ActionPause                 // Space, P - pause/unpause game
	ActionBuyWorker             // Q - buy a worker
	ActionBuySwordsman          // W - buy a swordsman
	ActionUpgradeSpeed          // E - upgrade tower speed
	ActionUpgradeDamage         // R - upgrade tower damage
	ActionToggleDebug           // D - toggle debug overlay
	ActionSpeed1                // 1 - normal game speed
	ActionSpeed2                // 2 - double game speed
	ActionSpeed3                // 3 - triple game speed
	ActionSpeed4                // 4 - quadruple game speed
)

var actionNames = map[Action]string{
	ActionNone:          "None",
	ActionUp:            "Up",
	ActionDown:          "Down",
	ActionConfirm:       "Confirm",
	ActionBack:          "Back",
	ActionRestart:       "Restart",
	ActionQuit:          "Quit",
	ActionPause:         "Pause",
	ActionBuyWorker:     "BuyWorker",
	ActionBuySwordsman:  "BuySwordsman",
	ActionUpgradeSpeed:  "UpgradeSpeed",
	ActionUpgradeDamage: "UpgradeDamage",
	ActionToggleDebug:   "ToggleDebug",
	ActionSpeed1:        "Speed1",
	ActionSpeed2:        "Speed2",
	ActionSpeed3:        "Speed3",
	ActionSpeed4:        "Speed4",
}

// String returns a human-readable name for the action.
func (a Action) String() string {
	if name, ok := actionNames[a]; ok {
		return name
	}
	return "Unknown"
}

// SpeedActions lists the game speed actions, slowest first.
var SpeedActions = [...]Action{ActionSpeed1, ActionSpeed2, ActionSpeed3, ActionSpeed4}

// InputFrame represents the input state for a single player during one simulation tick.
// It contains all actions that were triggered during this frame.
type InputFrame struct {
	// Actions maps action types to whether they were triggered this frame.
	// Using a map allows checking multiple actions without order dependency.
	Actions map[Action]bool
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Actions: make(map[Action]bool),
	}
}

// Set marks an action as triggered for this frame.
func (f *InputFrame) Set(a Action) {
	if f.Actions == nil {
		f.Actions = make(map[Action]bool)
	}
	f.Actions[a] = true
}

// Has returns true if the given action was triggered this frame.
func (f InputFrame) Has(a Action) bool {
	if f.Actions == nil {
		return false
	}
	return f.Actions[a]
}

// Clear resets all actions for the next frame.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
}

// Clone creates a copy of this input frame.
func (f InputFrame) Clone() InputFrame {
	clone := NewInputFrame()
	for k, v := range f.Actions {
		clone.Actions[k] = v
	}
	return clone
}
