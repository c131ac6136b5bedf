package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/slime-siege/internal/core"
)

// GameKeyMap defines the key bindings used while a siege is running.
type GameKeyMap struct {
	BuyWorker     key.Binding
	BuySwordsman  key.Binding
	UpgradeSpeed  key.Binding
	UpgradeDamage key.Binding
	Pause         key.Binding
	Speed         key.Binding
	Debug         key.Binding
	Restart       key.Binding
	Screenshot    key.Binding
	Back          key.Binding
	Quit          key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k GameKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.BuyWorker, k.BuySwordsman, k.UpgradeSpeed, k.UpgradeDamage, k.Pause, k.Back}
}

// FullHelp returns key bindings for the full help view.
func (k GameKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.BuyWorker, k.BuySwordsman, k.UpgradeSpeed, k.UpgradeDamage},
		{k.Pause, k.Speed, k.Debug, k.Restart},
		{k.Screenshot, k.Back, k.Quit},
	}
}

// DefaultGameKeyMap returns default key bindings.
func DefaultGameKeyMap() GameKeyMap {
	return GameKeyMap{
		BuyWorker: key.NewBinding(
			key.WithKeys("q"),
			key.WithHelp("q", "buy worker"),
		),
		BuySwordsman: key.NewBinding(
			key.WithKeys("w"),
			key.WithHelp("w", "buy swordsman"),
		),
		UpgradeSpeed: key.NewBinding(
			key.WithKeys("e"),
			key.WithHelp("e", "tower speed"),
		),
		UpgradeDamage: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "tower damage"),
		),
		Pause: key.NewBinding(
			key.WithKeys(" ", "p"),
			key.WithHelp("space/p", "pause"),
		),
		Speed: key.NewBinding(
			key.WithKeys("1", "2", "3", "4"),
			key.WithHelp("1-4", "game speed"),
		),
		Debug: key.NewBinding(
			key.WithKeys("d"),
			key.WithHelp("d", "debug overlay"),
		),
		Restart: key.NewBinding(
			key.WithKeys("n"),
			key.WithHelp("n", "new siege"),
		),
		Screenshot: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("ctrl+s", "screenshot"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc", "b"),
			key.WithHelp("esc/b", "menu"),
		),
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", "quit"),
		),
	}
}

// KeyMapper translates Bubble Tea key messages to game actions.
// This centralizes key bindings and makes them testable.
type KeyMapper struct {
	keys GameKeyMap
}

// NewKeyMapper creates a new key mapper with default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{keys: DefaultGameKeyMap()}
}

// Keys returns the bindings in use.
func (km *KeyMapper) Keys() GameKeyMap {
	return km.keys
}

// MapKey translates a key message to a game action.
// Returns the action (may be ActionNone) and whether it's a quit request.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) (action core.Action, isQuit bool) {
	k := km.keys
	switch {
	case key.Matches(msg, k.Quit):
		return core.ActionQuit, true
	case key.Matches(msg, k.BuyWorker):
		return core.ActionBuyWorker, false
	case key.Matches(msg, k.BuySwordsman):
		return core.ActionBuySwordsman, false
	case key.Matches(msg, k.UpgradeSpeed):
		return core.ActionUpgradeSpeed, false
	case key.Matches(msg, k.UpgradeDamage):
		return core.ActionUpgradeDamage, false
	case key.Matches(msg, k.Pause):
		return core.ActionPause, false
	case key.Matches(msg, k.Speed):
		return core.SpeedActions[msg.String()[0]-'1'], false
	case key.Matches(msg, k.Debug):
		return core.ActionToggleDebug, false
	case key.Matches(msg, k.Restart):
		return core.ActionRestart, false
	case key.Matches(msg, k.Back):
		return core.ActionBack, false
	}
	return core.ActionNone, false
}

// MapKeyToFrame updates an input frame based on a key message.
// Back is left to the caller. Returns true if the key was a quit request.
func (km *KeyMapper) MapKeyToFrame(msg tea.KeyMsg, frame *core.InputFrame) bool {
	action, isQuit := km.MapKey(msg)
	if action != core.ActionNone && action != core.ActionBack {
		frame.Set(action)
	}
	return isQuit
}

// MenuAction represents a menu-specific action derived from input.
type MenuAction int

const (
	MenuActionNone MenuAction = iota
	MenuActionUp
	MenuActionDown
	MenuActionSelect
	MenuActionBack
	MenuActionScoreboard
	MenuActionQuit
)

// MapKeyToMenuAction translates a key to a menu action.
func (km *KeyMapper) MapKeyToMenuAction(msg tea.KeyMsg) MenuAction {
	switch msg.String() {
	case "ctrl+c", "q":
		return MenuActionQuit
	case "w", "up", "k": // vim-style k for up
		return MenuActionUp
	case "s", "down", "j": // vim-style j for down
		return MenuActionDown
	case "enter", " ":
		return MenuActionSelect
	case "tab":
		return MenuActionScoreboard
	case "b", "esc":
		return MenuActionBack
	}
	return MenuActionNone
}
