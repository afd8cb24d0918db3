package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-riverraid/internal/core"
)

// GameKeyMap holds the in-game key bindings.
type GameKeyMap struct {
	Forward    key.Binding
	Left       key.Binding
	Right      key.Binding
	Fire       key.Binding
	Pause      key.Binding
	Restart    key.Binding
	Back       key.Binding
	Quit       key.Binding
	Screenshot key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k GameKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Forward, k.Left, k.Right, k.Fire, k.Pause, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k GameKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Forward, k.Left, k.Right, k.Fire},
		{k.Pause, k.Restart, k.Back, k.Screenshot, k.Quit},
	}
}

// DefaultGameKeyMap returns the default in-game bindings.
func DefaultGameKeyMap() GameKeyMap {
	return GameKeyMap{
		Forward: key.NewBinding(
			key.WithKeys("w", "up"),
			key.WithHelp("w/up", "throttle"),
		),
		Left: key.NewBinding(
			key.WithKeys("a", "left"),
			key.WithHelp("a/left", "left"),
		),
		Right: key.NewBinding(
			key.WithKeys("d", "right"),
			key.WithHelp("d/right", "right"),
		),
		Fire: key.NewBinding(
			key.WithKeys(" "),
			key.WithHelp("space", "fire"),
		),
		Pause: key.NewBinding(
			key.WithKeys("p"),
			key.WithHelp("p", "pause"),
		),
		Restart: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "restart"),
		),
		Back: key.NewBinding(
			key.WithKeys("b", "esc"),
			key.WithHelp("esc/b", "menu"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
		Screenshot: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("ctrl+s", "screenshot"),
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

// Keys returns the bindings used by the mapper.
func (km *KeyMapper) Keys() GameKeyMap {
	return km.keys
}

// MapKey translates a key message to an action.
// Returns the action (may be ActionNone) and whether it's a quit request.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) (action core.Action, isQuit bool) {
	k := km.keys
	switch {
	case key.Matches(msg, k.Quit):
		return core.ActionQuit, true
	case key.Matches(msg, k.Forward):
		return core.ActionForward, false
	case key.Matches(msg, k.Left):
		return core.ActionLeft, false
	case key.Matches(msg, k.Right):
		return core.ActionRight, false
	case key.Matches(msg, k.Fire):
		return core.ActionFire, false
	case key.Matches(msg, k.Pause):
		return core.ActionPause, false
	case key.Matches(msg, k.Restart):
		return core.ActionRestart, false
	case key.Matches(msg, k.Back):
		return core.ActionBack, false
	case msg.Type == tea.KeyEnter:
		return core.ActionConfirm, false
	}
	return core.ActionNone, false
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
	case "b", "esc":
		return MenuActionBack
	case "tab":
		return MenuActionScoreboard
	}

	return MenuActionNone
}

// Terminals report a key press and then auto-repeat, never a release.
// A held control stays down until its repeats stop arriving.
const (
	DefaultInitialHold = 500 * time.Millisecond // Covers the delay before auto-repeat starts
	DefaultRepeatHold  = 120 * time.Millisecond // Covers the gap between repeats
)

// HoldTracker turns key presses into held controls.
type HoldTracker struct {
	initial  time.Duration
	repeat   time.Duration
	now      func() time.Time
	deadline map[core.Action]time.Time
}

// NewHoldTracker creates a tracker using the default hold windows and the
// wall clock.
func NewHoldTracker() *HoldTracker {
	return NewHoldTrackerWith(DefaultInitialHold, DefaultRepeatHold, time.Now)
}

// NewHoldTrackerWith creates a tracker with custom windows and clock.
func NewHoldTrackerWith(initial, repeat time.Duration, now func() time.Time) *HoldTracker {
	return &HoldTracker{
		initial:  initial,
		repeat:   repeat,
		now:      now,
		deadline: make(map[core.Action]time.Time),
	}
}

// Press records a press or auto-repeat of a held control. Other actions
// are ignored.
func (h *HoldTracker) Press(a core.Action) {
	if !a.Held() {
		return
	}
	now := h.now()
	next := now.Add(h.initial)
	if h.down(a, now) {
		next = now.Add(h.repeat)
	}
	if next.After(h.deadline[a]) {
		h.deadline[a] = next
	}
}

// Release drops a control immediately.
func (h *HoldTracker) Release(a core.Action) {
	delete(h.deadline, a)
}

// Reset releases every control.
func (h *HoldTracker) Reset() {
	clear(h.deadline)
}

// Held reports whether a is currently down.
func (h *HoldTracker) Held(a core.Action) bool {
	return h.down(a, h.now())
}

func (h *HoldTracker) down(a core.Action, now time.Time) bool {
	d, ok := h.deadline[a]
	return ok && now.Before(d)
}

// Sample sets every held control on frame and forgets expired ones.
func (h *HoldTracker) Sample(frame *core.InputFrame) {
	now := h.now()
	for a, d := range h.deadline {
		if now.Before(d) {
			frame.Set(a)
		} else {
			delete(h.deadline, a)
		}
	}
}
