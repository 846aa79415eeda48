package core

// Action represents a semantic game action, abstracted from physical key presses.
// This allows games to work with high-level intents rather than raw input.
type Action int

const (
	ActionNone      Action = iota
	ActionLeft             // A, Left arrow - move left
	ActionRight            // D, Right arrow - move right
	ActionJump             // W, Up arrow - jump
	ActionFire             // Space, left mouse button - trigger held
	ActionPause            // P, Escape - pause/unpause (opens the shop)
	ActionBuyHealth        // 0 while paused - buy a health pack
	ActionRestart          // R key - restart game after game over
	ActionQuit             // Q, Ctrl+C - exit game/session
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionLeft:
		return "Left"
	case ActionRight:
		return "Right"
	case ActionJump:
		return "Jump"
	case ActionFire:
		return "Fire"
	case ActionPause:
		return "Pause"
	case ActionBuyHealth:
		return "BuyHealth"
	case ActionRestart:
		return "Restart"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// InputFrame represents the input state for a single simulation tick.
// Held intents (movement, fire) are set every tick they are held; discrete
// commands (pause, slots, purchases) are set only on the tick they were issued.
type InputFrame struct {
	// Actions maps action types to whether they were triggered this frame.
	Actions map[Action]bool

	// Aim is the aim target in screen cells. Only meaningful when HasAim is set.
	AimCol, AimRow int
	HasAim         bool

	// WeaponSlot selects a weapon (1-based); zero means no switch this frame.
	WeaponSlot int
	// ArmorSlot buys an armor tier (1-based); zero means no purchase this frame.
	ArmorSlot int
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

// SetAim records the aim target cell.
func (f *InputFrame) SetAim(col, row int) {
	f.AimCol = col
	f.AimRow = row
	f.HasAim = true
}

// Clear resets the frame for the next tick. The aim point is sticky and survives.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
	f.WeaponSlot = 0
	f.ArmorSlot = 0
}

// Clone creates a copy of this input frame.
func (f InputFrame) Clone() InputFrame {
	clone := f
	clone.Actions = make(map[Action]bool, len(f.Actions))
	for k, v := range f.Actions {
		clone.Actions[k] = v
	}
	return clone
}
