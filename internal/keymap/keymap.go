// Package keymap defines key bindings and action dispatch for the player.
package keymap

// Action represents a user-triggerable action.
type Action string

const (
	ActionQuit        Action = "quit"
	ActionPlayPause   Action = "play_pause"
	ActionStop        Action = "stop"
	ActionVolumeUp    Action = "volume_up"
	ActionVolumeDown  Action = "volume_down"
	ActionToggleLoop  Action = "toggle_loop"
	ActionClearStatus Action = "clear_status"
)

// Binding describes a single key binding.
type Binding struct {
	Keys        []string
	Action      Action
	Description string
}

// All contains the player key bindings.
var All = []Binding{
	{[]string{"q", "ctrl+c"}, ActionQuit, "Quit"},
	{[]string{" "}, ActionPlayPause, "Play/pause"},
	{[]string{"s"}, ActionStop, "Stop"},
	{[]string{"+", "="}, ActionVolumeUp, "Volume up"},
	{[]string{"-", "_"}, ActionVolumeDown, "Volume down"},
	{[]string{"l"}, ActionToggleLoop, "Toggle loop"},
	{[]string{"esc"}, ActionClearStatus, "Clear status message"},
}

// Resolver maps key strings to actions.
type Resolver struct {
	bindings map[string]Action
	byAction map[Action][]string
}

// NewResolver creates a resolver from bindings.
func NewResolver(bindings []Binding) *Resolver {
	r := &Resolver{
		bindings: make(map[string]Action),
		byAction: make(map[Action][]string),
	}
	for _, b := range bindings {
		for _, key := range b.Keys {
			r.bindings[key] = b.Action
		}
		r.byAction[b.Action] = append(r.byAction[b.Action], b.Keys...)
	}
	return r
}

// Resolve returns the action for a key, or empty string if not bound.
func (r *Resolver) Resolve(key string) Action {
	return r.bindings[key]
}

// KeysFor returns the keys bound to an action.
func (r *Resolver) KeysFor(action Action) []string {
	return r.byAction[action]
}
