package keymap

import "testing"

func TestResolve(t *testing.T) {
	r := NewResolver(All)

	tests := []struct {
		key  string
		want Action
	}{
		{"q", ActionQuit},
		{"ctrl+c", ActionQuit},
		{" ", ActionPlayPause},
		{"s", ActionStop},
		{"+", ActionVolumeUp},
		{"=", ActionVolumeUp},
		{"-", ActionVolumeDown},
		{"l", ActionToggleLoop},
		{"unbound", ""},
	}
	for _, tt := range tests {
		if got := r.Resolve(tt.key); got != tt.want {
			t.Errorf("Resolve(%q) = %q, want %q", tt.key, got, tt.want)
		}
	}
}

func TestKeysFor(t *testing.T) {
	r := NewResolver(All)

	keys := r.KeysFor(ActionQuit)
	if len(keys) != 2 {
		t.Fatalf("KeysFor(quit) = %v, want two keys", keys)
	}
	if keys[0] != "q" || keys[1] != "ctrl+c" {
		t.Errorf("KeysFor(quit) = %v, want [q ctrl+c]", keys)
	}
}
