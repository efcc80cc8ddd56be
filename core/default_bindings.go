package core

import (
	"errors"
	"fmt"
	"maps"
	"slices"
	"strings"
)

var ErrUnknownAction = errors.New("unknown key action")

const (
	ScopePhone      = "screen:phone"
	ScopePhoneReady = "screen:phone:ready"
	ScopeCode       = "screen:code"
	ScopeSuccess    = "screen:success"
)

func DefaultKeyBindings() []KeyBinding {
	return []KeyBinding{
		{Keys: []string{"enter"}, Action: ActionSubmit, Description: "submit", Scopes: []string{ScopePhoneReady}},
		{Keys: []string{"esc", "ctrl+c"}, Action: ActionQuit, Description: "quit", Scopes: []string{"*"}},
		{Keys: []string{"q"}, Action: ActionQuit, Description: "quit", Scopes: []string{ScopeSuccess}},
	}
}

func DefaultKeybindingsByAction(bindings []KeyBinding) map[string][]string {
	out := make(map[string][]string, len(bindings))
	for _, b := range bindings {
		if strings.TrimSpace(b.Action) == "" || len(b.Keys) == 0 {
			continue
		}
		if _, exists := out[b.Action]; exists {
			continue
		}
		out[b.Action] = append([]string(nil), b.Keys...)
	}
	return out
}

// ApplyActionKeybindings replaces the keys of every binding whose action appears in
// actionKeys. Unknown actions are ignored.
func ApplyActionKeybindings(bindings []KeyBinding, actionKeys map[string][]string) []KeyBinding {
	out := make([]KeyBinding, 0, len(bindings))
	for _, b := range bindings {
		next := KeyBinding{
			Keys:        append([]string(nil), b.Keys...),
			Action:      b.Action,
			Description: b.Description,
			Scopes:      append([]string(nil), b.Scopes...),
		}
		if keys, ok := actionKeys[b.Action]; ok && len(keys) > 0 {
			next.Keys = append([]string(nil), keys...)
		}
		out = append(out, next)
	}
	return out
}

// ValidateActionKeybindings rejects overrides for actions none of bindings use.
func ValidateActionKeybindings(bindings []KeyBinding, actionKeys map[string][]string) error {
	known := DefaultKeybindingsByAction(bindings)
	for _, action := range slices.Sorted(maps.Keys(actionKeys)) {
		if _, ok := known[action]; !ok {
			return fmt.Errorf("%w: %q", ErrUnknownAction, action)
		}
	}
	return nil
}
