package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/BurntSushi/toml"
)

type keysFile struct {
	Keys map[string][]string `toml:"keys"`
}

// LoadKeybindings reads action -> keys overrides, e.g.
//
//	[keys]
//	submit = ["enter", "ctrl+s"]
//
// A missing file yields no overrides.
func LoadKeybindings(path string) (map[string][]string, error) {
	if strings.TrimSpace(path) == "" {
		return nil, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("read keybindings: %w", err)
	}
	return ParseKeybindings(data)
}

func ParseKeybindings(data []byte) (map[string][]string, error) {
	var f keysFile
	if _, err := toml.Decode(string(data), &f); err != nil {
		return nil, fmt.Errorf("parse keybindings: %w", err)
	}
	out := make(map[string][]string, len(f.Keys))
	for action, keys := range f.Keys {
		action = strings.ToLower(strings.TrimSpace(action))
		if action == "" {
			continue
		}
		clean := make([]string, 0, len(keys))
		for _, k := range keys {
			if k = strings.TrimSpace(k); k != "" {
				clean = append(clean, k)
			}
		}
		if len(clean) == 0 {
			return nil, fmt.Errorf("parse keybindings: action %q has no keys", action)
		}
		out[action] = clean
	}
	return out, nil
}
