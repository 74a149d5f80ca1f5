// Package prefs persists list-view preferences between runs.
// Preferences are stored in the user config dir as biodex/prefs.toml.
package prefs

import (
	"os"
	"path/filepath"

	toml "github.com/pelletier/go-toml/v2"
)

// Prefs holds the view state worth restoring at startup.
type Prefs struct {
	Kingdom string `toml:"kingdom"` // active kingdom filter, empty = all
	Search  string `toml:"search"`  // last applied search query
}

const prefsFile = "prefs.toml"

func prefsPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	dir = filepath.Join(dir, "biodex")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", err
	}
	return filepath.Join(dir, prefsFile), nil
}

// Load reads preferences, falling back to zero values when the file is
// missing or unreadable. A broken prefs file never blocks startup.
func Load() Prefs {
	var p Prefs
	path, err := prefsPath()
	if err != nil {
		return p
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return p
	}
	if err := toml.Unmarshal(data, &p); err != nil {
		return Prefs{}
	}
	return p
}

// Save writes preferences atomically.
func Save(p Prefs) error {
	path, err := prefsPath()
	if err != nil {
		return err
	}
	data, err := toml.Marshal(p)
	if err != nil {
		return err
	}
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o600); err != nil {
		return err
	}
	return os.Rename(tmp, path)
}
