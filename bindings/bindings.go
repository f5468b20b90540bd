// Package bindings persists named shortcuts in a TOML file, the format
// the settings demo edits and hot-reloads. Each entry maps an action
// name to a shortcut spec such as "Ctrl+Shift+D" or "Middle".
package bindings

import (
	"errors"
	"fmt"
	"os"
	"sort"

	"github.com/pelletier/go-toml/v2"

	"github.com/dshills/keybind/bind"
)

// ErrUnknownBinding is returned when an action name is not defined.
var ErrUnknownBinding = errors.New("unknown binding")

// file is the on-disk shape.
type file struct {
	Bindings map[string]string `toml:"bindings"`
}

// Set is a named collection of shortcuts.
type Set struct {
	byName map[string]*bind.Shortcut
}

// NewSet creates an empty collection.
func NewSet() *Set {
	return &Set{byName: make(map[string]*bind.Shortcut)}
}

// Define adds or replaces a binding and returns its shortcut, which
// stays valid across Save and can be handed to a widget.
func (s *Set) Define(name string, sc bind.Shortcut) *bind.Shortcut {
	p := s.byName[name]
	if p == nil {
		p = new(bind.Shortcut)
		s.byName[name] = p
	}
	*p = sc
	return p
}

// Get returns the shortcut for an action name, or nil when undefined.
// The pointer is live: mutations are picked up by Save.
func (s *Set) Get(name string) *bind.Shortcut {
	return s.byName[name]
}

// Names returns the defined action names, sorted.
func (s *Set) Names() []string {
	names := make([]string, 0, len(s.byName))
	for name := range s.byName {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Len returns the number of defined bindings.
func (s *Set) Len() int {
	return len(s.byName)
}

// Load reads a TOML bindings file. Every entry must parse as a
// shortcut spec; the first bad entry fails the whole load so a typo
// does not silently drop a binding.
func Load(path string) (*Set, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read bindings: %w", err)
	}
	return Parse(data)
}

// Parse decodes TOML bindings data.
func Parse(data []byte) (*Set, error) {
	var f file
	if err := toml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse bindings: %w", err)
	}
	set := NewSet()
	for name, spec := range f.Bindings {
		sc, err := bind.ParseShortcut(spec)
		if err != nil {
			return nil, fmt.Errorf("binding %q: %w", name, err)
		}
		set.Define(name, sc)
	}
	return set, nil
}

// Save writes the collection back as TOML. Unbound entries are kept so
// a cleared binding survives a round trip as "None".
func (s *Set) Save(path string) error {
	data, err := s.Encode()
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write bindings: %w", err)
	}
	return nil
}

// Encode renders the collection as TOML.
func (s *Set) Encode() ([]byte, error) {
	f := file{Bindings: make(map[string]string, len(s.byName))}
	for name, sc := range s.byName {
		f.Bindings[name] = sc.String()
	}
	data, err := toml.Marshal(f)
	if err != nil {
		return nil, fmt.Errorf("encode bindings: %w", err)
	}
	return data, nil
}
