// Package keymap translates terminal key presses into menu key actions and
// host controls. Bindings default to the arrow/enter layout and can be
// overridden from a YAML or TOML file.
package keymap

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"gopkg.in/yaml.v3"

	"github.com/atomicstack/textmenu/internal/menu"
)

// Host is a control handled by the program rather than the menu.
type Host int

const (
	HostNone Host = iota
	HostToggle
	HostCopy
	HostHelp
	HostQuit
)

var hostNames = map[Host]string{
	HostToggle: "toggle",
	HostCopy:   "copy",
	HostHelp:   "help",
	HostQuit:   "quit",
}

func (h Host) String() string {
	if name, ok := hostNames[h]; ok {
		return name
	}
	return "none"
}

// Map holds one binding per menu key and per host control.
type Map struct {
	menuKeys map[menu.Key]*key.Binding
	host     map[Host]*key.Binding
}

// Default returns the standard layout: arrows move and adjust, enter
// activates, punctuation keys cover the finer steps, tab toggles the
// overlay.
func Default() *Map {
	bind := func(desc string, keys ...string) *key.Binding {
		b := key.NewBinding(key.WithKeys(keys...), key.WithHelp(strings.Join(keys, "/"), desc))
		return &b
	}
	return &Map{
		menuKeys: map[menu.Key]*key.Binding{
			menu.KeyUp:              bind("up", "up"),
			menu.KeyDown:            bind("down", "down"),
			menu.KeyIncrement:       bind("increase/enter", "right"),
			menu.KeyDecrement:       bind("decrease/back", "left"),
			menu.KeyIncrementMedium: bind("+0.1", "."),
			menu.KeyDecrementMedium: bind("-0.1", ","),
			menu.KeyIncrementSmall:  bind("+0.01", ">"),
			menu.KeyDecrementSmall:  bind("-0.01", "<"),
			menu.KeyActivate:        bind("select/reset", "enter"),
			menu.KeyMin:             bind("min", "-"),
			menu.KeyMax:             bind("max", "="),
			menu.KeyRound:           bind("round", "/"),
		},
		host: map[Host]*key.Binding{
			HostToggle: bind("menu", "tab"),
			HostCopy:   bind("copy", "y"),
			HostHelp:   bind("help", "?"),
			HostQuit:   bind("quit", "q", "ctrl+c"),
		},
	}
}

// Resolve returns the menu key bound to msg, or menu.KeyNone.
func (m *Map) Resolve(msg tea.KeyMsg) menu.Key {
	for _, k := range menu.Keys() {
		if b, ok := m.menuKeys[k]; ok && key.Matches(msg, *b) {
			return k
		}
	}
	return menu.KeyNone
}

// ResolveHost returns the host control bound to msg, or HostNone.
func (m *Map) ResolveHost(msg tea.KeyMsg) Host {
	for _, h := range []Host{HostQuit, HostToggle, HostCopy, HostHelp} {
		if b, ok := m.host[h]; ok && key.Matches(msg, *b) {
			return h
		}
	}
	return HostNone
}

// Binding exposes the binding for a menu key.
func (m *Map) Binding(k menu.Key) (key.Binding, bool) {
	b, ok := m.menuKeys[k]
	if !ok {
		return key.Binding{}, false
	}
	return *b, true
}

// HostBinding exposes the binding for a host control.
func (m *Map) HostBinding(h Host) (key.Binding, bool) {
	b, ok := m.host[h]
	if !ok {
		return key.Binding{}, false
	}
	return *b, true
}

// ShortHelp implements help.KeyMap.
func (m *Map) ShortHelp() []key.Binding {
	return m.collect(
		[]menu.Key{menu.KeyUp, menu.KeyDown, menu.KeyIncrement, menu.KeyDecrement, menu.KeyActivate},
		[]Host{HostToggle, HostHelp, HostQuit},
	)
}

// FullHelp implements help.KeyMap.
func (m *Map) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		m.collect([]menu.Key{menu.KeyUp, menu.KeyDown, menu.KeyActivate}, nil),
		m.collect([]menu.Key{menu.KeyIncrement, menu.KeyDecrement, menu.KeyIncrementMedium, menu.KeyDecrementMedium}, nil),
		m.collect([]menu.Key{menu.KeyIncrementSmall, menu.KeyDecrementSmall, menu.KeyMin, menu.KeyMax, menu.KeyRound}, nil),
		m.collect(nil, []Host{HostToggle, HostCopy, HostHelp, HostQuit}),
	}
}

func (m *Map) collect(keys []menu.Key, hosts []Host) []key.Binding {
	out := make([]key.Binding, 0, len(keys)+len(hosts))
	for _, k := range keys {
		if b, ok := m.menuKeys[k]; ok && b.Enabled() {
			out = append(out, *b)
		}
	}
	for _, h := range hosts {
		if b, ok := m.host[h]; ok && b.Enabled() {
			out = append(out, *b)
		}
	}
	return out
}

// Override rebinds actions by name. Menu keys use their String form, host
// controls use toggle, copy, help and quit. An empty key list disables the
// action.
func (m *Map) Override(bindings map[string][]string) error {
	names := make([]string, 0, len(bindings))
	for name := range bindings {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		b, err := m.lookup(name)
		if err != nil {
			return err
		}
		rebind(b, bindings[name])
	}
	return nil
}

func (m *Map) lookup(name string) (*key.Binding, error) {
	normalized := strings.ToLower(strings.TrimSpace(name))
	for h, hostName := range hostNames {
		if hostName == normalized {
			return m.host[h], nil
		}
	}
	k, err := menu.ParseKey(name)
	if err != nil {
		return nil, fmt.Errorf("keymap: unknown action %q", name)
	}
	return m.menuKeys[k], nil
}

func rebind(b *key.Binding, keys []string) {
	cleaned := make([]string, 0, len(keys))
	for _, k := range keys {
		if k = strings.TrimSpace(k); k != "" {
			cleaned = append(cleaned, k)
		}
	}
	if len(cleaned) == 0 {
		b.SetEnabled(false)
		return
	}
	b.SetKeys(cleaned...)
	b.SetHelp(strings.Join(cleaned, "/"), b.Help().Desc)
	b.SetEnabled(true)
}

type fileConfig struct {
	Bindings map[string][]string `yaml:"bindings" toml:"bindings"`
}

// Load returns the default map with the overrides in path applied. The
// format follows the extension: .yaml, .yml or .toml. An empty path yields
// the defaults.
func Load(path string) (*Map, error) {
	m := Default()
	if strings.TrimSpace(path) == "" {
		return m, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("keymap: read %s: %w", path, err)
	}
	var cfg fileConfig
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("keymap: parse %s: %w", path, err)
		}
	case ".toml":
		if err := toml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("keymap: parse %s: %w", path, err)
		}
	default:
		return nil, fmt.Errorf("keymap: unsupported file type %q", filepath.Ext(path))
	}
	if err := m.Override(cfg.Bindings); err != nil {
		return nil, fmt.Errorf("%w (in %s)", err, path)
	}
	return m, nil
}
