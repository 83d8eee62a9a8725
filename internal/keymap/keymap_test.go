package keymap

import (
	"os"
	"path/filepath"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/atomicstack/textmenu/internal/menu"
)

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestDefaultResolve(t *testing.T) {
	m := Default()
	cases := []struct {
		msg  tea.KeyMsg
		want menu.Key
	}{
		{tea.KeyMsg{Type: tea.KeyUp}, menu.KeyUp},
		{tea.KeyMsg{Type: tea.KeyDown}, menu.KeyDown},
		{tea.KeyMsg{Type: tea.KeyRight}, menu.KeyIncrement},
		{tea.KeyMsg{Type: tea.KeyLeft}, menu.KeyDecrement},
		{tea.KeyMsg{Type: tea.KeyEnter}, menu.KeyActivate},
		{runes("."), menu.KeyIncrementMedium},
		{runes(","), menu.KeyDecrementMedium},
		{runes(">"), menu.KeyIncrementSmall},
		{runes("<"), menu.KeyDecrementSmall},
		{runes("-"), menu.KeyMin},
		{runes("="), menu.KeyMax},
		{runes("/"), menu.KeyRound},
		{runes("x"), menu.KeyNone},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, m.Resolve(tc.msg), "key %q", tc.msg.String())
	}
}

func TestDefaultHostControls(t *testing.T) {
	m := Default()
	assert.Equal(t, HostToggle, m.ResolveHost(tea.KeyMsg{Type: tea.KeyTab}))
	assert.Equal(t, HostQuit, m.ResolveHost(tea.KeyMsg{Type: tea.KeyCtrlC}))
	assert.Equal(t, HostQuit, m.ResolveHost(runes("q")))
	assert.Equal(t, HostCopy, m.ResolveHost(runes("y")))
	assert.Equal(t, HostHelp, m.ResolveHost(runes("?")))
	assert.Equal(t, HostNone, m.ResolveHost(tea.KeyMsg{Type: tea.KeyUp}))
	assert.Equal(t, "toggle", HostToggle.String())
}

func TestOverrideRebindsAndDisables(t *testing.T) {
	m := Default()
	err := m.Override(map[string][]string{
		"increment": {"right", "l"},
		"Round":     {},
		"quit":      {"ctrl+q"},
	})
	require.NoError(t, err)

	assert.Equal(t, menu.KeyIncrement, m.Resolve(runes("l")))
	assert.Equal(t, menu.KeyIncrement, m.Resolve(tea.KeyMsg{Type: tea.KeyRight}))
	assert.Equal(t, menu.KeyNone, m.Resolve(runes("/")))
	assert.Equal(t, HostNone, m.ResolveHost(runes("q")))

	b, ok := m.Binding(menu.KeyIncrement)
	require.True(t, ok)
	assert.Equal(t, "right/l", b.Help().Key)
	assert.Equal(t, "increase/enter", b.Help().Desc)

	for _, binding := range m.FullHelp()[2] {
		assert.NotEqual(t, "round", binding.Help().Desc)
	}
}

func TestOverrideRejectsUnknownAction(t *testing.T) {
	err := Default().Override(map[string][]string{"teleport": {"t"}})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "teleport")
}

func TestLoadYAML(t *testing.T) {
	path := writeFile(t, "keys.yaml", "bindings:\n  up: [up, k]\n  down: [down, j]\n  increment_small: [\"]\"]\n")
	m, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, menu.KeyUp, m.Resolve(runes("k")))
	assert.Equal(t, menu.KeyDown, m.Resolve(runes("j")))
	assert.Equal(t, menu.KeyIncrementSmall, m.Resolve(runes("]")))
	assert.Equal(t, menu.KeyNone, m.Resolve(runes(">")))
}

func TestLoadTOML(t *testing.T) {
	path := writeFile(t, "keys.toml", "[bindings]\nactivate = [\"enter\", \" \"]\ntoggle = [\"m\"]\n")
	m, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, menu.KeyActivate, m.Resolve(tea.KeyMsg{Type: tea.KeyEnter}))
	assert.Equal(t, HostToggle, m.ResolveHost(runes("m")))
	assert.Equal(t, HostNone, m.ResolveHost(tea.KeyMsg{Type: tea.KeyTab}))
}

func TestLoadErrors(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)

	_, err = Load(writeFile(t, "keys.json", "{}"))
	require.ErrorContains(t, err, "unsupported file type")

	_, err = Load(writeFile(t, "bad.yaml", "bindings: [not, a, map]\n"))
	require.ErrorContains(t, err, "parse")

	_, err = Load(writeFile(t, "unknown.toml", "[bindings]\nwarp = [\"w\"]\n"))
	require.ErrorContains(t, err, "warp")
}

func TestLoadEmptyPathReturnsDefaults(t *testing.T) {
	m, err := Load("  ")
	require.NoError(t, err)
	assert.Equal(t, menu.KeyIncrement, m.Resolve(tea.KeyMsg{Type: tea.KeyRight}))
}

func TestShortHelpSkipsDisabled(t *testing.T) {
	m := Default()
	before := len(m.ShortHelp())
	require.NoError(t, m.Override(map[string][]string{"help": nil}))
	assert.Len(t, m.ShortHelp(), before-1)
}
