package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Darkkkking/ai-rpg-adventure/internal/config"
)

func testConfig(t *testing.T) *config.Config {
	t.Helper()
	return &config.Config{
		Storage: config.StorageConfig{
			Backend:  config.BackendFile,
			SavePath: t.TempDir(),
			Slot:     "cli-test",
		},
		Narrative: config.NarrativeConfig{Timeout: time.Second},
		Session:   config.SessionConfig{MaxAge: time.Hour},
	}
}

func execute(t *testing.T, a *app, stdin string, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	root := newRootCmd(a)
	root.SetArgs(args)
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetIn(strings.NewReader(stdin))
	err := root.Execute()
	return out.String(), err
}

func TestClassesCommand(t *testing.T) {
	a := newApp(testConfig(t))
	defer a.Close()

	out, err := execute(t, a, "", "classes", "--lore")
	require.NoError(t, err)
	assert.Contains(t, out, "Swordsman (swordsman)")
	assert.Contains(t, out, "Hitman (hitman)")
	assert.Contains(t, out, "Abilities: Sword Mastery, Heavy Strike, Parry")
}

func TestBestiaryCommand(t *testing.T) {
	a := newApp(testConfig(t))
	defer a.Close()

	out, err := execute(t, a, "", "bestiary")
	require.NoError(t, err)
	assert.Contains(t, out, "DIFFICULTY")
	assert.Contains(t, out, "Legendary")

	_, err = execute(t, a, "", "bestiary", "--difficulty", "trivial")
	assert.Error(t, err)
}

func TestSaveCommands(t *testing.T) {
	a := newApp(testConfig(t))
	defer a.Close()
	dir := t.TempDir()

	backup := filepath.Join(dir, "rin.json")
	require.NoError(t, os.WriteFile(backup, []byte(`{
		"player": {
			"name": "Rin", "class": "magician", "level": 3,
			"experience": 240, "experience_to_next": 300, "gold": 410,
			"stats": {"max_hp": 90}, "current_hp": 75, "quests_completed": 3
		},
		"story_context": []
	}`), 0o644))

	out, err := execute(t, a, "", "import", backup)
	require.NoError(t, err)
	assert.Contains(t, out, "Imported Rin (level 3)")

	out, err = execute(t, a, "", "stats")
	require.NoError(t, err)
	assert.Contains(t, out, "Rin the Magician")
	assert.Contains(t, out, "240 / 300")
	assert.Contains(t, out, "80.0")

	out, err = execute(t, a, "", "saves")
	require.NoError(t, err)
	assert.Contains(t, out, "cli-test")

	exported := filepath.Join(dir, "out.json")
	_, err = execute(t, a, "", "export", exported)
	require.NoError(t, err)
	data, err := os.ReadFile(exported)
	require.NoError(t, err)
	assert.Contains(t, string(data), "export_timestamp")

	_, err = execute(t, a, "", "clear")
	require.NoError(t, err)

	_, err = execute(t, a, "", "stats")
	assert.Error(t, err)
}

func TestPlayCommand_NewHunterTakesAndDropsContract(t *testing.T) {
	a := newApp(testConfig(t))
	defer a.Close()

	out, err := execute(t, a, "Kael\n1\nq\na\nx\n", "play", "--new")
	require.NoError(t, err)
	assert.Contains(t, out, "Kael joins the guild as a Swordsman.")
	assert.Contains(t, out, "Offered by")
	assert.Contains(t, out, "Contract abandoned.")
	assert.Contains(t, out, "Game saved.")

	out, err = execute(t, a, "x\n", "play")
	require.NoError(t, err)
	assert.Contains(t, out, "Welcome back, Kael.")
}

func TestLobbyCommand(t *testing.T) {
	a := newApp(testConfig(t))
	defer a.Close()

	out, err := execute(t, a, "", "lobby")
	require.NoError(t, err)
	assert.Contains(t, out, "Aria opened lobby")
	assert.Contains(t, out, "Borin the Warrior joined")
	assert.Contains(t, out, "Turn order:")
	assert.Contains(t, out, "3 hunters, average level 1.0")
	assert.Contains(t, out, "Lobby closed.")

	_, err = execute(t, a, "", "lobby", "--party", "Solo:archer")
	assert.Error(t, err)
}
