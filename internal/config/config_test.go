package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/arcanaland/cardsmith/internal/card"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigCreatesDefault(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, "cyber", cfg.DefaultSpecies)
	assert.Equal(t, "cards", cfg.CardsDir)
	assert.Equal(t, "/draw", cfg.BotCommand)
	assert.FileExists(t, GetConfigFilePath())
}

func TestSetDefaultSpecies(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	require.NoError(t, SetDefaultSpecies("zombie"))

	got, err := GetDefaultSpecies()
	require.NoError(t, err)
	assert.Equal(t, "zombie", got)
}

func TestLoadConfigFillsEmptyFields(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)

	path := filepath.Join(dir, "cardsmith", "config.toml")
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte("cards_dir = \"out\"\nbot_command = \"\"\n"), 0644))

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, "out", cfg.CardsDir)
	assert.Equal(t, "/draw", cfg.BotCommand)
	assert.Equal(t, "base_images", cfg.AssetsDir)
}

func TestPresetsRoundTripThroughFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "presets.toml")
	require.NoError(t, WritePresets(path, DefaultPresets()))

	presets, err := LoadPresets(path)
	require.NoError(t, err)
	assert.Equal(t, DefaultPresets(), presets)
	assert.Equal(t, card.AllSpecies(), presets.Species())
}

func TestLoadPresets(t *testing.T) {
	path := filepath.Join(t.TempDir(), "presets.toml")
	data := `
[cyber]
color = "Violet"
suit = "heart"
J = "cj.png"
Q = "cq.png"
K = "ck.png"
`
	require.NoError(t, os.WriteFile(path, []byte(data), 0644))

	presets, err := LoadPresets(path)
	require.NoError(t, err)

	p, err := presets.Get(card.Cyber)
	require.NoError(t, err)
	assert.Equal(t, "Violet", p.Color)

	art, ok := p.FaceArt(card.Queen)
	assert.True(t, ok)
	assert.Equal(t, "cq.png", art)

	_, ok = p.FaceArt(card.NumericRank(3))
	assert.False(t, ok)

	_, err = presets.Get(card.Zombie)
	assert.Error(t, err)
}

func TestLoadPresetsRejectsBadInput(t *testing.T) {
	dir := t.TempDir()

	unknown := filepath.Join(dir, "unknown.toml")
	require.NoError(t, os.WriteFile(unknown, []byte("[robot]\ncolor = \"red\"\nsuit = \"heart\"\n"), 0644))
	_, err := LoadPresets(unknown)
	assert.Error(t, err)

	incomplete := filepath.Join(dir, "incomplete.toml")
	require.NoError(t, os.WriteFile(incomplete, []byte("[cyber]\nsuit = \"heart\"\n"), 0644))
	_, err = LoadPresets(incomplete)
	assert.Error(t, err)

	_, err = LoadPresets(filepath.Join(dir, "missing.toml"))
	assert.Error(t, err)
}

func TestLoadToken(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ".env")
	t.Setenv(TokenKey, "")

	_, err := LoadToken(path)
	assert.ErrorIs(t, err, ErrNoToken)

	require.NoError(t, os.WriteFile(path, []byte("DISCORD_OAUTH_TOKEN: file-token\n"), 0600))
	token, err := LoadToken(path)
	require.NoError(t, err)
	assert.Equal(t, "file-token", token)

	t.Setenv(TokenKey, "env-token")
	token, err = LoadToken(path)
	require.NoError(t, err)
	assert.Equal(t, "env-token", token)
}

func TestLoadTokenMissingKey(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	t.Setenv(TokenKey, "")
	require.NoError(t, os.WriteFile(path, []byte("OTHER=1\n"), 0600))

	_, err := LoadToken(path)
	assert.ErrorIs(t, err, ErrNoToken)
}
