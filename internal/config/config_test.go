package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/justinabrahms/atchess-rules/internal/chess"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoadDefaults(t *testing.T) {
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(t.TempDir()))
	t.Cleanup(func() { _ = os.Chdir(wd) })

	cfg, err := Load()
	require.NoError(t, err)
	assert.False(t, cfg.Development.Debug)
	assert.Equal(t, "info", cfg.Development.LogLevel)
	assert.Equal(t, "white", cfg.Game.FirstPlayer)
	assert.False(t, cfg.Game.LegacyRollback)
	assert.Equal(t, 8, cfg.Game.HistoryWindow)
	assert.Equal(t, zerolog.InfoLevel, cfg.Level())
}

func TestLoadFile(t *testing.T) {
	path := writeConfig(t, `
development:
  debug: true
  log_level: debug
game:
  first_player: black
  legacy_rollback: true
  history_window: 4
`)

	cfg, err := LoadFile(path)
	require.NoError(t, err)
	assert.True(t, cfg.Development.Debug)
	assert.Equal(t, zerolog.DebugLevel, cfg.Level())
	assert.Equal(t, "black", cfg.Game.FirstPlayer)
	assert.True(t, cfg.Game.LegacyRollback)
	assert.Equal(t, 4, cfg.Game.HistoryWindow)
}

func TestEnvironmentOverridesFile(t *testing.T) {
	path := writeConfig(t, "game:\n  first_player: white\n")
	t.Setenv("CHESS_GAME_FIRST_PLAYER", "black")
	t.Setenv("CHESS_DEVELOPMENT_LOG_LEVEL", "warn")

	cfg, err := LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "black", cfg.Game.FirstPlayer)
	assert.Equal(t, zerolog.WarnLevel, cfg.Level())
}

func TestLoadFileMissing(t *testing.T) {
	_, err := LoadFile(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	valid := func() Config {
		return Config{
			Development: DevelopmentConfig{LogLevel: "info"},
			Game:        GameConfig{FirstPlayer: "white", HistoryWindow: 8},
		}
	}

	tests := []struct {
		name   string
		modify func(*Config)
		errMsg string
	}{
		{name: "valid", modify: func(*Config) {}},
		{
			name:   "bad log level",
			modify: func(c *Config) { c.Development.LogLevel = "loud" },
			errMsg: "development.log_level",
		},
		{
			name:   "bad first player",
			modify: func(c *Config) { c.Game.FirstPlayer = "green" },
			errMsg: "game.first_player",
		},
		{
			name:   "negative history window",
			modify: func(c *Config) { c.Game.HistoryWindow = -1 },
			errMsg: "game.history_window",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.modify(&cfg)
			err := cfg.Validate()
			if tt.errMsg == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errMsg)
		})
	}
}

func TestLoadFileRejectsInvalid(t *testing.T) {
	path := writeConfig(t, "game:\n  first_player: green\n")

	_, err := LoadFile(path)
	assert.ErrorContains(t, err, "game.first_player")
}

func TestGameOptions(t *testing.T) {
	cfg := Config{
		Development: DevelopmentConfig{LogLevel: "info"},
		Game:        GameConfig{FirstPlayer: "b", LegacyRollback: true},
	}

	opts, err := cfg.GameOptions()
	require.NoError(t, err)

	g, err := chess.NewGame(append(opts, chess.WithLogger(zerolog.Nop()))...)
	require.NoError(t, err)
	assert.Equal(t, chess.Black, g.ToMove())

	_, err = g.MoveToPosition(chess.MustCell("E7"), chess.MustCell("E5"))
	assert.NoError(t, err)
}
