package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/rockpaperscissors/internal/game"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "rps.hcl")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad(t *testing.T) {
	t.Run("missing file yields defaults", func(t *testing.T) {
		cfg, err := Load(filepath.Join(t.TempDir(), "nope.hcl"))
		require.NoError(t, err)
		require.NoError(t, cfg.Validate())

		assert.Equal(t, game.VsComputer, cfg.Mode())
		assert.Equal(t, time.Second, cfg.RevealDelay())
		assert.Equal(t, log.InfoLevel, cfg.LogLevel())
		assert.Equal(t, DefaultLogFile, cfg.Log.File)
		assert.True(t, cfg.ColorEnabled())
		assert.Zero(t, cfg.Game.Seed)
	})

	t.Run("full file", func(t *testing.T) {
		path := writeConfig(t, `
game {
  mode         = "friend"
  reveal_delay = "250ms"
  seed         = 42
}

log {
  level = "debug"
  file  = "/tmp/rps-debug.log"
}

display {
  color = false
}
`)
		cfg, err := Load(path)
		require.NoError(t, err)
		require.NoError(t, cfg.Validate())

		assert.Equal(t, game.VsFriend, cfg.Mode())
		assert.Equal(t, 250*time.Millisecond, cfg.RevealDelay())
		assert.Equal(t, int64(42), cfg.Game.Seed)
		assert.Equal(t, log.DebugLevel, cfg.LogLevel())
		assert.Equal(t, "/tmp/rps-debug.log", cfg.Log.File)
		assert.False(t, cfg.ColorEnabled())
	})

	t.Run("partial file keeps defaults", func(t *testing.T) {
		path := writeConfig(t, `
game {
  mode = "friend"
}
`)
		cfg, err := Load(path)
		require.NoError(t, err)
		require.NoError(t, cfg.Validate())

		assert.Equal(t, game.VsFriend, cfg.Mode())
		assert.Equal(t, time.Second, cfg.RevealDelay())
		assert.Equal(t, DefaultLogLevel, cfg.Log.Level)
		assert.True(t, cfg.ColorEnabled())
	})

	t.Run("syntax error", func(t *testing.T) {
		path := writeConfig(t, `game {`)
		_, err := Load(path)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "parse")
	})

	t.Run("unknown attribute", func(t *testing.T) {
		path := writeConfig(t, `
game {
  difficulty = "hard"
}
`)
		_, err := Load(path)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "decode")
	})
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*Config)
		errMsg string
	}{
		{"unknown mode", func(c *Config) { c.Game.Mode = "online" }, "unknown mode"},
		{"bad delay", func(c *Config) { c.Game.RevealDelay = "soon" }, "reveal_delay"},
		{"zero delay", func(c *Config) { c.Game.RevealDelay = "0s" }, "must be positive"},
		{"negative delay", func(c *Config) { c.Game.RevealDelay = "-1s" }, "must be positive"},
		{"bad level", func(c *Config) { c.Log.Level = "loud" }, "invalid level"},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			cfg := Default()
			test.modify(cfg)
			err := cfg.Validate()
			require.Error(t, err)
			assert.Contains(t, err.Error(), test.errMsg)
		})
	}
}
