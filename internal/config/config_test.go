package config

import (
	"log/slog"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/timesmaster/internal/engine"
	"github.com/abhisek/timesmaster/internal/problemgen"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "mixed", cfg.Difficulty)
	assert.Empty(t, cfg.Tables)
	assert.Equal(t, 800*time.Millisecond, cfg.CorrectDelay)
	assert.Equal(t, 1200*time.Millisecond, cfg.IncorrectDelay)
	assert.Equal(t, 2500*time.Millisecond, cfg.DontKnowDelay)
	assert.Equal(t, 2400*time.Millisecond, cfg.BadgeDuration)
	assert.False(t, cfg.NoWelcome)
	assert.NoError(t, cfg.Validate())
}

func TestLoad_FromEnv(t *testing.T) {
	t.Setenv("TIMESMASTER_DIFFICULTY", "hard")
	t.Setenv("TIMESMASTER_TABLES", "3,7")
	t.Setenv("TIMESMASTER_SEED", "42")
	t.Setenv("TIMESMASTER_CORRECT_DELAY", "1s")
	t.Setenv("TIMESMASTER_NO_WELCOME", "true")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "hard", cfg.Difficulty)
	assert.Equal(t, []int{3, 7}, cfg.Tables)
	assert.Equal(t, uint64(42), cfg.Seed)
	assert.Equal(t, time.Second, cfg.CorrectDelay)
	assert.True(t, cfg.NoWelcome)
}

func TestLoad_BadEnv(t *testing.T) {
	t.Setenv("TIMESMASTER_SEED", "not-a-number")
	_, err := Load()
	assert.Error(t, err)
}

func TestBindFlags_OverrideEnv(t *testing.T) {
	t.Setenv("TIMESMASTER_DIFFICULTY", "easy")
	cfg, err := Load()
	require.NoError(t, err)

	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	cfg.BindFlags(fs)
	cfg.BindLogFlags(fs)
	require.NoError(t, fs.Parse([]string{"--difficulty", "medium", "--seed", "9", "--log-level", "debug"}))

	assert.Equal(t, "medium", cfg.Difficulty)
	assert.Equal(t, uint64(9), cfg.Seed)
	lvl, err := cfg.Level()
	require.NoError(t, err)
	assert.Equal(t, slog.LevelDebug, lvl)
}

func TestMode_TablesImplyCustom(t *testing.T) {
	cfg := Config{Difficulty: "mixed", Tables: []int{4}}
	d, err := cfg.Mode()
	require.NoError(t, err)
	assert.Equal(t, problemgen.DifficultyCustom, d)

	cfg.Difficulty = "hard"
	d, err = cfg.Mode()
	require.NoError(t, err)
	assert.Equal(t, problemgen.DifficultyHard, d, "explicit preset wins over tables")
}

func TestValidate(t *testing.T) {
	valid := func() Config {
		return Config{
			Difficulty:     "mixed",
			LogLevel:       "info",
			CorrectDelay:   time.Millisecond,
			IncorrectDelay: time.Millisecond,
			DontKnowDelay:  time.Millisecond,
			BadgeDuration:  time.Millisecond,
		}
	}

	cfg := valid()
	cfg.Tables = []int{3, 12}
	err := cfg.Validate()
	assert.ErrorIs(t, err, ErrInvalidConfig)
	assert.ErrorIs(t, err, engine.ErrInvalidOperand)

	cfg = valid()
	cfg.Difficulty = "impossible"
	assert.ErrorIs(t, cfg.Validate(), problemgen.ErrUnknownDifficulty)

	cfg = valid()
	cfg.LogLevel = "loud"
	assert.ErrorIs(t, cfg.Validate(), ErrInvalidConfig)

	cfg = valid()
	cfg.BadgeDuration = 0
	assert.ErrorIs(t, cfg.Validate(), ErrInvalidConfig)
}

func TestOpenLogger(t *testing.T) {
	cfg := Config{LogLevel: "info"}
	logger, closer, err := cfg.OpenLogger()
	require.NoError(t, err)
	assert.NotNil(t, logger)
	assert.NoError(t, closer.Close())

	cfg.LogFile = filepath.Join(t.TempDir(), "tm.log")
	logger, closer, err = cfg.OpenLogger()
	require.NoError(t, err)
	logger.Info("hello")
	require.NoError(t, closer.Close())
	assert.FileExists(t, cfg.LogFile)
}
