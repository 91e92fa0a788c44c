package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/liamqma/sanmou-yanwu/internal/scorer"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.HTTPAddr)
	assert.Equal(t, "data/battles", cfg.BattlesDir)
	assert.False(t, cfg.Debug)
	assert.Equal(t, scorer.DefaultConfig(), cfg.Scoring)
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("HTTP_ADDR", ":9090")
	t.Setenv("DEBUG", "true")
	t.Setenv("ESTIMATOR", scorer.EstimatorBayes)
	t.Setenv("MIN_GAMES", "5")
	t.Setenv("PRIOR_WEIGHT", "20")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, ":9090", cfg.HTTPAddr)
	assert.True(t, cfg.Debug)
	assert.Equal(t, scorer.EstimatorBayes, cfg.Scoring.Estimator)
	assert.Equal(t, uint64(5), cfg.Scoring.MinGames)
	assert.Equal(t, 20.0, cfg.Scoring.PriorWeight)
}

func TestLoad_BadValues(t *testing.T) {
	t.Setenv("MIN_GAMES", "lots")
	_, err := Load()
	assert.Error(t, err)
}

func TestLoad_InvalidEstimator(t *testing.T) {
	t.Setenv("ESTIMATOR", "guesswork")
	_, err := Load()
	assert.ErrorIs(t, err, scorer.ErrUnknownEstimator)
}
