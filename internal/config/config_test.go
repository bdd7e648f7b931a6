package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/vajrock/erasure-lab/internal/config"
)

func TestDefaultConfig(t *testing.T) {
	cfg := config.DefaultConfig()

	assert.Equal(t, []string{
		"string value 1",
		"string value 2",
		"string value 3",
		"string value 4",
		"string value 5",
	}, cfg.StringValues)
	assert.Equal(t, int64(5), cfg.ForeignValue)
	assert.Equal(t, 3, cfg.ForeignIndex)
	assert.False(t, cfg.Verbose)
}
