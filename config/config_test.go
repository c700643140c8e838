package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitConfigDefaults(t *testing.T) {
	// No config.yaml in this directory, so the defaults apply.
	InitConfig()

	require.NotNil(t, Cfg)
	assert.Equal(t, ":8080", Cfg.Server.Addr)
	assert.Equal(t, "localhost:6379", Cfg.Redis.Addr)
	assert.Equal(t, "5432", Cfg.DB.Port)
	assert.Equal(t, 5, Cfg.Geohash.PlacePrecision)
}
