package cmd

import (
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"baro/cli/internal/config"
)

func TestSaveSettingWritesFileOnly(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("BARO_LOG_LEVEL", "debug")

	require.NoError(t, saveSetting("api_base_url", "https://baro.example.com"))

	c, err := config.LoadFile()
	require.NoError(t, err)
	assert.Equal(t, "https://baro.example.com", c.APIBaseURL)
	// the environment override stays out of the file
	assert.Equal(t, "info", c.LogLevel)
}

func TestSaveSettingRejectsBadValue(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	assert.Error(t, saveSetting("http_timeout", "soon"))

	c, err := config.LoadFile()
	require.NoError(t, err)
	assert.Equal(t, config.Defaults(), c)
}

func TestConfigCommandsSkipSession(t *testing.T) {
	for _, c := range []*cobra.Command{configCmd, configShowCmd, configSetCmd} {
		assert.Equal(t, "true", c.Annotations[noSessionAnnotation], c.Name())
	}
}
