package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-roaster/internal/llm"
)

func TestLoadConfig_ValidJSON(t *testing.T) {
	// Create temp config file
	content := `{
		"port": 9090,
		"database_url": "postgres://localhost/roaster",
		"roast_model": "gemini-2.5-pro",
		"verbose": true
	}`

	tmpFile := filepath.Join(t.TempDir(), "config.json")
	err := os.WriteFile(tmpFile, []byte(content), 0644)
	require.NoError(t, err)

	cfg, err := LoadConfig(tmpFile)
	require.NoError(t, err)
	require.NotNil(t, cfg)

	assert.Equal(t, 9090, cfg.Port)
	assert.Equal(t, "postgres://localhost/roaster", cfg.DatabaseURL)
	assert.Equal(t, "gemini-2.5-pro", cfg.RoastModel)
	assert.True(t, cfg.Verbose)
}

func TestLoadConfig_InvalidJSON(t *testing.T) {
	content := `{ invalid json }`

	tmpFile := filepath.Join(t.TempDir(), "config.json")
	err := os.WriteFile(tmpFile, []byte(content), 0644)
	require.NoError(t, err)

	cfg, err := LoadConfig(tmpFile)
	assert.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "failed to parse config JSON")
}

func TestLoadConfig_FileNotFound(t *testing.T) {
	cfg, err := LoadConfig("/nonexistent/path/config.json")
	assert.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "failed to read config file")
}

func TestLoadConfig_EmptyPath(t *testing.T) {
	cfg, err := LoadConfig("")
	assert.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "config path is empty")
}

func TestFromEnv(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://env/roaster")
	t.Setenv("GEMINI_API_KEY", "env-key")
	t.Setenv("GEMINI_ROAST_MODEL", "gemini-env")
	t.Setenv("PORT", "7070")

	cfg := FromEnv()

	assert.Equal(t, "postgres://env/roaster", cfg.DatabaseURL)
	assert.Equal(t, "env-key", cfg.APIKey)
	assert.Equal(t, "gemini-env", cfg.RoastModel)
	assert.Equal(t, 7070, cfg.Port)
}

func TestFromEnv_InvalidPortIgnored(t *testing.T) {
	t.Setenv("PORT", "not-a-port")

	cfg := FromEnv()
	assert.Equal(t, 0, cfg.Port)
}

func TestValidate_PortRange(t *testing.T) {
	cfg := &Config{Port: 70000}

	err := cfg.Validate()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "port")
}

func TestValidate_ValidConfig(t *testing.T) {
	cfg := &Config{
		Port:        8080,
		DatabaseURL: "postgres://localhost/roaster",
	}

	err := cfg.Validate()
	assert.NoError(t, err)
}

func TestMergeWithDefaults(t *testing.T) {
	defaults := Config{
		Port:        8080,
		DatabaseURL: "postgres://default/roaster",
		APIKey:      "default-key",
		ParseModel:  "gemini-default",
	}

	partial := Config{
		Port:   9090,
		APIKey: "custom-key",
	}

	merged := partial.MergeWithDefaults(defaults)

	// Custom values should be preserved
	assert.Equal(t, 9090, merged.Port)
	assert.Equal(t, "custom-key", merged.APIKey)

	// Default values should fill in empty fields
	assert.Equal(t, "postgres://default/roaster", merged.DatabaseURL)
	assert.Equal(t, "gemini-default", merged.ParseModel)
}

func TestMergeWithDefaults_EmptyDefaults(t *testing.T) {
	cfg := Config{
		Port:   9090,
		APIKey: "key",
	}

	merged := cfg.MergeWithDefaults(Config{})

	assert.Equal(t, 9090, merged.Port)
	assert.Equal(t, "key", merged.APIKey)
}

func TestLLMConfig_Overrides(t *testing.T) {
	cfg := &Config{RoastModel: "gemini-2.5-pro"}

	models := cfg.LLMConfig()

	assert.Equal(t, "gemini-2.5-pro", models.Model(llm.TaskRoast))
	assert.Equal(t, llm.DefaultConfig().Model(llm.TaskTailor), models.Model(llm.TaskTailor))
}

func TestLLMConfig_NoOverrides(t *testing.T) {
	cfg := &Config{}

	models := cfg.LLMConfig()
	assert.Equal(t, llm.DefaultConfig().Models, models.Models)
}
