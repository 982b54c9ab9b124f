package main

import (
	"flag"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	configpkg "github.com/espectros/analista-tritoes/pkg/config"
)

func envMap(values map[string]string) func(string) string {
	return func(key string) string { return values[key] }
}

func newFlagSet() *flag.FlagSet {
	fs := flag.NewFlagSet("analista", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	return fs
}

func TestParseCLIConfigDefaults(t *testing.T) {
	cfg, err := parseCLIConfig(newFlagSet(), nil, envMap(map[string]string{
		"CHAVE_API": " segredo ",
	}))

	require.NoError(t, err)
	assert.Equal(t, configpkg.DefaultSheetPath, cfg.SheetPath)
	assert.Equal(t, "segredo", cfg.APIKey)
	assert.Equal(t, configpkg.DefaultModel, cfg.Model)
	assert.Equal(t, configpkg.DefaultBaseURL, cfg.BaseURL)
	assert.False(t, cfg.Verbose)
	assert.Zero(t, cfg.MaxPromptBytes)
}

func TestParseCLIConfigOverrides(t *testing.T) {
	cfg, err := parseCLIConfig(newFlagSet(),
		[]string{"-planilha", "jogos.csv", "-verbose", "-max_prompt_bytes", "200000"},
		envMap(map[string]string{
			"ANALISTA_MODEL":    "gpt-4o-mini",
			"ANALISTA_BASE_URL": "https://api.openai.com/v1/",
		}),
	)

	require.NoError(t, err)
	assert.Equal(t, "jogos.csv", cfg.SheetPath)
	assert.True(t, cfg.Verbose)
	assert.Equal(t, 200000, cfg.MaxPromptBytes)
	assert.Equal(t, "gpt-4o-mini", cfg.Model)
	assert.Equal(t, "https://api.openai.com/v1/", cfg.BaseURL)
	assert.Empty(t, cfg.APIKey)
}

func TestParseCLIConfigRejectsUnknownFlag(t *testing.T) {
	_, err := parseCLIConfig(newFlagSet(), []string{"-skills_dirs", "x"}, envMap(nil))
	assert.Error(t, err)
}
