package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveAll_FlagPrecedence(t *testing.T) {
	t.Setenv(EnvRootName, "envroot")

	resolved, err := ResolveAll(ResolveAllOptions{
		RootFlag: "flagroot",
		Config:   &Config{RootName: "configroot"},
	})
	require.NoError(t, err)

	assert.Equal(t, "flagroot", resolved.RootName.Value)
	assert.Equal(t, SourceFlag, resolved.RootName.Source)
	assert.Equal(t, "envroot", resolved.RootName.Shadowed[SourceEnv])
	assert.Equal(t, "configroot", resolved.RootName.Shadowed[SourceConfig])
	assert.Equal(t, DefaultRootName, resolved.RootName.Shadowed[SourceDefault])
}

func TestResolveAll_EnvPrecedence(t *testing.T) {
	t.Setenv(EnvTemplate, "amd")

	resolved, err := ResolveAll(ResolveAllOptions{Config: &Config{Template: "commonjs"}})
	require.NoError(t, err)

	assert.Equal(t, "amd", resolved.Template.Value)
	assert.Equal(t, SourceEnv, resolved.Template.Source)
	assert.Equal(t, "commonjs", resolved.Template.Shadowed[SourceConfig])
	assert.NotContains(t, resolved.Template.Shadowed, SourceFlag)
}

func TestResolveAll_ConfigFallback(t *testing.T) {
	t.Setenv(EnvTemplate, "")

	resolved, err := ResolveAll(ResolveAllOptions{Config: &Config{Template: "/tpl/custom.template"}})
	require.NoError(t, err)

	assert.Equal(t, "/tpl/custom.template", resolved.Template.Value)
	assert.Equal(t, SourceConfig, resolved.Template.Source)
}

func TestResolveAll_Defaults(t *testing.T) {
	t.Setenv(EnvTemplate, "")
	t.Setenv(EnvRootName, "")

	resolved, err := ResolveAll(ResolveAllOptions{})
	require.NoError(t, err)

	assert.Equal(t, "umd", resolved.Template.Value)
	assert.Equal(t, SourceDefault, resolved.Template.Source)
	assert.Equal(t, "root", resolved.RootName.Value)
	assert.Equal(t, SourceDefault, resolved.RootName.Source)
	assert.Empty(t, resolved.RootName.Shadowed)
	assert.Positive(t, resolved.Jobs)
}

func TestResolveAll_ConfigPath(t *testing.T) {
	t.Setenv(EnvConfig, "/env/config.yaml")

	resolved, err := ResolveAll(ResolveAllOptions{ConfigFlag: "/flag/config.yaml"})
	require.NoError(t, err)

	assert.Equal(t, "/flag/config.yaml", resolved.ConfigPath.Value)
	assert.Equal(t, SourceFlag, resolved.ConfigPath.Source)
	assert.Equal(t, "/env/config.yaml", resolved.ConfigPath.Shadowed[SourceEnv])
}

func TestResolveJobs(t *testing.T) {
	assert.Equal(t, 4, resolveJobs(4, 2))
	assert.Equal(t, 2, resolveJobs(0, 2))
	assert.Positive(t, resolveJobs(0, 0))
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	assert.Equal(t, "umd", cfg.Template)
	assert.Equal(t, "root", cfg.RootName)
	assert.Nil(t, cfg.Log.Timestamps)
}

func TestWithDefaults_KeepsSetValues(t *testing.T) {
	in := &Config{RootName: "window", Jobs: 2}
	out := in.WithDefaults()

	assert.Equal(t, "window", out.RootName)
	assert.Equal(t, "umd", out.Template)
	assert.Equal(t, 2, out.Jobs)
	assert.Empty(t, in.Template, "WithDefaults must not mutate the receiver")
}
