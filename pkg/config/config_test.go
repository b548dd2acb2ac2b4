package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad_HCL(t *testing.T) {
	path := writeConfig(t, "cheat.hcl", `
flags {
  template_dir = "templates"
  dest_dir     = "/games/Hades/Content"
  ignore       = ["**/*.bak"]
}

rule "damage_scale" {
  scale_int = 2.0
}

rule "well_gem_cost_scale" {
  scale_float = 6
  inverse     = true
}

rule "keepsake_activations" {
  hardcode = ["2", "2"]
}

rule "base_health" {
  disabled = true
}

rule "godmode_base_scale" {
  godmode {
    start_pct = 0.5
    end_pct   = 0.1
    steps     = 20
  }
}

rule "fishing_chance" {
  fishing {
    min_chance = 0.5
    min_rooms  = 2
  }
}
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	require.NotNil(t, cfg.Flags)
	assert.Equal(t, "templates", cfg.Flags.TemplateDir)
	assert.Equal(t, "/games/Hades/Content", cfg.Flags.DestDir)
	assert.Equal(t, []string{"**/*.bak"}, cfg.Flags.Ignore)
	require.Len(t, cfg.Rules, 6)

	table, err := cfg.BuildTable()
	require.NoError(t, err)

	rule, err := table.Lookup("damage_scale")
	require.NoError(t, err)
	got, err := rule.Apply("damage_scale", "100")
	require.NoError(t, err)
	assert.Equal(t, "200", got, "override replaces the built-in factor")

	rule, err = table.Lookup("well_gem_cost_scale")
	require.NoError(t, err)
	got, err = rule.Apply("well_gem_cost_scale", "3")
	require.NoError(t, err)
	assert.Equal(t, "0.500000", got)

	rule, err = table.Lookup("godmode_base_scale")
	require.NoError(t, err)
	got, err = rule.Apply("godmode_base_scale", "0.8")
	require.NoError(t, err)
	assert.Equal(t, "0.5", got)

	rule, err = table.Lookup("fishing_chance")
	require.NoError(t, err)
	got, err = rule.Apply("fishing_chance", "0.25")
	require.NoError(t, err)
	assert.Equal(t, "0.5", got)

	// untouched built-in entries survive the overlay
	assert.True(t, table.Has("nectar_qty"))
}

func TestLoad_YAML(t *testing.T) {
	path := writeConfig(t, "cheat.yaml", `
flags:
  dest_dir: /games/Hades/Content
rules:
  - tag: damage_scale
    scale_int: 1.5
  - tag: money_qty
    hardcode: ["999"]
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	require.NotNil(t, cfg.Flags)
	assert.Equal(t, "/games/Hades/Content", cfg.Flags.DestDir)
	require.Len(t, cfg.Rules, 2)

	table, err := cfg.BuildTable()
	require.NoError(t, err)

	rule, err := table.Lookup("money_qty")
	require.NoError(t, err)
	got, err := rule.Apply("money_qty", "30")
	require.NoError(t, err)
	assert.Equal(t, "999", got)
}

func TestLoad_YAMLUnknownField(t *testing.T) {
	path := writeConfig(t, "cheat.yaml", `
rules:
  - tag: damage_scale
    scale_socks: 1.5
`)
	_, err := Load(path)
	require.Error(t, err)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.hcl"))
	require.Error(t, err)
}

func TestBuildTable_NoDefaults(t *testing.T) {
	cfg := &Config{
		Flags: &FlagsBlock{NoDefaults: true},
		Rules: []*RuleBlock{
			{Tag: "damage_scale", Hardcode: []string{"5"}},
		},
	}

	table, err := cfg.BuildTable()
	require.NoError(t, err)
	assert.Equal(t, 1, table.Len())
	assert.False(t, table.Has("nectar_qty"))
}

func TestBuildTable_Validation(t *testing.T) {
	scale := 2.0

	tests := []struct {
		name      string
		block     *RuleBlock
		wantError string
	}{
		{
			name:      "two_payloads",
			block:     &RuleBlock{Tag: "x", ScaleInt: &scale, Hardcode: []string{"1"}},
			wantError: "more than one payload",
		},
		{
			name:      "no_payload",
			block:     &RuleBlock{Tag: "x"},
			wantError: "no payload",
		},
		{
			name:      "godmode_zero_steps",
			block:     &RuleBlock{Tag: "x", GodMode: &GodModeBlock{StartPct: 0.6, EndPct: 0, Steps: 0}},
			wantError: "steps must be positive",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &Config{Rules: []*RuleBlock{tt.block}}
			_, err := cfg.BuildTable()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantError)
		})
	}
}

func TestBuildTable_ExplicitZeroPrecision(t *testing.T) {
	scale := 2.0
	zero := 0
	cfg := &Config{
		Rules: []*RuleBlock{
			{Tag: "damage_scale_float", ScaleFloat: &scale, Precision: &zero},
		},
	}

	table, err := cfg.BuildTable()
	require.NoError(t, err)

	rule, err := table.Lookup("damage_scale_float")
	require.NoError(t, err)

	got, err := rule.Apply("damage_scale_float", "1.5")
	require.NoError(t, err)
	assert.Equal(t, "3", got, "precision 0 must render whole numbers, not fall back to the default")
}

func TestBuildTable_DisabledPinsExistingRule(t *testing.T) {
	cfg := &Config{
		Rules: []*RuleBlock{
			{Tag: "damage_scale", Disabled: true},
		},
	}

	table, err := cfg.BuildTable()
	require.NoError(t, err)

	rule, err := table.Lookup("damage_scale")
	require.NoError(t, err)

	got, err := rule.Apply("damage_scale", "100")
	require.NoError(t, err)
	assert.Equal(t, "100", got)
	assert.Equal(t, "Scale by 1.3 (disabled, using defaults)", rule.Describe())
}
