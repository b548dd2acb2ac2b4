// Copyright 2025 walteh LLC
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package config

import (
	"bytes"
	"os"
	"strings"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/walteh/cheatrc/pkg/rules"
	"github.com/zclconf/go-cty/cty"
	"gitlab.com/tozd/go/errors"
	"gopkg.in/yaml.v3"
)

// 📝 Config is a cheat file: run flags plus rule overrides layered on
// top of the built-in table
type Config struct {
	// 🔧 Flags block
	Flags *FlagsBlock `hcl:"flags,block" yaml:"flags,omitempty"`
	// 📝 Rule overrides
	Rules []*RuleBlock `hcl:"rule,block" yaml:"rules,omitempty"`
}

type FlagsBlock struct {
	TemplateDir string   `hcl:"template_dir,optional" yaml:"template_dir,omitempty"`
	DestDir     string   `hcl:"dest_dir,optional" yaml:"dest_dir,omitempty"`
	Ignore      []string `hcl:"ignore,optional" yaml:"ignore,omitempty"`
	// NoDefaults starts from an empty table instead of the built-in one
	NoDefaults bool `hcl:"no_defaults,optional" yaml:"no_defaults,omitempty"`
}

// 📝 Individual rule override. Exactly one payload must be set
// (hardcode / scale_int / scale_float / godmode / fishing), or
// disabled alone to pin a tag to its defaults. For scale_float,
// precision is optional and an explicit 0 renders whole numbers.
type RuleBlock struct {
	Tag        string        `hcl:"tag,label" yaml:"tag"`
	Hardcode   []string      `hcl:"hardcode,optional" yaml:"hardcode,omitempty"`
	ScaleInt   *float64      `hcl:"scale_int,optional" yaml:"scale_int,omitempty"`
	ScaleFloat *float64      `hcl:"scale_float,optional" yaml:"scale_float,omitempty"`
	Precision  *int          `hcl:"precision,optional" yaml:"precision,omitempty"`
	Inverse    bool          `hcl:"inverse,optional" yaml:"inverse,omitempty"`
	Disabled   bool          `hcl:"disabled,optional" yaml:"disabled,omitempty"`
	GodMode    *GodModeBlock `hcl:"godmode,block" yaml:"godmode,omitempty"`
	Fishing    *FishingBlock `hcl:"fishing,block" yaml:"fishing,omitempty"`
}

type GodModeBlock struct {
	StartPct float64 `hcl:"start_pct" yaml:"start_pct"`
	EndPct   float64 `hcl:"end_pct" yaml:"end_pct"`
	Steps    int     `hcl:"steps" yaml:"steps"`
}

type FishingBlock struct {
	MinChance float64 `hcl:"min_chance" yaml:"min_chance"`
	MinRooms  int     `hcl:"min_rooms" yaml:"min_rooms"`
}

// 📝 Load reads a cheat file (supports YAML and HCL, by extension)
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Errorf("reading cheat file: %w", err)
	}

	if strings.HasSuffix(path, ".yaml") || strings.HasSuffix(path, ".yml") {
		var cfg Config
		decoder := yaml.NewDecoder(bytes.NewReader(data))
		decoder.KnownFields(true)
		if err := decoder.Decode(&cfg); err != nil {
			return nil, errors.Errorf("parsing YAML: %w", err)
		}
		return &cfg, nil
	}

	parser := hclparse.NewParser()
	hclFile, diags := parser.ParseHCL(data, path)
	if diags.HasErrors() {
		return nil, errors.Errorf("parsing HCL: %s", diags.Error())
	}

	ctx := &hcl.EvalContext{
		Variables: map[string]cty.Value{},
	}

	var cfg Config
	diags = gohcl.DecodeBody(hclFile.Body, ctx, &cfg)
	if diags.HasErrors() {
		return nil, errors.Errorf("decoding HCL: %s", diags.Error())
	}

	return &cfg, nil
}

// 🔨 BuildTable layers the config's rule overrides on top of the
// built-in table (or an empty one when no_defaults is set)
func (cfg *Config) BuildTable() (*rules.Table, error) {
	table := rules.DefaultTable()
	if cfg.Flags != nil && cfg.Flags.NoDefaults {
		table = rules.NewTable()
	}

	for _, block := range cfg.Rules {
		rule, err := block.build(table)
		if err != nil {
			return nil, err
		}
		table.Add(block.Tag, rule)
	}
	return table, nil
}

func (b *RuleBlock) build(table *rules.Table) (rules.Rule, error) {
	var built rules.Rule
	payloads := 0

	if len(b.Hardcode) > 0 {
		built = rules.Hardcode(b.Hardcode...)
		payloads++
	}
	if b.ScaleInt != nil {
		if b.Inverse {
			built = rules.ScaleIntInverse(*b.ScaleInt)
		} else {
			built = rules.ScaleInt(*b.ScaleInt)
		}
		payloads++
	}
	if b.ScaleFloat != nil {
		var r *rules.ScaleFloatRule
		if b.Inverse {
			r = rules.ScaleFloatInverse(*b.ScaleFloat)
		} else {
			r = rules.ScaleFloat(*b.ScaleFloat)
		}
		if b.Precision != nil {
			if *b.Precision <= 0 {
				r.Precision = -1
			} else {
				r.Precision = *b.Precision
			}
		}
		built = r
		payloads++
	}
	if b.GodMode != nil {
		if b.GodMode.Steps <= 0 {
			return nil, errors.Errorf("rule %q: godmode steps must be positive", b.Tag)
		}
		built = rules.GodMode(b.GodMode.StartPct, b.GodMode.EndPct, b.GodMode.Steps)
		payloads++
	}
	if b.Fishing != nil {
		built = rules.Fishing(b.Fishing.MinChance, b.Fishing.MinRooms)
		payloads++
	}

	if payloads > 1 {
		return nil, errors.Errorf("rule %q: more than one payload set", b.Tag)
	}
	if payloads == 0 && !b.Disabled {
		return nil, errors.Errorf("rule %q: no payload set", b.Tag)
	}

	if b.Disabled {
		// disabled with no payload pins an existing rule (or, for a new
		// tag, just echoes defaults)
		if built == nil {
			if existing, err := table.Lookup(b.Tag); err == nil {
				return rules.Disabled(existing), nil
			}
			return rules.Disabled(nil), nil
		}
		return rules.Disabled(built), nil
	}
	return built, nil
}
