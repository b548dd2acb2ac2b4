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

package rules

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"gitlab.com/tozd/go/errors"
)

// 🎯 Rule transforms a macro's default value into the output value.
// Apply receives the macro tag as well, since some rules are bound to
// several tags at once and branch on the name.
type Rule interface {
	// Apply computes the replacement text for the given tag/default pair
	Apply(tag, def string) (string, error)

	// Describe returns a one-line description of the rule's effect,
	// independent of any specific input
	Describe() string
}

// 🔢 ScaleIntRule multiplies an integer default by a fixed factor and
// emits the result rounded half-up, as an integer literal.
type ScaleIntRule struct {
	Factor float64
}

// 🏭 ScaleInt creates a ScaleIntRule
func ScaleInt(factor float64) *ScaleIntRule {
	return &ScaleIntRule{Factor: factor}
}

// 🏭 ScaleIntInverse creates a ScaleIntRule that scales down by factor
func ScaleIntInverse(factor float64) *ScaleIntRule {
	return &ScaleIntRule{Factor: 1 / factor}
}

func (r *ScaleIntRule) Apply(tag, def string) (string, error) {
	n, err := strconv.Atoi(strings.TrimSpace(def))
	if err != nil {
		return "", errors.Errorf("macro %q: %w: parsing %q as integer", tag, ErrBadValue, def)
	}
	return strconv.Itoa(roundHalfUp(float64(n) * r.Factor)), nil
}

func (r *ScaleIntRule) Describe() string {
	return "Scale by " + formatTrimmed(r.Factor)
}

// 🔢 ScaleFloatRule multiplies a float default by a fixed factor and
// emits the result with a fixed number of decimal digits.
type ScaleFloatRule struct {
	Factor float64

	// Precision is the number of decimal digits to emit. Zero means
	// DefaultPrecision; negative means whole-number rendering.
	Precision int
}

// 🏭 ScaleFloat creates a ScaleFloatRule with the default precision (6)
func ScaleFloat(factor float64) *ScaleFloatRule {
	return &ScaleFloatRule{Factor: factor, Precision: DefaultPrecision}
}

// 🏭 ScaleFloatInverse creates a ScaleFloatRule that scales down by factor
func ScaleFloatInverse(factor float64) *ScaleFloatRule {
	return &ScaleFloatRule{Factor: 1 / factor, Precision: DefaultPrecision}
}

// DefaultPrecision is the number of decimal digits ScaleFloat emits
// unless configured otherwise.
const DefaultPrecision = 6

func (r *ScaleFloatRule) Apply(tag, def string) (string, error) {
	f, err := strconv.ParseFloat(strings.TrimSpace(def), 64)
	if err != nil {
		return "", errors.Errorf("macro %q: %w: parsing %q as float", tag, ErrBadValue, def)
	}
	return strconv.FormatFloat(f*r.Factor, 'f', r.precision(), 64), nil
}

func (r *ScaleFloatRule) Describe() string {
	return fmt.Sprintf("Scale by %.*f as a float", r.precision(), r.Factor)
}

func (r *ScaleFloatRule) precision() int {
	switch {
	case r.Precision < 0:
		return 0
	case r.Precision == 0:
		return DefaultPrecision
	default:
		return r.Precision
	}
}

// 📌 HardcodeRule ignores the default entirely and emits fixed literals
type HardcodeRule struct {
	Values []string
}

// 🏭 Hardcode creates a HardcodeRule. Multiple values are emitted
// comma-joined ("2, 2"), which is how multi-value lines are overridden
// given that only one macro span per line is supported.
func Hardcode(values ...string) *HardcodeRule {
	return &HardcodeRule{Values: values}
}

func (r *HardcodeRule) Apply(tag, def string) (string, error) {
	return strings.Join(r.Values, ", "), nil
}

func (r *HardcodeRule) Describe() string {
	return "Hardcoded to: " + strings.Join(r.Values, ", ")
}

// 💤 DisabledRule re-emits the original default unchanged. It exists so
// a tag can stay defined and documented without having any effect on
// the current run.
type DisabledRule struct {
	// Inner is the rule this one is standing in for; may be nil
	Inner Rule
}

// 🏭 Disabled wraps a rule into an inert one
func Disabled(inner Rule) *DisabledRule {
	return &DisabledRule{Inner: inner}
}

func (r *DisabledRule) Apply(tag, def string) (string, error) {
	return def, nil
}

func (r *DisabledRule) Describe() string {
	if r.Inner == nil {
		return "Always use default"
	}
	return r.Inner.Describe() + " (disabled, using defaults)"
}

// ⚔️ GodModeRule drives the game's damage-reduction config. Bind one
// instance to all three tags it understands:
//
//	godmode_base_scale - base damage scaling
//	godmode_per_death  - scaling change per death
//	godmode_death_cap  - number of deaths until the floor is reached
type GodModeRule struct {
	StartPct float64
	EndPct   float64
	Steps    int
}

// 🏭 GodMode creates a GodModeRule. startPct is the base damage scaling
// and endPct the final scaling after dying steps times.
func GodMode(startPct, endPct float64, steps int) *GodModeRule {
	return &GodModeRule{StartPct: startPct, EndPct: endPct, Steps: steps}
}

func (r *GodModeRule) Apply(tag, def string) (string, error) {
	switch tag {
	case "godmode_base_scale":
		return formatTrimmed(r.StartPct), nil
	case "godmode_per_death":
		if r.Steps <= 0 {
			return "", errors.Errorf("god mode needs at least one step, got %d", r.Steps)
		}
		step := (r.EndPct - r.StartPct) / float64(r.Steps)
		return formatTrimmed(roundTo(step, DefaultPrecision)), nil
	case "godmode_death_cap":
		return strconv.Itoa(r.Steps), nil
	default:
		return "", errors.Errorf("god mode rule bound to unexpected macro %q", tag)
	}
}

func (r *GodModeRule) Describe() string {
	return fmt.Sprintf("God Mode from %d%% -> %d%%, with %d steps",
		int(r.StartPct*100),
		int(r.EndPct*100),
		r.Steps,
	)
}

// 🎣 FishingRule tunes fishing-point spawns. It reads the default so it
// never makes a chance worse than stock: a zone whose stock chance beats
// MinChance keeps its stock value. Bind one instance to both tags:
//
//	fishing_chance    - spawn chance per zone
//	fishing_room_space - minimum rooms between fishing spots
type FishingRule struct {
	MinChance float64
	MinRooms  int
}

// 🏭 Fishing creates a FishingRule
func Fishing(minChance float64, minRooms int) *FishingRule {
	return &FishingRule{MinChance: minChance, MinRooms: minRooms}
}

func (r *FishingRule) Apply(tag, def string) (string, error) {
	switch tag {
	case "fishing_chance":
		f, err := strconv.ParseFloat(strings.TrimSpace(def), 64)
		if err != nil {
			return "", errors.Errorf("macro %q: %w: parsing %q as float", tag, ErrBadValue, def)
		}
		return formatTrimmed(math.Max(f, r.MinChance)), nil
	case "fishing_room_space":
		n, err := strconv.Atoi(strings.TrimSpace(def))
		if err != nil {
			return "", errors.Errorf("macro %q: %w: parsing %q as integer", tag, ErrBadValue, def)
		}
		return strconv.Itoa(min(n, r.MinRooms)), nil
	default:
		return "", errors.Errorf("fishing rule bound to unexpected macro %q", tag)
	}
}

func (r *FishingRule) Describe() string {
	return fmt.Sprintf("Fishing Minimum Chance: %d%%, Space Between Rooms: %d",
		int(r.MinChance*100),
		r.MinRooms,
	)
}

// roundHalfUp rounds with .5 always going up, which is what the game's
// tuning values expect (math.Round would do the same for positives, but
// this keeps the intent explicit for negative scales).
func roundHalfUp(v float64) int {
	return int(math.Floor(v + 0.5))
}

// roundTo rounds v to the given number of decimal digits
func roundTo(v float64, digits int) float64 {
	pow := math.Pow(10, float64(digits))
	return math.Round(v*pow) / pow
}

// formatTrimmed renders a float without trailing zeros ("0.6", "1")
func formatTrimmed(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
