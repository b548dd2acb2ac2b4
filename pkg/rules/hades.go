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

// 🎮 DefaultTable returns the stock tuning set shipped with the tool.
// The numbers are configuration, not engineering; adjust freely or
// override individual tags via a cheat file.
func DefaultTable() *Table {
	// Stock defaults: 0.8 base, no floor
	godmode := GodMode(0.6, 0, 30)

	// Stock chances range 0.07-0.30 per zone, 1-10 rooms between spots
	fishing := Fishing(1, 1)

	t := NewTable()

	// Direct buffs
	t.Add("damage_scale", ScaleInt(1.3))
	t.Add("damage_scale_float", ScaleFloat(1.3))
	// Health - default: 50
	t.Add("base_health", Disabled(Hardcode("100")))

	// Commerce scaling. Well of Charon prices are per-item with
	// randomized quantities, so quantity scales up while the per-item
	// cost scales down by the same factor.
	t.Add("well_darkness_scale", ScaleInt(4))
	t.Add("well_darkness_cost_scale", ScaleFloatInverse(4))
	t.Add("well_gem_scale", ScaleInt(6))
	t.Add("well_gem_cost_scale", ScaleFloatInverse(6))
	// "super" is Diamonds and Titan Blood
	t.Add("shop_cost_scale", ScaleInt(0.5))
	t.Add("super_shop_cost_scale", ScaleInt(0.25))

	// Quantity overrides (tends to affect both shops and drops)
	t.Add("health_qty", Hardcode("20"))
	t.Add("maxhealth_qty", Hardcode("30"))
	t.Add("money_qty", Hardcode("400"))
	t.Add("money_minor_qty", Hardcode("80"))
	t.Add("gems_extra_money_qty", Hardcode("60"))
	t.Add("darkness_reward_qty", Hardcode("500"))
	t.Add("shop_darkness_qty", Hardcode("200"))
	// Boss rewards - defaults: 50, 100, 150, 250
	t.Add("boss_darkness_scale", ScaleInt(10))
	t.Add("various_gems_qty", Hardcode("200"))
	t.Add("nectar_qty", Hardcode("10"))
	t.Add("ambrosia_qty", Hardcode("10"))
	t.Add("keys_qty", Hardcode("10"))
	t.Add("diamonds_qty", Hardcode("10"))
	t.Add("titan_blood_qty", Hardcode("10"))

	// Fishing
	t.Add("fishing_max_fakes", Hardcode("0"))
	t.Add("fishing_perfect_interval", Hardcode("0.64"))
	t.Add("fishing_chance", fishing)
	t.Add("fishing_room_space", fishing)

	// God Mode
	t.Add("godmode_base_scale", godmode)
	t.Add("godmode_per_death", godmode)
	t.Add("godmode_death_cap", godmode)

	// Keepsakes - default: '25, 50'. The scanner only supports one
	// macro span per line, hence the two-value hardcode.
	t.Add("keepsake_activations", Hardcode("2", "2"))

	// Charon shoplift opportunity - default: 0.22
	t.Add("charon_shoplift_chance", Hardcode("1"))

	return t
}
