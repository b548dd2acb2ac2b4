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
	"gitlab.com/tozd/go/errors"
)

var (
	// ErrUnknownMacro means a template contains a tag the table has no
	// entry for. The template set and the table have drifted apart, so
	// any output produced from here would be suspect.
	ErrUnknownMacro = errors.Base("unknown macro tag")

	// ErrBadValue means a default value could not be parsed as the
	// numeric type a rule expects
	ErrBadValue = errors.Base("bad default value")
)

// 📋 Entry is a single (tag, description) pair from the table listing
type Entry struct {
	Tag         string
	Description string
}

// 📚 Table is the tag -> Rule registry. It preserves insertion order so
// listings are reproducible across runs. Build it once at startup and
// treat it as read-only afterwards.
type Table struct {
	order []string
	rules map[string]Rule
}

// 🏭 NewTable creates an empty rule table
func NewTable() *Table {
	return &Table{
		rules: map[string]Rule{},
	}
}

// ➕ Add registers a rule under the given tag. Re-adding a tag replaces
// the rule but keeps its original position in the listing.
func (t *Table) Add(tag string, rule Rule) *Table {
	if _, ok := t.rules[tag]; !ok {
		t.order = append(t.order, tag)
	}
	t.rules[tag] = rule
	return t
}

// 🔍 Lookup resolves a tag to its rule
func (t *Table) Lookup(tag string) (Rule, error) {
	rule, ok := t.rules[tag]
	if !ok {
		return nil, errors.Errorf("%w: %q", ErrUnknownMacro, tag)
	}
	return rule, nil
}

// Has reports whether the table has an entry for tag
func (t *Table) Has(tag string) bool {
	_, ok := t.rules[tag]
	return ok
}

// 📝 Describe returns every configured rule as (tag, description) pairs,
// in insertion order
func (t *Table) Describe() []Entry {
	entries := make([]Entry, 0, len(t.order))
	for _, tag := range t.order {
		entries = append(entries, Entry{
			Tag:         tag,
			Description: t.rules[tag].Describe(),
		})
	}
	return entries
}

// Len returns the number of configured rules
func (t *Table) Len() int {
	return len(t.order)
}
