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

package operation

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"

	"github.com/natefinch/atomic"
	"github.com/rs/zerolog"
	"github.com/walteh/cheatrc/pkg/rules"
	"github.com/walteh/cheatrc/pkg/text"
	"gitlab.com/tozd/go/errors"
)

// 📊 FileResult records what processing one template produced
type FileResult struct {
	Dest    string // destination path written
	Charset string // detected character set of the source
	Macros  int    // number of macro substitutions made
}

// 📄 ProcessFile converts one template into one destination file. It
// decodes the source, resolves every macro span against the rule table,
// re-encodes with the original charset/BOM, and writes atomically so a
// crash mid-write never leaves a half-written file in the live game
// directory. The source is never modified.
func ProcessFile(ctx context.Context, src, dst string, table *rules.Table) (*FileResult, error) {
	raw, err := os.ReadFile(src)
	if err != nil {
		return nil, errors.Errorf("reading template: %w", err)
	}

	doc, err := text.Detect(raw)
	if err != nil {
		return nil, errors.Errorf("detecting encoding of %s: %w", src, err)
	}

	zerolog.Ctx(ctx).Debug().
		Str("src", src).
		Str("charset", doc.Charset).
		Msg("decoded template")

	lines := text.SplitLines(doc.Text)
	count := 0
	for i, line := range lines {
		m, ok := text.FindMacro(line)
		if !ok {
			continue
		}
		rule, err := table.Lookup(m.Tag)
		if err != nil {
			return nil, errors.Errorf("%s:%d: %w", src, i+1, err)
		}
		value, err := rule.Apply(m.Tag, m.Default)
		if err != nil {
			return nil, errors.Errorf("%s:%d: %w", src, i+1, err)
		}
		lines[i] = m.Splice(line, value)
		count++
	}

	encoded, err := doc.Encode(strings.Join(lines, ""))
	if err != nil {
		return nil, errors.Errorf("%s: %w", src, err)
	}

	if err := os.MkdirAll(filepath.Dir(dst), 0o755); err != nil {
		return nil, errors.Errorf("creating destination directory: %w", err)
	}
	if err := atomic.WriteFile(dst, bytes.NewReader(encoded)); err != nil {
		return nil, errors.Errorf("writing %s: %w", dst, err)
	}

	return &FileResult{
		Dest:    dst,
		Charset: doc.Charset,
		Macros:  count,
	}, nil
}
