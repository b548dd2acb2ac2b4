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
	"context"
	"path/filepath"

	"github.com/walteh/cheatrc/pkg/log"
	"github.com/walteh/cheatrc/pkg/rules"
	"gitlab.com/tozd/go/errors"
)

// 🔧 Options configures a whole run
type Options struct {
	TemplateDir string       // directory to read templates from
	DestDir     string       // directory to write processed files into
	Ignore      []string     // doublestar globs of templates to skip
	Table       *rules.Table // immutable tag -> rule registry
}

// 🏃 Run processes every template under TemplateDir into DestDir,
// strictly sequentially, aborting on the first error. Files written
// before a failure stay on disk; there is no rollback, since every
// successfully written file is complete and correct on its own.
func Run(ctx context.Context, opts Options) error {
	logger := log.FromContext(ctx)

	files, err := Walk(opts.TemplateDir, opts.Ignore)
	if err != nil {
		return err
	}

	for _, rel := range files {
		src := filepath.Join(opts.TemplateDir, filepath.FromSlash(rel))
		dst := filepath.Join(opts.DestDir, filepath.FromSlash(rel))

		result, err := ProcessFile(ctx, src, dst, opts.Table)
		if err != nil {
			return errors.Errorf("processing %s: %w", rel, err)
		}

		logger.LogFileOperation(ctx, log.FileOperation{
			Path:    rel,
			Charset: result.Charset,
			Macros:  result.Macros,
		})
	}

	processed, macros := logger.Totals()
	logger.Successf("Processed %d templates, %d substitutions", processed, macros)
	return nil
}
