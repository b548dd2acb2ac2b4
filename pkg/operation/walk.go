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
	"io/fs"
	"path/filepath"

	"github.com/bmatcuk/doublestar/v4"
	"gitlab.com/tozd/go/errors"
)

// 🚶 Walk enumerates template files under templateDir, as relative
// slash-separated paths in lexical order. Paths matching any ignore
// glob (doublestar syntax, matched against the relative path) are
// skipped.
func Walk(templateDir string, ignore []string) ([]string, error) {
	var files []string
	err := filepath.WalkDir(templateDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		rel, err := filepath.Rel(templateDir, path)
		if err != nil {
			return err
		}
		rel = filepath.ToSlash(rel)

		skip, err := shouldIgnore(rel, ignore)
		if err != nil {
			return err
		}
		if skip {
			return nil
		}
		files = append(files, rel)
		return nil
	})
	if err != nil {
		return nil, errors.Errorf("walking template directory %s: %w", templateDir, err)
	}
	return files, nil
}

func shouldIgnore(rel string, ignore []string) (bool, error) {
	for _, pattern := range ignore {
		matched, err := doublestar.Match(pattern, rel)
		if err != nil {
			return false, errors.Errorf("matching ignore pattern %q: %w", pattern, err)
		}
		if matched {
			return true, nil
		}
	}
	return false, nil
}
