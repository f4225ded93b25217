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

// Package tree enumerates every file below a directory.
package tree

import (
	"context"
	"io/fs"
	"iter"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"
	"gitlab.com/tozd/go/errors"
)

// 🌳 Files lazily yields every file below root, hidden ones included.
// Paths are joined onto root as given. Symlinks to directories are not followed.
// A directory that cannot be read ends the sequence with an error.
func Files(ctx context.Context, root string) iter.Seq2[string, error] {
	return func(yield func(string, error) bool) {
		logger := zerolog.Ctx(ctx)

		err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return errors.Errorf("walking %s: %w", path, err)
			}
			if err := ctx.Err(); err != nil {
				return errors.Errorf("walking %s: %w", path, err)
			}

			if d.IsDir() {
				logger.Trace().Str("dir", path).Msg("entering directory")
				return nil
			}

			if d.Type()&fs.ModeSymlink != 0 {
				if info, statErr := os.Stat(path); statErr == nil && info.IsDir() {
					logger.Debug().Str("path", path).Msg("not following directory symlink")
					return nil
				}
			}

			if !yield(path, nil) {
				return filepath.SkipAll
			}
			return nil
		})
		if err != nil {
			yield("", err)
		}
	}
}
