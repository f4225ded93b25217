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

package rewrite

import (
	"bytes"
	"context"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"
	"github.com/walteh/viewport-prefix/pkg/text"
	"gitlab.com/tozd/go/errors"
)

// 🔧 Options configures a Rewriter
type Options struct {
	// Replacer transforms file content
	Replacer text.TextReplacer
	// Rules are applied to every file
	Rules []text.ReplacementRule
}

// ✏️ Rewriter applies replacement rules to files in place
type Rewriter struct {
	replacer text.TextReplacer
	rules    []text.ReplacementRule
}

// 📄 FileResult describes what happened to one file
type FileResult struct {
	Path         string // Path as given to RewriteFile
	Replacements int    // Number of replacements made
	ChangedLines []int  // 1-based line numbers that changed
	Modified     bool   // Whether the file was written
}

// 🏭 New creates a rewriter, validating the rules up front
func New(opts Options) (*Rewriter, error) {
	if opts.Replacer == nil {
		return nil, errors.Errorf("replacer is required")
	}
	if err := opts.Replacer.ValidateRules(opts.Rules); err != nil {
		return nil, errors.Errorf("validating rules: %w", err)
	}
	return &Rewriter{
		replacer: opts.Replacer,
		rules:    opts.Rules,
	}, nil
}

// 🔄 RewriteFile reads path, applies the rules and replaces the file if anything changed.
// The new content is written to a temp file next to the target and renamed over it,
// so a failed write leaves the original untouched.
func (r *Rewriter) RewriteFile(ctx context.Context, path string) (*FileResult, error) {
	logger := zerolog.Ctx(ctx).With().Str("file", path).Logger()

	target, err := filepath.EvalSymlinks(path)
	if err != nil {
		return nil, errors.Errorf("resolving %s: %w", path, err)
	}

	info, err := os.Stat(target)
	if err != nil {
		return nil, errors.Errorf("stat %s: %w", path, err)
	}

	content, err := os.ReadFile(target)
	if err != nil {
		return nil, errors.Errorf("reading %s: %w", path, err)
	}

	result, err := r.replacer.ReplaceText(ctx, bytes.NewReader(content), r.rules)
	if err != nil {
		return nil, errors.Errorf("replacing text in %s: %w", path, err)
	}

	res := &FileResult{
		Path:         path,
		Replacements: result.ReplacementCount,
		ChangedLines: result.ChangedLines,
	}

	if !result.WasModified {
		logger.Debug().Msg("no replacements")
		return res, nil
	}

	if err := WriteFileAtomic(target, result.ModifiedContent, info.Mode().Perm()); err != nil {
		return nil, errors.Errorf("writing %s: %w", path, err)
	}
	res.Modified = true

	logger.Debug().
		Int("replacements", res.Replacements).
		Ints("lines", res.ChangedLines).
		Msg("file rewritten")

	return res, nil
}

// 💾 WriteFileAtomic replaces path with content via a temp file in the same directory.
func WriteFileAtomic(path string, content []byte, perm os.FileMode) (err error) {
	dir, base := filepath.Split(path)
	if dir == "" {
		dir = "."
	}

	tmp, err := os.CreateTemp(dir, "."+base+".*.tmp")
	if err != nil {
		return errors.Errorf("creating temporary file: %w", err)
	}
	tmpPath := tmp.Name()

	defer func() {
		if err != nil {
			_ = tmp.Close()
			_ = os.Remove(tmpPath) // Clean up temp file
		}
	}()

	if _, err = tmp.Write(content); err != nil {
		return errors.Errorf("writing temporary file: %w", err)
	}
	if err = tmp.Chmod(perm); err != nil {
		return errors.Errorf("setting permissions: %w", err)
	}
	if err = tmp.Sync(); err != nil {
		return errors.Errorf("syncing temporary file: %w", err)
	}
	if err = tmp.Close(); err != nil {
		return errors.Errorf("closing temporary file: %w", err)
	}

	// Rename temporary file to target
	if err = os.Rename(tmpPath, path); err != nil {
		return errors.Errorf("renaming temporary file: %w", err)
	}

	return nil
}
