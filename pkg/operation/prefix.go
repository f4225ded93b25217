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

	"github.com/rs/zerolog"
	"github.com/walteh/viewport-prefix/pkg/log"
	"github.com/walteh/viewport-prefix/pkg/tree"
	"gitlab.com/tozd/go/errors"
)

// 📦 PrefixOperation rewrites @viewport rules in every selected file below the configured root.
// Files are handled one at a time and the first error stops the run.
type PrefixOperation struct {
	opts    Options
	summary log.Summary
}

// 📦 NewPrefixOperation creates a new prefix operation
func NewPrefixOperation(opts Options) (*PrefixOperation, error) {
	if opts.Config == nil {
		return nil, errors.Errorf("config is required")
	}
	if opts.Matcher == nil {
		return nil, errors.Errorf("matcher is required")
	}
	if opts.Rewriter == nil {
		return nil, errors.Errorf("rewriter is required")
	}
	return &PrefixOperation{opts: opts}, nil
}

// Name implements Operation.Name
func (op *PrefixOperation) Name() string {
	return "prefix"
}

// Summary returns the counters of the last Execute
func (op *PrefixOperation) Summary() log.Summary {
	return op.summary
}

// 🏃 Execute walks the root, filters paths and rewrites each match in place.
// The user logger is taken from ctx, see log.NewContext.
func (op *PrefixOperation) Execute(ctx context.Context) error {
	cfg := op.opts.Config
	logger := zerolog.Ctx(ctx)
	userLogger := log.FromContext(ctx)

	op.summary = log.Summary{
		Root:   cfg.Root,
		Vendor: cfg.Vendor,
	}

	for path, err := range tree.Files(ctx, cfg.Root) {
		if err != nil {
			return errors.Errorf("walking %s: %w", cfg.Root, err)
		}
		op.summary.Scanned++

		rel, err := filepath.Rel(cfg.Root, path)
		if err != nil {
			return errors.Errorf("relative path of %s: %w", path, err)
		}

		if !op.opts.Matcher.Match(rel) {
			logger.Trace().Str("file", rel).Msg("skipping file")
			continue
		}
		op.summary.Matched++

		res, err := op.opts.Rewriter.RewriteFile(ctx, path)
		if err != nil {
			return errors.Errorf("rewriting %s: %w", rel, err)
		}

		if res.Modified {
			op.summary.Modified++
		}
		op.summary.Replacements += res.Replacements

		userLogger.LogFileOperation(ctx, log.FileOperation{
			Path:         rel,
			Replacements: res.Replacements,
			IsModified:   res.Modified,
		})
	}

	return nil
}
