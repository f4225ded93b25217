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

// Package operation runs the walk, filter and rewrite pipeline over a directory tree
package operation

import (
	"context"

	"github.com/walteh/viewport-prefix/pkg/config"
	"github.com/walteh/viewport-prefix/pkg/match"
	"github.com/walteh/viewport-prefix/pkg/rewrite"
	"github.com/walteh/viewport-prefix/pkg/text"
	"gitlab.com/tozd/go/errors"
)

// 🎯 Operation is a unit of work run by an OperationRunner
type Operation interface {
	// Name identifies the operation in logs
	Name() string
	// Execute runs the operation to completion or until the first error
	Execute(ctx context.Context) error
}

// 🔍 PathMatcher selects the files to rewrite
type PathMatcher interface {
	Match(path string) bool
}

// ✏️ FileRewriter rewrites a single file in place
type FileRewriter interface {
	RewriteFile(ctx context.Context, path string) (*rewrite.FileResult, error)
}

// 🔧 Options contains everything a prefix operation needs
type Options struct {
	// Config is the validated run configuration
	Config *config.Config
	// Matcher selects files by path
	Matcher PathMatcher
	// Rewriter rewrites the selected files
	Rewriter FileRewriter
}

// 🏭 NewFromConfig validates cfg and wires the default matcher, replacer and rewriter
func NewFromConfig(cfg *config.Config) (*PrefixOperation, error) {
	if cfg == nil {
		return nil, errors.Errorf("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Errorf("validating config: %w", err)
	}

	matcher, err := match.New(match.DefaultPattern)
	if err != nil {
		return nil, errors.Errorf("creating matcher: %w", err)
	}

	rewriter, err := rewrite.New(rewrite.Options{
		Replacer: text.NewLineTextReplacer(),
		Rules:    []text.ReplacementRule{text.ViewportRule(cfg.Vendor)},
	})
	if err != nil {
		return nil, errors.Errorf("creating rewriter: %w", err)
	}

	return NewPrefixOperation(Options{
		Config:   cfg,
		Matcher:  matcher,
		Rewriter: rewriter,
	})
}
