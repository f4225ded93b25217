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

package text

import (
	"context"
	"io"
	"regexp"
)

// 🎯 viewportPattern matches an @viewport at-rule token in any case.
// Submatch 1 is the rule name as written.
var viewportPattern = regexp.MustCompile(`(?i)@(viewport)`)

// 🔄 ReplacementRule defines a single text replacement operation
type ReplacementRule struct {
	// Name identifies the rule in logs
	Name string

	// Pattern matches the text to replace, submatch 1 is carried over into the replacement
	Pattern *regexp.Regexp

	// ToText is written verbatim in front of submatch 1
	ToText string
}

// ViewportRule rewrites @viewport to @-<vendor>-viewport, keeping the casing of viewport.
func ViewportRule(vendor string) ReplacementRule {
	return ReplacementRule{
		Name:    "viewport",
		Pattern: viewportPattern,
		ToText:  "@-" + vendor + "-",
	}
}

// ReplacementResult contains the results of a text replacement operation
type ReplacementResult struct {
	// WasModified indicates if any replacements were made
	WasModified bool

	// ReplacementCount is the number of replacements made
	ReplacementCount int

	// ChangedLines holds the 1-based numbers of the lines that were rewritten
	ChangedLines []int

	// OriginalContent is the content before replacements
	OriginalContent []byte

	// ModifiedContent is the content after replacements
	ModifiedContent []byte
}

// TextReplacer defines the interface for text replacement operations
type TextReplacer interface {
	// ReplaceText applies a set of replacement rules to the content
	// Returns a ReplacementResult containing the modified content and metadata
	ReplaceText(ctx context.Context, content io.Reader, rules []ReplacementRule) (*ReplacementResult, error)

	// ValidateRules checks that all rules are valid
	ValidateRules(rules []ReplacementRule) error
}
