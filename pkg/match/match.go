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

// Package match selects which walked files get rewritten.
package match

import (
	"path/filepath"

	"github.com/bmatcuk/doublestar/v4"
	"gitlab.com/tozd/go/errors"
)

// DefaultPattern selects HTML, JavaScript and CSS files at any depth.
// Matching is case-sensitive, so a.CSS is not selected.
const DefaultPattern = "**/*.{html,js,css}"

// 🎯 Matcher reports whether a path matches one of its include patterns
type Matcher struct {
	patterns []string
}

// 🏭 New creates a matcher for the given doublestar patterns
func New(patterns ...string) (*Matcher, error) {
	if len(patterns) == 0 {
		return nil, errors.Errorf("at least one include pattern is required")
	}
	for _, p := range patterns {
		if !doublestar.ValidatePattern(p) {
			return nil, errors.Errorf("invalid include pattern %q", p)
		}
	}
	return &Matcher{patterns: patterns}, nil
}

// 🔍 Match checks if path is selected by any include pattern
func (m *Matcher) Match(path string) bool {
	path = filepath.ToSlash(filepath.Clean(path))
	for _, pattern := range m.patterns {
		// patterns were validated in New
		if matched, _ := doublestar.Match(pattern, path); matched {
			return true
		}
	}
	return false
}
