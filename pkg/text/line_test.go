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
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLineTextReplacer_ReplaceText(t *testing.T) {
	tests := []struct {
		name         string
		content      string
		vendor       string
		want         string
		wantCount    int
		wantLines    []int
		wantModified bool
	}{
		{
			name:         "css_rule",
			content:      "@viewport { width: device-width; }",
			vendor:       "moz",
			want:         "@-moz-viewport { width: device-width; }",
			wantCount:    1,
			wantLines:    []int{1},
			wantModified: true,
		},
		{
			name:         "mixed_case_kept",
			content:      "// @VIEWPORT note\n",
			vendor:       "webkit",
			want:         "// @-webkit-VIEWPORT note\n",
			wantCount:    1,
			wantLines:    []int{1},
			wantModified: true,
		},
		{
			name:         "camel_case_kept",
			content:      "@ViewPort{}",
			vendor:       "o",
			want:         "@-o-ViewPort{}",
			wantCount:    1,
			wantLines:    []int{1},
			wantModified: true,
		},
		{
			name:         "several_per_line",
			content:      "@viewport a; @viewport b;",
			vendor:       "ms",
			want:         "@-ms-viewport a; @-ms-viewport b;",
			wantCount:    2,
			wantLines:    []int{1},
			wantModified: true,
		},
		{
			name:         "only_matching_lines_change",
			content:      "body {}\n@viewport {}\nh1 {}\n@viewport {}\n",
			vendor:       "moz",
			want:         "body {}\n@-moz-viewport {}\nh1 {}\n@-moz-viewport {}\n",
			wantCount:    2,
			wantLines:    []int{2, 4},
			wantModified: true,
		},
		{
			name:         "crlf_preserved",
			content:      "@viewport {}\r\nbody {}\r\n",
			vendor:       "moz",
			want:         "@-moz-viewport {}\r\nbody {}\r\n",
			wantCount:    1,
			wantLines:    []int{1},
			wantModified: true,
		},
		{
			name:         "no_trailing_newline",
			content:      "a\n@viewport",
			vendor:       "moz",
			want:         "a\n@-moz-viewport",
			wantCount:    1,
			wantLines:    []int{2},
			wantModified: true,
		},
		{
			name:         "already_prefixed",
			content:      "@-moz-viewport {}",
			vendor:       "moz",
			want:         "@-moz-viewport {}",
			wantModified: false,
		},
		{
			name:         "viewport_without_at",
			content:      "<meta name=\"viewport\">",
			vendor:       "moz",
			want:         "<meta name=\"viewport\">",
			wantModified: false,
		},
		{
			name:         "prefix_of_longer_word",
			content:      "@viewports",
			vendor:       "moz",
			want:         "@-moz-viewports",
			wantCount:    1,
			wantLines:    []int{1},
			wantModified: true,
		},
		{
			name:         "vendor_is_verbatim",
			content:      "@viewport",
			vendor:       "$1 X",
			want:         "@-$1 X-viewport",
			wantCount:    1,
			wantLines:    []int{1},
			wantModified: true,
		},
		{
			name:         "empty_content",
			content:      "",
			vendor:       "moz",
			want:         "",
			wantModified: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			replacer := NewLineTextReplacer()
			result, err := replacer.ReplaceText(
				context.Background(),
				strings.NewReader(tt.content),
				[]ReplacementRule{ViewportRule(tt.vendor)},
			)

			require.NoError(t, err)
			require.NotNil(t, result)
			assert.Equal(t, tt.content, string(result.OriginalContent))
			assert.Equal(t, tt.want, string(result.ModifiedContent))
			assert.Equal(t, tt.wantCount, result.ReplacementCount)
			assert.Equal(t, tt.wantLines, result.ChangedLines)
			assert.Equal(t, tt.wantModified, result.WasModified)
			assert.Equal(t, strings.Count(tt.content, "\n"), strings.Count(string(result.ModifiedContent), "\n"), "line count should be preserved")
		})
	}
}

func TestLineTextReplacer_Idempotent(t *testing.T) {
	content := "@viewport {}\n/* @VIEWPORT */\n@-webkit-viewport {}\n"
	rules := []ReplacementRule{ViewportRule("webkit")}
	replacer := NewLineTextReplacer()

	first, err := replacer.ReplaceText(context.Background(), strings.NewReader(content), rules)
	require.NoError(t, err)
	assert.Equal(t, 2, first.ReplacementCount)

	second, err := replacer.ReplaceText(context.Background(), strings.NewReader(string(first.ModifiedContent)), rules)
	require.NoError(t, err)
	assert.False(t, second.WasModified)
	assert.Equal(t, string(first.ModifiedContent), string(second.ModifiedContent))
}

func TestLineTextReplacer_CanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewLineTextReplacer().ReplaceText(ctx, strings.NewReader("@viewport"), []ReplacementRule{ViewportRule("moz")})
	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestLineTextReplacer_ValidateRules(t *testing.T) {
	tests := []struct {
		name      string
		rules     []ReplacementRule
		wantError string
	}{
		{
			name:  "viewport_rule",
			rules: []ReplacementRule{ViewportRule("moz")},
		},
		{
			name:      "missing_pattern",
			rules:     []ReplacementRule{{ToText: "@-moz-"}},
			wantError: "pattern is required",
		},
		{
			name:      "missing_capture_group",
			rules:     []ReplacementRule{{Pattern: regexp.MustCompile(`@viewport`), ToText: "@-moz-"}},
			wantError: "needs a capture group",
		},
		{
			name:      "missing_to_text",
			rules:     []ReplacementRule{{Pattern: viewportPattern}},
			wantError: "to_text is required",
		},
		{
			name:  "empty_rules",
			rules: []ReplacementRule{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := NewLineTextReplacer().ValidateRules(tt.rules)

			if tt.wantError != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantError)
				return
			}

			require.NoError(t, err)
		})
	}
}

func TestViewportRule(t *testing.T) {
	moz := ViewportRule("moz")
	webkit := ViewportRule("webkit")

	assert.Equal(t, "viewport", moz.Name)
	assert.Equal(t, "@-moz-", moz.ToText)
	assert.Equal(t, "@-webkit-", webkit.ToText)
	assert.Same(t, viewportPattern, moz.Pattern, "rules share the package pattern")
	assert.Same(t, moz.Pattern, webkit.Pattern)
	assert.Equal(t, `(?i)@(viewport)`, moz.Pattern.String())
	require.NoError(t, NewLineTextReplacer().ValidateRules([]ReplacementRule{moz, webkit}))
}
