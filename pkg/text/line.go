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
	"bytes"
	"context"
	"io"
	"strings"

	"github.com/rs/zerolog"
	"gitlab.com/tozd/go/errors"
)

// LineTextReplacer implements TextReplacer one line at a time.
// Line terminators are left exactly as they were read.
type LineTextReplacer struct{}

// NewLineTextReplacer creates a new LineTextReplacer
func NewLineTextReplacer() *LineTextReplacer {
	return &LineTextReplacer{}
}

// ReplaceText implements TextReplacer.ReplaceText
func (r *LineTextReplacer) ReplaceText(ctx context.Context, content io.Reader, rules []ReplacementRule) (*ReplacementResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, errors.Errorf("replacing text: %w", err)
	}

	originalContent, err := io.ReadAll(content)
	if err != nil {
		return nil, errors.Errorf("reading content: %w", err)
	}

	result := &ReplacementResult{
		OriginalContent: originalContent,
		ModifiedContent: originalContent,
	}

	if len(rules) == 0 || len(originalContent) == 0 {
		return result, nil
	}

	var out bytes.Buffer
	out.Grow(len(originalContent))

	for i, line := range bytes.SplitAfter(originalContent, []byte("\n")) {
		current := string(line)
		lineCount := 0
		for _, rule := range rules {
			var n int
			current, n = applyRule(current, rule)
			lineCount += n
		}

		if lineCount > 0 {
			result.ReplacementCount += lineCount
			result.ChangedLines = append(result.ChangedLines, i+1)
		}

		out.WriteString(current)
	}

	if result.ReplacementCount > 0 {
		result.WasModified = true
		result.ModifiedContent = out.Bytes()
	}

	zerolog.Ctx(ctx).Trace().
		Int("replacements", result.ReplacementCount).
		Ints("lines", result.ChangedLines).
		Msg("replaced text")

	return result, nil
}

// applyRule replaces every match of rule.Pattern in line with rule.ToText followed by submatch 1.
// ToText is not expanded, so a '$' in it is kept as is.
func applyRule(line string, rule ReplacementRule) (string, int) {
	if rule.Pattern == nil {
		return line, 0
	}

	matches := rule.Pattern.FindAllStringSubmatchIndex(line, -1)
	if len(matches) == 0 {
		return line, 0
	}

	var sb strings.Builder
	last := 0
	for _, m := range matches {
		sb.WriteString(line[last:m[0]])
		sb.WriteString(rule.ToText)
		if len(m) >= 4 && m[2] >= 0 {
			sb.WriteString(line[m[2]:m[3]])
		}
		last = m[1]
	}
	sb.WriteString(line[last:])

	return sb.String(), len(matches)
}

// ValidateRules implements TextReplacer.ValidateRules
func (r *LineTextReplacer) ValidateRules(rules []ReplacementRule) error {
	for i, rule := range rules {
		if rule.Pattern == nil {
			return errors.Errorf("rule %d: pattern is required", i)
		}
		if rule.Pattern.NumSubexp() < 1 {
			return errors.Errorf("rule %d: pattern %q needs a capture group", i, rule.Pattern.String())
		}
		if rule.ToText == "" {
			return errors.Errorf("rule %d: to_text is required", i)
		}
	}
	return nil
}
