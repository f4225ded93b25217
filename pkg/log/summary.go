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

package log

import (
	"fmt"
	"strconv"

	"github.com/pterm/pterm"
	"gitlab.com/tozd/go/errors"
)

// 📊 Summary is the outcome of one run
type Summary struct {
	Root         string // Directory that was walked
	Vendor       string // Vendor name that was inserted
	Scanned      int    // Files seen by the walk
	Matched      int    // Files selected by the include patterns
	Modified     int    // Files that were rewritten
	Replacements int    // Total number of replacements
}

// 📊 LogSummary renders the summary as a table
func (l *Logger) LogSummary(s Summary) error {
	table, err := pterm.DefaultTable.WithHasHeader().WithData(pterm.TableData{
		{"root", "vendor", "scanned", "matched", "modified", "replacements"},
		{
			s.Root,
			s.Vendor,
			strconv.Itoa(s.Scanned),
			strconv.Itoa(s.Matched),
			strconv.Itoa(s.Modified),
			strconv.Itoa(s.Replacements),
		},
	}).Srender()
	if err != nil {
		return errors.Errorf("rendering summary: %w", err)
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	fmt.Fprintln(l.console, table)

	l.zlog.Info().
		Str("root", s.Root).
		Str("vendor", s.Vendor).
		Int("scanned", s.Scanned).
		Int("matched", s.Matched).
		Int("modified", s.Modified).
		Int("replacements", s.Replacements).
		Msg("run complete")

	return nil
}

// ❌ LogFailure reports a failed run with the underlying error
func (l *Logger) LogFailure(description string, err error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	fmt.Fprint(l.console, pterm.Error.WithPrefix(pterm.Prefix{Text: "❌"}).Sprintln(description))
	if err != nil {
		fmt.Fprint(l.console, pterm.Error.Sprintln(err))
	}

	l.zlog.Error().Err(err).Msg(description)
}
