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

package main

import (
	"context"
	"os"
	"time"

	"github.com/rs/zerolog"
)

func main() {
	ctx := setupLogging().WithContext(context.Background())

	if err := NewCommand().ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}

// setupLogging configures the structured logger used for diagnostics on stderr.
// User facing output goes through pkg/log instead.
func setupLogging() *zerolog.Logger {
	zerolog.SetGlobalLevel(zerolog.WarnLevel)
	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.TimeOnly}).With().Timestamp().Logger()
	zerolog.DefaultContextLogger = &logger
	return &logger
}
