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
	"io"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/walteh/viewport-prefix/pkg/config"
	"github.com/walteh/viewport-prefix/pkg/log"
	"github.com/walteh/viewport-prefix/pkg/operation"
	"gitlab.com/tozd/go/errors"
)

// Handler runs the prefix operation for the parsed flags
type Handler struct {
	root   string
	vendor string
}

// NewCommand creates the root command, operating on the current working directory
func NewCommand() *cobra.Command {
	return newCommand(&Handler{root: config.DefaultRoot})
}

func newCommand(h *Handler) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "viewport-prefix --vendor <name>",
		Short: "Add a vendor prefix to the @viewport rules.",
		Long: `Add a vendor prefix to the @viewport rules.

viewport-prefix walks the current directory recursively and rewrites every
@viewport rule in .html, .js and .css files to @-<vendor>-viewport, in place.
Run it on a clean, version controlled tree.`,
		Args:    cobra.NoArgs,
		Version: GetVersionInfo().Version,
		PreRunE: func(cmd *cobra.Command, args []string) error {
			if h.vendor == "" {
				return errors.WithStack(config.ErrEmptyVendor)
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			// past argument validation, failures are not usage errors
			// and Run reports them itself
			cmd.SilenceUsage = true
			cmd.SilenceErrors = true
			return h.Run(cmd.Context(), cmd.OutOrStdout())
		},
	}

	cmd.SetVersionTemplate(FormatVersion())
	cmd.Flags().StringVar(&h.vendor, "vendor", "", `Specify the vendor name. For instance,
"--vendor moz" will change all @viewport rules into @-moz-viewport.`)
	_ = cmd.MarkFlagRequired("vendor")

	return cmd
}

// Run rewrites every selected file below the handler's root
func (h *Handler) Run(ctx context.Context, console io.Writer) error {
	zlog := zerolog.Ctx(ctx)
	ctx = zlog.With().Str("vendor", h.vendor).Logger().WithContext(ctx)

	logger := log.New(console, *zlog)
	ctx = log.NewContext(ctx, logger)

	cfg := config.New(h.root, h.vendor)
	op, err := operation.NewFromConfig(cfg)
	if err != nil {
		logger.LogFailure("invalid configuration", err)
		return errors.Errorf("creating operation: %w", err)
	}
	zlog.Debug().Stringer("config", cfg).Msg("configured")

	logger.Header("prefixing @viewport rules with " + h.vendor)

	if err := operation.NewRunner(zlog).Run(ctx, op); err != nil {
		logger.LogFailure("prefixing @viewport rules failed", err)
		return errors.Errorf("prefixing: %w", err)
	}

	logger.LogNewline()
	if err := logger.LogSummary(op.Summary()); err != nil {
		return errors.Errorf("logging summary: %w", err)
	}
	summary := op.Summary()
	if summary.Matched == 0 {
		logger.Infof("no .html, .js or .css files below %s", cfg.Root)
	}
	logger.Successf("rewrote %d of %d files", summary.Modified, summary.Matched)

	return nil
}
