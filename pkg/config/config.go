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

package config

import (
	"fmt"
	"path/filepath"

	"gitlab.com/tozd/go/errors"
)

var (
	// ErrEmptyVendor is returned when no vendor name was given
	ErrEmptyVendor = errors.Base("vendor is required")
)

// 🌳 DefaultRoot is the directory tree that gets rewritten
const DefaultRoot = "."

// 📚 Config holds everything a single run needs.
// It is built once from the command line and passed down explicitly.
type Config struct {
	Root   string // Directory to walk
	Vendor string // Vendor name inserted as @-<vendor>-viewport
}

// 🏭 New creates a config for vendor rooted at root
func New(root, vendor string) *Config {
	return &Config{
		Root:   root,
		Vendor: vendor,
	}
}

// 🔍 Validate checks if the configuration is valid
func (cfg *Config) Validate() error {
	if cfg.Vendor == "" {
		return errors.WithStack(ErrEmptyVendor)
	}

	// Set defaults
	if cfg.Root == "" {
		cfg.Root = DefaultRoot
	}
	cfg.Root = filepath.Clean(cfg.Root)

	return nil
}

// 📝 String returns a string representation of the config
func (cfg *Config) String() string {
	return fmt.Sprintf("@-%s-viewport in %s", cfg.Vendor, cfg.Root)
}
