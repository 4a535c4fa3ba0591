// Copyright 2020-2025 Buf Technologies, Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package config loads the command-line tool's optional TOML settings.
package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/bufbuild/oxyjs/parser"
)

// Config is the contents of a config file. Zero values mean "use the
// default"; see [Config.ApplyDefaults].
type Config struct {
	// The number of files to parse at once.
	Jobs int `toml:"jobs"`
	// How long a file may wait for a free parse slot. Files that have not
	// started parsing by then fail; a parse that has started always
	// finishes. Zero means no limit.
	Timeout Duration `toml:"timeout"`
	// Reject assignments whose left side is not a name.
	StrictAssignTargets bool `toml:"strict_assign_targets"`
	// The parser's nesting limit.
	MaxDepth int `toml:"max_depth"`
}

// Duration wraps time.Duration for TOML parsing.
type Duration struct {
	time.Duration
}

// UnmarshalText implements [encoding.TextUnmarshaler].
func (d *Duration) UnmarshalText(text []byte) error {
	var err error
	d.Duration, err = time.ParseDuration(string(text))
	return err
}

// MarshalText implements [encoding.TextMarshaler].
func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.Duration.String()), nil
}

// Load reads the config file at path. Keys that are not understood are an
// error, so that typos do not go unnoticed.
func Load(path string) (*Config, error) {
	var cfg Config
	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return nil, fmt.Errorf("%s: unknown config keys: %s", path, strings.Join(keys, ", "))
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	cfg.ApplyDefaults()
	return &cfg, nil
}

// Validate checks for values that can never be right.
func (c *Config) Validate() error {
	switch {
	case c.Jobs < 0:
		return fmt.Errorf("jobs must not be negative, got %d", c.Jobs)
	case c.Timeout.Duration < 0:
		return fmt.Errorf("timeout must not be negative, got %v", c.Timeout.Duration)
	case c.MaxDepth < 0:
		return fmt.Errorf("max_depth must not be negative, got %d", c.MaxDepth)
	}
	return nil
}

// ApplyDefaults fills in unset values.
func (c *Config) ApplyDefaults() {
	if c.MaxDepth == 0 {
		c.MaxDepth = parser.DefaultMaxDepth
	}
}

// ParserOptions returns the parser options this config asks for.
func (c *Config) ParserOptions() parser.Options {
	return parser.Options{
		CheckAssignTargets: c.StrictAssignTargets,
		MaxDepth:           c.MaxDepth,
	}
}
