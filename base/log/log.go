// Copyright 2025 Google LLC
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

// Package log configures the structured logger of the kernel generator.
package log

import (
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/pkg/errors"
)

// Output formats.
const (
	FormatText = "text"
	FormatJSON = "json"
)

// Config of a logger.
type Config struct {
	Level     slog.Level
	Format    string // FormatText or FormatJSON
	Output    io.Writer
	AddSource bool
}

// DefaultConfig returns the configuration used by the command line tools:
// warnings and errors in text on stderr.
func DefaultConfig() Config {
	return Config{
		Level:  slog.LevelWarn,
		Format: FormatText,
		Output: os.Stderr,
	}
}

// ParseLevel parses a level name (debug, info, warn, error), case insensitive.
func ParseLevel(s string) (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(s)); err != nil {
		return level, errors.Errorf("invalid log level %q: want debug, info, warn, or error", s)
	}
	return level, nil
}

// New returns a logger given a configuration.
func New(cfg Config) (*slog.Logger, error) {
	output := cfg.Output
	if output == nil {
		output = os.Stderr
	}
	opts := &slog.HandlerOptions{
		Level:     cfg.Level,
		AddSource: cfg.AddSource,
	}
	switch strings.ToLower(cfg.Format) {
	case FormatText, "":
		return slog.New(slog.NewTextHandler(output, opts)), nil
	case FormatJSON:
		return slog.New(slog.NewJSONHandler(output, opts)), nil
	default:
		return nil, errors.Errorf("unknown log format %q: want %s or %s", cfg.Format, FormatText, FormatJSON)
	}
}

// Init sets the default slog logger given a configuration.
func Init(cfg Config) (*slog.Logger, error) {
	logger, err := New(cfg)
	if err != nil {
		return nil, err
	}
	slog.SetDefault(logger)
	return logger, nil
}

// Discard returns a logger dropping all records.
func Discard() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}
