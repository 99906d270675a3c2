// Copyright 2025 Revsight Labs
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


package ingest

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/revsight/revsight/core"
)

// Options direct a single Normalize call.
type Options struct {
	// LocationHint overrides location derivation for structured payloads.
	LocationHint string

	// Filename is the name of the file the payload came from. Structured
	// payloads derive the location and scrape date from a
	// <location>_<dd>_<mm>_<yyyy> token when no hint is given.
	Filename string

	// Anchor is the timestamp relative dates are resolved against.
	// Zero means "now".
	Anchor time.Time
}

// Normalizer converts raw source payloads into canonical Review records.
// It accepts two payload shapes: structured-scrape exports and
// social-thread discussions. Unknown shapes are rejected, and individual
// malformed records are skipped with a diagnostic rather than aborting
// the rest of the payload.
type Normalizer struct {
	logger *slog.Logger
	now    func() time.Time
}

// NormalizerOption is a functional option for configuring a Normalizer.
type NormalizerOption func(*Normalizer)

// WithLogger sets the logger used for per-record diagnostics.
func WithLogger(logger *slog.Logger) NormalizerOption {
	return func(n *Normalizer) {
		n.logger = logger
	}
}

// WithClock overrides the time source. Used in tests.
func WithClock(now func() time.Time) NormalizerOption {
	return func(n *Normalizer) {
		n.now = now
	}
}

// NewNormalizer creates a Normalizer with the provided options.
func NewNormalizer(opts ...NormalizerOption) *Normalizer {
	n := &Normalizer{
		logger: slog.Default().With("component", "normalizer"),
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(n)
	}
	return n
}

// payloadProbe distinguishes the supported payload shapes without fully
// decoding either.
type payloadProbe struct {
	Data     json.RawMessage `json:"data"`
	Channels json.RawMessage `json:"channels"`
	Channel  string          `json:"channel"`
	Posts    json.RawMessage `json:"posts"`
}

// Normalize parses a raw payload and returns the canonical reviews it
// contains. The payload shape is detected from its structure:
// structured-scrape payloads nest reviews under "data", social-thread
// payloads group posts under one or more channels.
func (n *Normalizer) Normalize(raw []byte, opts Options) ([]*core.Review, error) {
	if len(raw) == 0 {
		return nil, ErrEmptyPayload
	}

	anchor := opts.Anchor
	if anchor.IsZero() {
		anchor = n.now().UTC()
	}

	var probe payloadProbe
	if err := json.Unmarshal(raw, &probe); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrEmptyPayload, err)
	}

	switch {
	case len(probe.Data) > 0:
		return n.normalizeStructured(raw, opts, anchor)
	case len(probe.Channels) > 0 || len(probe.Posts) > 0 || probe.Channel != "":
		return n.normalizeSocial(raw, anchor)
	default:
		return nil, ErrUnknownPayload
	}
}

// parseFilenameToken extracts a location id and scrape date from a filename
// of the form <location>_<dd>_<mm>_<yyyy>. A malformed or missing date
// token falls back to the provided default time.
func parseFilenameToken(filename string, fallback time.Time) (string, time.Time) {
	stem := strings.TrimSuffix(filepath.Base(filename), filepath.Ext(filename))
	parts := strings.Split(stem, "_")

	location := ""
	if len(parts) > 0 {
		location = parts[0]
	}

	if len(parts) >= 4 {
		day, dayErr := strconv.Atoi(parts[1])
		month, monthErr := strconv.Atoi(parts[2])
		year, yearErr := strconv.Atoi(parts[3])
		if dayErr == nil && monthErr == nil && yearErr == nil &&
			month >= 1 && month <= 12 && day >= 1 && day <= 31 {
			return location, time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
		}
	}

	return location, fallback
}
