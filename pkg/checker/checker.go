// Copyright (c) 2025, NVIDIA CORPORATION.  All rights reserved.
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

package checker

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/NVIDIA/vercheck/pkg/command"
	"github.com/NVIDIA/vercheck/pkg/errors"
	"github.com/NVIDIA/vercheck/pkg/extractor"
	"github.com/NVIDIA/vercheck/pkg/header"
	"github.com/NVIDIA/vercheck/pkg/version"
)

// Checker performs one version check: extract the installed version from
// command output, compare it against the desired version, and produce a
// structured Result. All configuration faults surface at construction,
// before any process work begins.
type Checker struct {
	spec    *command.Spec
	desired string
	pattern string
	index   int
	ex      *extractor.Extractor

	// toolVersion stamps the result header.
	toolVersion string
}

// Option is a functional option for configuring Checker instances.
type Option func(*Checker)

// WithPattern returns an Option that overrides the default extraction pattern.
func WithPattern(pattern string) Option {
	return func(c *Checker) {
		c.pattern = pattern
	}
}

// WithIndex returns an Option that selects which candidate to compare when
// the command output contains more than one version-like substring.
func WithIndex(index int) Option {
	return func(c *Checker) {
		c.index = index
	}
}

// WithToolVersion returns an Option that sets the tool version recorded in
// the result header.
func WithToolVersion(v string) Option {
	return func(c *Checker) {
		c.toolVersion = v
	}
}

// New creates a Checker for the given command spec and desired version.
// The extraction pattern defaults to extractor.DefaultPattern. A nil spec,
// empty desired version, or invalid pattern is a configuration error.
func New(spec *command.Spec, desired string, opts ...Option) (*Checker, error) {
	return newChecker(spec, desired, nil, opts...)
}

// NewWithRunner is like New but injects a process runner, for testing.
func NewWithRunner(spec *command.Spec, desired string, r extractor.Runner, opts ...Option) (*Checker, error) {
	return newChecker(spec, desired, []extractor.Option{extractor.WithRunner(r)}, opts...)
}

func newChecker(spec *command.Spec, desired string, exOpts []extractor.Option, opts ...Option) (*Checker, error) {
	if spec == nil {
		return nil, errors.New(errors.ErrCodeInvalidRequest, "command spec cannot be nil")
	}
	if desired == "" {
		return nil, errors.New(errors.ErrCodeInvalidRequest, "desired version cannot be empty")
	}

	c := &Checker{
		spec:    spec,
		desired: desired,
		pattern: extractor.DefaultPattern,
	}
	for _, opt := range opts {
		opt(c)
	}

	ex, err := extractor.New(c.pattern, exOpts...)
	if err != nil {
		return nil, err
	}
	c.ex = ex

	return c, nil
}

// Check runs the evaluation: at most one process invocation, then a
// comparison. It always returns a structured Result for expected states
// (not installed, extraction failed, malformed desired version); an error
// is returned only for faults like an interrupted process invocation.
func (c *Checker) Check(ctx context.Context) (*Result, error) {
	start := time.Now()

	ext, err := c.ex.Extract(ctx, c.spec, c.index)
	if err != nil {
		checkTotal.WithLabelValues("error").Inc()
		return nil, err
	}

	res := c.newResult(ext)

	switch {
	case !ext.Installed:
		res.Outcome = OutcomeNotInstalled
		res.Code = CodeNotInstalled
		res.Message = "No desired version is installed."

	// The desired version is validated even when extraction found nothing,
	// so callers can tell which side is at fault.
	case !c.ex.Matches(c.desired):
		res.Outcome = OutcomeDesiredMalformed
		res.Code = CodeDesiredMalformed
		res.Message = fmt.Sprintf("Error validating desired version: %s", c.desired)

	case !ext.Found:
		res.Outcome = OutcomeExtractionFailed
		res.Code = CodeExtractionFailed
		res.Message = fmt.Sprintf("Error getting version from command: no candidate at index %d (%d matched)",
			c.index, len(ext.Candidates))

	default:
		c.compare(res)
	}

	checkDuration.Observe(time.Since(start).Seconds())
	checkTotal.WithLabelValues(res.Outcome.String()).Inc()

	slog.Debug("check completed",
		"command", res.Command,
		"outcome", res.Outcome,
		"code", res.Code,
		"duration", time.Since(start))

	return res, nil
}

// compare fills in the ordering outcome for a result whose installed
// version was found.
func (c *Checker) compare(res *Result) {
	desired, err := version.Parse(c.desired)
	if err != nil {
		res.Outcome = OutcomeDesiredMalformed
		res.Code = CodeDesiredMalformed
		res.Message = fmt.Sprintf("Error validating desired version: %s", c.desired)
		return
	}

	installed, err := version.Parse(res.VersionSelected)
	if err != nil {
		res.Outcome = OutcomeExtractionFailed
		res.Code = CodeExtractionFailed
		res.Message = fmt.Sprintf("Error getting version from command: cannot parse %q", res.VersionSelected)
		return
	}

	switch cmp := desired.Compare(installed); {
	case cmp < 0:
		res.Outcome = OutcomeLess
		res.Code = CodeLess
		res.Message = fmt.Sprintf("Desired version(%s) is less than installed version(%s).",
			c.desired, res.VersionSelected)
	case cmp > 0:
		res.Outcome = OutcomeGreater
		res.Code = CodeGreater
		res.Message = fmt.Sprintf("Desired version(%s) is greater than installed version(%s).",
			c.desired, res.VersionSelected)
	default:
		res.Outcome = OutcomeEqual
		res.Code = CodeEqual
		res.Message = fmt.Sprintf("Desired version(%s) matches the installed version(%s).",
			c.desired, res.VersionSelected)
	}
}

func (c *Checker) newResult(ext *extractor.Extraction) *Result {
	res := &Result{
		Command:         c.spec.String(),
		Pattern:         c.pattern,
		DesiredVersion:  c.desired,
		Index:           c.index,
		VersionList:     ext.Candidates,
		VersionSelected: ext.Selected,
		ExitCode:        ext.ExitCode,
	}
	if res.VersionList == nil {
		res.VersionList = []string{}
	}
	res.Init(header.KindCheckResult, APIVersion, c.toolVersion)
	return res
}
