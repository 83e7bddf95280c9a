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

package extractor

import (
	"context"
	"log/slog"
	"regexp"

	"github.com/NVIDIA/vercheck/pkg/command"
	"github.com/NVIDIA/vercheck/pkg/errors"
)

// DefaultPattern matches three dot-separated numeric groups, the shape of
// most tool version numbers.
const DefaultPattern = `\d+\.\d+\.\d+`

// Extraction is the result of one extraction attempt.
type Extraction struct {
	// Installed reports whether the executable was resolvable on the host.
	// When false, no process was invoked and all other fields are zero.
	Installed bool

	// Candidates are all pattern matches from the command's standard output,
	// in order of first appearance.
	Candidates []string

	// Selected is the candidate chosen by index. Empty when Found is false.
	Selected string

	// Found reports whether a candidate existed at the requested index.
	Found bool

	// ExitCode and Stderr carry process diagnostics. A non-zero exit code
	// does not invalidate the extraction.
	ExitCode int
	Stderr   string
}

// Extractor runs an external command and extracts version-like substrings
// from its output using a pattern compiled at construction.
type Extractor struct {
	pattern *regexp.Regexp
	runner  Runner
}

// Option is a functional option for configuring Extractor instances.
type Option func(*Extractor)

// WithRunner returns an Option that overrides the process runner,
// primarily for testing.
func WithRunner(r Runner) Option {
	return func(e *Extractor) {
		e.runner = r
	}
}

// New creates an Extractor for the given pattern. An invalid pattern is a
// configuration error reported immediately, not a runtime extraction failure.
func New(pattern string, opts ...Option) (*Extractor, error) {
	re, err := regexp.Compile(pattern)
	if err != nil {
		return nil, errors.WrapWithContext(errors.ErrCodeInvalidRequest,
			"invalid extraction pattern", err, map[string]any{"pattern": pattern})
	}

	e := &Extractor{
		pattern: re,
		runner:  NewExecRunner(),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e, nil
}

// Pattern returns the compiled extraction pattern.
func (e *Extractor) Pattern() *regexp.Regexp {
	return e.pattern
}

// Matches reports whether s matches the extraction pattern at its start.
// Used to validate that a desired version is shaped like a version before
// it participates in a comparison.
func (e *Extractor) Matches(s string) bool {
	loc := e.pattern.FindStringIndex(s)
	return loc != nil && loc[0] == 0
}

// Extract invokes the command described by spec and selects the version
// candidate at the given zero-based index.
//
// If the executable cannot be located on the host, Extract short-circuits
// with Installed=false and performs zero process invocations: "not installed"
// is an expected state, distinct from "installed but unparsable output".
// An index outside the candidate range yields Found=false with the collected
// candidates attached; it is never an error.
func (e *Extractor) Extract(ctx context.Context, spec *command.Spec, index int) (*Extraction, error) {
	if spec == nil {
		return nil, errors.New(errors.ErrCodeInvalidRequest, "command spec cannot be nil")
	}

	path, err := e.runner.LookPath(spec.Executable)
	if err != nil {
		slog.Debug("executable not found", "executable", spec.Executable)
		return &Extraction{}, nil
	}

	out, err := e.runner.Run(ctx, path, spec.Args...)
	if err != nil {
		return nil, errors.WrapWithContext(errors.ErrCodeInternal,
			"failed to run command", err, map[string]any{"command": spec.String()})
	}

	res := &Extraction{
		Installed:  true,
		Candidates: e.pattern.FindAllString(string(out.Stdout), -1),
		ExitCode:   out.ExitCode,
		Stderr:     string(out.Stderr),
	}

	slog.Debug("extracted version candidates",
		"command", spec.String(),
		"candidates", res.Candidates,
		"exitCode", res.ExitCode)

	if index >= 0 && index < len(res.Candidates) {
		res.Selected = res.Candidates[index]
		res.Found = true
	}

	return res, nil
}
