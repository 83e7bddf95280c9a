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
	"github.com/NVIDIA/vercheck/pkg/header"
)

const (
	// APIVersion is the API version for check results.
	APIVersion = "vercheck.nvidia.com/v1alpha1"
)

// Outcome classifies the result of one version check.
type Outcome string

const (
	// OutcomeEqual indicates the desired version matches the installed version.
	OutcomeEqual Outcome = "equal"

	// OutcomeLess indicates the desired version is less than the installed version.
	OutcomeLess Outcome = "less"

	// OutcomeGreater indicates the desired version is greater than the installed version.
	OutcomeGreater Outcome = "greater"

	// OutcomeNotInstalled indicates the executable was not resolvable on the host.
	// This is an expected state, not an error.
	OutcomeNotInstalled Outcome = "not-installed"

	// OutcomeExtractionFailed indicates the pattern produced no candidate at the
	// requested index.
	OutcomeExtractionFailed Outcome = "extraction-failed"

	// OutcomeDesiredMalformed indicates the desired version input does not match
	// the extraction pattern, so the comparison side at fault is the caller's.
	OutcomeDesiredMalformed Outcome = "desired-malformed"
)

// String returns the string representation of the Outcome.
func (o Outcome) String() string {
	return string(o)
}

// Return codes carried in the Result. The schema follows the original
// module contract: zero means equal, positive codes favor the desired
// side, negative codes the installed side or a malformed request.
const (
	// CodeEqual - desired version equals the installed version.
	CodeEqual = 0

	// CodeGreater - desired version is greater than the installed version.
	CodeGreater = 2

	// CodeLess - desired version is less than the installed version.
	CodeLess = -2

	// CodeNotInstalled - the command is not installed on the host.
	CodeNotInstalled = 3

	// CodeExtractionFailed - no version candidate at the requested index.
	CodeExtractionFailed = 1

	// CodeDesiredMalformed - the desired version does not match the pattern.
	CodeDesiredMalformed = -1
)

// Result is the structured outcome of one version check. It is the sole
// contract with the invocation harness consuming the check.
type Result struct {
	header.Header `json:",inline" yaml:",inline"`

	// Command is the single-string form of the inspected command.
	Command string `json:"command" yaml:"command"`

	// Pattern is the extraction pattern that was applied.
	Pattern string `json:"pattern" yaml:"pattern"`

	// DesiredVersion is the caller-supplied version to compare against.
	DesiredVersion string `json:"desiredVersion" yaml:"desiredVersion"`

	// Index is the zero-based candidate index that was requested.
	Index int `json:"index" yaml:"index"`

	// Outcome classifies the check result.
	Outcome Outcome `json:"outcome" yaml:"outcome"`

	// Code is the numeric return code for the outcome.
	Code int `json:"code" yaml:"code"`

	// Message names both versions and their relation, or the failure reason.
	Message string `json:"message" yaml:"message"`

	// VersionList holds every candidate matched in the command output,
	// in order of first appearance.
	VersionList []string `json:"versionList" yaml:"versionList"`

	// VersionSelected is the candidate used for the comparison, when found.
	VersionSelected string `json:"versionSelected,omitempty" yaml:"versionSelected,omitempty"`

	// ExitCode is the exit status of the inspected command, for diagnostics.
	ExitCode int `json:"exitCode,omitempty" yaml:"exitCode,omitempty"`
}
