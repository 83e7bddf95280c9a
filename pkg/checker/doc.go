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

// Package checker composes version extraction and comparison into a single
// stateless evaluation.
//
// # Overview
//
// A Checker is built from a command specification, a desired version, and
// (optionally) an extraction pattern and candidate index. One Check call
// performs at most one process invocation and always yields a structured
// Result for the expected states:
//
//   - equal / less / greater: the ordering of desired vs installed version
//   - not-installed: the executable is absent from the host (no process run)
//   - extraction-failed: no candidate matched at the requested index
//   - desired-malformed: the desired version itself does not match the pattern
//
// Misconfiguration (nil command spec, empty desired version, invalid
// pattern) is rejected at construction, before any process work begins.
//
// # Return Codes
//
// Each outcome maps to a numeric code carried in the Result:
//
//	 0  equal
//	 2  desired greater than installed
//	-2  desired less than installed
//	 3  command not installed
//	 1  extraction failed
//	-1  desired version malformed
//
// # Usage
//
//	spec, _ := command.Parse("bash --version")
//	chk, err := checker.New(spec, "5.2.0",
//	    checker.WithIndex(0),
//	    checker.WithToolVersion(buildVersion),
//	)
//	if err != nil {
//	    // configuration error
//	}
//	res, err := chk.Check(ctx)
//
// The Result includes the full candidate list matched in the command output
// for transparency into what was found.
package checker
