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

// Package extractor runs an external command and extracts version-like
// substrings from its output.
//
// # Overview
//
// An Extractor is built from a regular expression pattern; the pattern is
// compiled once at construction so an invalid pattern fails fast as a
// configuration error. Extraction then performs at most one process
// invocation: if the executable cannot be located on the host, the invocation
// is skipped entirely and the result reports the command as not installed.
//
// # Usage
//
//	ex, err := extractor.New(extractor.DefaultPattern)
//	if err != nil {
//	    // invalid pattern
//	}
//	spec, _ := command.Parse("bash --version")
//	res, err := ex.Extract(ctx, spec, 0)
//
// The result carries every pattern match found on standard output in order
// of appearance, the candidate selected by index (when the index is in
// range), and the process exit code and standard error for diagnostics.
// A non-zero exit status does not prevent extraction; many version flags
// exit non-zero yet still print a version.
//
// # Testing
//
// Process resolution and invocation go through the Runner interface, so
// tests inject a fake runner instead of spawning real processes.
package extractor
