// Package cli implements the command-line interface for the vercheck tool.
//
// # Overview
//
// The vercheck CLI runs a command, extracts a version token from its output,
// and compares it against a desired version. It is designed for operators and
// CI pipelines that need to assert which version of a tool is installed on a
// host before proceeding.
//
// # Commands
//
// check - Run a version check:
//
//	vercheck check --command "bash --version" --desired-version 5.2.21
//
// Runs the command, extracts version tokens with a configurable regular
// expression (default: \d+\.\d+\.\d+), selects one by index, and compares it
// against the desired version. The result is written to stdout or a file in
// YAML, JSON, or table format.
//
// # Global Flags
//
//	--log-level    Log level: debug, info, warn, error (default: info)
//	--help, -h     Show command help
//	--version, -v  Show version information
//
// # Outcome Codes
//
// Every check produces a structured result with an outcome and a numeric code:
//
//	 0  equal              desired matches the installed version
//	 2  greater            desired is newer than the installed version
//	-2  less               desired is older than the installed version
//	 3  not-installed      the executable was not found on PATH
//	 1  extraction-failed  no version token matched at the requested index
//	-1  desired-malformed  the desired version fails the pattern itself
//
// By default the process exits 0 whenever a result was produced; the outcome
// lives in the serialized result. With --fail-on-mismatch the process exit
// status carries the outcome code instead, for CI gating.
//
// # Environment Variables
//
//	LOG_LEVEL                 Set logging verbosity (debug, info, warn, error)
//	VERCHECK_COMMAND          Default for --command
//	VERCHECK_DESIRED_VERSION  Default for --desired-version
//	VERCHECK_PATTERN          Default for --pattern
//
// # Architecture
//
// The CLI uses the urfave/cli/v3 framework and delegates to specialized packages:
//   - pkg/checker - Check orchestration and comparison outcomes
//   - pkg/extractor - Command execution and version token extraction
//   - pkg/version - Loose version parsing and ordering
//   - pkg/serializer - Output formatting
//   - pkg/logging - Structured logging
//
// Version information is embedded at build time using ldflags:
//
//	go build -ldflags="-X 'github.com/NVIDIA/vercheck/pkg/cli.version=1.0.0'"
package cli
