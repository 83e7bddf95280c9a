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
	"bytes"
	"context"
	"errors"
	"os/exec"
)

// Output is the captured result of one process invocation.
// Stdout and Stderr are kept separate; the exit code is recorded for
// diagnostics only.
type Output struct {
	Stdout   []byte
	Stderr   []byte
	ExitCode int
}

// Runner abstracts process resolution and invocation so the extractor can be
// tested without spawning real processes.
type Runner interface {
	// LookPath resolves an executable on the host, returning its absolute
	// path or an error when the executable cannot be located.
	LookPath(name string) (string, error)

	// Run invokes the named executable with the given arguments and captures
	// its output. A non-zero exit status is not an error: many version flags
	// exit non-zero yet still print a version. Run returns an error only when
	// the process could not be started or was interrupted (e.g. context
	// cancellation).
	Run(ctx context.Context, name string, args ...string) (*Output, error)
}

// execRunner is the default Runner backed by os/exec.
type execRunner struct{}

// NewExecRunner returns a Runner that invokes real processes via os/exec.
func NewExecRunner() Runner {
	return &execRunner{}
}

func (r *execRunner) LookPath(name string) (string, error) {
	return exec.LookPath(name)
}

func (r *execRunner) Run(ctx context.Context, name string, args ...string) (*Output, error) {
	cmd := exec.CommandContext(ctx, name, args...)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	out := &Output{
		Stdout: stdout.Bytes(),
		Stderr: stderr.Bytes(),
	}

	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			// The process ran to completion; record the status and keep
			// whatever it printed.
			out.ExitCode = exitErr.ExitCode()
			return out, nil
		}
		return nil, err
	}

	return out, nil
}
