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

package command

import (
	"strings"
	"unicode"

	"github.com/kballard/go-shellquote"

	"github.com/NVIDIA/vercheck/pkg/errors"
)

// Spec names an executable and an optional fixed set of arguments
// (e.g., appending a version flag). The executable/argument split is resolved
// at construction; nothing downstream inspects the spec's shape at runtime.
type Spec struct {
	// Executable is the bare command token to resolve on the host.
	Executable string `json:"executable" yaml:"executable"`

	// Args are the fixed arguments passed to the executable.
	Args []string `json:"args,omitempty" yaml:"args,omitempty"`
}

// New creates a Spec from an executable name and optional fixed arguments.
// The executable must be a single bare token: an embedded subcommand
// ("helm version") without a separate argument list is a configuration
// error surfaced immediately, before any process is started.
func New(executable string, args ...string) (*Spec, error) {
	trimmed := strings.TrimSpace(executable)
	if trimmed == "" {
		return nil, errors.New(errors.ErrCodeInvalidRequest, "executable cannot be empty")
	}
	if strings.IndexFunc(trimmed, unicode.IsSpace) >= 0 {
		return nil, errors.NewWithContext(errors.ErrCodeInvalidRequest,
			"executable must be a single token, pass arguments separately",
			map[string]any{"executable": executable})
	}

	return &Spec{
		Executable: trimmed,
		Args:       args,
	}, nil
}

// Parse creates a Spec from the string form of a command, e.g. "bash --version".
// The string is split with shell quoting rules; the first token becomes the
// executable and the rest its fixed arguments. An empty or unparsable string
// is a configuration error.
func Parse(s string) (*Spec, error) {
	tokens, err := shellquote.Split(s)
	if err != nil {
		return nil, errors.WrapWithContext(errors.ErrCodeInvalidRequest,
			"invalid command string", err, map[string]any{"command": s})
	}
	if len(tokens) == 0 {
		return nil, errors.New(errors.ErrCodeInvalidRequest, "command cannot be empty")
	}

	return New(tokens[0], tokens[1:]...)
}

// String returns the command in its single-string form for diagnostics.
func (s *Spec) String() string {
	if len(s.Args) == 0 {
		return s.Executable
	}
	return s.Executable + " " + shellquote.Join(s.Args...)
}
