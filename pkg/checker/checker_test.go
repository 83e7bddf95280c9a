package checker

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/NVIDIA/vercheck/pkg/command"
	"github.com/NVIDIA/vercheck/pkg/extractor"
	"github.com/NVIDIA/vercheck/pkg/header"
)

// fakeRunner satisfies extractor.Runner without spawning processes.
type fakeRunner struct {
	installed bool
	stdout    string
	stderr    string
	exitCode  int

	runCalls int
}

func (f *fakeRunner) LookPath(name string) (string, error) {
	if !f.installed {
		return "", fmt.Errorf("exec: %q: executable file not found in $PATH", name)
	}
	return "/usr/bin/" + name, nil
}

func (f *fakeRunner) Run(ctx context.Context, name string, args ...string) (*extractor.Output, error) {
	f.runCalls++
	return &extractor.Output{
		Stdout:   []byte(f.stdout),
		Stderr:   []byte(f.stderr),
		ExitCode: f.exitCode,
	}, nil
}

func mustSpec(t *testing.T, s string) *command.Spec {
	t.Helper()
	spec, err := command.Parse(s)
	require.NoError(t, err)
	return spec
}

func TestNewConfigurationErrors(t *testing.T) {
	spec := mustSpec(t, "bash --version")

	t.Run("nil spec", func(t *testing.T) {
		_, err := New(nil, "1.2.3")
		require.Error(t, err)
	})

	t.Run("empty desired version", func(t *testing.T) {
		_, err := New(spec, "")
		require.Error(t, err)
	})

	t.Run("invalid pattern", func(t *testing.T) {
		_, err := New(spec, "1.2.3", WithPattern(`[broken`))
		require.Error(t, err)
	})
}

func TestCheckEqual(t *testing.T) {
	runner := &fakeRunner{installed: true, stdout: "tool version 2.14.1\n"}
	chk, err := NewWithRunner(mustSpec(t, "tool --version"), "2.14.1", runner)
	require.NoError(t, err)

	res, err := chk.Check(t.Context())
	require.NoError(t, err)

	assert.Equal(t, OutcomeEqual, res.Outcome)
	assert.Equal(t, CodeEqual, res.Code)
	assert.Equal(t, []string{"2.14.1"}, res.VersionList)
	assert.Equal(t, "2.14.1", res.VersionSelected)
	assert.Equal(t, "Desired version(2.14.1) matches the installed version(2.14.1).", res.Message)
	assert.Equal(t, header.KindCheckResult, res.Kind)
	assert.Equal(t, APIVersion, res.APIVersion)
}

func TestCheckOrdering(t *testing.T) {
	tests := []struct {
		name        string
		desired     string
		stdout      string
		wantOutcome Outcome
		wantCode    int
	}{
		{
			name:        "desired less than installed",
			desired:     "2.14.1",
			stdout:      "tool version 3.0.0\n",
			wantOutcome: OutcomeLess,
			wantCode:    CodeLess,
		},
		{
			name:        "desired greater than installed",
			desired:     "3.0.1",
			stdout:      "tool version 3.0.0\n",
			wantOutcome: OutcomeGreater,
			wantCode:    CodeGreater,
		},
		{
			name:        "numeric ordering beats lexical",
			desired:     "1.9.0",
			stdout:      "tool version 1.10.0\n",
			wantOutcome: OutcomeLess,
			wantCode:    CodeLess,
		},
		{
			name:        "trailing zero equivalence",
			desired:     "1.2.0",
			stdout:      "tool version 1.2.0\n",
			wantOutcome: OutcomeEqual,
			wantCode:    CodeEqual,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			runner := &fakeRunner{installed: true, stdout: tt.stdout}
			chk, err := NewWithRunner(mustSpec(t, "tool --version"), tt.desired, runner)
			require.NoError(t, err)

			res, err := chk.Check(t.Context())
			require.NoError(t, err)

			assert.Equal(t, tt.wantOutcome, res.Outcome)
			assert.Equal(t, tt.wantCode, res.Code)
		})
	}
}

func TestCheckInverseRelations(t *testing.T) {
	// compare(A,B) and compare(B,A) must report inverse relations.
	pairs := [][2]string{
		{"1.2.3", "2.0.0"},
		{"1.9.0", "1.10.0"},
		{"2.14", "2.14.1"},
	}

	for _, pair := range pairs {
		a, b := pair[0], pair[1]

		runnerAB := &fakeRunner{installed: true, stdout: "version " + b + "\n"}
		chkAB, err := NewWithRunner(mustSpec(t, "tool --version"), a, runnerAB)
		require.NoError(t, err)
		resAB, err := chkAB.Check(t.Context())
		require.NoError(t, err)

		runnerBA := &fakeRunner{installed: true, stdout: "version " + a + "\n"}
		chkBA, err := NewWithRunner(mustSpec(t, "tool --version"), b, runnerBA)
		require.NoError(t, err)
		resBA, err := chkBA.Check(t.Context())
		require.NoError(t, err)

		assert.Equal(t, resAB.Code, -resBA.Code, "codes for %q vs %q not inverse", a, b)
	}
}

func TestCheckIndexSelection(t *testing.T) {
	stdout := "ansible [core 2.14.1]\n  python version = 3.11.9\n  jinja version = 3.1.12\n"

	runner := &fakeRunner{installed: true, stdout: stdout}
	chk, err := NewWithRunner(mustSpec(t, "ansible --version"), "3.11.9", runner, WithIndex(1))
	require.NoError(t, err)

	res, err := chk.Check(t.Context())
	require.NoError(t, err)

	assert.Equal(t, "3.11.9", res.VersionSelected)
	assert.Equal(t, []string{"2.14.1", "3.11.9", "3.1.12"}, res.VersionList)
	assert.Equal(t, OutcomeEqual, res.Outcome)
}

func TestCheckIndexOutOfRange(t *testing.T) {
	stdout := "ansible [core 2.14.1]\n  python version = 3.11.9\n  jinja version = 3.1.12\n"

	runner := &fakeRunner{installed: true, stdout: stdout}
	chk, err := NewWithRunner(mustSpec(t, "ansible --version"), "2.14.1", runner, WithIndex(5))
	require.NoError(t, err)

	res, err := chk.Check(t.Context())
	require.NoError(t, err)

	assert.Equal(t, OutcomeExtractionFailed, res.Outcome)
	assert.Equal(t, CodeExtractionFailed, res.Code)
	// The candidate list stays attached for diagnostics.
	assert.Equal(t, []string{"2.14.1", "3.11.9", "3.1.12"}, res.VersionList)
	assert.Empty(t, res.VersionSelected)
}

func TestCheckNotInstalled(t *testing.T) {
	runner := &fakeRunner{installed: false}
	chk, err := NewWithRunner(mustSpec(t, "no_such_tool --version"), "1.0.0", runner)
	require.NoError(t, err)

	res, err := chk.Check(t.Context())
	require.NoError(t, err)

	assert.Equal(t, OutcomeNotInstalled, res.Outcome)
	assert.Equal(t, CodeNotInstalled, res.Code)
	assert.Equal(t, "No desired version is installed.", res.Message)
	assert.Empty(t, res.VersionList)
	// Zero process invocations for an absent executable.
	assert.Equal(t, 0, runner.runCalls)
}

func TestCheckDesiredMalformed(t *testing.T) {
	t.Run("with installed version available", func(t *testing.T) {
		runner := &fakeRunner{installed: true, stdout: "tool version 2.14.1\n"}
		chk, err := NewWithRunner(mustSpec(t, "tool --version"), "abc", runner)
		require.NoError(t, err)

		res, err := chk.Check(t.Context())
		require.NoError(t, err)

		assert.Equal(t, OutcomeDesiredMalformed, res.Outcome)
		assert.Equal(t, CodeDesiredMalformed, res.Code)
	})

	t.Run("without installed version available", func(t *testing.T) {
		// Desired validation is not short-circuited by extraction failure.
		runner := &fakeRunner{installed: true, stdout: "no version here\n"}
		chk, err := NewWithRunner(mustSpec(t, "tool --version"), "abc", runner)
		require.NoError(t, err)

		res, err := chk.Check(t.Context())
		require.NoError(t, err)

		assert.Equal(t, OutcomeDesiredMalformed, res.Outcome)
		assert.Equal(t, CodeDesiredMalformed, res.Code)
	})
}

func TestCheckExtractionFailedNoMatch(t *testing.T) {
	runner := &fakeRunner{installed: true, stdout: "nothing useful\n"}
	chk, err := NewWithRunner(mustSpec(t, "tool --version"), "1.2.3", runner)
	require.NoError(t, err)

	res, err := chk.Check(t.Context())
	require.NoError(t, err)

	assert.Equal(t, OutcomeExtractionFailed, res.Outcome)
	assert.Equal(t, CodeExtractionFailed, res.Code)
	assert.Empty(t, res.VersionList)
}

func TestCheckNonZeroExitStillCompares(t *testing.T) {
	runner := &fakeRunner{
		installed: true,
		stdout:    "tool version 2.14.1\n",
		stderr:    "usage: tool [flags]\n",
		exitCode:  1,
	}
	chk, err := NewWithRunner(mustSpec(t, "tool --version"), "2.14.1", runner)
	require.NoError(t, err)

	res, err := chk.Check(t.Context())
	require.NoError(t, err)

	assert.Equal(t, OutcomeEqual, res.Outcome)
	assert.Equal(t, 1, res.ExitCode)
}

func TestCheckCustomPattern(t *testing.T) {
	runner := &fakeRunner{installed: true, stdout: "release 24.04\n"}
	chk, err := NewWithRunner(mustSpec(t, "lsb_release -r"), "24.04", runner,
		WithPattern(`\d+\.\d+`))
	require.NoError(t, err)

	res, err := chk.Check(t.Context())
	require.NoError(t, err)

	assert.Equal(t, OutcomeEqual, res.Outcome)
	assert.Equal(t, `\d+\.\d+`, res.Pattern)
}

func TestCheckHeaderMetadata(t *testing.T) {
	runner := &fakeRunner{installed: true, stdout: "tool version 2.14.1\n"}
	chk, err := NewWithRunner(mustSpec(t, "tool --version"), "2.14.1", runner,
		WithToolVersion("v1.2.3"))
	require.NoError(t, err)

	res, err := chk.Check(t.Context())
	require.NoError(t, err)

	require.NotNil(t, res.Metadata)
	assert.Equal(t, "v1.2.3", res.Metadata["version"])
	assert.NotEmpty(t, res.Metadata["timestamp"])
}
