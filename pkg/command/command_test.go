package command

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	vcerrors "github.com/NVIDIA/vercheck/pkg/errors"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name       string
		executable string
		args       []string
		wantErr    bool
	}{
		{name: "bare executable", executable: "bash"},
		{name: "executable with args", executable: "bash", args: []string{"--version"}},
		{name: "surrounding whitespace trimmed", executable: "  bash  "},
		{name: "empty executable", executable: "", wantErr: true},
		{name: "whitespace only", executable: "   ", wantErr: true},
		{name: "embedded subcommand", executable: "helm version", wantErr: true},
		{name: "tab separated tokens", executable: "bash\t--version", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			spec, err := New(tt.executable, tt.args...)
			if tt.wantErr {
				require.Error(t, err)

				var se *vcerrors.StructuredError
				require.True(t, errors.As(err, &se))
				assert.Equal(t, vcerrors.ErrCodeInvalidRequest, se.Code)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "bash", spec.Executable)
			assert.Equal(t, tt.args, spec.Args)
		})
	}
}

func TestParse(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		wantExec string
		wantArgs []string
		wantErr  bool
	}{
		{name: "executable and flag", input: "bash --version", wantExec: "bash", wantArgs: []string{"--version"}},
		{name: "bare executable", input: "terraform", wantExec: "terraform"},
		{name: "multiple args", input: "go version -m", wantExec: "go", wantArgs: []string{"version", "-m"}},
		{name: "quoted argument", input: `mytool --name "gpu operator"`, wantExec: "mytool", wantArgs: []string{"--name", "gpu operator"}},
		{name: "empty string", input: "", wantErr: true},
		{name: "whitespace only", input: "   ", wantErr: true},
		{name: "unterminated quote", input: `bash "--version`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			spec, err := Parse(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantExec, spec.Executable)
			assert.Equal(t, tt.wantArgs, spec.Args)
		})
	}
}

func TestString(t *testing.T) {
	spec, err := New("bash", "--version")
	require.NoError(t, err)
	assert.Equal(t, "bash --version", spec.String())

	bare, err := New("terraform")
	require.NoError(t, err)
	assert.Equal(t, "terraform", bare.String())
}
