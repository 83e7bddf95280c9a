package header

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	h := New(
		WithKind(KindCheckResult),
		WithAPIVersion("vercheck.nvidia.com/v1alpha1"),
		WithMetadata("tool", "bash"),
	)

	assert.Equal(t, KindCheckResult, h.Kind)
	assert.Equal(t, "vercheck.nvidia.com/v1alpha1", h.APIVersion)
	assert.Equal(t, "bash", h.Metadata["tool"])
}

func TestInit(t *testing.T) {
	var h Header
	h.Init(KindCheckResult, "vercheck.nvidia.com/v1alpha1", "v1.2.3")

	require.NotNil(t, h.Metadata)
	assert.Equal(t, KindCheckResult, h.Kind)
	assert.NotEmpty(t, h.Metadata["id"])
	assert.NotEmpty(t, h.Metadata["timestamp"])
	assert.Equal(t, "v1.2.3", h.Metadata["version"])

	// Empty tool version leaves metadata without a version entry.
	var h2 Header
	h2.Init(KindCheckResult, "vercheck.nvidia.com/v1alpha1", "")
	_, ok := h2.Metadata["version"]
	assert.False(t, ok)

	// Each Init produces a distinct id.
	assert.NotEqual(t, h.Metadata["id"], h2.Metadata["id"])
}

func TestKindIsValid(t *testing.T) {
	k := KindCheckResult
	assert.True(t, k.IsValid())
	assert.Equal(t, "CheckResult", k.String())

	unknown := Kind("Mystery")
	assert.False(t, unknown.IsValid())
}
