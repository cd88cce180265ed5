package command

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPathFinder_LookPath(t *testing.T) {
	finder := NewPathFinder()

	path, err := finder.LookPath("sh")
	require.NoError(t, err)
	assert.NotEmpty(t, path)
}

func TestPathFinder_LookPath_Missing(t *testing.T) {
	finder := NewPathFinder()

	_, err := finder.LookPath("nonexistent-command-12345")
	assert.Error(t, err)
}
