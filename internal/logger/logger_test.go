package logger

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewWritesRotatedFile(t *testing.T) {
	dir := t.TempDir()

	log, err := New(dir, false)
	require.NoError(t, err)

	log.Info("order created")
	_ = log.Sync()

	data, err := os.ReadFile(filepath.Join(dir, fileName))
	require.NoError(t, err)
	assert.Contains(t, string(data), "order created")
}

func TestNewWithoutPath(t *testing.T) {
	log, err := New("", true)
	require.NoError(t, err)
	assert.NotNil(t, log)
}
