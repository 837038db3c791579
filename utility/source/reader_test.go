package source

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReaderCache(t *testing.T) {
	path := filepath.Join(t.TempDir(), "patient_rpc.rs")
	require.NoError(t, os.WriteFile(path, []byte("first\r\nline"), 0o644))

	reader, err := NewReader(4)
	require.NoError(t, err)

	content, err := reader.Read(path)
	require.NoError(t, err)
	assert.Equal(t, "first\nline", content)

	// * cached content survives a rewrite until forgotten
	require.NoError(t, os.WriteFile(path, []byte("second"), 0o644))
	content, err = reader.Read(path)
	require.NoError(t, err)
	assert.Equal(t, "first\nline", content)

	reader.Forget(path)
	content, err = reader.Read(path)
	require.NoError(t, err)
	assert.Equal(t, "second", content)
	assert.Equal(t, 1, reader.Len())

	reader.Purge()
	assert.Equal(t, 0, reader.Len())
}

func TestReaderMissingFile(t *testing.T) {
	reader, err := NewReader(4)
	require.NoError(t, err)

	_, err = reader.Read(filepath.Join(t.TempDir(), "missing.rs"))
	assert.Error(t, err)
}

func TestReaderInvalidSize(t *testing.T) {
	_, err := NewReader(0)
	assert.Error(t, err)
}
