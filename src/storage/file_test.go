package storage_test

import (
	"io"
	"testing"

	"keep-app/src/storage"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newFileStore(t *testing.T) *storage.FileStore {
	t.Helper()
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	fs, err := storage.NewFileStore(t.TempDir(), logger)
	require.NoError(t, err)
	return fs
}

func TestFileStoreRoundTrip(t *testing.T) {
	fs := newFileStore(t)

	require.NoError(t, fs.Save(storage.NotesKey, []byte(`[{"id":"n1"}]`)))

	data, err := fs.Load(storage.NotesKey)
	require.NoError(t, err)
	assert.Equal(t, `[{"id":"n1"}]`, string(data))
}

func TestFileStoreLoadMissingKey(t *testing.T) {
	fs := newFileStore(t)

	_, err := fs.Load(storage.NotesKey)
	assert.ErrorIs(t, err, storage.ErrNotFound)
}

func TestFileStoreOverwrite(t *testing.T) {
	fs := newFileStore(t)

	require.NoError(t, fs.Save(storage.LabelsKey, []byte(`[]`)))
	require.NoError(t, fs.Save(storage.LabelsKey, []byte(`[{"id":"l1","name":"work"}]`)))

	data, err := fs.Load(storage.LabelsKey)
	require.NoError(t, err)
	assert.Equal(t, `[{"id":"l1","name":"work"}]`, string(data))
}

func TestFileStoreKeysAreIndependent(t *testing.T) {
	fs := newFileStore(t)

	require.NoError(t, fs.Save(storage.NotesKey, []byte(`[1]`)))

	// 別キーは影響を受けない
	_, err := fs.Load(storage.LabelsKey)
	assert.ErrorIs(t, err, storage.ErrNotFound)
}
