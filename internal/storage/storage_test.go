package storage

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpen(t *testing.T) {
	t.Run("creates an empty file when absent", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "contacts.dat")

		g, err := Open(path)
		require.NoError(t, err)
		assert.Equal(t, path, g.Path())

		info, err := os.Stat(path)
		require.NoError(t, err)
		assert.Equal(t, int64(0), info.Size())
	})

	t.Run("leaves an existing file untouched", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "contacts.dat")
		require.NoError(t, os.WriteFile(path, []byte("existing"), 0644))

		_, err := Open(path)
		require.NoError(t, err)

		data, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Equal(t, "existing", string(data))
	})

	t.Run("empty path is an error", func(t *testing.T) {
		_, err := Open("")
		require.Error(t, err)
	})

	t.Run("directory is an error", func(t *testing.T) {
		_, err := Open(t.TempDir())
		require.Error(t, err)
		assert.Contains(t, err.Error(), "is a directory")
	})

	t.Run("missing parent directory is an error", func(t *testing.T) {
		_, err := Open(filepath.Join(t.TempDir(), "no", "such", "contacts.dat"))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to create")
	})
}

func TestSaveLoad(t *testing.T) {
	t.Run("load of a fresh file is empty", func(t *testing.T) {
		g, err := Open(filepath.Join(t.TempDir(), "contacts.dat"))
		require.NoError(t, err)

		data, err := g.Load()
		require.NoError(t, err)
		assert.Empty(t, data)
	})

	t.Run("save overwrites the whole file", func(t *testing.T) {
		g, err := Open(filepath.Join(t.TempDir(), "contacts.dat"))
		require.NoError(t, err)

		require.NoError(t, g.Save([]byte("a much longer first version")))
		require.NoError(t, g.Save([]byte("short")))

		data, err := g.Load()
		require.NoError(t, err)
		assert.Equal(t, "short", string(data))
	})

	t.Run("binary content round trips", func(t *testing.T) {
		g, err := Open(filepath.Join(t.TempDir(), "contacts.dat"))
		require.NoError(t, err)

		blob := []byte{0x00, 0xff, 0x10, '\n', 0x7f}
		require.NoError(t, g.Save(blob))

		data, err := g.Load()
		require.NoError(t, err)
		assert.Equal(t, blob, data)
	})

	t.Run("load reports a removed file as missing", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "contacts.dat")
		g, err := Open(path)
		require.NoError(t, err)
		require.NoError(t, os.Remove(path))

		data, err := g.Load()
		require.Error(t, err)
		assert.True(t, errors.Is(err, ErrMissing))
		assert.Nil(t, data)
	})

	t.Run("save recreates a removed file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "contacts.dat")
		g, err := Open(path)
		require.NoError(t, err)
		require.NoError(t, os.Remove(path))

		require.NoError(t, g.Save([]byte("back")))
		data, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Equal(t, "back", string(data))
	})

	t.Run("save into a removed directory fails", func(t *testing.T) {
		dir := filepath.Join(t.TempDir(), "sub")
		require.NoError(t, os.Mkdir(dir, 0755))
		g, err := Open(filepath.Join(dir, "contacts.dat"))
		require.NoError(t, err)
		require.NoError(t, os.RemoveAll(dir))

		err = g.Save([]byte("x"))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to write")
	})
}
