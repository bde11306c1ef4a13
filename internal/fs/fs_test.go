package fs

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocalFS(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "fixtures")
	lfs := LocalFS{}

	require.NoError(t, lfs.MkdirAll(dir, 0o755))

	path := filepath.Join(dir, "ids.json")
	f, err := lfs.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_EXCL, 0o644)
	require.NoError(t, err)
	assert.Equal(t, path, f.Name())

	_, err = f.Write([]byte("[1,2]"))
	require.NoError(t, err)
	require.NoError(t, f.Sync())
	require.NoError(t, f.Close())

	renamed := filepath.Join(dir, "ids2.json")
	require.NoError(t, lfs.Rename(path, renamed))
	data, err := os.ReadFile(renamed)
	require.NoError(t, err)
	assert.Equal(t, "[1,2]", string(data))

	require.NoError(t, lfs.Remove(renamed))
	_, err = os.Stat(renamed)
	assert.True(t, os.IsNotExist(err))
}

func TestFaultyFS(t *testing.T) {
	dir := t.TempDir()
	boom := errors.New("boom")

	ffs := NewFaultyFS(nil)
	ffs.AddRule("limited", Fault{FailAfterBytes: 4, Err: boom})
	ffs.AddRule("nosync", Fault{FailAfterBytes: -1, FailOnSync: true})
	ffs.AddRule("noclose", Fault{FailAfterBytes: -1, FailOnClose: true})
	ffs.AddRule("norename", Fault{FailAfterBytes: -1, FailOnRename: true})

	open := func(name string) File {
		f, err := ffs.OpenFile(filepath.Join(dir, name), os.O_CREATE|os.O_WRONLY, 0o644)
		require.NoError(t, err)
		return f
	}

	t.Run("WriteLimit", func(t *testing.T) {
		f := open("limited.json")
		defer f.Close()

		n, err := f.Write([]byte("1234"))
		require.NoError(t, err)
		assert.Equal(t, 4, n)

		_, err = f.Write([]byte("5"))
		assert.ErrorIs(t, err, boom)
	})

	t.Run("Sync", func(t *testing.T) {
		f := open("nosync.json")
		defer f.Close()
		assert.ErrorIs(t, f.Sync(), ErrInjected)
	})

	t.Run("Close", func(t *testing.T) {
		f := open("noclose.json")
		assert.ErrorIs(t, f.Close(), ErrInjected)
	})

	t.Run("Rename", func(t *testing.T) {
		f := open("source.json")
		require.NoError(t, f.Close())
		err := ffs.Rename(filepath.Join(dir, "source.json"), filepath.Join(dir, "norename.json"))
		assert.ErrorIs(t, err, ErrInjected)
	})

	t.Run("Unmatched", func(t *testing.T) {
		f := open("plain.json")
		_, err := f.Write([]byte("unlimited"))
		require.NoError(t, err)
		require.NoError(t, f.Sync())
		require.NoError(t, f.Close())
		require.NoError(t, ffs.Rename(filepath.Join(dir, "plain.json"), filepath.Join(dir, "plain2.json")))
		require.NoError(t, ffs.Remove(filepath.Join(dir, "plain2.json")))
	})
}
