package ui

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestReadDirectory(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"b.bsp", "a.BSP", "notes.txt"} {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), nil, 0o644))
	}
	require.NoError(t, os.Mkdir(filepath.Join(dir, "maps.bsp"), 0o755))

	files, err := ReadDirectory(dir)
	require.NoError(t, err)
	require.Equal(t, []string{"a.BSP", "b.bsp"}, files)

	_, err = ReadDirectory(filepath.Join(dir, "missing"))
	require.Error(t, err)
}

func TestFileSelector(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"a.bsp", "b.bsp"} {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), nil, 0o644))
	}
	selector, err := CreateFileSelector(dir)
	require.NoError(t, err)
	require.Contains(t, selector.View(), "> a.bsp")

	_, ok := selector.Selected()
	require.False(t, ok)

	_, cmd := press(selector, keyDown, keyDown, keyEnter)
	require.NotNil(t, cmd)
	path, ok := selector.Selected()
	require.True(t, ok)
	require.Equal(t, filepath.Join(dir, "b.bsp"), path)
}

func TestFileSelector_Empty(t *testing.T) {
	selector, err := CreateFileSelector(t.TempDir())
	require.NoError(t, err)
	require.Contains(t, selector.View(), "No BSP file found")

	_, cmd := press(selector, keyEnter)
	require.Nil(t, cmd)
}

func TestMoveCursor(t *testing.T) {
	require.Equal(t, 0, moveCursor(0, -1, 3))
	require.Equal(t, 2, moveCursor(2, 1, 3))
	require.Equal(t, 0, moveCursor(0, 1, 0))
}
