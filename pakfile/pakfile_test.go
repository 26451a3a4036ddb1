package pakfile

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/klauspost/compress/zip"
	"github.com/samber/lo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createArchive(t *testing.T, files map[string]string, order []string) []byte {
	t.Helper()
	buf := bytes.Buffer{}
	writer := zip.NewWriter(&buf)
	for _, name := range order {
		w, err := writer.Create(name)
		require.NoError(t, err)
		_, err = w.Write([]byte(files[name]))
		require.NoError(t, err)
	}
	require.NoError(t, writer.Close())
	return buf.Bytes()
}

func TestList(t *testing.T) {
	files := map[string]string{
		"materials/maps/test/c0_0_0.vmt": "\"patch\" {}",
		"maps/test_cubemaps.txt":         "cubemaps",
	}
	blob := createArchive(t, files, []string{"materials/maps/test/c0_0_0.vmt", "maps/test_cubemaps.txt"})

	listed, err := List(blob)
	require.NoError(t, err)
	assert.Equal(
		t,
		[]string{"materials/maps/test/c0_0_0.vmt", "maps/test_cubemaps.txt"},
		lo.Map(listed, func(file File, _ int) string { return file.Name }),
	)
	assert.Equal(t, uint64(len("cubemaps")), listed[1].UncompressedSize)
}

func TestList_Empty(t *testing.T) {
	// end of central directory record only
	blob := append([]byte("PK\u0005\u0006"), make([]byte, 18)...)
	listed, err := List(blob)
	require.NoError(t, err)
	assert.Empty(t, listed)

	_, err = List([]byte("not a zip"))
	assert.Error(t, err)
}

func TestExtract(t *testing.T) {
	files := map[string]string{
		"materials/a.vmt": "a",
		"b.txt":           "bb",
	}
	blob := createArchive(t, files, []string{"materials/a.vmt", "b.txt"})
	dir := t.TempDir()

	written, err := Extract(blob, dir)
	require.NoError(t, err)
	assert.Equal(
		t,
		[]string{filepath.Join(dir, "materials", "a.vmt"), filepath.Join(dir, "b.txt")},
		written,
	)
	for name, content := range files {
		bs, err := os.ReadFile(filepath.Join(dir, filepath.FromSlash(name)))
		require.NoError(t, err)
		assert.Equal(t, content, string(bs))
	}
}

func TestExtract_RejectsTraversal(t *testing.T) {
	files := map[string]string{
		"ok.txt":           "ok",
		"../../escape.txt": "nope",
	}
	blob := createArchive(t, files, []string{"ok.txt", "../../escape.txt"})
	dir := filepath.Join(t.TempDir(), "out")

	_, err := Extract(blob, dir)
	var unsafe ErrUnsafePath
	require.ErrorAs(t, err, &unsafe)
	assert.Equal(t, "../../escape.txt", unsafe.Name)

	_, err = os.Stat(filepath.Join(dir, "ok.txt"))
	assert.True(t, os.IsNotExist(err))
}

func TestTargetPath(t *testing.T) {
	dir := filepath.Join("tmp", "out")
	target, err := TargetPath(dir, "a/b.txt")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "a", "b.txt"), target)

	_, err = TargetPath(dir, "../out2/x")
	assert.ErrorAs(t, err, &ErrUnsafePath{})
	_, err = TargetPath(dir, "..")
	assert.ErrorAs(t, err, &ErrUnsafePath{})
}
