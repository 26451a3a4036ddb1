// Package pakfile lists and extracts the zip archive embedded in VBSP files.
package pakfile

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/klauspost/compress/zip"
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
)

type (
	File struct {
		Name             string `json:"name"`
		CompressedSize   uint64 `json:"compressed_size"`
		UncompressedSize uint64 `json:"uncompressed_size"`
	}
	ErrUnsafePath struct {
		Name string
	}
)

func (r ErrUnsafePath) Error() string {
	return "pakfile: entry escapes the target directory: " + r.Name
}

func open(blob []byte) (*zip.Reader, error) {
	reader, err := zip.NewReader(bytes.NewReader(blob), int64(len(blob)))
	if err != nil {
		err := errors.Wrap(err, "pakfile.open error reading archive")
		return nil, err
	}
	return reader, nil
}

func List(blob []byte) ([]File, error) {
	reader, err := open(blob)
	if err != nil {
		return nil, err
	}
	files := make([]File, 0, len(reader.File))
	for _, file := range reader.File {
		if file.FileInfo().IsDir() {
			continue
		}
		files = append(files, File{
			Name:             file.Name,
			CompressedSize:   file.CompressedSize64,
			UncompressedSize: file.UncompressedSize64,
		})
	}
	return files, nil
}

// TargetPath joins name onto dir and refuses names that would land outside it.
func TargetPath(dir string, name string) (string, error) {
	target := filepath.Join(dir, filepath.FromSlash(name))
	relative, err := filepath.Rel(dir, target)
	if err != nil || relative == ".." || strings.HasPrefix(relative, ".."+string(filepath.Separator)) {
		return "", ErrUnsafePath{Name: name}
	}
	return target, nil
}

func extractFile(file *zip.File, target string) error {
	if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
		return err
	}
	reader, err := file.Open()
	if err != nil {
		return err
	}
	defer reader.Close()

	writer, err := os.Create(target)
	if err != nil {
		return err
	}
	defer writer.Close()

	_, err = io.Copy(writer, reader)
	return err
}

// Extract writes every archive entry below dir and returns the written paths.
// Nothing is written when any entry name is unsafe.
func Extract(blob []byte, dir string) ([]string, error) {
	reader, err := open(blob)
	if err != nil {
		return nil, err
	}

	targets := make([]string, len(reader.File))
	for i, file := range reader.File {
		targets[i], err = TargetPath(dir, file.Name)
		if err != nil {
			return nil, err
		}
	}

	written := make([]string, 0, len(reader.File))
	for i, file := range reader.File {
		if file.FileInfo().IsDir() {
			continue
		}
		if err := extractFile(file, targets[i]); err != nil {
			err := errors.Wrapf(err, "pakfile.Extract error writing %q", file.Name)
			return nil, err
		}
		log.Debug().
			Str("name", file.Name).
			Uint64("size", file.UncompressedSize64).
			Msg("extracted file")
		written = append(written, targets[i])
	}
	return written, nil
}
