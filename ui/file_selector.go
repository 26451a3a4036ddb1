package ui

import (
	"os"
	"path/filepath"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/pkg/errors"
	"github.com/samber/lo"
)

const (
	ExtensionBSP = ".bsp"
)

// FileSelector lets the user pick one BSP file of a directory.
type FileSelector struct {
	dir      string
	files    []string
	cursor   int
	selected string
}

func CreateFileSelector(dir string) (*FileSelector, error) {
	files, err := ReadDirectory(dir)
	if err != nil {
		return nil, err
	}
	return &FileSelector{
		dir:   dir,
		files: files,
	}, nil
}

// ReadDirectory lists the BSP files directly inside path, sorted by name.
func ReadDirectory(path string) ([]string, error) {
	entries, err := os.ReadDir(path)
	if err != nil {
		err := errors.Wrap(err, "ui.ReadDirectory error reading directory")
		return nil, err
	}

	fileNames := lo.FilterMap(
		entries,
		func(entry os.DirEntry, _ int) (string, bool) {
			isBSP := strings.EqualFold(filepath.Ext(entry.Name()), ExtensionBSP)
			return entry.Name(), !entry.IsDir() && isBSP
		},
	)
	return fileNames, nil
}

// Selected returns the chosen file path, or false when the user quit.
func (s FileSelector) Selected() (string, bool) {
	return s.selected, s.selected != ""
}

func (s FileSelector) View() string {
	output := "BSP DUMP\n\n"
	output += "Current directory: " + s.dir + "\n\n"
	if len(s.files) == 0 {
		output += "No BSP file found here. Press q to quit.\n"
		return output
	}
	for i, name := range s.files {
		output += cursorMark(i == s.cursor) + name + "\n"
	}
	output += "\nenter: open, q: quit\n"
	return output
}

func (s *FileSelector) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return s, nil
	}
	switch key.String() {
	case "ctrl+c", "q", "esc":
		return s, tea.Quit
	case "up", "k":
		s.cursor = moveCursor(s.cursor, -1, len(s.files))
	case "down", "j":
		s.cursor = moveCursor(s.cursor, 1, len(s.files))
	case "enter":
		if len(s.files) > 0 {
			s.selected = filepath.Join(s.dir, s.files[s.cursor])
			return s, tea.Quit
		}
	}
	return s, nil
}

func (s *FileSelector) Init() tea.Cmd {
	return nil
}

func cursorMark(active bool) string {
	if active {
		return "> "
	}
	return "  "
}

// moveCursor keeps cursor inside [0, count).
func moveCursor(cursor int, delta int, count int) int {
	cursor += delta
	if cursor >= count {
		cursor = count - 1
	}
	if cursor < 0 {
		cursor = 0
	}
	return cursor
}
