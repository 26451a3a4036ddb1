package ui

import (
	"fmt"
	"strings"

	"bsp-dump/bsp/bdoc"
	"bsp-dump/bsp/bheader"
	"bsp-dump/bsp/blump"
	"bsp-dump/report"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/dustin/go-humanize"
)

const (
	DefaultHeight = 24
	// lines taken by the title and the key help
	chromeHeight = 4
)

// Browser lists the lumps of a decoded document and shows one at a time.
type Browser struct {
	name     string
	document bdoc.Document
	cursor   int
	height   int
	// detail holds the rendered lump while one is open
	detail []string
	scroll int
}

func CreateBrowser(name string, document bdoc.Document) *Browser {
	return &Browser{
		name:     name,
		document: document,
		height:   DefaultHeight,
	}
}

func (b *Browser) pageSize() int {
	size := b.height - chromeHeight
	if size < 1 {
		return 1
	}
	return size
}

func (b *Browser) open() {
	lump := b.document.Lumps[b.cursor]
	text, err := report.RenderLump(b.document.Header.Dialect, b.cursor, lump)
	if err != nil {
		text = fmt.Sprintf("cannot render lump %d: %v", b.cursor, err)
	}
	b.detail = strings.Split(strings.TrimSuffix(text, "\n"), "\n")
	b.scroll = 0
}

func (b *Browser) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		b.height = msg.Height
	case tea.KeyMsg:
		return b.updateKey(msg.String())
	}
	return b, nil
}

func (b *Browser) updateKey(key string) (tea.Model, tea.Cmd) {
	if key == "ctrl+c" || key == "q" {
		return b, tea.Quit
	}

	if b.detail != nil {
		switch key {
		case "esc", "backspace", "left", "h":
			b.detail = nil
		case "up", "k":
			b.scroll = moveCursor(b.scroll, -1, len(b.detail))
		case "down", "j":
			b.scroll = moveCursor(b.scroll, 1, len(b.detail))
		case "pgup":
			b.scroll = moveCursor(b.scroll, -b.pageSize(), len(b.detail))
		case "pgdown", " ":
			b.scroll = moveCursor(b.scroll, b.pageSize(), len(b.detail))
		}
		return b, nil
	}

	switch key {
	case "up", "k":
		b.cursor = moveCursor(b.cursor, -1, len(b.document.Lumps))
	case "down", "j":
		b.cursor = moveCursor(b.cursor, 1, len(b.document.Lumps))
	case "enter", "right", "l":
		if len(b.document.Lumps) > 0 {
			b.open()
		}
	}
	return b, nil
}

func (b *Browser) View() string {
	header := b.document.Header
	output := fmt.Sprintf("%s  %s v%d\n\n", b.name, header.Dialect, header.Version)

	if b.detail != nil {
		end := b.scroll + b.pageSize()
		if end > len(b.detail) {
			end = len(b.detail)
		}
		output += strings.Join(b.detail[b.scroll:end], "\n") + "\n"
		output += "\nesc: back, up/down: scroll, q: quit\n"
		return output
	}

	// keep the cursor inside the visible window
	start := 0
	if b.cursor >= b.pageSize() {
		start = b.cursor - b.pageSize() + 1
	}
	end := start + b.pageSize()
	if end > len(b.document.Lumps) {
		end = len(b.document.Lumps)
	}
	for index := start; index < end; index++ {
		output += cursorMark(index == b.cursor) + b.describe(header, index) + "\n"
	}
	output += "\nenter: open, q: quit\n"
	return output
}

func (b *Browser) describe(header bheader.Header, index int) string {
	entry := header.Entry(index)
	return fmt.Sprintf(
		"%2d %-36s %-24s %s",
		index,
		blump.Name(header.Dialect, index),
		b.document.Lumps[index].Kind(),
		humanize.Bytes(uint64(entry.Length)),
	)
}

func (b *Browser) Init() tea.Cmd {
	return nil
}
