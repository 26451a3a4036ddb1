// Package ui holds the interactive terminal views.
package ui

import (
	"bsp-dump/bsp/bdoc"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/pkg/errors"
)

// SelectFile runs the file selector over dir and returns the chosen path.
func SelectFile(dir string) (string, bool, error) {
	selector, err := CreateFileSelector(dir)
	if err != nil {
		return "", false, err
	}
	if err := tea.NewProgram(selector).Start(); err != nil {
		err := errors.Wrap(err, "ui.SelectFile error running selector")
		return "", false, err
	}
	path, ok := selector.Selected()
	return path, ok, nil
}

func Start(name string, document bdoc.Document) error {
	browser := CreateBrowser(name, document)
	if err := tea.NewProgram(browser).Start(); err != nil {
		err := errors.Wrap(err, "ui.Start error running browser")
		return err
	}
	return nil
}
