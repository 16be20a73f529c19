package ui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func TestStackPageShowsDocumentTitle(t *testing.T) {
	m := NewStackPageModel(DefaultStyles())
	m.SetSize(100, 40)

	view := m.View()
	if !strings.Contains(view, "Recommended Stack") {
		t.Error("expected stack page header to show the document title")
	}
	if !strings.Contains(view, "esc back") {
		t.Error("expected stack page to show the help line")
	}
}

func TestStackPageScrolls(t *testing.T) {
	m := NewStackPageModel(DefaultStyles())
	m.SetSize(80, 12)

	before := m.viewport.YOffset
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyDown})
	if m.viewport.YOffset <= before {
		t.Errorf("expected down key to scroll the viewport, offset %d -> %d", before, m.viewport.YOffset)
	}
}

func TestStackPageResizeRerenders(t *testing.T) {
	m := NewStackPageModel(DefaultStyles())
	m.SetSize(60, 30)
	m.SetSize(120, 50)

	if m.viewport.Width != 120 {
		t.Errorf("expected viewport width 120, got %d", m.viewport.Width)
	}
	if m.viewport.Height != PageContentHeight(50) {
		t.Errorf("expected viewport height %d, got %d", PageContentHeight(50), m.viewport.Height)
	}
}
