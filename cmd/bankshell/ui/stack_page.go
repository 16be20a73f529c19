package ui

import (
	"fmt"

	"bankshell/internal/stackdoc"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
)

// StackPageModel shows the recommended-stack document for the full banking
// application in a scrollable viewport. The document is reference material
// only; nothing it names is implemented here.
type StackPageModel struct {
	viewport viewport.Model
	styles   Styles
	title    string
	width    int
	height   int
}

// NewStackPageModel creates the stack reference page.
func NewStackPageModel(styles Styles) StackPageModel {
	vp := viewport.New(80, 20)

	title := "Recommended Stack"
	if meta, _, err := stackdoc.Parse(); err == nil && meta.Title != "" {
		title = meta.Title
	}

	m := StackPageModel{
		viewport: vp,
		styles:   styles,
		title:    title,
	}
	m.renderContent(80)
	return m
}

// SetSize updates the viewport size and re-renders the document at the new
// width.
func (m *StackPageModel) SetSize(w, h int) {
	m.width = w
	m.height = h
	m.viewport.Width = w
	m.viewport.Height = PageContentHeight(h)
	m.renderContent(DocWidth(w))
}

func (m *StackPageModel) renderContent(width int) {
	out, err := stackdoc.Render(width, m.styles.Theme.IsDark)
	if err != nil {
		m.viewport.SetContent(m.styles.Error.Render(fmt.Sprintf("Could not render stack document: %v", err)))
		return
	}
	m.viewport.SetContent(out)
}

// Update handles messages (scrolling only).
func (m StackPageModel) Update(msg tea.Msg) (StackPageModel, tea.Cmd) {
	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

// View renders the page with a header and scroll help line.
func (m StackPageModel) View() string {
	header := m.styles.Header.Render(m.title)
	help := m.styles.Help.Render(fmt.Sprintf("↑/↓ scroll · esc back · %3.0f%%", m.viewport.ScrollPercent()*100))
	return header + "\n" + m.viewport.View() + "\n" + help
}
