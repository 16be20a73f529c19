// Package main provides the bankshell CLI entry point.
// This file implements the interactive UI shell using bubbletea.
package main

import (
	"fmt"
	"os"

	"bankshell/cmd/bankshell/config"
	"bankshell/cmd/bankshell/ui"
	"bankshell/internal/logging"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/google/uuid"
)

// page identifies the active UI page
type page int

const (
	pageLogin page = iota
	pageStack
)

// appModel is the top-level model for the interactive UI
type appModel struct {
	// Pages
	login ui.LoginCardModel
	stack ui.StackPageModel

	// State
	page      page
	styles    ui.Styles
	cfg       config.Config
	sessionID string
	width     int
	height    int
	ready     bool
}

// resolveStyles picks the theme from config, falling back to terminal
// detection for "auto".
func resolveStyles(cfg config.Config, forceDark bool) ui.Styles {
	switch {
	case forceDark || cfg.Theme == config.ThemeDark:
		return ui.NewStyles(ui.DarkTheme())
	case cfg.Theme == config.ThemeLight:
		return ui.NewStyles(ui.LightTheme())
	}
	return ui.DefaultStyles()
}

// initApp initializes the interactive UI model
func initApp() appModel {
	cfg, err := config.Load()
	if err != nil {
		logging.ConfigLog("config load failed, using defaults: %v", err)
	}

	styles := resolveStyles(cfg, darkMode)
	sessionID := fmt.Sprintf("sess_%s", uuid.NewString()[:8])
	logging.Session("UI session started: %s (theme=%s)", sessionID, cfg.Theme)

	return appModel{
		login:     ui.NewLoginCardModel(styles),
		stack:     ui.NewStackPageModel(styles),
		page:      pageLogin,
		styles:    styles,
		cfg:       cfg,
		sessionID: sessionID,
	}
}

// Init implements tea.Model.
func (m appModel) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m appModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.login.SetSize(msg.Width, msg.Height)
		m.stack.SetSize(msg.Width, msg.Height)
		m.ready = true
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			logging.Session("UI session ended: %s (clicks=%d)", m.sessionID, m.login.Clicks())
			return m, tea.Quit
		case "f2":
			if m.page == pageLogin {
				m.page = pageStack
				logging.UI("stack page opened")
			} else {
				m.page = pageLogin
			}
			return m, nil
		case "esc":
			if m.page == pageStack {
				m.page = pageLogin
				return m, nil
			}
		}
	}

	var cmd tea.Cmd
	switch m.page {
	case pageLogin:
		m.login, cmd = m.login.Update(msg)
	case pageStack:
		m.stack, cmd = m.stack.Update(msg)
	}
	return m, cmd
}

// View implements tea.Model.
func (m appModel) View() string {
	if !m.ready {
		return "Initializing..."
	}

	if m.page == pageStack {
		return m.stack.View()
	}

	help := m.styles.Help.Render("tab/shift+tab move · enter activate · f2 stack doc · ctrl+c quit")
	card := lipgloss.JoinVertical(lipgloss.Center, m.login.View(), help)
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, card)
}

// runLoginUI starts the interactive UI
func runLoginUI() error {
	workspace, _ := os.Getwd()
	if err := logging.Initialize(workspace); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: logging unavailable: %v\n", err)
	}
	defer logging.CloseAll()

	logging.Boot("bankshell %s starting", Version)

	p := tea.NewProgram(initApp(), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("UI error: %w", err)
	}
	return nil
}
