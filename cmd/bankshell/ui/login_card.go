package ui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Focusable elements on the card, in tab order.
const (
	focusEmail = iota
	focusPassword
	focusButton
	focusCount
)

// Static card copy. The form is a scaffold: values are never validated or
// submitted anywhere.
const (
	CardTitle       = "Login"
	CardDescription = "Enter your email below to login to your account"
	FooterCaption   = "Don't have an account? Sign up"
	EmailLabel      = "Email"
	PasswordLabel   = "Password"
)

// LoginCardModel renders the login card and tracks button activations.
// The click counter is view-local state: it starts at zero, goes up by one
// per activation, and dies with the model.
type LoginCardModel struct {
	email    textinput.Model
	password textinput.Model
	focus    int
	clicks   int
	styles   Styles
	width    int
	height   int
}

// NewLoginCardModel creates the login card with the email field focused.
func NewLoginCardModel(styles Styles) LoginCardModel {
	email := textinput.New()
	email.Placeholder = "m@example.com"
	email.Prompt = ""
	email.CharLimit = 256
	email.Width = InputWidth
	email.TextStyle = styles.InputText
	email.PlaceholderStyle = styles.Placeholder
	email.Focus()

	password := textinput.New()
	password.Prompt = ""
	password.CharLimit = 256
	password.Width = InputWidth
	password.EchoMode = textinput.EchoPassword
	password.EchoCharacter = '•'
	password.TextStyle = styles.InputText
	password.PlaceholderStyle = styles.Placeholder

	return LoginCardModel{
		email:    email,
		password: password,
		focus:    focusEmail,
		styles:   styles,
	}
}

// SetSize records the terminal size used to center the card.
func (m *LoginCardModel) SetSize(w, h int) {
	m.width = w
	m.height = h
}

// Clicks returns how many times the button has been activated.
func (m LoginCardModel) Clicks() int {
	return m.clicks
}

// Update handles messages.
func (m LoginCardModel) Update(msg tea.Msg) (LoginCardModel, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.Type {
		case tea.KeyTab, tea.KeyDown:
			m.cycleFocus(1)
			return m, nil
		case tea.KeyShiftTab, tea.KeyUp:
			m.cycleFocus(-1)
			return m, nil
		case tea.KeyEnter:
			if m.focus == focusButton {
				m.clicks++
			} else {
				// Enter on a field walks the form, like pressing tab.
				m.cycleFocus(1)
			}
			return m, nil
		case tea.KeySpace:
			if m.focus == focusButton {
				m.clicks++
				return m, nil
			}
		}
	}

	// Everything else belongs to the focused field.
	var cmd tea.Cmd
	switch m.focus {
	case focusEmail:
		m.email, cmd = m.email.Update(msg)
	case focusPassword:
		m.password, cmd = m.password.Update(msg)
	}
	return m, cmd
}

// cycleFocus moves focus by delta with wraparound and keeps the textinput
// focus flags in sync.
func (m *LoginCardModel) cycleFocus(delta int) {
	m.focus = (m.focus + delta + focusCount) % focusCount

	if m.focus == focusEmail {
		m.email.Focus()
	} else {
		m.email.Blur()
	}
	if m.focus == focusPassword {
		m.password.Focus()
	} else {
		m.password.Blur()
	}
}

// ButtonLabel is the button text with the click count embedded.
func (m LoginCardModel) ButtonLabel() string {
	return fmt.Sprintf("Login (Clicked %d times)", m.clicks)
}

func (m LoginCardModel) renderField(in textinput.Model, focused bool) string {
	if focused {
		return m.styles.FieldFocused.Render(in.View())
	}
	return m.styles.FieldBlurred.Render(in.View())
}

// View renders the card.
func (m LoginCardModel) View() string {
	button := m.styles.ButtonBlurred.Render(m.ButtonLabel())
	if m.focus == focusButton {
		button = m.styles.ButtonFocused.Render(m.ButtonLabel())
	}

	content := lipgloss.JoinVertical(lipgloss.Left,
		m.styles.Title.Render(CardTitle),
		m.styles.Subtitle.Render(CardDescription),
		"",
		m.styles.Label.Render(EmailLabel),
		m.renderField(m.email, m.focus == focusEmail),
		m.styles.Label.Render(PasswordLabel),
		m.renderField(m.password, m.focus == focusPassword),
		"",
		button,
		"",
		m.styles.Footer.Render(FooterCaption),
	)

	return m.styles.Card.Render(content)
}
