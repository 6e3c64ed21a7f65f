package main

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/hystudios/web/pkg/formclient"
)

var (
	titleStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#6ee7ff"))
	labelStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	focusStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#a78bfa"))
	errorStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#fca5a5"))
	successStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#86efac"))
	helpStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	disabledStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
)

// Focus order: name, email, org, interest, message.
const (
	fieldName = iota
	fieldEmail
	fieldOrg
	fieldInterest
	fieldMessage
	fieldCount
)

type submittedMsg struct {
	status formclient.Status
	err    error
}

type model struct {
	client *formclient.Client

	inputs   [3]textinput.Model // name, email, org
	message  textarea.Model
	interest int
	focus    int

	spinner spinner.Model
	pending bool
}

func newModel(client *formclient.Client) model {
	m := model{
		client:   client,
		message:  textarea.New(),
		spinner:  spinner.New(spinner.WithSpinner(spinner.Dot), spinner.WithStyle(focusStyle)),
		interest: indexOf(formclient.Interests, formclient.DefaultInterest),
	}

	placeholders := [3]string{"Name", "Email", "Organization (optional)"}
	for i := range m.inputs {
		in := textinput.New()
		in.Placeholder = placeholders[i]
		in.CharLimit = 160
		m.inputs[i] = in
	}
	m.inputs[fieldName].Focus()

	m.message.Placeholder = "Message (optional)"
	m.message.CharLimit = 2000
	m.message.SetHeight(4)
	m.message.ShowLineNumbers = false

	return m
}

func indexOf(list []string, v string) int {
	for i, s := range list {
		if s == v {
			return i
		}
	}
	return 0
}

// form returns the current values. The honeypot is never filled by a human.
func (m model) form() formclient.Form {
	return formclient.Form{
		Name:     m.inputs[fieldName].Value(),
		Email:    m.inputs[fieldEmail].Value(),
		Org:      m.inputs[fieldOrg].Value(),
		Interest: formclient.Interests[m.interest],
		Message:  m.message.Value(),
	}
}

func (m model) canSubmit() bool {
	return !m.pending && m.client.CanSubmit(m.form())
}

func submitForm(client *formclient.Client, f formclient.Form) tea.Cmd {
	return func() tea.Msg {
		status, err := client.Submit(context.Background(), f)
		return submittedMsg{status: status, err: err}
	}
}

func (m model) Init() tea.Cmd {
	return textinput.Blink
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			return m, tea.Quit
		}

		if m.client.Status() == formclient.StatusSuccess {
			if msg.String() == "q" || msg.String() == "enter" {
				return m, tea.Quit
			}
			return m, nil
		}

		switch msg.String() {
		case "ctrl+s":
			if !m.canSubmit() {
				return m, nil
			}
			m.pending = true
			return m, tea.Batch(m.spinner.Tick, submitForm(m.client, m.form()))
		case "tab", "down":
			cmd := m.setFocus((m.focus + 1) % fieldCount)
			return m, cmd
		case "shift+tab", "up":
			cmd := m.setFocus((m.focus + fieldCount - 1) % fieldCount)
			return m, cmd
		case "left", "right":
			if m.focus == fieldInterest {
				n := len(formclient.Interests)
				if msg.String() == "left" {
					m.interest = (m.interest + n - 1) % n
				} else {
					m.interest = (m.interest + 1) % n
				}
				return m, nil
			}
		}

	case submittedMsg:
		// Outcome and message live in the client.
		m.pending = false
		return m, nil

	case spinner.TickMsg:
		if !m.pending {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}

	cmd := m.updateFocused(msg)
	return m, cmd
}

// setFocus moves focus to field i and returns that input's focus command.
func (m *model) setFocus(i int) tea.Cmd {
	m.focus = i
	for j := range m.inputs {
		m.inputs[j].Blur()
	}
	m.message.Blur()

	switch i {
	case fieldName, fieldEmail, fieldOrg:
		return m.inputs[i].Focus()
	case fieldMessage:
		return m.message.Focus()
	}
	return nil
}

func (m *model) updateFocused(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	switch m.focus {
	case fieldName, fieldEmail, fieldOrg:
		m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	case fieldMessage:
		m.message, cmd = m.message.Update(msg)
	}
	return cmd
}

func (m model) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("Hudson Yards Studios · Request the deck"))
	b.WriteString("\n\n")

	if m.client.Status() == formclient.StatusSuccess {
		b.WriteString(successStyle.Render("Thanks — received."))
		b.WriteString("\nWe’ll follow up shortly.\n\n")
		b.WriteString(helpStyle.Render("enter/q: quit"))
		return b.String()
	}

	labels := [3]string{"Name", "Email", "Org"}
	for i, in := range m.inputs {
		b.WriteString(m.label(i, labels[i]))
		b.WriteString(in.View())
		b.WriteString("\n")
	}

	b.WriteString(m.label(fieldInterest, "Interest"))
	b.WriteString("‹ " + formclient.Interests[m.interest] + " ›\n")

	b.WriteString(m.label(fieldMessage, "Message"))
	b.WriteString("\n")
	b.WriteString(m.message.View())
	b.WriteString("\n\n")

	switch {
	case m.pending:
		b.WriteString(m.spinner.View() + " Sending…")
	case m.canSubmit():
		b.WriteString(focusStyle.Render("[ Submit: ctrl+s ]"))
	default:
		b.WriteString(disabledStyle.Render("[ Submit ]"))
	}
	b.WriteString("\n")

	if m.client.Status() == formclient.StatusError && !m.pending {
		b.WriteString(errorStyle.Render(m.client.Err()))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(helpStyle.Render("tab/shift+tab: move · ←/→: change interest · ctrl+s: submit · esc: quit"))
	return b.String()
}

func (m model) label(field int, text string) string {
	style := labelStyle
	if m.focus == field {
		style = focusStyle
	}
	return style.Render(text+": ")
}
