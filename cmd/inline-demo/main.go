package main

import (
	"fmt"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/iw2rmb/inlinestr/inline"
)

var (
	boxStyle    = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
	labelStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	cursorStyle = lipgloss.NewStyle().Reverse(true)
	gaugeOn     = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	gaugeOff    = lipgloss.NewStyle().Foreground(lipgloss.Color("238"))
	noticeStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("203"))
)

type model struct {
	line   inline.String
	notice string
}

func (m model) Init() tea.Cmd { return nil }

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	m.notice = ""
	switch key.String() {
	case "ctrl+c", "ctrl+q", "esc":
		return m, tea.Quit
	case "ctrl+u":
		m.line.Clear()
	case "backspace":
		m.line.PopGrapheme()
	case "tab", "enter":
		// single-line input, nothing to do
	default:
		var err error
		switch key.Type {
		case tea.KeyRunes:
			err = m.line.PushString(string(key.Runes))
		case tea.KeySpace:
			err = m.line.Push(' ')
		default:
			return m, nil
		}
		if err != nil {
			m.notice = fmt.Sprintf("rejected: %v", err)
		}
	}
	return m, nil
}

func (m model) View() string {
	var b strings.Builder

	b.WriteString(labelStyle.Render(fmt.Sprintf("inline.String demo: type to fill the %d-byte buffer", inline.Capacity)))
	b.WriteByte('\n')
	b.WriteString(boxStyle.Render(m.line.String() + cursorStyle.Render(" ")))
	b.WriteByte('\n')

	used := m.line.Len()
	b.WriteString(gaugeOn.Render(strings.Repeat("█", used)))
	b.WriteString(gaugeOff.Render(strings.Repeat("░", inline.Capacity-used)))
	fmt.Fprintf(&b, " %d/%d bytes, %d clusters, width %d\n",
		used, inline.Capacity, m.line.GraphemeCount(), m.line.Width())

	if m.notice != "" {
		b.WriteString(noticeStyle.Render(m.notice))
		b.WriteByte('\n')
	}
	b.WriteString(labelStyle.Render("backspace deletes a full cluster · ctrl+u clears · ctrl+q quits"))
	return b.String()
}

func main() {
	p := tea.NewProgram(model{})
	if _, err := p.Run(); err != nil {
		_, _ = os.Stderr.WriteString(err.Error() + "\n")
		os.Exit(1)
	}
}
