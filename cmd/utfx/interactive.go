package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/wippyai/utfx"
	"github.com/wippyai/utfx/transcoder"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1)

	codePointStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#98FB98"))

	unitStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#87CEEB"))

	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666666"))
)

// maxRows caps the per-code-point table.
const maxRows = 24

type interactiveModel struct {
	input textinput.Model
	rows  []charInfo
	stats textStats
}

type charInfo struct {
	char  string
	utf8  string
	utf16 string
	utf32 string
	cp    utfx.CodePoint
}

type textStats struct {
	codePoints int
	utf8       int
	utf16      int
}

func newInteractiveModel(initial string) *interactiveModel {
	ti := textinput.New()
	ti.Placeholder = "type some text"
	ti.Prompt = "text: "
	ti.Width = 60
	ti.SetValue(initial)
	ti.Focus()

	m := &interactiveModel{input: ti}
	m.inspect()
	return m
}

func (m *interactiveModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m *interactiveModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.String() {
		case "ctrl+c", "esc":
			return m, tea.Quit
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	m.inspect()
	return m, cmd
}

// inspect recomputes the table for the current input.
func (m *interactiveModel) inspect() {
	text := []byte(m.input.Value())

	m.rows = m.rows[:0]
	m.stats = textStats{utf8: len(text)}
	for _, c := range transcoder.CodePoints(text) {
		if c.IsSentinel() {
			continue
		}
		m.stats.codePoints++
		utf16, _ := transcoder.AppendCodePoint[uint16](nil, c)
		m.stats.utf16 += len(utf16)
		if len(m.rows) < maxRows {
			utf8, _ := transcoder.AppendCodePoint[uint8](nil, c)
			m.rows = append(m.rows, charInfo{
				char:  printable(c),
				utf8:  hexUnits(utf8),
				utf16: hexUnits(utf16),
				utf32: hexUnits([]uint32{uint32(c)}),
				cp:    c,
			})
		}
	}
}

func hexUnits[D utfx.Unit](units []D) string {
	out := make([]string, len(units))
	for i, u := range units {
		out[i] = fmt.Sprintf("%0*X", 2*utfx.FormOf[D]().UnitSize(), u)
	}
	return strings.Join(out, " ")
}

func printable(c utfx.CodePoint) string {
	if c < 0x20 || c == 0x7F {
		return "·"
	}
	return string(rune(c))
}

func (m *interactiveModel) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("UTF Inspector"))
	b.WriteString("\n\n")
	b.WriteString(m.input.View())
	b.WriteString("\n\n")

	if err := transcoder.Validate([]byte(m.input.Value())); err != nil {
		b.WriteString(errorStyle.Render(fmt.Sprintf("Error: %v", err)))
		b.WriteString("\n\n")
	}

	b.WriteString(headerStyle.Render(fmt.Sprintf("%-4s %-9s %-12s %-10s %s", "", "code", "utf-8", "utf-16", "utf-32")))
	b.WriteString("\n")
	for _, r := range m.rows {
		b.WriteString(fmt.Sprintf("%-4s ", r.char))
		b.WriteString(codePointStyle.Render(fmt.Sprintf("%-9s", r.cp)))
		b.WriteString(" ")
		b.WriteString(unitStyle.Render(fmt.Sprintf("%-12s %-10s %s", r.utf8, r.utf16, r.utf32)))
		b.WriteString("\n")
	}
	if m.stats.codePoints > len(m.rows) {
		b.WriteString(helpStyle.Render(fmt.Sprintf("… %d more", m.stats.codePoints-len(m.rows))))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("%d code points • %d bytes utf-8 • %d units utf-16\n",
		m.stats.codePoints, m.stats.utf8, m.stats.utf16))
	b.WriteString("\n")
	b.WriteString(helpStyle.Render("type to inspect • esc quit"))

	return b.String()
}

func runInteractive(initial string) error {
	p := tea.NewProgram(newInteractiveModel(initial), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
