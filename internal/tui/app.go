package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/f3rmion/hanzipy/internal/clipboard"
	"github.com/f3rmion/hanzipy/internal/pinyin"
	"github.com/mattn/go-runewidth"
)

type clearCopiedMsg struct{}

func clearCopiedAfter(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg {
		return clearCopiedMsg{}
	})
}

// reading is one input position with every tone-marked candidate.
type reading struct {
	char     string
	readings []string
}

// AppModel is the interactive transliteration model.
type AppModel struct {
	input    textinput.Model
	conv     *pinyin.GoPinyin
	translit *pinyin.Transliterator
	copy     func(string) error

	value    string
	result   pinyin.Result
	readings []reading
	err      error

	copied string // Name of the field last copied, cleared by a tick
}

const (
	minInputWidth = 10
	maxInputWidth = 60
)

// inputWidth fits the text input inside the padded content area.
func inputWidth(termWidth int) int {
	w := termWidth - 8 // content padding, prompt and cursor
	if w < minInputWidth {
		return minInputWidth
	}
	if w > maxInputWidth {
		return maxInputWidth
	}
	return w
}

// NewApp creates the TUI model around conv.
func NewApp(conv *pinyin.GoPinyin) AppModel {
	ti := textinput.New()
	ti.Placeholder = "Enter Chinese characters..."
	ti.Focus()
	ti.CharLimit = 64
	ti.Width = 40
	ti.PromptStyle = lipgloss.NewStyle().Foreground(ColorSecondary)
	ti.TextStyle = lipgloss.NewStyle().Foreground(ColorAccent)

	return AppModel{
		input:    ti,
		conv:     conv,
		translit: pinyin.New(conv),
		copy:     clipboard.Write,
	}
}

// Init initializes the model
func (m AppModel) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles messages
func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			return m, tea.Quit
		case "ctrl+y":
			return m.copyField("pinyin", m.result.Pinyin)
		case "alt+y":
			return m.copyField("py", m.result.Py)
		}

	case tea.WindowSizeMsg:
		m.input.Width = inputWidth(msg.Width)
		return m, nil

	case clearCopiedMsg:
		m.copied = ""
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	if v := m.input.Value(); v != m.value {
		m.value = v
		m.refresh()
	}
	return m, cmd
}

func (m AppModel) copyField(name, text string) (tea.Model, tea.Cmd) {
	if text == "" {
		return m, nil
	}
	if err := m.copy(text); err != nil {
		m.err = fmt.Errorf("copying %s: %w", name, err)
		return m, nil
	}
	m.copied = name
	return m, clearCopiedAfter(2 * time.Second)
}

// refresh recomputes the result for the current input value.
func (m *AppModel) refresh() {
	m.err = nil
	m.readings = nil

	word := strings.TrimSpace(m.value)
	result, err := m.translit.Transliterate(word)
	if err != nil {
		m.result = pinyin.Result{}
		m.err = err
		return
	}
	m.result = result

	groups := m.conv.Groups(word)
	runes := []rune(word)
	// Groups drops positions under the drop policy, so only pair them up
	// when every rune produced a group.
	if len(groups) != len(runes) {
		return
	}
	for i, g := range groups {
		m.readings = append(m.readings, reading{char: string(runes[i]), readings: g})
	}
}

// View renders the model.
func (m AppModel) View() string {
	var b strings.Builder

	b.WriteString(TitleStyle.Render("hanzipy"))
	b.WriteString(" ")
	b.WriteString(SubtitleStyle.Render("pinyin transliteration"))
	b.WriteString("\n\n")

	b.WriteString(m.input.View())
	b.WriteString("\n")

	if m.err != nil {
		b.WriteString("\n")
		b.WriteString(ErrorStyle.Render(m.err.Error()))
		b.WriteString("\n")
	}

	if m.result.Pinyin != "" || m.result.Py != "" {
		b.WriteString(m.renderResult())
	}

	b.WriteString("\n")
	help := "ctrl+y: copy pinyin • alt+y: copy py • esc: quit"
	if m.copied != "" {
		b.WriteString(CopiedStyle.Render(fmt.Sprintf("✓ copied %s", m.copied)))
		b.WriteString("  ")
	}
	b.WriteString(HelpStyle.Render(help))

	return ContentStyle.Render(b.String())
}

func (m AppModel) renderResult() string {
	var rows []string
	rows = append(rows,
		LabelStyle.Render("pinyin")+PinyinStyle.Render(m.result.Pinyin),
		LabelStyle.Render("py")+PyStyle.Render(m.result.Py),
	)

	if len(m.readings) > 0 {
		var chars, readings []string
		for _, r := range m.readings {
			joined := strings.Join(r.readings, "/")
			w := runewidth.StringWidth(joined)
			if cw := runewidth.StringWidth(r.char); cw > w {
				w = cw
			}
			w += 2
			chars = append(chars, CharacterStyle.Render(runewidth.FillRight(r.char, w)))
			readings = append(readings, ReadingStyle.Render(runewidth.FillRight(joined, w)))
		}
		rows = append(rows, "", strings.Join(chars, ""), strings.Join(readings, ""))
	}

	return BoxStyle.Render(strings.Join(rows, "\n"))
}
