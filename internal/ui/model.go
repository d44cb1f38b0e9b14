package ui

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"capacity/pkg/capacity"
)

// Options controls how the converter reads its input.
type Options struct {
	Lenient bool
}

// result is the outcome of reading the current input.
type result struct {
	input string
	bytes capacity.ByteCount
	err   error
}

// Model is an interactive converter: every keystroke re-parses the input
// and shows the byte count in its plain, rounded and exact forms.
type Model struct {
	input   textinput.Model
	lenient bool
	result  result
	styles  Styles
}

func NewModel(opts Options) Model {
	ti := textinput.New()
	ti.Placeholder = "4K, 1.5M, 1048576"
	ti.Prompt = "› "
	ti.CharLimit = 32
	ti.Width = 32
	ti.Focus()

	return Model{
		input:   ti,
		lenient: opts.Lenient,
		styles:  defaultStyles(),
	}
}

func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "esc", "ctrl+c":
			return m, tea.Quit
		case "ctrl+l":
			m.lenient = !m.lenient
			m.result = m.evaluate(m.input.Value())
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	if v := m.input.Value(); v != m.result.input {
		m.result = m.evaluate(v)
	}
	return m, cmd
}

func (m Model) evaluate(s string) result {
	r := result{input: s}
	if s == "" {
		return r
	}
	if m.lenient {
		r.bytes, r.err = capacity.ParseLenient(s)
	} else {
		r.bytes, r.err = capacity.Parse(s)
	}
	return r
}
