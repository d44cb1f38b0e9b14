package ui

import (
	"strings"

	"github.com/dustin/go-humanize"
)

func (m Model) View() string {
	return m.viewHeader() + "\n\n" + m.styles.Box.Render(m.input.View()) + "\n\n" + m.viewResult() + "\n" + m.viewHelp()
}

func (m Model) viewHeader() string {
	title := m.styles.Title.Render("capacity — binary size converter")
	mode := "strict"
	if m.lenient {
		mode = "lenient"
	}
	sub := m.styles.Subtitle.Render("parser: " + mode)
	return title + "\n" + sub
}

func (m Model) viewResult() string {
	r := m.result
	if r.input == "" {
		return m.styles.Box.Render(m.styles.Faint.Render("type a size to convert")) + "\n"
	}
	if r.err != nil {
		return m.styles.Box.Render(m.styles.Error.Render("✗ "+r.err.Error())) + "\n"
	}
	var b strings.Builder
	m.writeRow(&b, "bytes", humanize.Comma(int64(r.bytes)))
	m.writeRow(&b, "capacity", r.bytes.Capacity())
	m.writeRow(&b, "exact", r.bytes.Exact())
	return b.String()
}

func (m Model) writeRow(b *strings.Builder, label, value string) {
	b.WriteString(m.styles.Box.Render(m.styles.Label.Render(label) + m.styles.Success.Render(value)))
	b.WriteString("\n")
}

func (m Model) viewHelp() string {
	return m.styles.Faint.Render("ctrl+l: toggle lenient • esc: quit")
}
