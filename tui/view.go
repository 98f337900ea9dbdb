package tui

import (
	"fmt"
	"strings"

	"github.com/jdearmas/stopwatch/model"
)

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	active := -1
	if idx, ok := m.tree.Active(); ok {
		active = idx
	}
	dm := model.BuildDrawModel(m.timer.Goal(), m.timer.TotalElapsed(m.clock()),
		m.tree.Splits(), active)

	var b strings.Builder
	b.WriteString(titleStyle.Render("=== Stopwatch ===") + "\n")
	b.WriteString("Goal  : " + dm.Goal + "\n")
	b.WriteString("Time  : " + dm.Total + "\n")
	b.WriteString(dimStyle.Render(fmt.Sprintf("Subgoals (%d):", dm.Count)) + "\n")

	for _, row := range dm.Rows {
		line := strings.Repeat(" ", row.Indent) + row.Text
		switch {
		case row.Active:
			line = activeStyle.Render(line)
		case row.Open:
			line = openStyle.Render(line)
		}
		b.WriteString(line + "\n")
	}

	b.WriteString("\n")
	if m.mode == modeNormal {
		b.WriteString(helpStyle.Render(dm.Controls))
		if m.status != "" {
			b.WriteString("\n" + statusStyle.Render(m.status))
		}
	} else {
		b.WriteString(promptStyle.Render(m.promptLabel()) + " " + m.input.View())
		b.WriteString("\n" + helpStyle.Render("Enter: confirm  Esc: cancel"))
	}

	return b.String()
}
