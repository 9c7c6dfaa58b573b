package tui

import (
	"fmt"
	"strings"
	"time"
)

func renderView(m Model) string {
	var b strings.Builder

	renderHeader(&b, m)
	renderSteps(&b, m)
	renderFooter(&b, m)

	return b.String()
}

func renderHeader(b *strings.Builder, m Model) {
	title := fmt.Sprintf("mintforge: %s (%s)", m.TokenName, m.Symbol)
	b.WriteString(titleStyle.Render(title))

	status := " "
	switch {
	case m.Err != nil:
		status += failedStyle.Render(fmt.Sprintf("Error: %v", m.Err))
	case m.Done:
		status += doneStyle.Render("Launched")
	default:
		status += activeStyle.Render(currentSpinner(m.SpinnerFrame)+" ") + warningStyle.Render("Launching on "+m.Network)
	}
	b.WriteString(status)
	b.WriteString("\n")
}

func renderSteps(b *strings.Builder, m Model) {
	b.WriteString(sectionStyle.Render("Steps"))
	b.WriteString("\n")

	for _, step := range m.Steps {
		var marker, name string
		switch step.Status {
		case StatusDone:
			marker = doneStyle.Render(checkMark)
			name = step.Name
		case StatusFailed:
			marker = failedStyle.Render(crossMark)
			name = failedStyle.Render(step.Name)
		case StatusWarned:
			marker = warningStyle.Render(crossMark)
			name = step.Name
		case StatusSkipped:
			marker = dimStyle.Render(skipMark)
			name = dimStyle.Render(step.Name)
		case StatusActive:
			marker = activeStyle.Render(currentSpinner(m.SpinnerFrame))
			name = activeStyle.Render(step.Name)
		default:
			marker = dimStyle.Render(pending)
			name = dimStyle.Render(step.Name)
		}

		line := fmt.Sprintf("  %s %s", marker, name)
		if step.Detail != "" && step.Status != StatusActive {
			line += dimStyle.Render(" " + step.Detail)
		}
		b.WriteString(line)
		b.WriteString("\n")
	}
}

func renderFooter(b *strings.Builder, m Model) {
	elapsed := time.Since(m.StartTime).Round(time.Second)
	b.WriteString(footerStyle.Render(fmt.Sprintf("elapsed %s  |  q to quit", elapsed)))
	b.WriteString("\n")
}
