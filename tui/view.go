package tui

import (
	"fmt"
	"strings"

	"github.com/lexcodex/lenscope/lens"
)

// View renders the current browser state.
func (m Model) View() string {
	var b strings.Builder
	b.WriteString(headerStyle.Render("lenscope"))
	b.WriteString("  ")
	b.WriteString(filePathStyle.Render(m.file))
	b.WriteString("\n\n")

	switch {
	case m.scanning:
		b.WriteString(m.spinner.View())
		b.WriteString(" resolving lenses...\n")
	case m.err != nil:
		b.WriteString(failedLabelStyle.Render(fmt.Sprintf("scan failed: %v", m.err)))
		b.WriteString("\n")
	case len(m.items) == 0:
		b.WriteString(targetStyle.Render("no eligible symbols in this file"))
		b.WriteString("\n")
	default:
		for i, item := range m.items {
			b.WriteString(renderItem(i == m.cursor, m.expanded[i], item))
		}
	}

	b.WriteString(helpStyle.Render("j/k move · enter expand · r rescan · q quit"))
	return b.String()
}

func renderItem(selected, expanded bool, item Item) string {
	marker := "  "
	if selected {
		marker = cursorStyle.Render("> ")
	}

	style := labelStyle
	if item.Outcome != lens.OutcomeResolved {
		style = failedLabelStyle
	}

	line := fmt.Sprintf("%s%s:%d %s · %s\n",
		marker,
		item.Lens.Symbol,
		item.Lens.Anchor.Range.Start.Line+1,
		targetStyle.Render(string(item.Lens.Kind)),
		style.Render(item.Result.Label),
	)
	if !expanded {
		return line
	}

	var b strings.Builder
	b.WriteString(line)
	if len(item.Result.Targets) == 0 {
		b.WriteString(targetStyle.Render("    (nothing to jump to)"))
		b.WriteString("\n")
		return b.String()
	}
	for _, target := range item.Result.Targets {
		b.WriteString(targetStyle.Render(fmt.Sprintf("    %s:%d:%d",
			target.File,
			target.Range.Start.Line+1,
			target.Range.Start.Character+1,
		)))
		b.WriteString("\n")
	}
	return b.String()
}
