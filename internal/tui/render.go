package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/jask/lineitem/internal/invoice"
)

var tableFields = []invoice.Field{
	invoice.FieldQuantity,
	invoice.FieldUnitPrice,
	invoice.FieldDiscountPercentage,
	invoice.FieldDiscountAmount,
	invoice.FieldTaxPercentage,
	invoice.FieldTaxAmount,
	invoice.FieldTotalPrice,
}

const (
	cellWidth = 12
	idWidth   = 20
)

func (a *App) View() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Invoice Lines"))
	b.WriteString("\n")
	b.WriteString(a.renderForm())
	b.WriteString("\n")
	b.WriteString(a.renderTable())
	b.WriteString("\n")
	b.WriteString(footerStyle.Render(a.keys.help()))
	if a.status != "" {
		b.WriteString("\n")
		b.WriteString(statusStyle(a.statusLevel).Render(a.status))
	}
	return b.String()
}

func (a *App) renderForm() string {
	form := a.session.Form
	var lines []string
	for i, f := range invoice.InputFields {
		label := labelStyle.Render(f.Label())
		if i == a.focus {
			label = focusLabel.Render(f.Label())
		}
		lines = append(lines, label+" "+a.inputs[i].View())
	}
	for _, f := range []invoice.Field{invoice.FieldDiscountAmount, invoice.FieldTaxAmount, invoice.FieldTotalPrice} {
		v := form.Value(f)
		if v == "" {
			v = "-"
		}
		lines = append(lines, labelStyle.Render(f.Label())+" "+derivedStyle.Render(v))
	}

	action := "[enter] Create line"
	style := panelStyle
	if a.session.IsEditing() {
		action = fmt.Sprintf("[enter] Update line %s  [esc] Cancel", a.session.Editing)
		style = editPanelStyle
	}
	lines = append(lines, "", mutedStyle.Render(action))
	return style.Render(strings.Join(lines, "\n"))
}

func (a *App) renderTable() string {
	records := a.session.Records
	cells := make([]string, 0, len(tableFields)+2)
	cells = append(cells, pad(" ", 2), pad("ID", idWidth))
	for _, f := range tableFields {
		cells = append(cells, pad(f.Label(), cellWidth))
	}
	rows := []string{headerStyle.Render(strings.Join(cells, " "))}

	if len(records) == 0 {
		rows = append(rows, mutedStyle.Render("  (no lines yet)"))
	}
	for i, r := range records {
		marker := " "
		if i == a.cursor {
			marker = "▶"
		}
		cells = cells[:0]
		cells = append(cells, pad(marker, 2), pad(r.ID, idWidth))
		for _, f := range tableFields {
			cells = append(cells, pad(r.Value(f), cellWidth))
		}
		line := strings.Join(cells, " ")
		switch {
		case r.ID == a.session.Editing:
			line = editRowStyle.Render(line)
		case i == a.cursor:
			line = cursorRowStyle.Render(line)
		default:
			line = rowStyle.Render(line)
		}
		rows = append(rows, line)
	}

	summary := fmt.Sprintf("%d line(s)  Grand total: %s", len(records), records.GrandTotal())
	rows = append(rows, "", footerStyle.Render(summary))
	return panelStyle.Render(strings.Join(rows, "\n"))
}

// pad left-aligns s in a cell of width w, truncating with an ellipsis.
func pad(s string, w int) string {
	if lipgloss.Width(s) > w {
		s = ansi.Truncate(s, w, "…")
	}
	return s + strings.Repeat(" ", max(0, w-lipgloss.Width(s)))
}
