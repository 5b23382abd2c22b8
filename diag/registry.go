package diag

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/wippyai/anyhandle/typeid"
)

var (
	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1)

	cellStyle = lipgloss.NewStyle().Padding(0, 1)
)

// RenderRegistry lays out identities as a table of type, package path and
// mutability.
func RenderRegistry(entries []typeid.Identity, styled bool) string {
	rows := make([][]string, 0, len(entries))
	for _, id := range entries {
		rows = append(rows, []string{
			typeid.TypeName(id.Type()),
			id.Type().PkgPath(),
			id.Mutability().String(),
		})
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers("TYPE", "PACKAGE", "MUTABILITY").
		Rows(rows...)

	if styled {
		t = t.StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		})
	} else {
		t = t.StyleFunc(func(int, int) lipgloss.Style {
			return cellStyle
		})
	}

	return t.String()
}
