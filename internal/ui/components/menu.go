package components

import (
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/p2tutor/internal/ui/theme"
)

// MenuItem represents a single item in a navigation menu.
type MenuItem struct {
	Label    string
	Action   func() tea.Cmd
	Disabled bool
}

// Menu is a navigation menu laid out row by row in one or more columns.
type Menu struct {
	Items    []MenuItem
	Selected int
	Columns  int
}

// NewMenu creates a single-column menu with the given items.
func NewMenu(items []MenuItem) Menu {
	return NewGridMenu(items, 1)
}

// NewGridMenu creates a menu with the given number of columns.
func NewGridMenu(items []MenuItem, columns int) Menu {
	selected := 0
	for i, item := range items {
		if !item.Disabled {
			selected = i
			break
		}
	}
	return Menu{
		Items:    items,
		Selected: selected,
		Columns:  max(columns, 1),
	}
}

// Init returns nil (no initial command).
func (m Menu) Init() tea.Cmd {
	return nil
}

// Update handles keyboard navigation.
func (m Menu) Update(msg tea.Msg) (Menu, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	cols := max(m.Columns, 1)
	switch kmsg.String() {
	case "up", "k":
		m.moveTo(m.Selected - cols)
	case "down", "j":
		m.moveTo(m.Selected + cols)
	case "left", "h":
		if m.Selected%cols > 0 {
			m.moveTo(m.Selected - 1)
		}
	case "right", "l":
		if m.Selected%cols < cols-1 {
			m.moveTo(m.Selected + 1)
		}
	case "enter":
		if m.Selected >= 0 && m.Selected < len(m.Items) {
			item := m.Items[m.Selected]
			if item.Action != nil && !item.Disabled {
				return m, item.Action()
			}
		}
	}

	return m, nil
}

func (m *Menu) moveTo(i int) {
	if i < 0 || i >= len(m.Items) || m.Items[i].Disabled {
		return
	}
	m.Selected = i
}

// SelectedLabel returns the label of the highlighted item.
func (m Menu) SelectedLabel() string {
	if m.Selected < 0 || m.Selected >= len(m.Items) {
		return ""
	}
	return m.Items[m.Selected].Label
}

// View renders the menu. When active is false the selection marker is dimmed.
func (m Menu) View(width int, active bool) string {
	cols := max(m.Columns, 1)
	cellWidth := max(width/cols, 1)

	selected := theme.Selected
	if !active {
		selected = lipgloss.NewStyle().Foreground(theme.TextDim).Bold(true)
	}

	var rows []string
	for start := 0; start < len(m.Items); start += cols {
		var cells []string
		for i := start; i < min(start+cols, len(m.Items)); i++ {
			item := m.Items[i]
			var cell string
			switch {
			case item.Disabled:
				cell = lipgloss.NewStyle().Foreground(theme.TextDim).Render("    " + item.Label)
			case i == m.Selected:
				cell = selected.Render("  ▸ " + item.Label)
			default:
				cell = theme.Unselected.Render("    " + item.Label)
			}
			cells = append(cells, lipgloss.NewStyle().Width(cellWidth).MaxWidth(cellWidth).Render(cell))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cells...))
	}
	return strings.Join(rows, "\n")
}
