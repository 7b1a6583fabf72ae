package components

import (
	"testing"

	tea "charm.land/bubbletea/v2"
)

type chosenMsg struct{ label string }

func gridItems(labels ...string) []MenuItem {
	items := make([]MenuItem, len(labels))
	for i, l := range labels {
		items[i] = MenuItem{Label: l, Action: func() tea.Cmd {
			return func() tea.Msg { return chosenMsg{label: l} }
		}}
	}
	return items
}

func TestGridMenu_Navigation(t *testing.T) {
	m := NewGridMenu(gridItems("a", "b", "c", "d", "e"), 2)

	m, _ = m.Update(tea.KeyPressMsg{Code: tea.KeyRight})
	if m.Selected != 1 {
		t.Fatalf("right: selected = %d, want 1", m.Selected)
	}
	m, _ = m.Update(tea.KeyPressMsg{Code: tea.KeyRight})
	if m.Selected != 1 {
		t.Fatalf("right at last column moved to %d", m.Selected)
	}
	m, _ = m.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	if m.Selected != 3 {
		t.Fatalf("down: selected = %d, want 3", m.Selected)
	}
	m, _ = m.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	if m.Selected != 3 {
		t.Fatalf("down past the end moved to %d", m.Selected)
	}
	m, _ = m.Update(tea.KeyPressMsg{Code: tea.KeyLeft})
	m, _ = m.Update(tea.KeyPressMsg{Code: tea.KeyUp})
	if m.Selected != 0 {
		t.Fatalf("left+up: selected = %d, want 0", m.Selected)
	}
}

func TestMenu_EnterRunsAction(t *testing.T) {
	m := NewMenu(gridItems("first", "second"))
	m, _ = m.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	_, cmd := m.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("expected command from enter")
	}
	if got := cmd().(chosenMsg); got.label != "second" {
		t.Fatalf("chose %q, want second", got.label)
	}
}

func TestMenu_SkipsDisabled(t *testing.T) {
	items := gridItems("a", "b")
	items[0].Disabled = true
	m := NewMenu(items)
	if m.Selected != 1 {
		t.Fatalf("initial selection = %d, want first enabled item", m.Selected)
	}
	m, _ = m.Update(tea.KeyPressMsg{Code: tea.KeyUp})
	if m.Selected != 1 {
		t.Fatal("moved onto a disabled item")
	}
	if m.SelectedLabel() != "b" {
		t.Fatalf("SelectedLabel() = %q", m.SelectedLabel())
	}
}
