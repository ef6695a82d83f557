package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// Update handles Bubbletea messages and updates model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.resolver.SetWidth(msg.Width)
		m.ctx = m.ctx.WithWidth(msg.Width)
		m.help.Width = msg.Width
		m.refresh()
		return m, nil

	case tea.KeyMsg:
		return m.handleKeyPress(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)
	}

	return m, nil
}

func (m Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	case key.Matches(msg, m.keys.Next):
		m.moveFocus(1)
	case key.Matches(msg, m.keys.Prev):
		m.moveFocus(-1)
	case key.Matches(msg, m.keys.Blur):
		m.setFocus(-1)
	default:
		return m, nil
	}

	m.refresh()
	return m, nil
}

func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	idx := m.itemAt(msg.Y)

	switch msg.Action {
	case tea.MouseActionMotion:
		if m.setHover(idx) {
			m.refresh()
		}
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft {
			return m, nil
		}
		m.setHover(idx)
		if idx >= 0 && m.resolved[idx].Listeners.Focus {
			m.setFocus(idx)
		}
		m.refresh()
	}

	return m, nil
}

// moveFocus cycles focus across the focusable items.
func (m *Model) moveFocus(delta int) {
	candidates := m.focusable()
	if len(candidates) == 0 {
		return
	}

	pos := -1
	for i, idx := range candidates {
		if idx == m.focused {
			pos = i
			break
		}
	}

	switch {
	case pos < 0 && delta > 0:
		pos = 0
	case pos < 0:
		pos = len(candidates) - 1
	default:
		pos = (pos + delta + len(candidates)) % len(candidates)
	}
	m.setFocus(candidates[pos])
}

func (m *Model) setFocus(idx int) {
	if m.focused == idx {
		return
	}
	if m.focused >= 0 {
		m.items[m.focused].Instance.Blur()
	}
	m.focused = idx
	if idx >= 0 {
		m.items[idx].Instance.Focus()
	}
}

// setHover moves the pointer to item idx and reports whether anything
// changed. Items that never asked for hover observation are not tracked.
func (m *Model) setHover(idx int) bool {
	if idx >= 0 && !m.resolved[idx].Listeners.Hover {
		idx = -1
	}
	if idx == m.hovered {
		return false
	}
	if m.hovered >= 0 {
		m.items[m.hovered].Instance.PointerLeave()
	}
	m.hovered = idx
	if idx >= 0 {
		m.items[idx].Instance.PointerEnter()
	}
	return true
}
