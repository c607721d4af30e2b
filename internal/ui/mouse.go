package ui

import (
	tea "github.com/charmbracelet/bubbletea"

	"davar/internal/gesture"
	"davar/internal/nav"
)

// handleMouse feeds presses, drags and releases to the gesture recognizers.
// A release in the same cell as its press is a tap.
func (m *Model) handleMouse(msg tea.MouseMsg) tea.Cmd {
	s := m.store.State()

	switch msg.Button {
	case tea.MouseButtonWheelUp, tea.MouseButtonWheelDown:
		if msg.Action != tea.MouseActionPress || s.Sheet != nav.SheetNone {
			return nil
		}
		if s.ShowFullChapter {
			var cmd tea.Cmd
			m.viewport, cmd = m.viewport.Update(msg)
			return cmd
		}
		if msg.Button == tea.MouseButtonWheelDown {
			return m.dispatch(nav.NextVerse{})
		}
		return m.dispatch(nav.PrevVerse{})
	}

	p := m.metrics.Point(msg.X, msg.Y)

	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft {
			return nil
		}
		m.vertical.Down(p)
		m.horizontal.Down(p)
		m.press = pressInfo{active: true, x: msg.X, y: msg.Y}
		if s.Sheet == nav.SheetNone && !s.ShowFullChapter && m.onTranslation(msg.Y) {
			return m.longPress.Press()
		}

	case tea.MouseActionMotion:
		m.vertical.Move(p)
		m.horizontal.Move(p)

	case tea.MouseActionRelease:
		m.longPress.Release()
		vdir, vok := m.vertical.Up(p)
		hdir, hok := m.horizontal.Up(p)
		tap := m.press.active && m.press.x == msg.X && m.press.y == msg.Y
		m.press = pressInfo{}

		if s.Sheet != nav.SheetNone {
			switch {
			case vok && vdir == gesture.Down:
				return m.dispatch(nav.CloseSheet{})
			case s.Sheet == nav.SheetWord && hok:
				return m.dispatch(nav.SwipeWord{Direction: hdir, Count: len(m.verse.tokens)})
			case tap && msg.Y < m.sheetTop():
				return m.dispatch(nav.CloseSheet{})
			case tap && s.Sheet == nav.SheetHome:
				return m.dispatch(nav.CloseSheet{})
			}
			return nil
		}

		switch {
		case vok && vdir == gesture.Up:
			return m.dispatch(nav.NextVerse{})
		case vok && vdir == gesture.Down:
			return m.dispatch(nav.PrevVerse{})
		case tap && !s.ShowFullChapter:
			return m.tapWord(m.wordAt(msg.X, msg.Y))
		}
	}
	return nil
}

func (m Model) wordAt(x, y int) int {
	spans, ok := m.renderReader().spans[y]
	if !ok {
		return -1
	}
	return hitWord(spans, x)
}

func (m Model) onTranslation(y int) bool {
	f := m.renderReader()
	return y >= f.translationTop && y < f.translationEnd
}
