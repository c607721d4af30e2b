package gesture

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

const (
	LongPressDelay = 500 * time.Millisecond
	HintDuration   = 2000 * time.Millisecond
)

// LongPressMsg fires when a press has been held for the long-press delay.
type LongPressMsg struct{ ID int }

// HintExpiredMsg hides the hint shown by a long press.
type HintExpiredMsg struct{ ID int }

// LongPress shows a transient hint when a press is held. Releasing before
// the delay cancels it; once shown, the hint stays for its full duration.
type LongPress struct {
	Delay    time.Duration
	Duration time.Duration

	pressID int
	pressed bool
	hintID  int
	visible bool
}

// NewLongPress returns a LongPress with the standard timings.
func NewLongPress() *LongPress {
	return &LongPress{Delay: LongPressDelay, Duration: HintDuration}
}

// Press starts the delay timer.
func (l *LongPress) Press() tea.Cmd {
	l.pressID++
	l.pressed = true
	id := l.pressID
	return tea.Tick(l.Delay, func(time.Time) tea.Msg {
		return LongPressMsg{ID: id}
	})
}

// Release cancels a pending long press.
func (l *LongPress) Release() {
	l.pressed = false
	l.pressID++
}

// Visible reports whether the hint is showing.
func (l *LongPress) Visible() bool {
	return l.visible
}

// Update handles the timer messages. Stale timers are ignored.
func (l *LongPress) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case LongPressMsg:
		if !l.pressed || msg.ID != l.pressID {
			return nil
		}
		l.visible = true
		l.hintID++
		id := l.hintID
		return tea.Tick(l.Duration, func(time.Time) tea.Msg {
			return HintExpiredMsg{ID: id}
		})
	case HintExpiredMsg:
		if msg.ID == l.hintID {
			l.visible = false
		}
	}
	return nil
}
