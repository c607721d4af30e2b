package gesture

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLongPressShowsHint(t *testing.T) {
	l := NewLongPress()
	require.NotNil(t, l.Press())

	cmd := l.Update(LongPressMsg{ID: 1})
	require.NotNil(t, cmd)
	assert.True(t, l.Visible())

	l.Update(HintExpiredMsg{ID: 1})
	assert.False(t, l.Visible())
}

func TestReleaseBeforeDelayCancels(t *testing.T) {
	l := NewLongPress()
	l.Press()
	l.Release()

	assert.Nil(t, l.Update(LongPressMsg{ID: 1}))
	assert.False(t, l.Visible())
}

func TestHintOutlivesRelease(t *testing.T) {
	l := NewLongPress()
	l.Press()
	l.Update(LongPressMsg{ID: 1})
	l.Release()
	assert.True(t, l.Visible())
}

func TestStaleHintExpiryIgnored(t *testing.T) {
	l := NewLongPress()
	l.Press()
	l.Update(LongPressMsg{ID: 1})
	l.Release()

	l.Press()
	l.Update(LongPressMsg{ID: 3})
	l.Update(HintExpiredMsg{ID: 1})
	assert.True(t, l.Visible(), "first hint timer must not hide the second hint")
}
