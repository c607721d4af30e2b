package nav

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStoreNotifiesOnChange(t *testing.T) {
	st := NewStore(DefaultState())

	var calls int
	var last State
	st.Subscribe(func(prev, next State) {
		calls++
		last = next
	})

	st.Dispatch(NextVerse{})
	assert.Equal(t, 1, calls)
	assert.Equal(t, 2, last.Position.Verse)
	assert.Equal(t, last, st.State())

	st.Dispatch(CloseSheet{})
	assert.Equal(t, 1, calls, "no-op actions do not notify")
}
