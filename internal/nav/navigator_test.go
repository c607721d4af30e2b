package nav

import (
	"testing"

	"davar/internal/scripture"

	"github.com/stretchr/testify/assert"
)

func TestVerseClamps(t *testing.T) {
	n := NewNavigator(scripture.NewKey("Genesis", 1, MaxVerse))
	n.NextVerse()
	assert.Equal(t, MaxVerse, n.Position().Verse)

	n.GoToVerse("Genesis", 1, 1)
	n.PreviousVerse()
	assert.Equal(t, 1, n.Position().Verse)

	n.NextVerse()
	n.NextVerse()
	assert.Equal(t, scripture.NewKey("Genesis", 1, 3), n.Position())
}

func TestGoToVerseIsUnchecked(t *testing.T) {
	n := NewNavigator(scripture.DefaultKey)
	n.GoToVerse("Psalms", 119, 176)
	assert.Equal(t, scripture.NewKey("Psalms", 119, 176), n.Position())
}

func TestNextVerseAfterUncheckedJumpClampsBack(t *testing.T) {
	n := NewNavigator(scripture.DefaultKey)
	n.GoToVerse("Psalms", 119, 100)

	n.NextVerse()
	assert.Equal(t, scripture.NewKey("Psalms", 119, MaxVerse), n.Position(), "next is capped at MaxVerse even when that moves back")

	n.NextVerse()
	assert.Equal(t, 30, n.Position().Verse)

	n.GoToVerse("Psalms", 119, 100)
	n.PreviousVerse()
	assert.Equal(t, 99, n.Position().Verse)
}

func TestChapterNavigation(t *testing.T) {
	tests := []struct {
		name  string
		start scripture.VerseKey
		next  bool
		want  scripture.VerseKey
	}{
		{"next resets verse", scripture.NewKey("Genesis", 1, 5), true, scripture.NewKey("Genesis", 2, 1)},
		{"next stops at last chapter", scripture.NewKey("Exodus", 40, 5), true, scripture.NewKey("Exodus", 40, 5)},
		{"prev resets verse", scripture.NewKey("Psalms", 23, 4), false, scripture.NewKey("Psalms", 22, 1)},
		{"prev stops at first chapter", scripture.NewKey("Genesis", 1, 3), false, scripture.NewKey("Genesis", 1, 3)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			n := NewNavigator(tt.start)
			if tt.next {
				n.NextChapter()
			} else {
				n.PreviousChapter()
			}
			assert.Equal(t, tt.want, n.Position())
		})
	}
}
