package scripture

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVerseKeyFormats(t *testing.T) {
	k := NewKey("Genesis", 1, 3)
	assert.Equal(t, "Genesis-1-3", k.String())
	assert.Equal(t, "Genesis 1:3", k.Display())
	assert.True(t, k.Valid())
	assert.False(t, NewKey("Genesis", 0, 1).Valid())
	assert.False(t, NewKey(" ", 1, 1).Valid())
}

func TestParseVerseKey(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want VerseKey
	}{
		{"joined", "Genesis-1-1", NewKey("Genesis", 1, 1)},
		{"reference", "Psalms 23:1", NewKey("Psalms", 23, 1)},
		{"chapter only", "Psalms 23", NewKey("Psalms", 23, 1)},
		{"book with spaces joined", "Song of Songs-2-1", NewKey("Song of Songs", 2, 1)},
		{"book with spaces reference", "Song of Songs 2:1", NewKey("Song of Songs", 2, 1)},
		{"surrounding space", "  Isaiah 53:11 ", NewKey("Isaiah", 53, 11)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseVerseKey(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseVerseKeyRejectsGarbage(t *testing.T) {
	for _, in := range []string{"", "Genesis", "Genesis x:1", "Genesis 1:y", "Genesis-0-1", "Genesis 1:0"} {
		_, err := ParseVerseKey(in)
		assert.ErrorIs(t, err, ErrInvalidKey, "input %q", in)
	}
}

func TestParseVerseKeyRoundTrip(t *testing.T) {
	k := NewKey("Deuteronomy", 32, 8)

	fromJoined, err := ParseVerseKey(k.String())
	require.NoError(t, err)
	fromDisplay, err := ParseVerseKey(k.Display())
	require.NoError(t, err)

	assert.Equal(t, k, fromJoined)
	assert.Equal(t, k, fromDisplay)
}
