package story

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseGenreTone(t *testing.T) {
	tests := []struct {
		name      string
		text      string
		wantGenre *string
		wantTone  *string
	}{
		{name: "labeled pair", text: "Genre: Comedy\nTone: Whimsical", wantGenre: ptr("Comedy"), wantTone: ptr("Whimsical")},
		{name: "surrounding whitespace", text: "  Genre:   Noir  \r\n\tTone:  Bleak \r\n", wantGenre: ptr("Noir"), wantTone: ptr("Bleak")},
		{name: "prefixed lines", text: "Sure! Here you go.\n**Genre:** Fantasy\n- Tone: Epic", wantGenre: ptr("** Fantasy"), wantTone: ptr("Epic")},
		{name: "first match wins", text: "Genre: Horror\nTone: Dark\nGenre: Comedy\nTone: Light", wantGenre: ptr("Horror"), wantTone: ptr("Dark")},
		{name: "no markers", text: "I think this would be a lovely adventure story.", wantGenre: nil, wantTone: nil},
		{name: "genre only", text: "Genre: Mystery", wantGenre: ptr("Mystery"), wantTone: nil},
		{name: "empty value", text: "Genre:\nTone: Calm", wantGenre: ptr(""), wantTone: ptr("Calm")},
		{name: "both markers on one line", text: "Genre: Drama Tone: Sad", wantGenre: ptr("Drama Tone: Sad"), wantTone: nil},
		{name: "empty input", text: "", wantGenre: nil, wantTone: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			genre, tone := ParseGenreTone(tt.text)
			assertOptional(t, tt.wantGenre, genre)
			assertOptional(t, tt.wantTone, tone)
		})
	}
}

func assertOptional(t *testing.T, want, got *string) {
	t.Helper()
	if want == nil {
		assert.Nil(t, got)
		return
	}
	require.NotNil(t, got)
	assert.Equal(t, *want, *got)
}

func ptr(s string) *string { return &s }
