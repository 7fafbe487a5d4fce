package timeline

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHasHesitation_Empty(t *testing.T) {
	assert.True(t, HasHesitation(nil, 5))
	assert.True(t, HasHesitation([]Entry{}, 5))
}

func TestHasHesitation_LateStart(t *testing.T) {
	assert.True(t, HasHesitation([]Entry{{Start: 6, End: 7, Text: "a"}}, 5))
	assert.True(t, HasHesitation([]Entry{{Start: 5, End: 7, Text: "a"}}, 5))
}

func TestHasHesitation_EarlyStart(t *testing.T) {
	assert.False(t, HasHesitation([]Entry{{Start: 4, End: 5, Text: "a"}}, 5))
	assert.False(t, HasHesitation([]Entry{{Start: 0, End: 1, Text: "a"}}, 5))
}

func TestHasSpeech(t *testing.T) {
	assert.False(t, HasSpeech(nil))
	assert.False(t, HasSpeech([]Entry{{Start: 1, End: 1.05, Text: "a"}}))
	assert.True(t, HasSpeech([]Entry{{Start: 1, End: 1.5, Text: "a"}}))
}

func TestSpeechDuration(t *testing.T) {
	assert.InDelta(t, 0.0, SpeechDuration(nil), 0.0001)
	assert.InDelta(t, 1.5, SpeechDuration([]Entry{{Start: 0, End: 1, Text: "a"},
		{Start: 2, End: 2.5, Text: "b"}}), 0.0001)
}

func TestDuration(t *testing.T) {
	assert.InDelta(t, 0.0, Duration(nil), 0.0001)
	assert.InDelta(t, 2.5, Duration([]Entry{{Start: 0, End: 1, Text: "a"},
		{Start: 2, End: 2.5, Text: "b"}}), 0.0001)
}

func TestToPrompt_Empty(t *testing.T) {
	assert.Equal(t, "[]", ToPrompt(nil, 12))
}

func TestToPrompt(t *testing.T) {
	res := ToPrompt([]Entry{{Index: 0, Start: 0.123, End: 1.456, Text: "cat"}}, 12)
	assert.Equal(t, `[{"index":0,"start":0.12,"end":1.46,"text":"cat"}]`, res)
}

func TestToPrompt_TakesLast(t *testing.T) {
	entries := []Entry{{Index: 0, Text: "a"}, {Index: 1, Text: "b"}, {Index: 2, Text: "c"}}
	res := ToPrompt(entries, 2)
	assert.NotContains(t, res, `"a"`)
	assert.Contains(t, res, `"b"`)
	assert.Contains(t, res, `"c"`)
}
