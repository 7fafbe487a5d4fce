package transcription

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFromModelText_Envelope(t *testing.T) {
	res := FromModelText(`{"text":"cat","confidence":"high","segments":[{"start":0.5,"end":1.2,"text":"cat"}]}`, nil)
	assert.Equal(t, "cat", res.Text)
	assert.Equal(t, ConfidenceHigh, res.Confidence)
	assert.Equal(t, 1, len(res.Timeline))
	assert.InDelta(t, 0.5, res.Timeline[0].Start, 0.0001)
	assert.InDelta(t, 1.2, res.Timeline[0].End, 0.0001)
	assert.InDelta(t, 1.2, res.Duration, 0.0001)
}

func TestFromModelText_Fenced(t *testing.T) {
	res := FromModelText("```json\n{\"text\":\"dog\",\"segments\":[]}\n```", nil)
	assert.Equal(t, "dog", res.Text)
	assert.Equal(t, 1, len(res.Timeline))
	assert.Equal(t, "dog", res.Timeline[0].Text)
}

func TestFromModelText_SurroundingProse(t *testing.T) {
	res := FromModelText(`Here is the transcription: {"text":"sim","segments":[{"start":0,"end":1,"text":"sim"}]}`, nil)
	assert.Equal(t, "sim", res.Text)
	assert.Equal(t, 1, len(res.Timeline))
}

func TestFromModelText_RawFallback(t *testing.T) {
	res := FromModelText("the cat sat", nil)
	assert.Equal(t, "the cat sat", res.Text)
	assert.Equal(t, ConfidenceMedium, res.Confidence)
	assert.Equal(t, 1, len(res.Timeline))
	assert.InDelta(t, 0.0, res.Timeline[0].Start, 0.0001)
	assert.InDelta(t, 1.8, res.Timeline[0].End, 0.0001)
}

func TestFromModelText_MalformedJSON(t *testing.T) {
	res := FromModelText(`{"text": "broken`, nil)
	assert.Equal(t, `{"text": "broken`, res.Text)
	assert.Equal(t, 1, len(res.Timeline))
}

func TestFromModelText_Empty(t *testing.T) {
	res := FromModelText("", nil)
	assert.Equal(t, "", res.Text)
	assert.Empty(t, res.Timeline)
}

func TestFromModelText_EmptyEnvelope(t *testing.T) {
	res := FromModelText(`{"text":"","segments":[]}`, nil)
	assert.Equal(t, "", res.Text)
	assert.Empty(t, res.Timeline)
	assert.InDelta(t, 0.0, res.Duration, 0.0001)
}

func TestFromModelText_JSONWithoutEnvelopeKeys(t *testing.T) {
	res := FromModelText(`{"foo":"bar"}`, nil)
	assert.Equal(t, `{"foo":"bar"}`, res.Text)
	assert.Equal(t, 1, len(res.Timeline))
}

func TestFromModelText_ShortDurationFloor(t *testing.T) {
	res := FromModelText("a", nil)
	assert.InDelta(t, 1.0, res.Timeline[0].End, 0.0001)
}

func TestFromModelText_SynthesizesWhenNoSegments(t *testing.T) {
	res := FromModelText(`{"text":"one two","duration":3.5}`, nil)
	assert.Equal(t, 1, len(res.Timeline))
	assert.InDelta(t, 3.5, res.Timeline[0].End, 0.0001)
}

func TestFromModelText_SkipsEmptySegments(t *testing.T) {
	res := FromModelText(`{"text":"cat","segments":[{"start":0,"end":1,"text":"  "},{"start":1,"end":2,"text":"cat"}]}`, nil)
	assert.Equal(t, 1, len(res.Timeline))
	assert.Equal(t, "cat", res.Timeline[0].Text)
}
