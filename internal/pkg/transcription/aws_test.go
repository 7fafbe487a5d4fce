package transcription

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

var transcriptJSON = []byte(`{
  "results": {
    "transcripts": [{"transcript": "the cat sat"}],
    "items": [
      {"type": "pronunciation", "start_time": "0.1", "end_time": "0.4", "alternatives": [{"content": "the"}]},
      {"type": "pronunciation", "start_time": "0.5", "end_time": "0.9", "alternatives": [{"content": "cat"}]},
      {"type": "punctuation", "alternatives": [{"content": ","}]},
      {"type": "pronunciation", "start_time": "1.0", "end_time": "1.4", "alternatives": [{"content": "sat"}]}
    ]
  }
}`)

func TestParseAWSTranscript(t *testing.T) {
	res, err := parseAWSTranscript(transcriptJSON)
	assert.Nil(t, err)
	assert.Equal(t, "the cat sat", res.Text)
	assert.Equal(t, 3, len(res.Timeline))
	assert.InDelta(t, 0.1, res.Timeline[0].Start, 0.0001)
	assert.InDelta(t, 1.4, res.Duration, 0.0001)
	assert.Equal(t, "sat", res.Timeline[2].Text)
}

func TestParseAWSTranscript_Empty(t *testing.T) {
	res, err := parseAWSTranscript([]byte(`{"results":{"transcripts":[],"items":[]}}`))
	assert.Nil(t, err)
	assert.Equal(t, "", res.Text)
	assert.Empty(t, res.Timeline)
}

func TestParseAWSTranscript_Malformed(t *testing.T) {
	_, err := parseAWSTranscript([]byte("olia"))
	assert.NotNil(t, err)
}

func TestParseSeconds(t *testing.T) {
	assert.InDelta(t, 1.25, parseSeconds("1.25"), 0.0001)
	assert.InDelta(t, 0.0, parseSeconds(""), 0.0001)
	assert.InDelta(t, 0.0, parseSeconds("olia"), 0.0001)
}
