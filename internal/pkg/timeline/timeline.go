package timeline

import (
	"encoding/json"
	"math"
)

//Entry is one timed speech segment, times in seconds from audio start
type Entry struct {
	Index int     `json:"index"`
	Start float64 `json:"start"`
	End   float64 `json:"end"`
	Text  string  `json:"text"`
}

// minSpeechSpan filters out segments too short to be real speech
const minSpeechSpan = 0.1

//HasHesitation returns true if no speech was detected or the first
//segment starts at or after the threshold
func HasHesitation(entries []Entry, thresholdSeconds float64) bool {
	if len(entries) == 0 {
		return true
	}
	return entries[0].Start >= thresholdSeconds
}

//HasSpeech returns true if any segment spans a meaningful duration
func HasSpeech(entries []Entry) bool {
	for _, e := range entries {
		if e.End-e.Start > minSpeechSpan {
			return true
		}
	}
	return false
}

//SpeechDuration sums the spans of all segments
func SpeechDuration(entries []Entry) float64 {
	res := 0.0
	for _, e := range entries {
		res += math.Max(0, e.End-e.Start)
	}
	return res
}

//Duration returns the end of the last segment
func Duration(entries []Entry) float64 {
	if len(entries) == 0 {
		return 0
	}
	return entries[len(entries)-1].End
}

//ToPrompt renders the last maxEntries segments as JSON for the evaluator,
//times rounded to 0.01s
func ToPrompt(entries []Entry, maxEntries int) string {
	if len(entries) == 0 {
		return "[]"
	}
	from := 0
	if len(entries) > maxEntries {
		from = len(entries) - maxEntries
	}
	trimmed := make([]Entry, 0, len(entries)-from)
	for _, e := range entries[from:] {
		trimmed = append(trimmed, Entry{Index: e.Index,
			Start: math.Round(e.Start*100) / 100,
			End:   math.Round(e.End*100) / 100,
			Text:  e.Text})
	}
	res, err := json.Marshal(trimmed)
	if err != nil {
		return "[]"
	}
	return string(res)
}
