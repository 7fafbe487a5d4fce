package transcription

import (
	"encoding/json"
	"math"
	"strings"

	"github.com/eduspeech/scorelit/internal/pkg/timeline"
)

// Generative models are asked for a JSON envelope but do not guarantee one.
// wordSeconds is used to synthesize a single segment when the model returns
// plain text without timings.
const wordSeconds = 0.6

type envelope struct {
	Text       string       `json:"text"`
	Confidence string       `json:"confidence"`
	Duration   float64      `json:"duration"`
	Segments   []envSegment `json:"segments"`
}

type envSegment struct {
	Start float64 `json:"start"`
	End   float64 `json:"end"`
	Text  string  `json:"text"`
}

//FromModelText normalizes free form generative model output. It tries to
//extract the requested JSON envelope, tolerating markdown code fences. When
//no JSON is found the whole response is treated as the transcript text and a
//single segment spanning the estimated duration is synthesized. It never
//fails on malformed input.
func FromModelText(s string, raw interface{}) *ParsedTranscription {
	env, parsed := parseEnvelope(s)
	if !parsed {
		return fromRawText(strings.TrimSpace(stripFences(s)), raw)
	}
	res := &ParsedTranscription{
		Text:       strings.TrimSpace(env.Text),
		Confidence: normalizeConfidence(env.Confidence),
		Duration:   env.Duration,
		Raw:        raw,
	}
	for i, seg := range env.Segments {
		text := strings.TrimSpace(seg.Text)
		if text == "" {
			continue
		}
		res.Timeline = append(res.Timeline, timeline.Entry{
			Index: i, Start: seg.Start, End: seg.End, Text: text})
	}
	if len(res.Timeline) == 0 && res.Text != "" {
		res.Timeline = synthesizeTimeline(res.Text, res.Duration)
	}
	if res.Duration == 0 {
		res.Duration = timeline.Duration(res.Timeline)
	}
	return res
}

func parseEnvelope(s string) (*envelope, bool) {
	candidate := stripFences(s)
	start := strings.Index(candidate, "{")
	end := strings.LastIndex(candidate, "}")
	if start < 0 || end <= start {
		return nil, false
	}
	data := []byte(candidate[start : end+1])
	var keys map[string]json.RawMessage
	if err := json.Unmarshal(data, &keys); err != nil {
		return nil, false
	}
	// an envelope carries at least one of the requested keys, it may still
	// be empty when no speech was heard
	if _, ok := keys["text"]; !ok {
		if _, ok := keys["segments"]; !ok {
			return nil, false
		}
	}
	var env envelope
	if err := json.Unmarshal(data, &env); err != nil {
		return nil, false
	}
	return &env, true
}

func fromRawText(text string, raw interface{}) *ParsedTranscription {
	res := &ParsedTranscription{Text: text, Confidence: ConfidenceMedium, Raw: raw}
	if text != "" {
		res.Timeline = synthesizeTimeline(text, 0)
		res.Duration = timeline.Duration(res.Timeline)
	}
	return res
}

func synthesizeTimeline(text string, duration float64) []timeline.Entry {
	end := duration
	if end == 0 {
		end = math.Max(float64(len(strings.Fields(text)))*wordSeconds, 1)
	}
	return []timeline.Entry{{Index: 0, Start: 0, End: end, Text: text}}
}

func stripFences(s string) string {
	res := strings.TrimSpace(s)
	if !strings.HasPrefix(res, "```") {
		return res
	}
	res = strings.TrimPrefix(res, "```json")
	res = strings.TrimPrefix(res, "```")
	if i := strings.LastIndex(res, "```"); i >= 0 {
		res = res[:i]
	}
	return strings.TrimSpace(res)
}
