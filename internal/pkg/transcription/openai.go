package transcription

import (
	"bytes"
	"context"
	"strings"

	"github.com/eduspeech/scorelit/internal/pkg/cmdapp"
	"github.com/eduspeech/scorelit/internal/pkg/timeline"
	"github.com/pkg/errors"
	openai "github.com/sashabaranov/go-openai"
)

//OpenAI transcribes using the OpenAI speech endpoint. This is the primary
//provider, the only one returning real per segment timings directly
type OpenAI struct {
	client *openai.Client
	model  string
}

//NewOpenAI creates the adapter from config
func NewOpenAI() (*OpenAI, error) {
	key := cmdapp.Config.GetString("openai.key")
	if key == "" {
		return nil, errors.New("No openai.key provided")
	}
	cfg := openai.DefaultConfig(key)
	if url := cmdapp.Config.GetString("openai.url"); url != "" {
		cfg.BaseURL = url
	}
	model := cmdapp.Config.GetString("openai.transcribeModel")
	if model == "" {
		model = openai.Whisper1
	}
	return &OpenAI{client: openai.NewClientWithConfig(cfg), model: model}, nil
}

//Transcribe sends audio to the speech endpoint
func (a *OpenAI) Transcribe(ctx context.Context, data []byte, opts Options) (*ParsedTranscription, error) {
	req := openai.AudioRequest{
		Model:       a.model,
		FilePath:    "audio.webm",
		Reader:      bytes.NewReader(data),
		Language:    language(opts),
		Prompt:      opts.Prompt,
		Temperature: opts.Temperature,
		Format:      openai.AudioResponseFormatVerboseJSON,
	}
	resp, err := a.client.CreateTranscription(ctx, req)
	if err != nil {
		return nil, errors.Wrap(err, "Can't transcribe with openai")
	}
	return parseOpenAIResponse(&resp), nil
}

func parseOpenAIResponse(resp *openai.AudioResponse) *ParsedTranscription {
	res := &ParsedTranscription{
		Text:       strings.TrimSpace(resp.Text),
		Confidence: ConfidenceMedium,
		Duration:   float64(resp.Duration),
		Raw:        resp,
	}
	noSpeech := 0.0
	for _, s := range resp.Segments {
		text := strings.TrimSpace(s.Text)
		if text == "" {
			continue
		}
		res.Timeline = append(res.Timeline, timeline.Entry{
			Index: len(res.Timeline), Start: s.Start, End: s.End, Text: text})
		if s.NoSpeechProb > noSpeech {
			noSpeech = s.NoSpeechProb
		}
	}
	if len(res.Timeline) == 0 && res.Text != "" {
		res.Timeline = synthesizeTimeline(res.Text, res.Duration)
	}
	if res.Duration == 0 {
		res.Duration = timeline.Duration(res.Timeline)
	}
	res.Confidence = confidenceFromScore(1 - noSpeech)
	if res.Text == "" {
		res.Confidence = ConfidenceLow
	}
	return res
}

func language(opts Options) string {
	if opts.Language == "" {
		return "en"
	}
	return opts.Language
}
