package transcription

import (
	"context"
	"strings"

	"github.com/eduspeech/scorelit/internal/pkg/cmdapp"
	"github.com/google/generative-ai-go/genai"
	"github.com/pkg/errors"
	"google.golang.org/api/option"
)

const geminiEnvelopeInstruction = `Transcribe the attached audio to English text.
Return strict JSON with keys: "text" (string), "confidence" ("low"|"medium"|"high") and "segments" (array of {"start": number, "end": number, "text": string}) where start/end are seconds from audio start. Always include the segments array (empty if no speech).`

//Gemini wraps a general purpose generative model as a transcription
//provider. The JSON envelope is requested but not guaranteed, parsing
//falls back to treating the whole response as the transcript
type Gemini struct {
	client *genai.Client
	model  string
}

//NewGemini creates the adapter from config
func NewGemini(ctx context.Context) (*Gemini, error) {
	key := cmdapp.Config.GetString("gemini.key")
	if key == "" {
		return nil, errors.New("No gemini.key provided")
	}
	client, err := genai.NewClient(ctx, option.WithAPIKey(key))
	if err != nil {
		return nil, errors.Wrap(err, "Can't init gemini client")
	}
	model := cmdapp.Config.GetString("gemini.model")
	if model == "" {
		model = "gemini-1.5-pro"
	}
	return &Gemini{client: client, model: model}, nil
}

//Close frees the underlying connection
func (a *Gemini) Close() {
	if a.client != nil {
		cmdapp.LogIf(a.client.Close())
	}
}

//Transcribe sends audio inline to the generative model
func (a *Gemini) Transcribe(ctx context.Context, data []byte, opts Options) (*ParsedTranscription, error) {
	model := a.client.GenerativeModel(a.model)
	prompt := geminiEnvelopeInstruction
	if opts.Prompt != "" {
		prompt = opts.Prompt + "\n\n" + geminiEnvelopeInstruction
	}
	resp, err := model.GenerateContent(ctx,
		genai.Blob{MIMEType: "audio/webm", Data: data},
		genai.Text(prompt))
	if err != nil {
		return nil, errors.Wrap(err, "Can't transcribe with gemini")
	}
	text := collectText(resp)
	if text == "" {
		return nil, errors.New("Empty gemini response")
	}
	return FromModelText(text, map[string]interface{}{"text": text, "model": a.model}), nil
}

func collectText(resp *genai.GenerateContentResponse) string {
	var sb strings.Builder
	for _, c := range resp.Candidates {
		if c.Content == nil {
			continue
		}
		for _, p := range c.Content.Parts {
			if t, ok := p.(genai.Text); ok {
				sb.WriteString(string(t))
			}
		}
	}
	return strings.TrimSpace(sb.String())
}
