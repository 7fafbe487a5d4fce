package evaluator

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/eduspeech/scorelit/internal/app/scoring/api"
	"github.com/eduspeech/scorelit/internal/pkg/cmdapp"
	"github.com/pkg/errors"
	openai "github.com/sashabaranov/go-openai"
)

const responseContract = `
Return strict JSON: {
  "final_score": "correct" | "partial" | "incorrect",
  "error_category": null | string,
  "used_self_correction": boolean,
  "self_correction_within_seconds": number | null,
  "recognized_form": string | null,
  "correct_segments": number,
  "correct_sounds": number,
  "words_correct": number,
  "notes": string | null
}
Rules for every subtest:
- "error_category" must be one of: %s. Use "Other" only when no other category fits.
- A fully correct response has "error_category" null.
- If the student self-corrects to the correct response within %.0f seconds of the first incorrect attempt, mark the response correct and set "used_self_correction" to true.
- If the first meaningful attempt occurs after %.0f seconds from audio start, the response is "Hesitation".`

//Evaluation is the structured judgment for one response. Field use varies
//by subtest, unused counters stay zero
type Evaluation struct {
	Verdict              string   `json:"final_score"`
	Category             *string  `json:"error_category"`
	SelfCorrection       bool     `json:"used_self_correction"`
	SelfCorrectionWithin *float64 `json:"self_correction_within_seconds"`
	RecognizedForm       string   `json:"recognized_form"`
	CorrectSegments      int      `json:"correct_segments"`
	CorrectSounds        int      `json:"correct_sounds"`
	WordsCorrect         int      `json:"words_correct"`
	Notes                string   `json:"notes"`
}

//Request carries everything the rubric call needs
type Request struct {
	Subtest          api.Subtest
	Target           string
	Transcript       string
	TimelineJSON     string
	ThresholdSeconds float64
	TargetSegments   int
	Extra            string
}

//Client calls a structured output chat model to classify a transcript
//against a subtest taxonomy
type Client struct {
	client *openai.Client
	model  string
}

//NewClient creates the evaluator from config
func NewClient() (*Client, error) {
	key := cmdapp.Config.GetString("openai.key")
	if key == "" {
		return nil, errors.New("No openai.key provided")
	}
	cfg := openai.DefaultConfig(key)
	if url := cmdapp.Config.GetString("openai.url"); url != "" {
		cfg.BaseURL = url
	}
	model := cmdapp.Config.GetString("evaluator.model")
	if model == "" {
		model = "gpt-4o"
	}
	return &Client{client: openai.NewClientWithConfig(cfg), model: model}, nil
}

//Evaluate performs one rubric call. The output is unreliable by nature,
//callers must fall back to Default on any error
func (c *Client) Evaluate(ctx context.Context, req *Request) (*Evaluation, error) {
	tax, ok := TaxonomyFor(req.Subtest)
	if !ok {
		return nil, errors.New("Unknown subtest " + string(req.Subtest))
	}
	resp, err := c.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: c.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: systemPrompt(tax, req.ThresholdSeconds)},
			{Role: openai.ChatMessageRoleUser, Content: userPrompt(req)},
		},
		ResponseFormat: &openai.ChatCompletionResponseFormat{
			Type: openai.ChatCompletionResponseFormatTypeJSONObject},
		Temperature: 0,
	})
	if err != nil {
		return nil, errors.Wrap(err, "Can't call evaluator")
	}
	if len(resp.Choices) == 0 {
		return nil, errors.New("Empty evaluator response")
	}
	return parseEvaluation(resp.Choices[0].Message.Content)
}

func parseEvaluation(content string) (*Evaluation, error) {
	content = strings.TrimSpace(content)
	if i := strings.Index(content, "{"); i > 0 {
		content = content[i:]
	}
	if i := strings.LastIndex(content, "}"); i >= 0 {
		content = content[:i+1]
	}
	var res Evaluation
	if err := json.Unmarshal([]byte(content), &res); err != nil {
		return nil, errors.Wrap(err, "Can't decode evaluation")
	}
	return &res, nil
}

func systemPrompt(tax Taxonomy, threshold float64) string {
	categories := `"` + strings.Join(tax.Categories, `", "`) + `"`
	return tax.System + fmt.Sprintf(responseContract, categories, threshold, threshold)
}

func userPrompt(req *Request) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Target: %s\n", req.Target)
	if req.TargetSegments > 0 {
		fmt.Fprintf(&sb, "Approximate phoneme count of the target: %d\n", req.TargetSegments)
	}
	if req.Extra != "" {
		sb.WriteString(req.Extra)
		sb.WriteString("\n")
	}
	fmt.Fprintf(&sb, "Aggregated transcript: %s\n", req.Transcript)
	fmt.Fprintf(&sb, "Timeline JSON: %s\n", req.TimelineJSON)
	fmt.Fprintf(&sb, "Hesitation threshold seconds: %.0f", req.ThresholdSeconds)
	return sb.String()
}

//Default is the pre-seeded fallback used when the model call fails or
//returns unparseable JSON. A scoring mistake is preferable to data loss
func Default(st api.Subtest) *Evaluation {
	other := api.ErrTypeOther
	return &Evaluation{Verdict: VerdictIncorrect, Category: &other}
}
