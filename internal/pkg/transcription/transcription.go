package transcription

import (
	"context"

	"github.com/eduspeech/scorelit/internal/pkg/timeline"
)

// Confidence labels attached to a transcript
const (
	ConfidenceLow    = "low"
	ConfidenceMedium = "medium"
	ConfidenceHigh   = "high"
)

// Provider names, also used as audit keys in the stored record
const (
	ProviderOpenAI = "openai"
	ProviderGemini = "gemini"
	ProviderAWS    = "aws"
	ProviderAzure  = "azure"
)

//Options are per call transcription parameters
type Options struct {
	Language       string
	Prompt         string
	ResponseFormat string
	Temperature    float32
}

//ParsedTranscription is the canonical shape every adapter normalizes into
type ParsedTranscription struct {
	Text       string
	Confidence string
	Timeline   []timeline.Entry
	Duration   float64
	Raw        interface{}
}

//Adapter transcribes one audio recording. Implementations must not retry
//internally, a failed attempt is reported as failure for that provider
type Adapter interface {
	Transcribe(ctx context.Context, data []byte, opts Options) (*ParsedTranscription, error)
}

func normalizeConfidence(c string) string {
	switch c {
	case ConfidenceLow, ConfidenceMedium, ConfidenceHigh:
		return c
	}
	return ConfidenceMedium
}

func confidenceFromScore(score float64) string {
	if score > 0.8 {
		return ConfidenceHigh
	}
	if score > 0.5 {
		return ConfidenceMedium
	}
	return ConfidenceLow
}
