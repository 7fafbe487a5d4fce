package api

import (
	"time"

	"github.com/eduspeech/scorelit/internal/pkg/timeline"
)

//Subtest is one of the five spoken response assessment types
type Subtest string

// Supported subtests
const (
	LNF Subtest = "LNF"
	PSF Subtest = "PSF"
	NWF Subtest = "NWF"
	WRF Subtest = "WRF"
	ORF Subtest = "ORF"
)

// Form parameter names
const (
	PrmAudio     = "audio"
	PrmQuestion  = "question"
	PrmUserID    = "userId"
	PrmTimeTaken = "timeTaken"
	PrmSkip      = "skip"
)

// Reserved error categories written by the pipeline itself, outside
// the evaluator taxonomies
const (
	ErrTypeHesitation   = "Hesitation"
	ErrTypeInsufficient = "insufficient_audio"
	ErrTypeTooLarge     = "audio_too_large"
	ErrTypeProcessing   = "processing_error"
	ErrTypeSkipped      = "Skipped"
	ErrTypeOmissions    = "Omissions"
	ErrTypeOther        = "Other"
)

//Submission is one student recording to score. Lifetime: one HTTP request
type Submission struct {
	UserID    string
	Target    string
	Subtest   Subtest
	Audio     []byte
	TimeTaken int
	Skip      bool
}

//ProviderResult is one provider's transcription kept for audit
type ProviderResult struct {
	Text       string           `bson:"text,omitempty" json:"text,omitempty"`
	Confidence string           `bson:"confidence,omitempty" json:"confidence,omitempty"`
	Timeline   []timeline.Entry `bson:"timeline,omitempty" json:"timeline,omitempty"`
	Error      string           `bson:"error,omitempty" json:"error,omitempty"`
}

//Result is the terminal state of the pipeline, created exactly once per
//submission and never mutated afterward
type Result struct {
	UserID        string  `bson:"user_id"`
	TestType      Subtest `bson:"test_type"`
	Question      string  `bson:"question"`
	CorrectAnswer string  `bson:"correct_answer,omitempty"`
	StudentAnswer string  `bson:"student_answer,omitempty"`
	IsCorrect     bool    `bson:"is_correct"`
	ErrorType     *string `bson:"error_type"`

	CorrectSegments int `bson:"correct_segments,omitempty"`
	TargetSegments  int `bson:"target_segments,omitempty"`

	CorrectSounds int `bson:"correct_sounds,omitempty"`
	TargetSounds  int `bson:"target_sounds,omitempty"`

	WordsCorrect int     `bson:"words_correct,omitempty"`
	WCPM         int     `bson:"wcpm,omitempty"`
	Accuracy     float64 `bson:"accuracy,omitempty"`
	TimeTaken    int     `bson:"time_taken,omitempty"`

	SelfCorrection bool   `bson:"self_correction,omitempty"`
	Notes          string `bson:"notes,omitempty"`

	AudioURL         string                    `bson:"audio_url,omitempty"`
	ConfidenceLevel  string                    `bson:"confidence_level,omitempty"`
	ProcessingTimeMs int64                     `bson:"processing_time_ms"`
	Transcriptions   map[string]ProviderResult `bson:"transcription_results,omitempty"`

	Created time.Time `bson:"created"`
}
