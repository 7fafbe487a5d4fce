package scoring

import (
	"github.com/eduspeech/scorelit/internal/app/scoring/api"
	"github.com/eduspeech/scorelit/internal/pkg/evaluator"
	"github.com/eduspeech/scorelit/internal/pkg/reconcile"
	"github.com/eduspeech/scorelit/internal/pkg/transcription"
)

// lnfScorer scores letter naming. The student must say the letter name,
// letter sounds count as errors. A whitelist of accepted spoken forms,
// English and Korean, can force-accept a response the model rejected
type lnfScorer struct {
	baseScorer
}

func (s lnfScorer) options(sub *api.Submission) transcription.Options {
	return transcription.Options{
		Language: "en",
		Prompt: "A young Korean student says the name of the single printed English letter '" +
			sub.Target + "'. Expect one short utterance, possibly a Korean letter name.",
	}
}

func (s lnfScorer) reconcile(sub *api.Submission, tr *transcription.ParsedTranscription, ev *evaluator.Evaluation) *evaluator.Evaluation {
	ev = reconcile.Sanitize(api.LNF, ev)
	return reconcile.Override(sub.Target, tr.Text, ev.RecognizedForm, ev, reconcile.LetterNames)
}

func (s lnfScorer) multiProvider() bool { return false }
