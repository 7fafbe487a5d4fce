package scoring

import (
	"github.com/eduspeech/scorelit/internal/app/scoring/api"
	"github.com/eduspeech/scorelit/internal/pkg/evaluator"
	"github.com/eduspeech/scorelit/internal/pkg/reconcile"
	"github.com/eduspeech/scorelit/internal/pkg/timeline"
	"github.com/eduspeech/scorelit/internal/pkg/transcription"
	"github.com/pkg/errors"
)

// scorer holds the per-subtest behavior: the transcription prompt, the
// rubric request, evaluation cleanup and record assembly
type scorer interface {
	// prepare fills target derived fields known before any provider call
	prepare(res *api.Result, sub *api.Submission)
	options(sub *api.Submission) transcription.Options
	request(sub *api.Submission, tr *transcription.ParsedTranscription) *evaluator.Request
	reconcile(sub *api.Submission, tr *transcription.ParsedTranscription, ev *evaluator.Evaluation) *evaluator.Evaluation
	fill(res *api.Result, sub *api.Submission, ev *evaluator.Evaluation)
	multiProvider() bool
}

func scorerFor(st api.Subtest) (scorer, error) {
	switch st {
	case api.LNF:
		return lnfScorer{baseScorer{subtest: api.LNF}}, nil
	case api.PSF:
		return psfScorer{baseScorer{subtest: api.PSF}}, nil
	case api.NWF:
		return nwfScorer{baseScorer{subtest: api.NWF}}, nil
	case api.WRF:
		return wrfScorer{baseScorer{subtest: api.WRF}}, nil
	case api.ORF:
		return orfScorer{baseScorer{subtest: api.ORF}}, nil
	}
	return nil, errors.Errorf("Unknown subtest '%s'", st)
}

// base behavior shared by all subtests
type baseScorer struct {
	subtest api.Subtest
}

func (s baseScorer) prepare(res *api.Result, sub *api.Submission) {
}

func (s baseScorer) request(sub *api.Submission, tr *transcription.ParsedTranscription) *evaluator.Request {
	return &evaluator.Request{
		Subtest:          s.subtest,
		Target:           sub.Target,
		Transcript:       tr.Text,
		TimelineJSON:     timeline.ToPrompt(tr.Timeline, timelinePromptEntries),
		ThresholdSeconds: hesitationThreshold,
	}
}

func (s baseScorer) reconcile(sub *api.Submission, tr *transcription.ParsedTranscription, ev *evaluator.Evaluation) *evaluator.Evaluation {
	return reconcile.Sanitize(s.subtest, ev)
}

func (s baseScorer) fill(res *api.Result, sub *api.Submission, ev *evaluator.Evaluation) {
	res.IsCorrect = ev.Verdict == evaluator.VerdictCorrect
	res.ErrorType = ev.Category
	res.SelfCorrection = ev.SelfCorrection
	res.Notes = ev.Notes
}

func (s baseScorer) multiProvider() bool { return true }
