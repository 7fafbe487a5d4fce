package scoring

import (
	"math"
	"strings"

	"github.com/eduspeech/scorelit/internal/app/scoring/api"
	"github.com/eduspeech/scorelit/internal/pkg/evaluator"
	"github.com/eduspeech/scorelit/internal/pkg/transcription"
)

// orfScorer scores passage reading. There is no single verdict, the
// outcome is a words-correct count with derived rate and accuracy
type orfScorer struct {
	baseScorer
}

func (s orfScorer) options(sub *api.Submission) transcription.Options {
	return transcription.Options{
		Language: "en",
		Prompt: "A young student reads a short English passage aloud. " +
			"Transcribe exactly what is read, keep repetitions and false starts.",
	}
}

func (s orfScorer) request(sub *api.Submission, tr *transcription.ParsedTranscription) *evaluator.Request {
	req := s.baseScorer.request(sub, tr)
	req.Extra = "Count every passage word read correctly in order, count words_correct only."
	return req
}

func (s orfScorer) fill(res *api.Result, sub *api.Submission, ev *evaluator.Evaluation) {
	passageWords := len(strings.Fields(sub.Target))
	wc := ev.WordsCorrect
	if wc > passageWords {
		wc = passageWords
	}
	if wc < 0 {
		wc = 0
	}
	res.WordsCorrect = wc
	res.TimeTaken = sub.TimeTaken
	if sub.TimeTaken > 0 {
		res.WCPM = int(math.Round(float64(wc) / float64(sub.TimeTaken) * 60))
	}
	if passageWords > 0 {
		res.Accuracy = float64(wc) / float64(passageWords)
	}
	res.IsCorrect = passageWords > 0 && wc == passageWords
	res.ErrorType = ev.Category
	res.SelfCorrection = ev.SelfCorrection
	res.Notes = ev.Notes
}
