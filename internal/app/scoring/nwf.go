package scoring

import (
	"unicode"

	"github.com/eduspeech/scorelit/internal/app/scoring/api"
	"github.com/eduspeech/scorelit/internal/pkg/evaluator"
	"github.com/eduspeech/scorelit/internal/pkg/transcription"
)

// nwfScorer scores nonsense word decoding. The student may sound the word
// out letter by letter or blend it whole, both earn the letter sounds
type nwfScorer struct {
	baseScorer
}

func (s nwfScorer) prepare(res *api.Result, sub *api.Submission) {
	res.TargetSounds = letterCount(sub.Target)
}

func (s nwfScorer) options(sub *api.Submission) transcription.Options {
	return transcription.Options{
		Language: "en",
		Prompt: "A young student reads the made-up word '" + sub.Target +
			"'. The word is not real English, transcribe the sounds as heard, " +
			"letter by letter or blended.",
	}
}

func (s nwfScorer) request(sub *api.Submission, tr *transcription.ParsedTranscription) *evaluator.Request {
	req := s.baseScorer.request(sub, tr)
	req.Extra = "The target is a nonsense word, accept sound-by-sound or blended readings."
	return req
}

func (s nwfScorer) fill(res *api.Result, sub *api.Submission, ev *evaluator.Evaluation) {
	s.baseScorer.fill(res, sub, ev)
	res.TargetSounds = letterCount(sub.Target)
	res.CorrectSounds = ev.CorrectSounds
	if res.CorrectSounds > res.TargetSounds {
		res.CorrectSounds = res.TargetSounds
	}
	if ev.Verdict == evaluator.VerdictCorrect {
		res.CorrectSounds = res.TargetSounds
	}
	// a partially decoded word still earns its letter sounds
	res.IsCorrect = res.CorrectSounds > 0 || ev.Verdict == evaluator.VerdictCorrect
}

func letterCount(word string) int {
	res := 0
	for _, r := range word {
		if unicode.IsLetter(r) {
			res++
		}
	}
	return res
}
