package scoring

import (
	"regexp"
	"strings"

	"github.com/eduspeech/scorelit/internal/app/scoring/api"
	"github.com/eduspeech/scorelit/internal/pkg/evaluator"
	"github.com/eduspeech/scorelit/internal/pkg/transcription"
)

// psfScorer scores phoneme segmentation. The student breaks the target
// word into its individual sounds, partial credit per correct segment
type psfScorer struct {
	baseScorer
}

func (s psfScorer) prepare(res *api.Result, sub *api.Submission) {
	res.TargetSegments = phonemeCount(sub.Target)
}

func (s psfScorer) options(sub *api.Submission) transcription.Options {
	return transcription.Options{
		Language: "en",
		Prompt: "A young student segments the word '" + sub.Target +
			"' into individual sounds, for example 'c... a... t'. Keep pauses between sounds.",
	}
}

func (s psfScorer) request(sub *api.Submission, tr *transcription.ParsedTranscription) *evaluator.Request {
	req := s.baseScorer.request(sub, tr)
	req.TargetSegments = phonemeCount(sub.Target)
	return req
}

func (s psfScorer) fill(res *api.Result, sub *api.Submission, ev *evaluator.Evaluation) {
	s.baseScorer.fill(res, sub, ev)
	res.TargetSegments = phonemeCount(sub.Target)
	res.CorrectSegments = ev.CorrectSegments
	if res.CorrectSegments > res.TargetSegments {
		res.CorrectSegments = res.TargetSegments
	}
	if ev.Verdict == evaluator.VerdictCorrect {
		res.CorrectSegments = res.TargetSegments
	}
	// any segmented sound earns credit
	res.IsCorrect = res.CorrectSegments > 0
}

var digraphs = regexp.MustCompile(`sh|ch|th|ph|ng`)
var silentE = regexp.MustCompile(`[aeiou]gh`)

// phonemeCount estimates the phoneme count of an English word. Digraphs
// collapse to one sound, a trailing silent e is discarded. An estimate is
// enough here, the exact count needs a pronouncing dictionary
func phonemeCount(word string) int {
	w := strings.ToLower(strings.TrimSpace(word))
	count := len(digraphs.ReplaceAllString(w, "1"))
	if silentE.MatchString(w) || (strings.HasSuffix(w, "e") && !strings.HasSuffix(w, "le")) {
		count--
	}
	if count < 1 {
		count = 1
	}
	return count
}

func (s psfScorer) multiProvider() bool { return false }
