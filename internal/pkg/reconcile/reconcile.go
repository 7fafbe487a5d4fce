package reconcile

import (
	"strings"
	"unicode"

	"github.com/eduspeech/scorelit/internal/app/scoring/api"
	"github.com/eduspeech/scorelit/internal/pkg/cmdapp"
	"github.com/eduspeech/scorelit/internal/pkg/evaluator"
)

//Normalize lowers the text and strips whitespace, hyphens and punctuation
//so spelling variants of the same spoken form compare equal
func Normalize(s string) string {
	var sb strings.Builder
	for _, r := range strings.ToLower(s) {
		if unicode.IsSpace(r) || r == '-' || unicode.IsPunct(r) {
			continue
		}
		sb.WriteRune(r)
	}
	return sb.String()
}

//Sanitize clamps a model evaluation into the closed domain of the subtest.
//Out of domain verdicts become incorrect, out of domain categories become
//Other, a correct verdict always carries a nil category
func Sanitize(st api.Subtest, ev *evaluator.Evaluation) *evaluator.Evaluation {
	tax, ok := evaluator.TaxonomyFor(st)
	if !ok {
		return ev
	}
	if len(tax.Verdicts) > 0 && !tax.ValidVerdict(ev.Verdict) {
		cmdapp.Log.Warnf("Unexpected verdict '%s' for %s", ev.Verdict, st)
		ev.Verdict = evaluator.VerdictIncorrect
	}
	if ev.Verdict == evaluator.VerdictCorrect {
		ev.Category = nil
		return ev
	}
	if ev.Category != nil && !tax.ValidCategory(*ev.Category) {
		cmdapp.Log.Warnf("Unexpected category '%s' for %s", *ev.Category, st)
		other := api.ErrTypeOther
		ev.Category = &other
	}
	if ev.Category == nil && len(tax.Verdicts) > 0 {
		other := api.ErrTypeOther
		ev.Category = &other
	}
	return ev
}

//Override force-accepts a response when any acceptance variant of the
//target matches the transcript or the model's recognized form. It never
//downgrades, absent variants leave the evaluation untouched
func Override(target, transcript, recognized string, ev *evaluator.Evaluation, acceptance map[string][]string) *evaluator.Evaluation {
	variants, ok := acceptance[strings.ToUpper(strings.TrimSpace(target))]
	if !ok {
		return ev
	}
	heard := []string{Normalize(transcript), Normalize(recognized)}
	for _, v := range variants {
		nv := Normalize(v)
		for _, h := range heard {
			if h != "" && h == nv {
				ev.Verdict = evaluator.VerdictCorrect
				ev.Category = nil
				return ev
			}
		}
	}
	return ev
}
