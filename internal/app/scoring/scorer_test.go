package scoring

import (
	"testing"

	"github.com/eduspeech/scorelit/internal/app/scoring/api"
	"github.com/eduspeech/scorelit/internal/pkg/evaluator"
	"github.com/stretchr/testify/assert"
)

func TestScorerFor(t *testing.T) {
	for _, st := range []api.Subtest{api.LNF, api.PSF, api.NWF, api.WRF, api.ORF} {
		sc, err := scorerFor(st)
		assert.Nil(t, err, string(st))
		assert.NotNil(t, sc, string(st))
	}
	_, err := scorerFor(api.Subtest("olia"))
	assert.NotNil(t, err)
}

func TestScorerFor_Providers(t *testing.T) {
	for st, multi := range map[api.Subtest]bool{api.LNF: false, api.PSF: false,
		api.NWF: true, api.WRF: true, api.ORF: true} {
		sc, _ := scorerFor(st)
		assert.Equal(t, multi, sc.multiProvider(), string(st))
	}
}

func TestPhonemeCount(t *testing.T) {
	tests := []struct {
		word string
		v    int
	}{
		{word: "cat", v: 3},
		{word: "ship", v: 3},
		{word: "like", v: 3},
		{word: "apple", v: 5},
		{word: "thing", v: 3},
		{word: "a", v: 1},
		{word: "e", v: 1},
		{word: "", v: 1},
	}
	for _, tc := range tests {
		assert.Equal(t, tc.v, phonemeCount(tc.word), tc.word)
	}
}

func TestLetterCount(t *testing.T) {
	assert.Equal(t, 3, letterCount("mip"))
	assert.Equal(t, 3, letterCount("lu-t"))
	assert.Equal(t, 0, letterCount(""))
}

func TestORFFill_Clamps(t *testing.T) {
	sc, _ := scorerFor(api.ORF)
	res := &api.Result{}
	sc.fill(res, &api.Submission{Target: "one two three", TimeTaken: 60},
		&evaluator.Evaluation{WordsCorrect: 10})
	assert.Equal(t, 3, res.WordsCorrect)
	assert.Equal(t, 3, res.WCPM)
	assert.InDelta(t, 1.0, res.Accuracy, 0.0001)
	assert.True(t, res.IsCorrect)
}

func TestORFFill_ZeroTime(t *testing.T) {
	sc, _ := scorerFor(api.ORF)
	res := &api.Result{}
	sc.fill(res, &api.Submission{Target: "one two three"},
		&evaluator.Evaluation{WordsCorrect: 2})
	assert.Equal(t, 0, res.WCPM)
	assert.Equal(t, 2, res.WordsCorrect)
}

func TestPSFFill_CorrectGetsAllSegments(t *testing.T) {
	sc, _ := scorerFor(api.PSF)
	res := &api.Result{}
	sc.fill(res, &api.Submission{Target: "ship"},
		&evaluator.Evaluation{Verdict: evaluator.VerdictCorrect, CorrectSegments: 1})
	assert.Equal(t, 3, res.TargetSegments)
	assert.Equal(t, 3, res.CorrectSegments)
	assert.True(t, res.IsCorrect)
}

func TestNWFFill_Partial(t *testing.T) {
	sc, _ := scorerFor(api.NWF)
	res := &api.Result{}
	cat := "Partially correct responses"
	sc.fill(res, &api.Submission{Target: "mip"},
		&evaluator.Evaluation{Verdict: evaluator.VerdictPartial, Category: &cat, CorrectSounds: 2})
	assert.Equal(t, 3, res.TargetSounds)
	assert.Equal(t, 2, res.CorrectSounds)
	assert.True(t, res.IsCorrect)
	assert.Equal(t, "Partially correct responses", *res.ErrorType)
}

func TestNWFFill_NoSounds(t *testing.T) {
	sc, _ := scorerFor(api.NWF)
	res := &api.Result{}
	sc.fill(res, &api.Submission{Target: "mip"},
		&evaluator.Evaluation{Verdict: evaluator.VerdictIncorrect, CorrectSounds: 0})
	assert.Equal(t, 0, res.CorrectSounds)
	assert.False(t, res.IsCorrect)
}

func TestPSFFill_PartialEarnsCredit(t *testing.T) {
	sc, _ := scorerFor(api.PSF)
	res := &api.Result{}
	sc.fill(res, &api.Submission{Target: "ship"},
		&evaluator.Evaluation{Verdict: evaluator.VerdictPartial, CorrectSegments: 2})
	assert.Equal(t, 2, res.CorrectSegments)
	assert.True(t, res.IsCorrect)
}

func TestPSFFill_NoSegments(t *testing.T) {
	sc, _ := scorerFor(api.PSF)
	res := &api.Result{}
	sc.fill(res, &api.Submission{Target: "ship"},
		&evaluator.Evaluation{Verdict: evaluator.VerdictIncorrect, CorrectSegments: 0})
	assert.False(t, res.IsCorrect)
}
