package evaluator

import (
	"github.com/eduspeech/scorelit/internal/app/scoring/api"
)

// Verdict values the evaluator may return
const (
	VerdictCorrect   = "correct"
	VerdictPartial   = "partial"
	VerdictIncorrect = "incorrect"
)

//Taxonomy is the closed rubric for one subtest: the verdict domain, the
//error category enum and the scoring instructions sent to the model
type Taxonomy struct {
	Verdicts   []string
	Categories []string
	System     string
}

//ValidVerdict tests v against the verdict domain
func (t Taxonomy) ValidVerdict(v string) bool {
	return contains(t.Verdicts, v)
}

//ValidCategory tests c against the closed category enum
func (t Taxonomy) ValidCategory(c string) bool {
	return contains(t.Categories, c)
}

func contains(l []string, s string) bool {
	for _, v := range l {
		if v == s {
			return true
		}
	}
	return false
}

//TaxonomyFor returns the rubric for a subtest
func TaxonomyFor(st api.Subtest) (Taxonomy, bool) {
	t, ok := taxonomies[st]
	return t, ok
}

var taxonomies = map[api.Subtest]Taxonomy{
	api.LNF: {
		Verdicts:   []string{VerdictCorrect, VerdictIncorrect},
		Categories: []string{"Letter reversals", "Letter sounds", "Omissions", "Hesitation", "Other"},
		System: `You are a DIBELS 8th edition Letter Naming Fluency scorer for Korean EFL students.

Scoring rules:
- ONLY letter NAMES are correct. Letter sounds must be categorised as "Letter sounds".
- Accept Korean pronunciations of letter names only when they match the exact letter name.
- If the transcript shows a letter name but the timeline shows no actual speech segments, mark as "Omissions".`,
	},
	api.PSF: {
		Verdicts:   []string{VerdictCorrect, VerdictPartial, VerdictIncorrect},
		Categories: []string{"Mispronounced segment", "No segmentation", "Spelling", "Omissions", "Hesitation", "Other"},
		System: `You are a DIBELS 8th edition Phoneme Segmentation Fluency scorer for Korean EFL students.

Scoring rules:
- The student must break the target word into its individual phonemes, e.g. for "map": "m-a-p" or "m / a / p".
- Count the phonemes the student produced correctly and report it as "correct_segments".
- Repeating the whole word without segmenting it is "No segmentation".
- Spelling the word letter by letter instead of sounding phonemes is "Spelling".
- A response with some but not all phonemes correct is "partial" paired with the specific category.`,
	},
	api.NWF: {
		Verdicts:   []string{VerdictCorrect, VerdictPartial, VerdictIncorrect},
		Categories: []string{"Partially correct responses", "Sounds out of order", "Inserted Sounds", "Omissions", "Hesitation", "Other"},
		System: `You are a DIBELS 8th edition Nonsense Word Fluency scorer for Korean EFL students.

Scoring rules:
- The target is a made-up word, the student may read it as a whole word or sound by sound.
- Count the letter sounds produced correctly and report it as "correct_sounds".
- Sounds produced correctly but in the wrong order are "Sounds out of order".
- Extra sounds not in the target are "Inserted Sounds".
- A response with some but not all sounds correct is "partial" paired with the specific category.`,
	},
	api.WRF: {
		Verdicts:   []string{VerdictCorrect, VerdictIncorrect},
		Categories: []string{"Mispronounced words", "Sounded out words", "Word order", "Omissions", "Hesitation", "Other"},
		System: `You are a DIBELS 8th edition Word Reading Fluency scorer for Korean EFL students.

Scoring rules:
- The student must read the target sight word as a whole word.
- Sounding the word out without blending it into a whole word is "Sounded out words".
- Accept Korean-accented pronunciations when the word is recognizable.`,
	},
	api.ORF: {
		Verdicts:   nil,
		Categories: []string{"Mispronounced words", "Sounded out words", "Word order", "Omissions", "Hesitation", "Other"},
		System: `You are a DIBELS 8th edition Oral Reading Fluency scorer for Korean EFL students.

Scoring rules:
- The student reads a short passage aloud. There is no single verdict, count the words read correctly and report it as "words_correct".
- Substitutions, omissions and hesitations over 3 seconds on a word count as errors for that word.
- Self-corrected words count as correct.
- Pick the dominant error category for "error_category", or null when the reading is fully correct.`,
	},
}
