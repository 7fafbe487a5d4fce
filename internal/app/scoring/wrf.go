package scoring

import (
	"github.com/eduspeech/scorelit/internal/app/scoring/api"
	"github.com/eduspeech/scorelit/internal/pkg/transcription"
)

// wrfScorer scores sight word reading, one real word per submission
type wrfScorer struct {
	baseScorer
}

func (s wrfScorer) options(sub *api.Submission) transcription.Options {
	return transcription.Options{
		Language: "en",
		Prompt: "A young Korean student reads the single English word '" + sub.Target +
			"' aloud. Expect one short utterance.",
	}
}

var _ scorer = wrfScorer{baseScorer{subtest: api.WRF}}
