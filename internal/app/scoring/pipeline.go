package scoring

import (
	"context"
	"strings"
	"time"

	"github.com/eduspeech/scorelit/internal/app/scoring/api"
	"github.com/eduspeech/scorelit/internal/pkg/audio"
	"github.com/eduspeech/scorelit/internal/pkg/cmdapp"
	"github.com/eduspeech/scorelit/internal/pkg/evaluator"
	"github.com/eduspeech/scorelit/internal/pkg/saver"
	"github.com/eduspeech/scorelit/internal/pkg/timeline"
	"github.com/eduspeech/scorelit/internal/pkg/transcription"
	"github.com/pkg/errors"
)

const (
	hesitationThreshold   = 5.0
	minSpeechSeconds      = 0.3
	timelinePromptEntries = 12
	audioContentType      = "audio/webm"
)

// FileSaver puts the audio blob into object storage
type FileSaver interface {
	Save(ctx context.Context, path string, data []byte, contentType string) (string, error)
}

// ResultSaver persists one scored record
type ResultSaver interface {
	Save(result *api.Result) error
}

// Evaluator runs the rubric call for a transcript
type Evaluator interface {
	Evaluate(ctx context.Context, req *evaluator.Request) (*evaluator.Evaluation, error)
}

// NameProvider resolves the student display name used in storage paths
type NameProvider interface {
	Get(userID string) (string, error)
}

// Transcriber fans one recording out to the configured providers
type Transcriber interface {
	TranscribeAll(ctx context.Context, data []byte, opts transcription.Options) transcription.AllResults
	GetPrimary(results transcription.AllResults) (*transcription.ParsedTranscription, bool)
}

// Pipeline runs one submission from raw audio to a persisted record.
// Every entry produces exactly one record, persistence failures are
// logged and swallowed
type Pipeline struct {
	files   FileSaver
	results ResultSaver
	eval    Evaluator
	names   NameProvider
	single  Transcriber // LNF, PSF
	multi   Transcriber // NWF, WRF, ORF
	timeout time.Duration
}

//NewPipeline creates the pipeline
func NewPipeline(files FileSaver, results ResultSaver, eval Evaluator, names NameProvider,
	single, multi Transcriber, timeout time.Duration) (*Pipeline, error) {
	if files == nil || results == nil || eval == nil || single == nil || multi == nil {
		return nil, errors.New("Missing pipeline dependency")
	}
	if timeout <= 0 {
		timeout = 60 * time.Second
	}
	return &Pipeline{files: files, results: results, eval: eval, names: names,
		single: single, multi: multi, timeout: timeout}, nil
}

type storeOutcome struct {
	path string
	err  error
}

//Process scores one submission
func (p *Pipeline) Process(ctx context.Context, sub *api.Submission) {
	start := time.Now()
	ctx, cancel := context.WithTimeout(ctx, p.timeout)
	defer cancel()

	res := &api.Result{UserID: sub.UserID, TestType: sub.Subtest, Question: sub.Target,
		CorrectAnswer: sub.Target, Created: start}
	defer func() {
		res.ProcessingTimeMs = time.Since(start).Milliseconds()
		p.persist(res)
	}()

	sc, err := scorerFor(sub.Subtest)
	if err != nil {
		cmdapp.Log.Error(err)
		markError(res, api.ErrTypeProcessing)
		return
	}
	sc.prepare(res, sub)

	if sub.Skip {
		if len(sub.Audio) > 0 {
			if path, err := p.storeAudio(ctx, sub); err == nil {
				res.AudioURL = path
			} else {
				cmdapp.Log.Error(errors.Wrap(err, "Can't store skipped audio"))
			}
		}
		markError(res, api.ErrTypeSkipped)
		return
	}

	switch audio.Validate(sub.Audio) {
	case audio.Empty:
		markError(res, api.ErrTypeHesitation)
		return
	case audio.Insufficient:
		markError(res, api.ErrTypeInsufficient)
		return
	case audio.Oversized:
		markError(res, api.ErrTypeTooLarge)
		return
	}

	storeCh := make(chan storeOutcome, 1)
	go func() {
		path, err := p.storeAudio(ctx, sub)
		storeCh <- storeOutcome{path: path, err: err}
	}()

	tr := p.transcriber(sc)
	all := tr.TranscribeAll(ctx, sub.Audio, sc.options(sub))
	res.Transcriptions = auditPayload(all)

	st := <-storeCh
	if st.err != nil {
		cmdapp.Log.Error(errors.Wrap(st.err, "Can't store audio"))
		markError(res, api.ErrTypeProcessing)
		return
	}
	res.AudioURL = st.path

	primary, ok := tr.GetPrimary(all)
	if !ok {
		markError(res, api.ErrTypeProcessing)
		return
	}
	res.StudentAnswer = primary.Text
	res.ConfidenceLevel = primary.Confidence

	if timeline.HasHesitation(primary.Timeline, hesitationThreshold) {
		markError(res, api.ErrTypeHesitation)
		return
	}
	if noSpeech(primary) {
		markError(res, api.ErrTypeOmissions)
		return
	}

	ev, err := p.eval.Evaluate(ctx, sc.request(sub, primary))
	if err != nil {
		cmdapp.Log.Error(errors.Wrap(err, "Can't evaluate, using fallback"))
		ev = evaluator.Default(sub.Subtest)
	}
	ev = sc.reconcile(sub, primary, ev)
	sc.fill(res, sub, ev)
}

func (p *Pipeline) transcriber(sc scorer) Transcriber {
	if sc.multiProvider() {
		return p.multi
	}
	return p.single
}

func (p *Pipeline) storeAudio(ctx context.Context, sub *api.Submission) (string, error) {
	name := sub.UserID
	if p.names != nil {
		n, err := p.names.Get(sub.UserID)
		if err != nil {
			cmdapp.Log.Warn(errors.Wrap(err, "Can't get student name"))
		} else {
			name = n
		}
	}
	return p.files.Save(ctx, saver.GeneratePath(name, string(sub.Subtest), time.Now()),
		sub.Audio, audioContentType)
}

func (p *Pipeline) persist(res *api.Result) {
	if err := p.results.Save(res); err != nil {
		cmdapp.Log.Error(errors.Wrap(err, "Can't persist result"))
	}
}

func markError(res *api.Result, errType string) {
	res.IsCorrect = false
	res.ErrorType = &errType
}

func noSpeech(tr *transcription.ParsedTranscription) bool {
	if strings.TrimSpace(tr.Text) == "" {
		return true
	}
	if !timeline.HasSpeech(tr.Timeline) {
		return true
	}
	return tr.Confidence == transcription.ConfidenceLow &&
		timeline.SpeechDuration(tr.Timeline) < minSpeechSeconds
}

func auditPayload(all transcription.AllResults) map[string]api.ProviderResult {
	res := make(map[string]api.ProviderResult, len(all))
	for name, r := range all {
		if r.Success && r.Result != nil {
			res[name] = api.ProviderResult{Text: r.Result.Text, Confidence: r.Result.Confidence,
				Timeline: r.Result.Timeline}
		} else {
			res[name] = api.ProviderResult{Error: r.Error}
		}
	}
	return res
}
