package transcription

import (
	"context"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
)

type fakeAdapter struct {
	res *ParsedTranscription
	err error
}

func (f *fakeAdapter) Transcribe(ctx context.Context, data []byte, opts Options) (*ParsedTranscription, error) {
	return f.res, f.err
}

type panicAdapter struct{}

func (p *panicAdapter) Transcribe(ctx context.Context, data []byte, opts Options) (*ParsedTranscription, error) {
	panic("olia")
}

func newTestAggregator(openaiErr error) *Aggregator {
	ok := &fakeAdapter{res: &ParsedTranscription{Text: "cat", Confidence: ConfidenceMedium}}
	fail := &fakeAdapter{err: errors.New("quota")}
	openai := Adapter(ok)
	if openaiErr != nil {
		openai = &fakeAdapter{err: openaiErr}
	}
	return NewAggregator(ProviderOpenAI, map[string]Adapter{
		ProviderOpenAI: openai,
		ProviderGemini: fail,
		ProviderAWS:    fail,
		ProviderAzure:  fail,
	})
}

func TestTranscribeAll_PartialFailure(t *testing.T) {
	a := newTestAggregator(nil)
	res := a.TranscribeAll(context.Background(), []byte("audio"), Options{})
	assert.Equal(t, 4, len(res))
	assert.True(t, res[ProviderOpenAI].Success)
	assert.False(t, res[ProviderGemini].Success)
	assert.Equal(t, "quota", res[ProviderGemini].Error)
	assert.False(t, res[ProviderAWS].Success)
	assert.False(t, res[ProviderAzure].Success)
}

func TestTranscribeAll_AllFail(t *testing.T) {
	a := newTestAggregator(errors.New("auth"))
	res := a.TranscribeAll(context.Background(), []byte("audio"), Options{})
	assert.Equal(t, 4, len(res))
	for _, r := range res {
		assert.False(t, r.Success)
	}
}

func TestTranscribeAll_PanicIsolated(t *testing.T) {
	a := NewAggregator(ProviderOpenAI, map[string]Adapter{
		ProviderOpenAI: &fakeAdapter{res: &ParsedTranscription{Text: "cat"}},
		ProviderGemini: &panicAdapter{},
	})
	res := a.TranscribeAll(context.Background(), []byte("audio"), Options{})
	assert.Equal(t, 2, len(res))
	assert.True(t, res[ProviderOpenAI].Success)
	assert.False(t, res[ProviderGemini].Success)
	assert.Contains(t, res[ProviderGemini].Error, "panic")
}

func TestGetPrimary(t *testing.T) {
	a := newTestAggregator(nil)
	res := a.TranscribeAll(context.Background(), []byte("audio"), Options{})
	tr, ok := a.GetPrimary(res)
	assert.True(t, ok)
	assert.Equal(t, "cat", tr.Text)
}

func TestGetPrimary_Failed(t *testing.T) {
	a := newTestAggregator(errors.New("auth"))
	res := a.TranscribeAll(context.Background(), []byte("audio"), Options{})
	tr, ok := a.GetPrimary(res)
	assert.False(t, ok)
	assert.Nil(t, tr)
}

func TestGetPrimary_NeverSubstitutes(t *testing.T) {
	a := newTestAggregator(errors.New("auth"))
	res := AllResults{
		ProviderGemini: Result{Success: true, Result: &ParsedTranscription{Text: "dog"}, Provider: ProviderGemini},
	}
	_, ok := a.GetPrimary(res)
	assert.False(t, ok)
}
