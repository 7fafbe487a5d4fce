package transcription

import (
	"context"
	"fmt"
	"sync"

	"github.com/eduspeech/scorelit/internal/pkg/cmdapp"
)

//Result is the settled outcome of one provider call
type Result struct {
	Success  bool
	Result   *ParsedTranscription
	Error    string
	Provider string
}

//AllResults keeps one settled record per configured provider
type AllResults map[string]Result

//Aggregator fans one recording out to every configured adapter
type Aggregator struct {
	adapters map[string]Adapter
	primary  string
}

//NewAggregator creates an aggregator. Primary is the provider whose output
//is authoritative for scoring
func NewAggregator(primary string, adapters map[string]Adapter) *Aggregator {
	return &Aggregator{adapters: adapters, primary: primary}
}

//TranscribeAll invokes every adapter concurrently. Each adapter's success or
//failure is captured independently, one failure never cancels the siblings.
//It always returns one entry per configured adapter and never fails itself
func (a *Aggregator) TranscribeAll(ctx context.Context, data []byte, opts Options) AllResults {
	res := make(AllResults, len(a.adapters))
	var m sync.Mutex
	var wg sync.WaitGroup
	for name, adapter := range a.adapters {
		wg.Add(1)
		go func(name string, adapter Adapter) {
			defer wg.Done()
			r := settle(ctx, name, adapter, data, opts)
			m.Lock()
			defer m.Unlock()
			res[name] = r
		}(name, adapter)
	}
	wg.Wait()
	for name, r := range res {
		if !r.Success {
			cmdapp.Log.Warnf("Transcription failed for %s: %s", name, r.Error)
		}
	}
	return res
}

func settle(ctx context.Context, name string, adapter Adapter, data []byte, opts Options) (res Result) {
	defer func() {
		if r := recover(); r != nil {
			res = Result{Success: false, Error: fmt.Sprintf("panic: %v", r), Provider: name}
		}
	}()
	tr, err := adapter.Transcribe(ctx, data, opts)
	if err != nil {
		return Result{Success: false, Error: err.Error(), Provider: name}
	}
	return Result{Success: true, Result: tr, Provider: name}
}

//GetPrimary returns the authoritative transcription. The remaining providers
//are retained for audit only and are never substituted as primary
func (a *Aggregator) GetPrimary(results AllResults) (*ParsedTranscription, bool) {
	r, ok := results[a.primary]
	if !ok || !r.Success || r.Result == nil {
		return nil, false
	}
	return r.Result, true
}

//Primary returns the configured primary provider name
func (a *Aggregator) Primary() string {
	return a.primary
}
