package mocks

import (
	"context"

	"github.com/eduspeech/scorelit/internal/app/scoring/api"
	"github.com/eduspeech/scorelit/internal/pkg/evaluator"
	"github.com/eduspeech/scorelit/internal/pkg/transcription"
	"github.com/stretchr/testify/mock"
)

//FileSaver is a mock
type FileSaver struct {
	mock.Mock
}

//Save is a mocked Save function
func (m *FileSaver) Save(ctx context.Context, path string, data []byte, contentType string) (string, error) {
	args := m.Mock.Called(path, data, contentType)
	return args.String(0), args.Error(1)
}

//ResultSaver is a mock
type ResultSaver struct {
	mock.Mock
}

//Save is a mocked Save function
func (m *ResultSaver) Save(result *api.Result) error {
	args := m.Mock.Called(result)
	return args.Error(0)
}

//Evaluator is a mock
type Evaluator struct {
	mock.Mock
}

//Evaluate is a mocked Evaluate function
func (m *Evaluator) Evaluate(ctx context.Context, req *evaluator.Request) (*evaluator.Evaluation, error) {
	args := m.Mock.Called(req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*evaluator.Evaluation), args.Error(1)
}

//NameProvider is a mock
type NameProvider struct {
	mock.Mock
}

//Get is a mocked Get function
func (m *NameProvider) Get(userID string) (string, error) {
	args := m.Mock.Called(userID)
	return args.String(0), args.Error(1)
}

//Transcriber is a mock
type Transcriber struct {
	mock.Mock
}

//TranscribeAll is a mocked TranscribeAll function
func (m *Transcriber) TranscribeAll(ctx context.Context, data []byte, opts transcription.Options) transcription.AllResults {
	args := m.Mock.Called(data, opts)
	if args.Get(0) == nil {
		return nil
	}
	return args.Get(0).(transcription.AllResults)
}

//GetPrimary is a mocked GetPrimary function
func (m *Transcriber) GetPrimary(results transcription.AllResults) (*transcription.ParsedTranscription, bool) {
	args := m.Mock.Called(results)
	if args.Get(0) == nil {
		return nil, args.Bool(1)
	}
	return args.Get(0).(*transcription.ParsedTranscription), args.Bool(1)
}
