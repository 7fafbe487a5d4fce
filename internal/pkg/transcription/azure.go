package transcription

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/eduspeech/scorelit/internal/pkg/cmdapp"
	"github.com/eduspeech/scorelit/internal/pkg/utils"
	"github.com/pkg/errors"
)

//Azure transcribes using the Azure Speech short audio REST endpoint.
//The basic API returns no per word timeline, a single segment is synthesized
type Azure struct {
	httpclient *http.Client
	url        string
	key        string
}

//NewAzure creates the adapter from config
func NewAzure() (*Azure, error) {
	key := cmdapp.Config.GetString("azure.key")
	if key == "" {
		return nil, errors.New("No azure.key provided")
	}
	urlStr, err := utils.GetURLFromConfig("azure.url")
	if err != nil {
		region := cmdapp.Config.GetString("azure.region")
		if region == "" {
			region = "eastus"
		}
		urlStr = fmt.Sprintf("https://%s.stt.speech.microsoft.com/speech/recognition/conversation/cognitiveservices/v1", region)
	}
	cmdapp.Log.Infof("Azure speech URL: %s", utils.URLToLog(urlStr))
	return &Azure{httpclient: &http.Client{Timeout: time.Minute}, url: urlStr, key: key}, nil
}

type azureResponse struct {
	RecognitionStatus string  `json:"RecognitionStatus"`
	DisplayText       string  `json:"DisplayText"`
	Confidence        float64 `json:"Confidence"`
	Duration          int64   `json:"Duration"`
}

//Transcribe posts raw audio bytes to the recognition endpoint
func (a *Azure) Transcribe(ctx context.Context, data []byte, opts Options) (*ParsedTranscription, error) {
	urlStr := a.url + "?language=" + azureLanguage(opts)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, urlStr, bytes.NewReader(data))
	if err != nil {
		return nil, errors.Wrap(err, "Can't prepare azure request")
	}
	req.Header.Set("Ocp-Apim-Subscription-Key", a.key)
	req.Header.Set("Content-Type", "audio/webm; codecs=opus")
	req.Header.Set("Accept", "application/json")

	resp, err := a.httpclient.Do(req)
	if err != nil {
		return nil, errors.Wrap(err, "Can't call azure")
	}
	defer resp.Body.Close()
	if err := utils.ValidateResponse(resp); err != nil {
		return nil, errors.Wrap(err, "Can't transcribe with azure")
	}

	var ar azureResponse
	if err := json.NewDecoder(resp.Body).Decode(&ar); err != nil {
		return nil, errors.Wrap(err, "Can't decode azure response")
	}
	if ar.RecognitionStatus != "Success" {
		return nil, errors.New("Azure recognition failed: " + ar.RecognitionStatus)
	}
	res := fromRawText(ar.DisplayText, &ar)
	if ar.Confidence > 0 {
		res.Confidence = confidenceFromScore(ar.Confidence)
	}
	return res, nil
}

func azureLanguage(opts Options) string {
	if opts.Language == "" || opts.Language == "en" {
		return "en-US"
	}
	return opts.Language
}
