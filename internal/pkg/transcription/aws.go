package transcription

import (
	"bytes"
	"context"
	"encoding/json"
	"io/ioutil"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/transcribe"
	ttypes "github.com/aws/aws-sdk-go-v2/service/transcribe/types"
	"github.com/cenkalti/backoff"
	"github.com/eduspeech/scorelit/internal/pkg/cmdapp"
	"github.com/eduspeech/scorelit/internal/pkg/timeline"
	"github.com/eduspeech/scorelit/internal/pkg/utils"
	"github.com/google/uuid"
	"github.com/pkg/errors"
)

//ErrPollTimeout indicates the transcription job did not finish within the attempt cap
var ErrPollTimeout = errors.New("Transcription job poll timeout")

//AWS transcribes using the asynchronous AWS Transcribe flow: stage audio to
//S3, start a job, poll with a fixed interval and attempt cap, fetch the
//transcript JSON from the result URI
type AWS struct {
	s3Client     *s3.Client
	tClient      *transcribe.Client
	httpclient   *http.Client
	bucket       string
	pollInterval time.Duration
	pollAttempts uint64
}

//NewAWS creates the adapter from config
func NewAWS(ctx context.Context) (*AWS, error) {
	bucket := cmdapp.Config.GetString("aws.bucket")
	if bucket == "" {
		return nil, errors.New("No aws.bucket provided")
	}
	region := cmdapp.Config.GetString("aws.region")
	if region == "" {
		region = "us-east-1"
	}
	id := cmdapp.Config.GetString("aws.id")
	secret := cmdapp.Config.GetString("aws.secret")
	if id == "" || secret == "" {
		return nil, errors.New("No aws.id or aws.secret provided")
	}
	cfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(region),
		awsconfig.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(id, secret, "")))
	if err != nil {
		return nil, errors.Wrap(err, "Can't init aws config")
	}
	res := &AWS{s3Client: s3.NewFromConfig(cfg), tClient: transcribe.NewFromConfig(cfg),
		httpclient: &http.Client{Timeout: time.Minute}, bucket: bucket,
		pollInterval: 5 * time.Second, pollAttempts: 60}
	if v := cmdapp.Config.GetInt("aws.pollAttempts"); v > 0 {
		res.pollAttempts = uint64(v)
	}
	if v := cmdapp.Config.GetDuration("aws.pollInterval"); v > 0 {
		res.pollInterval = v
	}
	return res, nil
}

//Transcribe runs the full submit-poll-fetch flow
func (a *AWS) Transcribe(ctx context.Context, data []byte, opts Options) (*ParsedTranscription, error) {
	id := uuid.New().String()
	key := "transcriptions/" + id + ".webm"
	_, err := a.s3Client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(a.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(data),
		ContentType: aws.String("audio/webm"),
	})
	if err != nil {
		return nil, errors.Wrap(err, "Can't stage audio to s3")
	}
	defer a.cleanup(key)

	jobName := "scoring-" + id
	_, err = a.tClient.StartTranscriptionJob(ctx, &transcribe.StartTranscriptionJobInput{
		TranscriptionJobName: aws.String(jobName),
		Media:                &ttypes.Media{MediaFileUri: aws.String("s3://" + a.bucket + "/" + key)},
		MediaFormat:          ttypes.MediaFormatWebm,
		LanguageCode:         awsLanguage(opts),
		Settings: &ttypes.Settings{
			ShowSpeakerLabels: aws.Bool(false),
			MaxAlternatives:   aws.Int32(2),
		},
	})
	if err != nil {
		return nil, errors.Wrap(err, "Can't start transcription job")
	}

	uri, err := a.waitForJob(ctx, jobName)
	if err != nil {
		return nil, err
	}
	return a.fetchTranscript(ctx, uri)
}

func (a *AWS) waitForJob(ctx context.Context, jobName string) (string, error) {
	var uri string
	op := func() error {
		out, err := a.tClient.GetTranscriptionJob(ctx, &transcribe.GetTranscriptionJobInput{
			TranscriptionJobName: aws.String(jobName)})
		if err != nil {
			return backoff.Permanent(errors.Wrap(err, "Can't get transcription job"))
		}
		job := out.TranscriptionJob
		switch job.TranscriptionJobStatus {
		case ttypes.TranscriptionJobStatusCompleted:
			if job.Transcript == nil || job.Transcript.TranscriptFileUri == nil {
				return backoff.Permanent(errors.New("Transcription job completed without transcript uri"))
			}
			uri = *job.Transcript.TranscriptFileUri
			return nil
		case ttypes.TranscriptionJobStatusFailed:
			reason := "unknown"
			if job.FailureReason != nil {
				reason = *job.FailureReason
			}
			return backoff.Permanent(errors.New("Transcription job failed: " + reason))
		}
		return errors.Wrap(ErrPollTimeout, "still in progress")
	}
	bo := backoff.WithContext(backoff.WithMaxRetries(
		backoff.NewConstantBackOff(a.pollInterval), a.pollAttempts), ctx)
	if err := backoff.Retry(op, bo); err != nil {
		return "", err
	}
	return uri, nil
}

func (a *AWS) fetchTranscript(ctx context.Context, uri string) (*ParsedTranscription, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, uri, nil)
	if err != nil {
		return nil, errors.Wrap(err, "Can't prepare transcript request")
	}
	resp, err := a.httpclient.Do(req)
	if err != nil {
		return nil, errors.Wrap(err, "Can't fetch transcript")
	}
	defer resp.Body.Close()
	if err := utils.ValidateResponse(resp); err != nil {
		return nil, errors.Wrap(err, "Can't fetch transcript")
	}
	data, err := ioutil.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.Wrap(err, "Can't read transcript")
	}
	return parseAWSTranscript(data)
}

func (a *AWS) cleanup(key string) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	_, err := a.s3Client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(a.bucket), Key: aws.String(key)})
	if err != nil {
		cmdapp.Log.Warn("Can't cleanup staged audio: ", err)
	}
}

type awsTranscript struct {
	Results struct {
		Transcripts []struct {
			Transcript string `json:"transcript"`
		} `json:"transcripts"`
		Items []struct {
			Type         string `json:"type"`
			StartTime    string `json:"start_time"`
			EndTime      string `json:"end_time"`
			Alternatives []struct {
				Content string `json:"content"`
			} `json:"alternatives"`
		} `json:"items"`
	} `json:"results"`
}

func parseAWSTranscript(data []byte) (*ParsedTranscription, error) {
	var tr awsTranscript
	if err := json.Unmarshal(data, &tr); err != nil {
		return nil, errors.Wrap(err, "Can't decode transcript")
	}
	res := &ParsedTranscription{Confidence: ConfidenceMedium, Raw: json.RawMessage(data)}
	if len(tr.Results.Transcripts) > 0 {
		res.Text = strings.TrimSpace(tr.Results.Transcripts[0].Transcript)
	}
	for _, item := range tr.Results.Items {
		if item.Type != "pronunciation" || len(item.Alternatives) == 0 {
			continue
		}
		text := strings.TrimSpace(item.Alternatives[0].Content)
		if text == "" {
			continue
		}
		res.Timeline = append(res.Timeline, timeline.Entry{
			Index: len(res.Timeline),
			Start: parseSeconds(item.StartTime),
			End:   parseSeconds(item.EndTime),
			Text:  text})
	}
	res.Duration = timeline.Duration(res.Timeline)
	return res, nil
}

func parseSeconds(s string) float64 {
	if s == "" {
		return 0
	}
	res, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return res
}

func awsLanguage(opts Options) ttypes.LanguageCode {
	if opts.Language == "" || opts.Language == "en" {
		return ttypes.LanguageCodeEnUs
	}
	return ttypes.LanguageCode(opts.Language)
}
