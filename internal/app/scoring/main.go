package scoring

import (
	"context"
	"time"

	"github.com/eduspeech/scorelit/internal/pkg/cmdapp"
	"github.com/eduspeech/scorelit/internal/pkg/evaluator"
	"github.com/eduspeech/scorelit/internal/pkg/metrics"
	"github.com/eduspeech/scorelit/internal/pkg/mongo"
	"github.com/eduspeech/scorelit/internal/pkg/saver"
	"github.com/eduspeech/scorelit/internal/pkg/transcription"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"

	"github.com/heptiolabs/healthcheck"
)

var rootCmd = &cobra.Command{
	Use:   "scoringService",
	Short: "Spoken literacy response scoring service",
	Long:  `HTTP server to receive student recordings and score the five reading subtests`,
	Run:   run,
}

func init() {
	cmdapp.InitApplication(rootCmd)
	rootCmd.PersistentFlags().Int32P("port", "", 8000, "Default service port")
	cmdapp.Config.BindPFlag("port", rootCmd.PersistentFlags().Lookup("port"))
	cmdapp.Config.SetDefault("port", 8080)
	cmdapp.Config.SetDefault("pipeline.timeout", "60s")
}

//Execute starts the server
func Execute() {
	cmdapp.Execute(rootCmd)
}

func run(cmd *cobra.Command, args []string) {
	cmdapp.Log.Info("Starting scoringService")
	var data ServiceData
	var err error
	data.health = healthcheck.NewHandler()

	fs, err := saver.NewObjectSaver()
	cmdapp.CheckOrPanic(err, "Can't init object storage")

	mongoSessionProvider, err := mongo.NewSessionProvider()
	cmdapp.CheckOrPanic(err, "Can't init mongo")
	defer mongoSessionProvider.Close()
	data.health.AddLivenessCheck("mongo", healthcheck.Async(mongoSessionProvider.Healthy, 10*time.Second))

	resultSaver, err := mongo.NewResultSaver(mongoSessionProvider)
	cmdapp.CheckOrPanic(err, "Can't init result saver")
	nameProvider, err := mongo.NewNameProvider(mongoSessionProvider)
	cmdapp.CheckOrPanic(err, "Can't init name provider")

	openAI, err := transcription.NewOpenAI()
	cmdapp.CheckOrPanic(err, "Can't init openai adapter")
	gemini, err := transcription.NewGemini(context.Background())
	cmdapp.CheckOrPanic(err, "Can't init gemini adapter")
	defer gemini.Close()
	aws, err := transcription.NewAWS(context.Background())
	cmdapp.CheckOrPanic(err, "Can't init aws adapter")
	azure, err := transcription.NewAzure()
	cmdapp.CheckOrPanic(err, "Can't init azure adapter")

	single := transcription.NewAggregator(transcription.ProviderOpenAI,
		map[string]transcription.Adapter{transcription.ProviderOpenAI: openAI})
	multi := transcription.NewAggregator(transcription.ProviderOpenAI,
		map[string]transcription.Adapter{
			transcription.ProviderOpenAI: openAI,
			transcription.ProviderGemini: gemini,
			transcription.ProviderAWS:    aws,
			transcription.ProviderAzure:  azure,
		})

	eval, err := evaluator.NewClient()
	cmdapp.CheckOrPanic(err, "Can't init evaluator")

	data.Pipeline, err = NewPipeline(fs, resultSaver, eval, nameProvider, single, multi,
		cmdapp.Config.GetDuration("pipeline.timeout"))
	cmdapp.CheckOrPanic(err, "Can't init pipeline")

	err = initMetrics(&data)
	cmdapp.CheckOrPanic(err, "Can't init metrics")

	data.Port = cmdapp.Config.GetInt("port")

	err = StartWebServer(&data)
	cmdapp.CheckOrPanic(err, "Can't start web server")
}

func initMetrics(data *ServiceData) error {
	namespace := "scoring_service"
	data.metrics.submitResponseDur = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "submit_request_durations_seconds",
			Help:      "Submit request latency distributions.",
		}, nil)

	err := metrics.Register(data.metrics.submitResponseDur)
	if err != nil {
		return err
	}
	data.metrics.submitRequestSize = prometheus.NewSummaryVec(
		prometheus.SummaryOpts{
			Namespace: namespace,
			Name:      "submit_request_size_bytes",
			Help:      "Submit request size in bytes."}, nil)
	return metrics.Register(data.metrics.submitRequestSize)
}
