package scoring

import (
	"context"
	"encoding/json"
	"io"
	"log"
	"mime/multipart"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/eduspeech/scorelit/internal/app/scoring/api"
	"github.com/eduspeech/scorelit/internal/pkg/audio"
	"github.com/eduspeech/scorelit/internal/pkg/cmdapp"
	"github.com/facebookgo/grace/gracehttp"
	"github.com/gorilla/mux"
	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/heptiolabs/healthcheck"
)

type serviceMetric struct {
	submitResponseDur prometheus.ObserverVec
	submitRequestSize prometheus.ObserverVec
}

// ServiceData keeps data required for service work
type ServiceData struct {
	Pipeline *Pipeline

	Port    int
	health  healthcheck.Handler
	metrics serviceMetric
}

// SubmitResult - post method response in JSON
type SubmitResult struct {
	Status string `json:"status"`
}

//StartWebServer starts the HTTP service and listens for the requests
func StartWebServer(data *ServiceData) error {
	cmdapp.Log.Infof("Starting HTTP service at %d", data.Port)
	r := NewRouter(data)

	portStr := strconv.Itoa(data.Port)
	srv := http.Server{
		Addr:              ":" + portStr,
		WriteTimeout:      15 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       60 * time.Second,
		Handler:           r,
	}

	w := cmdapp.Log.Writer()
	defer w.Close()
	l := log.New(w, "", 0)
	gracehttp.SetLogger(l)

	return gracehttp.Serve(&srv)
}

//NewRouter creates the router for HTTP service
func NewRouter(data *ServiceData) *mux.Router {
	router := mux.NewRouter().StrictSlash(true)
	sh := promhttp.InstrumentHandlerDuration(data.metrics.submitResponseDur,
		promhttp.InstrumentHandlerRequestSize(data.metrics.submitRequestSize, submitHandler{data: data}))
	router.Methods("POST").Path("/submit/{subtest}").Handler(sh)
	router.Methods("GET").Path("/metrics").Handler(promhttp.Handler())
	if data.health != nil {
		router.Methods("GET").Path("/live").HandlerFunc(data.health.LiveEndpoint)
		router.Methods("GET").Path("/ready").HandlerFunc(data.health.ReadyEndpoint)
	}
	return router
}

type submitHandler struct {
	data *ServiceData
}

func (h submitHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	cmdapp.Log.Infof("Submission from %s", r.Host)

	subtest, err := takeSubtest(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		cmdapp.Log.Error(err)
		return
	}

	err = r.ParseMultipartForm(32 << 20)
	if err != nil {
		http.Error(w, "Can't parse MultipartForm", http.StatusBadRequest)
		cmdapp.Log.Error(errors.Wrap(err, "Can't parse MultipartForm"))
		return
	}
	defer cleanFiles(r.MultipartForm)

	sub, err := takeSubmission(r, subtest)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		cmdapp.Log.Error(err)
		return
	}

	go h.data.Pipeline.Process(context.Background(), sub)

	result := SubmitResult{Status: "accepted"}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusAccepted)
	encoder := json.NewEncoder(w)
	err = encoder.Encode(&result)
	if err != nil {
		cmdapp.Log.Error(errors.Wrap(err, "Can't prepare result"))
	}
}

func takeSubtest(r *http.Request) (api.Subtest, error) {
	st := api.Subtest(strings.ToUpper(mux.Vars(r)["subtest"]))
	switch st {
	case api.LNF, api.PSF, api.NWF, api.WRF, api.ORF:
		return st, nil
	}
	return "", errors.Errorf("Unknown subtest '%s'", mux.Vars(r)["subtest"])
}

func takeSubmission(r *http.Request, subtest api.Subtest) (*api.Submission, error) {
	res := &api.Submission{Subtest: subtest}
	res.UserID = r.FormValue(api.PrmUserID)
	if res.UserID == "" {
		return nil, errors.New("No " + api.PrmUserID)
	}
	res.Target = r.FormValue(api.PrmQuestion)
	if res.Target == "" {
		return nil, errors.New("No " + api.PrmQuestion)
	}
	res.Skip = r.FormValue(api.PrmSkip) == "true"
	if tt := r.FormValue(api.PrmTimeTaken); tt != "" {
		v, err := strconv.Atoi(tt)
		if err != nil || v < 0 {
			return nil, errors.Errorf("Wrong %s '%s'", api.PrmTimeTaken, tt)
		}
		res.TimeTaken = v
	}
	if subtest == api.ORF && res.TimeTaken == 0 && !res.Skip {
		return nil, errors.New("No " + api.PrmTimeTaken)
	}

	data, err := takeAudio(r)
	if err != nil && !res.Skip {
		return nil, err
	}
	res.Audio = data
	return res, nil
}

func takeAudio(r *http.Request) ([]byte, error) {
	file, _, err := r.FormFile(api.PrmAudio)
	if err != nil {
		return nil, errors.Wrap(err, "No "+api.PrmAudio)
	}
	defer file.Close()
	data, err := io.ReadAll(io.LimitReader(file, audio.MaxSize+1))
	if err != nil {
		return nil, errors.Wrap(err, "Can't read "+api.PrmAudio)
	}
	return data, nil
}

func cleanFiles(f *multipart.Form) {
	if f != nil {
		f.RemoveAll()
	}
}
