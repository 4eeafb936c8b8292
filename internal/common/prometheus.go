package common

import "github.com/prometheus/client_golang/prometheus"

const (
	HTTPRequestTotal           = "http_requests_total"
	HTTPRequestDurationSeconds = "http_request_duration_seconds"
	MintSubmittedTotal         = "mint_submitted_total"
	MintConfirmedTotal         = "mint_confirmed_total"
	MintFailedTotal            = "mint_failed_total"
)

var (
	PromCounters = map[string]*prometheus.CounterVec{
		HTTPRequestTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: HTTPRequestTotal,
			Help: "Count of all HTTP requests",
		}, []string{"method", "status_code"}),
		MintSubmittedTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: MintSubmittedTotal,
			Help: "Count of mint transactions accepted by a node",
		}, []string{"chain_id"}),
		MintConfirmedTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: MintConfirmedTotal,
			Help: "Count of mint transactions confirmed on chain",
		}, []string{"chain_id"}),
		MintFailedTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: MintFailedTotal,
			Help: "Count of failed mint attempts",
		}, []string{"chain_id", "reason"}),
	}

	PromHistograms = map[string]*prometheus.HistogramVec{
		HTTPRequestDurationSeconds: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name: HTTPRequestDurationSeconds,
			Help: "Duration of all HTTP requests",
		}, []string{"method", "status_code"}),
	}
)
