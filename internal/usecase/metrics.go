package usecase

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Результаты построения выписки для метрики oereb_extract_requests_total
const (
	ResultSuccess  = "success"
	ResultNotFound = "not_found"
	ResultInvalid  = "invalid"
	ResultError    = "error"
)

// Metrics - метрики построения выписок. Нулевой указатель допустим и ничего не пишет.
type Metrics struct {
	extractRequests  *prometheus.CounterVec
	topicDuration    *prometheus.HistogramVec
	topicFailures    *prometheus.CounterVec
	documentsDeduped prometheus.Counter
}

// NewMetrics создает метрики и регистрирует их в reg
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		extractRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "oereb_extract_requests_total",
			Help: "Number of extract requests by result.",
		}, []string{"result"}),
		topicDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "oereb_topic_read_duration_seconds",
			Help:    "Duration of topic source reads.",
			Buckets: []float64{0.01, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		}, []string{"topic"}),
		topicFailures: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "oereb_topic_read_failures_total",
			Help: "Number of topic reads that were replaced by a without-data entry.",
		}, []string{"topic"}),
		documentsDeduped: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "oereb_documents_deduplicated_total",
			Help: "Number of topic documents removed as duplicates of theme documents.",
		}),
	}
	reg.MustRegister(m.extractRequests, m.topicDuration, m.topicFailures, m.documentsDeduped)
	return m
}

func (m *Metrics) extractDone(result string) {
	if m == nil {
		return
	}
	m.extractRequests.WithLabelValues(result).Inc()
}

func (m *Metrics) topicRead(topic string, d time.Duration, failed bool) {
	if m == nil {
		return
	}
	m.topicDuration.WithLabelValues(topic).Observe(d.Seconds())
	if failed {
		m.topicFailures.WithLabelValues(topic).Inc()
	}
}

func (m *Metrics) documentsRemoved(n int) {
	if m == nil || n == 0 {
		return
	}
	m.documentsDeduped.Add(float64(n))
}
