package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Recorder exposes the quiz server's Prometheus collectors.
type Recorder struct {
	draws    *prometheus.CounterVec
	bankSize prometheus.Gauge
}

// New registers the collectors on reg. Pass prometheus.DefaultRegisterer in production
// so promhttp.Handler serves them.
func New(reg prometheus.Registerer) *Recorder {
	r := &Recorder{
		draws: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "quiz",
			Name:      "draws_total",
			Help:      "Question sets handed out, by mode and outcome.",
		}, []string{"mode", "outcome"}),
		bankSize: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "quiz",
			Name:      "bank_questions",
			Help:      "Number of questions loaded at startup.",
		}),
	}
	reg.MustRegister(r.draws, r.bankSize)
	return r
}

func (r *Recorder) ObserveDraw(mode, outcome string) {
	r.draws.WithLabelValues(mode, outcome).Inc()
}

func (r *Recorder) SetBankSize(n int) {
	r.bankSize.Set(float64(n))
}
