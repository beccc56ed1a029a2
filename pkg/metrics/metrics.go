package metrics

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/arnavshah/mentor-scheduler-api/pkg/models"
	"github.com/arnavshah/mentor-scheduler-api/pkg/scheduler"
)

// Metrics groups the scheduler collectors on their own registry
type Metrics struct {
	Registry       *prometheus.Registry
	Generations    *prometheus.CounterVec
	UnfilledShifts prometheus.Histogram
	FairnessScore  prometheus.Gauge
	Reassignments  prometheus.Counter
}

// New registers the collectors on a fresh registry
func New() *Metrics {
	m := &Metrics{
		Registry: prometheus.NewRegistry(),
		Generations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "scheduler_generations_total",
			Help: "Schedule generation runs by outcome.",
		}, []string{"outcome"}),
		UnfilledShifts: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "scheduler_unfilled_shifts",
			Help:    "Unfilled shifts per generated month.",
			Buckets: []float64{0, 1, 2, 5, 10, 20, 50},
		}),
		FairnessScore: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "scheduler_last_fairness_score",
			Help: "Fairness score of the most recent generation.",
		}),
		Reassignments: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "scheduler_reassignments_total",
			Help: "Manual single-slot edits.",
		}),
	}
	m.Registry.MustRegister(m.Generations, m.UnfilledShifts, m.FairnessScore, m.Reassignments)
	return m
}

// ObserveGeneration records the outcome of one run
func (m *Metrics) ObserveGeneration(r *models.ScheduleResult, err error) {
	if err != nil {
		m.Generations.WithLabelValues("error").Inc()
		return
	}
	m.Generations.WithLabelValues("ok").Inc()
	m.UnfilledShifts.Observe(float64(scheduler.UnfilledShifts(r)))
	m.FairnessScore.Set(r.FairnessScore)
}

// Handler exposes the registry for scraping
func (m *Metrics) Handler() gin.HandlerFunc {
	return gin.WrapH(promhttp.HandlerFor(m.Registry, promhttp.HandlerOpts{}))
}
