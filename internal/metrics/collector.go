// Package metrics exports report scores as Prometheus gauges written to a
// node-exporter textfile.
package metrics

import (
	"fmt"
	"sync"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/blackwell-systems/hiresignal/internal/report"
	"github.com/blackwell-systems/hiresignal/internal/scoring"
)

const metricsNamespace = "hiresignal"

// Collector holds the gauges for analyzed profiles on a private registry.
type Collector struct {
	registry *prometheus.Registry

	overallScore    *prometheus.GaugeVec
	dimensionScore  *prometheus.GaugeVec
	lensScore       *prometheus.GaugeVec
	careerReadiness *prometheus.GaugeVec
	confidence      *prometheus.GaugeVec
	signals         *prometheus.GaugeVec
	lastUpdate      *prometheus.GaugeVec

	mu sync.Mutex
}

// NewCollector creates a collector and registers its gauges.
func NewCollector() *Collector {
	c := &Collector{
		registry: prometheus.NewRegistry(),
		overallScore: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Namespace: metricsNamespace,
				Name:      "overall_score",
				Help:      "Weighted overall hiring-signal score (0-100)",
			},
			[]string{"login"},
		),
		dimensionScore: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Namespace: metricsNamespace,
				Name:      "dimension_score",
				Help:      "Score of a single hiring-signal dimension (0-100)",
			},
			[]string{"login", "dimension"},
		),
		lensScore: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Namespace: metricsNamespace,
				Name:      "lens_score",
				Help:      "Recruiter lens score (0-100)",
			},
			[]string{"login", "lens"},
		),
		careerReadiness: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Namespace: metricsNamespace,
				Name:      "career_readiness",
				Help:      "Readiness for a career path (0-100)",
			},
			[]string{"login", "path"},
		),
		confidence: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Namespace: metricsNamespace,
				Name:      "signal_confidence",
				Help:      "Confidence in the analysis given the available data (0-100)",
			},
			[]string{"login"},
		),
		signals: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Namespace: metricsNamespace,
				Name:      "signals",
				Help:      "Number of detected signals by kind (strength, red_flag)",
			},
			[]string{"login", "kind"},
		),
		lastUpdate: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Namespace: metricsNamespace,
				Name:      "last_update_timestamp",
				Help:      "Unix timestamp of the report generation time",
			},
			[]string{"login"},
		),
	}

	c.registry.MustRegister(
		c.overallScore,
		c.dimensionScore,
		c.lensScore,
		c.careerReadiness,
		c.confidence,
		c.signals,
		c.lastUpdate,
	)

	return c
}

// Update sets every gauge from a report.
func (c *Collector) Update(r *report.Report) {
	c.mu.Lock()
	defer c.mu.Unlock()

	login := r.Login
	c.overallScore.WithLabelValues(login).Set(float64(r.OverallScore))

	for _, d := range scoring.Dimensions {
		c.dimensionScore.WithLabelValues(login, string(d)).Set(float64(r.Scores.Get(d)))
	}
	for _, l := range r.Lenses {
		c.lensScore.WithLabelValues(login, string(l.Lens)).Set(float64(l.Score))
	}
	for _, a := range r.CareerAlignments {
		c.careerReadiness.WithLabelValues(login, string(a.Path)).Set(float64(a.Readiness))
	}

	c.confidence.WithLabelValues(login).Set(float64(r.Confidence.Score))
	c.signals.WithLabelValues(login, "strength").Set(float64(len(r.Strengths)))
	c.signals.WithLabelValues(login, "red_flag").Set(float64(len(r.RedFlags)))
	c.lastUpdate.WithLabelValues(login).Set(float64(r.GeneratedAt.Unix()))
}

// Registry returns the registry holding the collector's gauges.
func (c *Collector) Registry() *prometheus.Registry {
	return c.registry
}

// WriteTextfile writes the current gauges to path in the text exposition
// format, atomically replacing any previous file.
func (c *Collector) WriteTextfile(path string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if err := prometheus.WriteToTextfile(path, c.registry); err != nil {
		return fmt.Errorf("writing metrics textfile %s: %w", path, err)
	}
	return nil
}
