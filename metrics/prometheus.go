package metrics

import (
	"strconv"

	"github.com/hupe1980/searchbench/analysis"
	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "searchbench"

// PrometheusCollector records benchmark results as gauges.
type PrometheusCollector struct {
	registry *prometheus.Registry

	checks       *prometheus.CounterVec
	searchTime   *prometheus.GaugeVec
	sortCost     *prometheus.GaugeVec
	speedup      *prometheus.GaugeVec
	datasetSize  *prometheus.GaugeVec
	breakEven    *prometheus.GaugeVec
	savedPerCall *prometheus.GaugeVec
}

// NewPrometheusCollector creates a collector with its own registry.
func NewPrometheusCollector() *PrometheusCollector {
	c := &PrometheusCollector{
		registry: prometheus.NewRegistry(),
		checks: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "correctness_checks_total",
			Help:      "Correctness scenarios run, by outcome",
		}, []string{"check", "passed"}),
		searchTime: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "search_seconds",
			Help:      "Average time per search",
		}, []string{"dataset", "algorithm"}),
		sortCost: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "sort_seconds",
			Help:      "One-time cost of sorting the dataset",
		}, []string{"dataset"}),
		speedup: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "binary_speedup_ratio",
			Help:      "Linear search time divided by iterative binary search time",
		}, []string{"dataset"}),
		datasetSize: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "dataset_size",
			Help:      "Number of values in the dataset",
		}, []string{"dataset"}),
		breakEven: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "break_even_searches",
			Help:      "Searches after which sort plus binary search beats linear search",
		}, []string{"dataset"}),
		savedPerCall: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "saved_per_search_seconds",
			Help:      "Linear minus binary search time in the break-even phase",
		}, []string{"dataset"}),
	}

	c.registry.MustRegister(
		c.checks,
		c.searchTime,
		c.sortCost,
		c.speedup,
		c.datasetSize,
		c.breakEven,
		c.savedPerCall,
	)
	return c
}

// Registry returns the registry holding the collector's metrics.
func (c *PrometheusCollector) Registry() *prometheus.Registry {
	return c.registry
}

// RecordCheck implements analysis.MetricsCollector.
func (c *PrometheusCollector) RecordCheck(result analysis.CheckResult) {
	c.checks.WithLabelValues(result.Name, strconv.FormatBool(result.Passed())).Inc()
}

// RecordReport implements analysis.MetricsCollector.
func (c *PrometheusCollector) RecordReport(r analysis.Report) {
	c.searchTime.WithLabelValues(r.Dataset, "linear").Set(r.Linear.Seconds())
	c.searchTime.WithLabelValues(r.Dataset, "binary-iterative").Set(r.BinaryIterative.Seconds())
	c.searchTime.WithLabelValues(r.Dataset, "binary-recursive").Set(r.BinaryRecursive.Seconds())
	c.datasetSize.WithLabelValues(r.Dataset).Set(float64(r.Size))
	if r.Sorted {
		c.sortCost.WithLabelValues(r.Dataset).Set(r.SortCost.Seconds())
	}
	if r.HasSpeedup {
		c.speedup.WithLabelValues(r.Dataset).Set(r.Speedup)
	}
}

// RecordBreakEven implements analysis.MetricsCollector. The break-even gauge
// is only set when a break-even point exists.
func (c *PrometheusCollector) RecordBreakEven(r analysis.BreakEvenReport) {
	c.savedPerCall.WithLabelValues(r.Dataset).Set(r.SavedPerSearch.Seconds())
	if r.HasBreakEven {
		c.breakEven.WithLabelValues(r.Dataset).Set(float64(r.Searches))
	}
}

// WriteTextfile writes all metrics to path in the Prometheus text format.
// The file is replaced atomically.
func (c *PrometheusCollector) WriteTextfile(path string) error {
	return prometheus.WriteToTextfile(path, c.registry)
}

var _ analysis.MetricsCollector = (*PrometheusCollector)(nil)
