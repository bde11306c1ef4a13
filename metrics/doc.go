// Package metrics exports benchmark results as Prometheus metrics.
//
// PrometheusCollector implements analysis.MetricsCollector on a private
// registry. A one-shot benchmark has no scrape endpoint, so results are
// written in the node_exporter textfile format with WriteTextfile.
package metrics
