// Package metrics implements the per-iteration metrics vectors, rolling
// per-path DRC window, and dynamic-control statistics described by
// spec.md section 4.8 (component C9): plateau slope/stddev detection over
// a 10-sample window, a per-path fixed-length DRC history, and the
// 11-level congestion-sensitivity ladder's running per-level averages.
//
// The plateau detector's linear fit and standard deviation are the same
// "centered sums of squares" arithmetic the teacher's
// matrix/impl_statistics.go performs for Covariance/Correlation, adapted
// from matrix columns to a scalar time series.
package metrics
