// Package instance defines the DataInstance contract anchorx explains,
// and a typed feature-value variant so heterogeneous feature columns
// (numbers, category codes, strings) share one static representation.
//
// Each feature's kind is decided once, when the instance is built:
// Numeric, Categorical, or String. Nothing downstream
// (perturb, bandit, anchor, explain) inspects a feature's Go type directly
// — they all go through Value, so a tabular adapter and a text adapter can
// share every other package unchanged.
//
// Errors: none. Out-of-range feature indices return the ordinary
// comma-ok (Value, bool) pattern rather than an error, since probing
// indices is a routine part of CoveragePick's (feature, value) scans.
package instance
