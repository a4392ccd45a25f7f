package compliance

import "errors"

// ErrIncompleteSweep marks a fatal aggregation invariant violation: a
// feature is missing a jurisdiction entry. Downstream consumers assume
// completeness, so the run must abort instead of emitting a partial report.
var ErrIncompleteSweep = errors.New("compliance: feature missing jurisdiction entry")

// ErrNoFeatures means extraction produced literally zero features, which the
// extractor's synthetic fallback is supposed to make impossible.
var ErrNoFeatures = errors.New("compliance: no features extracted")
