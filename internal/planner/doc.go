// Package planner holds the destination scoring and itinerary shaping
// algorithms: keyword relevance, activity boosts, the candidate ranking
// pipeline, interest-coverage selection, region-aware sequencing and
// day allocation.
//
// Everything here is synchronous and free of shared mutable state. The only
// blocking calls are made through the FallbackScorer and ActivityLister
// interfaces supplied by the caller.
package planner
