// Package classify implements the hybrid emotion classification pipeline.
//
// A request flows through three tiers: linguistic analysis (negation,
// intensity, discourse connectives, grammatical roles), frame matching
// against the knowledge base, and semantic inference that combines the two
// into per-emotion scores. A final arbitration step decides whether the
// rule-based evidence is trustworthy or the embedding fallback should be
// consulted. All derived state is request-scoped; the pipeline only reads
// from the immutable knowledge base.
package classify
