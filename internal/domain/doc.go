// Package domain holds the core types shared across the classifier:
// emotion labels, tokens, frames, lexical triggers, modifier and role-marker
// entries, classification results, and the interfaces the pipeline is wired
// through. It has no dependencies on the rest of the application.
package domain
