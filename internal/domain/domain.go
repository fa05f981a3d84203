package domain

import "context"

// Classifier assigns an emotion label to a sentence. Implementations must be
// safe for concurrent use and stateless per call.
type Classifier interface {
	Classify(ctx context.Context, text string) (Classification, error)
}

// Encoder turns text into an embedding vector. The model is owned externally;
// the core only depends on this contract.
type Encoder interface {
	Encode(ctx context.Context, text string) ([]float64, error)
}

// KnowledgeSource loads the raw knowledge tables at startup, either from
// JSON files or from an out-of-process store.
type KnowledgeSource interface {
	Load(ctx context.Context) (KnowledgeTables, error)
}

// CentroidSource loads the per-emotion centroid vectors at startup.
type CentroidSource interface {
	Load(ctx context.Context) (map[Emotion][]float64, error)
}
