package embedding

import (
	"context"
	"fmt"
	"time"

	"gonum.org/v1/gonum/floats"

	"github.com/pubudushehan/Ontology-classifies-emotion/internal/domain"
	"github.com/pubudushehan/Ontology-classifies-emotion/internal/metrics"
)

// neutralThreshold is the cosine similarity below which the fallback returns
// Neutral instead of the nearest centroid. This is the only path that can
// produce Neutral.
const neutralThreshold = 0.25

// FallbackClassifier labels text by cosine similarity between its embedding
// and precomputed per-emotion centroids. The centroid table excludes Neutral.
type FallbackClassifier struct {
	encoder   domain.Encoder
	centroids map[domain.Emotion][]float64 // unit vectors
	dim       int
}

// NewFallback validates the centroid table and returns a fallback classifier.
// Centroids are normalized once here so each call only needs dot products.
func NewFallback(encoder domain.Encoder, centroids map[domain.Emotion][]float64) (*FallbackClassifier, error) {
	if encoder == nil {
		return nil, fmt.Errorf("fallback: nil encoder")
	}
	if len(centroids) == 0 {
		return nil, fmt.Errorf("fallback: empty centroid table")
	}

	dim := -1
	normalized := make(map[domain.Emotion][]float64, len(centroids))
	for label, vec := range centroids {
		if !label.Valid() {
			return nil, fmt.Errorf("fallback: %w (centroid %q)", domain.ErrUnknownEmotion, label)
		}
		if label == domain.EmotionNeutral {
			return nil, fmt.Errorf("fallback: centroid table must not contain Neutral")
		}
		if dim == -1 {
			dim = len(vec)
		} else if len(vec) != dim {
			return nil, fmt.Errorf("fallback: centroid %q has dimension %d, want %d", label, len(vec), dim)
		}
		norm := floats.Norm(vec, 2)
		if norm == 0 {
			return nil, fmt.Errorf("fallback: centroid %q has zero norm", label)
		}
		unit := make([]float64, len(vec))
		for i, v := range vec {
			unit[i] = v / norm
		}
		normalized[label] = unit
	}

	return &FallbackClassifier{encoder: encoder, centroids: normalized, dim: dim}, nil
}

// Classify encodes text and returns the nearest centroid's label and its
// cosine similarity, or Neutral when nothing is close enough. An encoder
// failure is reported as a retryable ErrFallbackUnavailable, never guessed
// around.
func (f *FallbackClassifier) Classify(ctx context.Context, text string) (domain.Emotion, float64, error) {
	start := time.Now()
	vec, err := f.encoder.Encode(ctx, text)
	if err != nil {
		metrics.FallbackRequestsTotal.WithLabelValues("error").Inc()
		return "", 0, fmt.Errorf("%w: %v", domain.ErrFallbackUnavailable, err)
	}
	metrics.FallbackRequestsTotal.WithLabelValues("ok").Inc()
	metrics.FallbackDuration.Observe(time.Since(start).Seconds())

	if len(vec) != f.dim {
		return "", 0, fmt.Errorf("%w: encoder returned dimension %d, centroids have %d",
			domain.ErrFallbackUnavailable, len(vec), f.dim)
	}

	norm := floats.Norm(vec, 2)
	if norm == 0 {
		return domain.EmotionNeutral, 0, nil
	}

	bestLabel := domain.EmotionNeutral
	bestScore := -1.0
	// Iterate the closed set in canonical order so ties are deterministic.
	for _, label := range domain.Emotions {
		centroid, ok := f.centroids[label]
		if !ok {
			continue
		}
		score := floats.Dot(vec, centroid) / norm
		if score > bestScore {
			bestScore = score
			bestLabel = label
		}
	}

	if bestScore < neutralThreshold {
		return domain.EmotionNeutral, bestScore, nil
	}
	return bestLabel, bestScore, nil
}
