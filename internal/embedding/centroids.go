package embedding

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/pubudushehan/Ontology-classifies-emotion/internal/domain"
)

// FileCentroidSource loads the per-emotion centroid table from a JSON
// document of the shape {"Happy": [...], "Sad": [...], "Angry": [...]}.
// The table is produced by the external model training pipeline and is an
// opaque blob as far as the classifier is concerned; structural validation
// happens in NewFallback.
type FileCentroidSource struct {
	Path string
}

// Load reads and decodes the centroid table.
func (s FileCentroidSource) Load(_ context.Context) (map[domain.Emotion][]float64, error) {
	data, err := os.ReadFile(s.Path)
	if err != nil {
		return nil, fmt.Errorf("load centroids: %w", err)
	}

	raw := map[string][]float64{}
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("load centroids: %s: %w", s.Path, err)
	}

	centroids := make(map[domain.Emotion][]float64, len(raw))
	for label, vec := range raw {
		centroids[domain.Emotion(label)] = vec
	}
	return centroids, nil
}
