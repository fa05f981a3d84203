package redis

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/pubudushehan/Ontology-classifies-emotion/internal/domain"
)

// defaultCentroidKey is the hash holding one field per emotion label, each
// value a JSON array of floats.
const defaultCentroidKey = "emotion:centroids"

// CentroidStore reads the per-emotion centroid table from a Redis hash.
type CentroidStore struct {
	client *Client
	key    string
}

// NewCentroidStore builds a store over an established client. An empty key
// selects the default hash.
func NewCentroidStore(client *Client, key string) *CentroidStore {
	if key == "" {
		key = defaultCentroidKey
	}
	return &CentroidStore{client: client, key: key}
}

// Load fetches and decodes every centroid in the hash. A missing or empty
// hash is an error: serving the fallback with no centroids would silently
// disable it.
func (s *CentroidStore) Load(ctx context.Context) (map[domain.Emotion][]float64, error) {
	fields, err := s.client.rdb.HGetAll(ctx, s.key).Result()
	if err != nil {
		return nil, fmt.Errorf("load centroids from %q: %w", s.key, err)
	}
	if len(fields) == 0 {
		return nil, fmt.Errorf("no centroids found at %q", s.key)
	}

	centroids := make(map[domain.Emotion][]float64, len(fields))
	for label, raw := range fields {
		var vec []float64
		if err := json.Unmarshal([]byte(raw), &vec); err != nil {
			return nil, fmt.Errorf("decode centroid %q: %w", label, err)
		}
		centroids[domain.Emotion(label)] = vec
	}
	return centroids, nil
}
