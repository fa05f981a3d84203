package embedding

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pubudushehan/Ontology-classifies-emotion/internal/domain"
)

func TestFileCentroidSource_Load(t *testing.T) {
	source := FileCentroidSource{Path: "testdata/centroids.json"}

	centroids, err := source.Load(context.Background())
	require.NoError(t, err)

	require.Len(t, centroids, 3)
	assert.Len(t, centroids[domain.EmotionHappy], 4)
	assert.Len(t, centroids[domain.EmotionSad], 4)
	assert.Len(t, centroids[domain.EmotionAngry], 4)
	assert.InDelta(t, 0.9128, centroids[domain.EmotionHappy][0], 1e-9)
}

func TestFileCentroidSource_MissingFile(t *testing.T) {
	source := FileCentroidSource{Path: "testdata/does-not-exist.json"}

	_, err := source.Load(context.Background())
	assert.Error(t, err)
}
