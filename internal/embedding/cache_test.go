package embedding

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCachingEncoder_HitWithinTTL(t *testing.T) {
	clock := clockwork.NewFakeClock()
	inner := &fakeEncoder{vec: []float64{1, 2}}
	c := NewCachingEncoder(inner, 10*time.Second, clock)

	first, err := c.Encode(context.Background(), "text")
	require.NoError(t, err)
	second, err := c.Encode(context.Background(), "text")
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, 1, inner.calls)
}

func TestCachingEncoder_ExpiresAfterTTL(t *testing.T) {
	clock := clockwork.NewFakeClock()
	inner := &fakeEncoder{vec: []float64{1, 2}}
	c := NewCachingEncoder(inner, 10*time.Second, clock)

	_, err := c.Encode(context.Background(), "text")
	require.NoError(t, err)

	clock.Advance(11 * time.Second)

	_, err = c.Encode(context.Background(), "text")
	require.NoError(t, err)
	assert.Equal(t, 2, inner.calls)
}

func TestCachingEncoder_DistinctTextsDistinctEntries(t *testing.T) {
	clock := clockwork.NewFakeClock()
	inner := &fakeEncoder{vec: []float64{1}}
	c := NewCachingEncoder(inner, time.Minute, clock)

	_, _ = c.Encode(context.Background(), "a")
	_, _ = c.Encode(context.Background(), "b")
	assert.Equal(t, 2, inner.calls)
	assert.Equal(t, 2, c.Size())
}

func TestCachingEncoder_ErrorsAreNotCached(t *testing.T) {
	clock := clockwork.NewFakeClock()
	inner := &fakeEncoder{err: errors.New("down")}
	c := NewCachingEncoder(inner, time.Minute, clock)

	_, err := c.Encode(context.Background(), "text")
	require.Error(t, err)
	assert.Zero(t, c.Size())

	inner.err = nil
	inner.vec = []float64{1}
	_, err = c.Encode(context.Background(), "text")
	require.NoError(t, err)
	assert.Equal(t, 2, inner.calls)
}

func TestCachingEncoder_EvictExpired(t *testing.T) {
	clock := clockwork.NewFakeClock()
	inner := &fakeEncoder{vec: []float64{1}}
	c := NewCachingEncoder(inner, 10*time.Second, clock)

	_, _ = c.Encode(context.Background(), "a")
	_, _ = c.Encode(context.Background(), "b")
	clock.Advance(11 * time.Second)
	_, _ = c.Encode(context.Background(), "c")

	assert.Equal(t, 2, c.EvictExpired())
	assert.Equal(t, 1, c.Size())
}
