package classify

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pubudushehan/Ontology-classifies-emotion/internal/tokenizer"
)

func TestMatchFrames_FuzzyPrefix(t *testing.T) {
	kb := newTestBase(t)

	matches := matchFrames(kb, tokenizer.Tokenize("මට දුකයි"))
	require.Len(t, matches, 1)
	assert.Equal(t, "දුකයි", matches[0].token)
	assert.Equal(t, "දුක", matches[0].trigger)
	assert.Equal(t, "SadEmotion", matches[0].frame.Name)
	assert.Equal(t, 2, matches[0].diff)
}

func TestMatchFrames_OneMatchPerTokenAndFrame(t *testing.T) {
	kb := newTestBase(t)

	// Both සතුට and සතුටු trigger PositiveEmotion; the exact surface wins.
	matches := matchFrames(kb, tokenizer.Tokenize("සතුටු"))
	require.Len(t, matches, 1)
	assert.Equal(t, "සතුටු", matches[0].trigger)
	assert.Zero(t, matches[0].diff)
}

func TestMatchFrames_ModifiersNeverTrigger(t *testing.T) {
	kb := newTestBase(t)

	// Each modifier class is excluded even when a surface would otherwise
	// clear the length threshold.
	matches := matchFrames(kb, tokenizer.Tokenize("හරිම ටිකක් වුණත් නැති"))
	assert.Empty(t, matches)
}

func TestMatchFrames_ShortTokensSkipped(t *testing.T) {
	kb := newTestBase(t)

	matches := matchFrames(kb, tokenizer.Tokenize("මම"))
	assert.Empty(t, matches)
}

func TestBetter(t *testing.T) {
	closer := frameMatch{trigger: "ab", diff: 1}
	farther := frameMatch{trigger: "abcd", diff: 2}
	assert.True(t, better(closer, farther))
	assert.False(t, better(farther, closer))

	longer := frameMatch{trigger: "abc", diff: 1}
	assert.True(t, better(longer, closer))
}
