package knowledge

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pubudushehan/Ontology-classifies-emotion/internal/domain"
)

func validTables() domain.KnowledgeTables {
	return domain.KnowledgeTables{
		Frames: []domain.Frame{
			{
				Name:           "PositiveEmotion",
				TypicalEmotion: domain.EmotionHappy,
				NegatedEmotion: domain.EmotionSad,
				Polarity:       domain.PolarityPositive,
				Weight:         1.0,
			},
			{
				Name:           "SadEmotion",
				TypicalEmotion: domain.EmotionSad,
				Polarity:       domain.PolarityNegative,
				Weight:         1.0,
			},
		},
		Triggers: []domain.Trigger{
			{Surface: "සතුටු", Frame: "PositiveEmotion"},
			{Surface: "සතුටුයි", Frame: "PositiveEmotion"},
			{Surface: "දුක", Frame: "SadEmotion"},
		},
		Negations:    []string{"නෑ", "නැහැ"},
		Intensifiers: []domain.Intensifier{{Surface: "හරිම", Multiplier: 1.5}},
		Diminishers:  []domain.Diminisher{{Surface: "ටිකක්", Multiplier: 0.6}},
		Connectives: []domain.Connective{
			{Surface: "වුණත්", Type: domain.ConnectiveContrastive, PreWeight: 0.3, PostWeight: 1.5},
		},
		RoleMarkers: []domain.RoleMarker{
			{Surface: "මම", Role: domain.RoleAgent, Person: domain.PersonFirst, Register: domain.RegisterNeutral},
			{Surface: "තෝ", Role: domain.RoleAgent, Person: domain.PersonSecond, Register: domain.RegisterHostile},
		},
	}
}

func TestNew_ValidTables(t *testing.T) {
	b, err := New(validTables())
	require.NoError(t, err)
	assert.Equal(t, 2, b.FrameCount())
	assert.Equal(t, 3, b.TriggerCount())
	assert.Equal(t, 2, b.RoleMarkerCount())
}

func TestNew_RoleEmotionsDefaultToTypical(t *testing.T) {
	b, err := New(validTables())
	require.NoError(t, err)

	f, ok := b.Frame("SadEmotion")
	require.True(t, ok)
	assert.Equal(t, domain.EmotionSad, f.AgentEmotion)
	assert.Equal(t, domain.EmotionSad, f.PatientEmotion)
	assert.Equal(t, domain.EmotionSad, f.NegatedEmotion)
}

func TestNew_TriggerToUndefinedFrame(t *testing.T) {
	tables := validTables()
	tables.Triggers = append(tables.Triggers, domain.Trigger{Surface: "කඳුළු", Frame: "NoSuchFrame"})

	_, err := New(tables)
	require.ErrorIs(t, err, domain.ErrUnknownFrame)
}

func TestNew_EmotionOutsideClosedSet(t *testing.T) {
	tables := validTables()
	tables.Frames[0].TypicalEmotion = "Ecstatic"

	_, err := New(tables)
	require.ErrorIs(t, err, domain.ErrUnknownEmotion)
}

func TestNew_WeightOutOfRange(t *testing.T) {
	tables := validTables()
	tables.Frames[0].Weight = 1.3

	_, err := New(tables)
	require.ErrorContains(t, err, "weight")
}

func TestNew_DuplicateTriggerSurface(t *testing.T) {
	tables := validTables()
	tables.Triggers = append(tables.Triggers, domain.Trigger{Surface: "දුක", Frame: "PositiveEmotion"})

	_, err := New(tables)
	require.ErrorContains(t, err, "bound to both")
}

func TestMatchTriggers_Exact(t *testing.T) {
	b, err := New(validTables())
	require.NoError(t, err)

	matches := b.MatchTriggers("දුක")
	require.Len(t, matches, 1)
	assert.Equal(t, "SadEmotion", matches[0].Frame.Name)
	assert.Equal(t, 0, matches[0].Diff)
}

func TestMatchTriggers_InflectedToken(t *testing.T) {
	b, err := New(validTables())
	require.NoError(t, err)

	// දුකෙන් carries the trigger stem දුක plus three trailing runes.
	matches := b.MatchTriggers("දුකෙන්")
	require.NotEmpty(t, matches)
	assert.Equal(t, "SadEmotion", matches[0].Frame.Name)
	assert.Equal(t, 3, matches[0].Diff)
}

func TestMatchTriggers_TokenIsPrefixOfTrigger(t *testing.T) {
	b, err := New(validTables())
	require.NoError(t, err)

	// සතුට is a prefix of trigger සතුටු (diff 1).
	matches := b.MatchTriggers("සතුට")
	require.NotEmpty(t, matches)
	for _, m := range matches {
		assert.Equal(t, "PositiveEmotion", m.Frame.Name)
	}
}

func TestMatchTriggers_DiffBeyondBoundRejected(t *testing.T) {
	tables := validTables()
	tables.Triggers = append(tables.Triggers, domain.Trigger{Surface: "දුකසහගතභාවය", Frame: "SadEmotion"})
	b, err := New(tables)
	require.NoError(t, err)

	// දුකසහගතභාවය shares the prefix දුක but differs by far more than 3 runes.
	for _, m := range b.MatchTriggers("දුක") {
		assert.NotEqual(t, "දුකසහගතභාවය", m.Trigger.Surface)
	}
}

func TestMatchTriggers_ShortTokenNeverMatches(t *testing.T) {
	b, err := New(validTables())
	require.NoError(t, err)
	assert.Empty(t, b.MatchTriggers("දු"))
}

func TestModifierLookups(t *testing.T) {
	b, err := New(validTables())
	require.NoError(t, err)

	assert.True(t, b.IsNegation("නෑ"))
	assert.False(t, b.IsNegation("සතුටු"))

	m, ok := b.IntensifierMultiplier("හරිම")
	require.True(t, ok)
	assert.Equal(t, 1.5, m)

	d, ok := b.DiminisherMultiplier("ටිකක්")
	require.True(t, ok)
	assert.Equal(t, 0.6, d)

	c, ok := b.Connective("වුණත්")
	require.True(t, ok)
	assert.Equal(t, domain.ConnectiveContrastive, c.Type)
	assert.Equal(t, 0.3, c.PreWeight)
	assert.Equal(t, 1.5, c.PostWeight)

	rm, ok := b.RoleMarker("තෝ")
	require.True(t, ok)
	assert.True(t, rm.Hostile())
}

func TestIsModifier(t *testing.T) {
	b, err := New(validTables())
	require.NoError(t, err)

	assert.True(t, b.IsModifier("නෑ"))
	assert.True(t, b.IsModifier("හරිම"))
	assert.True(t, b.IsModifier("ටිකක්"))
	assert.True(t, b.IsModifier("වුණත්"))
	assert.False(t, b.IsModifier("දුක"))
	assert.False(t, b.IsModifier("මම")) // role markers are not modifiers
}
