package domain

// Polarity is the coarse valence of an emotion frame.
type Polarity string

const (
	PolarityPositive Polarity = "positive"
	PolarityNegative Polarity = "negative"
)

// Valid reports whether p is a known polarity value.
func (p Polarity) Valid() bool {
	return p == PolarityPositive || p == PolarityNegative
}

// Frame describes a class of emotionally loaded situations. Triggers map
// surface words onto frames; the frame then supplies the emotion outcome
// conditioned on the speaker's grammatical role and on negation.
type Frame struct {
	Name           string
	TypicalEmotion Emotion
	AgentEmotion   Emotion
	PatientEmotion Emotion
	NegatedEmotion Emotion
	Polarity       Polarity
	Weight         float64 // base signal strength in [0,1]
}

// Trigger binds a surface word or stem to exactly one frame.
type Trigger struct {
	Surface string
	Frame   string
}
