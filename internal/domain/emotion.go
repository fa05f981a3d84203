package domain

import "fmt"

// Emotion is one of the closed set of labels the classifier can produce.
type Emotion string

const (
	EmotionHappy   Emotion = "Happy"
	EmotionSad     Emotion = "Sad"
	EmotionAngry   Emotion = "Angry"
	EmotionNeutral Emotion = "Neutral"
)

// Emotions is the closed label set in canonical order.
var Emotions = []Emotion{EmotionHappy, EmotionSad, EmotionAngry, EmotionNeutral}

// Valid reports whether e is a member of the closed label set.
func (e Emotion) Valid() bool {
	switch e {
	case EmotionHappy, EmotionSad, EmotionAngry, EmotionNeutral:
		return true
	}
	return false
}

// ParseEmotion converts a string from a data table into an Emotion,
// rejecting anything outside the closed set.
func ParseEmotion(s string) (Emotion, error) {
	e := Emotion(s)
	if !e.Valid() {
		return "", fmt.Errorf("%w: %q", ErrUnknownEmotion, s)
	}
	return e, nil
}

// Method identifies which part of the hybrid pipeline produced a result.
type Method string

const (
	// MethodOntology marks a rule-based result from a single matched emotion.
	MethodOntology Method = "ontology"
	// MethodOntologyDominant marks a rule-based result where one emotion
	// clearly outscored the rest.
	MethodOntologyDominant Method = "ontology-dominant"
	// MethodML marks a result from the embedding fallback classifier.
	MethodML Method = "ml"
	// MethodDefault marks the degraded answer for empty or unusable input.
	MethodDefault Method = "default"
)
