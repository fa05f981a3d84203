package classify

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/pubudushehan/Ontology-classifies-emotion/internal/domain"
	"github.com/pubudushehan/Ontology-classifies-emotion/internal/knowledge"
	"github.com/pubudushehan/Ontology-classifies-emotion/internal/metrics"
	"github.com/pubudushehan/Ontology-classifies-emotion/internal/tokenizer"
)

// Fallback is the statistical classifier consulted when the rules are silent
// or contradictory. It must honor the context's deadline and cancellation.
type Fallback interface {
	Classify(ctx context.Context, text string) (domain.Emotion, float64, error)
}

// Classifier is the hybrid classification facade. It is stateless per call
// and safe for concurrent use: the knowledge base is read-only and every
// derived structure is owned by the call that created it.
type Classifier struct {
	kb       *knowledge.Base
	fallback Fallback
}

// New builds a classifier over an immutable knowledge base and a fallback.
func New(kb *knowledge.Base, fallback Fallback) *Classifier {
	return &Classifier{kb: kb, fallback: fallback}
}

// Classify assigns an emotion label to text. Empty or whitespace-only input
// degrades to Neutral with the default method, never an error. A failed
// fallback call is surfaced as an error.
func (c *Classifier) Classify(ctx context.Context, text string) (domain.Classification, error) {
	start := time.Now()

	if strings.TrimSpace(text) == "" {
		result := domain.Classification{
			Text:       text,
			Label:      domain.EmotionNeutral,
			Confidence: 1,
			Method:     domain.MethodDefault,
		}
		c.observe(result, start)
		return result, nil
	}

	tokens := tokenizer.Tokenize(text)
	lc := analyze(c.kb, tokens)
	matches := matchFrames(c.kb, tokens)
	contribs, scores, explanation := infer(matches, lc)

	metrics.FrameMatchesPerRequest.Observe(float64(len(matches)))

	v := arbitrate(scores)
	switch v.outcome {
	case outcomeSingleEmotion:
		result := domain.Classification{
			Text:        text,
			Label:       v.label,
			Confidence:  v.confidence,
			Method:      domain.MethodOntology,
			Evidence:    evidence(contribs),
			Explanation: explanation,
		}
		c.observe(result, start)
		return result, nil

	case outcomeDominantEmotion:
		result := domain.Classification{
			Text:        text,
			Label:       v.label,
			Confidence:  v.confidence,
			Method:      domain.MethodOntologyDominant,
			Evidence:    evidence(contribs),
			Explanation: explanation,
		}
		c.observe(result, start)
		return result, nil
	}

	// No evidence or conflicting evidence: consult the embedding fallback.
	if v.outcome == outcomeNoEvidence {
		explanation = append(explanation, "no frames matched -> embedding fallback")
	} else {
		explanation = append(explanation, "frame conflict -> embedding fallback")
	}

	label, score, err := c.fallback.Classify(ctx, text)
	if err != nil {
		return domain.Classification{}, fmt.Errorf("classify %q: %w", text, err)
	}

	result := domain.Classification{
		Text:        text,
		Label:       label,
		Confidence:  clamp01(score),
		Method:      domain.MethodML,
		Evidence:    evidence(contribs),
		Explanation: explanation,
	}
	c.observe(result, start)
	return result, nil
}

func (c *Classifier) observe(result domain.Classification, start time.Time) {
	metrics.ClassificationsTotal.WithLabelValues(string(result.Method), string(result.Label)).Inc()
	metrics.ClassificationDuration.Observe(time.Since(start).Seconds())
}

func evidence(contribs []contribution) []domain.Evidence {
	if len(contribs) == 0 {
		return nil
	}
	evs := make([]domain.Evidence, len(contribs))
	for i, c := range contribs {
		evs[i] = domain.Evidence{
			TokenIndex: c.match.tokenIndex,
			Token:      c.match.token,
			Trigger:    c.match.trigger,
			Frame:      c.match.frame.Name,
			Emotion:    c.emotion,
			Weight:     c.weight,
			Negated:    c.negated,
		}
	}
	return evs
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
