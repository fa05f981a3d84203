package classify

import (
	"sort"

	"github.com/pubudushehan/Ontology-classifies-emotion/internal/domain"
)

// dominanceRatio is how far the top emotion must outscore the runner-up for
// the rule-based result to stand without fallback.
const dominanceRatio = 2.0

// outcome is the arbiter's reading of the score distribution.
type outcome int

const (
	outcomeNoEvidence outcome = iota
	outcomeSingleEmotion
	outcomeDominantEmotion
	outcomeConflict
)

// verdict carries the arbitration result. label and confidence are only
// meaningful for the single and dominant outcomes; the other two delegate
// to the embedding fallback.
type verdict struct {
	outcome    outcome
	label      domain.Emotion
	confidence float64
}

// arbitrate decides, from the accumulated score vector, whether the
// rule-based evidence can be trusted.
func arbitrate(scores map[domain.Emotion]float64) verdict {
	type entry struct {
		emotion domain.Emotion
		score   float64
	}
	entries := make([]entry, 0, len(scores))
	for e, s := range scores {
		if s > 0 {
			entries = append(entries, entry{emotion: e, score: s})
		}
	}

	if len(entries) == 0 {
		return verdict{outcome: outcomeNoEvidence}
	}

	if len(entries) == 1 {
		// A clean single-emotion match carries at least 0.5 confidence.
		conf := entries[0].score / 2
		if conf < 0.5 {
			conf = 0.5
		}
		if conf > 1 {
			conf = 1
		}
		return verdict{outcome: outcomeSingleEmotion, label: entries[0].emotion, confidence: conf}
	}

	sort.Slice(entries, func(i, j int) bool {
		if entries[i].score != entries[j].score {
			return entries[i].score > entries[j].score
		}
		return labelRank(entries[i].emotion) < labelRank(entries[j].emotion)
	})

	top, second := entries[0], entries[1]
	if top.score > dominanceRatio*second.score {
		conf := top.score / (top.score + second.score)
		if conf > 1 {
			conf = 1
		}
		return verdict{outcome: outcomeDominantEmotion, label: top.emotion, confidence: conf}
	}

	return verdict{outcome: outcomeConflict}
}

// labelRank makes score ties deterministic across map iteration orders.
func labelRank(e domain.Emotion) int {
	for i, known := range domain.Emotions {
		if known == e {
			return i
		}
	}
	return len(domain.Emotions)
}
