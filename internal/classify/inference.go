package classify

import (
	"fmt"
	"sort"

	"github.com/pubudushehan/Ontology-classifies-emotion/internal/domain"
)

const (
	// negationWindow is the max token distance for a negation marker to
	// flip a frame's outcome.
	negationWindow = 2

	// intensityWindow is the max token distance for an intensifier or
	// diminisher to scale a match's weight.
	intensityWindow = 3

	// strongFrameThreshold guards against over-flipping: frames below this
	// weight are not reliably negated by nearby particles.
	strongFrameThreshold = 0.7

	// hostileAddressWeight is the anger signal added per hostile marker.
	hostileAddressWeight = 0.7
)

// contribution is one frame match after role resolution, negation, and
// weighting, ready to accumulate into the score vector.
type contribution struct {
	match   frameMatch
	emotion domain.Emotion
	weight  float64
	negated bool
}

// infer combines Tier 2 matches with the Tier 1 context into per-emotion
// scores. The rule order is fixed: role resolution, negation, intensity
// scaling, discourse clause weighting, then the hostile-address bonus.
func infer(matches []frameMatch, lc linguisticContext) ([]contribution, map[domain.Emotion]float64, []string) {
	contribs := make([]contribution, 0, len(matches))
	scores := make(map[domain.Emotion]float64)
	var explanation []string

	for _, m := range matches {
		emotion, role := resolveRole(m.frame, lc)

		negated := false
		if m.frame.Weight >= strongFrameThreshold && isNegated(m.tokenIndex, lc.negations) {
			emotion = m.frame.NegatedEmotion
			negated = true
		}
		if negated {
			explanation = append(explanation, fmt.Sprintf("%q [%s] negated -> %s", m.token, m.frame.Name, emotion))
		} else {
			explanation = append(explanation, fmt.Sprintf("%q [%s] role=%s -> %s", m.token, m.frame.Name, role, emotion))
		}

		weight := m.frame.Weight

		if mult, ok := intensityMultiplier(m.tokenIndex, lc); ok {
			weight *= mult
			explanation = append(explanation, fmt.Sprintf("  intensity x%.2f", mult))
		}

		if disc := discourseWeight(m.tokenIndex, lc.connectives); disc != 1.0 {
			weight *= disc
			explanation = append(explanation, fmt.Sprintf("  discourse x%.2f", disc))
		}

		contribs = append(contribs, contribution{match: m, emotion: emotion, weight: weight, negated: negated})
		scores[emotion] += weight
	}

	if lc.hostileCount > 0 {
		bonus := hostileAddressWeight * float64(lc.hostileCount)
		scores[domain.EmotionAngry] += bonus
		explanation = append(explanation, fmt.Sprintf("hostile address detected (%dx) -> Angry +%.2f", lc.hostileCount, bonus))
	}

	return contribs, scores, explanation
}

// resolveRole picks the frame outcome for the speaker's perspective:
// patient beats agent, and without role evidence the typical emotion holds.
func resolveRole(frame domain.Frame, lc linguisticContext) (domain.Emotion, string) {
	switch {
	case lc.speakerPatient:
		return frame.PatientEmotion, "patient"
	case lc.speakerAgent:
		return frame.AgentEmotion, "agent"
	default:
		return frame.TypicalEmotion, "typical"
	}
}

func isNegated(tokenIndex int, negations []int) bool {
	for _, n := range negations {
		if n == tokenIndex {
			continue
		}
		if abs(tokenIndex-n) <= negationWindow {
			return true
		}
	}
	return false
}

// intensityMultiplier selects at most one intensity adjustment for a match:
// the nearest intensifier or diminisher within the window wins, and on a
// distance tie the one appearing first in the sentence does.
func intensityMultiplier(tokenIndex int, lc linguisticContext) (float64, bool) {
	candidates := make([]intensityMark, 0, len(lc.intensifiers)+len(lc.diminishers))
	candidates = append(candidates, lc.intensifiers...)
	candidates = append(candidates, lc.diminishers...)
	sort.Slice(candidates, func(i, j int) bool { return candidates[i].index < candidates[j].index })

	best := -1
	bestDist := intensityWindow + 1
	for i, c := range candidates {
		if c.index == tokenIndex {
			continue
		}
		d := abs(tokenIndex - c.index)
		if d <= intensityWindow && d < bestDist {
			best = i
			bestDist = d
		}
	}
	if best < 0 {
		return 1.0, false
	}
	return candidates[best].multiplier, true
}

// discourseWeight applies contrastive clause weighting: matches before the
// connective are scaled by its pre-clause weight, matches after it by its
// post-clause weight. Causal and additive connectives carry 1.0 on both
// sides, and multiple contrastive connectives compound.
func discourseWeight(tokenIndex int, connectives []connectiveMark) float64 {
	weight := 1.0
	for _, c := range connectives {
		if c.conn.Type != domain.ConnectiveContrastive {
			continue
		}
		switch {
		case tokenIndex < c.index:
			weight *= c.conn.PreWeight
		case tokenIndex > c.index:
			weight *= c.conn.PostWeight
		}
	}
	return weight
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
