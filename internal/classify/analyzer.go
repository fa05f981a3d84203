package classify

import (
	"strings"
	"unicode/utf8"

	"github.com/pubudushehan/Ontology-classifies-emotion/internal/domain"
	"github.com/pubudushehan/Ontology-classifies-emotion/internal/knowledge"
)

// Colloquial Sinhala folds negation into the verb ending (e.g. කරන්නෑ =
// "doesn't do"). Only checked on tokens longer than 5 runes to avoid false
// positives on short words that happen to end the same way.
var negationSuffixes = []string{"න්නෑ", "න්නැහැ", "න්බෑ", "න්බැහැ"}

const negationSuffixMinLen = 5

// intensityMark is an intensifier or diminisher occurrence.
type intensityMark struct {
	index      int
	multiplier float64
}

// connectiveMark is a discourse connective occurrence.
type connectiveMark struct {
	index int
	conn  domain.Connective
}

// linguisticContext is the Tier 1 output: every modifier and role signal
// found in the token sequence, recorded by position.
type linguisticContext struct {
	negations    []int
	intensifiers []intensityMark
	diminishers  []intensityMark
	connectives  []connectiveMark

	speakerAgent       bool
	speakerPatient     bool
	speakerExperiencer bool
	hostileCount       int
}

// analyze scans the tokens once, doing O(1) table lookups per token.
func analyze(kb *knowledge.Base, tokens []domain.Token) linguisticContext {
	var lc linguisticContext

	for _, tok := range tokens {
		isNegation := kb.IsNegation(tok.Text)
		if isNegation {
			lc.negations = append(lc.negations, tok.Index)
		}
		if m, ok := kb.IntensifierMultiplier(tok.Text); ok {
			lc.intensifiers = append(lc.intensifiers, intensityMark{index: tok.Index, multiplier: m})
		}
		if m, ok := kb.DiminisherMultiplier(tok.Text); ok {
			lc.diminishers = append(lc.diminishers, intensityMark{index: tok.Index, multiplier: m})
		}
		if c, ok := kb.Connective(tok.Text); ok {
			lc.connectives = append(lc.connectives, connectiveMark{index: tok.Index, conn: c})
		}

		if marker, ok := kb.RoleMarker(tok.Text); ok {
			if marker.Person == domain.PersonFirst {
				switch marker.Role {
				case domain.RoleAgent:
					lc.speakerAgent = true
				case domain.RolePatient:
					lc.speakerPatient = true
				case domain.RoleExperiencer:
					lc.speakerExperiencer = true
				}
			}
			if marker.Hostile() {
				lc.hostileCount++
			}
		}

		if !isNegation && hasVerbFinalNegation(tok.Text) {
			lc.negations = append(lc.negations, tok.Index)
		}
	}

	return lc
}

func hasVerbFinalNegation(token string) bool {
	if utf8.RuneCountInString(token) <= negationSuffixMinLen {
		return false
	}
	for _, suffix := range negationSuffixes {
		if strings.HasSuffix(token, suffix) {
			return true
		}
	}
	return false
}
