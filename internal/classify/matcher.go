package classify

import (
	"github.com/pubudushehan/Ontology-classifies-emotion/internal/domain"
	"github.com/pubudushehan/Ontology-classifies-emotion/internal/knowledge"
)

// frameMatch is the Tier 2 output: one token matched to one frame through a
// lexical trigger.
type frameMatch struct {
	tokenIndex int
	token      string
	trigger    string
	frame      domain.Frame
	diff       int
}

// matchFrames maps each token to candidate frames via the knowledge base.
// Modifier tokens are skipped so negation particles and connectives never
// double as triggers. A token contributes at most one match per frame: among
// candidates for the same (token, frame) pair, the most specific trigger
// (smallest trailing difference) wins.
func matchFrames(kb *knowledge.Base, tokens []domain.Token) []frameMatch {
	type matchKey struct {
		index int
		frame string
	}

	var matches []frameMatch
	position := make(map[matchKey]int)

	for _, tok := range tokens {
		if kb.IsModifier(tok.Text) {
			continue
		}
		for _, cand := range kb.MatchTriggers(tok.Text) {
			m := frameMatch{
				tokenIndex: tok.Index,
				token:      tok.Text,
				trigger:    cand.Trigger.Surface,
				frame:      cand.Frame,
				diff:       cand.Diff,
			}
			key := matchKey{index: tok.Index, frame: cand.Frame.Name}
			if at, seen := position[key]; seen {
				if better(m, matches[at]) {
					matches[at] = m
				}
				continue
			}
			position[key] = len(matches)
			matches = append(matches, m)
		}
	}

	return matches
}

// better prefers the smaller trailing difference; on a tie the longer
// trigger surface is the more specific one.
func better(a, b frameMatch) bool {
	if a.diff != b.diff {
		return a.diff < b.diff
	}
	return len(a.trigger) > len(b.trigger)
}
