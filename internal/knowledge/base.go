package knowledge

import (
	"fmt"
	"unicode/utf8"

	"github.com/pubudushehan/Ontology-classifies-emotion/internal/domain"
)

const (
	// maxPrefixDiff bounds the trailing-character difference tolerated by
	// fuzzy trigger matching.
	maxPrefixDiff = 3

	// minTokenLen is the shortest token (in runes) that can match a trigger.
	minTokenLen = 3

	// prefixKeyLen is the rune length of the bucketed prefix-index key.
	prefixKeyLen = 3
)

// TriggerMatch is one trigger candidate for a token, with the trailing-rune
// difference between token and trigger surface.
type TriggerMatch struct {
	Trigger domain.Trigger
	Frame   domain.Frame
	Diff    int
}

// Base is the immutable, indexed knowledge base. Build it once with New and
// share it across all classification calls.
type Base struct {
	frames map[string]domain.Frame

	// triggers bucketed by their first prefixKeyLen runes; surfaces shorter
	// than the key length live in shortTriggers and are scanned directly.
	triggerIndex  map[string][]domain.Trigger
	shortTriggers []domain.Trigger
	triggerCount  int

	negations    map[string]struct{}
	intensifiers map[string]float64
	diminishers  map[string]float64
	connectives  map[string]domain.Connective
	roleMarkers  map[string]domain.RoleMarker
}

// New validates the raw tables and builds the indexed base. Any structural
// violation (trigger to an undefined frame, emotion outside the closed set,
// weight out of range) is returned as an error; the caller must treat it as
// fatal rather than serve from a partial table.
func New(tables domain.KnowledgeTables) (*Base, error) {
	b := &Base{
		frames:       make(map[string]domain.Frame, len(tables.Frames)),
		triggerIndex: make(map[string][]domain.Trigger),
		negations:    make(map[string]struct{}, len(tables.Negations)),
		intensifiers: make(map[string]float64, len(tables.Intensifiers)),
		diminishers:  make(map[string]float64, len(tables.Diminishers)),
		connectives:  make(map[string]domain.Connective, len(tables.Connectives)),
		roleMarkers:  make(map[string]domain.RoleMarker, len(tables.RoleMarkers)),
	}

	for _, f := range tables.Frames {
		frame, err := normalizeFrame(f)
		if err != nil {
			return nil, err
		}
		if _, dup := b.frames[frame.Name]; dup {
			return nil, fmt.Errorf("duplicate frame %q", frame.Name)
		}
		b.frames[frame.Name] = frame
	}

	seen := make(map[string]string, len(tables.Triggers))
	for _, t := range tables.Triggers {
		if t.Surface == "" {
			return nil, fmt.Errorf("trigger with empty surface for frame %q", t.Frame)
		}
		if _, ok := b.frames[t.Frame]; !ok {
			return nil, fmt.Errorf("%w: trigger %q -> frame %q", domain.ErrUnknownFrame, t.Surface, t.Frame)
		}
		if prev, dup := seen[t.Surface]; dup {
			return nil, fmt.Errorf("trigger %q bound to both %q and %q", t.Surface, prev, t.Frame)
		}
		seen[t.Surface] = t.Frame
		b.addTrigger(t)
	}

	for _, w := range tables.Negations {
		if w == "" {
			return nil, fmt.Errorf("empty negation marker")
		}
		b.negations[w] = struct{}{}
	}
	for _, in := range tables.Intensifiers {
		if in.Surface == "" || in.Multiplier <= 0 {
			return nil, fmt.Errorf("invalid intensifier %q (multiplier %v)", in.Surface, in.Multiplier)
		}
		b.intensifiers[in.Surface] = in.Multiplier
	}
	for _, d := range tables.Diminishers {
		if d.Surface == "" || d.Multiplier <= 0 {
			return nil, fmt.Errorf("invalid diminisher %q (multiplier %v)", d.Surface, d.Multiplier)
		}
		b.diminishers[d.Surface] = d.Multiplier
	}
	for _, c := range tables.Connectives {
		if c.Surface == "" || !c.Type.Valid() {
			return nil, fmt.Errorf("invalid connective %q (type %q)", c.Surface, c.Type)
		}
		if c.PreWeight <= 0 || c.PostWeight <= 0 {
			return nil, fmt.Errorf("connective %q has non-positive clause weights", c.Surface)
		}
		b.connectives[c.Surface] = c
	}
	for _, m := range tables.RoleMarkers {
		if m.Surface == "" || !m.Role.Valid() {
			return nil, fmt.Errorf("invalid role marker %q (role %q)", m.Surface, m.Role)
		}
		if m.Person < domain.PersonFirst || m.Person > domain.PersonThird {
			return nil, fmt.Errorf("role marker %q has invalid person %d", m.Surface, m.Person)
		}
		if m.Register != domain.RegisterNeutral && m.Register != domain.RegisterHostile {
			return nil, fmt.Errorf("role marker %q has invalid register %q", m.Surface, m.Register)
		}
		b.roleMarkers[m.Surface] = m
	}

	return b, nil
}

func normalizeFrame(f domain.Frame) (domain.Frame, error) {
	if f.Name == "" {
		return f, fmt.Errorf("frame with empty name")
	}
	if !f.TypicalEmotion.Valid() {
		return f, fmt.Errorf("frame %q: %w (typical %q)", f.Name, domain.ErrUnknownEmotion, f.TypicalEmotion)
	}
	// Role-specific outcomes fall back to the typical emotion when unset.
	if f.AgentEmotion == "" {
		f.AgentEmotion = f.TypicalEmotion
	}
	if f.PatientEmotion == "" {
		f.PatientEmotion = f.TypicalEmotion
	}
	if f.NegatedEmotion == "" {
		f.NegatedEmotion = f.TypicalEmotion
	}
	for _, e := range []domain.Emotion{f.AgentEmotion, f.PatientEmotion, f.NegatedEmotion} {
		if !e.Valid() {
			return f, fmt.Errorf("frame %q: %w (%q)", f.Name, domain.ErrUnknownEmotion, e)
		}
	}
	if !f.Polarity.Valid() {
		return f, fmt.Errorf("frame %q has invalid polarity %q", f.Name, f.Polarity)
	}
	if f.Weight < 0 || f.Weight > 1 {
		return f, fmt.Errorf("frame %q has weight %v outside [0,1]", f.Name, f.Weight)
	}
	return f, nil
}

func (b *Base) addTrigger(t domain.Trigger) {
	b.triggerCount++
	runes := []rune(t.Surface)
	if len(runes) < prefixKeyLen {
		b.shortTriggers = append(b.shortTriggers, t)
		return
	}
	key := string(runes[:prefixKeyLen])
	b.triggerIndex[key] = append(b.triggerIndex[key], t)
}

// Frame returns the frame with the given name.
func (b *Base) Frame(name string) (domain.Frame, bool) {
	f, ok := b.frames[name]
	return f, ok
}

// MatchTriggers returns all triggers whose surface matches token under the
// fuzzy prefix rule: either string is a prefix of the other with a trailing
// difference of at most maxPrefixDiff runes. Tokens shorter than minTokenLen
// runes never match.
func (b *Base) MatchTriggers(token string) []TriggerMatch {
	runes := []rune(token)
	if len(runes) < minTokenLen {
		return nil
	}

	var matches []TriggerMatch
	scan := func(candidates []domain.Trigger) {
		for _, t := range candidates {
			diff, ok := fuzzyDiff(token, t.Surface)
			if !ok {
				continue
			}
			frame := b.frames[t.Frame]
			matches = append(matches, TriggerMatch{Trigger: t, Frame: frame, Diff: diff})
		}
	}

	scan(b.triggerIndex[string(runes[:prefixKeyLen])])
	scan(b.shortTriggers)
	return matches
}

// fuzzyDiff returns the trailing-rune difference between token and surface
// when they stand in a bounded prefix relation, or ok=false otherwise.
func fuzzyDiff(token, surface string) (int, bool) {
	if token == surface {
		return 0, true
	}
	if !isPrefix(token, surface) && !isPrefix(surface, token) {
		return 0, false
	}
	diff := utf8.RuneCountInString(token) - utf8.RuneCountInString(surface)
	if diff < 0 {
		diff = -diff
	}
	if diff > maxPrefixDiff {
		return 0, false
	}
	return diff, true
}

// isPrefix reports whether p is a prefix of s. Rune-aligned prefixes are
// byte prefixes in UTF-8, so a byte comparison suffices.
func isPrefix(p, s string) bool {
	return len(p) <= len(s) && s[:len(p)] == p
}

// IsNegation reports whether the token is a negation marker.
func (b *Base) IsNegation(token string) bool {
	_, ok := b.negations[token]
	return ok
}

// IntensifierMultiplier returns the token's intensifier multiplier, if any.
func (b *Base) IntensifierMultiplier(token string) (float64, bool) {
	m, ok := b.intensifiers[token]
	return m, ok
}

// DiminisherMultiplier returns the token's diminisher multiplier, if any.
func (b *Base) DiminisherMultiplier(token string) (float64, bool) {
	m, ok := b.diminishers[token]
	return m, ok
}

// Connective returns the discourse connective entry for the token, if any.
func (b *Base) Connective(token string) (domain.Connective, bool) {
	c, ok := b.connectives[token]
	return c, ok
}

// RoleMarker returns the role marker entry for the token, if any.
func (b *Base) RoleMarker(token string) (domain.RoleMarker, bool) {
	m, ok := b.roleMarkers[token]
	return m, ok
}

// IsModifier reports whether the token belongs to any modifier table.
// Modifier tokens are excluded from trigger matching so a negation particle
// or connective never doubles as a frame trigger.
func (b *Base) IsModifier(token string) bool {
	if _, ok := b.negations[token]; ok {
		return true
	}
	if _, ok := b.intensifiers[token]; ok {
		return true
	}
	if _, ok := b.diminishers[token]; ok {
		return true
	}
	_, ok := b.connectives[token]
	return ok
}

// FrameCount returns the number of loaded frames.
func (b *Base) FrameCount() int { return len(b.frames) }

// TriggerCount returns the number of loaded lexical triggers.
func (b *Base) TriggerCount() int { return b.triggerCount }

// RoleMarkerCount returns the number of loaded role markers.
func (b *Base) RoleMarkerCount() int { return len(b.roleMarkers) }
