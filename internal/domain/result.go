package domain

// Evidence is one matched trigger and the contribution it made to the final
// score vector, after role resolution, negation, and weighting.
type Evidence struct {
	TokenIndex int     `json:"token_index"`
	Token      string  `json:"token"`
	Trigger    string  `json:"trigger"`
	Frame      string  `json:"frame"`
	Emotion    Emotion `json:"emotion"`
	Weight     float64 `json:"weight"`
	Negated    bool    `json:"negated,omitempty"`
}

// Classification is the labeled, explainable result of one classify call.
type Classification struct {
	Text        string     `json:"text"`
	Label       Emotion    `json:"emotion"`
	Confidence  float64    `json:"confidence"`
	Method      Method     `json:"method"`
	Evidence    []Evidence `json:"evidence,omitempty"`
	Explanation []string   `json:"explanation,omitempty"`
}

// MatchedWords groups the matched trigger tokens by the emotion they
// contributed to, mirroring the wire shape of the classify API.
func (c Classification) MatchedWords() map[Emotion][]string {
	if len(c.Evidence) == 0 {
		return nil
	}
	words := make(map[Emotion][]string)
	for _, ev := range c.Evidence {
		words[ev.Emotion] = append(words[ev.Emotion], ev.Token)
	}
	return words
}
