package knowledge

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/pubudushehan/Ontology-classifies-emotion/internal/domain"
)

// FileSource loads the knowledge tables from the three JSON documents the
// ontology build pipeline produces: frames, modifiers, and role markers.
type FileSource struct {
	FramesPath      string
	ModifiersPath   string
	RoleMarkersPath string
}

type frameDoc struct {
	TypicalEmotion string   `json:"typicalEmotion"`
	AgentEmotion   string   `json:"agentEmotion"`
	PatientEmotion string   `json:"patientEmotion"`
	NegatedEmotion string   `json:"negatedEmotion"`
	Polarity       string   `json:"polarity"`
	Weight         float64  `json:"weight"`
	Words          []string `json:"words"`
}

type modifiersDoc struct {
	Negation struct {
		Words []string `json:"words"`
	} `json:"negation"`
	Intensifiers struct {
		Levels map[string]struct {
			Multiplier float64  `json:"multiplier"`
			Words      []string `json:"words"`
		} `json:"levels"`
	} `json:"intensifiers"`
	Diminishers struct {
		Multiplier float64  `json:"multiplier"`
		Words      []string `json:"words"`
	} `json:"diminishers"`
	DiscourseConnectives struct {
		Types map[string]struct {
			PreClauseWeight  float64  `json:"pre_clause_weight"`
			PostClauseWeight float64  `json:"post_clause_weight"`
			Words            []string `json:"words"`
		} `json:"types"`
	} `json:"discourse_connectives"`
}

type roleMarkerDoc struct {
	Role   string `json:"role"`
	Groups map[string]struct {
		Hostile bool     `json:"hostile"`
		Words   []string `json:"words"`
	} `json:"groups"`
}

// Load reads and decodes the three documents into raw knowledge tables.
// Structural validation happens in New, not here.
func (s FileSource) Load(_ context.Context) (domain.KnowledgeTables, error) {
	var tables domain.KnowledgeTables

	frames := map[string]frameDoc{}
	if err := readJSON(s.FramesPath, &frames); err != nil {
		return tables, fmt.Errorf("load frames: %w", err)
	}
	modifiers := modifiersDoc{}
	if err := readJSON(s.ModifiersPath, &modifiers); err != nil {
		return tables, fmt.Errorf("load modifiers: %w", err)
	}
	roles := map[string]roleMarkerDoc{}
	if err := readJSON(s.RoleMarkersPath, &roles); err != nil {
		return tables, fmt.Errorf("load role markers: %w", err)
	}

	for _, name := range sortedKeys(frames) {
		doc := frames[name]
		tables.Frames = append(tables.Frames, domain.Frame{
			Name:           name,
			TypicalEmotion: domain.Emotion(doc.TypicalEmotion),
			AgentEmotion:   domain.Emotion(doc.AgentEmotion),
			PatientEmotion: domain.Emotion(doc.PatientEmotion),
			NegatedEmotion: domain.Emotion(doc.NegatedEmotion),
			Polarity:       domain.Polarity(doc.Polarity),
			Weight:         doc.Weight,
		})
		for _, w := range doc.Words {
			tables.Triggers = append(tables.Triggers, domain.Trigger{Surface: w, Frame: name})
		}
	}

	tables.Negations = modifiers.Negation.Words
	for _, level := range sortedKeys(modifiers.Intensifiers.Levels) {
		doc := modifiers.Intensifiers.Levels[level]
		for _, w := range doc.Words {
			tables.Intensifiers = append(tables.Intensifiers, domain.Intensifier{Surface: w, Multiplier: doc.Multiplier})
		}
	}
	for _, w := range modifiers.Diminishers.Words {
		tables.Diminishers = append(tables.Diminishers, domain.Diminisher{Surface: w, Multiplier: modifiers.Diminishers.Multiplier})
	}
	for _, typ := range sortedKeys(modifiers.DiscourseConnectives.Types) {
		doc := modifiers.DiscourseConnectives.Types[typ]
		for _, w := range doc.Words {
			tables.Connectives = append(tables.Connectives, domain.Connective{
				Surface:    w,
				Type:       domain.ConnectiveType(typ),
				PreWeight:  doc.PreClauseWeight,
				PostWeight: doc.PostClauseWeight,
			})
		}
	}

	for _, markerType := range sortedKeys(roles) {
		doc := roles[markerType]
		for _, group := range sortedKeys(doc.Groups) {
			groupDoc := doc.Groups[group]
			register := domain.RegisterNeutral
			if groupDoc.Hostile {
				register = domain.RegisterHostile
			}
			for _, w := range groupDoc.Words {
				tables.RoleMarkers = append(tables.RoleMarkers, domain.RoleMarker{
					Surface:  w,
					Role:     domain.Role(doc.Role),
					Person:   groupPerson(group),
					Register: register,
				})
			}
		}
	}

	return tables, nil
}

func readJSON(path string, v any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	return nil
}

func groupPerson(group string) domain.Person {
	switch {
	case strings.Contains(group, "first_person"):
		return domain.PersonFirst
	case strings.Contains(group, "third_person"):
		return domain.PersonThird
	default:
		return domain.PersonSecond
	}
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
