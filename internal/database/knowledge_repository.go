package database

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/pubudushehan/Ontology-classifies-emotion/internal/domain"
)

// KnowledgeRepo reads the emotion ontology from PostgreSQL. It implements
// domain.KnowledgeSource; validation and indexing stay in knowledge.New so
// file- and database-backed ontologies go through the same checks.
type KnowledgeRepo struct {
	pool *pgxpool.Pool
}

func NewKnowledgeRepo(pool *pgxpool.Pool) *KnowledgeRepo {
	return &KnowledgeRepo{pool: pool}
}

// Load fetches every knowledge table in one pass.
func (r *KnowledgeRepo) Load(ctx context.Context) (domain.KnowledgeTables, error) {
	var tables domain.KnowledgeTables

	if err := r.loadFrames(ctx, &tables); err != nil {
		return tables, err
	}
	if err := r.loadTriggers(ctx, &tables); err != nil {
		return tables, err
	}
	if err := r.loadModifiers(ctx, &tables); err != nil {
		return tables, err
	}
	if err := r.loadRoleMarkers(ctx, &tables); err != nil {
		return tables, err
	}
	return tables, nil
}

func (r *KnowledgeRepo) loadFrames(ctx context.Context, tables *domain.KnowledgeTables) error {
	rows, err := r.pool.Query(ctx, `
		SELECT name, typical_emotion,
		       COALESCE(agent_emotion, ''), COALESCE(patient_emotion, ''), COALESCE(negated_emotion, ''),
		       polarity, weight
		FROM emotion_frames
		ORDER BY name
	`)
	if err != nil {
		return fmt.Errorf("query emotion_frames: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var f domain.Frame
		var typical, agent, patient, negated, polarity string
		if err := rows.Scan(&f.Name, &typical, &agent, &patient, &negated, &polarity, &f.Weight); err != nil {
			return fmt.Errorf("scan emotion_frames: %w", err)
		}
		f.TypicalEmotion = domain.Emotion(typical)
		f.AgentEmotion = domain.Emotion(agent)
		f.PatientEmotion = domain.Emotion(patient)
		f.NegatedEmotion = domain.Emotion(negated)
		f.Polarity = domain.Polarity(polarity)
		tables.Frames = append(tables.Frames, f)
	}
	return rows.Err()
}

func (r *KnowledgeRepo) loadTriggers(ctx context.Context, tables *domain.KnowledgeTables) error {
	rows, err := r.pool.Query(ctx, `SELECT surface, frame_name FROM lexical_triggers ORDER BY surface`)
	if err != nil {
		return fmt.Errorf("query lexical_triggers: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var t domain.Trigger
		if err := rows.Scan(&t.Surface, &t.Frame); err != nil {
			return fmt.Errorf("scan lexical_triggers: %w", err)
		}
		tables.Triggers = append(tables.Triggers, t)
	}
	return rows.Err()
}

func (r *KnowledgeRepo) loadModifiers(ctx context.Context, tables *domain.KnowledgeTables) error {
	rows, err := r.pool.Query(ctx, `
		SELECT surface, kind,
		       COALESCE(multiplier, 0), COALESCE(connective_type, ''),
		       COALESCE(pre_weight, 1), COALESCE(post_weight, 1)
		FROM modifiers
		ORDER BY surface
	`)
	if err != nil {
		return fmt.Errorf("query modifiers: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var surface, kind, connType string
		var multiplier, preWeight, postWeight float64
		if err := rows.Scan(&surface, &kind, &multiplier, &connType, &preWeight, &postWeight); err != nil {
			return fmt.Errorf("scan modifiers: %w", err)
		}

		switch kind {
		case "negation":
			tables.Negations = append(tables.Negations, surface)
		case "intensifier":
			tables.Intensifiers = append(tables.Intensifiers, domain.Intensifier{Surface: surface, Multiplier: multiplier})
		case "diminisher":
			tables.Diminishers = append(tables.Diminishers, domain.Diminisher{Surface: surface, Multiplier: multiplier})
		case "connective":
			tables.Connectives = append(tables.Connectives, domain.Connective{
				Surface:    surface,
				Type:       domain.ConnectiveType(connType),
				PreWeight:  preWeight,
				PostWeight: postWeight,
			})
		default:
			return fmt.Errorf("modifier %q has unknown kind %q", surface, kind)
		}
	}
	return rows.Err()
}

func (r *KnowledgeRepo) loadRoleMarkers(ctx context.Context, tables *domain.KnowledgeTables) error {
	rows, err := r.pool.Query(ctx, `SELECT surface, role, person, register FROM role_markers ORDER BY surface`)
	if err != nil {
		return fmt.Errorf("query role_markers: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var m domain.RoleMarker
		var role, register string
		var person int
		if err := rows.Scan(&m.Surface, &role, &person, &register); err != nil {
			return fmt.Errorf("scan role_markers: %w", err)
		}
		m.Role = domain.Role(role)
		m.Person = domain.Person(person)
		m.Register = domain.Register(register)
		tables.RoleMarkers = append(tables.RoleMarkers, m)
	}
	return rows.Err()
}
