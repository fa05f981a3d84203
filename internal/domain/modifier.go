package domain

// Intensifier scales a nearby frame match's weight up.
type Intensifier struct {
	Surface    string
	Multiplier float64
}

// Diminisher scales a nearby frame match's weight down.
type Diminisher struct {
	Surface    string
	Multiplier float64
}

// ConnectiveType classifies a discourse connective.
type ConnectiveType string

const (
	ConnectiveContrastive ConnectiveType = "contrastive"
	ConnectiveCausal      ConnectiveType = "causal"
	ConnectiveAdditive    ConnectiveType = "additive"
)

// Valid reports whether t is a known connective type.
func (t ConnectiveType) Valid() bool {
	switch t {
	case ConnectiveContrastive, ConnectiveCausal, ConnectiveAdditive:
		return true
	}
	return false
}

// Connective is a discourse connective with clause-weighting effects.
// PreWeight applies to matches before the connective, PostWeight to matches
// after it. Causal and additive connectives carry 1.0 on both sides.
type Connective struct {
	Surface    string
	Type       ConnectiveType
	PreWeight  float64
	PostWeight float64
}

// Role is the grammatical role a marker implies for its referent.
type Role string

const (
	RoleAgent       Role = "agent"
	RolePatient     Role = "patient"
	RoleExperiencer Role = "experiencer"
	RolePossessive  Role = "possessive"
)

// Valid reports whether r is a known role.
func (r Role) Valid() bool {
	switch r {
	case RoleAgent, RolePatient, RoleExperiencer, RolePossessive:
		return true
	}
	return false
}

// Person is the grammatical person of a role marker.
type Person int

const (
	PersonFirst Person = iota + 1
	PersonSecond
	PersonThird
)

// Register distinguishes neutral address from hostile address forms.
type Register string

const (
	RegisterNeutral Register = "neutral"
	RegisterHostile Register = "hostile"
)

// RoleMarker is a pronoun or case-marked form bound to a grammatical role,
// person, and register. Hostile-register markers carry an anger signal.
type RoleMarker struct {
	Surface  string
	Role     Role
	Person   Person
	Register Register
}

// Hostile reports whether the marker is a hostile address form.
func (m RoleMarker) Hostile() bool {
	return m.Register == RegisterHostile
}

// KnowledgeTables is the raw, unindexed content of the knowledge base as
// produced by a Source (JSON files or a database). knowledge.New validates
// and indexes it.
type KnowledgeTables struct {
	Frames       []Frame
	Triggers     []Trigger
	Negations    []string
	Intensifiers []Intensifier
	Diminishers  []Diminisher
	Connectives  []Connective
	RoleMarkers  []RoleMarker
}
