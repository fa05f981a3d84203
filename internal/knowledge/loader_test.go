package knowledge

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pubudushehan/Ontology-classifies-emotion/internal/domain"
)

func testdataSource() FileSource {
	return FileSource{
		FramesPath:      filepath.Join("testdata", "frames.json"),
		ModifiersPath:   filepath.Join("testdata", "modifiers.json"),
		RoleMarkersPath: filepath.Join("testdata", "role_markers.json"),
	}
}

func TestFileSource_Load(t *testing.T) {
	tables, err := testdataSource().Load(context.Background())
	require.NoError(t, err)

	assert.Len(t, tables.Frames, 3)
	assert.Len(t, tables.Triggers, 7)
	assert.Len(t, tables.Negations, 4)
	assert.Len(t, tables.Intensifiers, 4)
	assert.Len(t, tables.Diminishers, 2)
	assert.Len(t, tables.Connectives, 5)
	assert.Len(t, tables.RoleMarkers, 14)

	b, err := New(tables)
	require.NoError(t, err)
	assert.Equal(t, 3, b.FrameCount())
}

func TestFileSource_IntensifierLevels(t *testing.T) {
	tables, err := testdataSource().Load(context.Background())
	require.NoError(t, err)

	byWord := map[string]float64{}
	for _, in := range tables.Intensifiers {
		byWord[in.Surface] = in.Multiplier
	}
	assert.Equal(t, 1.5, byWord["හරිම"])
	assert.Equal(t, 1.25, byWord["ගොඩක්"])
}

func TestFileSource_RoleMarkerGroups(t *testing.T) {
	tables, err := testdataSource().Load(context.Background())
	require.NoError(t, err)

	byWord := map[string]domain.RoleMarker{}
	for _, m := range tables.RoleMarkers {
		byWord[m.Surface] = m
	}

	assert.Equal(t, domain.RoleAgent, byWord["මම"].Role)
	assert.Equal(t, domain.PersonFirst, byWord["මම"].Person)
	assert.Equal(t, domain.RegisterNeutral, byWord["මම"].Register)

	assert.Equal(t, domain.RolePatient, byWord["මාව"].Role)
	assert.Equal(t, domain.RegisterHostile, byWord["තෝ"].Register)
	assert.Equal(t, domain.PersonSecond, byWord["තෝ"].Person)
	assert.Equal(t, domain.RolePossessive, byWord["තොගෙ"].Role)
}

func TestFileSource_MissingFile(t *testing.T) {
	src := testdataSource()
	src.FramesPath = filepath.Join("testdata", "does_not_exist.json")

	_, err := src.Load(context.Background())
	require.Error(t, err)
	assert.ErrorContains(t, err, "load frames")
}

func TestFileSource_CorruptFile(t *testing.T) {
	src := testdataSource()
	src.RoleMarkersPath = filepath.Join("testdata", "corrupt.json")

	_, err := src.Load(context.Background())
	require.Error(t, err)
}
