package touchtrail

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// sequenceIDs returns generator which yields given identifiers in order and then repeats the last one
func sequenceIDs(ids ...uuid.UUID) func() uuid.UUID {
	idx := 0
	return func() uuid.UUID {
		id := ids[idx]
		if idx < len(ids)-1 {
			idx++
		}
		return id
	}
}

func mustThing(t *testing.T, width, height, left, top float64) *Object {
	t.Helper()
	obj, err := NewThing(NewRect(left, top, width, height))
	require.NoError(t, err)
	return obj
}

func TestSceneAdd(t *testing.T) {
	scene := NewSceneDefault()
	obj := mustThing(t, 10, 10, 0, 0)

	id, err := scene.Add(obj)
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, id)
	assert.Equal(t, 1, scene.Len())

	reg, ok := scene.Get(id)
	require.True(t, ok)
	assert.Equal(t, id, reg.GetID())
	assert.Same(t, obj, reg.Object())
	assert.Equal(t, obj.Box, reg.GetBBox())
}

func TestSceneAddUniqueIDs(t *testing.T) {
	scene := NewSceneDefault()
	seen := make(map[uuid.UUID]struct{})
	for i := 0; i < 500; i++ {
		id, err := scene.Add(mustThing(t, 1, 1, float64(i), 0))
		require.NoError(t, err)
		_, dup := seen[id]
		require.False(t, dup, "identifier %s assigned twice", id)
		seen[id] = struct{}{}
	}
	assert.Equal(t, 500, scene.Len())

	for id, reg := range scene.Objects() {
		assert.Equal(t, id, reg.GetID())
	}
}

func TestSceneAddRetriesOnCollision(t *testing.T) {
	first := uuid.MustParse("00000000-0000-4000-8000-000000000001")
	second := uuid.MustParse("00000000-0000-4000-8000-000000000002")
	// Second Add sees the taken identifier and uuid.Nil before getting a free one
	scene := NewScene(WithIDGenerator(sequenceIDs(first, first, uuid.Nil, second)))

	idOne, err := scene.Add(mustThing(t, 10, 10, 0, 0))
	require.NoError(t, err)
	idTwo, err := scene.Add(mustThing(t, 10, 10, 30, 0))
	require.NoError(t, err)

	assert.Equal(t, first, idOne)
	assert.Equal(t, second, idTwo)
	assert.Equal(t, 2, scene.Len())
}

func TestSceneAddIdentifierExhausted(t *testing.T) {
	fixed := uuid.MustParse("00000000-0000-4000-8000-00000000000f")
	scene := NewScene(
		WithIDGenerator(func() uuid.UUID { return fixed }),
		WithMaxIDRetries(3),
	)

	_, err := scene.Add(mustThing(t, 10, 10, 0, 0))
	require.NoError(t, err)

	obj := mustThing(t, 5, 5, 0, 0)
	id, err := scene.Add(obj)
	assert.Equal(t, uuid.Nil, id)
	assert.True(t, errors.Is(err, ErrIdentifierExhausted), "unexpected error: %v", err)
	assert.Equal(t, 1, scene.Len())

	// First object is untouched
	reg, ok := scene.Get(fixed)
	require.True(t, ok)
	assert.NotSame(t, obj, reg.Object())
}

func TestSceneAddInvalid(t *testing.T) {
	scene := NewSceneDefault()

	_, err := scene.Add(nil)
	assert.True(t, errors.Is(err, ErrInvalidGeometry), "unexpected error: %v", err)

	// Geometry modified after construction is checked again
	obj := mustThing(t, 10, 10, 0, 0)
	obj.Box.Width = -1
	_, err = scene.Add(obj)
	assert.True(t, errors.Is(err, ErrInvalidGeometry), "unexpected error: %v", err)
	assert.Equal(t, 0, scene.Len())
}

func TestSceneAddWithIDOverwrites(t *testing.T) {
	logger, hook := test.NewNullLogger()
	scene := NewScene(WithLogger(logger))
	id := uuid.MustParse("6ba7b810-9dad-41d1-80b4-00c04fd430c8")

	first := mustThing(t, 10, 10, 0, 0)
	second := mustThing(t, 3, 3, 50, 50)
	require.NoError(t, scene.AddWithID(id, first))
	assert.Empty(t, hook.AllEntries())

	require.NoError(t, scene.AddWithID(id, second))
	assert.Equal(t, 1, scene.Len())
	reg, ok := scene.Get(id)
	require.True(t, ok)
	assert.Same(t, second, reg.Object())

	require.NotNil(t, hook.LastEntry())
	assert.Equal(t, log.WarnLevel, hook.LastEntry().Level)
	assert.Equal(t, id.String(), hook.LastEntry().Data["id"])

	err := scene.AddWithID(uuid.Nil, first)
	assert.True(t, errors.Is(err, ErrInvalidIdentifier), "unexpected error: %v", err)
	err = scene.AddWithID(id, nil)
	assert.True(t, errors.Is(err, ErrInvalidGeometry), "unexpected error: %v", err)
}

func TestSceneLogsRegistration(t *testing.T) {
	logger, hook := test.NewNullLogger()
	logger.SetLevel(log.DebugLevel)
	scene := NewScene(WithLogger(logger))

	person, err := NewPerson(NewRect(0, 0, 10, 20))
	require.NoError(t, err)
	id, err := scene.Add(person)
	require.NoError(t, err)

	entry := hook.LastEntry()
	require.NotNil(t, entry)
	assert.Equal(t, log.DebugLevel, entry.Level)
	assert.Equal(t, id.String(), entry.Data["id"])
	assert.Equal(t, "person", entry.Data["category"])
}

func TestSceneObjectsIsCopy(t *testing.T) {
	scene := NewSceneDefault()
	idOne, err := scene.Add(mustThing(t, 10, 10, 0, 0))
	require.NoError(t, err)
	idTwo, err := scene.Add(mustThing(t, 10, 10, 9, 8))
	require.NoError(t, err)

	objects := scene.Objects()
	one, _ := scene.Get(idOne)
	two, _ := scene.Get(idTwo)
	expected := map[uuid.UUID]*Registered{idOne: one, idTwo: two}
	if diff := cmp.Diff(expected, objects, cmp.AllowUnexported(Registered{})); diff != "" {
		t.Errorf("Objects() mismatch (-want +got):\n%s", diff)
	}

	delete(objects, idOne)
	assert.Equal(t, 2, scene.Len())
	_, ok := scene.Get(idOne)
	assert.True(t, ok)
	assert.True(t, one.IsTouching(two))
}

func TestScenePlace(t *testing.T) {
	assert.Equal(t, Place{}, NewSceneDefault().Place())
	scene := NewScene(WithPlace(Place{Name: "lobby"}))
	assert.Equal(t, "lobby", scene.Place().Name)
}

func TestSceneStepNotImplemented(t *testing.T) {
	scene := NewSceneDefault()
	obj := mustThing(t, 10, 10, 0, 0)
	id, err := scene.Add(obj)
	require.NoError(t, err)

	err = scene.Step(map[uuid.UUID]Rectangle{id: obj.Box.Translate(5, 5)})
	assert.True(t, errors.Is(err, ErrNotImplemented), "unexpected error: %v", err)

	reg, _ := scene.Get(id)
	assert.Equal(t, NewRect(0, 0, 10, 10), reg.GetBBox())
}
