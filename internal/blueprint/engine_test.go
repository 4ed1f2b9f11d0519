package blueprint

import (
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/noelruault/emd/internal/catalog"
	"github.com/noelruault/emd/internal/errs"
)

type mockPersister struct {
	mock.Mock
}

func (m *mockPersister) SaveBlueprints(c Collection) error {
	args := m.Called(c)
	return args.Error(0)
}

// recordingPersister keeps the last saved collection.
type recordingPersister struct {
	saves int
	last  Collection
}

func (r *recordingPersister) SaveBlueprints(c Collection) error {
	r.saves++
	r.last = c
	return nil
}

func ec2(id, name string) Resource {
	return Resource{ResourceType: catalog.KindEc2, Region: "ap-northeast-2", ResourceID: id, ResourceName: name}
}

func TestComposeBlueprint(t *testing.T) {
	rec := &recordingPersister{}
	e := NewEngine(Collection{}, rec, zerolog.Nop())

	require.NoError(t, e.Create("prod"))
	assert.Equal(t, 0, e.Selected())
	require.NoError(t, e.Open(0))

	require.NoError(t, e.AddResource(ec2("i-1", "web-1")))
	require.NoError(t, e.AddResource(ec2("i-2", "web-2")))

	moved, err := e.MoveDown(0)
	require.NoError(t, err)
	assert.True(t, moved)

	cur, ok := e.Current()
	require.True(t, ok)
	assert.Equal(t, []string{"i-2", "i-1"}, ids(cur))

	// The store slot and the persisted copy both follow the working copy.
	stored, _ := e.Get(0)
	assert.Equal(t, []string{"i-2", "i-1"}, ids(stored))
	assert.Equal(t, []string{"i-2", "i-1"}, ids(rec.last.Blueprints[0]))
	assert.Equal(t, 4, rec.saves)

	removed, err := e.RemoveResource(0)
	require.NoError(t, err)
	assert.True(t, removed)
	stored, _ = e.Get(0)
	assert.Equal(t, []string{"i-1"}, ids(stored))
}

func ids(b Blueprint) []string {
	out := make([]string, 0, len(b.Resources))
	for _, r := range b.Resources {
		out = append(out, r.ResourceID)
	}
	return out
}

func TestCreateRejectsEmptyName(t *testing.T) {
	p := &mockPersister{}
	e := NewEngine(Collection{}, p, zerolog.Nop())
	err := e.Create("   ")
	require.Error(t, err)
	assert.True(t, errs.IsValidation(err))
	assert.Equal(t, 0, e.Len())
	p.AssertNotCalled(t, "SaveBlueprints", mock.Anything)
}

func TestDeleteClampsSelection(t *testing.T) {
	e := NewEngine(Collection{Blueprints: []Blueprint{{Name: "a"}, {Name: "b"}, {Name: "c"}}}, nil, zerolog.Nop())
	require.True(t, e.Select(2))

	ok, err := e.Delete(2)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, 1, e.Selected())

	ok, err = e.Delete(5)
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Equal(t, 2, e.Len())

	_, _ = e.Delete(0)
	assert.Equal(t, 0, e.Selected())
	_, _ = e.Delete(0)
	assert.Equal(t, 0, e.Selected())
	assert.Equal(t, 0, e.Len())
}

func TestDeleteShiftsLaterEntries(t *testing.T) {
	e := NewEngine(Collection{Blueprints: []Blueprint{{Name: "a"}, {Name: "b"}, {Name: "c"}}}, nil, zerolog.Nop())
	_, err := e.Delete(0)
	require.NoError(t, err)
	b, _ := e.Get(0)
	assert.Equal(t, "b", b.Name)
	assert.Equal(t, 1, e.Collection().Find("c"))
}

func TestMoveBounds(t *testing.T) {
	e := NewEngine(Collection{Blueprints: []Blueprint{{Name: "bp", Resources: []Resource{ec2("i-1", "web-1"), ec2("i-2", "web-2")}}}}, nil, zerolog.Nop())
	require.NoError(t, e.Open(0))

	ok, _ := e.MoveUp(0)
	assert.False(t, ok)
	ok, _ = e.MoveDown(1)
	assert.False(t, ok)
	ok, _ = e.MoveDown(99)
	assert.False(t, ok)
	ok, _ = e.MoveDown(0)
	assert.True(t, ok)
	ok, _ = e.MoveUp(1)
	assert.True(t, ok)

	cur, _ := e.Current()
	assert.Equal(t, []string{"i-1", "i-2"}, ids(cur))
}

func TestMutationsRequireOpenBlueprint(t *testing.T) {
	e := NewEngine(Collection{Blueprints: []Blueprint{{Name: "bp"}}}, nil, zerolog.Nop())
	assert.ErrorIs(t, e.AddResource(ec2("i-1", "")), errs.ErrNoBlueprintOpen)
	_, err := e.RemoveResource(0)
	assert.ErrorIs(t, err, errs.ErrNotFound)

	assert.ErrorIs(t, e.Open(3), errs.ErrNotFound)
	assert.False(t, e.IsOpen())
}

func TestSaveFailureKeepsMutation(t *testing.T) {
	p := &mockPersister{}
	p.On("SaveBlueprints", mock.Anything).Return(errors.New("disk full"))
	e := NewEngine(Collection{Blueprints: []Blueprint{{Name: "bp"}}}, p, zerolog.Nop())
	require.NoError(t, e.Open(0))

	err := e.AddResource(ec2("i-1", "web-1"))
	require.Error(t, err)
	assert.True(t, errs.IsPersistence(err))

	cur, _ := e.Current()
	assert.Len(t, cur.Resources, 1)
	stored, _ := e.Get(0)
	assert.Len(t, stored.Resources, 1)
	p.AssertNumberOfCalls(t, "SaveBlueprints", 1)
}

func TestOpenCopyIsIsolated(t *testing.T) {
	e := NewEngine(Collection{Blueprints: []Blueprint{{Name: "bp", Resources: []Resource{ec2("i-1", "")}}}}, nil, zerolog.Nop())
	require.NoError(t, e.Open(0))
	cur, _ := e.Current()
	cur.Resources[0].ResourceID = "changed"

	again, _ := e.Current()
	assert.Equal(t, "i-1", again.Resources[0].ResourceID)
}
