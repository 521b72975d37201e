package world

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Miro-n1/archipelago-manuals/internal/catalog"
)

func testCatalog(t *testing.T) *catalog.Catalog {
	t.Helper()
	cat, err := catalog.New("Test",
		[]catalog.Region{
			{Name: "Assignment 1", Locations: []catalog.Location{
				{Name: "Assignment 1-1", Groups: []string{"Assignments"}},
				{Name: "Assignment 1-2", Groups: []string{"Assignments"}},
				{Name: "Assignment 1-3", Groups: []string{"Assignments"}},
			}},
			{Name: "Assignment 2", Locations: []catalog.Location{
				{Name: "Assignment 2-1", Groups: []string{"Assignments"}},
			}},
			{Name: "Goal", Locations: []catalog.Location{
				{Name: "Complete 4 missions", Locked: "Victory"},
			}},
		},
		[]catalog.Item{
			{Name: "Driller", Count: 1, Class: catalog.Progression},
			{Name: "Deep Dive", Count: 2, Class: catalog.Progression},
			{Name: "Assignments Complete!", Count: 1, Class: catalog.Progression},
			{Name: "Nitra", Count: 3, Class: catalog.Filler},
		},
	)
	require.NoError(t, err)
	return cat
}

func TestPoolMultiset(t *testing.T) {
	p := NewPool()
	p.Add("Wisp", 3)
	p.Add("Water Stone", 1)
	p.Add("Wisp", 1)
	p.Add("Nothing", 0)

	assert.Equal(t, 5, p.Len())
	assert.Equal(t, 4, p.Count("Wisp"))
	assert.True(t, p.Remove("Water Stone"))
	assert.False(t, p.Remove("Water Stone"))
	assert.False(t, p.Has("Water Stone"))
	assert.Equal(t, []Entry{{Name: "Wisp", Count: 4}}, p.Counts())
	assert.Equal(t, []string{"Wisp", "Wisp", "Wisp", "Wisp"}, p.Items())
}

func TestNewWorldFromCatalog(t *testing.T) {
	w := New(1, testCatalog(t))
	assert.Equal(t, 5, w.ActiveCount())
	assert.Equal(t, 4, w.FillableCount())
	assert.Equal(t, 7, w.Pool().Len())
	item, ok := w.LockedAt("Complete 4 missions")
	assert.True(t, ok)
	assert.Equal(t, "Victory", item)
}

func TestRemoveLocationIsIdempotent(t *testing.T) {
	w := New(1, testCatalog(t))

	removed, err := w.RemoveLocation("Assignment 1-1")
	require.NoError(t, err)
	assert.True(t, removed)
	assert.Equal(t, 3, w.FillableCount())

	removed, err = w.RemoveLocation("Assignment 1-1")
	require.NoError(t, err)
	assert.False(t, removed)
	assert.Equal(t, 3, w.FillableCount())

	group, err := w.ActiveInGroup("Assignments")
	require.NoError(t, err)
	assert.Equal(t, []string{"Assignment 1-2", "Assignment 1-3", "Assignment 2-1"}, group)

	_, err = w.RemoveLocation("Assignment 9-9")
	assert.ErrorIs(t, err, catalog.ErrNotFound)
}

func TestExcludeRegion(t *testing.T) {
	w := New(1, testCatalog(t))
	_, err := w.RemoveLocation("Assignment 1-2")
	require.NoError(t, err)

	n, err := w.ExcludeRegion("Assignment 1")
	require.NoError(t, err)
	assert.Equal(t, 2, n)
	left, err := w.ActiveIn("Assignment 1")
	require.NoError(t, err)
	assert.Empty(t, left)
	assert.Equal(t, 1, w.FillableCount())

	n, err = w.ExcludeRegion("Assignment 1")
	require.NoError(t, err)
	assert.Zero(t, n)

	_, err = w.ExcludeRegion("Assignment 7")
	assert.ErrorIs(t, err, catalog.ErrNotFound)
}

func TestRemovingLockedLocationKeepsFillableCount(t *testing.T) {
	w := New(1, testCatalog(t))
	_, err := w.RemoveLocation("Complete 4 missions")
	require.NoError(t, err)
	assert.Equal(t, 4, w.FillableCount())
	_, ok := w.LockedAt("Complete 4 missions")
	assert.False(t, ok)
}

func TestDiscardAndPrecollect(t *testing.T) {
	w := New(1, testCatalog(t))

	ok, err := w.Precollect("Driller")
	require.NoError(t, err)
	assert.True(t, ok)
	ok, err = w.Precollect("Driller")
	require.NoError(t, err)
	assert.False(t, ok)

	ok, err = w.Discard("Deep Dive")
	require.NoError(t, err)
	assert.True(t, ok)

	_, err = w.Discard("Dep Dive")
	assert.ErrorIs(t, err, catalog.ErrNotFound)

	assert.Equal(t, []string{"Driller"}, w.Precollected())
	assert.Equal(t, []string{"Deep Dive"}, w.Discarded())
	assert.Equal(t, 5, w.Pool().Len())
	assert.False(t, w.Pool().Has("Driller"))
}

func TestLock(t *testing.T) {
	w := New(1, testCatalog(t))

	require.NoError(t, w.Lock("Assignment 1-3", "Assignments Complete!"))
	assert.Equal(t, 3, w.FillableCount())
	assert.Equal(t, 6, w.Pool().Len())
	assert.False(t, w.Fillable("Assignment 1-3"))

	err := w.Lock("Assignment 1-3", "Driller")
	assert.ErrorIs(t, err, ErrNotFillable)

	_, err = w.RemoveLocation("Assignment 2-1")
	require.NoError(t, err)
	err = w.Lock("Assignment 2-1", "Driller")
	assert.ErrorIs(t, err, ErrNotFillable)

	err = w.Lock("Assignment 1-1", "Assignments Complete!")
	assert.ErrorIs(t, err, ErrNotInPool)
}

func TestFreezeRejectsMutation(t *testing.T) {
	w := New(1, testCatalog(t))
	w.Freeze()

	_, err := w.RemoveLocation("Assignment 1-1")
	assert.True(t, errors.Is(err, ErrFrozen))
	_, err = w.Discard("Nitra")
	assert.ErrorIs(t, err, ErrFrozen)
	_, err = w.Precollect("Nitra")
	assert.ErrorIs(t, err, ErrFrozen)
	assert.ErrorIs(t, w.Lock("Assignment 1-1", "Nitra"), ErrFrozen)
	_, err = w.ExcludeRegion("Goal")
	assert.ErrorIs(t, err, ErrFrozen)
}

func TestSnapshotDigestTracksState(t *testing.T) {
	a := New(1, testCatalog(t))
	b := New(1, testCatalog(t))
	assert.Equal(t, a.Snapshot().Digest(), b.Snapshot().Digest())

	_, err := b.Precollect("Driller")
	require.NoError(t, err)
	assert.NotEqual(t, a.Snapshot().Digest(), b.Snapshot().Digest())

	snap := b.Snapshot()
	assert.Equal(t, 6, snap.PoolSize())
	assert.Equal(t, 4, snap.Fillable)
	assert.Equal(t, []Placement{{Location: "Complete 4 missions", Item: "Victory"}}, snap.Locked)
	assert.Len(t, snap.Regions, 3)
}
