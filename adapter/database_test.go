package adapter

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zero-day-ai/foundation/ids"
	"github.com/zero-day-ai/foundation/schema"
)

func TestDatabase_Contract(t *testing.T) {
	ctx := context.Background()
	db := newMemDB()

	inserted, err := db.Insert(ctx, note{Title: "first", Owner: "alice"})
	require.NoError(t, err)
	require.True(t, ids.ValidateResourceID(inserted.ID.String()))

	got, err := db.Get(ctx, inserted.ID)
	require.NoError(t, err)
	assert.Equal(t, inserted, got)

	updated, err := db.Update(ctx, inserted.ID, Patch{"title": "renamed"})
	require.NoError(t, err)
	assert.Equal(t, "renamed", updated.Title)
	assert.Equal(t, "alice", updated.Owner)

	_, err = db.Insert(ctx, note{Title: "second", Owner: "bob"})
	require.NoError(t, err)

	owned, err := db.Query(ctx, Filter{"owner": "alice"})
	require.NoError(t, err)
	require.Len(t, owned, 1)
	assert.Equal(t, inserted.ID, owned[0].ID)

	all, err := db.Query(ctx, Filter{})
	require.NoError(t, err)
	assert.Len(t, all, 2)

	require.NoError(t, db.Delete(ctx, inserted.ID))
	_, err = db.Get(ctx, inserted.ID)
	assert.ErrorIs(t, err, ErrNotFound)
	assert.True(t, IsNotFound(db.Delete(ctx, inserted.ID)))
}

func TestTransaction_RollsBackOnError(t *testing.T) {
	ctx := context.Background()
	db := newMemDB(note{ID: "res_keep", Title: "keep"})
	boom := errors.New("boom")

	err := db.Transaction(ctx, func(ctx context.Context, tx Database[note]) error {
		if _, err := tx.Insert(ctx, note{Title: "staged"}); err != nil {
			return err
		}
		if err := tx.Delete(ctx, "res_keep"); err != nil {
			return err
		}
		return boom
	})
	assert.ErrorIs(t, err, boom)

	assert.Equal(t, 1, db.count())
	kept, err := db.Get(ctx, "res_keep")
	require.NoError(t, err)
	assert.Equal(t, "keep", kept.Title)
}

func TestInTransaction(t *testing.T) {
	ctx := context.Background()
	db := newMemDB()

	id, err := InTransaction(ctx, db, func(ctx context.Context, tx Database[note]) (ids.ResourceID, error) {
		n, err := tx.Insert(ctx, note{Title: "committed"})
		return n.ID, err
	})
	require.NoError(t, err)
	assert.True(t, GetResult(ctx, Database[note](db), id).IsOk())

	boom := errors.New("boom")
	id, err = InTransaction(ctx, db, func(ctx context.Context, tx Database[note]) (ids.ResourceID, error) {
		n, err := tx.Insert(ctx, note{Title: "discarded"})
		if err != nil {
			return "", err
		}
		return n.ID, boom
	})
	assert.ErrorIs(t, err, boom)
	assert.Empty(t, id)
	assert.Equal(t, 1, db.count())
}

func TestGetResult(t *testing.T) {
	ctx := context.Background()
	db := newMemDB(note{ID: "res_1", Title: "one"})

	r := GetResult[note](ctx, db, "res_1")
	require.True(t, r.IsOk())
	assert.Equal(t, "one", r.Must().Title)

	missing := GetResult[note](ctx, db, "res_2")
	require.True(t, missing.IsErr())
	assert.ErrorIs(t, missing.Err(), ErrNotFound)

	q := QueryResult[note](ctx, db, Filter{"title": "one"})
	require.True(t, q.IsOk())
	assert.Len(t, q.Must(), 1)
}

func TestValidated(t *testing.T) {
	ctx := context.Background()
	inner := newMemDB()
	db := Validated[note](inner, schema.MustNew[note]())

	_, err := db.Insert(ctx, note{Title: "  "})
	var verr *schema.Error
	require.ErrorAs(t, err, &verr)
	assert.True(t, verr.Has("title"))
	assert.Zero(t, inner.count())

	n, err := db.Insert(ctx, note{Title: "ok"})
	require.NoError(t, err)

	// an invalid patch is rolled back
	_, err = db.Update(ctx, n.ID, Patch{"title": ""})
	require.ErrorAs(t, err, &verr)
	stored, err := inner.Get(ctx, n.ID)
	require.NoError(t, err)
	assert.Equal(t, "ok", stored.Title)

	updated, err := db.Update(ctx, n.ID, Patch{"title": "better"})
	require.NoError(t, err)
	assert.Equal(t, "better", updated.Title)

	_, err = db.Update(ctx, "res_missing", Patch{"title": "x"})
	assert.ErrorIs(t, err, ErrNotFound)

	// handles passed to transactions validate too
	err = db.Transaction(ctx, func(ctx context.Context, tx Database[note]) error {
		_, err := tx.Insert(ctx, note{ID: "not-a-resource", Title: "t"})
		return err
	})
	require.ErrorAs(t, err, &verr)
	assert.True(t, verr.Has("id"))
	assert.Equal(t, 1, inner.count())

	got, err := db.Query(ctx, nil)
	require.NoError(t, err)
	assert.Len(t, got, 1)
	require.NoError(t, db.Delete(ctx, n.ID))
	_, err = db.Get(ctx, n.ID)
	assert.True(t, IsNotFound(err))
}
