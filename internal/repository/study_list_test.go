package repository

import (
	"context"
	"testing"

	"studyrecs/internal/models"
	"studyrecs/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestStudyListRepository_AddListRemove(t *testing.T) {
	db := testutil.NewDB(t)
	repo := NewStudyListRepository(db)
	ctx := context.Background()
	owner := testutil.CreateUser(t, db, "Ada")
	reader := testutil.CreateUser(t, db, "Bob")
	older := testutil.CreateRec(t, db, owner.ID, "older", "article")
	newer := testutil.CreateRec(t, db, owner.ID, "newer", "article")

	entry, err := repo.Add(ctx, reader.ID, older.ID)
	require.NoError(t, err)
	assert.Equal(t, reader.ID, entry.UserID)
	assert.Equal(t, older.ID, entry.RecID)

	_, err = repo.Add(ctx, reader.ID, newer.ID)
	require.NoError(t, err)

	recs, err := repo.List(ctx, reader.ID)
	require.NoError(t, err)
	assert.Equal(t, []uint{newer.ID, older.ID}, recIDs(recs))
	assert.Equal(t, "Ada", recs[0].OwnerName)

	removed, err := repo.Remove(ctx, reader.ID, newer.ID)
	require.NoError(t, err)
	assert.EqualValues(t, 1, removed)

	recs, err = repo.List(ctx, reader.ID)
	require.NoError(t, err)
	assert.Equal(t, []uint{older.ID}, recIDs(recs))
}

func TestStudyListRepository_AddTwiceKeepsOneRow(t *testing.T) {
	db := testutil.NewDB(t)
	repo := NewStudyListRepository(db)
	ctx := context.Background()
	u := testutil.CreateUser(t, db, "Ada")
	rec := testutil.CreateRec(t, db, u.ID, "rec", "article")

	first, err := repo.Add(ctx, u.ID, rec.ID)
	require.NoError(t, err)
	second, err := repo.Add(ctx, u.ID, rec.ID)
	require.NoError(t, err)
	assert.Equal(t, first.UserID, second.UserID)
	assert.Equal(t, first.RecID, second.RecID)

	var count int64
	require.NoError(t, db.Model(&models.StudyList{}).Count(&count).Error)
	assert.EqualValues(t, 1, count)
}

func TestStudyListRepository_RemoveAbsentIsNoop(t *testing.T) {
	db := testutil.NewDB(t)
	repo := NewStudyListRepository(db)

	removed, err := repo.Remove(context.Background(), 7, 8)
	require.NoError(t, err)
	assert.Zero(t, removed)
}

func TestStudyListRepository_EmptyList(t *testing.T) {
	db := testutil.NewDB(t)
	repo := NewStudyListRepository(db)

	recs, err := repo.List(context.Background(), 1)
	require.NoError(t, err)
	assert.NotNil(t, recs)
	assert.Empty(t, recs)
}

func TestStudyListRepository_UnknownRec(t *testing.T) {
	db := testutil.NewDB(t)
	repo := NewStudyListRepository(db)
	u := testutil.CreateUser(t, db, "Ada")

	_, err := repo.Add(context.Background(), u.ID, 99)
	assert.ErrorIs(t, err, gorm.ErrForeignKeyViolated)
}
