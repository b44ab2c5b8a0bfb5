package repository

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"studyrecs/internal/models"
	"studyrecs/internal/testutil"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func setupMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)

	gormDB, err := gorm.Open(postgres.New(postgres.Config{
		Conn: db,
	}), &gorm.Config{})
	require.NoError(t, err)

	return gormDB, mock
}

func recIDs(recs []models.RecView) []uint {
	ids := make([]uint, 0, len(recs))
	for _, r := range recs {
		ids = append(ids, r.ID)
	}
	return ids
}

func TestRecRepository_CreateWithTags(t *testing.T) {
	db := testutil.NewDB(t)
	repo := NewRecRepository(db)
	ctx := context.Background()
	owner := testutil.CreateUser(t, db, "Ada")

	rec := &models.Rec{UserID: owner.ID, Title: "Designing Data-Intensive Applications", Type: "eBook"}
	tags, err := repo.Create(ctx, rec, []string{"databases", "distributed", "databases"})
	require.NoError(t, err)
	require.NotZero(t, rec.ID)
	assert.Len(t, tags, 3)
	for _, tag := range tags {
		assert.Equal(t, rec.ID, tag.RecID)
		assert.NotZero(t, tag.ID)
	}

	stored, err := repo.ListTags(ctx, rec.ID)
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"databases", "distributed", "databases"}, stored)

	view, err := repo.GetByID(ctx, rec.ID)
	require.NoError(t, err)
	assert.Equal(t, "Ada", view.OwnerName)
	assert.Equal(t, "eBook", view.Type)
	assert.False(t, view.SubmitTime.IsZero())
}

func TestRecRepository_CreateWithoutTags(t *testing.T) {
	db := testutil.NewDB(t)
	repo := NewRecRepository(db)
	ctx := context.Background()
	owner := testutil.CreateUser(t, db, "Ada")

	rec := &models.Rec{UserID: owner.ID, Title: "Untagged", Type: "other"}
	tags, err := repo.Create(ctx, rec, nil)
	require.NoError(t, err)
	assert.Empty(t, tags)

	stored, err := repo.ListTags(ctx, rec.ID)
	require.NoError(t, err)
	assert.NotNil(t, stored)
	assert.Empty(t, stored)
}

func TestRecRepository_CreateUnknownOwner(t *testing.T) {
	db := testutil.NewDB(t)
	repo := NewRecRepository(db)

	_, err := repo.Create(context.Background(), &models.Rec{UserID: 999, Title: "orphan", Type: "tool"}, []string{"a"})
	require.Error(t, err)
	assert.ErrorIs(t, err, gorm.ErrForeignKeyViolated)

	var count int64
	require.NoError(t, db.Model(&models.Tag{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestRecRepository_CreateRollsBackWhenTagsFail(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewRecRepository(db)

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO "recs"`)).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(42))
	mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO "tags"`)).
		WillReturnError(errors.New("disk full"))
	mock.ExpectRollback()

	rec := &models.Rec{UserID: 1, Title: "X", Type: "article"}
	_, err := repo.Create(context.Background(), rec, []string{"a", "b"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "insert tags")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRecRepository_GetByIDNotFound(t *testing.T) {
	db := testutil.NewDB(t)
	repo := NewRecRepository(db)

	_, err := repo.GetByID(context.Background(), 12345)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestRecRepository_ListRecent(t *testing.T) {
	db := testutil.NewDB(t)
	repo := NewRecRepository(db)
	ctx := context.Background()
	owner := testutil.CreateUser(t, db, "Grace")

	empty, err := repo.ListRecent(ctx, 10)
	require.NoError(t, err)
	assert.NotNil(t, empty)
	assert.Empty(t, empty)

	first := testutil.CreateRec(t, db, owner.ID, "first", "video")
	second := testutil.CreateRec(t, db, owner.ID, "second", "video")
	third := testutil.CreateRec(t, db, owner.ID, "third", "podcast")

	recs, err := repo.ListRecent(ctx, 2)
	require.NoError(t, err)
	assert.Equal(t, []uint{third.ID, second.ID}, recIDs(recs))
	assert.Equal(t, "Grace", recs[0].OwnerName)

	all, err := repo.ListRecent(ctx, 10)
	require.NoError(t, err)
	assert.Equal(t, []uint{third.ID, second.ID, first.ID}, recIDs(all))
}

func TestRecRepository_ListByType(t *testing.T) {
	db := testutil.NewDB(t)
	repo := NewRecRepository(db)
	owner := testutil.CreateUser(t, db, "Grace")

	v1 := testutil.CreateRec(t, db, owner.ID, "talk", "video")
	testutil.CreateRec(t, db, owner.ID, "episode", "podcast")
	v2 := testutil.CreateRec(t, db, owner.ID, "course intro", "video")

	recs, err := repo.ListByType(context.Background(), "video", 50)
	require.NoError(t, err)
	assert.Equal(t, []uint{v2.ID, v1.ID}, recIDs(recs))
}

func TestRecRepository_FilterByTags(t *testing.T) {
	db := testutil.NewDB(t)
	repo := NewRecRepository(db)
	ctx := context.Background()
	owner := testutil.CreateUser(t, db, "Linus")

	both := testutil.CreateRec(t, db, owner.ID, "both", "article", "sql", "postgres")
	onlyPg := testutil.CreateRec(t, db, owner.ID, "pg", "article", "postgres")
	testutil.CreateRec(t, db, owner.ID, "css", "article", "css")

	recs, err := repo.FilterByTags(ctx, []string{"sql", "postgres"})
	require.NoError(t, err)
	assert.ElementsMatch(t, []uint{both.ID, onlyPg.ID}, recIDs(recs))

	none, err := repo.FilterByTags(ctx, []string{"' OR 1=1 --"})
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestRecRepository_Search(t *testing.T) {
	db := testutil.NewDB(t)
	repo := NewRecRepository(db)
	ctx := context.Background()
	ada := testutil.CreateUser(t, db, "Ada")
	bob := testutil.CreateUser(t, db, "Bob")

	hooks := testutil.CreateRec(t, db, ada.ID, "Learning React Hooks", "article", "frontend", "javascript")
	untagged := testutil.CreateRec(t, db, bob.ID, "Go Concurrency Patterns", "video")
	testutil.CreateRec(t, db, bob.ID, "Intro to SQL", "exercise", "sql")

	t.Run("title is case insensitive", func(t *testing.T) {
		recs, err := repo.Search(ctx, []string{"REACT"})
		require.NoError(t, err)
		assert.Equal(t, []uint{hooks.ID}, recIDs(recs))
	})

	t.Run("recs without tags are searchable", func(t *testing.T) {
		recs, err := repo.Search(ctx, []string{"concurrency"})
		require.NoError(t, err)
		assert.Equal(t, []uint{untagged.ID}, recIDs(recs))
	})

	t.Run("tag matches once per rec", func(t *testing.T) {
		recs, err := repo.Search(ctx, []string{"script", "frontend"})
		require.NoError(t, err)
		assert.Equal(t, []uint{hooks.ID}, recIDs(recs))
	})

	t.Run("any keyword matches", func(t *testing.T) {
		recs, err := repo.Search(ctx, []string{"hooks", "patterns"})
		require.NoError(t, err)
		assert.ElementsMatch(t, []uint{hooks.ID, untagged.ID}, recIDs(recs))
	})

	t.Run("owner name", func(t *testing.T) {
		recs, err := repo.Search(ctx, []string{"ada"})
		require.NoError(t, err)
		assert.Equal(t, []uint{hooks.ID}, recIDs(recs))
	})

	t.Run("hostile input is just a value", func(t *testing.T) {
		recs, err := repo.Search(ctx, []string{"'); DROP TABLE recs; --"})
		require.NoError(t, err)
		assert.Empty(t, recs)

		var count int64
		require.NoError(t, db.Model(&models.Rec{}).Count(&count).Error)
		assert.EqualValues(t, 3, count)
	})

	t.Run("no keywords", func(t *testing.T) {
		recs, err := repo.Search(ctx, nil)
		require.NoError(t, err)
		assert.Empty(t, recs)
	})
}

func TestRecRepository_SearchLimit(t *testing.T) {
	db := testutil.NewDB(t)
	repo := NewRecRepository(db)
	owner := testutil.CreateUser(t, db, "Ada")
	for i := 0; i < SearchLimit+3; i++ {
		testutil.CreateRec(t, db, owner.ID, "kubernetes notes", "webpage")
	}

	recs, err := repo.Search(context.Background(), []string{"kubernetes"})
	require.NoError(t, err)
	assert.Len(t, recs, SearchLimit)
}
