// Package testutil holds fixtures shared by package tests.
package testutil

import (
	"fmt"
	"strings"
	"testing"

	"studyrecs/internal/db"
	"studyrecs/internal/models"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// NewDB opens a migrated in-memory SQLite database private to the test.
// Foreign keys are enforced like they are in Postgres.
func NewDB(t testing.TB) *gorm.DB {
	t.Helper()

	name := strings.NewReplacer("/", "_", " ", "_", "#", "_").Replace(t.Name())
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared&_foreign_keys=1", name)
	conn, err := gorm.Open(sqlite.Open(dsn), db.GormConfig())
	require.NoError(t, err)

	sqlDB, err := conn.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, db.Migrate(conn))
	return conn
}

func CreateUser(t testing.TB, conn *gorm.DB, name string) models.User {
	t.Helper()
	u := models.User{Name: name, Email: strings.ToLower(name) + "@example.com"}
	require.NoError(t, conn.Create(&u).Error)
	return u
}

// CreateRec inserts a rec owned by userID with the given tags.
func CreateRec(t testing.TB, conn *gorm.DB, userID uint, title, recType string, tags ...string) models.Rec {
	t.Helper()
	rec := models.Rec{UserID: userID, Title: title, Type: recType, Author: "someone"}
	require.NoError(t, conn.Omit("User").Create(&rec).Error)
	for _, tag := range tags {
		require.NoError(t, conn.Omit("Rec").Create(&models.Tag{RecID: rec.ID, Tag: tag}).Error)
	}
	return rec
}
