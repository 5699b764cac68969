package preferences

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/Nawaf-Almansour/prep-manger/internal/session"
)

func setupTestDB(t *testing.T) *GormRepository {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	// each new connection would see its own empty in-memory database
	sqlDB.SetMaxOpenConns(1)
	repo := NewGormRepository(db)
	require.NoError(t, repo.AutoMigrate())
	return repo
}

func TestFindMissing(t *testing.T) {
	repo := setupTestDB(t)

	_, err := repo.Find(context.Background(), "nobody")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestSaveUpserts(t *testing.T) {
	repo := setupTestDB(t)
	ctx := context.Background()

	require.NoError(t, repo.Save(ctx, &Preference{UserID: "u1", Locale: "en"}))
	require.NoError(t, repo.Save(ctx, &Preference{UserID: "u1", Locale: "ar", SidebarCollapsed: true}))

	p, err := repo.Find(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, "ar", p.Locale)
	assert.True(t, p.SidebarCollapsed)

	var count int64
	repo.db.Model(&Preference{}).Count(&count)
	assert.Equal(t, int64(1), count)
}

func TestNopRepository(t *testing.T) {
	var repo Repository = NopRepository{}
	assert.NoError(t, repo.Save(context.Background(), &Preference{UserID: "u1"}))
	_, err := repo.Find(context.Background(), "u1")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestRestoreAndStore(t *testing.T) {
	repo := setupTestDB(t)
	ctx := context.Background()

	s := &session.Session{Locale: "ar", SidebarCollapsed: true}
	s.SetUser(session.Principal{ID: "u7", Role: session.RolePrep})
	Store(ctx, repo, s)

	fresh := &session.Session{Locale: "en"}
	fresh.SetUser(session.Principal{ID: "u7"})
	Restore(ctx, repo, fresh)
	assert.Equal(t, "ar", fresh.Locale)
	assert.True(t, fresh.SidebarCollapsed)

	anon := &session.Session{Locale: "en"}
	Restore(ctx, repo, anon)
	assert.Equal(t, "en", anon.Locale)
}
