package preferences

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/Nawaf-Almansour/prep-manger/internal/session"
	"github.com/Nawaf-Almansour/prep-manger/pkg/logger"
)

var ErrNotFound = errors.New("preferences not found")

// Preference holds the UI settings a user keeps across sessions.
type Preference struct {
	UserID           string    `json:"userId" gorm:"primaryKey;size:64"`
	Locale           string    `json:"locale" gorm:"size:8"`
	SidebarCollapsed bool      `json:"sidebarCollapsed" gorm:"not null;default:false"`
	CreatedAt        time.Time `json:"createdAt"`
	UpdatedAt        time.Time `json:"updatedAt"`
}

func (Preference) TableName() string {
	return "user_preferences"
}

// Repository defines the contract for preference storage
type Repository interface {
	Find(ctx context.Context, userID string) (*Preference, error)
	Save(ctx context.Context, p *Preference) error
}

type GormRepository struct {
	db *gorm.DB
}

func NewGormRepository(db *gorm.DB) *GormRepository {
	return &GormRepository{db: db}
}

func (r *GormRepository) AutoMigrate() error {
	return r.db.AutoMigrate(&Preference{})
}

func (r *GormRepository) Find(ctx context.Context, userID string) (*Preference, error) {
	var p Preference
	err := r.db.WithContext(ctx).Where("user_id = ?", userID).First(&p).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load preferences: %w", err)
	}
	return &p, nil
}

// Save inserts or replaces the user's row.
func (r *GormRepository) Save(ctx context.Context, p *Preference) error {
	err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"locale", "sidebar_collapsed", "updated_at"}),
		}).
		Create(p).Error
	if err != nil {
		return fmt.Errorf("failed to save preferences: %w", err)
	}
	return nil
}

// NopRepository is used when no database is configured.
type NopRepository struct{}

func (NopRepository) Find(context.Context, string) (*Preference, error) {
	return nil, ErrNotFound
}

func (NopRepository) Save(context.Context, *Preference) error {
	return nil
}

// Restore copies the stored settings of the session's user into s. Missing
// rows leave the session untouched.
func Restore(ctx context.Context, repo Repository, s *session.Session) {
	if s == nil || s.User == nil || s.User.ID == "" {
		return
	}
	p, err := repo.Find(ctx, s.User.ID)
	if err != nil {
		if !errors.Is(err, ErrNotFound) {
			logger.Warn(ctx).Err(err).Str("user_id", s.User.ID).Msg("Failed to restore preferences")
		}
		return
	}
	if p.Locale != "" {
		s.SetLocale(p.Locale)
	}
	s.SetSidebarCollapsed(p.SidebarCollapsed)
}

// Store saves the session's UI settings for its user.
func Store(ctx context.Context, repo Repository, s *session.Session) {
	if s == nil || s.User == nil || s.User.ID == "" {
		return
	}
	p := &Preference{UserID: s.User.ID, Locale: s.Locale, SidebarCollapsed: s.SidebarCollapsed}
	if err := repo.Save(ctx, p); err != nil {
		logger.Warn(ctx).Err(err).Str("user_id", s.User.ID).Msg("Failed to store preferences")
	}
}
