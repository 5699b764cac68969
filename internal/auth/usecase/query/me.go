package query

import (
	"context"

	"github.com/Nawaf-Almansour/prep-manger/internal/auth/domain"
	"github.com/Nawaf-Almansour/prep-manger/internal/querycache"
)

// MeQuery asks for the account behind the current token
type MeQuery struct{}

// MeHandler handles the current user query
type MeHandler struct {
	repo  domain.AuthRepository
	cache *querycache.Cache
}

// NewMeHandler creates a new current user handler
func NewMeHandler(repo domain.AuthRepository, cache *querycache.Cache) *MeHandler {
	return &MeHandler{repo: repo, cache: cache}
}

// Handle executes the current user query
func (h *MeHandler) Handle(ctx context.Context, _ MeQuery) (*domain.AuthUser, error) {
	return querycache.Fetch(ctx, h.cache, querycache.Key(ctx, domain.CachePrefix, "me"), h.repo.Me)
}
