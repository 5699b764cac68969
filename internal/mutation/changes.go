package mutation

import (
	"context"
	"strings"

	"github.com/Nawaf-Almansour/prep-manger/internal/querycache"
	"github.com/Nawaf-Almansour/prep-manger/kafka"
	"github.com/Nawaf-Almansour/prep-manger/pkg/logger"
)

// prefixesByResource maps upstream resource names, singular or plural, to the
// cache prefixes holding their reads.
var prefixesByResource = map[string][]string{
	"task":       {"tasks"},
	"tasks":      {"tasks"},
	"comment":    {"comments"},
	"comments":   {"comments"},
	"inventory":  {"inventory"},
	"item":       {"inventory"},
	"items":      {"inventory"},
	"product":    {"products"},
	"products":   {"products"},
	"category":   {"categories"},
	"categories": {"categories"},
	"user":       {"users", "auth"},
	"users":      {"users", "auth"},
}

var allPrefixes = []string{"tasks", "comments", "inventory", "products", "categories", "users", "auth"}

// PrefixesFor returns the cache prefixes to drop for a changed resource. An
// unknown resource drops everything.
func PrefixesFor(resource string) []string {
	if p, ok := prefixesByResource[strings.ToLower(strings.TrimSpace(resource))]; ok {
		return p
	}
	return allPrefixes
}

// OnChange invalidates cached reads when the API reports a change made
// outside the dashboard.
func OnChange(cache *querycache.Cache) kafka.ChangeHandler {
	return func(ctx context.Context, event kafka.ResourceChangedEvent) error {
		prefixes := PrefixesFor(event.Resource)
		cache.Invalidate(ctx, prefixes...)
		logger.Debug(ctx).
			Str("resource", event.Resource).
			Str("resource_id", event.ResourceID).
			Strs("prefixes", prefixes).
			Msg("Invalidated cache for upstream change")
		return nil
	}
}
