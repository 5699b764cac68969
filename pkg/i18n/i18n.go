// Package i18n holds the English and Arabic message catalogs of the dashboard.
package i18n

import (
	"embed"
	"encoding/json"
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"

	"golang.org/x/text/language"
)

//go:embed locales/*/*.json
var localeFS embed.FS

const (
	English = "en"
	Arabic  = "ar"
)

var supportedTags = map[string]language.Tag{
	English: language.English,
	Arabic:  language.Arabic,
}

// Translator looks up dotted keys ("nav.dashboard") in per-locale catalogs.
type Translator struct {
	catalogs      map[string]map[string]any
	defaultLocale string
	locales       []string
	matcher       language.Matcher
}

// New loads the embedded catalogs. defaultLocale must be a supported locale;
// anything else falls back to English.
func New(defaultLocale string) (*Translator, error) {
	catalogs, err := loadCatalogs(localeFS, "locales")
	if err != nil {
		return nil, err
	}

	if _, ok := catalogs[defaultLocale]; !ok {
		defaultLocale = English
	}

	locales := make([]string, 0, len(catalogs))
	for loc := range catalogs {
		locales = append(locales, loc)
	}
	sort.Strings(locales)

	// the matcher falls back to its first tag
	tags := []language.Tag{supportedTags[defaultLocale]}
	order := []string{defaultLocale}
	for _, loc := range locales {
		if loc != defaultLocale {
			tags = append(tags, supportedTags[loc])
			order = append(order, loc)
		}
	}

	return &Translator{
		catalogs:      catalogs,
		defaultLocale: defaultLocale,
		locales:       order,
		matcher:       language.NewMatcher(tags),
	}, nil
}

func loadCatalogs(fsys fs.FS, root string) (map[string]map[string]any, error) {
	catalogs := make(map[string]map[string]any)

	for loc := range supportedTags {
		files, err := fs.Glob(fsys, path.Join(root, loc, "*.json"))
		if err != nil {
			return nil, fmt.Errorf("failed to list %s catalog: %w", loc, err)
		}
		merged := make(map[string]any)
		sort.Strings(files)
		for _, file := range files {
			data, err := fs.ReadFile(fsys, file)
			if err != nil {
				return nil, fmt.Errorf("failed to read %s: %w", file, err)
			}
			var messages map[string]any
			if err := json.Unmarshal(data, &messages); err != nil {
				return nil, fmt.Errorf("failed to parse %s: %w", file, err)
			}
			// later files replace whole top-level sections
			for k, v := range messages {
				merged[k] = v
			}
		}
		if len(merged) > 0 {
			catalogs[loc] = merged
		}
	}
	return catalogs, nil
}

// T translates key for locale. Missing keys, non-string leaves and unknown
// locales return the key itself.
func (t *Translator) T(locale, key string) string {
	var node any = t.catalogs[locale]
	if node == nil {
		return key
	}
	for _, part := range strings.Split(key, ".") {
		m, ok := node.(map[string]any)
		if !ok {
			return key
		}
		node = m[part]
	}
	if s, ok := node.(string); ok && s != "" {
		return s
	}
	return key
}

// Dir returns the text direction for locale.
func (t *Translator) Dir(locale string) string {
	if locale == Arabic {
		return "rtl"
	}
	return "ltr"
}

func (t *Translator) Supported(locale string) bool {
	_, ok := t.catalogs[locale]
	return ok
}

// Locales lists the supported locales, default first.
func (t *Translator) Locales() []string {
	return t.locales
}

func (t *Translator) Default() string {
	return t.defaultLocale
}

// Negotiate picks the best supported locale for an Accept-Language header.
func (t *Translator) Negotiate(acceptLanguage string) string {
	if acceptLanguage == "" {
		return t.defaultLocale
	}
	tags, _, err := language.ParseAcceptLanguage(acceptLanguage)
	if err != nil || len(tags) == 0 {
		return t.defaultLocale
	}
	_, index, confidence := t.matcher.Match(tags...)
	if confidence == language.No {
		return t.defaultLocale
	}
	return t.locales[index]
}
