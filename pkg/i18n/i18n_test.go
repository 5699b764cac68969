package i18n

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTranslate(t *testing.T) {
	tr, err := New(English)
	require.NoError(t, err)

	tests := []struct {
		locale string
		key    string
		want   string
	}{
		{English, "nav.dashboard", "Dashboard"},
		{Arabic, "nav.dashboard", "لوحة التحكم"},
		{English, "users.confirmPassword", "Confirm password"},
		{English, "dashboard.completionRate", "Completion rate"},
		{English, "nav.missing", "nav.missing"},
		{English, "nav", "nav"},
		{"fr", "nav.dashboard", "nav.dashboard"},
		{English, "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.locale+"/"+tt.key, func(t *testing.T) {
			assert.Equal(t, tt.want, tr.T(tt.locale, tt.key))
		})
	}
}

func TestDir(t *testing.T) {
	tr, err := New(English)
	require.NoError(t, err)

	assert.Equal(t, "rtl", tr.Dir(Arabic))
	assert.Equal(t, "ltr", tr.Dir(English))
	assert.Equal(t, "ltr", tr.Dir("fr"))
}

func TestNegotiate(t *testing.T) {
	tr, err := New(English)
	require.NoError(t, err)

	assert.Equal(t, Arabic, tr.Negotiate("ar-SA,ar;q=0.9,en;q=0.5"))
	assert.Equal(t, English, tr.Negotiate("en-GB"))
	assert.Equal(t, English, tr.Negotiate("ja"))
	assert.Equal(t, English, tr.Negotiate(""))
}

func TestDefaultLocaleFallback(t *testing.T) {
	tr, err := New("de")
	require.NoError(t, err)
	assert.Equal(t, English, tr.Default())

	ar, err := New(Arabic)
	require.NoError(t, err)
	assert.Equal(t, Arabic, ar.Negotiate("ja"))
	assert.Equal(t, []string{Arabic, English}, ar.Locales())
}

func TestCatalogsHaveSameSections(t *testing.T) {
	tr, err := New(English)
	require.NoError(t, err)

	for section := range tr.catalogs[English] {
		_, ok := tr.catalogs[Arabic][section]
		assert.True(t, ok, "arabic catalog misses section %s", section)
	}
}
