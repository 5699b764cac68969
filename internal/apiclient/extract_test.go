package apiclient

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type widget struct {
	Identity
	Name string `json:"name"`
}

func TestDecodeListPaths(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"data.plural", `{"data":{"widgets":[{"_id":"a1","name":"one"}]}}`},
		{"data.items", `{"data":{"items":[{"_id":"a1","name":"one"}]}}`},
		{"plural", `{"widgets":[{"_id":"a1","name":"one"}]}`},
		{"items", `{"items":[{"_id":"a1","name":"one"}]}`},
		{"data", `{"success":true,"data":[{"_id":"a1","name":"one"}]}`},
		{"root", `[{"_id":"a1","name":"one"}]`},
		{"id only", `[{"id":"a1","name":"one"}]`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := &Response{Body: []byte(tt.body)}
			var got []widget
			require.NoError(t, resp.DecodeList(&got, "widgets"))
			got = NormalizeIDs(got)

			require.Len(t, got, 1)
			assert.Equal(t, "a1", got[0].ID)
			assert.Equal(t, "one", got[0].Name)
		})
	}
}

func TestDecodeListPrefersArrayOverObject(t *testing.T) {
	// data is an object holding the array, not an array itself.
	resp := &Response{Body: []byte(`{"data":{"total":2,"widgets":[{"_id":"a"},{"_id":"b"}]}}`)}
	var got []widget
	require.NoError(t, resp.DecodeList(&got, "widgets"))
	assert.Len(t, got, 2)
}

func TestDecodeListWithoutArrayIsEmpty(t *testing.T) {
	resp := &Response{Body: []byte(`{"success":true,"data":{"count":0}}`)}
	var got []widget
	require.NoError(t, resp.DecodeList(&got, "widgets"))
	assert.Empty(t, got)
}

func TestDecodeOnePaths(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"data.singular", `{"data":{"widget":{"_id":"w","name":"n"}}}`},
		{"singular", `{"widget":{"_id":"w","name":"n"}}`},
		{"data.data", `{"data":{"data":{"_id":"w","name":"n"}}}`},
		{"data", `{"data":{"_id":"w","name":"n"}}`},
		{"root", `{"_id":"w","name":"n"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := &Response{Body: []byte(tt.body)}
			var got widget
			require.NoError(t, resp.DecodeOne(&got, "widget"))
			got.NormalizeID()
			assert.Equal(t, "w", got.ID)
			assert.Equal(t, "n", got.Name)
		})
	}
}

func TestIdentityPrefersUnderscoreID(t *testing.T) {
	id := Identity{ID: "plain", RawID: "mongo"}
	id.NormalizeID()
	assert.Equal(t, "mongo", id.ID)
	assert.Equal(t, "mongo", id.GetID())
}

func TestIsObjectID(t *testing.T) {
	assert.True(t, IsObjectID("64b7f0c2a1b2c3d4e5f60718"))
	assert.False(t, IsObjectID("64b7f0c2a1b2c3d4e5f6071"))
	assert.False(t, IsObjectID("64b7f0c2a1b2c3d4e5f6071z"))
}
