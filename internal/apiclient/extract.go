package apiclient

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Response is a successful API response.
type Response struct {
	StatusCode int
	Body       []byte
}

type shape int

const (
	shapeArray shape = iota
	shapeObject
)

// ListPaths returns the lookup order for list payloads keyed by keys.
func ListPaths(keys ...string) [][]string {
	var paths [][]string
	for _, k := range keys {
		paths = append(paths, []string{"data", k})
	}
	paths = append(paths, []string{"data", "items"})
	for _, k := range keys {
		paths = append(paths, []string{k})
	}
	return append(paths, []string{"items"}, []string{"data"}, nil)
}

// ObjectPaths returns the lookup order for single entity payloads keyed by keys.
func ObjectPaths(keys ...string) [][]string {
	var paths [][]string
	for _, k := range keys {
		paths = append(paths, []string{"data", k})
	}
	for _, k := range keys {
		paths = append(paths, []string{k})
	}
	return append(paths, []string{"data", "data"}, []string{"data"}, nil)
}

// DecodeList unmarshals the first array found along ListPaths(keys...) into dst.
// dst is left empty when the body holds no array.
func (r *Response) DecodeList(dst any, keys ...string) error {
	node, ok := extract(r.Body, shapeArray, ListPaths(keys...))
	if !ok {
		node = []byte("[]")
	}
	if err := json.Unmarshal(node, dst); err != nil {
		return fmt.Errorf("failed to decode list: %w", err)
	}
	return nil
}

// DecodeOne unmarshals the first object found along ObjectPaths(keys...) into dst.
func (r *Response) DecodeOne(dst any, keys ...string) error {
	node, ok := extract(r.Body, shapeObject, ObjectPaths(keys...))
	if !ok {
		return fmt.Errorf("failed to decode entity: no object in response")
	}
	if err := json.Unmarshal(node, dst); err != nil {
		return fmt.Errorf("failed to decode entity: %w", err)
	}
	return nil
}

// Extract returns the raw JSON of the first node along paths that is an
// array (wantArray) or an object.
func Extract(raw []byte, wantArray bool, paths [][]string) (json.RawMessage, bool) {
	want := shapeObject
	if wantArray {
		want = shapeArray
	}
	return extract(raw, want, paths)
}

func extract(raw []byte, want shape, paths [][]string) (json.RawMessage, bool) {
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()
	var root any
	if err := dec.Decode(&root); err != nil {
		return nil, false
	}

	for _, path := range paths {
		node, ok := walk(root, path)
		if !ok || !matches(node, want) {
			continue
		}
		out, err := json.Marshal(node)
		if err != nil {
			return nil, false
		}
		return out, true
	}
	return nil, false
}

func walk(node any, path []string) (any, bool) {
	for _, key := range path {
		m, ok := node.(map[string]any)
		if !ok {
			return nil, false
		}
		if node, ok = m[key]; !ok || node == nil {
			return nil, false
		}
	}
	return node, true
}

func matches(node any, want shape) bool {
	switch node.(type) {
	case []any:
		return want == shapeArray
	case map[string]any:
		return want == shapeObject
	}
	return false
}
