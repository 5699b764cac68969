package apiclient

import (
	"bytes"
	"encoding/json"
)

// Ref is a reference to another entity. The API sends it either as a bare id
// or as the populated document.
type Ref struct {
	ID   string
	Name string
}

func (r *Ref) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*r = Ref{}
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var id string
		if err := json.Unmarshal(data, &id); err != nil {
			return err
		}
		*r = Ref{ID: id}
		return nil
	}

	var doc struct {
		Identity
		Name string `json:"name"`
	}
	if err := json.Unmarshal(data, &doc); err != nil {
		return err
	}
	*r = Ref{ID: doc.GetID(), Name: doc.Name}
	return nil
}

// MarshalJSON writes the bare id, or the document form when a name is known.
func (r Ref) MarshalJSON() ([]byte, error) {
	if r.Name == "" {
		return json.Marshal(r.ID)
	}
	return json.Marshal(map[string]string{"_id": r.ID, "name": r.Name})
}
