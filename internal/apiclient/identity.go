package apiclient

// Identity is embedded by every entity. The API may return the identifier as
// "_id" or "id"; NormalizeID settles it into ID.
type Identity struct {
	ID    string `json:"id,omitempty"`
	RawID string `json:"_id,omitempty"`
}

func (i *Identity) NormalizeID() {
	if i.RawID != "" {
		i.ID = i.RawID
	}
}

// GetID returns the normalized identifier.
func (i Identity) GetID() string {
	if i.RawID != "" {
		return i.RawID
	}
	return i.ID
}

type normalizer[T any] interface {
	*T
	NormalizeID()
}

// NormalizeIDs normalizes every element of items in place and returns it.
func NormalizeIDs[T any, PT normalizer[T]](items []T) []T {
	for i := range items {
		PT(&items[i]).NormalizeID()
	}
	return items
}
