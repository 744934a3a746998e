package entity

// Source identifies the publisher an article came from.
// Both fields are optional and never required for validity.
type Source struct {
	ID   *string `json:"id"`
	Name *string `json:"name"`
}

// Equal reports whether both sources carry the same id and name.
func (s Source) Equal(other Source) bool {
	return optEqual(s.ID, other.ID) && optEqual(s.Name, other.Name)
}
