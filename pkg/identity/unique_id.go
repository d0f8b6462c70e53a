package identity

import "github.com/google/uuid"

// UniqueID is the opaque identity of an entity.
// Two ids are equal iff their underlying strings are equal.
type UniqueID struct {
	value string
}

// New generates a fresh random identity (UUID v4)
func New() UniqueID {
	return UniqueID{value: uuid.NewString()}
}

// From wraps an existing value, e.g. an id read back from storage.
// An empty string yields the zero UniqueID.
func From(value string) UniqueID {
	return UniqueID{value: value}
}

func (id UniqueID) String() string {
	return id.value
}

func (id UniqueID) Equals(other UniqueID) bool {
	return id.value == other.value
}

// IsZero reports whether the id carries no value
func (id UniqueID) IsZero() bool {
	return id.value == ""
}
