package entity

import "github.com/oklog/ulid/v2"

// IDLength is the length of a generated entity identity.
const IDLength = ulid.EncodedSize

// NewID returns a new lexicographically sortable identity (ULID).
func NewID() string {
	return ulid.Make().String()
}
