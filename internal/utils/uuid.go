package utils

import (
	"github.com/google/uuid"
)

// NewAccountID generates a new time-ordered UUID (version 7) for use as an
// account identifier. Version 7 identifiers sort by creation time, which keeps
// primary-key inserts append-only on the storage side.
//
// Falls back to a random UUID (version 4) in the unlikely case the system
// entropy source fails to produce a v7 value.
func NewAccountID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}
	return id.String()
}
