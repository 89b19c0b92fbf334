package utils

import (
	"github.com/google/uuid"
)

// Entity identifiers travel as UUID strings outside the service and as raw
// 16-byte keys inside the store. Both forms are valid keys; conversion only
// happens at the storage edge, and never requires a transaction.

func ToInternalKey(id string) ([16]byte, error) {
	u, err := uuid.Parse(id)
	if err != nil {
		return [16]byte{}, ErrInvalidIdentifier
	}
	return [16]byte(u), nil
}

func ToExternalID(key []byte) (string, error) {
	u, err := uuid.FromBytes(key)
	if err != nil {
		return "", ErrInvalidIdentifier
	}
	return u.String(), nil
}
