package model

import (
	"github.com/btcsuite/btcutil/base58"
	"github.com/google/uuid"
)

// CreateID mints a base58-encoded random identifier for persisted records.
func CreateID() string {
	id := uuid.New()
	return base58.Encode(id[:])
}
