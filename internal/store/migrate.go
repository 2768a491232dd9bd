package store

import (
	"encoding/json"
	"errors"
	"io/fs"

	"waten-backend/internal/models"
)

// MigrateOrdersFile rewrites a legacy bare-array orders file into the
// canonical {"orders": [...]} wrapper. Runs once at boot; the read path
// keeps tolerating both shapes, so a failed migration is not fatal.
// Returns true when a rewrite happened.
func MigrateOrdersFile(blob Blob) (bool, error) {
	raw, err := blob.Read()
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return false, nil
		}
		return false, err
	}

	var legacy []models.Order
	if err := json.Unmarshal(raw, &legacy); err != nil {
		// Not a bare array; already canonical or malformed.
		return false, nil
	}

	data, err := json.MarshalIndent(ordersFile{Orders: legacy}, "", "  ")
	if err != nil {
		return false, err
	}
	if err := blob.Write(data); err != nil {
		return false, err
	}
	return true, nil
}
