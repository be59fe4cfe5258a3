// Package utils provides shared helpers that do not depend on the rest of the
// application: identifiers and great-circle distance.
package utils

import (
	"github.com/google/uuid"
)

// GenerateID creates a new random (v4) UUID string. Collections and requests
// are identified this way so IDs can be created without any coordination.
func GenerateID() string {
	return uuid.New().String()
}
