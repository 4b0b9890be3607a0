package common

import (
	"github.com/google/uuid"
)

// NewBuildID generates a unique build invocation ID with the "build_" prefix
// Format: build_<uuid>
func NewBuildID() string {
	return "build_" + uuid.New().String()
}
