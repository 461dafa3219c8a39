// Package id supplies process-unique transaction identifiers. The generator
// is a port so tests can inject a deterministic implementation.
package id

import "github.com/google/uuid"

// Generator produces process-unique identifier strings.
type Generator interface {
	NewID() string
}

// UUID generates random version-4 UUIDs.
type UUID struct{}

func NewUUID() UUID {
	return UUID{}
}

func (UUID) NewID() string {
	return uuid.NewString()
}
