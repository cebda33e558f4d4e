// uuid simple generator that allows mocking
package uuid

//go:generate mockgen -destination=mock/mock_generator.go -package=mockuuid -source=uuid.go

import (
	"strings"

	"github.com/google/uuid"
)

// SessionIDLength is the length of the short multiplayer session token
const SessionIDLength = 8

// Generator is an interface for generating UUIDs
type Generator interface {
	New() string
}

// GoogleUUIDGenerator implements the Generator interface using Google's UUID package
type GoogleUUIDGenerator struct{}

// New generates a new UUID string
func (g *GoogleUUIDGenerator) New() string {
	return uuid.New().String()
}

// NewGoogleUUIDGenerator creates a new GoogleUUIDGenerator
func NewGoogleUUIDGenerator() *GoogleUUIDGenerator {
	return &GoogleUUIDGenerator{}
}

// SessionIDGenerator produces short upper-case tokens that players can type
// to join a lobby, e.g. "3F9A1C2B".
type SessionIDGenerator struct {
	source Generator
}

// NewSessionIDGenerator wraps source; a nil source uses Google UUIDs.
func NewSessionIDGenerator(source Generator) *SessionIDGenerator {
	if source == nil {
		source = NewGoogleUUIDGenerator()
	}
	return &SessionIDGenerator{source: source}
}

// New returns the first SessionIDLength characters of a fresh UUID, upper-cased
func (g *SessionIDGenerator) New() string {
	id := strings.ToUpper(g.source.New())
	if len(id) > SessionIDLength {
		id = id[:SessionIDLength]
	}
	return id
}
