package domain

import (
	"github.com/google/uuid"
)

// UserID and RoomID are opaque, client-chosen identifiers. The server never
// generates them and never enforces global uniqueness; a UserID is unique
// within a room only.
type UserID string

type RoomID string

// ConnectionID identifies a single live transport channel. Assigned by the
// server on upgrade, unique for the lifetime of the connection.
type ConnectionID string

func NewConnectionID() ConnectionID {
	return ConnectionID(uuid.New().String())
}

func (id ConnectionID) String() string {
	return string(id)
}

type MessageID string

func NewMessageID() MessageID {
	return MessageID(uuid.New().String())
}

func (id MessageID) String() string {
	return string(id)
}
