package port

import "github.com/Wyydra/rendezvous/internal/core/domain"

// Conn is the coordinator's view of one live client channel. Send is
// fire-and-forget: implementations must not block the caller, and a send
// failure never fails the operation that triggered it.
type Conn interface {
	ID() domain.ConnectionID
	Send(e domain.Event) error
	Close() error
}
