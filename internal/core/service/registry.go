package service

import "github.com/Wyydra/rendezvous/internal/core/domain"

// binding is the ownership edge from a transport connection to the logical
// (user, room) it represents. At most one binding exists per connection.
type binding struct {
	userID domain.UserID
	roomID domain.RoomID
}

// connRegistry maps live connection ids to their bindings. Not safe for
// concurrent use on its own; the Coordinator serializes all access.
type connRegistry struct {
	bindings map[domain.ConnectionID]binding
}

func newConnRegistry() *connRegistry {
	return &connRegistry{
		bindings: make(map[domain.ConnectionID]binding),
	}
}

// bind records the binding for connID, overwriting any prior one.
func (r *connRegistry) bind(connID domain.ConnectionID, userID domain.UserID, roomID domain.RoomID) {
	r.bindings[connID] = binding{userID: userID, roomID: roomID}
}

func (r *connRegistry) lookup(connID domain.ConnectionID) (binding, bool) {
	b, ok := r.bindings[connID]
	return b, ok
}

// unbind removes and returns the binding for connID. Unbinding an unknown
// connection is a no-op, not an error.
func (r *connRegistry) unbind(connID domain.ConnectionID) (binding, bool) {
	b, ok := r.bindings[connID]
	if ok {
		delete(r.bindings, connID)
	}
	return b, ok
}
