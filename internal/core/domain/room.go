package domain

import (
	"github.com/samber/lo"
)

// HistoryLimit is the per-room sliding window: once a room's history reaches
// this size the oldest message is evicted on every append.
const HistoryLimit = 100

// Room tracks current membership and the bounded chat history of one named
// room. A room only exists while it has at least one member; the store that
// owns it deletes it the moment the last member leaves.
type Room struct {
	ID      RoomID
	members map[UserID]ConnectionID
	history []Message
}

func NewRoom(id RoomID) *Room {
	return &Room{
		ID:      id,
		members: make(map[UserID]ConnectionID),
	}
}

// AddMember registers userID under connID. A second join with the same
// userID silently rebinds it to the new connection (last writer wins).
func (r *Room) AddMember(userID UserID, connID ConnectionID) {
	r.members[userID] = connID
}

// RemoveMember drops userID from the membership. Removing an unknown user is
// a no-op.
func (r *Room) RemoveMember(userID UserID) {
	delete(r.members, userID)
}

// Member returns the current connection for userID, if any.
func (r *Room) Member(userID UserID) (ConnectionID, bool) {
	connID, ok := r.members[userID]
	return connID, ok
}

// MemberIDs returns the user ids of all current members except the one given.
func (r *Room) MemberIDs(except UserID) []UserID {
	return lo.Filter(lo.Keys(r.members), func(id UserID, _ int) bool {
		return id != except
	})
}

// Connections returns the connection ids of every current member.
func (r *Room) Connections() []ConnectionID {
	return lo.Values(r.members)
}

func (r *Room) Size() int {
	return len(r.members)
}

func (r *Room) Empty() bool {
	return len(r.members) == 0
}

// Append adds msg to the history, evicting the oldest entry once the window
// is full.
func (r *Room) Append(msg Message) {
	r.history = append(r.history, msg)
	if len(r.history) > HistoryLimit {
		r.history = r.history[1:]
	}
}

// History returns a copy of the message window, oldest first. Callers get
// values, never the backing slice.
func (r *Room) History() []Message {
	out := make([]Message, len(r.history))
	copy(out, r.history)
	return out
}
