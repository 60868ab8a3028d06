package domain

import "encoding/json"

// Event is an outbound notification pushed to a connection. The name becomes
// the envelope's event field on the wire; the event value itself is the
// payload.
type Event interface {
	EventName() string
}

// UserConnected tells existing room members that a new user joined.
type UserConnected struct {
	UserID UserID `json:"userId"`
}

func (UserConnected) EventName() string { return "user-connected" }

// RoomUsers is sent to a joining connection only: the other users already in
// the room.
type RoomUsers struct {
	Users []UserID `json:"users"`
}

func (RoomUsers) EventName() string { return "room-users" }

// ChatHistory is sent to a joining connection only: the room's current
// message window, oldest first.
type ChatHistory struct {
	Messages []Message `json:"messages"`
}

func (ChatHistory) EventName() string { return "chat-history" }

// SignalDelivery carries an opaque negotiation payload to exactly one target
// connection. UserID is the sender's claimed identity; the payload is relayed
// verbatim and never inspected.
type SignalDelivery struct {
	UserID UserID          `json:"userId"`
	Signal json.RawMessage `json:"signal"`
}

func (SignalDelivery) EventName() string { return "signal" }

// MessagePosted fans a freshly appended chat message out to every room
// member, sender included.
type MessagePosted struct {
	Message
}

func (MessagePosted) EventName() string { return "new-message" }

// UserDisconnected tells remaining room members that a user left.
type UserDisconnected struct {
	UserID UserID `json:"userId"`
}

func (UserDisconnected) EventName() string { return "user-disconnected" }
