package domain

// Message is an immutable chat event stored in a room's history window.
// The timestamp is caller-supplied and treated as opaque; the id is
// server-generated. The body is tagged "message" on the wire.
type Message struct {
	ID        MessageID `json:"id"`
	RoomID    RoomID    `json:"roomId"`
	UserID    UserID    `json:"userId"`
	Body      string    `json:"message"`
	Timestamp int64     `json:"timestamp"`
}

func NewMessage(roomID RoomID, userID UserID, body string, timestamp int64) Message {
	return Message{
		ID:        NewMessageID(),
		RoomID:    roomID,
		UserID:    userID,
		Body:      body,
		Timestamp: timestamp,
	}
}
