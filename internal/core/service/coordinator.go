package service

import (
	"encoding/json"
	"sync"

	"github.com/Wyydra/rendezvous/internal/core/domain"
	"github.com/Wyydra/rendezvous/internal/core/port"
	"github.com/rs/zerolog/log"
)

// Coordinator is the room/session coordination engine: it owns the room
// store and the connection registry and runs the join, disconnect, relay and
// chat protocols against them. One mutex serializes every operation, so no
// handler ever observes a partially updated room. Outbound events go through
// each connection's fire-and-forget Send; a failed send is logged and
// otherwise ignored.
//
// Anomalies here are benign races, not errors: a missing sender binding, a
// vanished room or an absent relay target are silently dropped. Retries, if
// any, belong to the negotiation layer above.
type Coordinator struct {
	mu    sync.Mutex
	reg   *connRegistry
	rooms *roomStore
	conns map[domain.ConnectionID]port.Conn
}

func NewCoordinator() *Coordinator {
	return &Coordinator{
		reg:   newConnRegistry(),
		rooms: newRoomStore(),
		conns: make(map[domain.ConnectionID]port.Conn),
	}
}

// Join admits conn into roomID as userID. The room is created on first use.
// A duplicate userID in the room is rebound to this connection, never
// rejected. Other members are told about the newcomer; the newcomer gets the
// current member list and the full history window.
func (c *Coordinator) Join(conn port.Conn, roomID domain.RoomID, userID domain.UserID) {
	c.mu.Lock()
	defer c.mu.Unlock()

	room := c.rooms.getOrCreate(roomID)
	room.AddMember(userID, conn.ID())
	c.reg.bind(conn.ID(), userID, roomID)
	c.conns[conn.ID()] = conn

	for _, connID := range room.Connections() {
		if connID == conn.ID() {
			continue
		}
		c.send(connID, domain.UserConnected{UserID: userID})
	}

	c.sendTo(conn, domain.RoomUsers{Users: room.MemberIDs(userID)})
	c.sendTo(conn, domain.ChatHistory{Messages: room.History()})

	log.Info().
		Str("user_id", string(userID)).
		Str("room_id", string(roomID)).
		Int("members", room.Size()).
		Msg("User joined room")
}

// Disconnect tears down whatever conn's binding points at. Safe to call more
// than once for the same connection; the second call finds no binding and
// returns. If removing the user emptied the room there is no one left to
// notify, so no leave event is emitted.
func (c *Coordinator) Disconnect(connID domain.ConnectionID) {
	c.mu.Lock()
	defer c.mu.Unlock()

	delete(c.conns, connID)

	b, ok := c.reg.unbind(connID)
	if !ok {
		return
	}

	room, alive := c.rooms.removeUser(b.roomID, b.userID)
	if alive {
		for _, memberConn := range room.Connections() {
			c.send(memberConn, domain.UserDisconnected{UserID: b.userID})
		}
	}

	log.Info().
		Str("user_id", string(b.userID)).
		Str("room_id", string(b.roomID)).
		Msg("User disconnected")
}

// Relay forwards an opaque negotiation payload from the connection connID to
// targetUserID's current connection in the sender's room. The payload is
// never inspected or logged. All failure modes are stale routes and are
// dropped without notice.
func (c *Coordinator) Relay(connID domain.ConnectionID, userID, targetUserID domain.UserID, signal json.RawMessage) {
	c.mu.Lock()
	defer c.mu.Unlock()

	b, ok := c.reg.lookup(connID)
	if !ok {
		return
	}
	room, ok := c.rooms.get(b.roomID)
	if !ok {
		return
	}
	targetConn, ok := room.Member(targetUserID)
	if !ok {
		return
	}

	c.send(targetConn, domain.SignalDelivery{UserID: userID, Signal: signal})
}

// SendMessage appends a chat message to roomID's history window and fans it
// out to every member, sender included. Dropped if the room does not exist.
func (c *Coordinator) SendMessage(roomID domain.RoomID, userID domain.UserID, body string, timestamp int64) {
	c.mu.Lock()
	defer c.mu.Unlock()

	room, ok := c.rooms.get(roomID)
	if !ok {
		return
	}

	msg := domain.NewMessage(roomID, userID, body, timestamp)
	room.Append(msg)

	for _, connID := range room.Connections() {
		c.send(connID, domain.MessagePosted{Message: msg})
	}
}

// ListRooms snapshots every live room and its member count for the directory
// endpoint.
func (c *Coordinator) ListRooms() []RoomInfo {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.rooms.list()
}

// Close disconnects every tracked connection. Used on shutdown.
func (c *Coordinator) Close() {
	c.mu.Lock()
	conns := make([]port.Conn, 0, len(c.conns))
	for _, conn := range c.conns {
		conns = append(conns, conn)
	}
	c.mu.Unlock()

	for _, conn := range conns {
		if err := conn.Close(); err != nil {
			log.Debug().Err(err).Str("connection_id", conn.ID().String()).Msg("Error closing connection")
		}
	}
}

func (c *Coordinator) send(connID domain.ConnectionID, e domain.Event) {
	conn, ok := c.conns[connID]
	if !ok {
		return
	}
	c.sendTo(conn, e)
}

func (c *Coordinator) sendTo(conn port.Conn, e domain.Event) {
	if err := conn.Send(e); err != nil {
		log.Warn().
			Err(err).
			Str("event", e.EventName()).
			Str("connection_id", conn.ID().String()).
			Msg("Dropped outbound event")
	}
}
