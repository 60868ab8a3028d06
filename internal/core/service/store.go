package service

import (
	"github.com/Wyydra/rendezvous/internal/core/domain"
	"github.com/samber/lo"
)

// RoomInfo is one entry of the directory projection.
type RoomInfo struct {
	ID    domain.RoomID `json:"id"`
	Users int           `json:"users"`
}

// roomStore owns the set of live rooms. Rooms are created lazily on first
// join and deleted atomically with the removal of their last member, so an
// empty room is never observable. Not safe for concurrent use on its own;
// the Coordinator serializes all access.
type roomStore struct {
	rooms map[domain.RoomID]*domain.Room
}

func newRoomStore() *roomStore {
	return &roomStore{
		rooms: make(map[domain.RoomID]*domain.Room),
	}
}

func (s *roomStore) getOrCreate(roomID domain.RoomID) *domain.Room {
	room, ok := s.rooms[roomID]
	if !ok {
		room = domain.NewRoom(roomID)
		s.rooms[roomID] = room
	}
	return room
}

func (s *roomStore) get(roomID domain.RoomID) (*domain.Room, bool) {
	room, ok := s.rooms[roomID]
	return room, ok
}

// removeUser drops userID from the room and deletes the room if that emptied
// it. Returns the room if it still exists afterwards.
func (s *roomStore) removeUser(roomID domain.RoomID, userID domain.UserID) (*domain.Room, bool) {
	room, ok := s.rooms[roomID]
	if !ok {
		return nil, false
	}
	room.RemoveMember(userID)
	if room.Empty() {
		delete(s.rooms, roomID)
		return nil, false
	}
	return room, true
}

// list is a point-in-time snapshot for the directory query.
func (s *roomStore) list() []RoomInfo {
	return lo.MapToSlice(s.rooms, func(id domain.RoomID, room *domain.Room) RoomInfo {
		return RoomInfo{ID: id, Users: room.Size()}
	})
}
