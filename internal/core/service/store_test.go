package service

import (
	"testing"

	"github.com/Wyydra/rendezvous/internal/core/domain"
	"github.com/stretchr/testify/require"
)

func TestRoomStore_GetOrCreateIsLazy(t *testing.T) {
	store := newRoomStore()

	_, ok := store.get("r1")
	require.False(t, ok)

	room := store.getOrCreate("r1")
	require.Equal(t, domain.RoomID("r1"), room.ID)
	require.Same(t, room, store.getOrCreate("r1"))
}

func TestRoomStore_RemoveUserDeletesEmptiedRoomAtomically(t *testing.T) {
	store := newRoomStore()
	room := store.getOrCreate("r1")
	room.AddMember("alice", "c1")
	room.AddMember("bob", "c2")

	survivor, alive := store.removeUser("r1", "alice")
	require.True(t, alive)
	require.Equal(t, 1, survivor.Size())

	_, alive = store.removeUser("r1", "bob")
	require.False(t, alive)

	// The emptied room is gone, not observable as existing.
	_, ok := store.get("r1")
	require.False(t, ok)
	require.Empty(t, store.list())
}

func TestRoomStore_RemoveUserFromUnknownRoom(t *testing.T) {
	store := newRoomStore()
	_, alive := store.removeUser("nope", "alice")
	require.False(t, alive)
}

func TestConnRegistry_BindLookupUnbind(t *testing.T) {
	reg := newConnRegistry()

	_, ok := reg.lookup("c1")
	require.False(t, ok)

	reg.bind("c1", "alice", "r1")
	b, ok := reg.lookup("c1")
	require.True(t, ok)
	require.Equal(t, binding{userID: "alice", roomID: "r1"}, b)

	// Rebinding overwrites.
	reg.bind("c1", "alice", "r2")
	b, _ = reg.lookup("c1")
	require.Equal(t, domain.RoomID("r2"), b.roomID)

	b, ok = reg.unbind("c1")
	require.True(t, ok)
	require.Equal(t, domain.UserID("alice"), b.userID)

	_, ok = reg.unbind("c1")
	require.False(t, ok)
}
