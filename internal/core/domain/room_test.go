package domain

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRoom_AddMember_LastWriterWins(t *testing.T) {
	room := NewRoom("r1")

	room.AddMember("alice", "conn-1")
	room.AddMember("alice", "conn-2")

	require.Equal(t, 1, room.Size())

	connID, ok := room.Member("alice")
	require.True(t, ok)
	require.Equal(t, ConnectionID("conn-2"), connID)
}

func TestRoom_RemoveMember(t *testing.T) {
	room := NewRoom("r1")
	room.AddMember("alice", "conn-1")
	room.AddMember("bob", "conn-2")

	room.RemoveMember("alice")
	require.Equal(t, 1, room.Size())
	require.False(t, room.Empty())

	// Removing an unknown user is a no-op.
	room.RemoveMember("alice")
	require.Equal(t, 1, room.Size())

	room.RemoveMember("bob")
	require.True(t, room.Empty())
}

func TestRoom_MemberIDs_ExcludesGivenUser(t *testing.T) {
	room := NewRoom("r1")
	room.AddMember("alice", "conn-1")
	room.AddMember("bob", "conn-2")

	others := room.MemberIDs("alice")
	require.Equal(t, []UserID{"bob"}, others)

	require.Empty(t, NewRoom("r2").MemberIDs("alice"))
}

func TestRoom_Append_EvictsOldestPastWindow(t *testing.T) {
	room := NewRoom("r1")

	for i := 1; i <= HistoryLimit+1; i++ {
		room.Append(NewMessage("r1", "alice", fmt.Sprintf("msg-%d", i), int64(i)))
	}

	history := room.History()
	require.Len(t, history, HistoryLimit)
	require.Equal(t, "msg-2", history[0].Body)
	require.Equal(t, fmt.Sprintf("msg-%d", HistoryLimit+1), history[len(history)-1].Body)

	// Relative order survives eviction.
	for i := 1; i < len(history); i++ {
		require.Less(t, history[i-1].Timestamp, history[i].Timestamp)
	}
}

func TestRoom_History_ReturnsCopy(t *testing.T) {
	room := NewRoom("r1")
	room.Append(NewMessage("r1", "alice", "hello", 1))

	first := room.History()
	first[0].Body = "mutated"

	require.Equal(t, "hello", room.History()[0].Body)
}

func TestNewMessage_GeneratesUniqueIDs(t *testing.T) {
	a := NewMessage("r1", "alice", "hello", 1)
	b := NewMessage("r1", "alice", "hello", 1)
	require.NotEqual(t, a.ID, b.ID)
}
