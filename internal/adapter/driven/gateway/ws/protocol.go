package ws

import (
	"encoding/json"

	"github.com/Wyydra/rendezvous/internal/core/domain"
	"github.com/go-playground/validator/v10"
)

// envelope is the wire frame in both directions: an event name plus its
// payload.
type envelope struct {
	Event string          `json:"event"`
	Data  json.RawMessage `json:"data"`
}

// Inbound requests form a closed protocol surface; anything that fails to
// decode or validate is a malformed-event drop, never a teardown.
type joinRequest struct {
	RoomID string `json:"roomId" validate:"required"`
	UserID string `json:"userId" validate:"required"`
}

type signalRequest struct {
	UserID       string          `json:"userId" validate:"required"`
	TargetUserID string          `json:"targetUserId" validate:"required"`
	Signal       json.RawMessage `json:"signal"`
}

type sendMessageRequest struct {
	RoomID    string `json:"roomId" validate:"required"`
	UserID    string `json:"userId" validate:"required"`
	Message   string `json:"message"`
	Timestamp int64  `json:"timestamp"`
}

var validate = validator.New()

func (c *Client) dispatch(env envelope) {
	switch env.Event {
	case "join-room":
		var req joinRequest
		if !c.decode(env, &req) {
			return
		}
		c.coord.Join(c, domain.RoomID(req.RoomID), domain.UserID(req.UserID))

	case "signal":
		var req signalRequest
		if !c.decode(env, &req) {
			return
		}
		c.coord.Relay(c.id, domain.UserID(req.UserID), domain.UserID(req.TargetUserID), req.Signal)

	case "send-message":
		var req sendMessageRequest
		if !c.decode(env, &req) {
			return
		}
		c.coord.SendMessage(domain.RoomID(req.RoomID), domain.UserID(req.UserID), req.Message, req.Timestamp)

	default:
		c.log.Warn().Str("event", env.Event).Msg("Unknown event")
	}
}

func (c *Client) decode(env envelope, req any) bool {
	if err := json.Unmarshal(env.Data, req); err != nil {
		c.log.Warn().Err(err).Str("event", env.Event).Msg("Malformed event payload")
		return false
	}
	if err := validate.Struct(req); err != nil {
		c.log.Warn().Err(err).Str("event", env.Event).Msg("Invalid event payload")
		return false
	}
	return true
}
