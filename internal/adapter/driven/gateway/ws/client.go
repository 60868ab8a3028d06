package ws

import (
	"encoding/json"
	"errors"
	"sync"
	"time"

	"github.com/Wyydra/rendezvous/internal/core/domain"
	"github.com/Wyydra/rendezvous/internal/core/service"
	"github.com/gorilla/websocket"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

const (
	// Time allowed to write a message to the peer.
	writeWait = 10 * time.Second

	// Time allowed to read the next pong message from the peer.
	pongWait = 60 * time.Second

	// Send pings to peer with this period. Must be less than pongWait.
	pingPeriod = (pongWait * 9) / 10
)

// Options tunes per-connection transport behaviour.
type Options struct {
	SendBufferSize int
	ReadLimit      int64
}

// Client wraps a single websocket connection and implements port.Conn for
// the coordinator. All writes to the socket happen on the write pump
// goroutine; Send only enqueues.
type Client struct {
	id    domain.ConnectionID
	conn  *websocket.Conn
	coord *service.Coordinator

	send      chan envelope
	done      chan struct{}
	closeOnce sync.Once
	readLimit int64

	log zerolog.Logger
}

func NewClient(conn *websocket.Conn, coord *service.Coordinator, opts Options) *Client {
	id := domain.NewConnectionID()
	return &Client{
		id:        id,
		conn:      conn,
		coord:     coord,
		send:      make(chan envelope, opts.SendBufferSize),
		done:      make(chan struct{}),
		readLimit: opts.ReadLimit,
		log:       log.With().Str("connection_id", id.String()).Logger(),
	}
}

func (c *Client) ID() domain.ConnectionID {
	return c.id
}

// Send enqueues e for the write pump. It never blocks: when the buffer is
// full or the connection is closing the event is dropped and an error
// returned, which the coordinator treats as loss, not failure.
func (c *Client) Send(e domain.Event) error {
	data, err := json.Marshal(e)
	if err != nil {
		return err
	}

	select {
	case <-c.done:
		return errors.New("connection closed")
	case c.send <- envelope{Event: e.EventName(), Data: data}:
		return nil
	default:
		return errors.New("send buffer full")
	}
}

func (c *Client) Close() error {
	c.closeOnce.Do(func() {
		close(c.done)
	})
	return c.conn.Close()
}

// Run services the connection until it drops: the write pump on its own
// goroutine, the read loop on the caller's. The coordinator's disconnect
// path always runs on exit, which makes transport-level teardown the single
// source of leave events.
func (c *Client) Run() {
	go c.writePump()
	c.readPump()
}

func (c *Client) readPump() {
	defer func() {
		c.coord.Disconnect(c.id)
		if err := c.Close(); err != nil {
			c.log.Debug().Err(err).Msg("Error closing connection")
		}
		c.log.Info().Msg("Client disconnected")
	}()

	c.conn.SetReadLimit(c.readLimit)
	_ = c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		return c.conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		var env envelope
		if err := c.conn.ReadJSON(&env); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure, websocket.CloseNormalClosure) {
				c.log.Error().Err(err).Msg("Unexpected close error")
			}
			return
		}
		c.dispatch(env)
	}
}

func (c *Client) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		_ = c.conn.Close()
	}()

	for {
		select {
		case <-c.done:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			_ = c.conn.WriteMessage(websocket.CloseMessage, []byte{})
			return

		case env := <-c.send:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteJSON(env); err != nil {
				c.log.Debug().Err(err).Str("event", env.Event).Msg("Error writing event")
				return
			}

		case <-ticker.C:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
