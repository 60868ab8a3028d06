package http

import (
	"net/http"

	"github.com/Wyydra/rendezvous/internal/adapter/driven/gateway/ws"
	"github.com/rs/zerolog/log"
)

// ServeWS upgrades the request and hands the connection to a ws.Client,
// which owns it from here on. The handler goroutine hosts the read loop.
func (h *Handler) ServeWS(w http.ResponseWriter, r *http.Request) {
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Error().Err(err).Msg("Error while upgrading ws")
		return
	}

	client := ws.NewClient(conn, h.coord, ws.Options{
		SendBufferSize: h.cfg.SendBufferSize,
		ReadLimit:      h.cfg.ReadLimit,
	})

	log.Info().Str("connection_id", client.ID().String()).Msg("User connected")
	client.Run()
}
