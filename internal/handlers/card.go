package handlers

import (
	"errors"
	"log/slog"
	"math/rand/v2"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	"github.com/vancomm/scratchcard/internal/config"
)

type CardHandler struct {
	logger  *slog.Logger
	card    *config.Card
	ws      *config.WebSocket
	newRand func() *rand.Rand
}

func NewCardHandler(
	logger *slog.Logger,
	card *config.Card,
	ws *config.WebSocket,
	newRand func() *rand.Rand,
) *CardHandler {
	handler := &CardHandler{
		logger:  logger,
		card:    card,
		ws:      ws,
		newRand: newRand,
	}

	return handler
}

func (h CardHandler) Defaults(w http.ResponseWriter, r *http.Request) {
	sendJSONOrLog(w, h.logger, h.card.Defaults)
}

// Connect upgrades to a websocket and plays one card over it. The board lives
// and dies with the connection.
func (h CardHandler) Connect(w http.ResponseWriter, r *http.Request) {
	params, err := ParseCardParamsDTO(r.URL.Query(), h.card.Defaults)
	if err != nil {
		sendErrorOrLog(w, h.logger, http.StatusBadRequest, err)
		return
	}
	if err := h.card.Validate(params); err != nil {
		sendErrorOrLog(w, h.logger, http.StatusBadRequest, err)
		return
	}

	logger := h.logger.With(slog.String("session", uuid.NewString()))

	session, err := newCardSession(logger, h.card, params, h.newRand())
	if err != nil {
		sendErrorOrLog(w, h.logger, http.StatusBadRequest, err)
		return
	}
	defer session.board.Unmount()

	conn, err := h.ws.Upgrader.Upgrade(w, r, nil) // headers sent here
	if err != nil {
		logger.Error("unable to upgrade", slog.Any("error", err))
		return
	}
	defer conn.Close()
	conn.SetReadLimit(h.ws.MaxMessageSize)

	logger.Debug("established ws connection", slog.String("params", params.String()))

	err = session.run(conn)
	switch {
	case err == nil:
	case websocket.IsCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway):
		logger.Debug("ws closed", slog.Any("reason", err))
	case errors.Is(err, errBadCommand):
		logger.Warn("closing ws after bad command", slog.Any("error", err))
	default:
		logger.Warn("abnormal ws break", slog.Any("error", err))
	}
}
