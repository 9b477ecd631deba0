package config

import (
	"fmt"
	"net/http"
	"os"
	"strconv"

	"github.com/gorilla/websocket"
)

const defaultMaxMessageSize = 4096

type WebSocket struct {
	Upgrader       websocket.Upgrader
	MaxMessageSize int64
}

func NewWebSocket() (*WebSocket, error) {
	maxMessageSize := int64(defaultMaxMessageSize)
	if s, ok := os.LookupEnv("WS_MAX_MESSAGE_SIZE"); ok && s != "" {
		n, err := strconv.ParseInt(s, 10, 64)
		if err != nil || n <= 0 {
			return nil, fmt.Errorf("WS_MAX_MESSAGE_SIZE must be a positive integer, got %q", s)
		}
		maxMessageSize = n
	}

	upgrader := websocket.Upgrader{
		CheckOrigin: func(r *http.Request) bool {
			return true
		},
	}

	ws := &WebSocket{
		Upgrader:       upgrader,
		MaxMessageSize: maxMessageSize,
	}

	return ws, nil
}
