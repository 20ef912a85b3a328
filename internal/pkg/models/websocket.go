package models

import (
	"encoding/json"
	"sync"

	"github.com/golang-jwt/jwt/v4"
	"github.com/gorilla/websocket"
)

// WebSocketClient represents a connected dashboard session
type WebSocketClient struct {
	SessionID  string
	BusinessID string
	Conn       *websocket.Conn

	writeMu sync.Mutex
}

// WriteJSON writes one message to the session's connection. The websocket
// library allows a single concurrent writer, and a session is written to by
// both broadcast goroutines and its own read loop, so writes serialize here.
func (c *WebSocketClient) WriteJSON(v interface{}) error {
	c.writeMu.Lock()
	defer c.writeMu.Unlock()
	if c.Conn == nil {
		return nil
	}
	return c.Conn.WriteJSON(v)
}

// WebSocketClaims are the JWT claims carried by dashboard tokens
type WebSocketClaims struct {
	BusinessID string `json:"business_id"`
	jwt.RegisteredClaims
}

// WSMessage is the envelope for all websocket messages
type WSMessage struct {
	Event string          `json:"event"`
	Data  json.RawMessage `json:"data"`
}

// CreateSessionRequest asks for a dashboard websocket credential
type CreateSessionRequest struct {
	BusinessID string `json:"business_id"`
}

// DashboardSession carries an issued websocket credential
type DashboardSession struct {
	Token     string `json:"token"`
	ExpiresIn int    `json:"expires_in"` // seconds
}

// WSErrorMessage is the payload for error events
type WSErrorMessage struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}
