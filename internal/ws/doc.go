// Package ws provides the /stream WebSocket for live widget sync.
//
// Widgets push explicit state-change events and the handler answers each one
// with the freshly evaluated state, so the page never recomputes math itself.
//
// Message Types (Client → Server):
//   - state: {"type":"state","widget":"number-classifier"|"unit-circle","value":"..."}
//   - ping: Keep-alive ping
//
// Message Types (Server → Client):
//   - system: Welcome frame carrying the connection ID
//   - result: {"type":"result","widget":...,"result":...}
//   - pong: Reply to ping
//   - error: Bad frame, unknown type or rejected state
//
// Example Usage:
//
//	handler := ws.NewHandler(metrics, logger, cfg.CORS.Origins)
//	router.GET("/stream", handler.HandleConnection)
package ws
