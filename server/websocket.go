package server

import (
	"encoding/json"
	"net/http"
	"net/url"
	"sync"

	"github.com/gorilla/websocket"
	"github.com/mobile-next/swipecli/commands"
	"github.com/mobile-next/swipecli/utils"
)

// swipe event notifications pushed over WebSocket
const (
	notifySwipeBegin = "swipe.begin"
	notifySwipeMove  = "swipe.move"
	notifySwipeEnd   = "swipe.end"
)

type wsConnection struct {
	conn    *websocket.Conn
	writeMu sync.Mutex

	// sessions created over this connection, deleted when it closes
	sessions map[string]struct{}
}

func newUpgrader(enableCORS bool) *websocket.Upgrader {
	upgrader := websocket.Upgrader{
		ReadBufferSize:  1024,
		WriteBufferSize: 1024,
	}

	if enableCORS {
		upgrader.CheckOrigin = func(r *http.Request) bool {
			return true
		}
	} else {
		upgrader.CheckOrigin = isSameOrigin
	}

	return &upgrader
}

// NewWebSocketHandler returns a handler that upgrades requests and serves
// JSON-RPC over the connection
func NewWebSocketHandler(enableCORS bool) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		handleWebSocket(w, r, enableCORS)
	})
}

func handleWebSocket(w http.ResponseWriter, r *http.Request, enableCORS bool) {
	conn, err := newUpgrader(enableCORS).Upgrade(w, r, nil)
	if err != nil {
		utils.Error("WebSocket upgrade failed: %v", err)
		return
	}
	defer conn.Close()

	wsConn := &wsConnection{conn: conn, sessions: make(map[string]struct{})}
	defer wsConn.closeSessions()

	for {
		messageType, message, err := conn.ReadMessage()
		if err != nil {
			// connection closed or error
			utils.Verbose("WebSocket connection closed: %v", err)
			break
		}

		if messageType != websocket.TextMessage {
			_ = wsConn.sendError(nil, ErrCodeInvalidRequest, errTitleInvalidReq, "only text messages accepted for requests")
			continue
		}

		handleWSMessage(wsConn, message)
	}
}

func isSameOrigin(r *http.Request) bool {
	origin := r.Header.Get("Origin")
	if origin == "" {
		return true
	}

	originURL, err := url.Parse(origin)
	if err != nil {
		return false
	}

	return originURL.Host == r.Host
}

func handleWSMessage(wsConn *wsConnection, message []byte) {
	var req JSONRPCRequest
	if err := json.Unmarshal(message, &req); err != nil {
		_ = wsConn.sendError(nil, ErrCodeParseError, errTitleParseError, errMsgParseError)
		return
	}

	if req.JSONRPC != "2.0" {
		_ = wsConn.sendError(req.ID, ErrCodeInvalidRequest, errTitleInvalidReq, errMsgInvalidJSONRPC)
		return
	}

	if req.ID == nil {
		_ = wsConn.sendError(nil, ErrCodeInvalidRequest, errTitleInvalidReq, errMsgIDRequired)
		return
	}

	if req.Method == "" {
		_ = wsConn.sendError(req.ID, ErrCodeInvalidRequest, errTitleInvalidReq, errMsgMethodRequired)
		return
	}

	// shutting down is only accepted on the HTTP endpoint
	if req.Method == MethodShutdown {
		_ = wsConn.sendError(req.ID, ErrCodeMethodNotFound, "Method not supported", "server.shutdown not supported over WebSocket, use HTTP /rpc endpoint")
		return
	}

	utils.Info("WebSocket Request ID: %v, Method: %s, Params: %s", req.ID, req.Method, string(req.Params))

	handleWSMethodCall(wsConn, req)
}

func handleWSMethodCall(wsConn *wsConnection, req JSONRPCRequest) {
	registry := GetMethodRegistry()
	handler, exists := registry[req.Method]
	if !exists {
		_ = wsConn.sendError(req.ID, ErrCodeMethodNotFound, errTitleNotFound, req.Method+" not found")
		return
	}

	result, err := handler(req.Params)
	if err != nil {
		utils.Error("Error executing method %s: %v", req.Method, err)
		code, title := errorCode(err)
		_ = wsConn.sendError(req.ID, code, title, err.Error())
		return
	}

	if res, ok := result.(commands.SessionResult); ok {
		wsConn.track(req.Method, res.ID)
		wsConn.notify(res)
	}

	_ = wsConn.sendResponse(req.ID, result)
}

func (wsc *wsConnection) track(method, id string) {
	switch method {
	case "session_create":
		wsc.sessions[id] = struct{}{}
	case "session_delete":
		delete(wsc.sessions, id)
	}
}

// notify pushes one notification per emitted swipe event
func (wsc *wsConnection) notify(res commands.SessionResult) {
	for _, event := range res.Events {
		method := notifySwipeMove
		switch event.Type {
		case commands.EventBegin:
			method = notifySwipeBegin
		case commands.EventEnd:
			method = notifySwipeEnd
		}

		_ = wsc.sendJSON(JSONRPCNotification{
			JSONRPC: "2.0",
			Method:  method,
			Params: map[string]interface{}{
				"sessionId": res.ID,
				"event":     event,
			},
		})
	}
}

func (wsc *wsConnection) closeSessions() {
	registry := commands.GetRegistry()
	if registry == nil {
		return
	}

	for id := range wsc.sessions {
		if _, err := registry.Delete(id); err != nil {
			utils.Verbose("session %s already gone: %v", id, err)
		}
	}
}

func (wsc *wsConnection) sendResponse(id interface{}, result interface{}) error {
	response := JSONRPCResponse{
		JSONRPC: "2.0",
		Result:  result,
		ID:      id,
	}
	return wsc.sendJSON(response)
}

func (wsc *wsConnection) sendError(id interface{}, code int, message string, data interface{}) error {
	response := JSONRPCResponse{
		JSONRPC: "2.0",
		Error: map[string]interface{}{
			"code":    code,
			"message": message,
			"data":    data,
		},
		ID: id,
	}
	return wsc.sendJSON(response)
}

func (wsc *wsConnection) sendJSON(v interface{}) error {
	wsc.writeMu.Lock()
	defer wsc.writeMu.Unlock()
	return wsc.conn.WriteJSON(v)
}
