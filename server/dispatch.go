package server

import (
	"encoding/json"
	"errors"
	"fmt"
)

// MethodShutdown stops the server, it is only served over HTTP
const MethodShutdown = "server.shutdown"

// HandlerFunc is the signature for JSON-RPC method handlers
type HandlerFunc func(params json.RawMessage) (interface{}, error)

// paramsError marks a failure caused by the request parameters
type paramsError struct {
	err error
}

func (e *paramsError) Error() string { return e.err.Error() }

func (e *paramsError) Unwrap() error { return e.err }

func invalidParams(format string, args ...interface{}) error {
	return &paramsError{err: fmt.Errorf(format, args...)}
}

// errorCode maps a handler error to its JSON-RPC code and title
func errorCode(err error) (int, string) {
	var pe *paramsError
	if errors.As(err, &pe) {
		return ErrCodeInvalidParams, errTitleInvalidParams
	}
	return ErrCodeServerError, errTitleServerError
}

// GetMethodRegistry returns a map of method names to handler functions
// This is used by both the HTTP server and embedded clients
func GetMethodRegistry() map[string]HandlerFunc {
	return map[string]HandlerFunc{
		"classify":          handleClassify,
		"replay":            handleReplay,
		"swipe":             handleSwipe,
		"gesture":           handleGesture,
		"profiles":          handleProfiles,
		"session_create":    handleSessionCreate,
		"session_claim":     handleSessionClaim,
		"session_sample":    handleSessionSample,
		"session_terminate": handleSessionTerminate,
		"session_state":     handleSessionState,
		"session_delete":    handleSessionDelete,
	}
}

// Execute dispatches a method call using the registry
// This is the main entry point for embedded clients
func Execute(method string, params json.RawMessage) (interface{}, error) {
	registry := GetMethodRegistry()

	handler, exists := registry[method]
	if !exists {
		return nil, fmt.Errorf("method not found: %s", method)
	}

	return handler(params)
}
