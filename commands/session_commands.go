package commands

import (
	"fmt"

	"github.com/mobile-next/swipecli/gesture"
)

// sessionRegistry holds the live sessions used by the session commands.
// It is set once at application startup via SetRegistry.
var sessionRegistry *SessionRegistry

// SetRegistry sets the global session registry.
// This should be called once at application startup (main.go or server.go).
func SetRegistry(registry *SessionRegistry) {
	sessionRegistry = registry
}

// GetRegistry returns the current session registry.
// Returns nil if SetRegistry has not been called yet.
func GetRegistry() *SessionRegistry {
	return sessionRegistry
}

func registryOrError() (*SessionRegistry, error) {
	if sessionRegistry == nil {
		return nil, fmt.Errorf("session registry is not initialized")
	}
	return sessionRegistry, nil
}

// SessionRequest addresses an existing session
type SessionRequest struct {
	SessionID string
}

// SessionSampleRequest represents the parameters for delivering samples
type SessionSampleRequest struct {
	SessionID string
	Samples   []gesture.MotionSample
}

// SessionCreateCommand starts a new live session
func SessionCreateCommand(c gesture.Config) *CommandResponse {
	registry, err := registryOrError()
	if err != nil {
		return NewErrorResponse(err)
	}
	return NewSuccessResponse(registry.Create(c))
}

// SessionClaimCommand asks whether a session would claim the sample
func SessionClaimCommand(req SessionSampleRequest) *CommandResponse {
	registry, err := registryOrError()
	if err != nil {
		return NewErrorResponse(err)
	}

	if len(req.Samples) != 1 {
		return NewErrorResponse(fmt.Errorf("exactly one sample is required, got %d", len(req.Samples)))
	}

	claim, err := registry.Claim(req.SessionID, req.Samples[0])
	if err != nil {
		return NewErrorResponse(err)
	}

	return NewSuccessResponse(map[string]interface{}{
		"sessionId": req.SessionID,
		"claim":     claim,
	})
}

// SessionSampleCommand delivers motion samples to a session
func SessionSampleCommand(req SessionSampleRequest) *CommandResponse {
	registry, err := registryOrError()
	if err != nil {
		return NewErrorResponse(err)
	}

	if len(req.Samples) == 0 {
		return NewErrorResponse(fmt.Errorf("at least one sample is required"))
	}

	res, err := registry.Sample(req.SessionID, req.Samples...)
	if err != nil {
		return NewErrorResponse(err)
	}
	return NewSuccessResponse(res)
}

// SessionTerminateCommand ends the current interaction of a session
func SessionTerminateCommand(req SessionRequest) *CommandResponse {
	registry, err := registryOrError()
	if err != nil {
		return NewErrorResponse(err)
	}

	res, err := registry.Terminate(req.SessionID)
	if err != nil {
		return NewErrorResponse(err)
	}
	return NewSuccessResponse(res)
}

// SessionStateCommand reports the snapshot of a session
func SessionStateCommand(req SessionRequest) *CommandResponse {
	registry, err := registryOrError()
	if err != nil {
		return NewErrorResponse(err)
	}

	res, err := registry.State(req.SessionID)
	if err != nil {
		return NewErrorResponse(err)
	}
	return NewSuccessResponse(res)
}

// SessionDeleteCommand terminates and forgets a session
func SessionDeleteCommand(req SessionRequest) *CommandResponse {
	registry, err := registryOrError()
	if err != nil {
		return NewErrorResponse(err)
	}

	res, err := registry.Delete(req.SessionID)
	if err != nil {
		return NewErrorResponse(err)
	}
	return NewSuccessResponse(res)
}
