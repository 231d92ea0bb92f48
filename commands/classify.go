package commands

import (
	"github.com/mobile-next/swipecli/gesture"
)

// ClassifyRequest represents the parameters for a classify command
type ClassifyRequest struct {
	Sample gesture.MotionSample
	Config gesture.Config
}

// ClassifyResponse reports whether a sample would be claimed and locked
type ClassifyResponse struct {
	Eligible  bool              `json:"eligible"`
	Direction gesture.Direction `json:"direction"`
	Axis      gesture.Axis      `json:"axis"`
}

// ClassifyCommand evaluates a single motion sample without any session state
func ClassifyCommand(req ClassifyRequest) *CommandResponse {
	direction, axis := gesture.Resolve(req.Sample, req.Config)

	return NewSuccessResponse(ClassifyResponse{
		Eligible:  gesture.ClassifyEligibility(req.Sample, req.Config),
		Direction: direction,
		Axis:      axis,
	})
}
