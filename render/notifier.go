package render

import (
	"errors"

	"github.com/gogpu/scenic/backend"
)

// ErrNotifierAlreadySet is returned when a second rendering notifier is
// registered. The first registration stays in effect.
var ErrNotifierAlreadySet = errors.New("render: rendering notifier already set")

// RenderingState identifies a frame lifecycle point delivered to a
// rendering notifier.
type RenderingState int

const (
	// RenderingSetup fires once before the first frame.
	RenderingSetup RenderingState = iota
	// BeforeRendering fires after the scene is reset and cleared, before
	// the item tree walk.
	BeforeRendering
	// AfterRendering fires after the scene has been submitted.
	AfterRendering
	// RenderingTeardown fires once when the renderer is closed.
	RenderingTeardown
)

func (s RenderingState) String() string {
	switch s {
	case RenderingSetup:
		return "RenderingSetup"
	case BeforeRendering:
		return "BeforeRendering"
	case AfterRendering:
		return "AfterRendering"
	case RenderingTeardown:
		return "RenderingTeardown"
	default:
		return "unknown"
	}
}

// RenderingNotifier receives frame lifecycle notifications. The api
// argument exposes raw GPU handles when the backend has them, and is nil
// otherwise. It is only valid for the duration of the call.
type RenderingNotifier interface {
	Notify(state RenderingState, api *backend.GraphicsAPI)
}

// RenderingNotifierFunc adapts a function to the RenderingNotifier
// interface.
type RenderingNotifierFunc func(state RenderingState, api *backend.GraphicsAPI)

func (f RenderingNotifierFunc) Notify(state RenderingState, api *backend.GraphicsAPI) {
	f(state, api)
}
