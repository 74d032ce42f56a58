// Package ports defines the interfaces between the kiosk screens and the
// infrastructure they rely on (media loading, desktop notifications).
package ports

import (
	"context"
	"time"
)

// Animation is a sequence of text frames played once at startup.
type Animation struct {
	Frames   []string
	Interval time.Duration
}

// SplashPlayer loads the startup animation.
// This is a driven port (implemented by adapters).
type SplashPlayer interface {
	// Load returns the animation to play. It runs off the UI loop and must
	// not touch screen state. A failed load makes the kiosk skip the splash.
	Load(ctx context.Context) (*Animation, error)
}
