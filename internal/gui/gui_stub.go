//go:build !ebiten

package gui

import (
	"errors"
	"time"

	"tgol/internal/app"
)

// ErrUnavailable is returned when the binary was built without the ebiten tag.
var ErrUnavailable = errors.New("gui: windowed front-end requires building with -tags ebiten")

// Run always fails in builds without the ebiten tag.
func Run(*app.Controller, int, time.Duration) error {
	return ErrUnavailable
}
