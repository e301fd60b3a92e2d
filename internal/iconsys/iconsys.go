// Package iconsys wraps the per-platform icon lookup primitive.
//
// Each target platform contributes one implementation of the same contract:
// FetchIcon for one-shot lookups, and Session for callers that look up many
// icons and want the platform resources (COM worker thread, reusable Cocoa
// bitmap) kept alive between calls. Pixel data always crosses this boundary
// as tightly packed RGBA; native byte orders are corrected here.
package iconsys

import "errors"

// Icon is a raw decoded icon: Pixels is Width*Height*4 bytes, RGBA.
type Icon struct {
	Width  int
	Height int
	Pixels []byte
}

var (
	// ErrUnavailable means the platform icon subsystem could not be
	// initialized or is missing on this build target.
	ErrUnavailable = errors.New("iconsys: platform icon subsystem unavailable")

	// ErrNoIcon means the platform produced no icon for the path.
	ErrNoIcon = errors.New("iconsys: no icon for path")

	// ErrUnsupportedFormat means the platform handed back pixels in a
	// layout outside the closed set this package understands.
	ErrUnsupportedFormat = errors.New("iconsys: unsupported native pixel format")
)
