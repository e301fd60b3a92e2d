// Package fileicon retrieves the platform-native icon associated with a
// filesystem path and exposes it as raw RGBA pixel data.
//
// GetFileIcon performs a one-shot, uncached lookup. Provider wraps the same
// lookup with an extension-keyed cache and reuses platform resources across
// calls, which is the right tool when rendering directory listings.
//
// Backends: the Windows shell (SHGetFileInfo + GDI), Cocoa (NSWorkspace),
// and the GTK icon theme. Windows and Cocoa render at exactly the requested
// size; GTK theme lookups may return a different size, which is preserved in
// the returned Icon rather than silently rescaled.
package fileicon

import (
	"errors"
	"os"

	"fileicon/internal/iconsys"
)

// Icon is a decoded file icon. Pixels holds Width*Height*4 bytes in RGBA
// order. Treat it as immutable once returned.
type Icon struct {
	Width  int
	Height int
	Pixels []byte
}

// GetFileIcon retrieves the icon for path at the requested square size in
// pixels. The path must exist; size must be at least 1. Every call round
// trips through the OS — use Provider to amortize repeated lookups.
func GetFileIcon(path string, size int) (*Icon, error) {
	const op = "GetFileIcon"
	if size < 1 {
		return nil, newSizeError(op)
	}
	if _, err := os.Lstat(path); err != nil {
		return nil, newPathError(op, path, err)
	}
	raw, err := iconsys.FetchIcon(path, size)
	if err != nil {
		return nil, newPlatformError(op, path, platformKind(err), err)
	}
	return fromRaw(raw), nil
}

func fromRaw(raw *iconsys.Icon) *Icon {
	return &Icon{
		Width:  raw.Width,
		Height: raw.Height,
		Pixels: raw.Pixels,
	}
}

func platformKind(err error) ErrorKind {
	if errors.Is(err, iconsys.ErrUnsupportedFormat) {
		return KindUnsupportedFormat
	}
	return KindFailed
}
