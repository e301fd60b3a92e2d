//go:build darwin

package iconsys

/*
#cgo CFLAGS: -x objective-c
#cgo LDFLAGS: -framework Cocoa
#include <stdlib.h>
#import <Cocoa/Cocoa.h>

static void *fileiconNewBitmap(int size) {
	return [[NSBitmapImageRep alloc]
		initWithBitmapDataPlanes:NULL
		pixelsWide:size
		pixelsHigh:size
		bitsPerSample:8
		samplesPerPixel:4
		hasAlpha:YES
		isPlanar:NO
		colorSpaceName:NSDeviceRGBColorSpace
		bytesPerRow:size * 4
		bitsPerPixel:32];
}

static void fileiconFreeBitmap(void *rep) {
	if (rep) {
		[(NSBitmapImageRep *)rep release];
	}
}

// Draws the workspace icon for path into rep at size x size and copies
// size*size*4 RGBA bytes into out. Returns 0 on success.
static int fileiconRenderIcon(const char *path, void *repPtr, int size, unsigned char *out) {
	int status = 1;
	@autoreleasepool {
		NSBitmapImageRep *rep = (NSBitmapImageRep *)repPtr;
		NSString *file = [NSString stringWithUTF8String:path];
		NSImage *image = [[NSWorkspace sharedWorkspace] iconForFile:file];
		if (image == nil) {
			return 1;
		}
		NSGraphicsContext *context =
			[NSGraphicsContext graphicsContextWithBitmapImageRep:rep];
		if (context == nil) {
			return 1;
		}
		// The bitmap is reused across calls; the graphics state must be
		// restored before returning.
		[NSGraphicsContext saveGraphicsState];
		[NSGraphicsContext setCurrentContext:context];
		[image drawInRect:NSMakeRect(0, 0, size, size)
			fromRect:NSZeroRect
			operation:NSCompositingOperationCopy
			fraction:1.0];
		[context flushGraphics];
		[NSGraphicsContext restoreGraphicsState];
		unsigned char *data = [rep bitmapData];
		if (data != NULL) {
			memcpy(out, data, (size_t)size * (size_t)size * 4);
			status = 0;
		}
	}
	return status;
}
*/
import "C"

import (
	"fmt"
	"unsafe"
)

// Session owns one reusable NSBitmapImageRep sized at construction. Each
// Fetch draws over it in place, which amortizes the bitmap allocation
// across lookups.
type Session struct {
	size int
	rep  unsafe.Pointer
}

func NewSession(size int) (*Session, error) {
	rep := C.fileiconNewBitmap(C.int(size))
	if rep == nil {
		return nil, fmt.Errorf("%w: bitmap allocation failed", ErrUnavailable)
	}
	return &Session{size: size, rep: rep}, nil
}

// Fetch renders the NSWorkspace icon for path. The rep's device RGB layout
// already matches the RGBA contract, so no byte-order fix is needed.
func (s *Session) Fetch(path string) (*Icon, error) {
	cPath := C.CString(path)
	defer C.free(unsafe.Pointer(cPath))

	out := make([]byte, s.size*s.size*4)
	r := C.fileiconRenderIcon(cPath, s.rep, C.int(s.size), (*C.uchar)(unsafe.Pointer(&out[0])))
	if r != 0 {
		return nil, fmt.Errorf("%w: %s", ErrNoIcon, path)
	}
	return &Icon{Width: s.size, Height: s.size, Pixels: out}, nil
}

func (s *Session) Close() error {
	if s.rep != nil {
		C.fileiconFreeBitmap(s.rep)
		s.rep = nil
	}
	return nil
}

// FetchIcon is the one-shot variant with a throwaway bitmap.
func FetchIcon(path string, size int) (*Icon, error) {
	s, err := NewSession(size)
	if err != nil {
		return nil, err
	}
	defer s.Close()
	return s.Fetch(path)
}
