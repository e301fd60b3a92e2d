//go:build windows

package iconsys

import (
	"fmt"
	"syscall"
	"unsafe"

	"fileicon/internal/icondispatch"
)

// Windows icon extraction using SHGetFileInfo and GDI to render the HICON
// into a 32-bit DIB at the requested size. All shell and GDI work runs on
// the shared COM worker thread (see com_windows.go).

var (
	modShell32         = syscall.NewLazyDLL("shell32.dll")
	procSHGetFileInfoW = modShell32.NewProc("SHGetFileInfoW")

	modUser32       = syscall.NewLazyDLL("user32.dll")
	procDestroyIcon = modUser32.NewProc("DestroyIcon")
	procDrawIconEx  = modUser32.NewProc("DrawIconEx")

	modGdi32               = syscall.NewLazyDLL("gdi32.dll")
	procCreateCompatibleDC = modGdi32.NewProc("CreateCompatibleDC")
	procDeleteDC           = modGdi32.NewProc("DeleteDC")
	procCreateDIBSection   = modGdi32.NewProc("CreateDIBSection")
	procSelectObject       = modGdi32.NewProc("SelectObject")
	procDeleteObject       = modGdi32.NewProc("DeleteObject")
)

const (
	SHGFI_ICON      = 0x000000100
	SHGFI_LARGEICON = 0x000000000

	DI_NORMAL      = 0x0003
	DIB_RGB_COLORS = 0
	BI_RGB         = 0
)

type shfileinfoW struct {
	hIcon         syscall.Handle
	iIcon         int32
	dwAttributes  uint32
	szDisplayName [260]uint16
	szTypeName    [80]uint16
}

type bitmapinfoheader struct {
	biSize          uint32
	biWidth         int32
	biHeight        int32
	biPlanes        uint16
	biBitCount      uint16
	biCompression   uint32
	biSizeImage     uint32
	biXPelsPerMeter int32
	biYPelsPerMeter int32
	biClrUsed       uint32
	biClrImportant  uint32
}

type bitmapinfo struct {
	bmiHeader bitmapinfoheader
	// No color table needed for 32-bit BI_RGB
}

// Session holds a reference to the shared COM worker. Concurrent callers
// serialize FIFO through its request channel.
type Session struct {
	size int
	disp *icondispatch.Dispatcher
}

// NewSession acquires the COM worker thread, starting it and initializing
// its apartment on first acquire.
func NewSession(size int) (*Session, error) {
	d, err := acquireShellThread()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	return &Session{size: size, disp: d}, nil
}

// Fetch retrieves the icon for path on the COM worker thread.
func (s *Session) Fetch(path string) (*Icon, error) {
	var icon *Icon
	var ferr error
	if err := s.disp.Do(func() { icon, ferr = extractIcon(path, s.size) }); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	return icon, ferr
}

// Close drops this session's reference to the COM worker.
func (s *Session) Close() error {
	releaseShellThread()
	return nil
}

// FetchIcon is the one-shot variant: acquire, fetch, release.
func FetchIcon(path string, size int) (*Icon, error) {
	s, err := NewSession(size)
	if err != nil {
		return nil, err
	}
	defer s.Close()
	return s.Fetch(path)
}

// extractIcon must run on the COM worker thread.
func extractIcon(path string, size int) (*Icon, error) {
	var sfi shfileinfoW
	pPath, err := syscall.UTF16PtrFromString(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNoIcon, err)
	}
	r1, _, _ := procSHGetFileInfoW.Call(
		uintptr(unsafe.Pointer(pPath)),
		0,
		uintptr(unsafe.Pointer(&sfi)),
		uintptr(uint32(unsafe.Sizeof(sfi))),
		uintptr(uint32(SHGFI_ICON|SHGFI_LARGEICON)),
	)
	if r1 == 0 || sfi.hIcon == 0 {
		return nil, fmt.Errorf("%w: SHGetFileInfoW returned no icon", ErrNoIcon)
	}
	defer procDestroyIcon.Call(uintptr(sfi.hIcon))

	pixels, err := renderHICON(sfi.hIcon, size)
	if err != nil {
		return nil, err
	}
	return &Icon{Width: size, Height: size, Pixels: pixels}, nil
}

// renderHICON draws the icon into a 32-bit top-down DIB at size x size and
// returns the pixels as RGBA.
func renderHICON(hicon syscall.Handle, size int) ([]byte, error) {
	hdc, _, _ := procCreateCompatibleDC.Call(0)
	if hdc == 0 {
		return nil, fmt.Errorf("%w: CreateCompatibleDC failed", ErrNoIcon)
	}
	defer procDeleteDC.Call(hdc)

	var bmi bitmapinfo
	bmi.bmiHeader.biSize = uint32(unsafe.Sizeof(bmi.bmiHeader))
	bmi.bmiHeader.biWidth = int32(size)
	bmi.bmiHeader.biHeight = -int32(size) // top-down
	bmi.bmiHeader.biPlanes = 1
	bmi.bmiHeader.biBitCount = 32
	bmi.bmiHeader.biCompression = BI_RGB

	var bits unsafe.Pointer
	hbmp, _, _ := procCreateDIBSection.Call(
		hdc,
		uintptr(unsafe.Pointer(&bmi)),
		DIB_RGB_COLORS,
		uintptr(unsafe.Pointer(&bits)),
		0,
		0,
	)
	if hbmp == 0 || bits == nil {
		return nil, fmt.Errorf("%w: CreateDIBSection failed", ErrNoIcon)
	}
	defer procDeleteObject.Call(hbmp)

	oldObj, _, _ := procSelectObject.Call(hdc, hbmp)
	defer func() {
		if oldObj != 0 {
			procSelectObject.Call(hdc, oldObj)
		}
	}()

	ok, _, _ := procDrawIconEx.Call(
		hdc,
		0, 0,
		uintptr(hicon),
		uintptr(size), uintptr(size),
		0,
		0,
		DI_NORMAL,
	)
	if ok == 0 {
		return nil, fmt.Errorf("%w: DrawIconEx failed", ErrNoIcon)
	}

	// DIB sections are BGRA; copy out and fix the byte order.
	pixels := copyCBytes(bits, size*size*4)
	bgraToRGBA(pixels)
	return pixels, nil
}

// copyCBytes copies n bytes of C memory into a Go slice without cgo.
func copyCBytes(p unsafe.Pointer, n int) []byte {
	b := make([]byte, n)
	copy(b, unsafe.Slice((*byte)(p), n))
	return b
}
