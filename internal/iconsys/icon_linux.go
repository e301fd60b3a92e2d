//go:build linux

package iconsys

/*
#cgo pkg-config: gtk+-3.0
#include <stdlib.h>
#include <string.h>
#include <gtk/gtk.h>
#include <gio/gio.h>

typedef struct {
	unsigned char *pixels;
	int width;
	int height;
	int channels;
	int rowstride;
} fileiconPixbuf;

// Resolves the themed icon for path via its gio content type and loads the
// first name the current theme can supply at the requested size. Returns
// 0 on success, 1 when no icon could be resolved, 2 when no icon theme is
// available. On success the caller frees out->pixels.
static int fileiconLookupIcon(const char *path, int size, fileiconPixbuf *out) {
	GFile *file = g_file_new_for_path(path);
	GFileInfo *info = g_file_query_info(file, G_FILE_ATTRIBUTE_STANDARD_CONTENT_TYPE,
		G_FILE_QUERY_INFO_NONE, NULL, NULL);
	g_object_unref(file);
	if (info == NULL) {
		return 1;
	}
	const char *ctype = g_file_info_get_content_type(info);
	if (ctype == NULL) {
		g_object_unref(info);
		return 1;
	}
	GIcon *icon = g_content_type_get_icon(ctype);
	g_object_unref(info);
	if (icon == NULL) {
		return 1;
	}
	GtkIconTheme *theme = gtk_icon_theme_get_default();
	if (theme == NULL) {
		g_object_unref(icon);
		return 2;
	}
	int status = 1;
	if (G_IS_THEMED_ICON(icon)) {
		const gchar *const *names = g_themed_icon_get_names(G_THEMED_ICON(icon));
		for (int i = 0; names != NULL && names[i] != NULL; i++) {
			GdkPixbuf *pixbuf = gtk_icon_theme_load_icon(theme, names[i], size, 0, NULL);
			if (pixbuf == NULL) {
				continue;
			}
			int height = gdk_pixbuf_get_height(pixbuf);
			int rowstride = gdk_pixbuf_get_rowstride(pixbuf);
			out->pixels = (unsigned char *)malloc((size_t)height * (size_t)rowstride);
			memcpy(out->pixels, gdk_pixbuf_get_pixels(pixbuf), (size_t)height * (size_t)rowstride);
			out->width = gdk_pixbuf_get_width(pixbuf);
			out->height = height;
			out->channels = gdk_pixbuf_get_n_channels(pixbuf);
			out->rowstride = rowstride;
			g_object_unref(pixbuf);
			status = 0;
			break;
		}
	}
	g_object_unref(icon);
	return status;
}
*/
import "C"

import (
	"fmt"
	"sync"
	"unsafe"
)

// GTK is initialized at most once per process and its icon theme calls are
// not thread-safe, so every lookup holds gtkMu.
var (
	gtkMu   sync.Mutex
	gtkOnce sync.Once
	gtkOK   bool
)

func gtkReady() bool {
	gtkOnce.Do(func() {
		gtkOK = C.gtk_init_check(nil, nil) != 0
	})
	return gtkOK
}

// FetchIcon looks the icon up in the current GTK icon theme. Theme lookups
// come back at whatever size the theme actually has; the caller sees the
// real dimensions, not the requested ones.
func FetchIcon(path string, size int) (*Icon, error) {
	gtkMu.Lock()
	defer gtkMu.Unlock()
	if !gtkReady() {
		return nil, fmt.Errorf("%w: gtk_init_check failed", ErrUnavailable)
	}

	cPath := C.CString(path)
	defer C.free(unsafe.Pointer(cPath))

	var data C.fileiconPixbuf
	switch C.fileiconLookupIcon(cPath, C.int(size), &data) {
	case 0:
	case 2:
		return nil, fmt.Errorf("%w: no default icon theme", ErrUnavailable)
	default:
		return nil, fmt.Errorf("%w: %s", ErrNoIcon, path)
	}
	defer C.free(unsafe.Pointer(data.pixels))

	w := int(data.width)
	h := int(data.height)
	raw := C.GoBytes(unsafe.Pointer(data.pixels), C.int(h*int(data.rowstride)))
	pixels, err := packRGBA(raw, w, h, int(data.channels), int(data.rowstride))
	if err != nil {
		return nil, err
	}
	return &Icon{Width: w, Height: h, Pixels: pixels}, nil
}

// Session on this platform carries no per-session resources; the icon theme
// is process-global. It exists so the provider treats every backend the
// same way.
type Session struct {
	size int
}

func NewSession(size int) (*Session, error) {
	gtkMu.Lock()
	ok := gtkReady()
	gtkMu.Unlock()
	if !ok {
		return nil, fmt.Errorf("%w: gtk_init_check failed", ErrUnavailable)
	}
	return &Session{size: size}, nil
}

func (s *Session) Fetch(path string) (*Icon, error) {
	return FetchIcon(path, s.size)
}

func (s *Session) Close() error { return nil }
