// iconview shows a grid of platform-native icons for the files in a
// directory. Icon size, window geometry, and an optional doublestar name
// filter come from the iconview config file.
package main

import (
	"bytes"
	"flag"
	"fmt"
	"image"
	"image/png"
	"log"
	"os"
	"path/filepath"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
	"github.com/bmatcuk/doublestar/v4"

	"fileicon"
	"fileicon/internal/config"
)

// Global debug flag
var debugMode bool

// debugPrint prints debug messages only when debug mode is enabled
func debugPrint(format string, args ...interface{}) {
	if debugMode {
		log.Printf("DEBUG: "+format, args...)
	}
}

// toResource converts a raw icon into a static fyne resource. Conversion
// runs once per cache miss; the resource is shared across grid cells.
func toResource(icon fileicon.Icon) fyne.Resource {
	img := image.NewRGBA(image.Rect(0, 0, icon.Width, icon.Height))
	copy(img.Pix, icon.Pixels)
	buf := &bytes.Buffer{}
	if err := png.Encode(buf, img); err != nil {
		return theme.FileIcon()
	}
	return fyne.NewStaticResource(fmt.Sprintf("icon-%dx%d", icon.Width, icon.Height), buf.Bytes())
}

func main() {
	dir := flag.String("dir", ".", "directory to display")
	flag.BoolVar(&debugMode, "debug", false, "enable debug output")
	flag.Parse()

	cfg, err := config.NewManager().Load()
	if err != nil {
		log.Fatalf("iconview: %v", err)
	}

	provider, err := fileicon.NewProvider(cfg.View.IconSize, toResource)
	if err != nil {
		log.Fatalf("iconview: %v", err)
	}
	defer provider.Close()
	provider.SetDebug(debugPrint)

	entries, err := os.ReadDir(*dir)
	if err != nil {
		log.Fatalf("iconview: %v", err)
	}

	a := app.New()
	w := a.NewWindow("iconview - " + *dir)

	var items []fyne.CanvasObject
	for _, entry := range entries {
		name := entry.Name()
		if !cfg.View.ShowHiddenFiles && strings.HasPrefix(name, ".") {
			continue
		}
		if cfg.View.Filter != "" && !entry.IsDir() {
			ok, err := doublestar.Match(cfg.View.Filter, name)
			if err != nil {
				log.Fatalf("iconview: bad filter %q: %v", cfg.View.Filter, err)
			}
			if !ok {
				continue
			}
		}

		// Directories get the theme folder icon; the provider would call
		// through to the OS for every one of them.
		res := fyne.Resource(theme.FolderIcon())
		if !entry.IsDir() {
			r, err := provider.GetFileIcon(filepath.Join(*dir, name))
			if err != nil {
				debugPrint("no icon for %s: %v", name, err)
				r = theme.FileIcon()
			}
			res = r
		}

		icon := widget.NewIcon(res)
		label := widget.NewLabel(name)
		label.Truncation = fyne.TextTruncateEllipsis
		items = append(items, container.NewVBox(icon, label))
	}

	cell := float32(cfg.View.IconSize * 2)
	grid := container.NewGridWrap(fyne.NewSize(cell, cell+24), items...)
	w.SetContent(container.NewScroll(grid))
	w.Resize(fyne.NewSize(float32(cfg.Window.Width), float32(cfg.Window.Height)))
	w.ShowAndRun()
}
