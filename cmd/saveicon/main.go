// saveicon fetches platform-native file icons and writes them out as PNGs.
//
// Single file:
//
//	saveicon -size 64 -out icon.png path/to/file.txt
//
// Batch mode walks a directory with a doublestar pattern and saves one PNG
// per match through a shared provider, so files sharing an extension cost
// one OS lookup. With a .zip output the PNGs are bundled into an archive:
//
//	saveicon -size 32 -match '**/*.go' -out icons.zip ./src
package main

import (
	"context"
	"flag"
	"fmt"
	"image"
	"image/png"
	"io/fs"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/mholt/archives"
	xdraw "golang.org/x/image/draw"

	"fileicon"
)

var debugMode bool

// debugPrint prints debug messages only when debug mode is enabled
func debugPrint(format string, args ...interface{}) {
	if debugMode {
		log.Printf("DEBUG: "+format, args...)
	}
}

func main() {
	size := flag.Int("size", 64, "icon edge length in pixels")
	out := flag.String("out", "icon.png", "output PNG, directory, or .zip archive (batch mode)")
	match := flag.String("match", "", "doublestar pattern; walks the path as a directory tree")
	exact := flag.Bool("exact", false, "rescale theme-sized icons to exactly -size")
	flag.BoolVar(&debugMode, "debug", false, "enable debug output")
	flag.Parse()

	if flag.NArg() != 1 {
		fmt.Fprintf(os.Stderr, "Usage: %s [flags] path\n", os.Args[0])
		flag.PrintDefaults()
		os.Exit(2)
	}
	path := flag.Arg(0)

	var err error
	if *match == "" {
		err = saveOne(path, *size, *out, *exact)
	} else {
		err = saveBatch(path, *match, *size, *out, *exact)
	}
	if err != nil {
		log.Fatalf("saveicon: %v", err)
	}
}

func saveOne(path string, size int, out string, exact bool) error {
	icon, err := fileicon.GetFileIcon(path, size)
	if err != nil {
		return err
	}
	img := toRGBA(*icon)
	if exact {
		img = scaleTo(img, size)
	}
	debugPrint("saving %dx%d icon for %s to %s", img.Bounds().Dx(), img.Bounds().Dy(), path, out)
	return writePNG(out, img)
}

func saveBatch(root, pattern string, size int, out string, exact bool) error {
	provider, err := fileicon.NewProvider(size, toRGBA)
	if err != nil {
		return err
	}
	defer provider.Close()
	provider.SetDebug(debugPrint)

	zipOut := strings.EqualFold(filepath.Ext(out), ".zip")
	outDir := out
	if zipOut {
		outDir, err = os.MkdirTemp("", "saveicon")
		if err != nil {
			return err
		}
		defer os.RemoveAll(outDir)
	}
	if err := os.MkdirAll(outDir, 0755); err != nil {
		return err
	}

	// Maps written PNG paths to their name inside the archive.
	written := make(map[string]string)
	walkErr := doublestar.GlobWalk(os.DirFS(root), pattern, func(rel string, d fs.DirEntry) error {
		if d.IsDir() {
			return nil
		}
		full := filepath.Join(root, filepath.FromSlash(rel))
		icon, err := provider.GetFileIcon(full)
		if err != nil {
			debugPrint("skipping %s: %v", full, err)
			return nil
		}
		img := icon
		if exact {
			img = scaleTo(img, size)
		}
		name := pngName(rel)
		dst := filepath.Join(outDir, name)
		if err := writePNG(dst, img); err != nil {
			return err
		}
		written[dst] = name
		return nil
	})
	if walkErr != nil {
		return walkErr
	}
	if len(written) == 0 {
		return fmt.Errorf("no files matched %q under %s", pattern, root)
	}
	log.Printf("saved %d icons", len(written))

	if zipOut {
		return bundleZip(out, written)
	}
	return nil
}

func toRGBA(icon fileicon.Icon) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, icon.Width, icon.Height))
	copy(img.Pix, icon.Pixels)
	return img
}

// scaleTo resamples src to size x size. Windows and Cocoa already render at
// the requested size; this only kicks in for GTK theme lookups that came
// back at the theme's own size.
func scaleTo(src *image.RGBA, size int) *image.RGBA {
	if src.Bounds().Dx() == size && src.Bounds().Dy() == size {
		return src
	}
	dst := image.NewRGBA(image.Rect(0, 0, size, size))
	xdraw.CatmullRom.Scale(dst, dst.Bounds(), src, src.Bounds(), xdraw.Src, nil)
	return dst
}

func writePNG(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// pngName flattens a relative path into a single PNG file name.
func pngName(rel string) string {
	flat := strings.NewReplacer("/", "_", "\\", "_").Replace(rel)
	return flat + ".png"
}

func bundleZip(out string, written map[string]string) error {
	ctx := context.Background()
	files, err := archives.FilesFromDisk(ctx, nil, written)
	if err != nil {
		return err
	}
	f, err := os.Create(out)
	if err != nil {
		return err
	}
	if err := (archives.Zip{}).Archive(ctx, f, files); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
