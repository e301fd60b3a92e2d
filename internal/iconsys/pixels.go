package iconsys

import "fmt"

// bgraToRGBA swaps the blue and red channels in place. Windows DIBs come
// back BGRA; the contract of this package is RGBA, bit-exact.
func bgraToRGBA(p []byte) {
	for i := 0; i+3 < len(p); i += 4 {
		p[i], p[i+2] = p[i+2], p[i]
	}
}

// packRGBA converts a rowstride-padded native buffer into tightly packed
// RGBA. GDK pixbufs report a closed set of layouts, 3-channel RGB or
// 4-channel RGBA; any other channel count is ErrUnsupportedFormat, not a
// reason to crash.
func packRGBA(src []byte, width, height, channels, rowstride int) ([]byte, error) {
	out := make([]byte, width*height*4)
	switch channels {
	case 4:
		for y := 0; y < height; y++ {
			copy(out[y*width*4:(y+1)*width*4], src[y*rowstride:y*rowstride+width*4])
		}
	case 3:
		for y := 0; y < height; y++ {
			row := src[y*rowstride : y*rowstride+width*3]
			for x := 0; x < width; x++ {
				o := (y*width + x) * 4
				out[o+0] = row[x*3+0]
				out[o+1] = row[x*3+1]
				out[o+2] = row[x*3+2]
				out[o+3] = 0xff
			}
		}
	default:
		return nil, fmt.Errorf("%w: %d channels", ErrUnsupportedFormat, channels)
	}
	return out, nil
}
