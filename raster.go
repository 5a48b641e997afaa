package vtcore

import (
	"image"

	"golang.org/x/image/draw"
)

// maxImageDimension bounds the width or height this module will accept
// for a single transmitted image before downscaling it, protecting the
// image memory budget from a single oversized Sixel/Kitty payload.
const maxImageDimension = 4096

// clampImageSize downsamples src with a Catmull-Rom filter if either
// dimension exceeds maxImageDimension, preserving aspect ratio. Returns
// the original image unchanged (as RGBA bytes) when it already fits.
func clampImageSize(rgba []byte, width, height uint32) ([]byte, uint32, uint32, bool) {
	if width <= maxImageDimension && height <= maxImageDimension {
		return rgba, width, height, false
	}

	scale := float64(maxImageDimension) / float64(width)
	if hScale := float64(maxImageDimension) / float64(height); hScale < scale {
		scale = hScale
	}
	newW := uint32(float64(width) * scale)
	newH := uint32(float64(height) * scale)
	if newW == 0 {
		newW = 1
	}
	if newH == 0 {
		newH = 1
	}

	src := &image.RGBA{
		Pix:    rgba,
		Stride: int(width) * 4,
		Rect:   image.Rect(0, 0, int(width), int(height)),
	}
	dst := image.NewRGBA(image.Rect(0, 0, int(newW), int(newH)))
	draw.CatmullRom.Scale(dst, dst.Bounds(), src, src.Bounds(), draw.Src, nil)

	return dst.Pix, newW, newH, true
}

// RasterizeToCells resamples a decoded image to exactly cols*cellW by
// rows*cellH pixels using a high-quality Catmull-Rom scaler. Hosts that
// want a single flat bitmap instead of the UV-mapped CellImage fragments
// Terminal assigns automatically can call this directly.
func RasterizeToCells(src image.Image, cols, rows, cellW, cellH int) *image.RGBA {
	dstW, dstH := cols*cellW, rows*cellH
	dst := image.NewRGBA(image.Rect(0, 0, dstW, dstH))
	draw.CatmullRom.Scale(dst, dst.Bounds(), src, src.Bounds(), draw.Over, nil)
	return dst
}
