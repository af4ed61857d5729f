package painter

import (
	"image"
	"image/color"
	"math"
)

// Feature layout.
const (
	Channels     = 3
	FeatureCount = len(neighbours) * Channels // 27
	OutputCount  = Channels
)

// neighbours lists the sampled offsets, centre pixel first.
var neighbours = [...]image.Point{
	{0, 0},
	{-1, -1},
	{0, -1},
	{1, -1},
	{-1, 0},
	{1, 0},
	{-1, 1},
	{0, 1},
	{1, 1},
}

// Features writes the 3×3 neighbourhood of pixel (x, y) into dst as 27 values
// in [0, 1]. Coordinates are relative to the image bounds; neighbours outside
// the image are clamped to the nearest edge pixel.
func Features(img image.Image, x, y int, dst []float64) {
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()

	for i, off := range neighbours {
		px := clamp(x+off.X, 0, w-1)
		py := clamp(y+off.Y, 0, h-1)
		channels(img.At(b.Min.X+px, b.Min.Y+py), dst[i*Channels:(i+1)*Channels])
	}
}

// channels writes the 8-bit RGB channels of c, scaled to [0, 1].
func channels(c color.Color, dst []float64) {
	rgba := color.RGBAModel.Convert(c).(color.RGBA)
	dst[0] = float64(rgba.R) / 255.0
	dst[1] = float64(rgba.G) / 255.0
	dst[2] = float64(rgba.B) / 255.0
}

// toColor maps network outputs back to an opaque colour.
func toColor(out []float64) color.RGBA {
	return color.RGBA{
		R: toByte(out[0]),
		G: toByte(out[1]),
		B: toByte(out[2]),
		A: 0xff,
	}
}

func toByte(v float64) uint8 {
	v *= 255
	switch {
	case math.IsNaN(v) || v <= 0:
		return 0
	case v >= 255:
		return 255
	default:
		return uint8(v)
	}
}

func clamp(v, lo, hi int) int {
	return max(lo, min(v, hi))
}
