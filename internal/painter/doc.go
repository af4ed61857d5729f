// Package painter learns an image filter with a small feedforward network.
//
// Training pairs come from two images of the same size: for every pixel the
// network sees the 3×3 neighbourhood of the source image (27 channel values)
// and is trained towards the colour of the same pixel in the output image.
// A trained network is then run over any input image to render a preview.
//
// The Session type owns the network and serializes every call into it, so a
// preview may be requested from another goroutine while training runs.
package painter
