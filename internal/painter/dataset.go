package painter

import (
	"fmt"
	"image"

	"github.com/npainter/npainter/internal/parallel"
)

// Sample is one training pair.
type Sample struct {
	Inputs  []float64 // FeatureCount neighbourhood values
	Targets []float64 // OutputCount target channels
}

// Dataset holds one sample per pixel in row-major order.
type Dataset []Sample

// BuildDataset pairs every pixel's source neighbourhood with the colour of
// the same pixel in output.
func BuildDataset(source, output image.Image, cfg parallel.Config) (Dataset, error) {
	sb, ob := source.Bounds(), output.Bounds()
	if sb.Empty() {
		return nil, ErrEmptyImage
	}
	if sb.Dx() != ob.Dx() || sb.Dy() != ob.Dy() {
		return nil, fmt.Errorf("%w: source %dx%d, output %dx%d",
			ErrImageSizeMismatch, sb.Dx(), sb.Dy(), ob.Dx(), ob.Dy())
	}

	w, h := sb.Dx(), sb.Dy()
	inputs := make([]float64, w*h*FeatureCount)
	targets := make([]float64, w*h*OutputCount)
	data := make(Dataset, w*h)

	parallel.ForPixels(w, h, func(x, y int) {
		i := y*w + x
		in := inputs[i*FeatureCount : (i+1)*FeatureCount : (i+1)*FeatureCount]
		out := targets[i*OutputCount : (i+1)*OutputCount : (i+1)*OutputCount]

		Features(source, x, y, in)
		channels(output.At(ob.Min.X+x, ob.Min.Y+y), out)

		data[i] = Sample{Inputs: in, Targets: out}
	}, cfg)

	return data, nil
}
