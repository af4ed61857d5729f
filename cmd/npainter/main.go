// Package main provides the npainter CLI.
//
// npainter learns an image filter from a pair of images and applies it to a
// third one:
//
//	npainter -source before.png -target after.png -input photo.png -out result.png
//
// Interrupting the program (Ctrl+C) stops training and still writes the
// latest preview.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"image"
	"log"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"time"

	"github.com/npainter/npainter/internal/nn"
	"github.com/npainter/npainter/internal/painter"
)

const version = "v0.1.0"

func main() {
	source := flag.String("source", "", "Training source image")
	target := flag.String("target", "", "Training output image (same size as -source)")
	input := flag.String("input", "", "Image to run the learned filter on (default: -source)")
	out := flag.String("out", "result.png", "Where to write the rendered PNG")
	passes := flag.Int("passes", 100, "Number of training passes over the source image")
	hidden := flag.String("hidden", "8", "Comma-separated hidden layer widths")
	lr := flag.Float64("lr", nn.DefaultLearningRate, "Learning rate")
	momentum := flag.Float64("momentum", nn.DefaultMomentum, "Momentum factor")
	seed := flag.Int64("seed", -1, "Weight initialization seed (-1 = random)")
	applyUpdates := flag.Bool("apply-updates", false, "Apply weight updates after each gradient pass")
	previewEvery := flag.Int("preview-every", 1, "Render the preview every N passes (0 = only at the end)")
	workers := flag.Int("workers", 0, "Worker goroutines for pixel work (0 = NumCPU)")
	showVersion := flag.Bool("version", false, "Show version")
	flag.Parse()

	if *showVersion {
		fmt.Printf("npainter %s\n", version)
		return
	}

	if *source == "" || *target == "" {
		fmt.Fprintln(os.Stderr, "npainter: -source and -target are required")
		flag.Usage()
		os.Exit(2)
	}
	if *input == "" {
		*input = *source
	}

	topology, err := parseTopology(*hidden)
	if err != nil {
		log.Fatalf("Invalid -hidden: %v", err)
	}

	cfg := painter.DefaultConfig()
	cfg.Topology = topology
	cfg.Network.LearningRate = *lr
	cfg.Network.Momentum = *momentum
	cfg.Network.Seed = *seed
	cfg.Network.ApplyWeightUpdates = *applyUpdates
	if *workers > 0 {
		cfg.Parallel.NumWorkers = *workers
		cfg.Parallel.Enabled = *workers > 1
	}

	sourceImg, err := painter.LoadImage(*source)
	if err != nil {
		log.Fatalf("Failed to load training source: %v", err)
	}
	targetImg, err := painter.LoadImage(*target)
	if err != nil {
		log.Fatalf("Failed to load training output: %v", err)
	}
	inputImg, err := painter.LoadImage(*input)
	if err != nil {
		log.Fatalf("Failed to load input image: %v", err)
	}

	data, err := painter.BuildDataset(sourceImg, targetImg, cfg.Parallel)
	if err != nil {
		log.Fatalf("Failed to build training data: %v", err)
	}

	fmt.Printf("npainter %s\n", version)
	fmt.Printf("   Topology: %v\n", topology)
	fmt.Printf("   Samples: %d\n", len(data))
	fmt.Printf("   Learning rate: %.3f, momentum: %.3f, weight updates: %v\n", *lr, *momentum, *applyUpdates)

	var session *painter.Session
	cfg.OnPass = func(r painter.PassResult) {
		fmt.Printf("Pass %3d/%d: recent average error=%.6f (%v)\n",
			r.Pass, *passes, r.RecentAverageError, r.Elapsed.Round(time.Millisecond))
		if *previewEvery > 0 && r.Pass%*previewEvery == 0 {
			if err := render(session, inputImg, *out); err != nil {
				log.Printf("Preview failed: %v", err)
			}
		}
	}

	session, err = painter.NewSession(cfg)
	if err != nil {
		log.Fatalf("Failed to create session: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	err = session.Train(ctx, data, *passes)
	switch {
	case errors.Is(err, context.Canceled):
		fmt.Printf("Stopped after %d passes\n", session.Passes())
	case err != nil:
		log.Fatalf("Training failed: %v", err)
	}

	if err := render(session, inputImg, *out); err != nil {
		log.Fatalf("Failed to render result: %v", err)
	}
	fmt.Printf("Wrote %s\n", *out)
}

func render(session *painter.Session, input image.Image, path string) error {
	img, err := session.Preview(input)
	if err != nil {
		return err
	}
	return painter.SavePNG(path, img)
}

// parseTopology turns "8" or "16,8" into [27, hidden..., 3].
func parseTopology(hidden string) ([]int, error) {
	topology := []int{painter.FeatureCount}
	for _, field := range strings.Split(hidden, ",") {
		width, err := strconv.Atoi(strings.TrimSpace(field))
		if err != nil {
			return nil, fmt.Errorf("layer width %q: %w", field, err)
		}
		topology = append(topology, width)
	}
	return append(topology, painter.OutputCount), nil
}
