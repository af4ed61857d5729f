package painter

import (
	"context"
	"fmt"
	"image"
	"sync"
	"time"

	"github.com/npainter/npainter/internal/nn"
	"github.com/npainter/npainter/internal/parallel"
)

// Config configures a painting session.
type Config struct {
	// Topology of the network. First entry must be FeatureCount, last OutputCount.
	Topology []int

	// Network holds learning rate, momentum, seeding and the update toggle.
	Network nn.Config

	// Parallel controls feature extraction and pixel write-back.
	Parallel parallel.Config

	// OnPass is called after every completed training pass.
	OnPass func(PassResult)
}

// DefaultConfig returns a [27, 8, 3] network with default training settings.
func DefaultConfig() Config {
	return Config{
		Topology: []int{FeatureCount, 8, OutputCount},
		Network:  nn.DefaultConfig(),
		Parallel: parallel.DefaultConfig(),
	}
}

// PassResult reports the state after one pass over the dataset.
type PassResult struct {
	Pass               int           // 1-based pass number
	Samples            int           // Samples trained in this pass
	RecentAverageError float64       // Smoothed error after the pass
	Elapsed            time.Duration // Wall time of the pass
}

// Session owns a network and serializes every call into it.
type Session struct {
	mu     sync.Mutex
	net    *nn.Network
	cfg    Config
	passes int
}

// NewSession creates a session with a freshly initialized network.
func NewSession(cfg Config) (*Session, error) {
	if len(cfg.Topology) > 0 &&
		(cfg.Topology[0] != FeatureCount || cfg.Topology[len(cfg.Topology)-1] != OutputCount) {
		return nil, fmt.Errorf("%w: need [%d, ..., %d], got %v",
			ErrTopologyMismatch, FeatureCount, OutputCount, cfg.Topology)
	}

	net, err := nn.NewNetwork(cfg.Topology, cfg.Network)
	if err != nil {
		return nil, fmt.Errorf("failed to create network: %w", err)
	}

	return &Session{net: net, cfg: cfg}, nil
}

// Passes returns the number of completed training passes.
func (s *Session) Passes() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.passes
}

// RecentAverageError returns the network's smoothed training error.
func (s *Session) RecentAverageError() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.net.RecentAverageError()
}

// Train runs passes full passes over data, one Train call per sample.
//
// The context is checked between samples. On cancellation the pass in
// progress is abandoned and ctx.Err() is returned wrapped.
func (s *Session) Train(ctx context.Context, data Dataset, passes int) error {
	if len(data) == 0 {
		return ErrNoTrainingData
	}

	for p := 0; p < passes; p++ {
		start := time.Now()
		if err := s.trainPass(ctx, data); err != nil {
			return err
		}

		s.mu.Lock()
		s.passes++
		result := PassResult{
			Pass:               s.passes,
			Samples:            len(data),
			RecentAverageError: s.net.RecentAverageError(),
			Elapsed:            time.Since(start),
		}
		s.mu.Unlock()

		if s.cfg.OnPass != nil {
			s.cfg.OnPass(result)
		}
	}
	return nil
}

func (s *Session) trainPass(ctx context.Context, data Dataset) error {
	for i, sample := range data {
		if err := ctx.Err(); err != nil {
			return fmt.Errorf("training stopped at sample %d: %w", i, err)
		}

		s.mu.Lock()
		err := s.net.Train(sample.Inputs, sample.Targets)
		s.mu.Unlock()

		if err != nil {
			return fmt.Errorf("sample %d: %w", i, err)
		}
	}
	return nil
}

// Preview runs the network over every pixel of input and returns the
// rendered image, anchored at the origin.
func (s *Session) Preview(input image.Image) (*image.RGBA, error) {
	b := input.Bounds()
	if b.Empty() {
		return nil, ErrEmptyImage
	}
	w, h := b.Dx(), b.Dy()

	features := make([]float64, w*h*FeatureCount)
	parallel.ForPixels(w, h, func(x, y int) {
		i := y*w + x
		Features(input, x, y, features[i*FeatureCount:(i+1)*FeatureCount])
	}, s.cfg.Parallel)

	outputs := make([][]float64, w*h)

	s.mu.Lock()
	for i := range outputs {
		out, err := s.net.Evaluate(features[i*FeatureCount : (i+1)*FeatureCount])
		if err != nil {
			s.mu.Unlock()
			return nil, fmt.Errorf("pixel %d: %w", i, err)
		}
		outputs[i] = out
	}
	s.mu.Unlock()

	result := image.NewRGBA(image.Rect(0, 0, w, h))
	parallel.ForPixels(w, h, func(x, y int) {
		result.SetRGBA(x, y, toColor(outputs[y*w+x]))
	}, s.cfg.Parallel)

	return result, nil
}
