package nn

import (
	"math/rand"
	"sync"
)

// WeightSource produces initial connection weights.
type WeightSource interface {
	// Weight returns the next initial weight.
	Weight() float64
}

// UniformSource draws weights from U[0, 1).
type UniformSource struct {
	rng *rand.Rand
}

// NewUniformSource creates a uniform source from an explicit generator.
func NewUniformSource(rng *rand.Rand) *UniformSource {
	return &UniformSource{rng: rng}
}

// NewSeededSource creates a deterministic uniform source.
func NewSeededSource(seed int64) *UniformSource {
	//nolint:gosec // Weight initialization is not security-critical
	return &UniformSource{rng: rand.New(rand.NewSource(seed))}
}

// Weight returns the next value in [0, 1).
func (u *UniformSource) Weight() float64 {
	return u.rng.Float64()
}

// ConstantSource returns the same weight every time.
type ConstantSource float64

// Weight returns the constant.
func (c ConstantSource) Weight() float64 {
	return float64(c)
}

// sharedSource is the process-wide stream used when no source is supplied.
// It is created on first use, seeded once and never reseeded.
type sharedSource struct {
	once sync.Once
	mu   sync.Mutex
	rng  *rand.Rand
}

var shared sharedSource

// SharedSource returns the process-wide uniform stream.
func SharedSource() WeightSource {
	return &shared
}

func (s *sharedSource) Weight() float64 {
	s.once.Do(func() {
		//nolint:gosec // Weight initialization is not security-critical
		s.rng = rand.New(rand.NewSource(rand.Int63()))
	})
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rng.Float64()
}
