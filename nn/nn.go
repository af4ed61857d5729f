// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package nn

import (
	"math/rand"

	"github.com/npainter/npainter/internal/nn"
)

// Network is a fully connected feedforward network trained by backpropagation.
type Network = nn.Network

// Config holds training and initialization settings.
type Config = nn.Config

// DefaultConfig returns learning rate 0.15, momentum 0.5, the shared random
// stream and gradient-only training.
func DefaultConfig() Config {
	return nn.DefaultConfig()
}

// New creates a network with DefaultConfig.
//
// Example:
//
//	net, err := nn.New([]int{27, 8, 3})
func New(topology []int) (*Network, error) {
	return nn.New(topology)
}

// NewNetwork creates a network with an explicit configuration.
//
// Example:
//
//	cfg := nn.DefaultConfig()
//	cfg.Seed = 42
//	cfg.ApplyWeightUpdates = true
//	net, err := nn.NewNetwork([]int{2, 3, 1}, cfg)
func NewNetwork(topology []int, config Config) (*Network, error) {
	return nn.NewNetwork(topology, config)
}

// Building blocks

// Neuron is a single unit of a layer.
type Neuron = nn.Neuron

// NewNeuron creates a neuron with inputsCount inputs plus a bias connection.
func NewNeuron(inputsCount int, activation Activation, src WeightSource) *Neuron {
	return nn.NewNeuron(inputsCount, activation, src)
}

// Connection is a weighted edge with a momentum accumulator.
type Connection = nn.Connection

// NewConnection creates a connection with a weight from the shared stream.
func NewConnection() *Connection {
	return nn.NewConnection()
}

// NewConnectionWithWeight creates a connection with a fixed weight.
func NewConnectionWithWeight(weight float64) *Connection {
	return nn.NewConnectionWithWeight(weight)
}

// Activations

// Activation identifies a scalar activation function.
type Activation = nn.Activation

// Supported activations.
const (
	Identity = nn.Identity
	Sigmoid  = nn.Sigmoid
	Tanh     = nn.Tanh
	Hlim     = nn.Hlim
	ReLU     = nn.ReLU
)

// ParseActivation looks up an activation by name.
func ParseActivation(name string) (Activation, error) {
	return nn.ParseActivation(name)
}

// Initialization

// WeightSource produces initial connection weights.
type WeightSource = nn.WeightSource

// ConstantSource returns the same weight every time.
type ConstantSource = nn.ConstantSource

// NewSeededSource creates a deterministic U[0, 1) weight source.
func NewSeededSource(seed int64) WeightSource {
	return nn.NewSeededSource(seed)
}

// NewUniformSource creates a U[0, 1) weight source from rng.
func NewUniformSource(rng *rand.Rand) WeightSource {
	return nn.NewUniformSource(rng)
}

// Errors

// LayoutError describes a vector length mismatch.
type LayoutError = nn.LayoutError

// Sentinel errors, match with errors.Is.
var (
	ErrInvalidTopology      = nn.ErrInvalidTopology
	ErrInputLayoutMismatch  = nn.ErrInputLayoutMismatch
	ErrTargetLayoutMismatch = nn.ErrTargetLayoutMismatch
)
