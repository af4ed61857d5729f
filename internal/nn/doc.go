// Package nn implements a small fully connected feedforward network.
//
// This package provides:
//   - Activation: Identity, Sigmoid, Tanh, Hlim, ReLU with their derivatives
//   - Connection: a weighted edge with a momentum accumulator
//   - Neuron: weighted sum plus bias, followed by an activation
//   - Network: input, hidden and output layers with Evaluate and Train
//
// Training computes per-neuron gradients by backpropagation. Weight updates
// are opt-in through Config.ApplyWeightUpdates.
package nn
