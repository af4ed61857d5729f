package nn

import (
	"fmt"
	"math"
	"strings"
)

// Activation identifies one of the stateless scalar activation functions.
//
// Activations are plain values: a layer shares one tag between all of its
// neurons and dispatch happens by switching on the tag.
//
// Example:
//
//	y := nn.Sigmoid.Evaluate(0)   // 0.5
//	d := nn.Sigmoid.Derivative(0) // 0.25
type Activation uint8

// Supported activations.
const (
	Identity Activation = iota
	Sigmoid
	Tanh
	Hlim
	ReLU
)

var activationNames = [...]string{
	Identity: "identity",
	Sigmoid:  "sigmoid",
	Tanh:     "tanh",
	Hlim:     "hlim",
	ReLU:     "relu",
}

// Evaluate applies the activation to x.
//
//	Identity: x
//	Sigmoid:  1 / (1 + exp(-x))
//	Tanh:     tanh(x)
//	Hlim:     1 if x > 0, else 0
//	ReLU:     x if x > 0, else 0
func (a Activation) Evaluate(x float64) float64 {
	switch a {
	case Identity:
		return x
	case Sigmoid:
		return sigmoid(x)
	case Tanh:
		return math.Tanh(x)
	case Hlim:
		if x > 0 {
			return 1
		}
		return 0
	case ReLU:
		if x > 0 {
			return x
		}
		return 0
	default:
		panic(fmt.Sprintf("nn: unknown activation %d", uint8(a)))
	}
}

// Derivative returns the derivative of the activation at x.
//
// Hlim reports a constant 1 rather than its true derivative.
func (a Activation) Derivative(x float64) float64 {
	switch a {
	case Identity, Hlim:
		return 1
	case Sigmoid:
		s := sigmoid(x)
		return s * (1 - s)
	case Tanh:
		t := math.Tanh(x)
		return 1 - t*t
	case ReLU:
		if x > 0 {
			return 1
		}
		return 0
	default:
		panic(fmt.Sprintf("nn: unknown activation %d", uint8(a)))
	}
}

// String returns the lowercase name of the activation.
func (a Activation) String() string {
	if int(a) < len(activationNames) {
		return activationNames[a]
	}
	return fmt.Sprintf("Activation(%d)", uint8(a))
}

// ParseActivation looks up an activation by name, ignoring case.
func ParseActivation(name string) (Activation, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for i, n := range activationNames {
		if n == name {
			return Activation(i), nil
		}
	}
	return 0, fmt.Errorf("unknown activation %q", name)
}

func sigmoid(x float64) float64 {
	return 1.0 / (1.0 + math.Exp(-x))
}
