package nn

import (
	"fmt"
	"math"
)

// recentAverageSmoothing is the weight of the history in RecentAverageError.
const recentAverageSmoothing = 100.0

// Network is a fully connected feedforward network trained by
// backpropagation.
//
// Layout for topology [n0, n1, ..., nk]:
//   - Input layer: n0 identity neurons, each fed by all n0 raw inputs
//   - Hidden layers: n1..n(k-1) sigmoid neurons
//   - Output layer: nk sigmoid neurons
//
// The input layer is a weighted layer in its own right: raw inputs pass
// through it before reaching the first hidden layer.
//
// A Network is not safe for concurrent use. Evaluate and Train mutate
// per-neuron state and must be serialized by the caller.
//
// Example:
//
//	net, err := nn.New([]int{2, 3, 1})
//	if err != nil {
//	    return err
//	}
//	if err := net.Train([]float64{0, 1}, []float64{1}); err != nil {
//	    return err
//	}
//	out, err := net.Evaluate([]float64{0, 1})
type Network struct {
	topology     []int
	inputLayer   []*Neuron
	hiddenLayers [][]*Neuron
	outputLayer  []*Neuron

	learningRate float64
	momentum     float64
	applyUpdates bool

	lastError          float64
	recentAverageError float64
}

// New creates a network with DefaultConfig.
func New(topology []int) (*Network, error) {
	return NewNetwork(topology, DefaultConfig())
}

// NewNetwork creates a network for the given topology.
//
// The topology needs at least three entries (input, one or more hidden,
// output) and every entry must be positive.
func NewNetwork(topology []int, config Config) (*Network, error) {
	if len(topology) < 3 {
		return nil, fmt.Errorf("%w: need input, output and at least one hidden layer, got %d layers",
			ErrInvalidTopology, len(topology))
	}
	for i, width := range topology {
		if width <= 0 {
			return nil, fmt.Errorf("%w: layer %d has width %d", ErrInvalidTopology, i, width)
		}
	}

	// Set defaults
	if config.LearningRate == 0 {
		config.LearningRate = DefaultLearningRate
	}

	src := config.weightSource()
	last := len(topology) - 1

	net := &Network{
		topology:     append([]int(nil), topology...),
		learningRate: config.LearningRate,
		momentum:     config.Momentum,
		applyUpdates: config.ApplyWeightUpdates,
	}

	net.inputLayer = newLayer(topology[0], topology[0], Identity, src)

	net.hiddenLayers = make([][]*Neuron, last-1)
	for i := range net.hiddenLayers {
		net.hiddenLayers[i] = newLayer(topology[i+1], topology[i], Sigmoid, src)
	}

	net.outputLayer = newLayer(topology[last], topology[last-1], Sigmoid, src)

	return net, nil
}

func newLayer(size, inputsCount int, activation Activation, src WeightSource) []*Neuron {
	layer := make([]*Neuron, size)
	for i := range layer {
		layer[i] = NewNeuron(inputsCount, activation, src)
	}
	return layer
}

// Topology returns a copy of the layer widths the network was built from.
func (n *Network) Topology() []int {
	return append([]int(nil), n.topology...)
}

// Layers returns every layer in forward order: input, hidden..., output.
// The neurons are shared with the network.
func (n *Network) Layers() [][]*Neuron {
	layers := make([][]*Neuron, 0, len(n.hiddenLayers)+2)
	layers = append(layers, n.inputLayer)
	layers = append(layers, n.hiddenLayers...)
	return append(layers, n.outputLayer)
}

// LearningRate returns the learning rate used by weight updates.
func (n *Network) LearningRate() float64 {
	return n.learningRate
}

// Momentum returns the momentum factor used by weight updates.
func (n *Network) Momentum() float64 {
	return n.momentum
}

// AppliesWeightUpdates reports whether Train changes weights.
func (n *Network) AppliesWeightUpdates() bool {
	return n.applyUpdates
}

// LastError returns the error statistic of the most recent Train call.
func (n *Network) LastError() float64 {
	return n.lastError
}

// RecentAverageError returns the exponentially smoothed training error.
func (n *Network) RecentAverageError() float64 {
	return n.recentAverageError
}

// Evaluate runs a forward pass and returns the output layer values.
//
// Every neuron's cached value is overwritten. The inputs are validated before
// anything is touched.
func (n *Network) Evaluate(inputs []float64) ([]float64, error) {
	if len(inputs) != len(n.inputLayer) {
		return nil, layoutError(ErrInputLayoutMismatch, "evaluate", len(n.inputLayer), len(inputs))
	}

	for _, neuron := range n.inputLayer {
		if err := neuron.FeedForward(inputs); err != nil {
			return nil, err
		}
	}

	previous := n.inputLayer
	for _, layer := range n.hiddenLayers {
		if err := feedLayer(layer, previous); err != nil {
			return nil, err
		}
		previous = layer
	}

	if err := feedLayer(n.outputLayer, previous); err != nil {
		return nil, err
	}

	result := make([]float64, len(n.outputLayer))
	for i, neuron := range n.outputLayer {
		result[i] = neuron.Value()
	}
	return result, nil
}

func feedLayer(layer, previous []*Neuron) error {
	for _, neuron := range layer {
		if err := neuron.FeedForwardLayer(previous); err != nil {
			return err
		}
	}
	return nil
}

// Train runs one backpropagation step for a single sample.
//
// Steps:
//  1. Forward pass over inputs
//  2. error = sqrt((Σ (target - output))² / outputs)
//  3. RecentAverageError = (RecentAverageError·100 + error) / 101
//  4. Output gradients: (target - value)·f'(value)
//  5. Hidden and input gradients, back to front: Σ next.gradient·next.weight · f'(value)
//  6. With ApplyWeightUpdates, a momentum step for every neuron
//
// The error sums signed differences, so opposite errors on different
// outputs cancel.
func (n *Network) Train(inputs, targets []float64) error {
	if len(targets) != len(n.outputLayer) {
		return layoutError(ErrTargetLayoutMismatch, "train", len(n.outputLayer), len(targets))
	}

	result, err := n.Evaluate(inputs)
	if err != nil {
		return fmt.Errorf("train: %w", err)
	}

	sum := 0.0
	for i, r := range result {
		sum += targets[i] - r
	}
	n.lastError = math.Sqrt(sum * sum / float64(len(result)))
	n.recentAverageError = (n.recentAverageError*recentAverageSmoothing + n.lastError) /
		(recentAverageSmoothing + 1)

	for i, neuron := range n.outputLayer {
		delta := targets[i] - neuron.Value()
		neuron.SetGradient(delta * neuron.Activation().Derivative(neuron.Value()))
	}

	next := n.outputLayer
	for i := len(n.hiddenLayers) - 1; i >= 0; i-- {
		layer := n.hiddenLayers[i]
		backpropagate(layer, next)
		next = layer
	}
	backpropagate(n.inputLayer, next)

	if n.applyUpdates {
		n.updateWeights()
	}
	return nil
}

// backpropagate sets the gradient of every neuron in layer from the
// gradients of the layer it feeds.
func backpropagate(layer, next []*Neuron) {
	for j, neuron := range layer {
		dow := 0.0
		for _, k := range next {
			dow += k.Gradient() * k.Connection(j).Weight()
		}
		neuron.SetGradient(dow * neuron.Activation().Derivative(neuron.Value()))
	}
}

func (n *Network) updateWeights() {
	for _, neuron := range n.outputLayer {
		neuron.UpdateInputWeights(n.learningRate, n.momentum)
	}
	for i := len(n.hiddenLayers) - 1; i >= 0; i-- {
		for _, neuron := range n.hiddenLayers[i] {
			neuron.UpdateInputWeights(n.learningRate, n.momentum)
		}
	}
	for _, neuron := range n.inputLayer {
		neuron.UpdateInputWeights(n.learningRate, n.momentum)
	}
}
