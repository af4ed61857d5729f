package nn

// Neuron is a single unit of a fully connected layer.
//
// A neuron fed by n signals owns n+1 incoming connections. The last one is the
// bias edge, driven by a constant input of 1.
//
// Value and Gradient cache the results of the most recent forward and backward
// passes and are overwritten by every call.
type Neuron struct {
	activation  Activation
	connections []Connection
	value       float64
	gradient    float64
}

// NewNeuron creates a neuron with inputsCount inputs plus a bias connection,
// drawing every initial weight from src.
func NewNeuron(inputsCount int, activation Activation, src WeightSource) *Neuron {
	n := &Neuron{
		activation:  activation,
		connections: make([]Connection, inputsCount+1),
	}
	for i := range n.connections {
		n.connections[i].weight = src.Weight()
	}
	return n
}

// Activation returns the activation shared by the neuron's layer.
func (n *Neuron) Activation() Activation {
	return n.activation
}

// Value returns the output of the last forward pass.
func (n *Neuron) Value() float64 {
	return n.value
}

// Gradient returns the signal computed by the last backward pass.
func (n *Neuron) Gradient() float64 {
	return n.gradient
}

// SetGradient overwrites the cached gradient.
func (n *Neuron) SetGradient(gradient float64) {
	n.gradient = gradient
}

// NumConnections returns the number of incoming connections, bias included.
func (n *Neuron) NumConnections() int {
	return len(n.connections)
}

// Connection returns the i-th incoming connection. The bias connection is
// at index NumConnections()-1.
func (n *Neuron) Connection(i int) *Connection {
	return &n.connections[i]
}

// InputWeight returns the weight of the i-th incoming connection.
func (n *Neuron) InputWeight(i int) (float64, error) {
	if i < 0 || i >= len(n.connections) {
		return 0, layoutError(ErrConnectionOutOfBounds, "input weight", len(n.connections), i)
	}
	return n.connections[i].weight, nil
}

// FeedForward computes the neuron's output from raw input values:
//
//	value = f(Σ w[i]·inputs[i] + w[bias])
func (n *Neuron) FeedForward(inputs []float64) error {
	if len(inputs)+1 != len(n.connections) {
		return layoutError(ErrInputLayoutMismatch, "feed forward", len(n.connections)-1, len(inputs))
	}

	sum := 0.0
	for i, x := range inputs {
		sum += n.connections[i].weight * x
	}
	sum += n.connections[len(inputs)].weight

	n.value = n.activation.Evaluate(sum)
	return nil
}

// FeedForwardLayer computes the neuron's output from the values of the
// preceding layer.
func (n *Neuron) FeedForwardLayer(previous []*Neuron) error {
	if len(previous)+1 != len(n.connections) {
		return layoutError(ErrInputLayoutMismatch, "feed forward layer", len(n.connections)-1, len(previous))
	}

	sum := 0.0
	for i, p := range previous {
		sum += n.connections[i].weight * p.value
	}
	sum += n.connections[len(previous)].weight

	n.value = n.activation.Evaluate(sum)
	return nil
}

// UpdateInputWeights applies one momentum step to every incoming connection:
//
//	delta  = learningRate·value·gradient + momentum·previousDelta
//	weight = weight + delta
//
// The step uses the neuron's own output value for every connection.
func (n *Neuron) UpdateInputWeights(learningRate, momentum float64) {
	step := learningRate * n.value * n.gradient
	for i := range n.connections {
		c := &n.connections[i]
		delta := step + momentum*c.deltaWeight
		c.deltaWeight = delta
		c.weight += delta
	}
}
