package nn

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func constantNetwork(t *testing.T, topology []int, w float64) *Network {
	t.Helper()
	cfg := DefaultConfig()
	cfg.Weights = ConstantSource(w)
	net, err := NewNetwork(topology, cfg)
	require.NoError(t, err)
	return net
}

func weights(net *Network) []float64 {
	var out []float64
	for _, layer := range net.Layers() {
		for _, n := range layer {
			for i := 0; i < n.NumConnections(); i++ {
				out = append(out, n.Connection(i).Weight())
			}
		}
	}
	return out
}

func TestNewNetworkTopologyValidation(t *testing.T) {
	invalid := [][]int{nil, {}, {5}, {5, 3}, {3, 0, 2}, {0, 4, 2}, {3, 4, 0}, {3, -1, 2}}
	for _, topology := range invalid {
		_, err := New(topology)
		assert.ErrorIs(t, err, ErrInvalidTopology, "topology %v", topology)
	}

	net, err := New([]int{3, 4, 2})
	require.NoError(t, err)
	assert.Equal(t, []int{3, 4, 2}, net.Topology())
}

func TestNewNetworkLayout(t *testing.T) {
	net := constantNetwork(t, []int{3, 4, 5, 2}, 0.1)

	layers := net.Layers()
	require.Len(t, layers, 4)

	expect := []struct {
		size        int
		connections int
		activation  Activation
	}{
		{3, 4, Identity}, // input neurons see every raw input
		{4, 4, Sigmoid},
		{5, 5, Sigmoid},
		{2, 6, Sigmoid},
	}
	for i, e := range expect {
		require.Len(t, layers[i], e.size, "layer %d", i)
		for _, n := range layers[i] {
			assert.Equal(t, e.connections, n.NumConnections(), "layer %d", i)
			assert.Equal(t, e.activation, n.Activation(), "layer %d", i)
		}
	}
}

func TestNewNetworkDefaults(t *testing.T) {
	net, err := NewNetwork([]int{2, 2, 1}, Config{Seed: 1})
	require.NoError(t, err)
	assert.Equal(t, DefaultLearningRate, net.LearningRate())
	assert.Equal(t, 0.0, net.Momentum())
	assert.False(t, net.AppliesWeightUpdates())

	net, err = New([]int{2, 2, 1})
	require.NoError(t, err)
	assert.Equal(t, DefaultMomentum, net.Momentum())
	assert.Equal(t, 0.0, net.RecentAverageError())
}

func TestNewNetworkSeeded(t *testing.T) {
	a, err := NewNetwork([]int{4, 3, 2}, Config{Seed: 42})
	require.NoError(t, err)
	b, err := NewNetwork([]int{4, 3, 2}, Config{Seed: 42})
	require.NoError(t, err)
	assert.Equal(t, weights(a), weights(b))

	for _, w := range weights(a) {
		assert.GreaterOrEqual(t, w, 0.0)
		assert.Less(t, w, 1.0)
	}
}

func TestEvaluateDeterministic(t *testing.T) {
	const w = 0.5
	net := constantNetwork(t, []int{2, 2, 1}, w)

	first, err := net.Evaluate([]float64{1.0, 1.0})
	require.NoError(t, err)
	second, err := net.Evaluate([]float64{1.0, 1.0})
	require.NoError(t, err)

	require.Len(t, first, 1)
	assert.Equal(t, first, second, "forward pass must be bit-identical")

	in := w*1.0 + w*1.0 + w
	hidden := sigmoid(w*in + w*in + w)
	out := sigmoid(w*hidden + w*hidden + w)
	assert.InDelta(t, out, first[0], 1e-15)
}

func TestEvaluateInputMismatch(t *testing.T) {
	net := constantNetwork(t, []int{2, 3, 1}, 0.3)
	_, err := net.Evaluate([]float64{0.2, 0.7})
	require.NoError(t, err)
	before := net.Layers()[0][0].Value()

	_, err = net.Evaluate([]float64{1.0})
	require.ErrorIs(t, err, ErrInputLayoutMismatch)

	var layoutErr *LayoutError
	require.True(t, errors.As(err, &layoutErr))
	assert.Equal(t, "evaluate", layoutErr.Op)
	assert.Equal(t, 2, layoutErr.Expected)
	assert.Equal(t, 1, layoutErr.Got)

	_, err = net.Evaluate([]float64{1, 2, 3})
	assert.ErrorIs(t, err, ErrInputLayoutMismatch)

	assert.Equal(t, before, net.Layers()[0][0].Value())
}

func TestTrainLayoutMismatch(t *testing.T) {
	net := constantNetwork(t, []int{2, 3, 1}, 0.3)

	err := net.Train([]float64{1, 1}, []float64{1, 1})
	assert.ErrorIs(t, err, ErrTargetLayoutMismatch)

	err = net.Train([]float64{1}, []float64{1})
	assert.ErrorIs(t, err, ErrInputLayoutMismatch)

	assert.Equal(t, 0.0, net.RecentAverageError(), "failed calls must not count")
}

func TestTrainOutputGradientSign(t *testing.T) {
	net := constantNetwork(t, []int{2, 3, 1}, 0.5)
	out, err := net.Evaluate([]float64{0.3, 0.9})
	require.NoError(t, err)
	output := net.Layers()[2][0]

	require.NoError(t, net.Train([]float64{0.3, 0.9}, []float64{out[0] + 0.1}))
	assert.GreaterOrEqual(t, output.Gradient(), 0.0)

	require.NoError(t, net.Train([]float64{0.3, 0.9}, []float64{out[0] - 0.1}))
	assert.LessOrEqual(t, output.Gradient(), 0.0)
}

func TestTrainGradients(t *testing.T) {
	net := constantNetwork(t, []int{2, 2, 1}, 0.5)
	require.NoError(t, net.Train([]float64{1, 0}, []float64{1}))

	layers := net.Layers()
	output := layers[2][0]
	assert.InDelta(t, (1-output.Value())*Sigmoid.Derivative(output.Value()), output.Gradient(), 1e-15)

	for l := 1; l >= 0; l-- {
		for j, n := range layers[l] {
			dow := 0.0
			for _, next := range layers[l+1] {
				dow += next.Gradient() * next.Connection(j).Weight()
			}
			expected := dow * n.Activation().Derivative(n.Value())
			assert.InDelta(t, expected, n.Gradient(), 1e-15, "layer %d neuron %d", l, j)
		}
	}
}

func TestTrainRecentAverageError(t *testing.T) {
	net := constantNetwork(t, []int{2, 3, 2}, 0.2)
	inputs := []float64{0.4, 0.6}
	targets := []float64{1, 0.5}

	result, err := net.Evaluate(inputs)
	require.NoError(t, err)
	sum := (targets[0] - result[0]) + (targets[1] - result[1])
	e1 := math.Sqrt(sum * sum / 2)

	require.NoError(t, net.Train(inputs, targets))
	assert.InDelta(t, e1, net.LastError(), 1e-15)
	assert.InDelta(t, e1/101, net.RecentAverageError(), 1e-15)

	require.NoError(t, net.Train(inputs, targets))
	e2 := net.LastError()
	assert.Equal(t, e1, e2, "weights do not move without updates")
	assert.InDelta(t, ((e1/101)*100+e2)/101, net.RecentAverageError(), 1e-15)
}

func TestTrainSignedErrorCancels(t *testing.T) {
	net := constantNetwork(t, []int{1, 1, 2}, 0.5)
	result, err := net.Evaluate([]float64{1})
	require.NoError(t, err)

	// Both outputs are equal; targets straddle them symmetrically.
	require.NoError(t, net.Train([]float64{1}, []float64{result[0] + 0.25, result[1] - 0.25}))
	assert.InDelta(t, 0.0, net.LastError(), 1e-15)
}

func TestTrainGradientOnlyKeepsWeights(t *testing.T) {
	net := constantNetwork(t, []int{3, 4, 2}, 0.7)
	before := weights(net)

	for i := 0; i < 10; i++ {
		require.NoError(t, net.Train([]float64{0.1, 0.2, 0.3}, []float64{0, 1}))
	}
	assert.Equal(t, before, weights(net))
}

func TestTrainApplyWeightUpdates(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Weights = ConstantSource(0.5)
	cfg.ApplyWeightUpdates = true
	net, err := NewNetwork([]int{2, 2, 1}, cfg)
	require.NoError(t, err)
	assert.True(t, net.AppliesWeightUpdates())

	require.NoError(t, net.Train([]float64{1, 1}, []float64{0}))

	for _, layer := range net.Layers() {
		for _, n := range layer {
			delta := cfg.LearningRate * n.Value() * n.Gradient()
			for i := 0; i < n.NumConnections(); i++ {
				c := n.Connection(i)
				assert.InDelta(t, delta, c.DeltaWeight(), 1e-15)
				assert.InDelta(t, 0.5+delta, c.Weight(), 1e-15)
			}
		}
	}

	output := net.Layers()[2][0]
	assert.Less(t, output.Connection(0).Weight(), 0.5, "target below output pulls weights down")
}
