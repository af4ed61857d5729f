package nn

import "math/rand"

// Default training constants.
const (
	DefaultLearningRate = 0.15
	DefaultMomentum     = 0.5
)

// Config holds the training and initialization settings of a Network.
type Config struct {
	// LearningRate scales every weight update (default: 0.15).
	LearningRate float64

	// Momentum is the fraction of the previous update carried into the next
	// one (default: 0.5).
	Momentum float64

	// Seed selects the initial weight stream. -1 = process-wide shared stream.
	Seed int64

	// Rand overrides Seed with an explicit generator.
	Rand *rand.Rand

	// Weights overrides both Seed and Rand.
	Weights WeightSource

	// ApplyWeightUpdates makes Train apply a momentum step to every neuron
	// after computing gradients. When false Train only computes gradients and
	// weights stay as initialized.
	ApplyWeightUpdates bool
}

// DefaultConfig returns the classic settings: learning rate 0.15, momentum 0.5,
// the shared random stream and gradient-only training.
func DefaultConfig() Config {
	return Config{
		LearningRate: DefaultLearningRate,
		Momentum:     DefaultMomentum,
		Seed:         -1,
	}
}

func (c Config) weightSource() WeightSource {
	switch {
	case c.Weights != nil:
		return c.Weights
	case c.Rand != nil:
		return NewUniformSource(c.Rand)
	case c.Seed >= 0:
		return NewSeededSource(c.Seed)
	default:
		return SharedSource()
	}
}
