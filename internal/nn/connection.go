package nn

// Connection is one weighted incoming edge of a neuron.
//
// DeltaWeight holds the last applied update and feeds the momentum term of the
// next one. It starts at zero.
type Connection struct {
	weight      float64
	deltaWeight float64
}

// NewConnection creates a connection with a weight drawn from the
// process-wide uniform stream.
func NewConnection() *Connection {
	return NewConnectionFrom(SharedSource())
}

// NewConnectionFrom creates a connection with a weight drawn from src.
func NewConnectionFrom(src WeightSource) *Connection {
	return &Connection{weight: src.Weight()}
}

// NewConnectionWithWeight creates a connection with a fixed weight.
func NewConnectionWithWeight(weight float64) *Connection {
	return &Connection{weight: weight}
}

// Weight returns the current weight.
func (c *Connection) Weight() float64 {
	return c.weight
}

// SetWeight overwrites the weight.
func (c *Connection) SetWeight(weight float64) {
	c.weight = weight
}

// DeltaWeight returns the last applied weight change.
func (c *Connection) DeltaWeight() float64 {
	return c.deltaWeight
}

// SetDeltaWeight overwrites the momentum accumulator.
func (c *Connection) SetDeltaWeight(delta float64) {
	c.deltaWeight = delta
}
