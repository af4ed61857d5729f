// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package nn provides a small fully connected feedforward network.
//
// # Overview
//
// A network is built from a topology [inputs, hidden..., outputs]:
//   - Input layer: identity neurons, each fed by every raw input
//   - Hidden layers: sigmoid neurons
//   - Output layer: sigmoid neurons
//
// Every neuron has one extra bias connection driven by a constant 1.
//
// # Basic Usage
//
//	import "github.com/npainter/npainter/nn"
//
//	func main() {
//	    net, err := nn.New([]int{2, 3, 1})
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//
//	    for i := 0; i < 1000; i++ {
//	        _ = net.Train([]float64{0, 1}, []float64{1})
//	    }
//
//	    out, _ := net.Evaluate([]float64{0, 1})
//	    fmt.Println(out, net.RecentAverageError())
//	}
//
// # Training
//
// Train runs a forward pass, updates the smoothed error and computes a
// gradient for every neuron, output layer first. By default weights are left
// untouched; set Config.ApplyWeightUpdates to apply a momentum step
// (LearningRate, Momentum) after each gradient pass.
//
// # Concurrency
//
// A Network is not safe for concurrent use. Callers that train from a
// background goroutine must guard every Evaluate and Train call with their own
// lock.
package nn
