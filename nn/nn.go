// Copyright 2025 The feedfwd Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package nn provides the public API for the feedfwd forward-propagation
// building blocks: dense layers, activation functions and loss
// functions.
//
// Example:
//
//	layer, _ := nn.NewLayerSeeded(2, 3, nn.ReLU{}, 42)
//	out, err := layer.Forward([]float64{2.0, 1.5})
package nn

import (
	"github.com/feedfwd-ml/feedfwd/internal/nn"
)

// Layer is a dense layer combining a weight matrix, a bias vector and
// an activation function, caching the intermediate vectors of its most
// recent Forward call.
type Layer = nn.Layer

// Activation is the contract for elementwise nonlinear transforms:
// Activate, Derivative and Name, each pure and total over the real
// line.
type Activation = nn.Activation

// Loss is the contract for loss functions: a scalar Loss and a
// per-element Gradient over equal-length vectors, plus Name.
type Loss = nn.Loss

// Activation variants. All are stateless and freely shareable.
type (
	// ReLU is max(0, x).
	ReLU = nn.ReLU
	// Sigmoid is the logistic function, saturating to exact 0/1
	// beyond +/-500.
	Sigmoid = nn.Sigmoid
	// Tanh is the hyperbolic tangent.
	Tanh = nn.Tanh
	// LeakyReLU keeps a small negative-side slope Alpha.
	LeakyReLU = nn.LeakyReLU
)

// MSE is mean squared error with the conventional 1/2 factor.
type MSE = nn.MSE

// ErrMissingArgument indicates that a required input reference is
// absent. Shape violations surface as matrix.ErrShapeMismatch and
// matrix.ErrInvalidDimension from the kernel package.
var ErrMissingArgument = nn.ErrMissingArgument

// DefaultLeakyAlpha is the conventional negative-side slope for
// LeakyReLU.
const DefaultLeakyAlpha = nn.DefaultLeakyAlpha

// NewLayer creates a dense layer with non-deterministic Glorot weight
// initialization and zero biases.
func NewLayer(inputSize, outputSize int, act Activation) (*Layer, error) {
	return nn.NewLayer(inputSize, outputSize, act)
}

// NewLayerSeeded creates a dense layer whose weight initialization is
// bit-reproducible for a given seed.
func NewLayerSeeded(inputSize, outputSize int, act Activation, seed int64) (*Layer, error) {
	return nn.NewLayerSeeded(inputSize, outputSize, act, seed)
}

// ActivationByName returns the activation registered under a
// case-insensitive display name ("relu", "sigmoid", "tanh",
// "leakyrelu").
func ActivationByName(name string) (Activation, error) {
	return nn.ActivationByName(name)
}
