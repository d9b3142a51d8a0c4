package nn

import (
	"fmt"
	"math"
	"strings"
)

// Activation is an elementwise nonlinear transform applied to a layer's
// net inputs.
//
// Implementations must be stateless and pure: deterministic, free of
// side effects, and finite-valued for every finite input, including
// values far outside normal operating range. A single value may be
// shared across any number of layers and goroutines.
type Activation interface {
	// Activate applies the transform to one scalar.
	Activate(x float64) float64

	// Derivative returns the analytic derivative at x.
	Derivative(x float64) float64

	// Name returns the display name of the function.
	Name() string
}

// sigmoidClamp is the saturation threshold for Sigmoid. Outside
// [-sigmoidClamp, sigmoidClamp] the function returns exactly 0 or 1
// instead of relying on exp overflow behavior, which can differ across
// numeric runtimes.
const sigmoidClamp = 500

// ReLU is the rectified linear unit: f(x) = max(0, x).
type ReLU struct{}

// Activate returns max(0, x).
func (ReLU) Activate(x float64) float64 {
	if x > 0 {
		return x
	}
	return 0
}

// Derivative returns 1 for x > 0 and 0 otherwise. The derivative at
// exactly 0 is 0 by convention.
func (ReLU) Derivative(x float64) float64 {
	if x > 0 {
		return 1
	}
	return 0
}

// Name returns "ReLU".
func (ReLU) Name() string { return "ReLU" }

// Sigmoid is the logistic function: f(x) = 1 / (1 + exp(-x)).
//
// Inputs beyond +/-500 saturate to exactly 1.0 and 0.0.
type Sigmoid struct{}

// Activate returns the clamped logistic of x.
func (Sigmoid) Activate(x float64) float64 {
	if x < -sigmoidClamp {
		return 0
	}
	if x > sigmoidClamp {
		return 1
	}
	return 1.0 / (1.0 + math.Exp(-x))
}

// Derivative returns f(x) * (1 - f(x)).
func (s Sigmoid) Derivative(x float64) float64 {
	y := s.Activate(x)
	return y * (1 - y)
}

// Name returns "Sigmoid".
func (Sigmoid) Name() string { return "Sigmoid" }

// Tanh is the hyperbolic tangent.
type Tanh struct{}

// Activate returns tanh(x).
func (Tanh) Activate(x float64) float64 {
	return math.Tanh(x)
}

// Derivative returns 1 - tanh(x)^2.
func (Tanh) Derivative(x float64) float64 {
	y := math.Tanh(x)
	return 1 - y*y
}

// Name returns "Tanh".
func (Tanh) Name() string { return "Tanh" }

// LeakyReLU is ReLU with a small slope for negative inputs:
// f(x) = x for x > 0, alpha*x otherwise.
type LeakyReLU struct {
	// Alpha is the negative-side slope. The zero value disables the
	// leak, making the function plain ReLU; DefaultLeakyAlpha is the
	// usual choice.
	Alpha float64
}

// DefaultLeakyAlpha is the conventional negative-side slope for
// LeakyReLU.
const DefaultLeakyAlpha = 0.01

// Activate returns x for x > 0 and Alpha*x otherwise.
func (l LeakyReLU) Activate(x float64) float64 {
	if x > 0 {
		return x
	}
	return l.Alpha * x
}

// Derivative returns 1 for x > 0 and Alpha otherwise.
func (l LeakyReLU) Derivative(x float64) float64 {
	if x > 0 {
		return 1
	}
	return l.Alpha
}

// Name returns "LeakyReLU".
func (LeakyReLU) Name() string { return "LeakyReLU" }

// ActivationByName returns the activation registered under name,
// matched case-insensitively against the Name() of each variant.
//
// Example:
//
//	act, err := nn.ActivationByName("relu")
func ActivationByName(name string) (Activation, error) {
	switch strings.ToLower(name) {
	case "relu":
		return ReLU{}, nil
	case "sigmoid":
		return Sigmoid{}, nil
	case "tanh":
		return Tanh{}, nil
	case "leakyrelu":
		return LeakyReLU{Alpha: DefaultLeakyAlpha}, nil
	default:
		return nil, fmt.Errorf("nn: unknown activation %q: %w", name, ErrMissingArgument)
	}
}
