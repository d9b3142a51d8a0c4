package nn

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/diff/fd"
)

var derivativeSamples = []float64{-2, -1, 0, 1, 2}

func TestReLU(t *testing.T) {
	r := ReLU{}
	assert.Equal(t, "ReLU", r.Name())

	cases := []struct{ x, y, dy float64 }{
		{-3, 0, 0},
		{-0.5, 0, 0},
		{0, 0, 0}, // derivative at the kink is 0 by convention
		{0.5, 0.5, 1},
		{3, 3, 1},
		{1e300, 1e300, 1},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.y, r.Activate(tc.x), "Activate(%v)", tc.x)
		assert.Equal(t, tc.dy, r.Derivative(tc.x), "Derivative(%v)", tc.x)
	}
}

func TestSigmoid(t *testing.T) {
	s := Sigmoid{}
	assert.Equal(t, "Sigmoid", s.Name())

	assert.Equal(t, 0.5, s.Activate(0))

	// Symmetry: f(x) + f(-x) == 1.
	for _, x := range []float64{0.1, 1, 2, 10, 100} {
		assert.InDelta(t, 1.0, s.Activate(x)+s.Activate(-x), 1e-15, "symmetry at %v", x)
	}

	// Strictly increasing.
	prev := s.Activate(-10)
	for x := -9.5; x <= 10; x += 0.5 {
		y := s.Activate(x)
		assert.Greater(t, y, prev, "not increasing at %v", x)
		prev = y
	}
}

// TestSigmoidSaturation checks the exact 0/1 clamp beyond +/-500. The
// threshold is part of the contract, not an implementation detail:
// natural exp overflow differs across numeric runtimes.
func TestSigmoidSaturation(t *testing.T) {
	s := Sigmoid{}
	assert.Equal(t, 0.0, s.Activate(-500.5))
	assert.Equal(t, 0.0, s.Activate(-1e308))
	assert.Equal(t, 1.0, s.Activate(500.5))
	assert.Equal(t, 1.0, s.Activate(1e308))

	// Inside the clamp the natural formula still applies.
	assert.Greater(t, s.Activate(-499.0), 0.0)
	assert.Less(t, s.Activate(30.0), 1.0)
}

func TestTanh(t *testing.T) {
	th := Tanh{}
	assert.Equal(t, "Tanh", th.Name())

	assert.Equal(t, 0.0, th.Activate(0))

	for _, x := range []float64{0.1, 1, 2, 5, 50, 1e6} {
		// Odd symmetry and range.
		assert.Equal(t, -th.Activate(x), th.Activate(-x), "odd at %v", x)
		assert.LessOrEqual(t, th.Activate(x), 1.0)
		assert.GreaterOrEqual(t, th.Activate(-x), -1.0)
	}
}

func TestLeakyReLU(t *testing.T) {
	l := LeakyReLU{Alpha: DefaultLeakyAlpha}
	assert.Equal(t, "LeakyReLU", l.Name())

	assert.Equal(t, 3.0, l.Activate(3))
	assert.Equal(t, -0.02, l.Activate(-2))
	assert.Equal(t, 1.0, l.Derivative(2))
	assert.Equal(t, DefaultLeakyAlpha, l.Derivative(-2))
}

// TestDerivativeMatchesCentralDifference checks each analytic
// derivative against a numerical one. The piecewise-linear variants
// skip x=0, where the analytic value is a convention at a kink and a
// central difference straddles it.
func TestDerivativeMatchesCentralDifference(t *testing.T) {
	cases := []struct {
		act      Activation
		skipZero bool
	}{
		{ReLU{}, true},
		{Sigmoid{}, false},
		{Tanh{}, false},
		{LeakyReLU{Alpha: DefaultLeakyAlpha}, true},
	}
	for _, tc := range cases {
		t.Run(tc.act.Name(), func(t *testing.T) {
			for _, x := range derivativeSamples {
				if tc.skipZero && x == 0 {
					continue
				}
				numeric := fd.Derivative(tc.act.Activate, x, &fd.Settings{Formula: fd.Central})
				assert.InDelta(t, numeric, tc.act.Derivative(x), 1e-6, "%s'(%v)", tc.act.Name(), x)
			}
		})
	}
}

// TestActivationsFinite verifies every variant stays finite across the
// full operating range, including extreme inputs.
func TestActivationsFinite(t *testing.T) {
	acts := []Activation{ReLU{}, Sigmoid{}, Tanh{}, LeakyReLU{Alpha: DefaultLeakyAlpha}}
	inputs := []float64{-1e308, -1e6, -500, -1, 0, 1, 500, 1e6, 1e308}
	for _, a := range acts {
		for _, x := range inputs {
			y := a.Activate(x)
			dy := a.Derivative(x)
			assert.False(t, math.IsNaN(y) || math.IsInf(y, 0), "%s(%v) = %v", a.Name(), x, y)
			assert.False(t, math.IsNaN(dy) || math.IsInf(dy, 0), "%s'(%v) = %v", a.Name(), x, dy)
		}
	}
}

func TestActivationByName(t *testing.T) {
	for name, want := range map[string]string{
		"relu":      "ReLU",
		"ReLU":      "ReLU",
		"SIGMOID":   "Sigmoid",
		"tanh":      "Tanh",
		"leakyrelu": "LeakyReLU",
	} {
		act, err := ActivationByName(name)
		require.NoError(t, err, name)
		assert.Equal(t, want, act.Name())
	}

	_, err := ActivationByName("softmax")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrMissingArgument)
}
