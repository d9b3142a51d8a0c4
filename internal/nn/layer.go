package nn

import (
	"fmt"
	"math/rand"

	"github.com/feedfwd-ml/feedfwd/internal/matrix"
)

// Layer is a fully connected layer computing
//
//	output = activation(W x input + bias)
//
// with W of shape outputSize x inputSize and bias of length outputSize.
// Weights start with Glorot fan-in initialization, biases at zero.
//
// Each successful Forward call caches independent copies of the input,
// the pre-activation (net) and the post-activation (output) vectors,
// fully replacing the previous cache. The cached vectors are the raw
// material for an external backward pass; until the first Forward call
// none of them exists.
//
// The cache is private mutable state: at most one Forward call may be
// in flight per Layer at a time. Distinct Layer values, and the shared
// stateless Activation they may reference, need no coordination.
//
// Example:
//
//	layer, _ := nn.NewLayerSeeded(2, 3, nn.ReLU{}, 42)
//	out, err := layer.Forward([]float64{2.0, 1.5})
type Layer struct {
	inputSize  int
	outputSize int
	weights    *matrix.Dense // outputSize x inputSize
	biases     []float64     // len == outputSize
	act        Activation

	// cache is nil until the first successful Forward call, then holds
	// the vectors of the most recent one.
	cache *forwardCache
}

// forwardCache holds the intermediate vectors of one Forward call. A
// populated cache always carries all three vectors.
type forwardCache struct {
	input  []float64
	net    []float64
	output []float64
}

// NewLayer creates a layer with non-deterministic Glorot weight
// initialization and zero biases.
func NewLayer(inputSize, outputSize int, act Activation) (*Layer, error) {
	return newLayer(inputSize, outputSize, act, nil)
}

// NewLayerSeeded creates a layer whose weight initialization is
// bit-reproducible for a given seed.
func NewLayerSeeded(inputSize, outputSize int, act Activation, seed int64) (*Layer, error) {
	return newLayer(inputSize, outputSize, act, rand.New(rand.NewSource(seed))) //nolint:gosec // weight init, not security-critical
}

func newLayer(inputSize, outputSize int, act Activation, rng *rand.Rand) (*Layer, error) {
	if inputSize <= 0 || outputSize <= 0 {
		return nil, fmt.Errorf("nn: NewLayer(%d,%d): %w", inputSize, outputSize, matrix.ErrInvalidDimension)
	}
	if act == nil {
		return nil, fmt.Errorf("nn: NewLayer: nil activation: %w", ErrMissingArgument)
	}
	w, err := matrix.Glorot(outputSize, inputSize, rng)
	if err != nil {
		return nil, fmt.Errorf("nn: NewLayer: %w", err)
	}
	return &Layer{
		inputSize:  inputSize,
		outputSize: outputSize,
		weights:    w,
		biases:     make([]float64, outputSize),
		act:        act,
	}, nil
}

// Forward propagates input through the layer and returns the activated
// output vector.
//
// The computation is net = W x input + bias followed by the elementwise
// activation. Copies of input, net and output replace the layer's cache;
// the returned slice is distinct from the cached copy, so mutating it
// never corrupts the cache and vice versa. Given identical weights,
// biases and input, repeated calls are idempotent.
func (l *Layer) Forward(input []float64) ([]float64, error) {
	if input == nil {
		return nil, fmt.Errorf("nn: Forward: nil input: %w", ErrMissingArgument)
	}
	if len(input) != l.inputSize {
		return nil, fmt.Errorf("nn: Forward: input length %d, want %d: %w", len(input), l.inputSize, matrix.ErrShapeMismatch)
	}

	wx, err := l.weights.MulVec(input)
	if err != nil {
		return nil, fmt.Errorf("nn: Forward: %w", err)
	}
	net, err := matrix.AddVec(wx, l.biases)
	if err != nil {
		return nil, fmt.Errorf("nn: Forward: %w", err)
	}

	output := make([]float64, len(net))
	for i, v := range net {
		output[i] = l.act.Activate(v)
	}

	l.cache = &forwardCache{
		input:  copyVec(input),
		net:    copyVec(net),
		output: copyVec(output),
	}
	return output, nil
}

// LastInput returns a copy of the input vector of the most recent
// Forward call. The second return is false while the layer has not run.
func (l *Layer) LastInput() ([]float64, bool) {
	if l.cache == nil {
		return nil, false
	}
	return copyVec(l.cache.input), true
}

// LastNet returns a copy of the pre-activation vector W x input + bias
// of the most recent Forward call.
func (l *Layer) LastNet() ([]float64, bool) {
	if l.cache == nil {
		return nil, false
	}
	return copyVec(l.cache.net), true
}

// LastOutput returns a copy of the activated output vector of the most
// recent Forward call.
func (l *Layer) LastOutput() ([]float64, bool) {
	if l.cache == nil {
		return nil, false
	}
	return copyVec(l.cache.output), true
}

// BackProject computes W^T x v, the building block for propagating a
// gradient vector through this layer to its predecessor. v must have
// the layer's output size; the result has the input size.
func (l *Layer) BackProject(v []float64) ([]float64, error) {
	if v == nil {
		return nil, fmt.Errorf("nn: BackProject: nil vector: %w", ErrMissingArgument)
	}
	out, err := l.weights.Transpose().MulVec(v)
	if err != nil {
		return nil, fmt.Errorf("nn: BackProject: %w", err)
	}
	return out, nil
}

// Weights returns a copy of the weight matrix (outputSize x inputSize).
func (l *Layer) Weights() *matrix.Dense {
	return l.weights.Clone()
}

// SetWeights replaces the weight matrix with a copy of w.
func (l *Layer) SetWeights(w *matrix.Dense) error {
	if w == nil {
		return fmt.Errorf("nn: SetWeights: nil matrix: %w", ErrMissingArgument)
	}
	if w.Rows() != l.outputSize || w.Cols() != l.inputSize {
		return fmt.Errorf("nn: SetWeights: %dx%d, want %dx%d: %w",
			w.Rows(), w.Cols(), l.outputSize, l.inputSize, matrix.ErrShapeMismatch)
	}
	l.weights = w.Clone()
	return nil
}

// Biases returns a copy of the bias vector (length outputSize).
func (l *Layer) Biases() []float64 {
	return copyVec(l.biases)
}

// SetBiases replaces the bias vector with a copy of b.
func (l *Layer) SetBiases(b []float64) error {
	if b == nil {
		return fmt.Errorf("nn: SetBiases: nil vector: %w", ErrMissingArgument)
	}
	if len(b) != l.outputSize {
		return fmt.Errorf("nn: SetBiases: length %d, want %d: %w", len(b), l.outputSize, matrix.ErrShapeMismatch)
	}
	l.biases = copyVec(b)
	return nil
}

// InputSize returns the declared input vector length.
func (l *Layer) InputSize() int {
	return l.inputSize
}

// OutputSize returns the declared output vector length.
func (l *Layer) OutputSize() int {
	return l.outputSize
}

// Activation returns the layer's activation function.
func (l *Layer) Activation() Activation {
	return l.act
}

// copyVec returns an independent copy of v.
func copyVec(v []float64) []float64 {
	out := make([]float64, len(v))
	copy(out, v)
	return out
}
