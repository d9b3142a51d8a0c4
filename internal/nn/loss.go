package nn

import (
	"fmt"

	"github.com/feedfwd-ml/feedfwd/internal/matrix"
)

// Loss computes a scalar loss and a per-element gradient from two
// equal-length vectors of predictions and targets.
//
// Implementations must be stateless and pure; a single value may be
// shared across goroutines.
type Loss interface {
	// Loss returns the scalar loss for the prediction/target pair.
	Loss(predicted, target []float64) (float64, error)

	// Gradient returns d(loss)/d(predicted), one element per
	// prediction.
	Gradient(predicted, target []float64) ([]float64, error)

	// Name returns the display name of the function.
	Name() string
}

// MSE is mean squared error with the conventional 1/2 factor:
//
//	loss(p, t) = sum((t_i - p_i)^2) / (2n)
//	gradient(p, t)_i = -(t_i - p_i) / n
//
// The 1/2 cancels against the square's derivative, keeping the gradient
// free of stray constants.
type MSE struct{}

// Loss returns sum((t_i - p_i)^2) / (2n).
func (MSE) Loss(predicted, target []float64) (float64, error) {
	if err := checkPair("Loss", predicted, target); err != nil {
		return 0, err
	}
	var sum float64
	for i := range predicted {
		d := target[i] - predicted[i]
		sum += d * d
	}
	return sum / (2 * float64(len(predicted))), nil
}

// Gradient returns the per-element derivative -(t_i - p_i) / n.
func (MSE) Gradient(predicted, target []float64) ([]float64, error) {
	if err := checkPair("Gradient", predicted, target); err != nil {
		return nil, err
	}
	n := float64(len(predicted))
	out := make([]float64, len(predicted))
	for i := range predicted {
		out[i] = -(target[i] - predicted[i]) / n
	}
	return out, nil
}

// Name returns "MSE".
func (MSE) Name() string { return "MSE" }

// checkPair validates a prediction/target pair for a loss call.
func checkPair(op string, predicted, target []float64) error {
	if predicted == nil || target == nil {
		return fmt.Errorf("nn: MSE.%s: nil vector: %w", op, ErrMissingArgument)
	}
	if len(predicted) != len(target) {
		return fmt.Errorf("nn: MSE.%s: lengths %d vs %d: %w", op, len(predicted), len(target), matrix.ErrShapeMismatch)
	}
	return nil
}
