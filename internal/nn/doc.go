// Package nn implements the forward-computation building blocks of the
// feedfwd framework:
//
//   - Activation: stateless scalar transforms (ReLU, Sigmoid, Tanh,
//     LeakyReLU) with analytic derivatives.
//   - Loss: scalar loss plus per-element gradient over equal-length
//     vectors (MSE).
//   - Layer: a dense layer combining a weight matrix, a bias vector and
//     an activation, caching the intermediate vectors each Forward call
//     produces for a future backward pass.
//
// Activation and Loss values hold no mutable state and may be shared
// across layers and goroutines. A Layer's cache is private mutable
// state: concurrent Forward calls on one Layer require external
// synchronization.
package nn
