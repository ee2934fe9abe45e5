package nn

import (
	"fmt"
	"math"
)

// Activation identifies the scalar nonlinearity applied by a neuron.
//
// The set is closed: Identity, Sigmoid, Tanh and LeakyReLU. Dispatch is an
// exhaustive switch, which keeps the per-neuron hot loop free of indirect calls.
type Activation uint8

// Supported activation functions.
const (
	// Identity is a linear function where the output equals the input.
	//
	//	f(x) = x
	Identity Activation = iota

	// Sigmoid squashes any real value into (0, 1).
	//
	//	f(x) = 1 / (1 + exp(-x))
	Sigmoid

	// Tanh squashes any real value into (-1, 1).
	//
	//	f(x) = tanh(x)
	Tanh

	// LeakyReLU passes positive values through and scales negative ones by 0.01.
	//
	//	f(x) = x < 0 ? 0.01*x : x
	LeakyReLU
)

// leakySlope is the gradient of LeakyReLU for negative inputs.
const leakySlope = 0.01

var activationNames = [...]string{
	Identity:  "identity",
	Sigmoid:   "sigmoid",
	Tanh:      "tanh",
	LeakyReLU: "leakyReLU",
}

// Activations lists every supported activation in declaration order.
func Activations() []Activation {
	return []Activation{Identity, Sigmoid, Tanh, LeakyReLU}
}

// ParseActivation returns the activation named by its canonical tag.
//
// Tags are case sensitive: "identity", "sigmoid", "tanh" and "leakyReLU".
// Any other name fails with ErrUnknownActivation.
func ParseActivation(name string) (Activation, error) {
	for i, n := range activationNames {
		if n == name {
			return Activation(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownActivation, name)
}

// Valid reports whether a is one of the supported activations.
func (a Activation) Valid() bool {
	return int(a) < len(activationNames)
}

// String returns the canonical tag used in the serialized form.
func (a Activation) String() string {
	if !a.Valid() {
		return fmt.Sprintf("Activation(%d)", uint8(a))
	}
	return activationNames[a]
}

// Apply computes f(x).
func (a Activation) Apply(x float64) float64 {
	switch a {
	case Identity:
		return x
	case Sigmoid:
		return 1.0 / (1.0 + math.Exp(-x))
	case Tanh:
		return math.Tanh(x)
	case LeakyReLU:
		if x < 0 {
			return leakySlope * x
		}
		return x
	default:
		panic(fmt.Sprintf("nn: unsupported activation %d", uint8(a)))
	}
}

// Derivative computes f'(x) given the pre-activation input x and the already
// computed output y = f(x). Sigmoid and Tanh use y; LeakyReLU uses x.
func (a Activation) Derivative(x, y float64) float64 {
	switch a {
	case Identity:
		return 1
	case Sigmoid:
		return y * (1 - y)
	case Tanh:
		return 1 - y*y
	case LeakyReLU:
		if x < 0 {
			return leakySlope
		}
		return 1
	default:
		panic(fmt.Sprintf("nn: unsupported activation %d", uint8(a)))
	}
}

// MarshalText implements encoding.TextMarshaler.
func (a Activation) MarshalText() ([]byte, error) {
	if !a.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownActivation, uint8(a))
	}
	return []byte(activationNames[a]), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (a *Activation) UnmarshalText(text []byte) error {
	parsed, err := ParseActivation(string(text))
	if err != nil {
		return err
	}
	*a = parsed
	return nil
}
