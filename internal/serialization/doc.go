// Package serialization converts networks to and from their canonical JSON form.
//
// The canonical form is an array of layers, each an array of neuron records:
//
//	[
//	  [
//	    {"activationF": "sigmoid", "weights": [-0.5, 0.1, 0.8]},
//	    {"activationF": "sigmoid", "weights": [0.7, 0.6, -0.1]},
//	    {"activationF": "sigmoid", "weights": [-0.8, -0.1, -0.7]}
//	  ],
//	  [
//	    {"activationF": "sigmoid", "weights": [0.5, -0.3, -0.4, -0.5]}
//	  ]
//	]
//
// weights[0] is the bias; the remaining weights align with the layer inputs.
// activationF is one of "identity", "sigmoid", "tanh" or "leakyReLU".
//
// Weights are written with the shortest representation that parses back to
// the same float64, so Decode(Encode(n)) reproduces n exactly.
//
// Example usage:
//
//	data, err := serialization.EncodeIndent(net)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	restored, err := serialization.Decode(data)
package serialization
