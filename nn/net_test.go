// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package nn_test

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/born-ml/synapses/nn"
	"github.com/born-ml/synapses/optim"
)

const readmeJSON = `[
  [
    {"activationF": "sigmoid", "weights": [-0.5, 0.1, 0.8]},
    {"activationF": "sigmoid", "weights": [0.7, 0.6, -0.1]},
    {"activationF": "sigmoid", "weights": [-0.8, -0.1, -0.7]}
  ],
  [
    {"activationF": "sigmoid", "weights": [0.5, -0.3, -0.4, -0.5]}
  ]
]`

func readmeNet(t *testing.T) *nn.Net {
	t.Helper()
	net, err := nn.FromJSON([]byte(readmeJSON))
	require.NoError(t, err)
	return net
}

func TestNetPredict(t *testing.T) {
	net := readmeNet(t)

	out, err := net.Predict([]float64{0.2, 0.6})
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.InDelta(t, 0.49131100324012494, out[0], 1e-12)

	par, err := net.ParPredict([]float64{0.2, 0.6})
	require.NoError(t, err)
	assert.Equal(t, out, par)

	_, err = net.Predict([]float64{0.2})
	assert.ErrorIs(t, err, nn.ErrDimensionMismatch)
}

func TestNetShape(t *testing.T) {
	net, err := nn.New([]int{2, 3, 1})
	require.NoError(t, err)
	assert.Equal(t, 2, net.InputSize())
	assert.Equal(t, 1, net.OutputSize())
	assert.Equal(t, []int{2, 3, 1}, net.LayerSizes())

	_, err = nn.New([]int{2})
	assert.ErrorIs(t, err, nn.ErrInvalidShape)
}

func TestNetSeeded(t *testing.T) {
	a, err := nn.NewSeeded([]int{3, 4, 2}, 7)
	require.NoError(t, err)
	b, err := nn.NewSeeded([]int{3, 4, 2}, 7)
	require.NoError(t, err)
	assert.True(t, a.Equal(b))
	assert.False(t, a.Equal(nil))
}

func TestNetCustom(t *testing.T) {
	net, err := nn.NewCustom([]int{2, 2, 1},
		func(layer int) nn.Fun {
			if layer == 0 {
				return nn.LeakyReLU
			}
			return nn.Identity
		},
		func(int) float64 { return 0.5 },
	)
	require.NoError(t, err)

	layers := net.Layers()
	assert.Equal(t, nn.LeakyReLU, layers[0][0].Activation)
	assert.Equal(t, nn.Identity, layers[1][0].Activation)

	// hidden: 0.5 + 0.5 + 0.5 = 1.5 each, output: 0.5 + 1.5*0.5*2 = 2
	out, err := net.Predict([]float64{1, 1})
	require.NoError(t, err)
	assert.InDelta(t, 2.0, out[0], 1e-12)
}

func TestNetFit(t *testing.T) {
	net := readmeNet(t)
	input, expected := []float64{0.2, 0.6}, []float64{0.9}

	before, err := net.Predict(input)
	require.NoError(t, err)

	trained, err := net.Fit(0.5, input, expected)
	require.NoError(t, err)
	after, err := trained.Predict(input)
	require.NoError(t, err)
	assert.Greater(t, after[0], before[0])

	again, err := net.Predict(input)
	require.NoError(t, err)
	assert.Equal(t, before, again, "Fit must not change the receiver")

	par, err := net.FitPar(0.5, input, expected)
	require.NoError(t, err)
	assert.True(t, trained.Equal(par))

	withSGD, err := net.FitWith(optim.NewSGD(optim.SGDConfig{LR: 0.5}), input, expected, false)
	require.NoError(t, err)
	assert.True(t, trained.Equal(withSGD))

	_, err = net.Fit(0, input, expected)
	assert.ErrorIs(t, err, nn.ErrLearningRate)
}

func TestNetErrors(t *testing.T) {
	net := readmeNet(t)
	seq, err := net.Errors([]float64{0.2, 0.6}, []float64{0.9}, false)
	require.NoError(t, err)
	par, err := net.Errors([]float64{0.2, 0.6}, []float64{0.9}, true)
	require.NoError(t, err)
	assert.Len(t, seq, 2)
	assert.Equal(t, seq, par)
}

func TestNetJSON(t *testing.T) {
	net := readmeNet(t)

	data, err := net.JSON()
	require.NoError(t, err)
	assert.JSONEq(t, readmeJSON, string(data))

	back, err := nn.FromJSON(data)
	require.NoError(t, err)
	assert.True(t, net.Equal(back))

	wrapped := struct {
		Net *nn.Net `json:"net"`
	}{Net: net}
	compact, err := json.Marshal(wrapped)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(compact), `{"net":[[{"activationF":"sigmoid"`))

	var decoded struct {
		Net *nn.Net `json:"net"`
	}
	require.NoError(t, json.Unmarshal(compact, &decoded))
	assert.True(t, net.Equal(decoded.Net))

	_, err = nn.FromJSON([]byte(`[]`))
	assert.ErrorIs(t, err, nn.ErrMalformedNetwork)
	_, err = nn.FromJSON([]byte(`[[{"activationF":"relu","weights":[1,2]}]]`))
	assert.ErrorIs(t, err, nn.ErrUnknownActivation)
}

func TestNetSVGAndFingerprint(t *testing.T) {
	net := readmeNet(t)
	svg := net.SVG()
	assert.True(t, strings.HasPrefix(svg, "<svg"))
	assert.Equal(t, svg, readmeNet(t).SVG())

	a, err := net.Fingerprint()
	require.NoError(t, err)
	b, err := readmeNet(t).Fingerprint()
	require.NoError(t, err)
	assert.Equal(t, a, b)
	assert.Len(t, a, 64)
}

func TestParseFun(t *testing.T) {
	f, err := nn.ParseFun("leakyReLU")
	require.NoError(t, err)
	assert.Equal(t, nn.LeakyReLU, f)

	_, err = nn.ParseFun("relu")
	assert.ErrorIs(t, err, nn.ErrUnknownActivation)
}
