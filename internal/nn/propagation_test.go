package nn

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/born-ml/synapses/internal/parallel"
)

// eager runs every layer on goroutines, however small.
var eager = parallel.Config{Enabled: true, NumWorkers: 4, MinChunkSize: 1}

func squaredError(t *testing.T, net *Network, input, expected []float64) float64 {
	t.Helper()
	out, err := net.Predict(input)
	require.NoError(t, err)
	sum := 0.0
	for i := range out {
		d := out[i] - expected[i]
		sum += d * d
	}
	return sum
}

func randomVector(rng *rand.Rand, n int) []float64 {
	v := make([]float64, n)
	for i := range v {
		v[i] = rng.Float64()
	}
	return v
}

func TestPredict(t *testing.T) {
	net := readmeNetwork(t)

	out, err := net.Predict([]float64{0.2, 0.6})
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.InDelta(t, 0.49131100324012494, out[0], 1e-12)
}

func TestPredictDimensionMismatch(t *testing.T) {
	net := readmeNetwork(t)

	_, err := net.Predict([]float64{0.2})
	assert.ErrorIs(t, err, ErrDimensionMismatch)

	_, err = net.PredictParallel([]float64{0.2, 0.6, 0.1}, eager)
	assert.ErrorIs(t, err, ErrDimensionMismatch)
}

func TestPredictParallelMatchesSequential(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	for seed := int64(0); seed < 5; seed++ {
		net := mixedNetwork(t, seed)
		input := randomVector(rng, net.InputSize())

		seq, err := net.Predict(input)
		require.NoError(t, err)
		par, err := net.PredictParallel(input, eager)
		require.NoError(t, err)

		assert.InDeltaSlice(t, seq, par, 1e-9)
	}
}

func TestFitDoesNotMutateReceiver(t *testing.T) {
	net := readmeNetwork(t)
	before := net.Layers()

	fitted, err := net.Fit(0.1, []float64{0.2, 0.6}, []float64{0.9})
	require.NoError(t, err)

	assert.True(t, readmeNetwork(t).Equal(net))
	assert.Equal(t, before, net.Layers())
	assert.False(t, fitted.Equal(net))
}

func TestFitMovesTowardTarget(t *testing.T) {
	net := readmeNetwork(t)
	input, expected := []float64{0.2, 0.6}, []float64{0.9}

	before, err := net.Predict(input)
	require.NoError(t, err)

	fitted, err := net.Fit(0.1, input, expected)
	require.NoError(t, err)
	after, err := fitted.Predict(input)
	require.NoError(t, err)

	assert.Greater(t, after[0], before[0])
}

func TestFitConvergesOnFixedObservation(t *testing.T) {
	net, err := NewSeeded([]int{4, 6, 5, 3}, 1000)
	require.NoError(t, err)
	rng := rand.New(rand.NewSource(5))
	input := randomVector(rng, net.InputSize())
	expected := randomVector(rng, net.OutputSize())

	prev := squaredError(t, net, input, expected)
	first := prev
	for i := 0; i < 50; i++ {
		net, err = net.Fit(0.1, input, expected)
		require.NoError(t, err)

		current := squaredError(t, net, input, expected)
		assert.LessOrEqual(t, current, prev, "step %d", i)
		prev = current
	}
	assert.Less(t, prev, first)
}

func TestFitParallelMatchesSequential(t *testing.T) {
	rng := rand.New(rand.NewSource(9))
	net := mixedNetwork(t, 2)
	input := randomVector(rng, net.InputSize())
	expected := randomVector(rng, net.OutputSize())

	seq, err := net.Fit(0.05, input, expected)
	require.NoError(t, err)
	par, err := net.FitParallel(0.05, input, expected, eager)
	require.NoError(t, err)

	seqLayers, parLayers := seq.Layers(), par.Layers()
	for i := range seqLayers {
		for j := range seqLayers[i] {
			assert.InDeltaSlice(t, seqLayers[i][j].Weights, parLayers[i][j].Weights, 1e-12)
		}
	}
}

func TestFitValidation(t *testing.T) {
	net := readmeNetwork(t)

	_, err := net.Fit(0.1, []float64{0.2}, []float64{0.9})
	assert.ErrorIs(t, err, ErrDimensionMismatch)

	_, err = net.Fit(0.1, []float64{0.2, 0.6}, []float64{0.9, 0.1})
	assert.ErrorIs(t, err, ErrDimensionMismatch)

	for _, lr := range []float64{0, -0.1} {
		_, err = net.Fit(lr, []float64{0.2, 0.6}, []float64{0.9})
		assert.ErrorIs(t, err, ErrLearningRate)
	}
}

// TestFitGradientCheck verifies that the weight update equals the numerical
// gradient of 0.5·Σ(y-t)² for every weight of the network.
func TestFitGradientCheck(t *testing.T) {
	const (
		h  = 1e-6
		lr = 1.0
	)
	net := mixedNetwork(t, 21)
	rng := rand.New(rand.NewSource(13))
	input := randomVector(rng, net.InputSize())
	expected := randomVector(rng, net.OutputSize())

	loss := func(n *Network) float64 {
		return 0.5 * squaredError(t, n, input, expected)
	}

	fitted, err := net.Fit(lr, input, expected)
	require.NoError(t, err)

	original, updated := net.Layers(), fitted.Layers()
	for i := range original {
		for j := range original[i] {
			for k := range original[i][j].Weights {
				perturbed := net.Layers()
				perturbed[i][j].Weights[k] += h
				plus, err := FromLayers(perturbed)
				require.NoError(t, err)
				perturbed[i][j].Weights[k] -= 2 * h
				minus, err := FromLayers(perturbed)
				require.NoError(t, err)

				numeric := (loss(plus) - loss(minus)) / (2 * h)
				analytic := (original[i][j].Weights[k] - updated[i][j].Weights[k]) / lr
				assert.InDelta(t, numeric, analytic, 1e-6, "layer %d neuron %d weight %d", i, j, k)
			}
		}
	}
}

// TestErrorsMatchInputGradient checks that Errors returns the gradient of
// 0.5·Σ(y-t)² with respect to each input feature.
func TestErrorsMatchInputGradient(t *testing.T) {
	const h = 1e-6
	net := mixedNetwork(t, 4)
	rng := rand.New(rand.NewSource(17))
	input := randomVector(rng, net.InputSize())
	expected := randomVector(rng, net.OutputSize())

	errs, err := net.Errors(input, expected, false)
	require.NoError(t, err)
	require.Len(t, errs, net.InputSize())

	for k := range input {
		plus := append([]float64(nil), input...)
		minus := append([]float64(nil), input...)
		plus[k] += h
		minus[k] -= h
		numeric := (0.5*squaredError(t, net, plus, expected) - 0.5*squaredError(t, net, minus, expected)) / (2 * h)
		assert.InDelta(t, numeric, errs[k], 1e-6, "feature %d", k)
	}

	parErrs, err := net.ErrorsWith(input, expected, eager)
	require.NoError(t, err)
	assert.InDeltaSlice(t, errs, parErrs, 1e-12)
}

func TestErrorsZeroWhenExpectedIsPrediction(t *testing.T) {
	net := mixedNetwork(t, 8)
	input := []float64{1.0, 0.5625, 0.511111, 0.47619}

	prediction, err := net.Predict(input)
	require.NoError(t, err)

	for _, inParallel := range []bool{false, true} {
		errs, err := net.Errors(input, prediction, inParallel)
		require.NoError(t, err)
		assert.InDeltaSlice(t, []float64{0, 0, 0, 0}, errs, 1e-4)
	}
}

func TestErrorsDimensionMismatch(t *testing.T) {
	net := readmeNetwork(t)

	_, err := net.Errors([]float64{0.1, 0.2, 0.3}, []float64{0.5}, false)
	assert.ErrorIs(t, err, ErrDimensionMismatch)

	_, err = net.Errors([]float64{0.1, 0.2}, nil, true)
	assert.ErrorIs(t, err, ErrDimensionMismatch)
}

func BenchmarkPredict(b *testing.B) {
	net, err := NewSeeded([]int{256, 512, 512, 10}, 1)
	require.NoError(b, err)
	input := randomVector(rand.New(rand.NewSource(1)), 256)

	b.Run("sequential", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			_, _ = net.Predict(input)
		}
	})

	b.Run("parallel", func(b *testing.B) {
		cfg := parallel.DefaultConfig()
		for i := 0; i < b.N; i++ {
			_, _ = net.PredictParallel(input, cfg)
		}
	})
}

func BenchmarkFit(b *testing.B) {
	net, err := NewSeeded([]int{256, 512, 512, 10}, 1)
	require.NoError(b, err)
	rng := rand.New(rand.NewSource(1))
	input, expected := randomVector(rng, 256), randomVector(rng, 10)

	b.Run("sequential", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			_, _ = net.Fit(0.01, input, expected)
		}
	})

	b.Run("parallel", func(b *testing.B) {
		cfg := parallel.DefaultConfig()
		for i := 0; i < b.N; i++ {
			_, _ = net.FitParallel(0.01, input, expected, cfg)
		}
	})
}
