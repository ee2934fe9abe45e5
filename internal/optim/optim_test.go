package optim_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/born-ml/synapses/internal/optim"
)

func TestSGD_SimpleUpdate(t *testing.T) {
	sgd := optim.NewSGD(optim.SGDConfig{LR: 0.5})

	weights := []float64{1.0, 2.0, -1.0}
	dst := make([]float64, len(weights))
	sgd.Update(dst, weights, 0.2, []float64{1.0, 3.0})

	// bias: 1 - 0.5*0.2*1, w1: 2 - 0.5*0.2*1, w2: -1 - 0.5*0.2*3
	assert.InDeltaSlice(t, []float64{0.9, 1.9, -1.3}, dst, 1e-12)
	assert.Equal(t, []float64{1.0, 2.0, -1.0}, weights, "source weights must stay untouched")
}

func TestSGD_ZeroDeltaKeepsWeights(t *testing.T) {
	sgd := optim.NewSGD(optim.SGDConfig{LR: 0.1})

	weights := []float64{0.3, -0.7}
	dst := make([]float64, 2)
	sgd.Update(dst, weights, 0, []float64{42})

	assert.Equal(t, weights, dst)
}

func TestSGD_DefaultLR(t *testing.T) {
	sgd := optim.NewSGD(optim.SGDConfig{})
	assert.Equal(t, optim.DefaultLR, sgd.GetLR())

	sgd.SetLR(0.3)
	assert.Equal(t, 0.3, sgd.GetLR())
}

func TestSGD_ImplementsOptimizer(t *testing.T) {
	var _ optim.Optimizer = optim.NewSGD(optim.SGDConfig{LR: 1})
}
