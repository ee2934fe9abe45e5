// Package svg draws a network as a Scalable Vector Graphics document.
//
// Columns are laid out left to right: the input column, then one column per
// layer. Every column except the last starts with a bias node. Neuron fill
// color encodes the activation function; a synapse is drawn dark for a
// positive weight and red for a negative one, with stroke-opacity equal to
// |w| divided by the largest absolute weight in the network.
//
// Rendering is deterministic: identical networks produce identical documents.
package svg

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"gonum.org/v1/gonum/floats"

	"github.com/born-ml/synapses/internal/nn"
)

// Node and synapse colors.
const (
	InputColor    = "#95A5A6"
	BiasColor     = "#F4D03F"
	PositiveColor = "#2C3E50"
	NegativeColor = "#C0392B"
	OutlineColor  = "#17202A"
)

var activationColors = map[nn.Activation]string{
	nn.Identity:  "#8E44AD",
	nn.Sigmoid:   "#2E86C1",
	nn.Tanh:      "#28B463",
	nn.LeakyReLU: "#E67E22",
}

// ActivationColor returns the fill color used for neurons with activation a.
func ActivationColor(a nn.Activation) string {
	return activationColors[a]
}

// Config controls the geometry of the drawing, in pixels.
type Config struct {
	Margin      float64 // Space around the drawing
	NodeRadius  float64 // Circle radius of every node
	ColumnGap   float64 // Horizontal distance between columns
	RowGap      float64 // Vertical distance between nodes of a column
	StrokeWidth float64 // Synapse line width
}

// DefaultConfig returns the geometry used by Render.
func DefaultConfig() Config {
	return Config{
		Margin:      20,
		NodeRadius:  8,
		ColumnGap:   120,
		RowGap:      40,
		StrokeWidth: 2,
	}
}

// Render draws net with DefaultConfig.
func Render(net *nn.Network) string {
	return RenderWith(net, DefaultConfig())
}

// RenderWith draws net with the given geometry.
func RenderWith(net *nn.Network, cfg Config) string {
	layers := net.Layers()
	columns := columnSizes(net, layers)

	tallest := 0
	for _, size := range columns {
		tallest = max(tallest, size)
	}
	width := 2*cfg.Margin + float64(len(columns)-1)*cfg.ColumnGap
	height := 2*cfg.Margin + float64(tallest-1)*cfg.RowGap

	x := func(column int) float64 {
		return cfg.Margin + float64(column)*cfg.ColumnGap
	}
	y := func(column, row int) float64 {
		offset := float64(tallest-columns[column]) * cfg.RowGap / 2
		return cfg.Margin + offset + float64(row)*cfg.RowGap
	}

	maxAbs := 0.0
	for _, layer := range layers {
		for _, neuron := range layer {
			maxAbs = math.Max(maxAbs, floats.Norm(neuron.Weights, math.Inf(1)))
		}
	}

	var b strings.Builder
	fmt.Fprintf(&b, "<svg xmlns=\"http://www.w3.org/2000/svg\" width=\"%s\" height=\"%s\" viewBox=\"0 0 %s %s\">\n",
		num(width), num(height), num(width), num(height))

	fmt.Fprintf(&b, "<g stroke-width=\"%s\">\n", num(cfg.StrokeWidth))
	for i, layer := range layers {
		target := i + 1
		// Neurons sit below the bias node unless this is the output column.
		shift := 1
		if target == len(columns)-1 {
			shift = 0
		}
		for j, neuron := range layer {
			for k, w := range neuron.Weights {
				color := PositiveColor
				if w < 0 {
					color = NegativeColor
				}
				fmt.Fprintf(&b, "<line x1=\"%s\" y1=\"%s\" x2=\"%s\" y2=\"%s\" stroke=\"%s\" stroke-opacity=\"%s\"/>\n",
					num(x(i)), num(y(i, k)), num(x(target)), num(y(target, j+shift)),
					color, opacity(w, maxAbs))
			}
		}
	}
	b.WriteString("</g>\n")

	fmt.Fprintf(&b, "<g stroke=\"%s\" stroke-width=\"1\">\n", OutlineColor)
	for column, size := range columns {
		last := column == len(columns)-1
		for row := 0; row < size; row++ {
			fmt.Fprintf(&b, "<circle cx=\"%s\" cy=\"%s\" r=\"%s\" fill=\"%s\"/>\n",
				num(x(column)), num(y(column, row)), num(cfg.NodeRadius),
				nodeColor(layers, column, row, last))
		}
	}
	b.WriteString("</g>\n")
	b.WriteString("</svg>\n")
	return b.String()
}

// columnSizes returns the node count of every column, bias nodes included.
func columnSizes(net *nn.Network, layers []nn.Layer) []int {
	sizes := make([]int, 0, len(layers)+1)
	sizes = append(sizes, net.InputSize()+1)
	for i, layer := range layers {
		if i == len(layers)-1 {
			sizes = append(sizes, layer.Size())
		} else {
			sizes = append(sizes, layer.Size()+1)
		}
	}
	return sizes
}

func nodeColor(layers []nn.Layer, column, row int, last bool) string {
	if !last && row == 0 {
		return BiasColor
	}
	if column == 0 {
		return InputColor
	}
	if !last {
		row--
	}
	return ActivationColor(layers[column-1][row].Activation)
}

func opacity(w, maxAbs float64) string {
	if maxAbs == 0 {
		return "0.0000"
	}
	return strconv.FormatFloat(math.Abs(w)/maxAbs, 'f', 4, 64)
}

func num(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
