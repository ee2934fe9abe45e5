package main

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"math/rand"
	"os"
	"path/filepath"
	"slices"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/google/uuid"

	"github.com/born-ml/synapses/codec"
	"github.com/born-ml/synapses/nn"
	"github.com/born-ml/synapses/stats"
)

// Files written by train.
const (
	networkFile     = "network.json"
	inputCodecFile  = "inputs.codec.json"
	outputCodecFile = "outputs.codec.json"
)

const defaultLearnRate = 0.01

func (a *app) runInit(_ context.Context, args []string) error {
	fs := flag.NewFlagSet("init", flag.ContinueOnError)
	layers := fs.String("layers", "", "comma-separated layer sizes, input width first (e.g. 2,3,1)")
	seed := fs.Int64("seed", 0, "weight seed; 0 draws a fresh seed")
	activations := fs.String("activations", "", "comma-separated activation per neuron layer, or one for all (default sigmoid)")
	out := fs.String("out", "", "output path (default stdout)")
	if err := fs.Parse(args); err != nil {
		return err
	}

	sizes, err := parseInts(*layers)
	if err != nil {
		return err
	}
	net, err := newNetwork(sizes, splitList(*activations), *seed)
	if err != nil {
		return err
	}
	data, err := net.JSON()
	if err != nil {
		return err
	}
	return a.emit(*out, data, "network")
}

// newNetwork builds a network with one activation per neuron layer. A single
// activation applies to every layer.
func newNetwork(sizes []int, activations []string, seed int64) (*nn.Net, error) {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	if len(activations) == 0 {
		return nn.NewSeeded(sizes, seed)
	}

	funs := make([]nn.Fun, len(activations))
	for i, name := range activations {
		f, err := nn.ParseFun(name)
		if err != nil {
			return nil, err
		}
		funs[i] = f
	}
	if len(funs) != 1 && len(funs) != len(sizes)-1 {
		return nil, fmt.Errorf("got %d activations for %d layers of neurons", len(funs), max(len(sizes)-1, 0))
	}

	rng := rand.New(rand.NewSource(seed))
	return nn.NewCustom(sizes,
		func(layer int) nn.Fun { return funs[min(layer, len(funs)-1)] },
		func(int) float64 { return 1 - 2*rng.Float64() },
	)
}

func (a *app) runCodec(_ context.Context, args []string) error {
	fs := flag.NewFlagSet("codec", flag.ContinueOnError)
	dataPath := fs.String("data", "", "CSV file with a header row")
	columns := fs.String("columns", "", "comma-separated columns to encode (default all)")
	discrete := fs.String("discrete", "", "comma-separated discrete columns")
	out := fs.String("out", "", "output path (default stdout)")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *dataPath == "" {
		return usageError("codec: -data is required")
	}

	ds, err := loadDataset(*dataPath)
	if err != nil {
		return err
	}
	names := splitList(*columns)
	if len(names) == 0 {
		names = ds.columns
	}
	c, err := buildCodec(ds, names, splitList(*discrete))
	if err != nil {
		return err
	}
	data, err := c.JSON()
	if err != nil {
		return err
	}
	return a.emit(*out, data, "codec")
}

func buildCodec(ds *dataset, names, discrete []string) (*codec.Codec, error) {
	attrs := make([]codec.Attribute, len(names))
	for i, name := range names {
		if !slices.Contains(ds.columns, name) {
			return nil, fmt.Errorf("unknown column %q", name)
		}
		attrs[i] = codec.Attribute{Name: name, Discrete: slices.Contains(discrete, name)}
	}
	return codec.Build(attrs, slices.Values(ds.points))
}

type observation struct {
	input, expected []float64
}

func (a *app) runTrain(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("train", flag.ContinueOnError)
	dataPath := fs.String("data", "", "CSV file with a header row")
	targets := fs.String("targets", "", "comma-separated output columns")
	discrete := fs.String("discrete", "", "comma-separated discrete columns")
	hidden := fs.String("hidden", "", "comma-separated hidden layer sizes")
	netPath := fs.String("net", "", "continue training this network instead of a new one")
	lr := fs.Float64("lr", defaultLearnRate, "learning rate")
	epochs := fs.Int("epochs", 10, "passes over the data")
	seed := fs.Int64("seed", 0, "weight seed for a new network; 0 draws a fresh seed")
	inParallel := fs.Bool("parallel", false, "process the neurons of each layer in parallel")
	out := fs.String("out", ".", "output directory")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *dataPath == "" {
		return usageError("train: -data is required")
	}
	targetNames := splitList(*targets)
	if len(targetNames) == 0 {
		return usageError("train: -targets is required")
	}
	if *epochs < 1 {
		return fmt.Errorf("train: epochs must be positive, got %d", *epochs)
	}

	logger := a.logger.With("run", uuid.NewString())

	ds, err := loadDataset(*dataPath)
	if err != nil {
		return err
	}
	var inputNames []string
	for _, name := range ds.columns {
		if !slices.Contains(targetNames, name) {
			inputNames = append(inputNames, name)
		}
	}
	if len(inputNames) == 0 {
		return errors.New("train: every column is a target")
	}

	discreteNames := splitList(*discrete)
	inCodec, err := buildCodec(ds, inputNames, discreteNames)
	if err != nil {
		return fmt.Errorf("input codec: %w", err)
	}
	outCodec, err := buildCodec(ds, targetNames, discreteNames)
	if err != nil {
		return fmt.Errorf("output codec: %w", err)
	}

	observations := make([]observation, len(ds.points))
	for i, point := range ds.points {
		in, err := inCodec.Encode(point)
		if err != nil {
			return fmt.Errorf("row %d: %w", i+1, err)
		}
		exp, err := outCodec.Encode(point)
		if err != nil {
			return fmt.Errorf("row %d: %w", i+1, err)
		}
		observations[i] = observation{input: in, expected: exp}
	}

	net, err := trainingNetwork(*netPath, *hidden, *seed, inCodec.Width(), outCodec.Width())
	if err != nil {
		return err
	}

	logger.Info("training started",
		"rows", humanize.Comma(int64(len(observations))),
		"layers", net.LayerSizes(),
		"lr", *lr,
		"epochs", *epochs,
		"parallel", *inParallel)

	fit := (*nn.Net).Fit
	if *inParallel {
		fit = (*nn.Net).FitPar
	}
	for epoch := 1; epoch <= *epochs; epoch++ {
		if err := ctx.Err(); err != nil {
			return err
		}
		start := time.Now()
		for _, obs := range observations {
			if net, err = fit(net, *lr, obs.input, obs.expected); err != nil {
				return err
			}
		}
		pairs, err := evaluate(net, observations, *inParallel)
		if err != nil {
			return err
		}
		rmse, err := stats.RMSE(slices.Values(pairs))
		if err != nil {
			return err
		}
		score, err := stats.Score(slices.Values(pairs))
		if err != nil {
			return err
		}
		logger.Info("epoch finished",
			"epoch", epoch,
			"rmse", rmse,
			"score", score,
			"took", time.Since(start).Round(time.Millisecond).String())
	}

	if err := os.MkdirAll(*out, 0o755); err != nil {
		return err
	}
	artifacts := []struct {
		name    string
		marshal func() ([]byte, error)
	}{
		{networkFile, net.JSON},
		{inputCodecFile, inCodec.JSON},
		{outputCodecFile, outCodec.JSON},
	}
	for _, artifact := range artifacts {
		data, err := artifact.marshal()
		if err != nil {
			return err
		}
		if err := writeFile(logger, filepath.Join(*out, artifact.name), data); err != nil {
			return err
		}
	}

	fingerprint, err := net.Fingerprint()
	if err != nil {
		return err
	}
	logger.Info("training finished", "fingerprint", fingerprint)
	return nil
}

// trainingNetwork loads path when set, otherwise creates a fresh sigmoid
// network between the codec widths.
func trainingNetwork(path, hidden string, seed int64, inWidth, outWidth int) (*nn.Net, error) {
	if path != "" {
		net, err := readNetwork(path)
		if err != nil {
			return nil, err
		}
		if net.InputSize() != inWidth || net.OutputSize() != outWidth {
			return nil, fmt.Errorf("%w: network %s maps %d to %d values, data needs %d to %d",
				nn.ErrDimensionMismatch, path, net.InputSize(), net.OutputSize(), inWidth, outWidth)
		}
		return net, nil
	}

	hiddenSizes, err := parseInts(hidden)
	if err != nil {
		return nil, err
	}
	sizes := append(append([]int{inWidth}, hiddenSizes...), outWidth)
	return newNetwork(sizes, nil, seed)
}

func evaluate(net *nn.Net, observations []observation, inParallel bool) ([]stats.Pair, error) {
	predict := net.Predict
	if inParallel {
		predict = net.ParPredict
	}
	pairs := make([]stats.Pair, len(observations))
	for i, obs := range observations {
		out, err := predict(obs.input)
		if err != nil {
			return nil, err
		}
		pairs[i] = stats.Pair{Expected: obs.expected, Predicted: out}
	}
	return pairs, nil
}

func (a *app) runPredict(_ context.Context, args []string) error {
	fs := flag.NewFlagSet("predict", flag.ContinueOnError)
	netPath := fs.String("net", "", "network JSON file")
	input := fs.String("input", "", "comma-separated input values")
	decode := fs.String("decode", "", "decode the output with this codec JSON file")
	inParallel := fs.Bool("parallel", false, "evaluate the neurons of each layer in parallel")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *netPath == "" {
		return usageError("predict: -net is required")
	}

	net, err := readNetwork(*netPath)
	if err != nil {
		return err
	}
	values, err := parseFloats(*input)
	if err != nil {
		return err
	}

	predict := net.Predict
	if *inParallel {
		predict = net.ParPredict
	}
	out, err := predict(values)
	if err != nil {
		return err
	}

	if *decode == "" {
		_, err = fmt.Fprintln(a.stdout, formatFloats(out))
		return err
	}
	data, err := os.ReadFile(*decode)
	if err != nil {
		return err
	}
	c, err := codec.FromJSON(data)
	if err != nil {
		return fmt.Errorf("read %s: %w", *decode, err)
	}
	point, err := c.Decode(out)
	if err != nil {
		return err
	}
	enc := json.NewEncoder(a.stdout)
	return enc.Encode(point)
}

func (a *app) runSVG(_ context.Context, args []string) error {
	fs := flag.NewFlagSet("svg", flag.ContinueOnError)
	netPath := fs.String("net", "", "network JSON file")
	out := fs.String("out", "", "output path (default stdout)")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *netPath == "" {
		return usageError("svg: -net is required")
	}

	net, err := readNetwork(*netPath)
	if err != nil {
		return err
	}
	return a.emit(*out, []byte(net.SVG()), "svg")
}

func readNetwork(path string) (*nn.Net, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	net, err := nn.FromJSON(data)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return net, nil
}

// emit writes data to path, or to stdout when path is empty.
func (a *app) emit(path string, data []byte, kind string) error {
	if path == "" {
		if _, err := a.stdout.Write(data); err != nil {
			return err
		}
		if !bytes.HasSuffix(data, []byte("\n")) {
			_, err := fmt.Fprintln(a.stdout)
			return err
		}
		return nil
	}
	return writeFile(a.logger.With("kind", kind), path, data)
}

func writeFile(logger *slog.Logger, path string, data []byte) error {
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return err
	}
	logger.Info("wrote file", "path", path, "size", humanize.Bytes(uint64(len(data))))
	return nil
}
