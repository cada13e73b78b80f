// Command mlp trains a small layered network of perceptrons with
// finite-difference gradients and prints its layers.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"gonum.org/v1/gonum/mat"

	"github.com/FlavioCFOliveira/GoPerceptron/internal/activations"
	"github.com/FlavioCFOliveira/GoPerceptron/internal/data"
	"github.com/FlavioCFOliveira/GoPerceptron/internal/diff"
	"github.com/FlavioCFOliveira/GoPerceptron/internal/loss"
	"github.com/FlavioCFOliveira/GoPerceptron/internal/net"
	"github.com/FlavioCFOliveira/GoPerceptron/internal/neuron"
	"github.com/FlavioCFOliveira/GoPerceptron/internal/opt"
)

func main() {
	layers := flag.String("layers", "2,3,1", "comma-separated layer widths, inputs first")
	hiddenName := flag.String("hidden", "sigmoid", "hidden layer activation")
	outputName := flag.String("output", "sigmoid", "output layer activation")
	csvPath := flag.String("csv", "", "load samples from a CSV file (last column is the label)")
	header := flag.Bool("header", false, "CSV has a header row")
	steps := flag.Int("steps", 20000, "number of training steps")
	seed := flag.Uint64("seed", 1, "seed for weight initialisation")
	workers := flag.Int("workers", 1, "measure gradients on N goroutines (-1: one per core)")
	every := flag.Int("every", 2000, "report cost every N steps")
	split := flag.Float64("split", 1, "fraction of samples used for training; the rest is held out")
	logFile := flag.String("log", "", "write step, cost and parameters to this CSV file")
	flag.Parse()

	widths, err := parseInts(*layers)
	if err != nil {
		log.Fatal(errors.Wrap(err, "parsing -layers"))
	}
	hidden, err := activations.Parse(*hiddenName)
	if err != nil {
		log.Fatal(err)
	}
	output, err := activations.Parse(*outputName)
	if err != nil {
		log.Fatal(err)
	}

	network, err := net.Build(widths, hidden, output, neuron.Uniform(*seed))
	if err != nil {
		log.Fatal(err)
	}

	ds := data.FromScalars(
		[][]float64{{6, 1}, {5, 0}, {4, 1}, {1, 4}, {1, 2}, {2, 3}},
		[]float64{1, 1, 1, 0, 0, 0},
	)
	if *csvPath != "" {
		if ds, err = data.LoadCSV(*csvPath, []int{-1}, *header); err != nil {
			log.Fatal(err)
		}
		ds.Normalize()
	}
	if err := ds.Validate(widths[0], network.Outputs()); err != nil {
		log.Fatal(err)
	}
	train, test, err := holdout(ds, *split)
	if err != nil {
		log.Fatal(err)
	}

	for j, f := range ds.Summary() {
		fmt.Printf("feature %d: mean=%.3f std=%.3f range=[%g, %g]\n", j, f.Mean, f.StdDev, f.Min, f.Max)
	}
	fmt.Printf("Layer widths: %v (%d training, %d held out)\n", network.Widths(), train.Len(), test.Len())
	network.Summary(os.Stdout)

	trainer := opt.NewTrainer()
	trainer.Workers = *workers
	if *workers < 0 {
		trainer.Workers = opt.DefaultWorkers()
	}

	mse := loss.MSE{}
	callbacks := []net.Callback{net.Logger{}}
	if *logFile != "" {
		callbacks = append(callbacks, net.NewCSVLogger(*logFile, false))
	}

	fmt.Printf("Initial cost: %.6f\n", diff.Cost(network, mse, train, train.Len()))
	cost := net.Fit(network, mse, train, net.FitConfig{Steps: *steps, Trainer: trainer, Every: *every}, callbacks...)
	fmt.Printf("Final cost: %.6f\n", cost)
	if test.Len() > 0 {
		fmt.Printf("Held-out cost: %.6f\n", diff.Cost(network, mse, test, test.Len()))
	}

	for i := 0; i < network.Depth(); i++ {
		fmt.Printf("\nLayer %d weights:\n%v\n", i, mat.Formatted(network.Weights(i), mat.Prefix(""), mat.Squeeze()))
		fmt.Printf("Layer %d biases:\n%v\n", i, mat.Formatted(network.Biases(i), mat.Prefix(""), mat.Squeeze()))
	}

	fmt.Println("\nPredictions:")
	for i, x := range ds.Inputs {
		fmt.Printf("Input %v - Output %.4f (expected %v)\n", x, network.Forward(x), ds.Expected[i])
	}
}

// holdout splits ds for training. ratio 1 keeps every sample for training.
func holdout(ds *data.Dataset, ratio float64) (train, test *data.Dataset, err error) {
	if ratio <= 0 || ratio > 1 {
		return nil, nil, errors.Errorf("split ratio %v outside (0, 1]", ratio)
	}
	train, test = ds.Split(ratio)
	if train.Len() == 0 {
		return nil, nil, errors.Errorf("split ratio %v leaves no training samples out of %d", ratio, ds.Len())
	}
	return train, test, nil
}

// parseInts parses a comma-separated list such as "2,3,1".
func parseInts(s string) ([]int, error) {
	parts := strings.Split(s, ",")
	out := make([]int, len(parts))
	for i, p := range parts {
		v, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return out, nil
}
