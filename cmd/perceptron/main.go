// Command perceptron trains a single neuron by finite-difference gradient
// descent and prints its parameters before and after training.
package main

import (
	"flag"
	"fmt"
	"log"

	"github.com/pkg/errors"

	"github.com/FlavioCFOliveira/GoPerceptron/internal/activations"
	"github.com/FlavioCFOliveira/GoPerceptron/internal/data"
	"github.com/FlavioCFOliveira/GoPerceptron/internal/diff"
	"github.com/FlavioCFOliveira/GoPerceptron/internal/loss"
	"github.com/FlavioCFOliveira/GoPerceptron/internal/net"
	"github.com/FlavioCFOliveira/GoPerceptron/internal/neuron"
	"github.com/FlavioCFOliveira/GoPerceptron/internal/opt"
)

func main() {
	scenario := flag.String("scenario", "classification", "built-in samples: regression or classification")
	csvPath := flag.String("csv", "", "load samples from a CSV file instead of a built-in scenario")
	labelCol := flag.Int("label", -1, "CSV column holding the expected value, negative counts from the end")
	header := flag.Bool("header", false, "CSV has a header row")
	normalize := flag.Bool("normalize", false, "min-max normalize inputs before training")
	actName := flag.String("activation", "", "activation override: identity, sigmoid, tanh, relu")
	steps := flag.Int("steps", 50000, "number of training steps")
	seed := flag.Uint64("seed", 1, "seed for weight initialisation")
	lr := flag.Float64("lr", opt.DefaultLearningRate, "learning rate")
	eps := flag.Float64("eps", diff.DefaultEps, "finite-difference step")
	workers := flag.Int("workers", 0, "measure gradients on N goroutines (0 or 1: sequential, -1: one per core)")
	every := flag.Int("every", 10000, "report cost every N steps")
	logFile := flag.String("log", "", "write the cost curve to this CSV file")
	check := flag.Bool("check", false, "print a forward vs central gradient check after training")
	flag.Parse()

	ds, act, err := samples(*scenario, *csvPath, *labelCol, *header)
	if err != nil {
		log.Fatal(err)
	}
	if *actName != "" {
		if act, err = activations.Parse(*actName); err != nil {
			log.Fatal(err)
		}
	}
	if *normalize {
		ds.Normalize()
	}

	features := len(ds.Inputs[0])
	if err := ds.Validate(features, 1); err != nil {
		log.Fatal(err)
	}

	n := neuron.New(act, features, neuron.Uniform(*seed))
	mse := loss.MSE{}

	fmt.Println("*** Before training ***")
	report(n, diff.Cost(n, mse, ds, ds.Len()))

	trainer := &opt.Trainer{
		Optimizer: opt.SGD{LearningRate: *lr},
		Estimator: diff.Estimator{Eps: *eps},
		Workers:   *workers,
	}
	if *workers < 0 {
		trainer.Workers = opt.DefaultWorkers()
	}

	callbacks := []net.Callback{net.Logger{}}
	if *logFile != "" {
		callbacks = append(callbacks, net.NewCSVLogger(*logFile, false))
	}
	cost := net.Fit(n, mse, ds, net.FitConfig{Steps: *steps, Trainer: trainer, Every: *every}, callbacks...)

	fmt.Println("*** After training ***")
	report(n, cost)

	fmt.Println("*** Tests ***")
	for i, x := range ds.Inputs {
		fmt.Printf("Input %v - Output %.4f (expected %v)\n", x, n.Compute(x), ds.Expected[i][0])
	}

	if *check {
		fmt.Println("*** Gradient check ***")
		for _, c := range trainer.Estimator.CheckAll(n, mse, ds, ds.Len()) {
			fmt.Printf("%-8s forward=%+.6e central=%+.6e |diff|=%.2e\n", c.Param, c.Forward, c.Central, c.AbsDiff())
		}
	}
}

func report(n *neuron.Neuron, cost float64) {
	fmt.Printf("Cost      : %v\n", cost)
	for i, w := range n.Weights {
		fmt.Printf("Weight %-3d: %v\n", i+1, w)
	}
	fmt.Printf("Bias      : %v\n", n.Bias)
}

// samples returns the training set and its natural activation.
func samples(scenario, csvPath string, labelCol int, header bool) (*data.Dataset, activations.Activation, error) {
	if csvPath != "" {
		ds, err := data.LoadCSV(csvPath, []int{labelCol}, header)
		return ds, activations.Identity{}, err
	}

	switch scenario {
	case "regression":
		// y = 3*x1 + 2*x2 + 5
		return data.FromScalars(
			[][]float64{{2, 15}, {8, 3}, {1, 1}, {4, 7}, {6, 2}},
			[]float64{41, 35, 10, 31, 27},
		), activations.Identity{}, nil
	case "classification":
		return data.FromScalars(
			[][]float64{{6, 1}, {5, 0}, {4, 1}, {1, 4}, {1, 2}, {2, 3}},
			[]float64{1, 1, 1, 0, 0, 0},
		), activations.Sigmoid{}, nil
	}
	return nil, nil, errors.Errorf("unknown scenario %q", scenario)
}
