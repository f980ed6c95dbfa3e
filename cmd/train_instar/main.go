package main

import "context"
import "flag"
import "fmt"
import "os"
import "os/signal"

import "go.uber.org/zap"

import "github.com/neurlang/counterprop/config"
import "github.com/neurlang/counterprop/net/cpn"
import "github.com/neurlang/counterprop/seed"
import "github.com/neurlang/counterprop/trainer"
import "github.com/neurlang/counterprop/trainer/instar"

const defaultModel = "output.json.br"

// overrides are the command line values which take precedence over the configuration.
type overrides struct {
	set      map[string]bool // names of the flags given on the command line
	rate     float64
	maxiter  int
	dstmodel string
	resume   bool
}

// apply returns cfg with the given flags applied. Resuming keeps the loaded weights,
// so no seeding is done.
func (o overrides) apply(cfg config.Config) config.Config {
	if o.set["rate"] {
		cfg.LearningRate = o.rate
	}
	if o.set["maxiter"] {
		cfg.MaxIterations = o.maxiter
	}
	if o.set["dstmodel"] {
		cfg.Model = o.dstmodel
	}
	if cfg.Model == "" {
		cfg.Model = defaultModel
	}
	if o.resume {
		cfg.Seed = config.SeedNone
	}
	return cfg
}

func main() {
	configPath := flag.String("config", "", "training configuration .yaml file")
	dstmodel := flag.String("dstmodel", "", "model destination .json.br file")
	resume := flag.Bool("resume", false, "resume training from dstmodel")
	rate := flag.Float64("rate", 0, "learning rate, overrides the configuration")
	maxiter := flag.Int("maxiter", 0, "maximum iterations, overrides the configuration")
	verbose := flag.Bool("verbose", false, "log every iteration")
	flag.Parse()

	log := newLogger(*verbose)
	defer log.Sync()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatal("bad configuration", zap.Error(err))
	}
	o := overrides{
		set:      make(map[string]bool),
		rate:     *rate,
		maxiter:  *maxiter,
		dstmodel: *dstmodel,
		resume:   *resume,
	}
	flag.Visit(func(f *flag.Flag) {
		o.set[f.Name] = true
	})
	cfg = o.apply(cfg)

	net := cpn.MustNew(cfg.InputCount, cfg.InstarCount)
	net.SetActivation(cfg.ActivationFunc())
	corpus := cfg.Dataset()

	if err := trainer.Resume(net, resume, &cfg.Model); err != nil {
		log.Fatal("cannot resume", zap.String("model", cfg.Model), zap.Error(err))
	}
	if cfg.Seed == config.SeedKMeans {
		if err := seed.KMeans(net, corpus, cfg.KMeansIterations, log); err != nil {
			log.Fatal("kmeans seeding failed", zap.Error(err))
		}
	}

	tr := instar.New(net, corpus, cfg.LearningRate, cfg.Seed == config.SeedExemplar, instar.WithLogger(log))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	outcome, err := trainer.NewLoopFunc(tr, cfg.Strategy(), log)(ctx)
	if err != nil {
		log.Fatal("training failed", zap.Error(err))
	}

	report, err := trainer.NewEvaluateFunc(net, corpus, cfg.Workers)()
	if err != nil {
		log.Fatal("evaluation failed", zap.Error(err))
	}
	for i, w := range report.Winners {
		fmt.Printf("%v -> unit %d (distance %.6f)\n", corpus.At(i).Input, w, report.Distances[i])
	}
	fmt.Printf("[quantization] worst %.6f mean %.6f after %d iterations (%s)\n",
		report.Worst, report.Mean, outcome.Iterations, outcome.Reason)
	if dead := report.Dead(); len(dead) > 0 {
		log.Warn("units won no exemplar", zap.Ints("units", dead))
	}

	if err := net.WriteCompressedWeightsToFile(cfg.Model); err != nil {
		log.Fatal("cannot save weights", zap.String("model", cfg.Model), zap.Error(err))
	}
	log.Info("weights saved", zap.String("model", cfg.Model))
}

func newLogger(verbose bool) *zap.Logger {
	var log *zap.Logger
	var err error
	if verbose {
		log, err = zap.NewDevelopment()
	} else {
		log, err = zap.NewProduction()
	}
	if err != nil {
		println(err.Error())
		return zap.NewNop()
	}
	return log
}
