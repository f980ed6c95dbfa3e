package main

import "flag"
import "fmt"
import "strconv"
import "strings"

import "github.com/pkg/errors"
import "go.uber.org/zap"

import "github.com/neurlang/counterprop/config"
import "github.com/neurlang/counterprop/net/cpn"

func parseVector(s string) (o []float64, err error) {
	for _, field := range strings.Split(s, ",") {
		v, err := strconv.ParseFloat(strings.TrimSpace(field), 64)
		if err != nil {
			return nil, errors.Wrapf(err, "vector %q", s)
		}
		o = append(o, v)
	}
	return o, nil
}

func main() {
	configPath := flag.String("config", "", "training configuration .yaml file the model was trained with")
	dstmodel := flag.String("dstmodel", "output.json.br", "model .json.br file")
	flag.Parse()

	log, err := zap.NewProduction()
	if err != nil {
		panic(err.Error())
	}
	defer log.Sync()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatal("bad configuration", zap.Error(err))
	}
	net := cpn.MustNew(cfg.InputCount, cfg.InstarCount)
	net.SetActivation(cfg.ActivationFunc())
	if err := net.ReadCompressedWeightsFromFile(*dstmodel); err != nil {
		log.Fatal("cannot load weights", zap.String("model", *dstmodel), zap.Error(err))
	}

	for _, arg := range flag.Args() {
		input, err := parseVector(arg)
		if err != nil {
			log.Fatal("bad input", zap.Error(err))
		}
		winner, err := net.Winner(input)
		if err != nil {
			log.Fatal("bad input", zap.Error(err))
		}
		fmt.Println(arg, "->", winner)
	}
}
