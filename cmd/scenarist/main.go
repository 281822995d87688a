package main

import (
	"flag"

	"loopfixtures/scenarist/defs"
	"loopfixtures/scenarist/pkg/fixture"
	"loopfixtures/scenarist/pkg/scenario"
	"loopfixtures/scenarist/pkg/stats"

	"go.uber.org/zap"
)

var configFile string

func init() {
	flag.StringVar(&configFile, "f", "", "config file")
	flag.Parse()
}

func main() {
	logger, _ := zap.NewDevelopment()
	defer logger.Sync()

	config, err := defs.LoadConfig(configFile)
	if err != nil {
		panic(err)
	}
	logger.Debug("loaded config", zap.String("file", configFile), zap.Any("config", config))
	config.Logger = logger

	sc := scenario.Make()

	path, err := fixture.New(config.Output.Dir, config.Logger).Write(sc)
	if err != nil {
		panic(err)
	}

	ss := stats.GlucoseSummary(sc.GlucoseValues)
	ra := stats.TimeSpentInRange(sc.GlucoseValues, config.Glucose.Low, config.Glucose.High)
	logger.Info("wrote scenario",
		zap.String("path", path),
		zap.Float64("average", ss.Average),
		zap.Float64("deviation", ss.Deviation),
		zap.Float64("min", ss.Min),
		zap.Float64("max", ss.Max),
		zap.Float64("below", ra.BelowRange),
		zap.Float64("in", ra.InRange),
		zap.Float64("above", ra.AboveRange),
	)
}
