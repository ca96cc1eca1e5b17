package main

import (
	"fmt"
	"os"
	"os/signal"
	"strings"
	"time"

	"github.com/getsentry/sentry-go"
	"github.com/go-echarts/statsview"
	"github.com/go-echarts/statsview/viewer"
	"github.com/oomph-ac/fpsim/config"
	"github.com/oomph-ac/fpsim/movement"
	"github.com/oomph-ac/fpsim/scenario"
	"github.com/sirupsen/logrus"
)

// The following program replays scripted movement scenarios and logs a summary of each run.
func main() {
	if len(os.Args) < 3 {
		fmt.Println("Usage: ./replay <config.toml|config.yaml> <scenario.yaml>...")
		return
	}
	confPath, scenarioPaths := os.Args[1], os.Args[2:]

	logger := logrus.New()
	logger.SetFormatter(&logrus.TextFormatter{
		ForceColors:     true,
		TimestampFormat: "2006-01-02 15:04:05",
		FullTimestamp:   true,
	})

	if dsn := os.Getenv("SENTRY_DSN"); dsn != "" {
		if err := sentry.Init(sentry.ClientOptions{Dsn: dsn}); err != nil {
			logger.Errorf("unable to initialize sentry: %v", err)
		}
		defer sentry.Flush(2 * time.Second)
	}

	if os.Getenv("PPROF_ENABLED") != "" {
		// set configurations before calling `statsview.New()` method
		viewer.SetConfiguration(viewer.WithTheme(viewer.ThemeWesteros), viewer.WithAddr("localhost:8080"))

		mgr := statsview.New()
		go mgr.Start()
		defer mgr.Stop()
	}

	var debug []movement.DebugMode
	if modes := os.Getenv("DEBUG_MODES"); modes != "" {
		logger.SetLevel(logrus.DebugLevel)
		for _, name := range strings.Split(modes, ",") {
			mode, ok := movement.DebugModeFromString(strings.TrimSpace(name))
			if !ok {
				logger.Warnf("unknown debug mode %q", name)
				continue
			}
			debug = append(debug, mode)
		}
	}

	if _, err := os.Stat(confPath); os.IsNotExist(err) {
		if err := config.SaveDefault(confPath); err != nil {
			logger.Fatalf("unable to write default config: %v", err)
		}
		logger.Infof("wrote default config to %s", confPath)
	}
	conf, err := config.Load(confPath)
	if err != nil {
		logger.Fatalf("unable to load config: %v", err)
	}

	scenarios := make([]*scenario.Scenario, 0, len(scenarioPaths))
	for _, path := range scenarioPaths {
		s, err := scenario.Load(path)
		if err != nil {
			logger.Fatalf("unable to load scenario: %v", err)
		}
		scenarios = append(scenarios, s)
	}

	opts := scenario.Options{Config: conf, Log: logger, Debug: debug}
	replay(logger, scenarios, opts)

	if os.Getenv("WATCH") == "" {
		return
	}
	w, err := config.NewWatcher(confPath)
	if err != nil {
		logger.Fatalf("unable to watch config: %v", err)
	}
	defer w.Close()

	interrupt := make(chan os.Signal, 1)
	signal.Notify(interrupt, os.Interrupt)
	logger.Infof("watching %s for changes", confPath)
	for {
		select {
		case conf := <-w.Configs:
			logger.Info("config changed, replaying")
			opts.Config = conf
			replay(logger, scenarios, opts)
		case err := <-w.Errors:
			logger.Errorf("config reload failed: %v", err)
		case <-interrupt:
			return
		}
	}
}

func replay(logger *logrus.Logger, scenarios []*scenario.Scenario, opts scenario.Options) {
	start := time.Now()
	reports, err := scenario.RunAll(scenarios, opts)
	if err != nil {
		logger.Errorf("replay failed: %v", err)
	}
	for _, r := range reports {
		if r == nil {
			continue
		}
		final := r.Final()
		logger.WithFields(logrus.Fields{
			"ticks":  len(r.Frames),
			"digest": fmt.Sprintf("%016x", r.Digest),
			"state":  final.State,
			"pos":    final.Position,
			"max":    fmt.Sprintf("%.3f", r.MaxSpeed),
			"mean":   fmt.Sprintf("%.3f", r.MeanSpeed),
			"median": fmt.Sprintf("%.3f", r.MedianSpeed),
			"slides": r.Slides,
			"jumps":  r.Jumps,
		}).Info(r.Name)
	}
	logger.Debugf("replayed %d scenarios in %v", len(scenarios), time.Since(start))
}
