package main

import (
	"fmt"
	"strconv"

	"github.com/sirupsen/logrus"
	"github.com/vaughan0/go-ini"

	"github.com/katalvlaran/hillclimb/hillclimb"
)

// config is the merged result of the ini file and command-line flags.
type config struct {
	Heuristic string
	Strategy  string
	Workers   int
	Addr      string
	LogLevel  string
}

func defaultConfig() config {
	return config{
		Heuristic: "manhattan",
		Strategy:  hillclimb.PerSource.String(),
		Addr:      ":8080",
		LogLevel:  "info",
	}
}

// loadConfig overlays the sections of an ini file onto defaultConfig:
//
//	[search]
//	heuristic = manhattan
//	strategy  = per-source
//	workers   = 4
//
//	[server]
//	addr = :8080
//
//	[log]
//	level = info
func loadConfig(path string) (config, error) {
	cfg := defaultConfig()
	if path == "" {
		return cfg, nil
	}
	file, err := ini.LoadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("error loading config (%s): %s", path, err)
	}
	if v, ok := file.Get("search", "heuristic"); ok {
		cfg.Heuristic = v
	}
	if v, ok := file.Get("search", "strategy"); ok {
		cfg.Strategy = v
	}
	if v, ok := file.Get("search", "workers"); ok {
		n, err := strconv.Atoi(v)
		if err != nil {
			return cfg, fmt.Errorf("config %s: bad [search] workers %q: %s", path, v, err)
		}
		cfg.Workers = n
	}
	if v, ok := file.Get("server", "addr"); ok {
		cfg.Addr = v
	}
	if v, ok := file.Get("log", "level"); ok {
		cfg.LogLevel = v
	}
	return cfg, cfg.validate()
}

// validate checks every field that the search and logger will parse later,
// so bad values fail before any input is read.
func (c config) validate() error {
	if _, err := hillclimb.ParseHeuristic(c.Heuristic); err != nil {
		return err
	}
	if _, err := hillclimb.ParseStrategy(c.Strategy); err != nil {
		return err
	}
	if c.Workers < 0 {
		return fmt.Errorf("workers must not be negative (%d)", c.Workers)
	}
	if _, err := logrus.ParseLevel(c.LogLevel); err != nil {
		return err
	}
	return nil
}

// searchOptions converts the config into hillclimb options.
func (c config) searchOptions(log logrus.FieldLogger) ([]hillclimb.Option, error) {
	h, err := hillclimb.ParseHeuristic(c.Heuristic)
	if err != nil {
		return nil, err
	}
	s, err := hillclimb.ParseStrategy(c.Strategy)
	if err != nil {
		return nil, err
	}
	opts := []hillclimb.Option{
		hillclimb.WithHeuristic(h),
		hillclimb.WithStrategy(s),
		hillclimb.WithLogger(log),
	}
	if c.Workers > 0 {
		opts = append(opts, hillclimb.WithWorkers(c.Workers))
	}
	return opts, nil
}
