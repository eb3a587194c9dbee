// Command hillclimb reports the fewest steps needed to climb a height map,
// or serves the same searches over HTTP.
//
// Usage:
//
//	hillclimb [flags] input.txt
//	hillclimb -serve -addr :8080
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/dustin/go-humanize"
	"github.com/gin-gonic/gin"
	"github.com/kr/pretty"
	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/hillclimb/api"
	"github.com/katalvlaran/hillclimb/gridgraph"
	"github.com/katalvlaran/hillclimb/hillclimb"
)

var log = logrus.New()

func main() {
	var (
		configPath = flag.String("config", "", "ini file with [search], [server] and [log] sections")
		heuristic  = flag.String("heuristic", "", "manhattan or zero (overrides config)")
		strategy   = flag.String("strategy", "", "per-source or reverse (overrides config)")
		workers    = flag.Int("workers", 0, "parallel searches for the low-point scan (0 = config or NumCPU)")
		logLevel   = flag.String("log-level", "", "logrus level (overrides config)")
		showPath   = flag.Bool("path", false, "print the route taken from S")
		debug      = flag.Bool("debug", false, "dump full search results")
		serve      = flag.Bool("serve", false, "run the HTTP API instead of solving a file")
		addr       = flag.String("addr", "", "listen address for -serve (overrides config)")
	)
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "usage: %s [flags] input.txt\n       %s -serve [-addr :8080]\n", os.Args[0], os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()

	cfg, err := loadConfig(*configPath)
	if err != nil {
		log.Fatal(err)
	}
	overrideString(&cfg.Heuristic, *heuristic)
	overrideString(&cfg.Strategy, *strategy)
	overrideString(&cfg.LogLevel, *logLevel)
	overrideString(&cfg.Addr, *addr)
	if *workers > 0 {
		cfg.Workers = *workers
	}
	if err := cfg.validate(); err != nil {
		log.Fatal(err)
	}
	level, _ := logrus.ParseLevel(cfg.LogLevel)
	log.SetLevel(level)
	log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	if *serve {
		runServer(cfg)
		return
	}
	if flag.NArg() != 1 {
		flag.Usage()
		os.Exit(2)
	}
	if err := solve(os.Stdout, flag.Arg(0), cfg, *showPath, *debug); err != nil {
		log.Fatal(err)
	}
}

func overrideString(dst *string, v string) {
	if v != "" {
		*dst = v
	}
}

func runServer(cfg config) {
	gin.SetMode(gin.ReleaseMode)
	router := api.NewRouter(api.Config{
		Logger:    log,
		Heuristic: cfg.Heuristic,
		Strategy:  cfg.Strategy,
		Workers:   cfg.Workers,
	})
	log.WithField("addr", cfg.Addr).Info("serving")
	if err := router.Run(cfg.Addr); err != nil {
		log.Fatal(err)
	}
}

// solve prints both answers for the map in path.
func solve(w io.Writer, path string, cfg config, showPath, debug bool) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	g, err := gridgraph.Parse(f)
	if err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	log.WithFields(logrus.Fields{
		"width":  g.Width(),
		"height": g.Height(),
		"cells":  humanize.Comma(int64(g.Width() * g.Height())),
	}).Debug("parsed height map")

	opts, err := cfg.searchOptions(log)
	if err != nil {
		return err
	}

	single, err := hillclimb.Route(g, g.Start(), g.End(), opts...)
	switch {
	case err == nil:
		fmt.Fprintf(w, "from S: %d steps (%s cells expanded)\n", single.Cost, humanize.Comma(int64(single.Expanded)))
	case errors.Is(err, hillclimb.ErrPathNotFound):
		fmt.Fprintln(w, "from S: no path")
	default:
		return err
	}

	best, err := hillclimb.BestLowPoint(g, g.End(), opts...)
	switch {
	case err == nil:
		fmt.Fprintf(w, "from any low point: %d steps (from %v)\n", best.Cost, best.Start)
	case errors.Is(err, hillclimb.ErrPathNotFound):
		fmt.Fprintln(w, "from any low point: no path")
	default:
		return err
	}

	if showPath && single != nil {
		fmt.Fprintln(w, renderPath(g, single.Path))
	}
	if debug {
		if single != nil {
			pretty.Fprintf(w, "%# v\n", single)
		}
		if best != nil {
			pretty.Fprintf(w, "%# v\n", best)
		}
	}
	return nil
}
