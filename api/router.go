// Package api exposes hill-climbing searches over HTTP with gin.
package api

import (
	"io"
	"net/http"
	"time"

	"github.com/felixge/fgprof"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/hillclimb/hillclimb"
)

// Config holds server-wide defaults. Request fields override Heuristic and
// Strategy per call.
type Config struct {
	Logger      logrus.FieldLogger
	Heuristic   string
	Strategy    string
	Workers     int
	AllowOrigin string
}

// NewRouter builds the gin engine with all routes mounted.
//
//	GET  /healthz        liveness probe
//	POST /api/v1/climb   run a search
//	GET  /debug/fgprof   wall-clock profile
func NewRouter(cfg Config) *gin.Engine {
	if cfg.Logger == nil {
		l := logrus.New()
		l.SetOutput(io.Discard)
		cfg.Logger = l
	}
	if cfg.AllowOrigin == "" {
		cfg.AllowOrigin = "*"
	}

	router := gin.New()
	router.Use(gin.Recovery(), requestLogger(cfg.Logger), corsMiddleware(cfg.AllowOrigin))

	h := &handler{cfg: cfg}
	router.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	v1 := router.Group("/api/v1")
	v1.POST("/climb", h.climb)
	router.GET("/debug/fgprof", gin.WrapH(fgprof.Handler()))

	return router
}

// requestLogger logs one line per request through logrus.
func requestLogger(l logrus.FieldLogger) gin.HandlerFunc {
	return func(c *gin.Context) {
		began := time.Now()
		c.Next()
		l.WithFields(logrus.Fields{
			"method":  c.Request.Method,
			"path":    c.Request.URL.Path,
			"status":  c.Writer.Status(),
			"elapsed": time.Since(began),
		}).Info("request")
	}
}

func corsMiddleware(origin string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", origin)
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET")

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}
		c.Next()
	}
}

// options turns server defaults plus request overrides into hillclimb options.
func (h *handler) options(c *gin.Context, heuristic, strategy string) ([]hillclimb.Option, error) {
	if heuristic == "" {
		heuristic = h.cfg.Heuristic
	}
	if strategy == "" {
		strategy = h.cfg.Strategy
	}
	heur, err := hillclimb.ParseHeuristic(heuristic)
	if err != nil {
		return nil, err
	}
	strat, err := hillclimb.ParseStrategy(strategy)
	if err != nil {
		return nil, err
	}
	opts := []hillclimb.Option{
		hillclimb.WithContext(c.Request.Context()),
		hillclimb.WithHeuristic(heur),
		hillclimb.WithStrategy(strat),
		hillclimb.WithLogger(h.cfg.Logger),
	}
	if h.cfg.Workers > 0 {
		opts = append(opts, hillclimb.WithWorkers(h.cfg.Workers))
	}
	return opts, nil
}
