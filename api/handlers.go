package api

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/katalvlaran/hillclimb/gridgraph"
	"github.com/katalvlaran/hillclimb/hillclimb"
)

// Search modes accepted in ClimbRequest.Mode.
const (
	ModeSingle = "single"
	ModeAnyLow = "any-low"
)

// ClimbRequest is the body of POST /api/v1/climb.
type ClimbRequest struct {
	Grid      string `json:"grid" binding:"required"`
	Mode      string `json:"mode"`
	Heuristic string `json:"heuristic"`
	Strategy  string `json:"strategy"`
	WithPath  bool   `json:"withPath"`
}

// ClimbResponse is the reply of POST /api/v1/climb. An unreachable end is
// reported with Found=false and status 200.
type ClimbResponse struct {
	Found         bool                 `json:"found"`
	Cost          int                  `json:"cost"`
	Start         *gridgraph.Position  `json:"start,omitempty"`
	Path          []gridgraph.Position `json:"path,omitempty"`
	Expanded      int                  `json:"expanded"`
	Mode          string               `json:"mode"`
	ExecutionTime float64              `json:"executionTimeMs"`
	Error         string               `json:"error,omitempty"`
}

type handler struct {
	cfg Config
}

func (h *handler) climb(c *gin.Context) {
	var req ClimbRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, ClimbResponse{Error: "invalid request body: " + err.Error()})
		return
	}
	if req.Mode == "" {
		req.Mode = ModeSingle
	}
	if req.Mode != ModeSingle && req.Mode != ModeAnyLow {
		c.AbortWithStatusJSON(http.StatusBadRequest, ClimbResponse{Mode: req.Mode, Error: "mode must be 'single' or 'any-low'"})
		return
	}

	g, err := gridgraph.ParseString(req.Grid)
	if err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, ClimbResponse{Mode: req.Mode, Error: err.Error()})
		return
	}
	opts, err := h.options(c, req.Heuristic, req.Strategy)
	if err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, ClimbResponse{Mode: req.Mode, Error: err.Error()})
		return
	}

	began := time.Now()
	var res *hillclimb.Climb
	if req.Mode == ModeAnyLow {
		res, err = hillclimb.BestLowPoint(g, g.End(), opts...)
		if err == nil && req.WithPath {
			res, err = hillclimb.Route(g, res.Start, g.End(), opts...)
		}
	} else if req.WithPath {
		res, err = hillclimb.Route(g, g.Start(), g.End(), opts...)
	} else {
		var cost int
		cost, err = hillclimb.ShortestPath(g, g.Start(), g.End(), opts...)
		res = &hillclimb.Climb{Start: g.Start(), End: g.End(), Cost: cost}
	}
	elapsed := float64(time.Since(began).Microseconds()) / 1000

	switch {
	case errors.Is(err, hillclimb.ErrPathNotFound):
		c.JSON(http.StatusOK, ClimbResponse{Mode: req.Mode, ExecutionTime: elapsed, Error: err.Error()})
		return
	case err != nil:
		c.AbortWithStatusJSON(http.StatusInternalServerError, ClimbResponse{Mode: req.Mode, Error: err.Error()})
		return
	}

	start := res.Start
	c.JSON(http.StatusOK, ClimbResponse{
		Found:         true,
		Cost:          res.Cost,
		Start:         &start,
		Path:          res.Path,
		Expanded:      res.Expanded,
		Mode:          req.Mode,
		ExecutionTime: elapsed,
	})
}
