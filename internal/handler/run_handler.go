package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"walletsync/internal/domain"
	"walletsync/pkg/logger"
)

// BatchRunner is the orchestrator surface the HTTP layer needs.
type BatchRunner interface {
	Run(ctx context.Context, runID string, since time.Time) *domain.RunReport
}

type RunHandler struct {
	runner   BatchRunner
	runs     domain.RunStore
	lookback time.Duration
	logger   *logger.Logger
}

func NewRunHandler(runner BatchRunner, runs domain.RunStore, lookback time.Duration, log *logger.Logger) *RunHandler {
	return &RunHandler{
		runner:   runner,
		runs:     runs,
		lookback: lookback,
		logger:   log,
	}
}

// Trigger starts a batch run asynchronously and returns its id. An optional
// "since" query parameter (RFC3339) overrides the configured lookback.
func (h *RunHandler) Trigger(c echo.Context) error {
	ctx := c.Request().Context()

	since := time.Now().Add(-h.lookback)
	if raw := c.QueryParam("since"); raw != "" {
		parsed, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{
				"error": "since must be RFC3339",
			})
		}
		since = parsed
	}

	runID := uuid.New().String()

	if err := h.runs.CreateRun(ctx, domain.NewRunReport(runID)); err != nil {
		h.logger.Error(ctx, "Failed to create run",
			"error", err,
		)
		return c.JSON(http.StatusInternalServerError, map[string]string{
			"error": "failed to create run",
		})
	}

	go func() {
		runCtx := logger.WithRunID(context.Background(), runID)
		h.logger.Info(runCtx, "Starting batch run",
			"since", since,
		)
		h.runner.Run(runCtx, runID, since)
	}()

	return c.JSON(http.StatusAccepted, map[string]string{
		"run_id": runID,
		"status": string(domain.RunStatusRunning),
	})
}

func (h *RunHandler) GetRun(c echo.Context) error {
	ctx := c.Request().Context()

	runID := c.Param("id")

	report, err := h.runs.GetRun(ctx, runID)
	if err != nil {
		if err == domain.ErrRunNotFound {
			return c.JSON(http.StatusNotFound, map[string]string{
				"error": "run not found",
			})
		}

		h.logger.Error(ctx, "Failed to get run",
			"run_id", runID,
			"error", err,
		)
		return c.JSON(http.StatusInternalServerError, map[string]string{
			"error": "failed to get run",
		})
	}

	return c.JSON(http.StatusOK, report)
}
