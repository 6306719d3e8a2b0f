// FILE: internal/controller/status_controller.go
// Controller for pipeline status and control endpoints
package controller

import (
	"os"
	"time"

	"vofc-ingest-be/internal/config"
	"vofc-ingest-be/internal/dto"
	"vofc-ingest-be/internal/pkg/logger"
	"vofc-ingest-be/internal/pkg/serverutils"
	"vofc-ingest-be/pkg/queue"

	"github.com/gofiber/fiber/v2"
)

type IStatusController interface {
	RegisterRoutes(api fiber.Router)
}

type statusController struct {
	cfg       *config.Config
	layout    config.Layout
	queue     *queue.Queue
	sysLogger logger.ILogger
}

func NewStatusController(cfg *config.Config, q *queue.Queue, sysLogger logger.ILogger) IStatusController {
	return &statusController{
		cfg:       cfg,
		layout:    config.NewLayout(cfg.Pipeline.DataDir),
		queue:     q,
		sysLogger: sysLogger,
	}
}

func (c *statusController) RegisterRoutes(api fiber.Router) {
	pipeline := api.Group("/pipeline")
	pipeline.Get("/health", c.GetHealth)
	pipeline.Get("/progress", c.GetProgress)
	pipeline.Get("/queue", c.GetQueue)
	pipeline.Post("/stop", c.RequestStop)

	api.Get("/logs", c.GetLogs)
	api.Get("/logs/:id", c.GetLogById)
}

func (c *statusController) GetHealth(ctx *fiber.Ctx) error {
	return ctx.JSON(dto.HealthResponse{
		Status:    "ok",
		Service:   "vofc-ingest",
		Timestamp: time.Now().UTC(),
	})
}

// GetProgress returns the latest snapshot the worker wrote. A missing
// file means the worker has not started yet.
func (c *statusController) GetProgress(ctx *fiber.Ctx) error {
	snapshot, err := queue.ReadProgress(c.layout.ProgressFile())
	if err != nil {
		if os.IsNotExist(err) {
			snapshot = queue.Progress{Status: "idle"}
		} else {
			return ctx.Status(fiber.StatusInternalServerError).JSON(serverutils.ErrorResponse(500, err.Error()))
		}
	}
	return ctx.JSON(serverutils.SuccessResponse("Progress retrieved", snapshot))
}

func (c *statusController) GetQueue(ctx *fiber.Ctx) error {
	return ctx.JSON(serverutils.SuccessResponse("Queue retrieved", dto.QueueResponse{
		Items:  c.queue.Snapshot(),
		Counts: c.queue.CountByStatus(),
	}))
}

// RequestStop drops the stop sentinel. The worker finishes the current
// file before honoring it.
func (c *statusController) RequestStop(ctx *fiber.Ctx) error {
	sentinel := c.layout.StopFile(c.cfg.Pipeline.StopSentinel)
	if err := os.WriteFile(sentinel, []byte(time.Now().UTC().Format(time.RFC3339)), 0o644); err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(serverutils.ErrorResponse(500, err.Error()))
	}
	return ctx.JSON(serverutils.SuccessResponse("Stop requested", dto.StopResponse{
		Requested: true,
		Sentinel:  sentinel,
	}))
}

func (c *statusController) GetLogs(ctx *fiber.Ctx) error {
	level := ctx.Query("level")
	limit := ctx.QueryInt("limit", 100)
	offset := ctx.QueryInt("offset", 0)

	logs, err := c.sysLogger.GetLogs(level, limit, offset)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(serverutils.ErrorResponse(500, err.Error()))
	}
	return ctx.JSON(serverutils.SuccessResponse("Logs retrieved", logs))
}

func (c *statusController) GetLogById(ctx *fiber.Ctx) error {
	entry, err := c.sysLogger.GetLogById(ctx.Params("id"))
	if err != nil {
		return ctx.Status(fiber.StatusNotFound).JSON(serverutils.ErrorResponse(404, "Log not found"))
	}
	return ctx.JSON(serverutils.SuccessResponse("Log retrieved", entry))
}
