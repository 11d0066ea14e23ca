package api

import (
	"log"

	"github.com/gofiber/fiber/v2"

	"cpu-scheduler/config"
	"cpu-scheduler/internal/requests"
	"cpu-scheduler/internal/schedulers"
)

type SchedulerHandler interface {
	FirstComeFirstServe(ctx *fiber.Ctx) error
	Priority(ctx *fiber.Ctx) error
	RoundRobin(ctx *fiber.Ctx) error
	ShortestJobFirst(ctx *fiber.Ctx) error
	ShortestRemainingTimeFirst(ctx *fiber.Ctx) error
	Schedule(ctx *fiber.Ctx) error
	AllAlgorithms(ctx *fiber.Ctx) error
}

type SchedulerHandlerImpl struct {
	config *config.SchedulerConfig
}

func NewSchedulerHandlerImpl(config *config.SchedulerConfig) *SchedulerHandlerImpl {
	return &SchedulerHandlerImpl{config: config}
}

// SetupRoutes mounts the handlers under /api/v1.
func SetupRoutes(app *fiber.App, h SchedulerHandler) {
	api := app.Group("/api")

	v1 := api.Group("/v1")
	{
		v1.Post("/fcfs", h.FirstComeFirstServe)
		v1.Post("/priority", h.Priority)
		v1.Post("/rr", h.RoundRobin)
		v1.Post("/sjf", h.ShortestJobFirst)
		v1.Post("/srtf", h.ShortestRemainingTimeFirst)
		v1.Post("/schedule", h.Schedule)
		v1.Post("/schedule/:policy", h.Schedule)
		v1.Post("/all", h.AllAlgorithms)
	}

	app.Get("/health", func(ctx *fiber.Ctx) error {
		return ctx.JSON(fiber.Map{"status": "healthy"})
	})
}

func (s *SchedulerHandlerImpl) FirstComeFirstServe(ctx *fiber.Ctx) error {
	return s.schedule(ctx, "fcfs")
}

func (s *SchedulerHandlerImpl) Priority(ctx *fiber.Ctx) error {
	return s.schedule(ctx, "priority")
}

func (s *SchedulerHandlerImpl) RoundRobin(ctx *fiber.Ctx) error {
	return s.schedule(ctx, "rr")
}

func (s *SchedulerHandlerImpl) ShortestJobFirst(ctx *fiber.Ctx) error {
	return s.schedule(ctx, "sjf")
}

func (s *SchedulerHandlerImpl) ShortestRemainingTimeFirst(ctx *fiber.Ctx) error {
	return s.schedule(ctx, "srtf")
}

func (s *SchedulerHandlerImpl) Schedule(ctx *fiber.Ctx) error {
	return s.schedule(ctx, ctx.Params("policy"))
}

func (s *SchedulerHandlerImpl) AllAlgorithms(ctx *fiber.Ctx) error {
	request, err := s.parseRequest(ctx)
	if err != nil {
		return badRequest(ctx, err)
	}

	all, err := schedulers.ScheduleAll(request, request.Quantum(s.config.RoundRobinTimeQuantum))
	if err != nil {
		return badRequest(ctx, err)
	}
	return ctx.JSON(all)
}

func (s *SchedulerHandlerImpl) schedule(ctx *fiber.Ctx, name string) error {
	request, err := s.parseRequest(ctx)
	if err != nil {
		return badRequest(ctx, err)
	}

	if name == "" {
		name = s.config.DefaultPolicy
	}
	policy, err := schedulers.ParsePolicy(name, request.Quantum(s.config.RoundRobinTimeQuantum))
	if err != nil {
		return badRequest(ctx, err)
	}

	response, err := schedulers.Schedule(request, policy)
	if err != nil {
		return badRequest(ctx, err)
	}
	return ctx.JSON(response)
}

func (s *SchedulerHandlerImpl) parseRequest(ctx *fiber.Ctx) (*requests.ScheduleRequests, error) {
	var request requests.ScheduleRequests
	if err := ctx.BodyParser(&request); err != nil {
		return nil, fiber.NewError(fiber.StatusBadRequest, "invalid request format")
	}
	return &request, nil
}

func badRequest(ctx *fiber.Ctx, err error) error {
	log.Println("rejected request:", err)
	return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
}
