package api

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"

	"github.com/jar0582/procsched/internal/report"
	"github.com/jar0582/procsched/internal/sched"
)

// Handler serves the schedule endpoints.
type Handler struct {
	quantum int64
	logger  *logrus.Entry
}

// NewHandler returns a handler that uses quantum when a request omits it.
func NewHandler(quantum int64, logger *logrus.Entry) *Handler {
	return &Handler{quantum: quantum, logger: logger}
}

// Schedule runs the algorithm named in the path.
func (h *Handler) Schedule(c *fiber.Ctx) error {
	alg, err := sched.ParseAlgorithm(c.Params("algorithm"))
	if err != nil {
		return fail(c, fiber.StatusNotFound, err)
	}

	req, set, err := h.parse(c)
	if err != nil {
		return fail(c, fiber.StatusBadRequest, err)
	}

	res, err := sched.Run(alg, set, req.Quantum)
	if err != nil {
		return fail(c, statusOf(err), err)
	}
	h.logger.WithFields(logrus.Fields{"algorithm": alg, "processes": set.Len()}).Info("Schedule computed.")
	return c.JSON(report.NewScheduleResponse(res))
}

// ScheduleAll runs the requested algorithms, or all of them, concurrently.
func (h *Handler) ScheduleAll(c *fiber.Ctx) error {
	req, set, err := h.parse(c)
	if err != nil {
		return fail(c, fiber.StatusBadRequest, err)
	}
	algs, err := sched.ParseAlgorithms(req.Algorithms)
	if err != nil {
		return fail(c, fiber.StatusBadRequest, err)
	}

	results, err := sched.RunAll(c.UserContext(), set, req.Quantum, algs...)
	if err != nil {
		return fail(c, statusOf(err), err)
	}
	h.logger.WithFields(logrus.Fields{"algorithms": len(results), "processes": set.Len()}).Info("Schedules computed.")
	return c.JSON(report.NewScheduleResponses(results))
}

// Health answers liveness probes.
func (h *Handler) Health(c *fiber.Ctx) error {
	return c.SendString("OK")
}

func (h *Handler) parse(c *fiber.Ctx) (ScheduleRequest, sched.ProcessSet, error) {
	var req ScheduleRequest
	if err := c.BodyParser(&req); err != nil {
		return req, sched.ProcessSet{}, errors.New("invalid request format: " + err.Error())
	}
	if req.Quantum == 0 {
		req.Quantum = h.quantum
	}
	set, err := req.processSet()
	return req, set, err
}

func statusOf(err error) int {
	switch {
	case errors.Is(err, sched.ErrInvalidInput), errors.Is(err, sched.ErrUnknownAlgorithm):
		return fiber.StatusBadRequest
	}
	return fiber.StatusInternalServerError
}

func fail(c *fiber.Ctx, status int, err error) error {
	return c.Status(status).JSON(fiber.Map{"error": err.Error()})
}
