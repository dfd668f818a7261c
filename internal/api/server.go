package api

import (
	"context"
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	fiberrecover "github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/sirupsen/logrus"
)

const shutdownTimeout = 5 * time.Second

// NewApp wires the routes of h into a fiber application.
func NewApp(h *Handler) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:               "procsched",
		DisableStartupMessage: true,
	})
	app.Use(fiberrecover.New())
	app.Use(requestLogger(h.logger))

	app.Get("/health", h.Health)

	v1 := app.Group("/api/v1")
	{
		v1.Post("/schedule", h.ScheduleAll)
		v1.Post("/schedule/:algorithm", h.Schedule)
	}
	return app
}

// Serve listens on addr until ctx is cancelled, then shuts down gracefully.
func Serve(ctx context.Context, addr string, h *Handler) error {
	app := NewApp(h)

	errCh := make(chan error, 1)
	go func() {
		h.logger.WithField("address", addr).Info("HTTP server starting.")
		errCh <- app.Listen(addr)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	h.logger.Info("Shutting down HTTP server...")
	if err := app.ShutdownWithTimeout(shutdownTimeout); err != nil {
		return err
	}
	if err := <-errCh; err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}

func requestLogger(logger *logrus.Entry) fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()
		logger.WithFields(logrus.Fields{
			"method":   c.Method(),
			"path":     c.Path(),
			"status":   c.Response().StatusCode(),
			"duration": time.Since(start),
		}).Debug("Request served.")
		return err
	}
}
