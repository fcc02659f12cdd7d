package routes

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/tripplanner/tripplanner/pkg/calendarstore"
	"github.com/tripplanner/tripplanner/pkg/planner"
	"github.com/tripplanner/tripplanner/pkg/scoring"
	"github.com/tripplanner/tripplanner/pkg/trip"
)

func StatusFor(err error) int {
	switch {
	case errors.Is(err, planner.ErrMalformedInput), errors.Is(err, trip.ErrInvalidDateRange):
		return fiber.StatusBadRequest
	case errors.Is(err, scoring.ErrEmptyCandidateSet):
		return fiber.StatusUnprocessableEntity
	case errors.Is(err, calendarstore.ErrNotFound):
		return fiber.StatusNotFound
	default:
		return fiber.StatusInternalServerError
	}
}

func sendError(c *fiber.Ctx, err error) error {
	c.Status(StatusFor(err))
	return c.JSON(fiber.Map{
		"error": err.Error(),
	})
}
