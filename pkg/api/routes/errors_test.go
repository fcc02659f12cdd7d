package routes

import (
	"errors"
	"fmt"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/tripplanner/tripplanner/pkg/calendarstore"
	"github.com/tripplanner/tripplanner/pkg/planner"
	"github.com/tripplanner/tripplanner/pkg/scoring"
	"github.com/tripplanner/tripplanner/pkg/trip"
)

func TestStatusFor(t *testing.T) {
	assert.Equal(t, fiber.StatusBadRequest, StatusFor(fmt.Errorf("%w: date", planner.ErrMalformedInput)))
	assert.Equal(t, fiber.StatusBadRequest, StatusFor(trip.ErrInvalidDateRange))
	assert.Equal(t, fiber.StatusUnprocessableEntity, StatusFor(fmt.Errorf("outbound: %w", scoring.ErrEmptyCandidateSet)))
	assert.Equal(t, fiber.StatusNotFound, StatusFor(calendarstore.ErrNotFound))
	assert.Equal(t, fiber.StatusInternalServerError, StatusFor(errors.New("redis down")))
}
