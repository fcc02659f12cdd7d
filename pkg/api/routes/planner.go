package routes

import (
	"bytes"
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/liip/sheriff"
	"github.com/rs/zerolog/log"
	"github.com/tripplanner/tripplanner/pkg/calendar"
	"github.com/tripplanner/tripplanner/pkg/calendarstore"
	"github.com/tripplanner/tripplanner/pkg/planner"
	"github.com/tripplanner/tripplanner/pkg/render"
	"github.com/tripplanner/tripplanner/pkg/trip"
)

// Planning serves the trip form and keeps generated calendars in Store for TTL
type Planning struct {
	Planner *planner.Planner
	Store   calendarstore.Store
	TTL     time.Duration
}

func (p *Planning) Router(router fiber.Router) {
	router.Get("/", p.getForm)
	router.Post("/plan", p.postPlan)
	router.Get("/download_ics", p.getCalendar)
}

func (p *Planning) APIRouter(router fiber.Router) {
	router.Post("/plan", p.postAPIPlan)
}

func (p *Planning) getForm(c *fiber.Ctx) error {
	return sendHTML(c, fiber.StatusOK, func(buffer *bytes.Buffer) error {
		return render.Form(buffer, render.NewFormPage(planner.DefaultTripForm(), ""))
	})
}

func (p *Planning) postPlan(c *fiber.Ctx) error {
	var form planner.TripForm
	if err := c.BodyParser(&form); err != nil {
		return p.sendFormError(c, form, fmt.Errorf("%w: %v", planner.ErrMalformedInput, err))
	}

	// no ticked checkbox means every mode
	if len(form.Modes) == 0 {
		for _, mode := range trip.TransportModes {
			form.Modes = append(form.Modes, mode.String())
		}
	}

	plan, token, err := p.plan(c, form)
	if err != nil {
		return p.sendFormError(c, form, err)
	}

	return sendHTML(c, fiber.StatusOK, func(buffer *bytes.Buffer) error {
		return render.TripResult(buffer, render.TripResultPage{Plan: plan, Token: token})
	})
}

func (p *Planning) sendFormError(c *fiber.Ctx, form planner.TripForm, planError error) error {
	log.Debug().Err(planError).Msg("Trip plan rejected")

	return sendHTML(c, StatusFor(planError), func(buffer *bytes.Buffer) error {
		return render.Form(buffer, render.NewFormPage(form, planError.Error()))
	})
}

type apiPlanResponse struct {
	Plan        *planner.TripPlan `json:"plan" groups:"basic"`
	Token       string            `json:"token" groups:"basic"`
	DownloadURL string            `json:"download_url" groups:"basic"`
}

func (p *Planning) postAPIPlan(c *fiber.Ctx) error {
	var form planner.TripForm
	if err := c.BodyParser(&form); err != nil {
		return sendError(c, fmt.Errorf("%w: %v", planner.ErrMalformedInput, err))
	}

	plan, token, err := p.plan(c, form)
	if err != nil {
		return sendError(c, err)
	}

	groups := []string{"basic"}
	if c.QueryBool("detailed") {
		groups = append(groups, "detailed")
	}

	planReduced, err := sheriff.Marshal(&sheriff.Options{
		Groups: groups,
	}, &apiPlanResponse{
		Plan:        plan,
		Token:       token,
		DownloadURL: render.TripResultPage{Token: token}.DownloadURL(),
	})
	if err != nil {
		c.SendStatus(fiber.StatusInternalServerError)
		return c.JSON(fiber.Map{
			"error": "Sheriff could not reduce plan",
		})
	}

	return c.JSON(planReduced)
}

func (p *Planning) plan(c *fiber.Ctx, form planner.TripForm) (*planner.TripPlan, string, error) {
	request, err := form.Request()
	if err != nil {
		return nil, "", err
	}

	plan, err := p.Planner.PlanTrip(request)
	if err != nil {
		return nil, "", err
	}

	token := calendarstore.NewToken()
	if err := p.Store.Put(c.UserContext(), token, []byte(plan.Calendar), p.TTL); err != nil {
		return nil, "", err
	}

	log.Info().
		Str("token", token).
		Str("origin", plan.Origin).
		Str("destination", plan.Destination).
		Str("outbound", plan.Outbound.Provider).
		Str("lodging", plan.Lodging.Name).
		Msg("Planned trip")

	return plan, token, nil
}

func (p *Planning) getCalendar(c *fiber.Ctx) error {
	token := c.Query("token")
	if token == "" {
		c.Status(fiber.StatusNotFound)
		return c.SendString("calendar not found or expired")
	}

	document, err := p.Store.Get(c.UserContext(), token)
	if err != nil {
		c.Status(StatusFor(err))
		if c.Response().StatusCode() == fiber.StatusNotFound {
			return c.SendString("calendar not found or expired")
		}
		return c.SendString(err.Error())
	}

	c.Set(fiber.HeaderContentType, calendar.ContentType)
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf("attachment; filename=tripplanner_%s.ics", token))

	return c.Send(document)
}

func sendHTML(c *fiber.Ctx, status int, page func(*bytes.Buffer) error) error {
	var buffer bytes.Buffer
	if err := page(&buffer); err != nil {
		return err
	}

	c.Status(status)
	c.Set(fiber.HeaderContentType, fiber.MIMETextHTMLCharsetUTF8)

	return c.Send(buffer.Bytes())
}
