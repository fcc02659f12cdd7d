package api

import (
	"context"
	"encoding/json"
	"io"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tripplanner/tripplanner/pkg/api/routes"
	"github.com/tripplanner/tripplanner/pkg/calendar"
	"github.com/tripplanner/tripplanner/pkg/calendarstore"
	"github.com/tripplanner/tripplanner/pkg/dataaggregator"
	"github.com/tripplanner/tripplanner/pkg/dataaggregator/global"
	"github.com/tripplanner/tripplanner/pkg/planner"
)

func testApp() (*fiber.App, *calendarstore.MemoryStore) {
	aggregator := &dataaggregator.Aggregator{}
	global.RegisterFixtures(aggregator)

	store := calendarstore.NewMemoryStore()

	return NewApp(&routes.Planning{
		Planner: planner.New(aggregator),
		Store:   store,
		TTL:     time.Hour,
	}), store
}

func defaultFormValues() url.Values {
	return url.Values{
		"origin":    {"Bologna"},
		"dest":      {"Lisbona"},
		"d_from":    {"2025-10-18"},
		"d_to":      {"2025-10-21"},
		"modes":     {"flight", "train", "drive"},
		"max_night": {"100"},
		"alarm_min": {"45"},
	}
}

func postForm(t *testing.T, app *fiber.App, path string, values url.Values) (int, string) {
	req := httptest.NewRequest(fiber.MethodPost, path, strings.NewReader(values.Encode()))
	req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationForm)

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	return resp.StatusCode, string(body)
}

func get(t *testing.T, app *fiber.App, path string) (int, string, fiber.Map) {
	resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, path, nil), -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	headers := fiber.Map{}
	for key := range resp.Header {
		headers[key] = resp.Header.Get(key)
	}

	return resp.StatusCode, string(body), headers
}

func TestVersion(t *testing.T) {
	app, _ := testApp()

	status, body, _ := get(t, app, "/version")
	assert.Equal(t, fiber.StatusOK, status)
	assert.JSONEq(t, `{"name":"tripplanner","version":"v0.1"}`, body)
}

func TestFormHasDefaults(t *testing.T) {
	app, _ := testApp()

	status, body, _ := get(t, app, "/")
	assert.Equal(t, fiber.StatusOK, status)
	assert.Contains(t, body, `value="Lisbona"`)
	assert.Contains(t, body, `value="2025-10-18"`)
	assert.Contains(t, body, `value="drive" checked`)
	assert.Contains(t, body, `value="100"`)
}

func TestPlanAndDownload(t *testing.T) {
	app, store := testApp()

	status, body := postForm(t, app, "/plan", defaultFormValues())
	require.Equal(t, fiber.StatusOK, status, body)

	assert.Contains(t, body, "Frecciarossa")
	assert.Contains(t, body, "B&amp;B Panoramico")
	assert.Equal(t, 4, strings.Count(body, "Add to calendar"))
	assert.Equal(t, 1, store.Len())

	start := strings.Index(body, "/download_ics?token=")
	require.NotEqual(t, -1, start)
	link := body[start:]
	link = link[:strings.Index(link, `"`)]

	status, document, headers := get(t, app, link)
	require.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, calendar.ContentType, headers["Content-Type"])

	token := strings.TrimPrefix(link, "/download_ics?token=")
	assert.Equal(t, "attachment; filename=tripplanner_"+token+".ics", headers["Content-Disposition"])
	assert.True(t, strings.HasPrefix(document, "BEGIN:VCALENDAR\r\n"))
	assert.Equal(t, 4, strings.Count(document, "BEGIN:VEVENT"))
}

func TestPlanWithoutModesUsesAll(t *testing.T) {
	app, _ := testApp()

	values := defaultFormValues()
	values.Del("modes")

	status, body := postForm(t, app, "/plan", values)
	assert.Equal(t, fiber.StatusOK, status)
	assert.Contains(t, body, "Frecciarossa")
}

func TestPlanErrors(t *testing.T) {
	tests := []struct {
		name   string
		change func(url.Values)
		status int
	}{
		{"return before departure", func(v url.Values) { v.Set("d_to", "2025-10-17") }, fiber.StatusBadRequest},
		{"same day", func(v url.Values) { v.Set("d_to", "2025-10-18") }, fiber.StatusBadRequest},
		{"bad date", func(v url.Values) { v.Set("d_from", "18-10-2025") }, fiber.StatusBadRequest},
		{"bad budget", func(v url.Values) { v.Set("max_night", "lots") }, fiber.StatusBadRequest},
		{"bad mode", func(v url.Values) { v["modes"] = []string{"boat"} }, fiber.StatusBadRequest},
		{"budget too low", func(v url.Values) { v.Set("max_night", "20") }, fiber.StatusUnprocessableEntity},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			app, store := testApp()

			values := defaultFormValues()
			test.change(values)

			status, body := postForm(t, app, "/plan", values)
			assert.Equal(t, test.status, status)
			assert.Contains(t, body, `class="error"`)
			assert.Equal(t, 0, store.Len())
		})
	}
}

func TestDownloadUnknownToken(t *testing.T) {
	app, _ := testApp()

	status, _, _ := get(t, app, "/download_ics?token=missing")
	assert.Equal(t, fiber.StatusNotFound, status)

	status, _, _ = get(t, app, "/download_ics")
	assert.Equal(t, fiber.StatusNotFound, status)
}

func TestDownloadEvicted(t *testing.T) {
	app, store := testApp()

	require.NoError(t, store.Put(context.Background(), "expiring", []byte("BEGIN:VCALENDAR"), time.Hour))
	status, _, _ := get(t, app, "/download_ics?token=expiring")
	assert.Equal(t, fiber.StatusOK, status)

	require.NoError(t, store.Evict(context.Background(), "expiring"))
	status, _, _ = get(t, app, "/download_ics?token=expiring")
	assert.Equal(t, fiber.StatusNotFound, status)
}

func TestAPIPlan(t *testing.T) {
	app, _ := testApp()

	status, body := postForm(t, app, "/api/plan", defaultFormValues())
	require.Equal(t, fiber.StatusOK, status, body)

	var response map[string]any
	require.NoError(t, json.Unmarshal([]byte(body), &response))

	assert.NotEmpty(t, response["token"])
	assert.Contains(t, response["download_url"], "/download_ics?token=")

	plan := response["plan"].(map[string]any)
	assert.Equal(t, "Frecciarossa", plan["Outbound"].(map[string]any)["Provider"])
	assert.Equal(t, "B&B Panoramico", plan["Lodging"].(map[string]any)["Name"])
	assert.EqualValues(t, 3, plan["Nights"])
	assert.NotContains(t, plan, "Calendar")

	status, body = postForm(t, app, "/api/plan?detailed=true", defaultFormValues())
	require.Equal(t, fiber.StatusOK, status)
	require.NoError(t, json.Unmarshal([]byte(body), &response))
	assert.Contains(t, response["plan"], "Calendar")
}

func TestAPIPlanJSONErrors(t *testing.T) {
	app, _ := testApp()

	req := httptest.NewRequest(fiber.MethodPost, "/api/plan", strings.NewReader(`{"origin":"Bologna","dest":"Lisbona","d_from":"2025-10-18","d_to":"2025-10-21"}`))
	req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)

	resp, err := app.Test(req, -1)
	require.NoError(t, err)

	// no modes in the JSON body leaves nothing to choose from
	assert.Equal(t, fiber.StatusUnprocessableEntity, resp.StatusCode)
}

func TestUnknownRoute(t *testing.T) {
	app, _ := testApp()

	status, _, _ := get(t, app, "/nowhere")
	assert.Equal(t, fiber.StatusNotFound, status)
}
