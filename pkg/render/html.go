package render

import (
	"html/template"
	"io"
	"net/url"

	"github.com/tripplanner/tripplanner/pkg/planner"
	"github.com/tripplanner/tripplanner/pkg/trip"
	"golang.org/x/exp/slices"
)

type FormPage struct {
	Form  planner.TripForm
	Modes []trip.TransportMode
	Error string
}

func NewFormPage(form planner.TripForm, message string) FormPage {
	return FormPage{
		Form:  form,
		Modes: trip.TransportModes,
		Error: message,
	}
}

func (p FormPage) Checked(mode trip.TransportMode) bool {
	return slices.Contains(p.Form.Modes, mode.String())
}

type TripResultPage struct {
	Plan  *planner.TripPlan
	Token string
}

func (p TripResultPage) DownloadURL() string {
	return "/download_ics?" + url.Values{"token": {p.Token}}.Encode()
}

type LinkedEvent struct {
	Event trip.Event
	Link  string
}

func (p TripResultPage) Events() []LinkedEvent {
	events := make([]LinkedEvent, 0, len(p.Plan.Itinerary.Events))
	for i, event := range p.Plan.Itinerary.Events {
		events = append(events, LinkedEvent{Event: event, Link: p.Plan.Links[i]})
	}

	return events
}

var functions = template.FuncMap{
	"euro":      Euro,
	"clock":     Clock,
	"day":       Day,
	"transport": TransportLine,
	"lodging":   LodgingLine,
}

var pages = template.Must(template.New("pages").Funcs(functions).Parse(`
{{define "head"}}<!doctype html>
<html lang="en">
<head><meta charset="utf-8"><title>Trip planner</title>
<style>body{font-family:system-ui,sans-serif;max-width:760px;margin:2rem auto;padding:0 1rem}
label{display:block;margin:.5rem 0}.error{color:#b00020}li{margin:.4rem 0}</style>
</head>
<body>{{end}}

{{define "form"}}{{template "head"}}
<h1>Plan a trip</h1>
{{if .Error}}<p class="error">{{.Error}}</p>{{end}}
<form method="post" action="/plan">
<label>Origin <input name="origin" value="{{.Form.Origin}}" required></label>
<label>Destination <input name="dest" value="{{.Form.Destination}}" required></label>
<label>Departure <input type="date" name="d_from" value="{{.Form.From}}" required></label>
<label>Return <input type="date" name="d_to" value="{{.Form.To}}" required></label>
<fieldset><legend>Transport</legend>
{{range .Modes}}<label><input type="checkbox" name="modes" value="{{.}}"{{if $.Checked .}} checked{{end}}> {{.}}</label>
{{end}}</fieldset>
<label>Max per night (€) <input name="max_night" value="{{.Form.MaxPerNight}}"></label>
<label>Alarm minutes before <input name="alarm_min" value="{{.Form.AlarmMinutes}}"></label>
<label>Lodging filter <input name="lodging_filter" value="{{.Form.LodgingFilter}}" placeholder="Rating >= 4.5"></label>
<button type="submit">Plan</button>
</form>
</body></html>{{end}}

{{define "result"}}{{template "head"}}
<h1>{{.Plan.Itinerary.Title}}</h1>
<ul>
<li><b>Outbound:</b> {{transport .Plan.Outbound}}</li>
<li><b>Return:</b> {{transport .Plan.Inbound}}</li>
<li><b>Lodging:</b> {{lodging .Plan.Lodging .Plan.Nights}}</li>
</ul>
<h2>Calendar</h2>
<p><a href="{{.DownloadURL}}">Download .ics</a></p>
<ul>
{{range .Events}}<li>{{day .Event.Start}} {{clock .Event.Start}}–{{clock .Event.End}} {{.Event.Title}} <a href="{{.Link}}" target="_blank" rel="noopener">Add to calendar</a></li>
{{end}}</ul>
<p><a href="/">Plan another trip</a></p>
</body></html>{{end}}
`))

func Form(w io.Writer, page FormPage) error {
	return pages.ExecuteTemplate(w, "form", page)
}

func TripResult(w io.Writer, page TripResultPage) error {
	return pages.ExecuteTemplate(w, "result", page)
}
