package render

import (
	"io"
	"strings"

	"github.com/phpdave11/gofpdf"
	"github.com/tripplanner/tripplanner/pkg/trip"
)

var arrows = strings.NewReplacer("→", "->")

// PDF writes a single page A4 summary: the title, optional summary lines, then
// one block per event.
func PDF(w io.Writer, itinerary trip.Itinerary, summary []string) error {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle(itinerary.Title, true)
	pdf.SetAutoPageBreak(true, 15)
	pdf.AddPage()

	// core fonts are cp1252, arrows have no code point there
	translate := pdf.UnicodeTranslatorFromDescriptor("")
	tr := func(s string) string {
		return translate(arrows.Replace(s))
	}

	pdf.SetFont("Helvetica", "B", 18)
	pdf.Cell(0, 10, tr(itinerary.Title))
	pdf.Ln(12)

	if len(summary) > 0 {
		pdf.SetFont("Helvetica", "", 12)
		for _, line := range summary {
			pdf.Cell(0, 7, tr(line))
			pdf.Ln(7)
		}
		pdf.Ln(4)
	}

	for _, event := range itinerary.Events {
		pdf.SetFont("Helvetica", "B", 12)
		pdf.Cell(0, 7, tr(event.Title))
		pdf.Ln(7)

		pdf.SetFont("Helvetica", "", 11)
		pdf.Cell(0, 6, tr(Day(event.Start)+" "+Clock(event.Start)+" - "+Clock(event.End)))
		pdf.Ln(6)

		if event.Location != "" {
			pdf.Cell(0, 6, tr(event.Location))
			pdf.Ln(6)
		}

		if event.Notes != "" {
			pdf.SetFont("Helvetica", "I", 10)
			pdf.MultiCell(0, 5, tr(event.Notes), "", "", false)
		}

		pdf.Ln(3)
	}

	return pdf.Output(w)
}
