package report

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	cable "Voltex/internal/calc/cable"
	"github.com/phpdave11/gofpdf"
)

type Input struct {
	Project string      `json:"project"`
	Author  string      `json:"author"`
	Circuit string      `json:"circuit"`
	Sizing  cable.Input `json:"sizing"`
}

type Handler struct{}

// Generate runs the cable chooser and renders the result as a PDF sizing
// sheet.
func (h *Handler) Generate(w http.ResponseWriter, r *http.Request) {
	var input Input
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}
	res, err := cable.Choose(input.Sizing)
	if err != nil {
		http.Error(w, "Calculation error", http.StatusBadRequest)
		return
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(0, 10, "Cable Sizing Report")
	pdf.Ln(12)
	pdf.SetFont("Helvetica", "", 11)
	line := func(format string, args ...any) {
		pdf.Cell(0, 6, fmt.Sprintf(format, args...))
		pdf.Ln(6)
	}
	line("Project: %s", input.Project)
	line("Author: %s", input.Author)
	line("Circuit: %s", input.Circuit)
	line("Date: %s", time.Now().Format("2006-01-02"))
	pdf.Ln(4)

	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 8, "Inputs")
	pdf.Ln(8)
	pdf.SetFont("Helvetica", "", 11)
	line("Load current: %.2f A", input.Sizing.Current)
	line("Cable length: %.1f m", input.Sizing.LengthM)
	line("Max voltage drop: %.2f V", input.Sizing.MaxDropV)
	line("Material: %s", input.Sizing.Material)
	line("Ambient temperature: %.0f C, cores under load: %d, method: %s",
		input.Sizing.AmbientC, input.Sizing.NumCores, input.Sizing.Method)

	pdf.Ln(4)
	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 8, "Recommendation")
	pdf.Ln(8)
	pdf.SetFont("Helvetica", "", 11)
	line("Required area: %.2f mm2", res.RequiredArea)
	line("Recommended size: %g mm2", res.RecommendedSize)
	line("Resistance: %.6f Ohm", res.Resistance)
	line("Voltage drop: %.2f V (%.1f%% of max)", res.VoltageDrop, res.DropPercent)
	if res.Unrated {
		line("Current rating: not tabulated for this size")
	} else {
		line("Derated rating: %.2f A (adjusted current %.2f A)", res.DeratedRating, res.AdjustedCurrent)
	}
	if res.RatingExceeded || res.SizeExceedsCatalog {
		pdf.Ln(2)
		pdf.SetFont("Helvetica", "B", 11)
		pdf.MultiCell(0, 6, res.Notes, "", "L", false)
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", "attachment; filename=\"sizing-report.pdf\"")
	if err := pdf.Output(w); err != nil {
		http.Error(w, "Report generation error", http.StatusInternalServerError)
		return
	}
}
