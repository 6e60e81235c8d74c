package report

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	valve "Armatura/internal/valve"
	"github.com/phpdave11/gofpdf"
)

type Input struct {
	Project string       `json:"project"`
	Author  string       `json:"author"`
	Title   string       `json:"title"`
	Params  valve.Params `json:"params"`
}

type Handler struct{}

func (h *Handler) Generate(w http.ResponseWriter, r *http.Request) {
	var input Input
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}
	if input.Params.PressureBar < 0 {
		http.Error(w, "Pressure must be non-negative", http.StatusBadRequest)
		return
	}
	if input.Title == "" {
		input.Title = "Valve Selection Report"
	}

	res := valve.Calculate(input.Params)

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(0, 10, input.Title)
	pdf.Ln(12)
	pdf.SetFont("Helvetica", "", 11)
	pdf.Cell(0, 6, fmt.Sprintf("Project: %s", input.Project))
	pdf.Ln(6)
	pdf.Cell(0, 6, fmt.Sprintf("Author: %s", input.Author))
	pdf.Ln(6)
	pdf.Cell(0, 6, fmt.Sprintf("Date: %s", time.Now().Format("2006-01-02")))
	pdf.Ln(10)

	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 8, "Operating conditions")
	pdf.Ln(8)
	pdf.SetFont("Helvetica", "", 11)
	pdf.Cell(0, 6, fmt.Sprintf("Function: %s", orDash(string(input.Params.Function))))
	pdf.Ln(6)
	pdf.Cell(0, 6, fmt.Sprintf("Body material: %s", orDash(string(input.Params.BodyMaterial))))
	pdf.Ln(6)
	pdf.Cell(0, 6, fmt.Sprintf("Seal material: %s", orDash(string(input.Params.SealMaterial))))
	pdf.Ln(6)
	pdf.Cell(0, 6, fmt.Sprintf("Temperature: %.1f C, Pressure: %.1f bar", input.Params.TemperatureC, input.Params.PressureBar))
	pdf.Ln(6)
	pdf.Cell(0, 6, fmt.Sprintf("Diameter: %s, Media: %s", orDash(input.Params.NominalDiameter), orDash(input.Params.Fluid)))
	pdf.Ln(10)

	pdf.SetFont("Helvetica", "B", 12)
	if res.Suitable {
		pdf.Cell(0, 8, "Verdict: suitable")
	} else {
		pdf.Cell(0, 8, "Verdict: not suitable as configured")
	}
	pdf.Ln(8)

	pdf.SetFont("Helvetica", "", 11)
	for _, fam := range res.Families {
		pdf.Cell(0, 6, "- "+fam)
		pdf.Ln(6)
	}
	if len(res.Warnings) > 0 {
		pdf.Ln(4)
		pdf.SetFont("Helvetica", "B", 12)
		pdf.Cell(0, 8, "Notes")
		pdf.Ln(8)
		pdf.SetFont("Helvetica", "", 11)
		for _, warn := range res.Warnings {
			pdf.MultiCell(0, 6, "- "+warn, "", "L", false)
		}
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", "attachment; filename=\"valve-report.pdf\"")
	if err := pdf.Output(w); err != nil {
		http.Error(w, "Report generation error", http.StatusInternalServerError)
		return
	}
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
