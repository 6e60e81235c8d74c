package importer

import (
	"encoding/json"
	"fmt"
	"net/http"

	valve "Armatura/internal/valve"
	"github.com/xuri/excelize/v2"
)

type Handler struct{}

type ImportResult struct {
	Count   int            `json:"count"`
	Results []valve.Result `json:"results"`
}

func (h *Handler) Selections(w http.ResponseWriter, r *http.Request) {
	file, _, err := r.FormFile("file")
	if err != nil {
		http.Error(w, "File required", http.StatusBadRequest)
		return
	}
	defer file.Close()

	f, err := excelize.OpenReader(file)
	if err != nil {
		http.Error(w, "Invalid file", http.StatusBadRequest)
		return
	}
	defer f.Close()

	sheet := f.GetSheetName(0)
	rows, err := f.GetRows(sheet)
	if err != nil || len(rows) < 2 {
		http.Error(w, "Empty sheet", http.StatusBadRequest)
		return
	}

	var results []valve.Result
	for i := 1; i < len(rows); i++ {
		input, err := parseRow(rows[i])
		if err != nil {
			continue
		}
		results = append(results, valve.Calculate(input))
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(ImportResult{Count: len(results), Results: results})
}

func parseRow(row []string) (valve.Params, error) {
	// expected: function, body_material, temperature_c, pressure_bar,
	// seal_material(optional), nominal_diameter(optional), fluid(optional)
	if len(row) < 4 {
		return valve.Params{}, fmt.Errorf("bad row")
	}
	temp, err := toFloat(row[2])
	if err != nil {
		return valve.Params{}, err
	}
	pressure, err := toFloat(row[3])
	if err != nil {
		return valve.Params{}, err
	}
	if pressure < 0 {
		return valve.Params{}, fmt.Errorf("negative pressure")
	}
	p := valve.Params{
		Function:     valve.Function(row[0]),
		BodyMaterial: valve.Material(row[1]),
		TemperatureC: temp,
		PressureBar:  pressure,
	}
	if len(row) > 4 {
		p.SealMaterial = valve.Seal(row[4])
	}
	if len(row) > 5 {
		p.NominalDiameter = row[5]
	}
	if len(row) > 6 {
		p.Fluid = row[6]
	}
	return p, nil
}

func toFloat(s string) (float64, error) {
	var v float64
	_, err := fmt.Sscanf(s, "%f", &v)
	return v, err
}
