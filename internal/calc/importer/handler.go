package importer

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	cable "Voltex/internal/calc/cable"
	"Voltex/internal/calc/tables"
	"github.com/xuri/excelize/v2"
)

type Handler struct{}

type SizingImportResult struct {
	Count   int            `json:"count"`
	Results []cable.Result `json:"results"`
}

// Sizing imports cable-chooser jobs from an uploaded spreadsheet, one circuit
// per row. Rows that fail to parse or calculate are skipped.
func (h *Handler) Sizing(w http.ResponseWriter, r *http.Request) {
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

	var results []cable.Result
	for i := 1; i < len(rows); i++ {
		row := rows[i]
		input, err := parseSizingRow(row)
		if err != nil {
			continue
		}
		res, err := cable.Choose(input)
		if err != nil {
			continue
		}
		results = append(results, res)
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(SizingImportResult{Count: len(results), Results: results})
}

// expected columns: material, current_a, length_m, max_drop_v,
// ambient_c(optional), num_cores(optional), method(optional), three_phase(optional), pf(optional)
func parseSizingRow(row []string) (cable.Input, error) {
	if len(row) < 4 {
		return cable.Input{}, fmt.Errorf("bad row")
	}
	mat, err := tables.MaterialOf(row[0])
	if err != nil {
		return cable.Input{}, err
	}
	current, err := toFloat(row[1])
	if err != nil {
		return cable.Input{}, err
	}
	length, err := toFloat(row[2])
	if err != nil {
		return cable.Input{}, err
	}
	drop, err := toFloat(row[3])
	if err != nil {
		return cable.Input{}, err
	}
	in := cable.Input{
		Material: mat,
		Current:  current,
		LengthM:  length,
		MaxDropV: drop,
		AmbientC: 30.0,
	}
	if len(row) > 4 && row[4] != "" {
		in.AmbientC, _ = toFloat(row[4])
	}
	if len(row) > 5 && row[5] != "" {
		cores, err := strconv.Atoi(row[5])
		if err == nil {
			in.NumCores = cores
		}
	}
	if len(row) > 6 && row[6] != "" {
		method, err := tables.MethodOf(row[6])
		if err == nil {
			in.Method = method
		}
	}
	if len(row) > 7 && row[7] != "" {
		in.ThreePhase = row[7] == "1" || row[7] == "true" || row[7] == "yes"
	}
	if len(row) > 8 && row[8] != "" {
		in.PowerFactor, _ = toFloat(row[8])
	}
	return in, nil
}

func toFloat(s string) (float64, error) {
	var v float64
	_, err := fmt.Sscanf(s, "%f", &v)
	return v, err
}
