package cable

import (
	"encoding/json"
	"net/http"

	"Voltex/internal/calc/tables"
)

type Handler struct{}

func (h *Handler) Calc(w http.ResponseWriter, r *http.Request) {
	var input Input
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}
	res, err := Choose(input)
	if err != nil {
		http.Error(w, "Calculation error", http.StatusBadRequest)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(res)
}

type resistanceRequest struct {
	LengthM         float64         `json:"length_m"`
	CrossSectionMM2 float64         `json:"cross_section_mm2"`
	Material        tables.Material `json:"material"`
	TempC           float64         `json:"temp_c"`
}

type resistanceResponse struct {
	Resistance float64 `json:"resistance_ohm"`
}

// CalcResistance serves the standalone cable resistance calculator.
func (h *Handler) CalcResistance(w http.ResponseWriter, r *http.Request) {
	var req resistanceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}
	if req.TempC == 0 {
		req.TempC = 20.0
	}
	res, err := Resistance(req.LengthM, req.CrossSectionMM2, req.Material, req.TempC)
	if err != nil {
		http.Error(w, "Calculation error", http.StatusBadRequest)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(resistanceResponse{Resistance: res})
}
