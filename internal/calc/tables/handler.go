package tables

import (
	"encoding/json"
	"net/http"
)

// Handler serves the reference tables as read-only JSON.
type Handler struct{}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(v)
}

func (h *Handler) Materials(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, Materials())
}

func (h *Handler) Ratings(w http.ResponseWriter, r *http.Request) {
	type response struct {
		Methods map[Method]string `json:"methods"`
		Rows    []RatingRow       `json:"rows"`
	}
	writeJSON(w, response{Methods: MethodDescriptions, Rows: RatingTable()})
}

func (h *Handler) TempFactors(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, TempFactorTable())
}

func (h *Handler) CoreFactors(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, CoreFactorTable())
}

func (h *Handler) Catalog(w http.ResponseWriter, r *http.Request) {
	type response struct {
		MetricMM2 []float64 `json:"metric_mm2"`
		AWG       []AWGSize `json:"awg"`
	}
	writeJSON(w, response{MetricMM2: MetricSizes, AWG: AWGSizes})
}
