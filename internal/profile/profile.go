package profile

import (
	"encoding/json"
	"log"
	"net/http"
	"strconv"

	"Voltex/internal/auth"
	cable "Voltex/internal/calc/cable"
	"Voltex/internal/calc/tables"
	"Voltex/internal/repo"
)

type ProfileHandler struct {
	Repo repo.Repository
}

type UpdateDefaultsRequest struct {
	Material string  `json:"default_material"`
	AmbientC float64 `json:"default_ambient_c"`
}

func (h *ProfileHandler) GetProfile(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.UserIDFromContext(r.Context())
	if !ok || userID == 0 {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	user, err := h.Repo.GetProfile(r.Context(), userID)
	if err != nil {
		log.Printf("GetProfile Error: %v", err)
		http.Error(w, "DB error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(user)
}

// UpdateDefaults stores the user's preferred conductor material and ambient
// temperature, which clients use to prefill the calculators.
func (h *ProfileHandler) UpdateDefaults(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.UserIDFromContext(r.Context())
	if !ok || userID == 0 {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	var req UpdateDefaultsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}
	if _, err := tables.MaterialOf(req.Material); err != nil {
		http.Error(w, "Unknown material", http.StatusBadRequest)
		return
	}
	if req.AmbientC < -40 || req.AmbientC > 80 {
		http.Error(w, "Ambient temperature out of range", http.StatusBadRequest)
		return
	}

	if err := h.Repo.UpdateDefaults(r.Context(), userID, req.Material, req.AmbientC); err != nil {
		log.Printf("UpdateDefaults Error: %v", err)
		http.Error(w, "DB error", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("Defaults updated"))
}

// SaveSizing runs the cable chooser and stores the run in the user's history.
func (h *ProfileHandler) SaveSizing(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.UserIDFromContext(r.Context())
	if !ok || userID == 0 {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	var input cable.Input
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}
	res, err := cable.Choose(input)
	if err != nil {
		http.Error(w, "Calculation error", http.StatusBadRequest)
		return
	}

	inputJSON, _ := json.Marshal(input)
	resultJSON, _ := json.Marshal(res)
	if _, err := h.Repo.SaveCalculation(r.Context(), userID, "cable", inputJSON, resultJSON); err != nil {
		log.Printf("SaveCalculation Error: %v", err)
		http.Error(w, "DB error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(res)
}

func (h *ProfileHandler) History(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.UserIDFromContext(r.Context())
	if !ok || userID == 0 {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	limit := 0
	if s := r.URL.Query().Get("limit"); s != "" {
		limit, _ = strconv.Atoi(s)
	}
	items, err := h.Repo.ListCalculations(r.Context(), userID, limit)
	if err != nil {
		log.Printf("ListCalculations Error: %v", err)
		http.Error(w, "DB error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(items)
}
