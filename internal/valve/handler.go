package valve

import (
	"encoding/json"
	"net/http"
)

type Handler struct{}

func (h *Handler) Select(w http.ResponseWriter, r *http.Request) {
	var input Params
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}
	if input.PressureBar < 0 {
		http.Error(w, "Pressure must be non-negative", http.StatusBadRequest)
		return
	}
	res := Calculate(input)
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(res)
}
