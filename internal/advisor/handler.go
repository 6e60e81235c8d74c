package advisor

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	valve "Armatura/internal/valve"
)

type Handler struct {
	Client *Client
}

type adviceInput struct {
	valve.Params
	FreeText string `json:"free_text,omitempty"`
}

// Advice runs the rule engine first, then tries the remote advisory within a
// short deadline. The rule-based result is served even when the advisory
// never answers.
func (h *Handler) Advice(w http.ResponseWriter, r *http.Request) {
	var input adviceInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}
	if input.PressureBar < 0 {
		http.Error(w, "Pressure must be non-negative", http.StatusBadRequest)
		return
	}

	res := valve.Calculate(input.Params)
	if h.Client != nil {
		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()
		res = Augment(ctx, h.Client, input.Params, input.FreeText, res)
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(res)
}
