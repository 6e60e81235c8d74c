package pay

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"strconv"
	"time"

	"Armatura/internal/repo"
)

// PremiumPriceKopecks is the monthly premium price passed to the provider.
const PremiumPriceKopecks int64 = 49900

type Handler struct {
	Client *Client
	Repo   repo.Repository
}

// InitPremium starts a premium payment for the logged-in user and records a
// pending ticket. The ticket is approved by the admin bot once paid.
func (h *Handler) InitPremium(w http.ResponseWriter, r *http.Request) {
	idVal := r.Context().Value("userID")
	userID, ok := idVal.(int)
	if !ok || userID == 0 {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	orderID := fmt.Sprintf("premium-%d-%d", userID, time.Now().Unix())
	resp, err := h.Client.Init(InitRequest{
		Amount:      PremiumPriceKopecks,
		OrderID:     orderID,
		Description: "Armatura premium, 30 days",
	})
	if err != nil {
		log.Printf("payment init error: %v", err)
		http.Error(w, "Payment error", http.StatusBadGateway)
		return
	}

	if _, err := h.Repo.CreatePremiumTicket(r.Context(), userID, resp.PaymentID, PremiumPriceKopecks); err != nil {
		http.Error(w, "DB error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{"payment_url": resp.PaymentURL})
}

// Notify is the provider webhook. A verified CONFIRMED notification moves the
// matching ticket to paid.
func (h *Handler) Notify(w http.ResponseWriter, r *http.Request) {
	var data map[string]any
	if err := json.NewDecoder(r.Body).Decode(&data); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}
	token, _ := data["Token"].(string)
	if token == "" || !h.Client.VerifyToken(data, token) {
		http.Error(w, "Bad token", http.StatusForbidden)
		return
	}

	status, _ := data["Status"].(string)
	paymentID := paymentIDFrom(data)
	if status == "CONFIRMED" && paymentID != "" {
		ticket, err := h.Repo.GetPremiumTicketByPaymentID(r.Context(), paymentID)
		if err != nil {
			log.Printf("ticket lookup error: %v", err)
		} else if err := h.Repo.UpdatePremiumTicketStatus(r.Context(), ticket.ID, "paid"); err != nil {
			log.Printf("ticket update error: %v", err)
		}
	}

	// Провайдер ждёт именно "OK"
	w.Write([]byte("OK"))
}

// The provider sends PaymentId as either a string or a number.
func paymentIDFrom(data map[string]any) string {
	switch v := data["PaymentId"].(type) {
	case string:
		return v
	case float64:
		return strconv.FormatInt(int64(v), 10)
	}
	return ""
}
