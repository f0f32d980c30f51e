package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"go.uber.org/zap"

	"github.com/neuroplan/rewards-engine/internal/domain"
)

// EventsHandler принимает события начисления баллов от доверенных сервисов
type EventsHandler struct {
	ledgerService domain.LedgerService
	logger        *zap.Logger
}

func NewEventsHandler(ledgerService domain.LedgerService, logger *zap.Logger) *EventsHandler {
	return &EventsHandler{
		ledgerService: ledgerService,
		logger:        logger,
	}
}

type pointsEventRequest struct {
	UserID int64  `json:"user_id"`
	Amount int64  `json:"amount"`
	Reason string `json:"reason"`
}

// CreditPoints начисляет баллы по событию от сервиса планировщика
// (выполнение задачи, серия дней, бонус)
func (h *EventsHandler) CreditPoints(w http.ResponseWriter, r *http.Request) {
	var req pointsEventRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}
	if req.UserID <= 0 || req.Reason == "" {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}

	tx, err := h.ledgerService.Credit(r.Context(), req.UserID, req.Amount, req.Reason)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidAmount):
			http.Error(w, "Invalid amount", http.StatusUnprocessableEntity)
		case errors.Is(err, domain.ErrUnavailable):
			http.Error(w, "Service Unavailable", http.StatusServiceUnavailable)
		default:
			h.logger.Error("failed to credit points", zap.Error(err))
			http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		}
		return
	}

	writeJSON(w, http.StatusCreated, tx, h.logger)
}
