package cash

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/frahmantamala/expense-tracker/internal/transport"
	"github.com/frahmantamala/expense-tracker/pkg/logger"
)

type ServiceAPI interface {
	AddTransaction(userID string, amount float64, description string) (*Transaction, error)
	GetTransactions(userID string) ([]*Transaction, error)
}

type Handler struct {
	*transport.BaseHandler
	Service ServiceAPI
}

func NewHandler(service ServiceAPI) *Handler {
	lg := logger.LoggerWrapper()
	if lg == nil {
		lg = slog.Default()
	}
	return &Handler{
		BaseHandler: transport.NewBaseHandler(lg),
		Service:     service,
	}
}

type addTransactionRequest struct {
	Amount      float64 `json:"amount"`
	Description string  `json:"description,omitempty"`
}

func (h *Handler) AddTransaction(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.UserID(w, r)
	if !ok {
		return
	}

	var req addTransactionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.Logger.Error("AddTransaction: invalid request body", "error", err)
		h.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	transaction, err := h.Service.AddTransaction(userID, req.Amount, req.Description)
	if err != nil {
		h.Logger.Error("AddTransaction: service error", "error", err, "user_id", userID)
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusCreated, transaction)
}

func (h *Handler) GetTransactions(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.UserID(w, r)
	if !ok {
		return
	}

	transactions, err := h.Service.GetTransactions(userID)
	if err != nil {
		h.Logger.Error("GetTransactions: service error", "error", err, "user_id", userID)
		h.WriteError(w, http.StatusInternalServerError, "failed to get cash transactions")
		return
	}

	h.WriteJSON(w, http.StatusOK, map[string]interface{}{"transactions": transactions})
}
