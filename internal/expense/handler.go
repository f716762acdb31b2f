package expense

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/frahmantamala/expense-tracker/internal/transport"
	"github.com/frahmantamala/expense-tracker/pkg/logger"
	"github.com/go-chi/chi"
)

type ServiceAPI interface {
	CreateExpense(userID string, dto CreateExpenseDTO) (*Expense, error)
	GetExpenseByID(id int64, userID string) (*Expense, error)
	ListExpenses(userID string, filter ListFilter) ([]*Expense, int64, error)
	UpdateExpense(id int64, userID string, dto UpdateExpenseDTO) (*Expense, error)
	DeleteExpense(id int64, userID string) error
	ComputeStats(userID string, filter ListFilter) (*Stats, error)
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

// FilterFromQuery decodes the shared listing filter from query parameters.
// Export and stats reuse it so every surface filters identically.
func FilterFromQuery(r *http.Request) ListFilter {
	q := r.URL.Query()

	filter := ListFilter{
		Category: q.Get("category"),
		Type:     q.Get("type"),
		PaidBy:   q.Get("paid_by"),
		Search:   q.Get("search"),
	}

	if from, err := time.Parse("2006-01-02", q.Get("from")); err == nil {
		filter.From = &from
	}
	if to, err := time.Parse("2006-01-02", q.Get("to")); err == nil {
		filter.To = &to
	}

	filter.Limit = 20
	if limitStr := q.Get("limit"); limitStr != "" {
		if l, err := strconv.Atoi(limitStr); err == nil && l > 0 && l <= 100 {
			filter.Limit = l
		}
	}
	if offsetStr := q.Get("offset"); offsetStr != "" {
		if o, err := strconv.Atoi(offsetStr); err == nil && o >= 0 {
			filter.Offset = o
		}
	}

	return filter
}

func (h *Handler) CreateExpense(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.UserID(w, r)
	if !ok {
		return
	}

	var dto CreateExpenseDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		h.Logger.Error("CreateExpense: invalid request body", "error", err)
		h.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	expense, err := h.Service.CreateExpense(userID, dto)
	if err != nil {
		h.Logger.Error("CreateExpense: service error", "error", err, "user_id", userID)
		h.handleExpenseError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusCreated, expense)
}

func (h *Handler) GetExpense(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.UserID(w, r)
	if !ok {
		return
	}

	id, err := parseID(r)
	if err != nil {
		h.WriteError(w, http.StatusBadRequest, "invalid expense ID")
		return
	}

	expense, err := h.Service.GetExpenseByID(id, userID)
	if err != nil {
		h.Logger.Error("GetExpense: service error", "error", err, "expense_id", id, "user_id", userID)
		h.handleExpenseError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, expense)
}

func (h *Handler) ListExpenses(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.UserID(w, r)
	if !ok {
		return
	}

	filter := FilterFromQuery(r)
	expenses, total, err := h.Service.ListExpenses(userID, filter)
	if err != nil {
		h.Logger.Error("ListExpenses: service error", "error", err, "user_id", userID)
		h.WriteError(w, http.StatusInternalServerError, "failed to get expenses")
		return
	}

	h.WriteJSON(w, http.StatusOK, map[string]interface{}{
		"expenses": expenses,
		"total":    total,
		"limit":    filter.Limit,
		"offset":   filter.Offset,
	})
}

func (h *Handler) UpdateExpense(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.UserID(w, r)
	if !ok {
		return
	}

	id, err := parseID(r)
	if err != nil {
		h.WriteError(w, http.StatusBadRequest, "invalid expense ID")
		return
	}

	var dto UpdateExpenseDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		h.Logger.Error("UpdateExpense: invalid request body", "error", err)
		h.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	expense, err := h.Service.UpdateExpense(id, userID, dto)
	if err != nil {
		h.Logger.Error("UpdateExpense: service error", "error", err, "expense_id", id, "user_id", userID)
		h.handleExpenseError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, expense)
}

func (h *Handler) DeleteExpense(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.UserID(w, r)
	if !ok {
		return
	}

	id, err := parseID(r)
	if err != nil {
		h.WriteError(w, http.StatusBadRequest, "invalid expense ID")
		return
	}

	if err := h.Service.DeleteExpense(id, userID); err != nil {
		h.Logger.Error("DeleteExpense: service error", "error", err, "expense_id", id, "user_id", userID)
		h.handleExpenseError(w, err)
		return
	}

	h.Logger.Info("DeleteExpense: expense deleted", "expense_id", id, "user_id", userID)
	h.WriteJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}

func (h *Handler) GetStats(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.UserID(w, r)
	if !ok {
		return
	}

	stats, err := h.Service.ComputeStats(userID, FilterFromQuery(r))
	if err != nil {
		h.Logger.Error("GetStats: service error", "error", err, "user_id", userID)
		h.WriteError(w, http.StatusInternalServerError, "failed to compute statistics")
		return
	}

	h.WriteJSON(w, http.StatusOK, stats)
}

func (h *Handler) handleExpenseError(w http.ResponseWriter, err error) {
	switch err {
	case ErrExpenseNotFound:
		h.WriteError(w, http.StatusNotFound, "expense not found")
	default:
		h.HandleServiceError(w, err)
	}
}

func parseID(r *http.Request) (int64, error) {
	return strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
}
