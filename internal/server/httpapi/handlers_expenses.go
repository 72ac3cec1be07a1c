package httpapi

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/dmitrijs2005/pennywise/internal/common"
	"github.com/dmitrijs2005/pennywise/internal/server/models"
)

type expenseRequest struct {
	ItemName string  `json:"item_name"`
	Quantity *string `json:"quantity"`
	Price    float64 `json:"price"`
}

type expenseResponse struct {
	ID        int64     `json:"id"`
	ItemName  string    `json:"item_name"`
	Quantity  *string   `json:"quantity"`
	Price     float64   `json:"price"`
	Timestamp time.Time `json:"timestamp"`
}

type expenseTotalResponse struct {
	Total float64 `json:"total"`
}

func toExpenseResponse(e *models.ExpenseLog) expenseResponse {
	return expenseResponse{
		ID:        e.ID,
		ItemName:  e.ItemName,
		Quantity:  e.Quantity,
		Price:     e.Price,
		Timestamp: e.LoggedAt,
	}
}

func (s *HTTPServer) handleLogExpense(w http.ResponseWriter, r *http.Request) {
	var req expenseRequest
	if !decodeBody(w, r, &req) {
		return
	}

	expense, err := s.expenses.Log(r.Context(), req.ItemName, req.Quantity, req.Price)
	if err != nil {
		if errors.Is(err, common.ErrorValidation) {
			writeDetail(w, http.StatusUnprocessableEntity, "Item name is required")
		} else {
			writeDetail(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}

	writeJSON(w, http.StatusCreated, toExpenseResponse(expense))
}

func (s *HTTPServer) handleListExpenses(w http.ResponseWriter, r *http.Request) {
	expenses, err := s.expenses.List(r.Context())
	if err != nil {
		writeDetail(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	out := make([]expenseResponse, 0, len(expenses))
	for _, e := range expenses {
		out = append(out, toExpenseResponse(e))
	}
	writeJSON(w, http.StatusOK, out)
}

func (s *HTTPServer) handleExpensesTotal(w http.ResponseWriter, r *http.Request) {
	total, err := s.expenses.Total(r.Context())
	if err != nil {
		writeDetail(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	writeJSON(w, http.StatusOK, expenseTotalResponse{Total: total})
}

func (s *HTTPServer) handleDeleteExpense(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		writeDetail(w, http.StatusUnprocessableEntity, "Invalid expense id")
		return
	}

	if err := s.expenses.Delete(r.Context(), id); err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			writeDetail(w, http.StatusNotFound, "Expense not found")
		} else {
			writeDetail(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}

	writeJSON(w, http.StatusOK, messageResponse{Message: "Expense deleted"})
}
