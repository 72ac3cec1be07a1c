package httpapi

import (
	"errors"
	"net/http"

	"github.com/dmitrijs2005/pennywise/internal/common"
)

type budgetRequest struct {
	Amount float64 `json:"amount"`
}

type budgetResponse struct {
	Amount float64 `json:"amount"`
}

type thresholdResponse struct {
	Status  string  `json:"status"`
	Message string  `json:"message"`
	Spent   float64 `json:"spent"`
	Budget  float64 `json:"budget"`
}

func (s *HTTPServer) handleGetBudget(w http.ResponseWriter, r *http.Request) {
	user, ok := userFromContext(r.Context())
	if !ok {
		writeUnauthorized(w, "Invalid token")
		return
	}

	budget, err := s.budget.Get(r.Context(), user.ID)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			writeDetail(w, http.StatusNotFound, "No budget found.")
		} else {
			writeDetail(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}

	writeJSON(w, http.StatusOK, budgetResponse{Amount: budget.Amount})
}

func (s *HTTPServer) handleUpdateBudget(w http.ResponseWriter, r *http.Request) {
	user, ok := userFromContext(r.Context())
	if !ok {
		writeUnauthorized(w, "Invalid token")
		return
	}

	var req budgetRequest
	if !decodeBody(w, r, &req) {
		return
	}

	budget, err := s.budget.Set(r.Context(), user.ID, req.Amount)
	if err != nil {
		writeDetail(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	writeJSON(w, http.StatusOK, budgetResponse{Amount: budget.Amount})
}

func (s *HTTPServer) handleCheckThreshold(w http.ResponseWriter, r *http.Request) {
	user, ok := userFromContext(r.Context())
	if !ok {
		writeUnauthorized(w, "Invalid token")
		return
	}

	report, err := s.budget.CheckThreshold(r.Context(), user.ID)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			writeDetail(w, http.StatusNotFound, "No budget set")
		} else {
			writeDetail(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}

	writeJSON(w, http.StatusOK, thresholdResponse{
		Status:  report.Status,
		Message: report.Message,
		Spent:   report.Spent,
		Budget:  report.Budget,
	})
}
