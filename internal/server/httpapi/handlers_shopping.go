package httpapi

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/dmitrijs2005/pennywise/internal/common"
	"github.com/dmitrijs2005/pennywise/internal/server/models"
)

type shoppingItemRequest struct {
	ItemName string  `json:"item_name"`
	Quantity *string `json:"quantity"`
}

type shoppingItemResponse struct {
	ID       int64   `json:"id"`
	ItemName string  `json:"item_name"`
	Quantity *string `json:"quantity"`
}

func toShoppingItemResponse(item *models.ShoppingItem) shoppingItemResponse {
	return shoppingItemResponse{ID: item.ID, ItemName: item.ItemName, Quantity: item.Quantity}
}

// itemID parses the {id} path segment. A non-numeric id yields false after
// responding with 422.
func itemID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		writeDetail(w, http.StatusUnprocessableEntity, "Invalid item id")
		return 0, false
	}
	return id, true
}

func (s *HTTPServer) handleAddItem(w http.ResponseWriter, r *http.Request) {
	user, ok := userFromContext(r.Context())
	if !ok {
		writeUnauthorized(w, "Invalid token")
		return
	}

	var req shoppingItemRequest
	if !decodeBody(w, r, &req) {
		return
	}

	item, err := s.shopping.Add(r.Context(), user.ID, req.ItemName, req.Quantity)
	if err != nil {
		if errors.Is(err, common.ErrorValidation) {
			writeDetail(w, http.StatusUnprocessableEntity, "Item name is required")
		} else {
			writeDetail(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}

	writeJSON(w, http.StatusCreated, toShoppingItemResponse(item))
}

func (s *HTTPServer) handleListItems(w http.ResponseWriter, r *http.Request) {
	user, ok := userFromContext(r.Context())
	if !ok {
		writeUnauthorized(w, "Invalid token")
		return
	}

	items, err := s.shopping.List(r.Context(), user.ID)
	if err != nil {
		writeDetail(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	out := make([]shoppingItemResponse, 0, len(items))
	for _, item := range items {
		out = append(out, toShoppingItemResponse(item))
	}
	writeJSON(w, http.StatusOK, out)
}

func (s *HTTPServer) handleUpdateItem(w http.ResponseWriter, r *http.Request) {
	user, ok := userFromContext(r.Context())
	if !ok {
		writeUnauthorized(w, "Invalid token")
		return
	}

	id, ok := itemID(w, r)
	if !ok {
		return
	}

	var req shoppingItemRequest
	if !decodeBody(w, r, &req) {
		return
	}

	item, err := s.shopping.Update(r.Context(), user.ID, id, req.ItemName, req.Quantity)
	if err != nil {
		switch {
		case errors.Is(err, common.ErrorNotFound):
			writeDetail(w, http.StatusNotFound, "Item not found")
		case errors.Is(err, common.ErrorValidation):
			writeDetail(w, http.StatusUnprocessableEntity, "Item name is required")
		default:
			writeDetail(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}

	writeJSON(w, http.StatusOK, toShoppingItemResponse(item))
}

func (s *HTTPServer) handleDeleteItem(w http.ResponseWriter, r *http.Request) {
	user, ok := userFromContext(r.Context())
	if !ok {
		writeUnauthorized(w, "Invalid token")
		return
	}

	id, ok := itemID(w, r)
	if !ok {
		return
	}

	if err := s.shopping.Remove(r.Context(), user.ID, id); err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			writeDetail(w, http.StatusNotFound, "Item not found")
		} else {
			writeDetail(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}

	writeJSON(w, http.StatusOK, messageResponse{Message: "Item deleted"})
}
